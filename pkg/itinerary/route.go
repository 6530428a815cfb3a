package itinerary

type Route struct {
	Stations   []Station   `json:"stations" yaml:"stations"`
	Transports []Transport `json:"transports" yaml:"transports"`
}

// Validate checks that every transport sits between two stations.
func (r *Route) Validate() error {
	if len(r.Stations) != len(r.Transports)+1 {
		return &FormatError{
			Stations:   len(r.Stations),
			Transports: len(r.Transports),
		}
	}

	return nil
}
