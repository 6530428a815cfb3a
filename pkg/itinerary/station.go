package itinerary

// Station is a single stop on the route. An empty time means the page did not report it.
type Station struct {
	Name       string `json:"name" yaml:"name"`
	ArriveTime string `json:"arrive_time,omitempty" yaml:"arrive_time,omitempty"`
	DepartTime string `json:"depart_time,omitempty" yaml:"depart_time,omitempty"`
}

func (s Station) HasArriveTime() bool {
	return s.ArriveTime != ""
}

func (s Station) HasDepartTime() bool {
	return s.DepartTime != ""
}
