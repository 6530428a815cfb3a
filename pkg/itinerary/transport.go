package itinerary

// Transport is the segment connecting two consecutive stations.
type Transport struct {
	Line     string `json:"line" yaml:"line"`
	Platform string `json:"platform" yaml:"platform"`
}
