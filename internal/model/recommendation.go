package model

// Degree is one education path inside a recommendation.
type Degree struct {
	Degree          string   `json:"degree"`
	Specializations []string `json:"specializations"`
}

// Recommendation is one career suggestion produced by the reasoning service.
type Recommendation struct {
	Career  string   `json:"career"`
	Reason  string   `json:"reason"`
	Stream  string   `json:"stream"`
	Degrees []Degree `json:"degrees"`
}

// RecommendationSet is the JSON envelope the reasoning service is asked to
// return. The response text is untrusted; decoding and validation happen in
// the recommendation service.
type RecommendationSet struct {
	Recommendations []Recommendation `json:"recommendations"`
}
