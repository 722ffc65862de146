package model

// College is one entry in the college directory. Interest counts how many
// frontend visitors flagged the college, batched in via interest-batch.
type College struct {
	ID       string   `json:"id" bson:"_id,omitempty"`
	Name     string   `json:"name" bson:"name"`
	City     string   `json:"city,omitempty" bson:"city,omitempty"`
	State    string   `json:"state,omitempty" bson:"state,omitempty"`
	Website  string   `json:"website,omitempty" bson:"website,omitempty"`
	Streams  []string `json:"streams,omitempty" bson:"streams,omitempty"`
	Interest int      `json:"interest" bson:"interest"`
}

// Content is a guidance article or video shown on the portal.
type Content struct {
	ID    string   `json:"id" bson:"_id,omitempty"`
	Title string   `json:"title" bson:"title"`
	Body  string   `json:"body,omitempty" bson:"body,omitempty"`
	URL   string   `json:"url,omitempty" bson:"url,omitempty"`
	Tags  []string `json:"tags,omitempty" bson:"tags,omitempty"`
}

// Stream is an education stream (science, commerce, arts, vocational).
type Stream struct {
	ID          string   `json:"id" bson:"_id,omitempty"`
	Name        string   `json:"name" bson:"name"`
	Description string   `json:"description,omitempty" bson:"description,omitempty"`
	Careers     []string `json:"careers,omitempty" bson:"careers,omitempty"`
}
