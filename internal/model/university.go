package model

// University is an institution entity scoped to a Track, used for
// university-specific exams.
type University struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	TrackID     uint   `json:"track"`
	Audit
}
