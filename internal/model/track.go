package model

// Track is the root of the content hierarchy, e.g. a course.
type Track struct {
	ID          uint   `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Price       string `json:"price,omitempty"` // decimal, serialized as a string by the remote API
	Audit
}
