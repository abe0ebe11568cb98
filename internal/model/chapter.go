package model

type Chapter struct {
	ID          uint    `json:"id"`
	Name        string  `json:"name"`
	Description *string `json:"description,omitempty"`
	Thumbnail   *string `json:"thumbnail,omitempty"`
	SubjectID   uint    `json:"subject"`
	Audit
}
