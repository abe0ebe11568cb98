package dto

import "time"

type ErrorResponse struct {
	Error string `json:"error"`
}

type SessionResponse struct {
	SessionID string `json:"session_id"`
}

// ContextResponse dumps the tab's context for the layout chrome.
type ContextResponse struct {
	Values map[string]string `json:"values"`
}

type TrackResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	Price       string    `json:"price,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
}

type SubjectResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	TrackID     uint      `json:"track"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
}

type ChapterResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description *string   `json:"description,omitempty"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	SubjectID   uint      `json:"subject"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
}

type UniversityResponse struct {
	ID          uint      `json:"id"`
	Name        string    `json:"name"`
	Description string    `json:"description,omitempty"`
	Thumbnail   string    `json:"thumbnail,omitempty"`
	TrackID     uint      `json:"track"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
}

// ExamSummaryResponse is the list/card rendering of an exam; the full
// tree is only materialized inside the builder.
type ExamSummaryResponse struct {
	ID          uint      `json:"id"`
	Title       string    `json:"title"`
	Description string    `json:"description,omitempty"`
	ExamType    string    `json:"exam_type"`
	Thumbnail   *string   `json:"thumbnail,omitempty"`
	TotalMarks  string    `json:"total_marks,omitempty"`
	CreatedOn   time.Time `json:"created_on"`
	ModifiedOn  time.Time `json:"modified_on"`
}
