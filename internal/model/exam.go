package model

// Exam variants. Chapter and grand exams live under a track; grand exams
// simply have no chapter. University exams additionally group their
// questions into sections.
const (
	ExamTypeChapter    = "chapter"
	ExamTypeGrand      = "grand"
	ExamTypeUniversity = "university"
)

type Exam struct {
	ID           uint       `json:"id"`
	Title        string     `json:"title"`
	Description  string     `json:"description,omitempty"`
	ExamType     string     `json:"exam_type"`
	Thumbnail    *string    `json:"thumbnail,omitempty"`
	TotalMarks   string     `json:"total_marks,omitempty"` // decimal string, e.g. "25.00"
	TrackID      uint       `json:"track,omitempty"`
	SubjectID    uint       `json:"subject,omitempty"`
	ChapterID    *uint      `json:"chapter,omitempty"`
	UniversityID *uint      `json:"university,omitempty"`
	Sections     []Section  `json:"sections,omitempty"` // university exams only
	Questions    []Question `json:"questions,omitempty"`
	Audit
}

// Section is a named grouping of questions within a university exam.
type Section struct {
	ID          uint       `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions,omitempty"`
}
