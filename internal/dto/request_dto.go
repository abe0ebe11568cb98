package dto

// Requests accepted from the dashboard SPA. Creation forms may arrive
// as JSON or as multipart form-data when a thumbnail file is attached,
// so their fields carry both tag sets.

type TokenRequest struct {
	Token string `json:"token" binding:"required"`
}

type TrackCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
	Price       string `json:"price" form:"price"`
}

type SubjectCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type ChapterCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

type UniversityCreateRequest struct {
	Name        string `json:"name" form:"name" binding:"required"`
	Description string `json:"description" form:"description"`
}

// Selection requests carry the display fields descendant screens render
// from the session context, so selecting never needs a second fetch.

type SelectTrackRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectSubjectRequest struct {
	Name        string `json:"name" binding:"required"`
	Description string `json:"description"`
}

type SelectChapterRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectUniversityRequest struct {
	Name string `json:"name" binding:"required"`
}

type SelectExamRequest struct {
	Practice bool `json:"is_practice"`
}

// --- Exam builder ---

type BuilderStartRequest struct {
	ExamType    string `json:"exam_type" binding:"required,oneof=chapter grand university"`
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Practice    bool   `json:"is_practice"`
}

type ExamMetaRequest struct {
	Title       string `json:"title" binding:"required"`
	Description string `json:"description"`
	Thumbnail   string `json:"thumbnail"`
	Practice    bool   `json:"is_practice"`
}

// QuestionDraftRequest updates the uncommitted question; commit-time
// rules live in the builder, so drafts may be partial.
type QuestionDraftRequest struct {
	Text    string  `json:"text"`
	Marks   float64 `json:"marks"`
	Graphic string  `json:"graphic"`
}

type ChoiceRequest struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Graphic   string `json:"graphic"`
}

type SectionDraftRequest struct {
	Name        string `json:"name"`
	Description string `json:"description"`
}
