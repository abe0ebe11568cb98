package session

// Enumerated context keys. The original dashboard kept these as ad hoc
// string literals scattered across screens; here they are the schema.
const (
	KeyToken = "auth_token"

	KeyTrackID   = "track_id"
	KeyTrackName = "track_name"

	KeySubjectID          = "subject_id"
	KeySubjectName        = "subject_name"
	KeySubjectDescription = "subject_description"

	KeyChapterID   = "chapter_id"
	KeyChapterName = "chapter_name"

	KeyUniversityID   = "university_id"
	KeyUniversityName = "university_name"

	// Per exam category: whether the selection is a practice exam, and
	// which exam the user drilled into.
	KeyChapterExamPractice    = "chapter_exam_practice"
	KeyGrandExamPractice      = "grand_exam_practice"
	KeyUniversityExamPractice = "university_exam_practice"
	KeyChapterExamID          = "chapter_exam_id"
	KeyGrandExamID            = "grand_exam_id"
	KeyUniversityExamID       = "university_exam_id"
)
