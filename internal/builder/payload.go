package builder

import "fmt"

// Wire shapes for the single POST that creates the whole exam tree on
// the remote API. Marks are coerced to fixed two-decimal strings, the
// format the remote decimal fields expect.

type ChoicePayload struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Graphic   string `json:"graphic,omitempty"`
}

type QuestionPayload struct {
	Text    string          `json:"text"`
	Marks   string          `json:"marks"`
	Graphic string          `json:"graphic,omitempty"`
	Choices []ChoicePayload `json:"choices"`
}

type SectionPayload struct {
	Name        string            `json:"name"`
	Description string            `json:"description,omitempty"`
	Questions   []QuestionPayload `json:"questions"`
}

type ExamPayload struct {
	Title       string  `json:"title"`
	Description string  `json:"description,omitempty"`
	ExamType    string  `json:"exam_type"`
	Practice    bool    `json:"is_practice"`
	Thumbnail   string  `json:"thumbnail,omitempty"`
	TotalMarks  string  `json:"total_marks"`
	Track       uint    `json:"track,omitempty"`
	Subject     uint    `json:"subject,omitempty"`
	Chapter     *uint   `json:"chapter,omitempty"`
	University  *uint   `json:"university,omitempty"`
	Sections    []SectionPayload  `json:"sections,omitempty"`
	Questions   []QuestionPayload `json:"questions,omitempty"`
}

// Payload assembles the committed tree for submission. The owning
// track/subject/chapter/university identifiers are filled in by the
// caller from the session context.
func (b *Builder) Payload() ExamPayload {
	b.mu.Lock()
	defer b.mu.Unlock()

	p := ExamPayload{
		Title:       b.meta.Title,
		Description: b.meta.Description,
		ExamType:    b.examType,
		Practice:    b.meta.Practice,
		Thumbnail:   b.meta.Thumbnail,
		TotalMarks:  fmt.Sprintf("%.2f", b.totalMarksLocked()),
	}
	for _, q := range b.questions {
		p.Questions = append(p.Questions, questionPayload(q))
	}
	for _, s := range b.sections {
		sp := SectionPayload{Name: s.Name, Description: s.Description}
		for _, q := range s.Questions {
			sp.Questions = append(sp.Questions, questionPayload(q))
		}
		p.Sections = append(p.Sections, sp)
	}
	return p
}

func questionPayload(q Question) QuestionPayload {
	qp := QuestionPayload{
		Text:    q.Text,
		Marks:   fmt.Sprintf("%.2f", q.Marks),
		Graphic: q.Graphic,
	}
	for _, c := range q.Choices {
		qp.Choices = append(qp.Choices, ChoicePayload(c))
	}
	return qp
}

// State is the read model the authoring screens render between actions.
type State struct {
	ExamType      string     `json:"exam_type"`
	Meta          Meta       `json:"meta"`
	TotalMarks    string     `json:"total_marks"`
	Questions     []Question `json:"questions"`
	Sections      []Section  `json:"sections,omitempty"`
	SectionDraft  *Section   `json:"section_draft,omitempty"`
	QuestionDraft Question   `json:"question_draft"`
}

// Snapshot copies the current tree for rendering.
func (b *Builder) Snapshot() State {
	b.mu.Lock()
	defer b.mu.Unlock()

	st := State{
		ExamType:      b.examType,
		Meta:          b.meta,
		TotalMarks:    fmt.Sprintf("%.2f", b.totalMarksLocked()),
		Questions:     copyQuestions(b.questions),
		QuestionDraft: copyQuestion(b.questionDraft),
	}
	if b.examType == "university" {
		draft := Section{
			Name:        b.sectionDraft.Name,
			Description: b.sectionDraft.Description,
			Questions:   copyQuestions(b.sectionDraft.Questions),
		}
		st.SectionDraft = &draft
		st.Sections = make([]Section, 0, len(b.sections))
		for _, s := range b.sections {
			st.Sections = append(st.Sections, Section{
				Name:        s.Name,
				Description: s.Description,
				Questions:   copyQuestions(s.Questions),
			})
		}
	}
	return st
}

func copyQuestion(q Question) Question {
	out := q
	out.Choices = append([]Choice(nil), q.Choices...)
	return out
}

func copyQuestions(qs []Question) []Question {
	out := make([]Question, 0, len(qs))
	for _, q := range qs {
		out = append(out, copyQuestion(q))
	}
	return out
}
