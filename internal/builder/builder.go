// Package builder holds the staged state of the multi-step exam
// authoring flow: exam metadata, committed questions (grouped under
// sections for university exams) and at most one uncommitted draft per
// nesting level. Commit rules and the total-marks contract follow the
// dashboard's authoring screens.
package builder

import (
	"fmt"
	"strings"
	"sync"
)

// Choice is an uncommitted or committed answer option.
type Choice struct {
	Text      string `json:"text"`
	IsCorrect bool   `json:"is_correct"`
	Graphic   string `json:"graphic,omitempty"`
}

type Question struct {
	Text    string   `json:"text"`
	Marks   float64  `json:"marks"`
	Graphic string   `json:"graphic,omitempty"`
	Choices []Choice `json:"choices"`
}

// Section groups questions within a university exam.
type Section struct {
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Questions   []Question `json:"questions"`
}

// Meta is the exam-level form data entered before any question.
type Meta struct {
	Title       string `json:"title"`
	Description string `json:"description,omitempty"`
	Thumbnail   string `json:"thumbnail,omitempty"`
	Practice    bool   `json:"is_practice"`
}

// Builder is one tab's in-progress exam tree. No level ever holds more
// than one uncommitted draft at a time.
type Builder struct {
	mu sync.Mutex

	examType string
	meta     Meta

	questions []Question // committed, chapter/grand exams
	sections  []Section  // committed, university exams

	sectionDraft  Section // university exams only
	questionDraft Question
}

// New starts an empty builder for one of the three exam variants.
func New(examType string, meta Meta) (*Builder, error) {
	switch examType {
	case "chapter", "grand", "university":
	default:
		return nil, fmt.Errorf("unknown exam type %q", examType)
	}
	return &Builder{examType: examType, meta: meta}, nil
}

func (b *Builder) ExamType() string {
	return b.examType
}

// SetMeta replaces the exam-level form data without touching committed
// questions or drafts.
func (b *Builder) SetMeta(meta Meta) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.meta = meta
}

// SetQuestionDraft updates the current question draft's own fields. The
// choices already added to the draft are kept.
func (b *Builder) SetQuestionDraft(text string, marks float64, graphic string) {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.questionDraft.Text = text
	b.questionDraft.Marks = marks
	b.questionDraft.Graphic = graphic
}

// AddChoice appends a choice to the current question draft. A choice
// with empty text is rejected silently; nothing is ever auto-added.
func (b *Builder) AddChoice(c Choice) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if strings.TrimSpace(c.Text) == "" {
		return false
	}
	b.questionDraft.Choices = append(b.questionDraft.Choices, c)
	return true
}

// RemoveChoice drops the draft choice at index i.
func (b *Builder) RemoveChoice(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.questionDraft.Choices) {
		return false
	}
	b.questionDraft.Choices = append(b.questionDraft.Choices[:i], b.questionDraft.Choices[i+1:]...)
	return true
}

// CommitQuestion moves the question draft into the committed list: the
// current section draft for university exams, the exam itself otherwise.
// A draft with empty text or no choices is rejected silently and stays
// editable.
func (b *Builder) CommitQuestion() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if strings.TrimSpace(b.questionDraft.Text) == "" || len(b.questionDraft.Choices) == 0 {
		return false
	}
	if b.examType == "university" {
		b.sectionDraft.Questions = append(b.sectionDraft.Questions, b.questionDraft)
	} else {
		b.questions = append(b.questions, b.questionDraft)
	}
	b.questionDraft = Question{}
	return true
}

// RemoveQuestion drops the committed question at index i from the list
// the draft currently feeds (section draft for university exams).
func (b *Builder) RemoveQuestion(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	list := &b.questions
	if b.examType == "university" {
		list = &b.sectionDraft.Questions
	}
	if i < 0 || i >= len(*list) {
		return false
	}
	*list = append((*list)[:i], (*list)[i+1:]...)
	return true
}

// SetSectionDraft updates the current section draft's name and
// description. University exams only; a no-op for other variants.
func (b *Builder) SetSectionDraft(name, description string) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.examType != "university" {
		return false
	}
	b.sectionDraft.Name = name
	b.sectionDraft.Description = description
	return true
}

// CommitSection moves the section draft into the exam's section list.
// Requires a non-empty name and at least one committed question.
func (b *Builder) CommitSection() bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if b.examType != "university" {
		return false
	}
	if strings.TrimSpace(b.sectionDraft.Name) == "" || len(b.sectionDraft.Questions) == 0 {
		return false
	}
	b.sections = append(b.sections, b.sectionDraft)
	b.sectionDraft = Section{}
	return true
}

// RemoveSection drops the committed section at index i.
func (b *Builder) RemoveSection(i int) bool {
	b.mu.Lock()
	defer b.mu.Unlock()
	if i < 0 || i >= len(b.sections) {
		return false
	}
	b.sections = append(b.sections[:i], b.sections[i+1:]...)
	return true
}

// TotalMarks recomputes the exam total from the currently committed
// questions on every call. The original screens kept a running
// accumulator that drifted under repeated add/remove of decimal marks;
// recomputing from the list is the contract here.
func (b *Builder) TotalMarks() float64 {
	b.mu.Lock()
	defer b.mu.Unlock()
	return b.totalMarksLocked()
}

func (b *Builder) totalMarksLocked() float64 {
	var total float64
	for _, q := range b.questions {
		total += q.Marks
	}
	for _, s := range b.sections {
		for _, q := range s.Questions {
			total += q.Marks
		}
	}
	for _, q := range b.sectionDraft.Questions {
		total += q.Marks
	}
	return total
}

// Reset empties every level back to a fresh draft, keeping only the
// exam type. Called after a successful submission.
func (b *Builder) Reset() {
	b.mu.Lock()
	defer b.mu.Unlock()
	b.meta = Meta{}
	b.questions = nil
	b.sections = nil
	b.sectionDraft = Section{}
	b.questionDraft = Question{}
}
