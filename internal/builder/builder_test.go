package builder

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func commitQuestion(t *testing.T, b *Builder, text string, marks float64, choices ...string) {
	t.Helper()
	b.SetQuestionDraft(text, marks, "")
	for _, c := range choices {
		require.True(t, b.AddChoice(Choice{Text: c}))
	}
	require.True(t, b.CommitQuestion())
}

func TestNewRejectsUnknownExamType(t *testing.T) {
	for _, typ := range []string{"chapter", "grand", "university"} {
		b, err := New(typ, Meta{Title: "t"})
		require.NoError(t, err)
		assert.Equal(t, typ, b.ExamType())
	}

	_, err := New("midterm", Meta{})
	assert.Error(t, err)
}

func TestAddChoiceEmptyTextIsNoOp(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)

	b.SetQuestionDraft("2+2=?", 1, "")
	assert.False(t, b.AddChoice(Choice{Text: ""}))
	assert.False(t, b.AddChoice(Choice{Text: "   "}))
	assert.Len(t, b.Snapshot().QuestionDraft.Choices, 0)

	assert.True(t, b.AddChoice(Choice{Text: "4", IsCorrect: true}))
	assert.Len(t, b.Snapshot().QuestionDraft.Choices, 1)
}

func TestCommitQuestionRequiresTextAndChoice(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)

	// No text, no choices.
	assert.False(t, b.CommitQuestion())

	// Text but zero choices.
	b.SetQuestionDraft("2+2=?", 1, "")
	assert.False(t, b.CommitQuestion())
	assert.Len(t, b.Snapshot().Questions, 0)

	// The rejected draft stays editable.
	assert.Equal(t, "2+2=?", b.Snapshot().QuestionDraft.Text)

	// Choices but the text was cleared.
	b.AddChoice(Choice{Text: "4", IsCorrect: true})
	b.SetQuestionDraft("", 1, "")
	assert.False(t, b.CommitQuestion())

	b.SetQuestionDraft("2+2=?", 1, "")
	assert.True(t, b.CommitQuestion())

	st := b.Snapshot()
	require.Len(t, st.Questions, 1)
	assert.Equal(t, "2+2=?", st.Questions[0].Text)
	// The draft is reset after a successful commit.
	assert.Equal(t, "", st.QuestionDraft.Text)
	assert.Len(t, st.QuestionDraft.Choices, 0)
}

func TestCommittedCountTracksAddsAndRemoves(t *testing.T) {
	b, err := New("grand", Meta{Title: "Final"})
	require.NoError(t, err)

	for i := 0; i < 5; i++ {
		commitQuestion(t, b, fmt.Sprintf("q%d", i), 1, "a", "b")
	}
	require.True(t, b.RemoveQuestion(1))
	require.True(t, b.RemoveQuestion(0))
	assert.False(t, b.RemoveQuestion(5))
	assert.False(t, b.RemoveQuestion(-1))

	st := b.Snapshot()
	require.Len(t, st.Questions, 3)
	assert.Equal(t, "q2", st.Questions[0].Text)
	assert.Equal(t, "q3", st.Questions[1].Text)
	assert.Equal(t, "q4", st.Questions[2].Text)
}

func TestTotalMarksRecomputedNotAccumulated(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)

	// Repeated add/remove of decimal marks must leave the total equal to
	// the sum over the surviving questions, with no drift.
	for i := 0; i < 10; i++ {
		commitQuestion(t, b, fmt.Sprintf("drift %d", i), 0.1, "x")
		require.True(t, b.RemoveQuestion(0))
	}
	assert.Equal(t, "0.00", b.Snapshot().TotalMarks)
	assert.Equal(t, 0.0, b.TotalMarks())

	commitQuestion(t, b, "2+2=?", 1, "3", "4")
	commitQuestion(t, b, "pi?", 2.5, "3.14")
	assert.Equal(t, "3.50", b.Snapshot().TotalMarks)

	require.True(t, b.RemoveQuestion(0))
	assert.Equal(t, "2.50", b.Snapshot().TotalMarks)
}

func TestTotalMarksIncludesSectionDraft(t *testing.T) {
	b, err := New("university", Meta{Title: "Entrance"})
	require.NoError(t, err)

	require.True(t, b.SetSectionDraft("Part A", ""))
	commitQuestion(t, b, "q1", 2, "a")
	commitQuestion(t, b, "q2", 3, "a")
	require.True(t, b.CommitSection())

	require.True(t, b.SetSectionDraft("Part B", ""))
	commitQuestion(t, b, "q3", 1.25, "a")

	// Committed section plus the in-progress section draft.
	assert.InDelta(t, 6.25, b.TotalMarks(), 1e-9)
	assert.Equal(t, "6.25", b.Snapshot().TotalMarks)
}

func TestSectionRulesUniversityOnly(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)
	assert.False(t, b.SetSectionDraft("Part A", ""))
	assert.False(t, b.CommitSection())

	u, err := New("university", Meta{Title: "Entrance"})
	require.NoError(t, err)

	// A section without a name, then without questions, never commits.
	commitQuestion(t, u, "q1", 1, "a")
	assert.False(t, u.CommitSection())
	require.True(t, u.SetSectionDraft("Part A", "algebra"))
	assert.True(t, u.CommitSection())
	require.True(t, u.SetSectionDraft("Part B", ""))
	assert.False(t, u.CommitSection())

	st := u.Snapshot()
	require.Len(t, st.Sections, 1)
	assert.Equal(t, "Part A", st.Sections[0].Name)
	require.NotNil(t, st.SectionDraft)
	assert.Equal(t, "Part B", st.SectionDraft.Name)
	assert.Len(t, st.SectionDraft.Questions, 0)
}

func TestUniversityQuestionsCommitIntoSectionDraft(t *testing.T) {
	u, err := New("university", Meta{Title: "Entrance"})
	require.NoError(t, err)

	require.True(t, u.SetSectionDraft("Part A", ""))
	commitQuestion(t, u, "q1", 1, "a")
	commitQuestion(t, u, "q2", 1, "a")

	st := u.Snapshot()
	assert.Len(t, st.Questions, 0)
	require.NotNil(t, st.SectionDraft)
	assert.Len(t, st.SectionDraft.Questions, 2)

	// RemoveQuestion targets the section draft for university exams.
	require.True(t, u.RemoveQuestion(0))
	st = u.Snapshot()
	require.Len(t, st.SectionDraft.Questions, 1)
	assert.Equal(t, "q2", st.SectionDraft.Questions[0].Text)
}

func TestPayloadSerializesMarksWithTwoDecimals(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz", Description: "weekly", Practice: true})
	require.NoError(t, err)

	commitQuestion(t, b, "2+2=?", 1, "3", "4")
	commitQuestion(t, b, "half", 0.5, "yes")

	p := b.Payload()
	assert.Equal(t, "Quiz", p.Title)
	assert.Equal(t, "chapter", p.ExamType)
	assert.True(t, p.Practice)
	assert.Equal(t, "1.50", p.TotalMarks)
	require.Len(t, p.Questions, 2)
	assert.Equal(t, "1.00", p.Questions[0].Marks)
	assert.Equal(t, "0.50", p.Questions[1].Marks)
	require.Len(t, p.Questions[0].Choices, 2)
	assert.Equal(t, "3", p.Questions[0].Choices[0].Text)
	assert.Empty(t, p.Sections)
}

func TestPayloadNestsSectionsForUniversityExams(t *testing.T) {
	u, err := New("university", Meta{Title: "Entrance"})
	require.NoError(t, err)

	require.True(t, u.SetSectionDraft("Part A", ""))
	commitQuestion(t, u, "q1", 2, "a", "b")
	require.True(t, u.CommitSection())

	p := u.Payload()
	assert.Equal(t, "2.00", p.TotalMarks)
	assert.Empty(t, p.Questions)
	require.Len(t, p.Sections, 1)
	assert.Equal(t, "Part A", p.Sections[0].Name)
	require.Len(t, p.Sections[0].Questions, 1)
	assert.Equal(t, "2.00", p.Sections[0].Questions[0].Marks)
}

func TestSnapshotIsACopy(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)
	commitQuestion(t, b, "q1", 1, "a")

	st := b.Snapshot()
	st.Questions[0].Text = "mutated"
	st.Questions[0].Choices[0].Text = "mutated"

	fresh := b.Snapshot()
	assert.Equal(t, "q1", fresh.Questions[0].Text)
	assert.Equal(t, "a", fresh.Questions[0].Choices[0].Text)
}

func TestResetClearsEverything(t *testing.T) {
	b, err := New("chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)
	commitQuestion(t, b, "q1", 1, "a")
	b.SetQuestionDraft("pending", 2, "")

	b.Reset()

	st := b.Snapshot()
	assert.Equal(t, "chapter", st.ExamType)
	assert.Equal(t, Meta{}, st.Meta)
	assert.Len(t, st.Questions, 0)
	assert.Equal(t, "", st.QuestionDraft.Text)
	assert.Equal(t, "0.00", st.TotalMarks)
}
