package builder

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRegistryOneBuilderPerSession(t *testing.T) {
	r := NewRegistry()

	_, ok := r.Get("tab-1")
	assert.False(t, ok)

	b1, err := r.Start("tab-1", "chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)
	b2, err := r.Start("tab-2", "grand", Meta{Title: "Final"})
	require.NoError(t, err)

	got, ok := r.Get("tab-1")
	require.True(t, ok)
	assert.Same(t, b1, got)
	got, ok = r.Get("tab-2")
	require.True(t, ok)
	assert.Same(t, b2, got)
}

func TestRegistryStartReplacesDraftInProgress(t *testing.T) {
	r := NewRegistry()

	b1, err := r.Start("tab-1", "chapter", Meta{Title: "Quiz"})
	require.NoError(t, err)
	b1.SetQuestionDraft("q", 1, "")

	b2, err := r.Start("tab-1", "university", Meta{Title: "Entrance"})
	require.NoError(t, err)

	got, ok := r.Get("tab-1")
	require.True(t, ok)
	assert.Same(t, b2, got)
	assert.Equal(t, "university", got.ExamType())
}

func TestRegistryStartRejectsBadExamType(t *testing.T) {
	r := NewRegistry()

	b, err := r.Start("tab-1", "chapter", Meta{})
	require.NoError(t, err)
	require.NotNil(t, b)

	// A failed start must not clobber the existing builder.
	_, err = r.Start("tab-1", "weekly", Meta{})
	require.Error(t, err)
	got, ok := r.Get("tab-1")
	require.True(t, ok)
	assert.Same(t, b, got)
}

func TestRegistryClear(t *testing.T) {
	r := NewRegistry()
	_, err := r.Start("tab-1", "chapter", Meta{})
	require.NoError(t, err)

	r.Clear("tab-1")
	_, ok := r.Get("tab-1")
	assert.False(t, ok)

	// Clearing an unknown session is harmless.
	r.Clear("tab-9")
}
