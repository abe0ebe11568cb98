package service

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"net/http/httptest"
	"sync/atomic"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edustack/dashboard/config"
	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
)

func testConfig(baseURL string) *config.Config {
	cfg := &config.Config{}
	cfg.Upstream.BaseURL = baseURL
	cfg.Upstream.Timeout = 5 * time.Second
	cfg.ListView.PageSize = 10
	return cfg
}

func newSessionContext(t *testing.T) session.Context {
	t.Helper()
	store := session.NewMemoryStore(time.Hour)
	t.Cleanup(store.Close)
	return session.NewContext(store, store.Create())
}

// countingServer records how many requests reached it.
func countingServer(t *testing.T, handler http.HandlerFunc) (*httptest.Server, *atomic.Int64) {
	t.Helper()
	var hits atomic.Int64
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		hits.Add(1)
		handler(w, r)
	}))
	t.Cleanup(srv.Close)
	return srv, &hits
}

func TestTrackListWithoutTokenNeverCallsUpstream(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	cfg := testConfig(srv.URL)
	tracks := NewTrackService(upstream.NewTrackService(upstream.NewClient(cfg)), cfg)

	_, err := tracks.List(context.Background(), newSessionContext(t), "", 1)
	assert.ErrorIs(t, err, session.ErrNoToken)
	assert.Equal(t, int64(0), hits.Load())
}

func TestTrackListSearchesAndPaginates(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		var rows []map[string]any
		for i := 1; i <= 25; i++ {
			rows = append(rows, map[string]any{"id": i, "name": fmt.Sprintf("Track %02d", i)})
		}
		json.NewEncoder(w).Encode(rows)
	})
	cfg := testConfig(srv.URL)
	tracks := NewTrackService(upstream.NewTrackService(upstream.NewClient(cfg)), cfg)

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")

	// Past-the-end page request clamps to the last page.
	page, err := tracks.List(context.Background(), sctx, "", 4)
	require.NoError(t, err)
	assert.Equal(t, 3, page.PageCount)
	assert.Equal(t, 3, page.Page)
	assert.Len(t, page.Items, 5)
	assert.Equal(t, 25, page.TotalItems)

	// Search narrows before pagination.
	page, err = tracks.List(context.Background(), sctx, "track 0", 1)
	require.NoError(t, err)
	assert.Equal(t, 9, page.TotalItems)
	assert.Equal(t, 1, page.PageCount)
}

func TestTrackListUpstreamFailureSurfacesAPIError(t *testing.T) {
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusServiceUnavailable)
		io.WriteString(w, `{"detail":"maintenance"}`)
	})
	cfg := testConfig(srv.URL)
	tracks := NewTrackService(upstream.NewTrackService(upstream.NewClient(cfg)), cfg)

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")

	_, err := tracks.List(context.Background(), sctx, "", 1)
	require.Error(t, err)
	apiErr, ok := upstream.AsAPIError(err)
	require.True(t, ok)
	assert.Equal(t, http.StatusServiceUnavailable, apiErr.StatusCode)
	assert.Equal(t, "maintenance", apiErr.Message)
}

func TestSubjectListRequiresTrackSelection(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	cfg := testConfig(srv.URL)
	subjects := NewSubjectService(upstream.NewSubjectService(upstream.NewClient(cfg)), cfg)

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")

	_, err := subjects.List(context.Background(), sctx, "", 1)
	var incomplete session.IncompleteError
	require.ErrorAs(t, err, &incomplete)
	assert.Equal(t, session.KeyTrackID, incomplete.Key)
	assert.Equal(t, int64(0), hits.Load())
}

func TestSelectWritesExactlyItsOwnKeys(t *testing.T) {
	cfg := testConfig("http://unused")
	client := upstream.NewClient(cfg)

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")

	NewTrackService(upstream.NewTrackService(client), cfg).
		Select(sctx, "7", dto.SelectTrackRequest{Name: "Science"})
	assert.Equal(t, map[string]string{
		session.KeyToken:     "abc",
		session.KeyTrackID:   "7",
		session.KeyTrackName: "Science",
	}, sctx.Snapshot())

	NewSubjectService(upstream.NewSubjectService(client), cfg).
		Select(sctx, "12", dto.SelectSubjectRequest{Name: "Math", Description: "algebra"})
	assert.Equal(t, map[string]string{
		session.KeyToken:              "abc",
		session.KeyTrackID:            "7",
		session.KeyTrackName:          "Science",
		session.KeySubjectID:          "12",
		session.KeySubjectName:        "Math",
		session.KeySubjectDescription: "algebra",
	}, sctx.Snapshot())
}

func TestExamSelectWritesCategoryKeys(t *testing.T) {
	cfg := testConfig("http://unused")
	exams := NewExamService(upstream.NewExamService(upstream.NewClient(cfg)), cfg)

	tests := []struct {
		category    string
		idKey       string
		practiceKey string
	}{
		{"chapter", session.KeyChapterExamID, session.KeyChapterExamPractice},
		{"grand", session.KeyGrandExamID, session.KeyGrandExamPractice},
		{"university", session.KeyUniversityExamID, session.KeyUniversityExamPractice},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			sctx := newSessionContext(t)
			require.NoError(t, exams.Select(sctx, tt.category, "42", dto.SelectExamRequest{Practice: true}))
			assert.Equal(t, map[string]string{
				tt.idKey:       "42",
				tt.practiceKey: "true",
			}, sctx.Snapshot())
		})
	}

	sctx := newSessionContext(t)
	err := exams.Select(sctx, "weekly", "1", dto.SelectExamRequest{})
	require.Error(t, err)
	assert.Empty(t, sctx.Snapshot())
}

func TestExamListSortsByLastModifiedDescending(t *testing.T) {
	now := time.Now().UTC().Truncate(time.Second)
	srv, _ := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, "5", r.URL.Query().Get("chapter"))
		rows := []map[string]any{
			{"id": 1, "title": "Oldest", "exam_type": "chapter", "modified_on": now.Add(-2 * time.Hour)},
			{"id": 2, "title": "Newest", "exam_type": "chapter", "modified_on": now},
			{"id": 3, "title": "Middle", "exam_type": "chapter", "modified_on": now.Add(-time.Hour)},
		}
		json.NewEncoder(w).Encode(rows)
	})
	cfg := testConfig(srv.URL)
	exams := NewExamService(upstream.NewExamService(upstream.NewClient(cfg)), cfg)

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")
	sctx.Set(session.KeyChapterID, "5")

	page, err := exams.List(context.Background(), sctx, "chapter", "", 1)
	require.NoError(t, err)
	require.Len(t, page.Items, 3)
	assert.Equal(t, "Newest", page.Items[0].Title)
	assert.Equal(t, "Middle", page.Items[1].Title)
	assert.Equal(t, "Oldest", page.Items[2].Title)
}

func TestExamListRequiresParentPerCategory(t *testing.T) {
	srv, hits := countingServer(t, func(w http.ResponseWriter, r *http.Request) {
		io.WriteString(w, `[]`)
	})
	cfg := testConfig(srv.URL)
	exams := NewExamService(upstream.NewExamService(upstream.NewClient(cfg)), cfg)

	tests := []struct {
		category string
		wantKey  string
	}{
		{"chapter", session.KeyChapterID},
		{"grand", session.KeyTrackID},
		{"university", session.KeyUniversityID},
	}
	for _, tt := range tests {
		t.Run(tt.category, func(t *testing.T) {
			sctx := newSessionContext(t)
			sctx.Set(session.KeyToken, "abc")

			_, err := exams.List(context.Background(), sctx, tt.category, "", 1)
			var incomplete session.IncompleteError
			require.ErrorAs(t, err, &incomplete)
			assert.Equal(t, tt.wantKey, incomplete.Key)
		})
	}
	assert.Equal(t, int64(0), hits.Load())

	sctx := newSessionContext(t)
	sctx.Set(session.KeyToken, "abc")
	_, err := exams.List(context.Background(), sctx, "weekly", "", 1)
	assert.Error(t, err)
}
