package service

import (
	"context"
	"fmt"
	"strconv"

	"github.com/edustack/dashboard/config"
	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/listview"
	"github.com/edustack/dashboard/internal/model"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type ExamService interface {
	// List fetches one exam category for the parent selected in the
	// session context, sorted by last-modified descending before search
	// so pagination indices stay stable across re-filtering.
	List(ctx context.Context, sctx session.Context, category, query string, page int) (*listview.Page[dto.ExamSummaryResponse], error)
	Select(sctx session.Context, category, id string, req dto.SelectExamRequest) error
}

type examService struct {
	exams    upstream.ExamService
	pageSize int
}

func NewExamService(exams upstream.ExamService, cfg *config.Config) ExamService {
	return &examService{exams: exams, pageSize: cfg.ListView.PageSize}
}

func (s *examService) List(ctx context.Context, sctx session.Context, category, query string, page int) (*listview.Page[dto.ExamSummaryResponse], error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}

	var exams []model.Exam
	switch category {
	case model.ExamTypeChapter:
		chapterID, err := sctx.Require(session.KeyChapterID)
		if err != nil {
			return nil, err
		}
		exams, err = s.exams.ListChapterExams(ctx, token, chapterID)
		if err != nil {
			log.Error().Err(err).Str("chapter_id", chapterID).Msg("Failed to fetch chapter exams")
			return nil, fmt.Errorf("fetching chapter exams: %w", err)
		}
	case model.ExamTypeGrand:
		trackID, err := sctx.Require(session.KeyTrackID)
		if err != nil {
			return nil, err
		}
		exams, err = s.exams.ListGrandExams(ctx, token, trackID)
		if err != nil {
			log.Error().Err(err).Str("track_id", trackID).Msg("Failed to fetch grand exams")
			return nil, fmt.Errorf("fetching grand exams: %w", err)
		}
	case model.ExamTypeUniversity:
		universityID, err := sctx.Require(session.KeyUniversityID)
		if err != nil {
			return nil, err
		}
		exams, err = s.exams.ListUniversityExams(ctx, token, universityID)
		if err != nil {
			log.Error().Err(err).Str("university_id", universityID).Msg("Failed to fetch university exams")
			return nil, fmt.Errorf("fetching university exams: %w", err)
		}
	default:
		return nil, fmt.Errorf("unknown exam category %q", category)
	}

	sorted := listview.SortStable(exams, func(a, b model.Exam) bool {
		return a.ModifiedOn.After(b.ModifiedOn)
	})
	var rows []dto.ExamSummaryResponse
	if err := copier.Copy(&rows, &sorted); err != nil {
		return nil, fmt.Errorf("preparing exam list: %w", err)
	}
	filtered := listview.Filter(rows, query, func(e dto.ExamSummaryResponse) []string {
		return []string{e.Title, e.Description}
	})
	result := listview.Paginate(filtered, page, s.pageSize)
	return &result, nil
}

// Select records which exam the tab drilled into and whether it is a
// practice exam, under the keys of the exam's own category only.
func (s *examService) Select(sctx session.Context, category, id string, req dto.SelectExamRequest) error {
	var idKey, practiceKey string
	switch category {
	case model.ExamTypeChapter:
		idKey, practiceKey = session.KeyChapterExamID, session.KeyChapterExamPractice
	case model.ExamTypeGrand:
		idKey, practiceKey = session.KeyGrandExamID, session.KeyGrandExamPractice
	case model.ExamTypeUniversity:
		idKey, practiceKey = session.KeyUniversityExamID, session.KeyUniversityExamPractice
	default:
		return fmt.Errorf("unknown exam category %q", category)
	}
	sctx.Set(idKey, id)
	sctx.Set(practiceKey, strconv.FormatBool(req.Practice))
	return nil
}
