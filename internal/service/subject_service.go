package service

import (
	"context"
	"fmt"

	"github.com/edustack/dashboard/config"
	"github.com/edustack/dashboard/internal/dto"
	"github.com/edustack/dashboard/internal/listview"
	"github.com/edustack/dashboard/internal/session"
	"github.com/edustack/dashboard/internal/upstream"
	"github.com/jinzhu/copier"
	"github.com/rs/zerolog/log"
)

type SubjectService interface {
	List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.SubjectResponse], error)
	Create(ctx context.Context, sctx session.Context, req dto.SubjectCreateRequest, thumbnail *upstream.FileAttachment) (*dto.SubjectResponse, error)
	Select(sctx session.Context, id string, req dto.SelectSubjectRequest)
}

type subjectService struct {
	subjects upstream.SubjectService
	pageSize int
}

func NewSubjectService(subjects upstream.SubjectService, cfg *config.Config) SubjectService {
	return &subjectService{subjects: subjects, pageSize: cfg.ListView.PageSize}
}

func (s *subjectService) List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.SubjectResponse], error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	trackID, err := sctx.Require(session.KeyTrackID)
	if err != nil {
		return nil, err
	}
	subjects, err := s.subjects.ListByTrack(ctx, token, trackID)
	if err != nil {
		log.Error().Err(err).Str("track_id", trackID).Msg("Failed to fetch subjects from upstream")
		return nil, fmt.Errorf("fetching subjects: %w", err)
	}

	var rows []dto.SubjectResponse
	if err := copier.Copy(&rows, &subjects); err != nil {
		return nil, fmt.Errorf("preparing subject list: %w", err)
	}
	filtered := listview.Filter(rows, query, func(sub dto.SubjectResponse) []string {
		return []string{sub.Name, sub.Description}
	})
	result := listview.Paginate(filtered, page, s.pageSize)
	return &result, nil
}

func (s *subjectService) Create(ctx context.Context, sctx session.Context, req dto.SubjectCreateRequest, thumbnail *upstream.FileAttachment) (*dto.SubjectResponse, error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	trackID, err := sctx.Require(session.KeyTrackID)
	if err != nil {
		return nil, err
	}
	created, err := s.subjects.Create(ctx, token, upstream.SubjectCreate{
		Name:        req.Name,
		Description: req.Description,
		Track:       trackID,
	}, thumbnail)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create subject upstream")
		return nil, fmt.Errorf("creating subject: %w", err)
	}

	var resp dto.SubjectResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing created subject response: %w", err)
	}
	return &resp, nil
}

func (s *subjectService) Select(sctx session.Context, id string, req dto.SelectSubjectRequest) {
	sctx.Set(session.KeySubjectID, id)
	sctx.Set(session.KeySubjectName, req.Name)
	sctx.Set(session.KeySubjectDescription, req.Description)
}
