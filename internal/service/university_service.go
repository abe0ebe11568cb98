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

type UniversityService interface {
	List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.UniversityResponse], error)
	Create(ctx context.Context, sctx session.Context, req dto.UniversityCreateRequest, thumbnail *upstream.FileAttachment) (*dto.UniversityResponse, error)
	Select(sctx session.Context, id string, req dto.SelectUniversityRequest)
}

type universityService struct {
	universities upstream.UniversityService
	pageSize     int
}

func NewUniversityService(universities upstream.UniversityService, cfg *config.Config) UniversityService {
	return &universityService{universities: universities, pageSize: cfg.ListView.PageSize}
}

func (s *universityService) List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.UniversityResponse], error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	trackID, err := sctx.Require(session.KeyTrackID)
	if err != nil {
		return nil, err
	}
	universities, err := s.universities.ListByTrack(ctx, token, trackID)
	if err != nil {
		log.Error().Err(err).Str("track_id", trackID).Msg("Failed to fetch universities from upstream")
		return nil, fmt.Errorf("fetching universities: %w", err)
	}

	var rows []dto.UniversityResponse
	if err := copier.Copy(&rows, &universities); err != nil {
		return nil, fmt.Errorf("preparing university list: %w", err)
	}
	filtered := listview.Filter(rows, query, func(u dto.UniversityResponse) []string {
		return []string{u.Name, u.Description}
	})
	result := listview.Paginate(filtered, page, s.pageSize)
	return &result, nil
}

func (s *universityService) Create(ctx context.Context, sctx session.Context, req dto.UniversityCreateRequest, thumbnail *upstream.FileAttachment) (*dto.UniversityResponse, error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	trackID, err := sctx.Require(session.KeyTrackID)
	if err != nil {
		return nil, err
	}
	created, err := s.universities.Create(ctx, token, upstream.UniversityCreate{
		Name:        req.Name,
		Description: req.Description,
		Track:       trackID,
	}, thumbnail)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create university upstream")
		return nil, fmt.Errorf("creating university: %w", err)
	}

	var resp dto.UniversityResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing created university response: %w", err)
	}
	return &resp, nil
}

func (s *universityService) Select(sctx session.Context, id string, req dto.SelectUniversityRequest) {
	sctx.Set(session.KeyUniversityID, id)
	sctx.Set(session.KeyUniversityName, req.Name)
}
