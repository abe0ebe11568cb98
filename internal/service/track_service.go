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

type TrackService interface {
	List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.TrackResponse], error)
	Create(ctx context.Context, sctx session.Context, req dto.TrackCreateRequest, thumbnail *upstream.FileAttachment) (*dto.TrackResponse, error)
	Select(sctx session.Context, id string, req dto.SelectTrackRequest)
}

type trackService struct {
	tracks   upstream.TrackService
	pageSize int
}

func NewTrackService(tracks upstream.TrackService, cfg *config.Config) TrackService {
	return &trackService{tracks: tracks, pageSize: cfg.ListView.PageSize}
}

func (s *trackService) List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.TrackResponse], error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	tracks, err := s.tracks.List(ctx, token)
	if err != nil {
		log.Error().Err(err).Msg("Failed to fetch tracks from upstream")
		return nil, fmt.Errorf("fetching tracks: %w", err)
	}

	var rows []dto.TrackResponse
	if err := copier.Copy(&rows, &tracks); err != nil {
		return nil, fmt.Errorf("preparing track list: %w", err)
	}
	filtered := listview.Filter(rows, query, func(t dto.TrackResponse) []string {
		return []string{t.Name, t.Description}
	})
	result := listview.Paginate(filtered, page, s.pageSize)
	return &result, nil
}

func (s *trackService) Create(ctx context.Context, sctx session.Context, req dto.TrackCreateRequest, thumbnail *upstream.FileAttachment) (*dto.TrackResponse, error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	created, err := s.tracks.Create(ctx, token, upstream.TrackCreate{
		Name:        req.Name,
		Description: req.Description,
		Price:       req.Price,
	}, thumbnail)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create track upstream")
		return nil, fmt.Errorf("creating track: %w", err)
	}

	var resp dto.TrackResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing created track response: %w", err)
	}
	return &resp, nil
}

// Select writes exactly the track's identifier and display name into
// the session context; descendant screens read them at mount.
func (s *trackService) Select(sctx session.Context, id string, req dto.SelectTrackRequest) {
	sctx.Set(session.KeyTrackID, id)
	sctx.Set(session.KeyTrackName, req.Name)
}
