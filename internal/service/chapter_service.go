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

type ChapterService interface {
	List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.ChapterResponse], error)
	Create(ctx context.Context, sctx session.Context, req dto.ChapterCreateRequest, thumbnail *upstream.FileAttachment) (*dto.ChapterResponse, error)
	Select(sctx session.Context, id string, req dto.SelectChapterRequest)
}

type chapterService struct {
	chapters upstream.ChapterService
	pageSize int
}

func NewChapterService(chapters upstream.ChapterService, cfg *config.Config) ChapterService {
	return &chapterService{chapters: chapters, pageSize: cfg.ListView.PageSize}
}

func (s *chapterService) List(ctx context.Context, sctx session.Context, query string, page int) (*listview.Page[dto.ChapterResponse], error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	subjectID, err := sctx.Require(session.KeySubjectID)
	if err != nil {
		return nil, err
	}
	chapters, err := s.chapters.ListBySubject(ctx, token, subjectID)
	if err != nil {
		log.Error().Err(err).Str("subject_id", subjectID).Msg("Failed to fetch chapters from upstream")
		return nil, fmt.Errorf("fetching chapters: %w", err)
	}

	var rows []dto.ChapterResponse
	if err := copier.Copy(&rows, &chapters); err != nil {
		return nil, fmt.Errorf("preparing chapter list: %w", err)
	}
	filtered := listview.Filter(rows, query, func(ch dto.ChapterResponse) []string {
		fields := []string{ch.Name}
		if ch.Description != nil {
			fields = append(fields, *ch.Description)
		}
		return fields
	})
	result := listview.Paginate(filtered, page, s.pageSize)
	return &result, nil
}

func (s *chapterService) Create(ctx context.Context, sctx session.Context, req dto.ChapterCreateRequest, thumbnail *upstream.FileAttachment) (*dto.ChapterResponse, error) {
	token, err := sctx.Token()
	if err != nil {
		return nil, err
	}
	subjectID, err := sctx.Require(session.KeySubjectID)
	if err != nil {
		return nil, err
	}
	created, err := s.chapters.Create(ctx, token, upstream.ChapterCreate{
		Name:        req.Name,
		Description: req.Description,
		Subject:     subjectID,
	}, thumbnail)
	if err != nil {
		log.Error().Err(err).Str("name", req.Name).Msg("Failed to create chapter upstream")
		return nil, fmt.Errorf("creating chapter: %w", err)
	}

	var resp dto.ChapterResponse
	if err := copier.Copy(&resp, created); err != nil {
		return nil, fmt.Errorf("preparing created chapter response: %w", err)
	}
	return &resp, nil
}

func (s *chapterService) Select(sctx session.Context, id string, req dto.SelectChapterRequest) {
	sctx.Set(session.KeyChapterID, id)
	sctx.Set(session.KeyChapterName, req.Name)
}
