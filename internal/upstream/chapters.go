package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustack/dashboard/internal/model"
)

const chaptersPath = "/tracks_app/chapters/"

type ChapterCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Subject     string `json:"subject"`
}

type ChapterService interface {
	ListBySubject(ctx context.Context, token, subjectID string) ([]model.Chapter, error)
	Create(ctx context.Context, token string, req ChapterCreate, thumbnail *FileAttachment) (*model.Chapter, error)
}

type chapterService struct {
	client *Client
}

func NewChapterService(client *Client) ChapterService {
	return &chapterService{client: client}
}

func (s *chapterService) ListBySubject(ctx context.Context, token, subjectID string) ([]model.Chapter, error) {
	var chapters []model.Chapter
	query := url.Values{"subject": {subjectID}}
	if err := s.client.getJSON(ctx, token, chaptersPath, query, &chapters); err != nil {
		return nil, err
	}
	return chapters, nil
}

func (s *chapterService) Create(ctx context.Context, token string, req ChapterCreate, thumbnail *FileAttachment) (*model.Chapter, error) {
	var created model.Chapter
	if thumbnail != nil {
		fields := map[string]string{"name": req.Name, "subject": req.Subject}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		thumbnail.FieldName = "thumbnail"
		if err := s.client.postMultipart(ctx, token, chaptersPath, fields, thumbnail, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := s.client.sendJSON(ctx, http.MethodPost, token, chaptersPath, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
