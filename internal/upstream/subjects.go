package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustack/dashboard/internal/model"
)

const subjectsPath = "/tracks_app/subjects/"

type SubjectCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Track       string `json:"track"`
}

type SubjectService interface {
	ListByTrack(ctx context.Context, token, trackID string) ([]model.Subject, error)
	Create(ctx context.Context, token string, req SubjectCreate, thumbnail *FileAttachment) (*model.Subject, error)
}

type subjectService struct {
	client *Client
}

func NewSubjectService(client *Client) SubjectService {
	return &subjectService{client: client}
}

func (s *subjectService) ListByTrack(ctx context.Context, token, trackID string) ([]model.Subject, error) {
	var subjects []model.Subject
	query := url.Values{"track": {trackID}}
	if err := s.client.getJSON(ctx, token, subjectsPath, query, &subjects); err != nil {
		return nil, err
	}
	return subjects, nil
}

func (s *subjectService) Create(ctx context.Context, token string, req SubjectCreate, thumbnail *FileAttachment) (*model.Subject, error) {
	var created model.Subject
	if thumbnail != nil {
		fields := map[string]string{"name": req.Name, "track": req.Track}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		thumbnail.FieldName = "thumbnail"
		if err := s.client.postMultipart(ctx, token, subjectsPath, fields, thumbnail, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := s.client.sendJSON(ctx, http.MethodPost, token, subjectsPath, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
