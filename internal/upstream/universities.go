package upstream

import (
	"context"
	"net/http"
	"net/url"

	"github.com/edustack/dashboard/internal/model"
)

const universitiesPath = "/tracks_app/universities/"

type UniversityCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Track       string `json:"track"`
}

type UniversityService interface {
	ListByTrack(ctx context.Context, token, trackID string) ([]model.University, error)
	Create(ctx context.Context, token string, req UniversityCreate, thumbnail *FileAttachment) (*model.University, error)
}

type universityService struct {
	client *Client
}

func NewUniversityService(client *Client) UniversityService {
	return &universityService{client: client}
}

func (s *universityService) ListByTrack(ctx context.Context, token, trackID string) ([]model.University, error) {
	var universities []model.University
	query := url.Values{"track": {trackID}}
	if err := s.client.getJSON(ctx, token, universitiesPath, query, &universities); err != nil {
		return nil, err
	}
	return universities, nil
}

func (s *universityService) Create(ctx context.Context, token string, req UniversityCreate, thumbnail *FileAttachment) (*model.University, error) {
	var created model.University
	if thumbnail != nil {
		fields := map[string]string{"name": req.Name, "track": req.Track}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		thumbnail.FieldName = "thumbnail"
		if err := s.client.postMultipart(ctx, token, universitiesPath, fields, thumbnail, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := s.client.sendJSON(ctx, http.MethodPost, token, universitiesPath, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
