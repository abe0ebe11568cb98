package upstream

import (
	"context"
	"net/http"

	"github.com/edustack/dashboard/internal/model"
)

const tracksPath = "/tracks_app/tracks/"

type TrackCreate struct {
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
	Price       string `json:"price,omitempty"`
}

type TrackService interface {
	List(ctx context.Context, token string) ([]model.Track, error)
	Create(ctx context.Context, token string, req TrackCreate, thumbnail *FileAttachment) (*model.Track, error)
}

type trackService struct {
	client *Client
}

func NewTrackService(client *Client) TrackService {
	return &trackService{client: client}
}

func (s *trackService) List(ctx context.Context, token string) ([]model.Track, error) {
	var tracks []model.Track
	if err := s.client.getJSON(ctx, token, tracksPath, nil, &tracks); err != nil {
		return nil, err
	}
	return tracks, nil
}

func (s *trackService) Create(ctx context.Context, token string, req TrackCreate, thumbnail *FileAttachment) (*model.Track, error) {
	var created model.Track
	if thumbnail != nil {
		fields := map[string]string{"name": req.Name}
		if req.Description != "" {
			fields["description"] = req.Description
		}
		if req.Price != "" {
			fields["price"] = req.Price
		}
		thumbnail.FieldName = "thumbnail"
		if err := s.client.postMultipart(ctx, token, tracksPath, fields, thumbnail, &created); err != nil {
			return nil, err
		}
		return &created, nil
	}
	if err := s.client.sendJSON(ctx, http.MethodPost, token, tracksPath, req, &created); err != nil {
		return nil, err
	}
	return &created, nil
}
