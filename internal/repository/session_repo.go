package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

// SessionRepository addresses sessions by their backend document id (_id)
// for update and delete.
type SessionRepository interface {
	List(ctx context.Context) ([]model.Session, error)
	Create(ctx context.Context, req dto.SessionRequest) error
	Update(ctx context.Context, docID string, req dto.SessionRequest) error
	Delete(ctx context.Context, docID string) error
}

type sessionRepo struct{ api *infra.DepotClient }

func NewSessionRepository(api *infra.DepotClient) SessionRepository { return &sessionRepo{api: api} }

func (r *sessionRepo) List(ctx context.Context) ([]model.Session, error) {
	var sessions []model.Session
	if err := r.api.Do(ctx, http.MethodGet, "sessions", nil, &sessions); err != nil {
		return nil, err
	}
	return sessions, nil
}

func (r *sessionRepo) Create(ctx context.Context, req dto.SessionRequest) error {
	return r.api.Do(ctx, http.MethodPost, "sessions", req, nil)
}

func (r *sessionRepo) Update(ctx context.Context, docID string, req dto.SessionRequest) error {
	return r.api.Do(ctx, http.MethodPut, "sessions/"+url.PathEscape(docID), req, nil)
}

func (r *sessionRepo) Delete(ctx context.Context, docID string) error {
	return r.api.Do(ctx, http.MethodDelete, "sessions/"+url.PathEscape(docID), nil, nil)
}
