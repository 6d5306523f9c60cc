package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

type GameRepository interface {
	ListAll(ctx context.Context) ([]model.Game, error)
	ListShelf(ctx context.Context) ([]model.Game, error)
	ListStock(ctx context.Context) ([]model.Game, error)
	NextID(ctx context.Context) (string, error)
	Create(ctx context.Context, req dto.CreateGameRequest) error
	UpdateStatus(ctx context.Context, gameID, status string) error
	MarkSold(ctx context.Context, gameID string, sale dto.SaleUpdate) error
}

type gameRepo struct{ api *infra.DepotClient }

func NewGameRepository(api *infra.DepotClient) GameRepository { return &gameRepo{api: api} }

func (r *gameRepo) ListAll(ctx context.Context) ([]model.Game, error) {
	return r.list(ctx, "games")
}

func (r *gameRepo) ListShelf(ctx context.Context) ([]model.Game, error) {
	return r.list(ctx, "games/rayon")
}

func (r *gameRepo) ListStock(ctx context.Context) ([]model.Game, error) {
	return r.list(ctx, "games/stock")
}

func (r *gameRepo) list(ctx context.Context, path string) ([]model.Game, error) {
	var games []model.Game
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &games); err != nil {
		return nil, err
	}
	return games, nil
}

func (r *gameRepo) NextID(ctx context.Context) (string, error) {
	body, err := r.api.Raw(ctx, http.MethodGet, "games/nextId")
	if err != nil {
		return "", err
	}
	return infra.DecodeNextID(body)
}

func (r *gameRepo) Create(ctx context.Context, req dto.CreateGameRequest) error {
	return r.api.Do(ctx, http.MethodPost, "games", req, nil)
}

func (r *gameRepo) UpdateStatus(ctx context.Context, gameID, status string) error {
	return r.api.Do(ctx, http.MethodPut, "games/"+url.PathEscape(gameID), dto.StatusUpdate{Status: status}, nil)
}

func (r *gameRepo) MarkSold(ctx context.Context, gameID string, sale dto.SaleUpdate) error {
	return r.api.Do(ctx, http.MethodPut, "games/"+url.PathEscape(gameID), sale, nil)
}
