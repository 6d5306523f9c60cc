package repository

import (
	"context"
	"net/http"
	"net/url"

	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

type SellerRepository interface {
	List(ctx context.Context) ([]model.Seller, error)
	Create(ctx context.Context, s model.Seller) error
}

type sellerRepo struct{ api *infra.DepotClient }

func NewSellerRepository(api *infra.DepotClient) SellerRepository { return &sellerRepo{api: api} }

func (r *sellerRepo) List(ctx context.Context) ([]model.Seller, error) {
	var sellers []model.Seller
	if err := r.api.Do(ctx, http.MethodGet, "sellers", nil, &sellers); err != nil {
		return nil, err
	}
	return sellers, nil
}

func (r *sellerRepo) Create(ctx context.Context, s model.Seller) error {
	return r.api.Do(ctx, http.MethodPost, "sellers", s, nil)
}

type BuyerRepository interface {
	List(ctx context.Context) ([]model.Buyer, error)
	Create(ctx context.Context, b model.Buyer) error
	Update(ctx context.Context, id string, b model.Buyer) error
	Delete(ctx context.Context, id string) error
}

type buyerRepo struct{ api *infra.DepotClient }

func NewBuyerRepository(api *infra.DepotClient) BuyerRepository { return &buyerRepo{api: api} }

func (r *buyerRepo) List(ctx context.Context) ([]model.Buyer, error) {
	var buyers []model.Buyer
	if err := r.api.Do(ctx, http.MethodGet, "buyers", nil, &buyers); err != nil {
		return nil, err
	}
	return buyers, nil
}

func (r *buyerRepo) Create(ctx context.Context, b model.Buyer) error {
	return r.api.Do(ctx, http.MethodPost, "buyers", b, nil)
}

func (r *buyerRepo) Update(ctx context.Context, id string, b model.Buyer) error {
	return r.api.Do(ctx, http.MethodPut, "buyers/"+url.PathEscape(id), b, nil)
}

func (r *buyerRepo) Delete(ctx context.Context, id string) error {
	return r.api.Do(ctx, http.MethodDelete, "buyers/"+url.PathEscape(id), nil, nil)
}
