package repository

import (
	"context"
	"net/http"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

// TransactionRepository has no update or delete: transactions are immutable.
type TransactionRepository interface {
	List(ctx context.Context) ([]model.Transaction, error)
	Create(ctx context.Context, req dto.CreateTransactionRequest) error
}

type transactionRepo struct{ api *infra.DepotClient }

func NewTransactionRepository(api *infra.DepotClient) TransactionRepository {
	return &transactionRepo{api: api}
}

func (r *transactionRepo) List(ctx context.Context) ([]model.Transaction, error) {
	var txs []model.Transaction
	if err := r.api.Do(ctx, http.MethodGet, "transactions", nil, &txs); err != nil {
		return nil, err
	}
	return txs, nil
}

func (r *transactionRepo) Create(ctx context.Context, req dto.CreateTransactionRequest) error {
	return r.api.Do(ctx, http.MethodPost, "transactions", req, nil)
}

type ReportRepository interface {
	General(ctx context.Context) (*model.BilanReport, error)
	CurrentSession(ctx context.Context) (*model.BilanReport, error)
}

type reportRepo struct{ api *infra.DepotClient }

func NewReportRepository(api *infra.DepotClient) ReportRepository { return &reportRepo{api: api} }

func (r *reportRepo) General(ctx context.Context) (*model.BilanReport, error) {
	return r.get(ctx, "report")
}

func (r *reportRepo) CurrentSession(ctx context.Context) (*model.BilanReport, error) {
	return r.get(ctx, "report/session")
}

func (r *reportRepo) get(ctx context.Context, path string) (*model.BilanReport, error) {
	var report model.BilanReport
	if err := r.api.Do(ctx, http.MethodGet, path, nil, &report); err != nil {
		return nil, err
	}
	return &report, nil
}

type AuthRepository interface {
	Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error)
}

type authRepo struct{ api *infra.DepotClient }

func NewAuthRepository(api *infra.DepotClient) AuthRepository { return &authRepo{api: api} }

func (r *authRepo) Login(ctx context.Context, req dto.LoginRequest) (*dto.LoginResult, error) {
	var res dto.LoginResult
	if err := r.api.Do(ctx, http.MethodPost, "auth/login", req, &res); err != nil {
		return nil, err
	}
	return &res, nil
}
