package service

import (
	"context"
	"sync"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/infra"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"

	"github.com/shopspring/decimal"
)

// ── In-memory repository stubs ────────────────────────────────────────────────

var errBackend = &infra.DepotError{Kind: infra.ErrServerError, Status: 500}

type stubGameRepo struct {
	mu sync.Mutex

	games   []model.Game
	listErr error
	nextID  string
	nextErr error

	createErr    error
	created      []dto.CreateGameRequest
	failStatusOn map[string]bool
	statusCalls  []string
	statusOf     map[string]string
	sales        map[string]dto.SaleUpdate
	listAllCalls int
	calls        []string
}

func newStubGameRepo(games ...model.Game) *stubGameRepo {
	return &stubGameRepo{
		games:        games,
		failStatusOn: map[string]bool{},
		statusOf:     map[string]string{},
		sales:        map[string]dto.SaleUpdate{},
	}
}

func (r *stubGameRepo) byStatus(status string) ([]model.Game, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.listErr != nil {
		return nil, r.listErr
	}
	out := []model.Game{}
	for _, g := range r.games {
		if status == "" || g.Status == status {
			out = append(out, g)
		}
	}
	return out, nil
}

func (r *stubGameRepo) ListAll(_ context.Context) ([]model.Game, error) {
	r.mu.Lock()
	r.listAllCalls++
	r.mu.Unlock()
	return r.byStatus("")
}

func (r *stubGameRepo) ListShelf(_ context.Context) ([]model.Game, error) {
	return r.byStatus(model.StatusRayon)
}

func (r *stubGameRepo) ListStock(_ context.Context) ([]model.Game, error) {
	return r.byStatus(model.StatusStock)
}

func (r *stubGameRepo) NextID(_ context.Context) (string, error) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "nextId")
	return r.nextID, r.nextErr
}

func (r *stubGameRepo) Create(_ context.Context, req dto.CreateGameRequest) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, "create")
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, req)
	return nil
}

func (r *stubGameRepo) setStatus(gameID, status string) {
	for i := range r.games {
		if r.games[i].ID == gameID {
			r.games[i].Status = status
		}
	}
	r.statusOf[gameID] = status
}

func (r *stubGameRepo) UpdateStatus(_ context.Context, gameID, status string) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.statusCalls = append(r.statusCalls, gameID)
	if r.failStatusOn[gameID] {
		return errBackend
	}
	r.setStatus(gameID, status)
	return nil
}

func (r *stubGameRepo) MarkSold(_ context.Context, gameID string, sale dto.SaleUpdate) error {
	r.mu.Lock()
	defer r.mu.Unlock()
	if r.failStatusOn[gameID] {
		return errBackend
	}
	r.sales[gameID] = sale
	r.setStatus(gameID, sale.Status)
	return nil
}

type stubSellerRepo struct {
	sellers   []model.Seller
	listErr   error
	createErr error
	created   []model.Seller
}

func (r *stubSellerRepo) List(_ context.Context) ([]model.Seller, error) {
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]model.Seller(nil), r.sellers...), nil
}

func (r *stubSellerRepo) Create(_ context.Context, s model.Seller) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, s)
	return nil
}

type stubBuyerRepo struct {
	buyers  []model.Buyer
	err     error
	created []model.Buyer
	updated map[string]model.Buyer
	deleted []string
}

func (r *stubBuyerRepo) List(_ context.Context) ([]model.Buyer, error) {
	if r.err != nil {
		return nil, r.err
	}
	return append([]model.Buyer(nil), r.buyers...), nil
}

func (r *stubBuyerRepo) Create(_ context.Context, b model.Buyer) error {
	if r.err != nil {
		return r.err
	}
	r.created = append(r.created, b)
	return nil
}

func (r *stubBuyerRepo) Update(_ context.Context, id string, b model.Buyer) error {
	if r.err != nil {
		return r.err
	}
	if r.updated == nil {
		r.updated = map[string]model.Buyer{}
	}
	r.updated[id] = b
	return nil
}

func (r *stubBuyerRepo) Delete(_ context.Context, id string) error {
	if r.err != nil {
		return r.err
	}
	r.deleted = append(r.deleted, id)
	return nil
}

type stubSessionRepo struct {
	sessions  []model.Session
	listErr   error
	writeErr  error
	listCalls int
	written   []dto.SessionRequest
	writeIDs  []string
	deleted   []string
}

func (r *stubSessionRepo) List(_ context.Context) ([]model.Session, error) {
	r.listCalls++
	if r.listErr != nil {
		return nil, r.listErr
	}
	return append([]model.Session(nil), r.sessions...), nil
}

func (r *stubSessionRepo) Create(_ context.Context, req dto.SessionRequest) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.written = append(r.written, req)
	return nil
}

func (r *stubSessionRepo) Update(_ context.Context, docID string, req dto.SessionRequest) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.writeIDs = append(r.writeIDs, docID)
	r.written = append(r.written, req)
	return nil
}

func (r *stubSessionRepo) Delete(_ context.Context, docID string) error {
	if r.writeErr != nil {
		return r.writeErr
	}
	r.deleted = append(r.deleted, docID)
	return nil
}

type stubTransactionRepo struct {
	txs       []model.Transaction
	createErr error
	created   []dto.CreateTransactionRequest
}

func (r *stubTransactionRepo) List(_ context.Context) ([]model.Transaction, error) {
	return append([]model.Transaction(nil), r.txs...), nil
}

func (r *stubTransactionRepo) Create(_ context.Context, req dto.CreateTransactionRequest) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.created = append(r.created, req)
	return nil
}

type stubReportRepo struct {
	general *model.BilanReport
	session *model.BilanReport
	err     error
}

func (r *stubReportRepo) General(_ context.Context) (*model.BilanReport, error) {
	return r.general, r.err
}

func (r *stubReportRepo) CurrentSession(_ context.Context) (*model.BilanReport, error) {
	return r.session, r.err
}

type stubAuthRepo struct {
	role string
	err  error
}

func (r *stubAuthRepo) Login(_ context.Context, _ dto.LoginRequest) (*dto.LoginResult, error) {
	if r.err != nil {
		return nil, r.err
	}
	return &dto.LoginResult{Role: r.role}, nil
}

// stubRepositories wires every repository of a workspace to an empty stub.
func stubRepositories() Repositories {
	return Repositories{
		Games:        newStubGameRepo(),
		Sellers:      &stubSellerRepo{},
		Buyers:       &stubBuyerRepo{},
		Sessions:     &stubSessionRepo{},
		Transactions: &stubTransactionRepo{},
		Reports:      &stubReportRepo{},
	}
}

// ── Fixtures ──────────────────────────────────────────────────────────────────

func dec(v int64) decimal.Decimal { return decimal.NewFromInt(v) }

func soldGame(id, sellerID, sellerName string, price, commission int64) model.Game {
	return model.Game{
		ID:         id,
		Name:       "Jeu " + id,
		Editor:     "Editeur",
		Price:      dec(price),
		SellerID:   sellerID,
		SellerName: sellerName,
		Status:     model.StatusVendu,
		Commission: dec(commission),
		SessionID:  "S2024",
	}
}

func shelfGame(id, name string, price int64) model.Game {
	return model.Game{ID: id, Name: name, Editor: "Asmodee", Price: dec(price), SellerID: "V1", SellerName: "Alice Martin", Status: model.StatusRayon}
}

func stockGame(id, name string, price int64) model.Game {
	g := shelfGame(id, name, price)
	g.Status = model.StatusStock
	return g
}
