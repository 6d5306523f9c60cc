package service

import (
	"context"
	"sync"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"
)

// Repositories is the set of backend repositories a workspace is built from.
type Repositories struct {
	Games        repository.GameRepository
	Sellers      repository.SellerRepository
	Buyers       repository.BuyerRepository
	Sessions     repository.SessionRepository
	Transactions repository.TransactionRepository
	Reports      repository.ReportRepository
}

// Workspace holds the screens of one logged-in console. Each login gets its
// own, so two operators never share search text, selection or notices.
type Workspace struct {
	Inventory    *InventoryViewModel
	Purchase     *PurchaseViewModel
	Stock        *StockViewModel
	Shelf        *ShelfViewModel
	Deposit      *DepositViewModel
	Buyers       *BuyerViewModel
	Sellers      *SellerViewModel
	Sessions     *SessionViewModel
	Transactions *TransactionViewModel
	Report       *ReportViewModel
	Payout       *PayoutViewModel
}

func NewWorkspace(r Repositories) *Workspace {
	return &Workspace{
		Inventory:    NewInventoryViewModel(r.Games),
		Purchase:     NewPurchaseViewModel(r.Games, r.Buyers, r.Transactions),
		Stock:        NewStockViewModel(r.Games),
		Shelf:        NewShelfViewModel(r.Games),
		Deposit:      NewDepositViewModel(r.Games, r.Sellers, r.Sessions),
		Buyers:       NewBuyerViewModel(r.Buyers),
		Sellers:      NewSellerViewModel(r.Sellers),
		Sessions:     NewSessionViewModel(r.Sessions),
		Transactions: NewTransactionViewModel(r.Transactions),
		Report:       NewReportViewModel(r.Reports),
		Payout:       NewPayoutViewModel(r.Games),
	}
}

type workspaceEntry struct {
	ws       *Workspace
	lastSeen time.Time
}

// WorkspaceStore keeps the open workspaces keyed by the id carried in the
// console token. Idle workspaces are dropped by Run.
type WorkspaceStore struct {
	repos Repositories
	ttl   time.Duration
	now   func() time.Time

	mu      sync.Mutex
	entries map[uuid.UUID]*workspaceEntry
}

func NewWorkspaceStore(repos Repositories, ttl time.Duration) *WorkspaceStore {
	return &WorkspaceStore{
		repos:   repos,
		ttl:     ttl,
		now:     time.Now,
		entries: make(map[uuid.UUID]*workspaceEntry),
	}
}

// Open creates a fresh workspace and returns its id.
func (s *WorkspaceStore) Open() uuid.UUID {
	id := uuid.New()
	s.mu.Lock()
	s.entries[id] = &workspaceEntry{ws: NewWorkspace(s.repos), lastSeen: s.now()}
	s.mu.Unlock()
	return id
}

// Get returns the workspace for id, recreating it when it was purged while
// the token is still valid.
func (s *WorkspaceStore) Get(id uuid.UUID) *Workspace {
	s.mu.Lock()
	defer s.mu.Unlock()
	e, ok := s.entries[id]
	if !ok {
		e = &workspaceEntry{ws: NewWorkspace(s.repos)}
		s.entries[id] = e
	}
	e.lastSeen = s.now()
	return e.ws
}

func (s *WorkspaceStore) Close(id uuid.UUID) {
	s.mu.Lock()
	delete(s.entries, id)
	s.mu.Unlock()
}

func (s *WorkspaceStore) Len() int {
	s.mu.Lock()
	defer s.mu.Unlock()
	return len(s.entries)
}

// Purge drops the workspaces idle for longer than the TTL.
func (s *WorkspaceStore) Purge() int {
	cutoff := s.now().Add(-s.ttl)
	s.mu.Lock()
	defer s.mu.Unlock()
	purged := 0
	for id, e := range s.entries {
		if e.lastSeen.Before(cutoff) {
			delete(s.entries, id)
			purged++
		}
	}
	return purged
}

// Run purges idle workspaces every interval until ctx is done.
func (s *WorkspaceStore) Run(ctx context.Context, interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			if n := s.Purge(); n > 0 {
				log.Debug().Int("purged", n).Int("remaining", s.Len()).Msg("idle workspaces purged")
			}
		}
	}
}
