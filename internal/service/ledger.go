package service

import (
	"context"
	"errors"
	"sync"

	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"
)

// TransactionViewModel lists completed sales, read only.
type TransactionViewModel struct {
	*Collection[model.Transaction]
}

func NewTransactionViewModel(repo repository.TransactionRepository) *TransactionViewModel {
	return &TransactionViewModel{
		Collection: NewCollection(repo.List, func(t model.Transaction, q string) bool {
			return containsFold(q, t.GameName, t.BuyerName, t.SellerName, t.GameID)
		}),
	}
}

// Report scopes.
const (
	ScopeGeneral = "general"
	ScopeSession = "session"
)

var ErrUnknownScope = errors.New("Type de bilan inconnu")

// ReportScreen is the rendered state of the bilan screen.
type ReportScreen struct {
	Scope        string             `json:"scope"`
	Report       *model.BilanReport `json:"report"`
	IsLoading    bool               `json:"is_loading"`
	ErrorMessage *string            `json:"error_message"`
}

// ReportViewModel shows the all-time or current-session bilan.
type ReportViewModel struct {
	repo repository.ReportRepository

	mu           sync.Mutex
	scope        string
	report       *model.BilanReport
	isLoading    bool
	errorMessage *string
}

func NewReportViewModel(repo repository.ReportRepository) *ReportViewModel {
	return &ReportViewModel{repo: repo, scope: ScopeGeneral}
}

// Load fetches the bilan for scope. On failure the previous report stays.
func (vm *ReportViewModel) Load(ctx context.Context, scope string) (*model.BilanReport, error) {
	var fetch func(context.Context) (*model.BilanReport, error)
	switch scope {
	case ScopeGeneral, "":
		scope, fetch = ScopeGeneral, vm.repo.General
	case ScopeSession:
		fetch = vm.repo.CurrentSession
	default:
		return nil, ErrUnknownScope
	}

	vm.mu.Lock()
	vm.scope = scope
	vm.isLoading = true
	vm.mu.Unlock()

	report, err := fetch(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.isLoading = false
	if err != nil {
		msg := err.Error()
		vm.errorMessage = &msg
		return nil, err
	}
	vm.report = report
	vm.errorMessage = nil
	return report, nil
}

func (vm *ReportViewModel) Snapshot() ReportScreen {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return ReportScreen{Scope: vm.scope, Report: vm.report, IsLoading: vm.isLoading, ErrorMessage: vm.errorMessage}
}
