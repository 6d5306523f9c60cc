package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"sync"
	"sync/atomic"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
	"golang.org/x/sync/errgroup"
)

var ErrSellerNotFound = errors.New("Vendeur introuvable parmi les remboursements en attente")

// ComputeSummaries groups sold games by seller. The seller name of a group is
// the first one encountered; a disagreeing name later in the group is logged
// and ignored. Summaries are ordered by seller id.
func ComputeSummaries(games []model.Game) []model.SellerSummary {
	index := make(map[string]int)
	summaries := make([]model.SellerSummary, 0)

	for _, g := range games {
		i, ok := index[g.SellerID]
		if !ok {
			i = len(summaries)
			index[g.SellerID] = i
			summaries = append(summaries, model.SellerSummary{
				SellerID:        g.SellerID,
				SellerName:      g.SellerName,
				TotalSales:      decimal.Zero,
				TotalCommission: decimal.Zero,
			})
		} else if summaries[i].SellerName != g.SellerName {
			log.Warn().
				Str("seller_id", g.SellerID).
				Str("kept_name", summaries[i].SellerName).
				Str("ignored_name", g.SellerName).
				Str("game_id", g.ID).
				Msg("seller name differs within payout group")
		}
		s := &summaries[i]
		s.Games = append(s.Games, g)
		s.TotalSales = s.TotalSales.Add(g.Price)
		s.TotalCommission = s.TotalCommission.Add(g.Commission)
	}

	for i := range summaries {
		summaries[i].TotalToRefund = summaries[i].TotalSales.Sub(summaries[i].TotalCommission)
	}
	sort.Slice(summaries, func(a, b int) bool { return summaries[a].SellerID < summaries[b].SellerID })
	return summaries
}

// FilterSummaries keeps the summaries whose seller name or id contains query,
// ignoring case. An empty query returns the input as is.
func FilterSummaries(summaries []model.SellerSummary, query string) []model.SellerSummary {
	if query == "" {
		return summaries
	}
	out := make([]model.SellerSummary, 0, len(summaries))
	for _, s := range summaries {
		if containsFold(query, s.SellerName, s.SellerID) {
			out = append(out, s)
		}
	}
	return out
}

// SettlementResult tallies the per-game status updates of one settlement.
type SettlementResult struct {
	SuccessCount int
	FailureCount int
}

func (r SettlementResult) Complete() bool { return r.FailureCount == 0 }

// PayoutScreen is the rendered state of the payout screen.
type PayoutScreen struct {
	Summaries    []model.SellerSummary `json:"summaries"`
	SearchText   string                `json:"search_text"`
	Selected     *model.SellerSummary  `json:"selected"`
	IsLoading    bool                  `json:"is_loading"`
	ErrorMessage *string               `json:"error_message"`
	Notice       *dto.Notice           `json:"notice,omitempty"`
}

// PayoutViewModel drives the seller reimbursement screen: it derives the
// summaries from the sold games and pays a seller in two steps (Initiate to
// confirm, Settle to execute).
type PayoutViewModel struct {
	games repository.GameRepository

	mu           sync.Mutex
	soldGames    []model.Game
	summaries    []model.SellerSummary
	searchText   string
	selected     *model.SellerSummary
	isLoading    bool
	errorMessage *string
	notice       *dto.Notice
}

func NewPayoutViewModel(games repository.GameRepository) *PayoutViewModel {
	return &PayoutViewModel{games: games, summaries: []model.SellerSummary{}}
}

// FetchSoldGames reloads every game, keeps the sold ones and recomputes all
// summaries from scratch.
func (vm *PayoutViewModel) FetchSoldGames(ctx context.Context) error {
	vm.mu.Lock()
	vm.isLoading = true
	vm.mu.Unlock()

	all, err := vm.games.ListAll(ctx)

	vm.mu.Lock()
	defer vm.mu.Unlock()
	vm.isLoading = false
	if err != nil {
		msg := err.Error()
		vm.errorMessage = &msg
		return err
	}

	sold := make([]model.Game, 0, len(all))
	for _, g := range all {
		if g.Status == model.StatusVendu {
			sold = append(sold, g)
		}
	}
	vm.soldGames = sold
	vm.summaries = ComputeSummaries(sold)
	vm.errorMessage = nil
	return nil
}

func (vm *PayoutViewModel) SetSearchText(q string) {
	vm.mu.Lock()
	vm.searchText = q
	vm.mu.Unlock()
}

// Summaries returns the current summaries filtered by query.
func (vm *PayoutViewModel) Summaries(query string) []model.SellerSummary {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return FilterSummaries(vm.summaries, query)
}

// Initiate selects the summary of sellerID for confirmation.
func (vm *PayoutViewModel) Initiate(sellerID string) (*model.SellerSummary, error) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	s, ok := vm.findLocked(sellerID)
	if !ok {
		return nil, ErrSellerNotFound
	}
	vm.selected = &s
	return &s, nil
}

// Summary returns the current summary of sellerID.
func (vm *PayoutViewModel) Summary(sellerID string) (model.SellerSummary, bool) {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.findLocked(sellerID)
}

func (vm *PayoutViewModel) findLocked(sellerID string) (model.SellerSummary, bool) {
	for _, s := range vm.summaries {
		if s.SellerID == sellerID {
			return s, true
		}
	}
	return model.SellerSummary{}, false
}

// Settle pays the seller whose summary is currently known.
func (vm *PayoutViewModel) Settle(ctx context.Context, sellerID string) (SettlementResult, error) {
	summary, ok := vm.Summary(sellerID)
	if !ok {
		return SettlementResult{}, ErrSellerNotFound
	}
	return vm.SettleSeller(ctx, summary), nil
}

// SettleSeller marks every game of summary as paid. One request per game is
// issued concurrently; a failed request does not stop the others. Once every
// request has finished the outcome is reported and the sold games are fetched
// again exactly once, whatever the outcome.
func (vm *PayoutViewModel) SettleSeller(ctx context.Context, summary model.SellerSummary) SettlementResult {
	vm.mu.Lock()
	vm.isLoading = true
	vm.mu.Unlock()

	var succeeded, failed atomic.Int64
	var g errgroup.Group
	for _, game := range summary.Games {
		g.Go(func() error {
			if err := vm.games.UpdateStatus(ctx, game.ID, model.StatusPaye); err != nil {
				failed.Add(1)
				log.Warn().Str("seller_id", summary.SellerID).Str("game_id", game.ID).Err(err).Msg("payout: game not marked paid")
				return nil
			}
			succeeded.Add(1)
			return nil
		})
	}
	_ = g.Wait()

	result := SettlementResult{SuccessCount: int(succeeded.Load()), FailureCount: int(failed.Load())}

	var n *dto.Notice
	if result.Complete() {
		n = newNotice(titleSuccess, fmt.Sprintf("Le vendeur %s a été remboursé avec succès pour %d jeux.", summary.SellerName, result.SuccessCount))
	} else {
		n = newNotice(titleWarning, fmt.Sprintf("%d jeux ont été marqués comme payés, mais %d jeux n'ont pas pu être mis à jour.", result.SuccessCount, result.FailureCount))
	}
	log.Info().
		Str("seller_id", summary.SellerID).
		Int("paid", result.SuccessCount).
		Int("failed", result.FailureCount).
		Msg("payout settled")

	vm.mu.Lock()
	vm.isLoading = false
	vm.selected = nil
	vm.notice = n
	vm.mu.Unlock()

	// The refetch error, if any, lands in errorMessage.
	_ = vm.FetchSoldGames(ctx)
	return result
}

func (vm *PayoutViewModel) Notice() *dto.Notice {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return vm.notice
}

// Snapshot renders the screen filtered by the stored search text.
func (vm *PayoutViewModel) Snapshot() PayoutScreen {
	vm.mu.Lock()
	defer vm.mu.Unlock()
	return PayoutScreen{
		Summaries:    FilterSummaries(vm.summaries, vm.searchText),
		SearchText:   vm.searchText,
		Selected:     vm.selected,
		IsLoading:    vm.isLoading,
		ErrorMessage: vm.errorMessage,
		Notice:       vm.notice,
	}
}
