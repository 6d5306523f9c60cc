package service

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNoSellerSelected = errors.New("Veuillez sélectionner un vendeur")
	ErrNoActiveSession  = errors.New("Aucune session active trouvée")
	ErrSellerUnknown    = errors.New("Vendeur introuvable")
)

// minSellerQuery is the number of characters typed before sellers are searched.
const minSellerQuery = 3

var hundred = decimal.NewFromInt(100)

// ComputeFee applies a session fee policy to price. A relative value is a
// percentage and the result is truncated toward zero; a fixed value is
// returned unchanged whatever the price.
func ComputeFee(price decimal.Decimal, feeType string, value int) decimal.Decimal {
	v := decimal.NewFromInt(int64(value))
	if feeType == model.FeeRelative {
		q, _ := price.Mul(v).QuoRem(hundred, 0)
		return q
	}
	return v
}

// SelectActiveSession returns the first session whose date range contains
// now. When none does, the first session of the list is returned, which is
// what the shop has always used. An empty list yields nil.
func SelectActiveSession(sessions []model.Session, now time.Time) *model.Session {
	for i := range sessions {
		if sessions[i].Contains(now) {
			return &sessions[i]
		}
	}
	if len(sessions) == 0 {
		return nil
	}
	return &sessions[0]
}

// DepositScreen is the rendered state of the deposit screen.
type DepositScreen struct {
	Sellers        []model.Seller `json:"sellers"`
	SearchText     string         `json:"search_text"`
	SelectedSeller *model.Seller  `json:"selected_seller"`
	ActiveSession  *model.Session `json:"active_session"`
	IsLoading      bool           `json:"is_loading"`
	IsSuccess      bool           `json:"is_success"`
	ErrorMessage   *string        `json:"error_message"`
}

// DepositViewModel registers a new game for a seller: it allocates the next
// game id, then creates the game priced with the active session's fees.
type DepositViewModel struct {
	games    repository.GameRepository
	sellers  *Collection[model.Seller]
	sessions *Collection[model.Session]
	now      func() time.Time

	mu           sync.Mutex
	searchText   string
	selected     *model.Seller
	isLoading    bool
	isSuccess    bool
	errorMessage *string
}

func NewDepositViewModel(games repository.GameRepository, sellers repository.SellerRepository, sessions repository.SessionRepository) *DepositViewModel {
	return &DepositViewModel{
		games: games,
		sellers: NewCollection(sellers.List, func(s model.Seller, q string) bool {
			return containsFold(q, s.FirstName, s.Name)
		}),
		sessions: NewCollection(sessions.List, func(s model.Session, q string) bool {
			return containsFold(q, s.ID)
		}),
		now: time.Now,
	}
}

// SearchSellers returns the sellers matching query. Queries shorter than three
// characters match nothing. Sellers are fetched on the first search.
func (vm *DepositViewModel) SearchSellers(ctx context.Context, query string) ([]model.Seller, error) {
	vm.mu.Lock()
	vm.searchText = query
	vm.mu.Unlock()

	if len([]rune(query)) < minSellerQuery {
		return []model.Seller{}, nil
	}
	if len(vm.sellers.Items()) == 0 {
		if err := vm.sellers.Fetch(ctx); err != nil {
			vm.fail(err)
			return nil, err
		}
	}
	return vm.sellers.FilterBy(query), nil
}

// SelectSeller picks the seller the next game is deposited for.
func (vm *DepositViewModel) SelectSeller(ctx context.Context, sellerID string) (*model.Seller, error) {
	if len(vm.sellers.Items()) == 0 {
		if err := vm.sellers.Fetch(ctx); err != nil {
			vm.fail(err)
			return nil, err
		}
	}
	s, ok := vm.sellers.Find(func(s model.Seller) bool { return s.ID == sellerID })
	if !ok {
		return nil, ErrSellerUnknown
	}
	vm.mu.Lock()
	vm.selected = &s
	vm.mu.Unlock()
	return &s, nil
}

// FetchSessions reloads the sessions that provide the fee policy.
func (vm *DepositViewModel) FetchSessions(ctx context.Context) error {
	if err := vm.sessions.Fetch(ctx); err != nil {
		vm.fail(err)
		return err
	}
	return nil
}

// Submit runs the two phases strictly in sequence. Either phase failing
// aborts the deposit; nothing is retried.
func (vm *DepositViewModel) Submit(ctx context.Context, req dto.DepositGameRequest) (*dto.CreateGameRequest, error) {
	vm.mu.Lock()
	seller := vm.selected
	vm.mu.Unlock()
	if seller == nil {
		vm.fail(ErrNoSellerSelected)
		return nil, ErrNoSellerSelected
	}

	if len(vm.sessions.Items()) == 0 {
		if err := vm.FetchSessions(ctx); err != nil {
			return nil, err
		}
	}
	now := vm.now()
	session := SelectActiveSession(vm.sessions.Items(), now)
	if session == nil {
		vm.fail(ErrNoActiveSession)
		return nil, ErrNoActiveSession
	}
	if !session.Contains(now) {
		log.Warn().Str("session_id", session.ID).Msg("deposit: no session covers today, using the first one")
	}

	vm.mu.Lock()
	vm.isLoading = true
	vm.isSuccess = false
	vm.mu.Unlock()

	nextID, err := vm.games.NextID(ctx)
	if err != nil {
		err = fmt.Errorf("Erreur lors de la récupération du nextId: %w", err)
		vm.fail(err)
		return nil, err
	}

	game := dto.CreateGameRequest{
		ID:         nextID,
		Name:       req.Name,
		Editor:     req.Editor,
		Price:      req.Price,
		SellerID:   seller.ID,
		SellerName: seller.FullName(),
		Status:     model.StatusStock,
		DepositFee: ComputeFee(req.Price, session.DepositFeeType, session.DepositFee),
		Commission: ComputeFee(req.Price, session.CommissionType, session.Commission),
		SessionID:  session.ID,
	}
	if err := vm.games.Create(ctx, game); err != nil {
		vm.fail(err)
		return nil, err
	}

	log.Info().Str("game_id", game.ID).Str("seller_id", seller.ID).Msg("game deposited")

	vm.mu.Lock()
	vm.isLoading = false
	vm.isSuccess = true
	vm.errorMessage = nil
	vm.selected = nil
	vm.searchText = ""
	vm.mu.Unlock()
	return &game, nil
}

func (vm *DepositViewModel) fail(err error) {
	msg := err.Error()
	vm.mu.Lock()
	vm.isLoading = false
	vm.errorMessage = &msg
	vm.mu.Unlock()
}

func (vm *DepositViewModel) Snapshot() DepositScreen {
	sessions := vm.sessions.Items()
	vm.mu.Lock()
	defer vm.mu.Unlock()

	sellers := []model.Seller{}
	if len([]rune(vm.searchText)) >= minSellerQuery {
		sellers = vm.sellers.FilterBy(vm.searchText)
	}
	return DepositScreen{
		Sellers:        sellers,
		SearchText:     vm.searchText,
		SelectedSeller: vm.selected,
		ActiveSession:  SelectActiveSession(sessions, vm.now()),
		IsLoading:      vm.isLoading,
		IsSuccess:      vm.isSuccess,
		ErrorMessage:   vm.errorMessage,
	}
}
