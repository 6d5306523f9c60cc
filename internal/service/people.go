package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand/v2"
	"regexp"
	"strconv"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"

	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

var (
	ErrNamesRequired = errors.New("Le prénom et le nom sont requis")
	ErrInvalidEmail  = errors.New("Adresse email invalide")
	ErrInvalidPhone  = errors.New("Numéro de téléphone invalide")
	ErrBuyerNotFound = errors.New("Acheteur introuvable")
)

var (
	emailPattern = regexp.MustCompile(`^[A-Z0-9a-z._%+-]+@[A-Za-z0-9.-]+\.[A-Za-z]{2,}$`)
	// French numbers, national or +33 form.
	phonePattern = regexp.MustCompile(`^(\+33|0)[1-9][0-9]{8}$`)
)

// ValidateContact checks a buyer or seller form. Email and phone may be left
// empty but must be well formed when given.
func ValidateContact(req dto.ContactRequest) error {
	if req.FirstName == "" || req.Name == "" {
		return ErrNamesRequired
	}
	if req.Email != "" && !emailPattern.MatchString(req.Email) {
		return ErrInvalidEmail
	}
	if req.PhoneNumber != "" && !phonePattern.MatchString(req.PhoneNumber) {
		return ErrInvalidPhone
	}
	return nil
}

// sixDigitID draws the identifier given to new buyers and sellers.
func sixDigitID() string {
	return strconv.Itoa(100000 + rand.IntN(900000))
}

func matchBuyer(b model.Buyer, q string) bool {
	return containsFold(q, b.FirstName, b.Name, b.Email, b.PhoneNumber)
}

func matchSeller(s model.Seller, q string) bool {
	return containsFold(q, s.FirstName, s.Name, s.Email, s.PhoneNumber)
}

// ── Buyers ───────────────────────────────────────────────────────────────────

type BuyerViewModel struct {
	*Collection[model.Buyer]
	repo  repository.BuyerRepository
	newID func() string
}

func NewBuyerViewModel(repo repository.BuyerRepository) *BuyerViewModel {
	return &BuyerViewModel{Collection: NewCollection(repo.List, matchBuyer), repo: repo, newID: sixDigitID}
}

func buyerFrom(id string, req dto.ContactRequest) model.Buyer {
	return model.Buyer{
		ID:          &id,
		FirstName:   req.FirstName,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Address:     req.Address,
	}
}

func byBuyerID(id string) func(model.Buyer) bool {
	return func(b model.Buyer) bool { return b.BuyerID() == id }
}

// Create validates the form, assigns a six digit id and registers the buyer.
func (vm *BuyerViewModel) Create(ctx context.Context, req dto.ContactRequest) (*model.Buyer, error) {
	if err := ValidateContact(req); err != nil {
		vm.Fail(err)
		return nil, err
	}
	buyer := buyerFrom(vm.newID(), req)

	vm.Begin()
	if err := vm.repo.Create(ctx, buyer); err != nil {
		vm.Fail(err)
		return nil, err
	}
	vm.Append(buyer)
	vm.Succeed(newNotice(titleSuccess, fmt.Sprintf("L'acheteur %s a été ajouté.", buyer.FullName())))
	log.Info().Str("buyer_id", buyer.BuyerID()).Msg("buyer created")
	return &buyer, nil
}

func (vm *BuyerViewModel) Update(ctx context.Context, id string, req dto.ContactRequest) (*model.Buyer, error) {
	if err := ValidateContact(req); err != nil {
		vm.Fail(err)
		return nil, err
	}
	buyer := buyerFrom(id, req)

	vm.Begin()
	if err := vm.repo.Update(ctx, id, buyer); err != nil {
		vm.Fail(err)
		return nil, err
	}
	vm.Replace(byBuyerID(id), buyer)
	vm.Succeed(newNotice(titleSuccess, fmt.Sprintf("L'acheteur %s a été modifié.", buyer.FullName())))
	return &buyer, nil
}

func (vm *BuyerViewModel) Delete(ctx context.Context, id string) error {
	vm.Begin()
	if err := vm.repo.Delete(ctx, id); err != nil {
		vm.Fail(err)
		return err
	}
	vm.Remove(byBuyerID(id))
	vm.Succeed(newNotice(titleSuccess, "L'acheteur a été supprimé."))
	return nil
}

// ── Sellers ──────────────────────────────────────────────────────────────────

type SellerViewModel struct {
	*Collection[model.Seller]
	repo  repository.SellerRepository
	newID func() string
}

func NewSellerViewModel(repo repository.SellerRepository) *SellerViewModel {
	return &SellerViewModel{Collection: NewCollection(repo.List, matchSeller), repo: repo, newID: sixDigitID}
}

// Create registers a seller with no stock, no sales and a zero turnover.
func (vm *SellerViewModel) Create(ctx context.Context, req dto.ContactRequest) (*model.Seller, error) {
	if err := ValidateContact(req); err != nil {
		vm.Fail(err)
		return nil, err
	}
	seller := model.Seller{
		ID:          vm.newID(),
		FirstName:   req.FirstName,
		Name:        req.Name,
		Email:       req.Email,
		PhoneNumber: req.PhoneNumber,
		Stocks:      []string{},
		Sales:       []string{},
		Turnover:    decimal.Zero,
	}

	vm.Begin()
	if err := vm.repo.Create(ctx, seller); err != nil {
		vm.Fail(err)
		return nil, err
	}
	vm.Append(seller)
	vm.Succeed(newNotice(titleSuccess, fmt.Sprintf("Le vendeur %s a été ajouté.", seller.FullName())))
	log.Info().Str("seller_id", seller.ID).Msg("seller created")
	return &seller, nil
}
