package service

import (
	"context"
	"errors"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"
	"github.com/lennonhrmn/AWI-Mobile/internal/repository"
)

var ErrPercentageRange = errors.New("Un pourcentage doit être compris entre 0 et 100")

// ValidatePolicy enforces the fee policy invariant: relative values are
// percentages in [0,100], fixed values are non-negative amounts.
func ValidatePolicy(form dto.SessionForm) error {
	for _, p := range []struct {
		kind  string
		value int
	}{
		{form.CommissionType, form.Commission},
		{form.DepositFeeType, form.DepositFee},
	} {
		if p.value < 0 || (p.kind == model.FeeRelative && p.value > 100) {
			return ErrPercentageRange
		}
	}
	return nil
}

// SessionViewModel manages the sale sessions. Every successful write is
// followed by a fresh fetch.
type SessionViewModel struct {
	*Collection[model.Session]
	repo repository.SessionRepository
}

func NewSessionViewModel(repo repository.SessionRepository) *SessionViewModel {
	return &SessionViewModel{
		Collection: NewCollection(repo.List, func(s model.Session, q string) bool {
			return containsFold(q, s.ID)
		}),
		repo: repo,
	}
}

func (vm *SessionViewModel) Add(ctx context.Context, form dto.SessionForm) error {
	return vm.write(ctx, form, func(req dto.SessionRequest) error {
		return vm.repo.Create(ctx, req)
	})
}

// Update edits the session identified by its backend document id.
func (vm *SessionViewModel) Update(ctx context.Context, docID string, form dto.SessionForm) error {
	return vm.write(ctx, form, func(req dto.SessionRequest) error {
		return vm.repo.Update(ctx, docID, req)
	})
}

func (vm *SessionViewModel) Delete(ctx context.Context, docID string) error {
	if err := vm.repo.Delete(ctx, docID); err != nil {
		vm.Fail(err)
		return err
	}
	return vm.Fetch(ctx)
}

func (vm *SessionViewModel) write(ctx context.Context, form dto.SessionForm, call func(dto.SessionRequest) error) error {
	if err := ValidatePolicy(form); err != nil {
		vm.Fail(err)
		return err
	}
	if err := call(form.ToRequest()); err != nil {
		vm.Fail(err)
		return err
	}
	return vm.Fetch(ctx)
}
