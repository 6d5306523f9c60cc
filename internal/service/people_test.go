package service

import (
	"context"
	"testing"

	"github.com/lennonhrmn/AWI-Mobile/internal/dto"
	"github.com/lennonhrmn/AWI-Mobile/internal/model"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestValidateContact(t *testing.T) {
	cases := []struct {
		name string
		req  dto.ContactRequest
		want error
	}{
		{"minimal", dto.ContactRequest{FirstName: "Claire", Name: "Roux"}, nil},
		{"full", dto.ContactRequest{FirstName: "Claire", Name: "Roux", Email: "claire@example.fr", PhoneNumber: "0612345678"}, nil},
		{"international phone", dto.ContactRequest{FirstName: "Claire", Name: "Roux", PhoneNumber: "+33612345678"}, nil},
		{"missing name", dto.ContactRequest{FirstName: "Claire"}, ErrNamesRequired},
		{"bad email", dto.ContactRequest{FirstName: "Claire", Name: "Roux", Email: "claire@"}, ErrInvalidEmail},
		{"short phone", dto.ContactRequest{FirstName: "Claire", Name: "Roux", PhoneNumber: "061234"}, ErrInvalidPhone},
		{"phone starting with 00", dto.ContactRequest{FirstName: "Claire", Name: "Roux", PhoneNumber: "0012345678"}, ErrInvalidPhone},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, ValidateContact(tc.req))
		})
	}
}

func TestSixDigitID(t *testing.T) {
	for i := 0; i < 100; i++ {
		id := sixDigitID()
		assert.Len(t, id, 6)
		assert.NotEqual(t, byte('0'), id[0])
	}
}

func TestBuyerViewModel_CreateUpdateDelete(t *testing.T) {
	repo := &stubBuyerRepo{}
	vm := NewBuyerViewModel(repo)
	vm.newID = func() string { return "123456" }
	ctx := context.Background()

	buyer, err := vm.Create(ctx, dto.ContactRequest{FirstName: "Claire", Name: "Roux", Email: "claire@example.fr"})
	require.NoError(t, err)
	assert.Equal(t, "123456", buyer.BuyerID())
	require.Len(t, repo.created, 1)
	assert.Len(t, vm.Items(), 1)
	assert.Equal(t, "L'acheteur Claire Roux a été ajouté.", vm.Notice().Message)

	_, err = vm.Update(ctx, "123456", dto.ContactRequest{FirstName: "Claire", Name: "Roux-Martin"})
	require.NoError(t, err)
	assert.Equal(t, "Roux-Martin", repo.updated["123456"].Name)
	got, ok := vm.Find(byBuyerID("123456"))
	require.True(t, ok)
	assert.Equal(t, "Roux-Martin", got.Name)

	require.NoError(t, vm.Delete(ctx, "123456"))
	assert.Equal(t, []string{"123456"}, repo.deleted)
	assert.Empty(t, vm.Items())
}

func TestBuyerViewModel_InvalidFormIsNotSent(t *testing.T) {
	repo := &stubBuyerRepo{}
	vm := NewBuyerViewModel(repo)

	_, err := vm.Create(context.Background(), dto.ContactRequest{FirstName: "Claire", Name: "Roux", PhoneNumber: "12"})
	assert.ErrorIs(t, err, ErrInvalidPhone)
	assert.Empty(t, repo.created)
	require.NotNil(t, vm.ErrorMessage())
	assert.Equal(t, "Numéro de téléphone invalide", *vm.ErrorMessage())
}

func TestBuyerViewModel_SearchMatchesContactFields(t *testing.T) {
	id := "1"
	repo := &stubBuyerRepo{buyers: []model.Buyer{
		{ID: &id, FirstName: "Claire", Name: "Roux", Email: "claire@example.fr", PhoneNumber: "0612345678"},
		{FirstName: "Denis", Name: "Blanc"},
	}}
	vm := NewBuyerViewModel(repo)
	require.NoError(t, vm.Fetch(context.Background()))

	for _, q := range []string{"CLAIRE", "roux", "example.fr", "0612"} {
		assert.Len(t, vm.FilterBy(q), 1, q)
	}
}

func TestSellerViewModel_Create(t *testing.T) {
	repo := &stubSellerRepo{}
	vm := NewSellerViewModel(repo)
	vm.newID = func() string { return "654321" }

	seller, err := vm.Create(context.Background(), dto.ContactRequest{FirstName: "Alice", Name: "Martin", PhoneNumber: "0712345678"})
	require.NoError(t, err)
	require.Len(t, repo.created, 1)

	sent := repo.created[0]
	assert.Equal(t, "654321", sent.ID)
	assert.Equal(t, *seller, sent)
	assert.NotNil(t, sent.Stocks)
	assert.Empty(t, sent.Stocks)
	assert.Empty(t, sent.Sales)
	assert.True(t, sent.Turnover.IsZero())
}

func TestSellerViewModel_BackendFailure(t *testing.T) {
	repo := &stubSellerRepo{createErr: errBackend}
	vm := NewSellerViewModel(repo)

	_, err := vm.Create(context.Background(), dto.ContactRequest{FirstName: "Alice", Name: "Martin"})
	require.Error(t, err)
	assert.Empty(t, vm.Items())
	assert.False(t, vm.IsLoading())
}
