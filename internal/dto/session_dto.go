package dto

import (
	"time"

	"github.com/lennonhrmn/AWI-Mobile/internal/model"
)

// SessionRequest is the body of POST sessions and PUT sessions/{id}.
// Backend bookkeeping fields (_id, __v) are never sent.
type SessionRequest struct {
	ID             string         `json:"id"`
	StartDate      model.WireTime `json:"startDate"`
	EndDate        model.WireTime `json:"endDate"`
	EndDepositGame model.WireTime `json:"endDepositGame"`
	CommissionType string         `json:"commissionType"`
	Commission     int            `json:"commission"`
	DepositFeeType string         `json:"depositFeeType"`
	DepositFee     int            `json:"depositFee"`
}

// SessionForm is the console form for creating or editing a session.
type SessionForm struct {
	ID             string    `json:"id"             validate:"required"`
	StartDate      time.Time `json:"startDate"      validate:"required"`
	EndDate        time.Time `json:"endDate"        validate:"required,gtfield=StartDate"`
	EndDepositGame time.Time `json:"endDepositGame" validate:"required"`
	CommissionType string    `json:"commissionType" validate:"required,oneof=fixed relative"`
	Commission     int       `json:"commission"     validate:"min=0"`
	DepositFeeType string    `json:"depositFeeType" validate:"required,oneof=fixed relative"`
	DepositFee     int       `json:"depositFee"     validate:"min=0"`
}

// ToRequest converts the form into the backend body.
func (f SessionForm) ToRequest() SessionRequest {
	return SessionRequest{
		ID:             f.ID,
		StartDate:      model.NewWireTime(f.StartDate),
		EndDate:        model.NewWireTime(f.EndDate),
		EndDepositGame: model.NewWireTime(f.EndDepositGame),
		CommissionType: f.CommissionType,
		Commission:     f.Commission,
		DepositFeeType: f.DepositFeeType,
		DepositFee:     f.DepositFee,
	}
}
