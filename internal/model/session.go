package model

import (
	"bytes"
	"encoding/json"
	"fmt"
	"time"
)

// Fee policy kinds shared by commission and deposit fee.
const (
	FeeFixed    = "fixed"
	FeeRelative = "relative"
)

// wireTimeLayout is ISO-8601 with millisecond fractional seconds, which is
// what the backend emits for session dates.
const wireTimeLayout = "2006-01-02T15:04:05.000Z07:00"

// WireTime is a time.Time that (un)marshals with fractional seconds.
type WireTime struct {
	time.Time
}

func NewWireTime(t time.Time) WireTime { return WireTime{Time: t.UTC()} }

func (t WireTime) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.UTC().Format(wireTimeLayout))
}

func (t *WireTime) UnmarshalJSON(data []byte) error {
	if bytes.Equal(data, []byte("null")) {
		return fmt.Errorf("session date: null is not a date")
	}
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("session date: %w", err)
	}
	parsed, err := time.Parse(time.RFC3339Nano, s)
	if err != nil {
		return fmt.Errorf("session date %q: %w", s, err)
	}
	t.Time = parsed
	return nil
}

// Session is a sale period with its commission and deposit fee policies.
// Relative values are percentages in [0,100]; fixed values are amounts.
type Session struct {
	DocID          string   `json:"_id"`
	ID             string   `json:"id"`
	StartDate      WireTime `json:"startDate"`
	EndDate        WireTime `json:"endDate"`
	EndDepositGame WireTime `json:"endDepositGame"`
	CommissionType string   `json:"commissionType"`
	Commission     int      `json:"commission"`
	DepositFeeType string   `json:"depositFeeType"`
	DepositFee     int      `json:"depositFee"`
	Version        int      `json:"__v"`
}

// Contains reports whether t falls inside [StartDate, EndDate].
func (s Session) Contains(t time.Time) bool {
	return !t.Before(s.StartDate.Time) && !t.After(s.EndDate.Time)
}
