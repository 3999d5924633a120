package domain

import (
	"time"

	"github.com/shopspring/decimal"
)

// AuditFields holds standard audit information for domain entities.
type AuditFields struct {
	CreatedAt     time.Time `json:"createdAt"`
	CreatedBy     string    `json:"createdBy"` // UserID Reference
	LastUpdatedAt time.Time `json:"lastUpdatedAt"`
	LastUpdatedBy string    `json:"lastUpdatedBy"` // UserID Reference
}

// AmountTolerance is the slack allowed when comparing amounts that passed through
// float-typed clients before reaching the store.
var AmountTolerance = decimal.NewFromFloat(0.01)

// DateRange is a half-open interval [From, To).
type DateRange struct {
	From time.Time `json:"from"`
	To   time.Time `json:"to"`
}

// NewDateRange builds a range, swapping the bounds if they were given in reverse.
func NewDateRange(from, to time.Time) DateRange {
	if to.Before(from) {
		from, to = to, from
	}
	return DateRange{From: from, To: to}
}

// DayRange returns the range covering the calendar day of t in t's location.
func DayRange(t time.Time) DateRange {
	start := time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, t.Location())
	return DateRange{From: start, To: start.AddDate(0, 0, 1)}
}

// AllTimeUntil returns an unbounded-start range ending at asOf.
func AllTimeUntil(asOf time.Time) DateRange {
	return DateRange{From: time.Time{}, To: asOf}
}

// Contains reports whether t falls inside the range.
func (r DateRange) Contains(t time.Time) bool {
	return !t.Before(r.From) && t.Before(r.To)
}

// StringPtr is a small helper for optional string fields.
func StringPtr(s string) *string {
	return &s
}

// DerefOr returns *s, or fallback when s is nil or empty.
func DerefOr(s *string, fallback string) string {
	if s == nil || *s == "" {
		return fallback
	}
	return *s
}
