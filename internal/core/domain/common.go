package domain

import (
	"fmt"
	"time"

	"github.com/SscSPs/finstatements/internal/apperrors"
)

// ReportPeriod is the date range a flow statement covers. It is a value object and is
// never persisted.
type ReportPeriod struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
}

// Validate checks the period is well formed.
func (p ReportPeriod) Validate() error {
	if p.StartDate.IsZero() || p.EndDate.IsZero() {
		return fmt.Errorf("%w: report period requires both start and end dates", apperrors.ErrValidation)
	}
	if p.StartDate.After(p.EndDate) {
		return fmt.Errorf("%w: start date %s is after end date %s", apperrors.ErrValidation,
			p.StartDate.Format("2006-01-02"), p.EndDate.Format("2006-01-02"))
	}
	return nil
}
