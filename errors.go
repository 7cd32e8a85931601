package rqdliq

import (
	"errors"

	"github.com/yy2792/rqdliq/date"
)

var (
	// ErrInvalidFrequency is returned for an unrecognized redemption frequency.
	ErrInvalidFrequency = errors.New("invalid redemption frequency")
	// ErrInvalidFundTerms is returned when fund terms are out of range.
	ErrInvalidFundTerms = errors.New("invalid fund terms")
	// ErrNegativeNAV is returned when a tranche is given a negative nav.
	ErrNegativeNAV = errors.New("negative nav")
	// ErrFundMismatch is returned when a projection is asked with another tranche's fund.
	ErrFundMismatch = errors.New("fund does not match tranche")
	// ErrUnknownFund is returned when a fund name is not in the portfolio.
	ErrUnknownFund = errors.New("unknown fund")
	// ErrUnknownTranche is returned when a tranche id is not in the portfolio.
	ErrUnknownTranche = errors.New("unknown tranche")
	// ErrDuplicateTrancheID is returned when a tranche id is registered twice.
	ErrDuplicateTrancheID = errors.New("duplicate tranche id")
	// ErrNoNAV is returned when a weighted average is asked over a zero total nav.
	ErrNoNAV = errors.New("no nav to weight")
	// ErrInvalidDateFormat is returned for malformed dates at the boundary.
	ErrInvalidDateFormat = date.ErrInvalidFormat
)
