package models

import (
	"errors"
	"strings"
	"unicode/utf8"

	"github.com/shopspring/decimal"
)

const (
	GenderMale    = "M"
	GenderFemale  = "F"
	GenderUnknown = "U"
)

// Column limits of the aggregate tables. Tags on TransactionRecord repeat
// them because struct tags must be literals.
const (
	MaxIdentifierLength = 64
	AmountScale         = 2
)

// AmountCeiling bounds a single transaction amount well inside DECIMAL(20,2).
var AmountCeiling = decimal.New(1, 12)

var (
	ErrInvalidAmount   = errors.New("transaction amount cannot be negative")
	ErrMissingMerchant = errors.New("transaction merchant is required")
	ErrMissingCustomer = errors.New("transaction customer is required")
	ErrFieldTooLong    = errors.New("transaction identifier exceeds 64 characters")
	ErrAmountPrecision = errors.New("transaction amount has more than 2 decimal places")
	ErrAmountTooLarge  = errors.New("transaction amount exceeds the supported ceiling")
)

// TransactionRecord is one row of an ingested batch. Records are never
// mutated after parsing.
type TransactionRecord struct {
	Step            int             `json:"step" validate:"gte=0"`
	CustomerName    string          `json:"customer" validate:"required,max=64"`
	Age             string          `json:"age"`
	Gender          string          `json:"gender"`
	ZipcodeOrigin   string          `json:"zipcodeOri"`
	MerchantID      string          `json:"merchant" validate:"required,max=64"`
	ZipMerchant     string          `json:"zipMerchant"`
	TransactionType string          `json:"category"`
	Amount          decimal.Decimal `json:"amount" validate:"non_negative_decimal,decimal_places=2,decimal_lt=1000000000000"`
	Fraud           bool            `json:"fraud"`
}

// Validate checks the fields the aggregates depend on
func (r *TransactionRecord) Validate() error {
	if strings.TrimSpace(r.MerchantID) == "" {
		return ErrMissingMerchant
	}
	if strings.TrimSpace(r.CustomerName) == "" {
		return ErrMissingCustomer
	}
	if utf8.RuneCountInString(r.MerchantID) > MaxIdentifierLength ||
		utf8.RuneCountInString(r.CustomerName) > MaxIdentifierLength {
		return ErrFieldTooLong
	}
	if r.Amount.IsNegative() {
		return ErrInvalidAmount
	}
	if !r.Amount.Equal(r.Amount.Truncate(AmountScale)) {
		return ErrAmountPrecision
	}
	if r.Amount.GreaterThanOrEqual(AmountCeiling) {
		return ErrAmountTooLarge
	}
	return nil
}

// NormalizedGender maps the raw gender column to M, F or U.
func (r *TransactionRecord) NormalizedGender() string {
	switch r.Gender {
	case GenderMale:
		return GenderMale
	case GenderFemale:
		return GenderFemale
	default:
		return GenderUnknown
	}
}

func (r *TransactionRecord) IsMale() bool {
	return r.NormalizedGender() == GenderMale
}

func (r *TransactionRecord) IsFemale() bool {
	return r.NormalizedGender() == GenderFemale
}

// TrimQuoted strips the single quotes the BankSim export wraps around text columns.
func TrimQuoted(value string) string {
	value = strings.TrimSpace(value)
	if len(value) >= 2 && value[0] == '\'' && value[len(value)-1] == '\'' {
		return value[1 : len(value)-1]
	}
	return value
}
