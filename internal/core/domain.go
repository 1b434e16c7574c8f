package core

import (
	"errors"
	"strings"
	"time"
)

const (
	TypeGasto   EntryType = "gasto"
	TypeEntrada EntryType = "entrada"
)

const (
	BrandVisa            CardBrand = "Visa"
	BrandMastercard      CardBrand = "Mastercard"
	BrandElo             CardBrand = "Elo"
	BrandAmericanExpress CardBrand = "American Express"
	BrandHipercard       CardBrand = "Hipercard"
	BrandDiscover        CardBrand = "Discover"
	BrandDiners          CardBrand = "Diners"
	BrandOutra           CardBrand = "Outra"
)

type (
	// EntryType discriminates expenses (gasto) from income (entrada).
	EntryType string

	// CardBrand is the closed set of accepted card brands.
	CardBrand string

	// Entry is one financial record. Entries are immutable once created:
	// the facade builds them, the store persists them as-is, and delete is
	// the only mutation the collection ever sees.
	Entry struct {
		ID          string    `json:"id"`
		CreatedAt   time.Time `json:"createdAt"`
		Type        EntryType `json:"type"`
		Amount      float64   `json:"amount"`
		Description string    `json:"description"`
		CardBrand   CardBrand `json:"cardBrand,omitempty"`
	}
)

var (
	ErrInvalidAmount      = errors.New("invalid amount")
	ErrAmountNotPositive  = errors.New("amount must be greater than zero")
	ErrInvalidType        = errors.New("invalid entry type")
	ErrMissingDescription = errors.New("missing description")
	ErrInvalidCardBrand   = errors.New("invalid card brand")
	ErrNotFound           = errors.New("entry not found")
)

// Brands lists every accepted card brand.
func Brands() []CardBrand {
	return []CardBrand{
		BrandVisa,
		BrandMastercard,
		BrandElo,
		BrandAmericanExpress,
		BrandHipercard,
		BrandDiscover,
		BrandDiners,
		BrandOutra,
	}
}

// IsValid returns true if the entry type is one of the accepted values.
func (t EntryType) IsValid() bool {
	switch t {
	case TypeGasto, TypeEntrada:
		return true
	default:
		return false
	}
}

// String implements fmt.Stringer
func (t EntryType) String() string {
	return string(t)
}

// IsValid returns true if the brand is part of the closed set.
func (b CardBrand) IsValid() bool {
	for _, known := range Brands() {
		if b == known {
			return true
		}
	}
	return false
}

// String implements fmt.Stringer
func (b CardBrand) String() string {
	return string(b)
}

// Validate checks the invariants every persisted entry must satisfy.
// The card brand is optional; when present it must belong to the closed set.
func (e Entry) Validate() error {
	if e.Amount <= 0 {
		return ErrAmountNotPositive
	}
	if !e.Type.IsValid() {
		return ErrInvalidType
	}
	if len(strings.TrimSpace(e.Description)) == 0 {
		return ErrMissingDescription
	}
	if e.CardBrand != "" && !e.CardBrand.IsValid() {
		return ErrInvalidCardBrand
	}
	return nil
}
