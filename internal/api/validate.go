package api

import (
	"encoding/json"
	"math"
	"strings"

	"github.com/shopspring/decimal"

	"gastos/internal/core"
)

// CreateEntryInput is the raw creation request. Amount accepts either a
// number or Brazilian-formatted text ("1.234,56"), matching what a form
// field or a JSON body would carry.
type CreateEntryInput struct {
	Type        string `json:"type"`
	Amount      any    `json:"amount"`
	Description string `json:"description,omitempty"`
	CardBrand   string `json:"cardBrand,omitempty"`
}

// normalizeEntry validates a creation request and produces the normalized
// entry, without id and timestamp. Checks short-circuit in a fixed order so
// a request with several problems always reports the same one: amount parse,
// amount range, type, description, card brand.
func normalizeEntry(in CreateEntryInput) (core.Entry, error) {
	amount, err := parseAmount(in.Amount)
	if err != nil {
		return core.Entry{}, err
	}
	if !amount.IsPositive() {
		return core.Entry{}, core.ErrAmountNotPositive
	}

	entryType := core.EntryType(in.Type)
	if !entryType.IsValid() {
		return core.Entry{}, core.ErrInvalidType
	}

	description := strings.TrimSpace(in.Description)
	if description == "" {
		return core.Entry{}, core.ErrMissingDescription
	}

	brand := core.CardBrand(in.CardBrand)
	if brand != "" && !brand.IsValid() {
		return core.Entry{}, core.ErrInvalidCardBrand
	}

	rounded, _ := amount.Round(2).Float64()

	return core.Entry{
		Type:        entryType,
		Amount:      rounded,
		Description: description,
		CardBrand:   brand,
	}, nil
}

func parseAmount(raw any) (decimal.Decimal, error) {
	switch v := raw.(type) {
	case float64:
		if math.IsNaN(v) || math.IsInf(v, 0) {
			return decimal.Decimal{}, core.ErrInvalidAmount
		}
		return decimal.NewFromFloat(v), nil
	case float32:
		return parseAmount(float64(v))
	case int:
		return decimal.NewFromInt(int64(v)), nil
	case int64:
		return decimal.NewFromInt(v), nil
	case json.Number:
		return parseAmountString(v.String())
	case string:
		return parseAmountString(v)
	default:
		return decimal.Decimal{}, core.ErrInvalidAmount
	}
}

// parseAmountString normalizes Brazilian formatting before parsing: "."
// groups thousands and "," marks the decimals, so "1.234,56" is 1234.56.
func parseAmountString(s string) (decimal.Decimal, error) {
	clean := strings.ReplaceAll(strings.TrimSpace(s), ".", "")
	clean = strings.ReplaceAll(clean, ",", ".")

	d, err := decimal.NewFromString(clean)
	if err != nil {
		return decimal.Decimal{}, core.ErrInvalidAmount
	}
	return d, nil
}
