package core

import (
	"encoding/json"
	"errors"
	"strings"
	"testing"
	"time"
)

func TestEntryTypeIsValid(t *testing.T) {
	tests := []struct {
		value EntryType
		want  bool
	}{
		{TypeGasto, true},
		{TypeEntrada, true},
		{EntryType("despesa"), false},
		{EntryType(""), false},
		{EntryType("Gasto"), false},
	}

	for _, tt := range tests {
		if got := tt.value.IsValid(); got != tt.want {
			t.Errorf("EntryType(%q).IsValid() = %v, want %v", tt.value, got, tt.want)
		}
	}
}

func TestCardBrandIsValid(t *testing.T) {
	for _, b := range Brands() {
		if !b.IsValid() {
			t.Errorf("brand %q should be valid", b)
		}
	}

	invalid := []CardBrand{"", "visa", "Amex", "Cartão"}
	for _, b := range invalid {
		if b.IsValid() {
			t.Errorf("brand %q should be invalid", b)
		}
	}

	if len(Brands()) != 8 {
		t.Errorf("expected 8 brands, got %d", len(Brands()))
	}
}

func TestEntryValidate(t *testing.T) {
	valid := Entry{
		ID:          "abc",
		CreatedAt:   time.Now(),
		Type:        TypeGasto,
		Amount:      99.9,
		Description: "Mercado",
		CardBrand:   BrandVisa,
	}

	tests := []struct {
		name    string
		mutate  func(e Entry) Entry
		wantErr error
	}{
		{
			name:    "valid entry",
			mutate:  func(e Entry) Entry { return e },
			wantErr: nil,
		},
		{
			name:    "valid without card brand",
			mutate:  func(e Entry) Entry { e.CardBrand = ""; return e },
			wantErr: nil,
		},
		{
			name:    "zero amount",
			mutate:  func(e Entry) Entry { e.Amount = 0; return e },
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "negative amount",
			mutate:  func(e Entry) Entry { e.Amount = -5; return e },
			wantErr: ErrAmountNotPositive,
		},
		{
			name:    "unknown type",
			mutate:  func(e Entry) Entry { e.Type = "outro"; return e },
			wantErr: ErrInvalidType,
		},
		{
			name:    "blank description",
			mutate:  func(e Entry) Entry { e.Description = "   "; return e },
			wantErr: ErrMissingDescription,
		},
		{
			name:    "unknown card brand",
			mutate:  func(e Entry) Entry { e.CardBrand = "Amex"; return e },
			wantErr: ErrInvalidCardBrand,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.mutate(valid).Validate()
			if !errors.Is(err, tt.wantErr) {
				t.Errorf("Validate() = %v, want %v", err, tt.wantErr)
			}
		})
	}
}

func TestEntryJSONOmitsAbsentCardBrand(t *testing.T) {
	e := Entry{
		ID:          "id-1",
		CreatedAt:   time.Date(2025, 3, 1, 12, 0, 0, 0, time.UTC),
		Type:        TypeEntrada,
		Amount:      2500,
		Description: "Salário",
	}

	raw, err := json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if strings.Contains(string(raw), "cardBrand") {
		t.Errorf("cardBrand key should be absent, got %s", raw)
	}

	e.CardBrand = BrandMastercard
	raw, err = json.Marshal(e)
	if err != nil {
		t.Fatalf("marshal: %v", err)
	}
	if !strings.Contains(string(raw), `"cardBrand":"Mastercard"`) {
		t.Errorf("cardBrand key should be present, got %s", raw)
	}
}
