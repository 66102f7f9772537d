package genkin_test

import (
	"errors"
	"sort"
	"testing"

	"github.com/genkinhq/genkin"
)

func TestCurrency_String(t *testing.T) {
	if got := genkin.USD.String(); got != "USD" {
		t.Errorf("String() = %q, want %q", got, "USD")
	}
}

func TestDefaultCurrency(t *testing.T) {
	if genkin.DefaultCurrency.Code != "USD" {
		t.Errorf("DefaultCurrency = %v, want USD", genkin.DefaultCurrency)
	}
}

func TestRegistry_Register(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r := genkin.NewRegistry()
		xts := genkin.Currency{Code: "XTS", Numeric: 963, Precision: 2, Name: "Testing Code", Base: 10}
		if err := r.Register(xts); err != nil {
			t.Fatalf("Register(XTS) failed: %v", err)
		}
		got, ok := r.Get("XTS")
		if !ok || got != xts {
			t.Errorf("Get(XTS) = %v, %v, want %v, true", got, ok, xts)
		}
	})

	t.Run("replaces", func(t *testing.T) {
		r := genkin.NewRegistry()
		first := genkin.Currency{Code: "XTS", Precision: 2, Base: 10}
		second := genkin.Currency{Code: "XTS", Precision: 4, Base: 10}
		if err := r.RegisterAll(first, second); err != nil {
			t.Fatalf("RegisterAll failed: %v", err)
		}
		if got, _ := r.Get("XTS"); got.Precision != 4 {
			t.Errorf("Get(XTS).Precision = %v, want 4", got.Precision)
		}
		if r.Size() != 1 {
			t.Errorf("Size() = %v, want 1", r.Size())
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]genkin.Currency{
			"empty code":         {Precision: 2, Base: 10},
			"negative precision": {Code: "XTS", Precision: -1, Base: 10},
			"base below two":     {Code: "XTS", Precision: 2, Base: 1},
		}
		for name, curr := range tests {
			t.Run(name, func(t *testing.T) {
				r := genkin.NewRegistry()
				if err := r.Register(curr); !errors.Is(err, genkin.ErrInvalidInput) {
					t.Errorf("Register(%v) error = %v, want %v", curr, err, genkin.ErrInvalidInput)
				}
			})
		}
	})
}

func TestRegistry_Get(t *testing.T) {
	r := genkin.DefaultRegistry()
	tests := []struct {
		code string
		ok   bool
	}{
		{"USD", true},
		{"usd", true},
		{"Usd", true},
		{"JPY", true},
		{"XXX", false},
		{"", false},
	}
	for _, tt := range tests {
		got, ok := r.Get(tt.code)
		if ok != tt.ok {
			t.Errorf("Get(%q) ok = %v, want %v", tt.code, ok, tt.ok)
			continue
		}
		if ok && got.Code == "" {
			t.Errorf("Get(%q) returned empty descriptor", tt.code)
		}
		if r.Has(tt.code) != tt.ok {
			t.Errorf("Has(%q) = %v, want %v", tt.code, !tt.ok, tt.ok)
		}
	}
}

func TestRegistry_Unregister(t *testing.T) {
	r := genkin.NewRegistry()
	if err := r.Register(genkin.USD); err != nil {
		t.Fatalf("Register(USD) failed: %v", err)
	}
	if !r.Unregister("usd") {
		t.Errorf("Unregister(usd) = false, want true")
	}
	if r.Has("USD") {
		t.Errorf("Has(USD) = true after Unregister")
	}
	if r.Unregister("USD") {
		t.Errorf("Unregister(USD) = true on empty registry")
	}
}

func TestRegistry_Clear(t *testing.T) {
	r := genkin.NewRegistry()
	if err := r.RegisterAll(genkin.USD, genkin.EUR); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	r.Clear()
	if r.Size() != 0 {
		t.Errorf("Size() = %v after Clear, want 0", r.Size())
	}
}

func TestRegistry_Codes(t *testing.T) {
	r := genkin.NewRegistry()
	if err := r.RegisterAll(genkin.USD, genkin.EUR, genkin.CHF); err != nil {
		t.Fatalf("RegisterAll failed: %v", err)
	}
	codes := r.Codes()
	if !sort.StringsAreSorted(codes) {
		t.Errorf("Codes() = %v, want lexical order", codes)
	}
	if len(codes) != 3 {
		t.Errorf("len(Codes()) = %v, want 3", len(codes))
	}
	all := r.All()
	for i, c := range all {
		if c.Code != codes[i] {
			t.Errorf("All()[%d] = %v, want %v", i, c.Code, codes[i])
		}
	}
}

func TestDefaultRegistry(t *testing.T) {
	r := genkin.DefaultRegistry()
	if r.Size() < 30 {
		t.Errorf("Size() = %v, want the full bundled table", r.Size())
	}
	// Spot-check the precision outliers.
	tests := []struct {
		code      string
		precision int
	}{
		{"USD", 2},
		{"JPY", 0},
		{"CLP", 0},
		{"ISK", 0},
		{"VND", 0},
		{"BHD", 3},
		{"KWD", 3},
		{"OMR", 3},
	}
	for _, tt := range tests {
		c, ok := r.Get(tt.code)
		if !ok {
			t.Errorf("Get(%q) not found", tt.code)
			continue
		}
		if c.Precision != tt.precision {
			t.Errorf("Get(%q).Precision = %v, want %v", tt.code, c.Precision, tt.precision)
		}
		if c.Base != 10 {
			t.Errorf("Get(%q).Base = %v, want 10", tt.code, c.Base)
		}
	}
}
