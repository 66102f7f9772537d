package genkin_test

import (
	"errors"
	"testing"

	"github.com/genkinhq/genkin"
	"github.com/genkinhq/genkin/calc"
)

func TestNewExchRate(t *testing.T) {
	t.Run("valid", func(t *testing.T) {
		r, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: 920, Scale: 3})
		if err != nil {
			t.Fatalf("NewExchRate failed: %v", err)
		}
		if r.Base().Code != "USD" || r.Quote().Code != "EUR" {
			t.Errorf("pair = %v/%v, want USD/EUR", r.Base(), r.Quote())
		}
		if got := r.Rate(); got.Value != 920 || got.Scale != 3 {
			t.Errorf("Rate() = %v, want {920 3}", got)
		}
		if got := r.String(); got != "USD/EUR" {
			t.Errorf("String() = %q, want %q", got, "USD/EUR")
		}
	})

	t.Run("identity", func(t *testing.T) {
		// A rate between a currency and itself must be exactly one at
		// whatever scale it is expressed.
		if _, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.USD, genkin.Scaled[int64]{Value: 100, Scale: 2}); err != nil {
			t.Errorf("NewExchRate(USD/USD, 1.00) failed: %v", err)
		}
		_, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.USD, genkin.Scaled[int64]{Value: 101, Scale: 2})
		if !errors.Is(err, genkin.ErrInvalidInput) {
			t.Errorf("NewExchRate(USD/USD, 1.01) error = %v, want %v", err, genkin.ErrInvalidInput)
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			fn func() error
		}{
			"nil calculator": {func() error {
				_, err := genkin.NewExchRate[int64](nil, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: 1})
				return err
			}},
			"invalid base": {func() error {
				_, err := genkin.NewExchRate(calc.Int64{}, genkin.Currency{}, genkin.EUR, genkin.Scaled[int64]{Value: 1})
				return err
			}},
			"invalid quote": {func() error {
				_, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.Currency{}, genkin.Scaled[int64]{Value: 1})
				return err
			}},
			"negative rate scale": {func() error {
				_, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: 1, Scale: -1})
				return err
			}},
			"zero rate": {func() error {
				_, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: 0})
				return err
			}},
			"negative rate": {func() error {
				_, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: -920, Scale: 3})
				return err
			}},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if err := tt.fn(); !errors.Is(err, genkin.ErrInvalidInput) {
					t.Errorf("got error %v, want %v", err, genkin.ErrInvalidInput)
				}
			})
		}
	})
}

func TestExchangeRate_Conv(t *testing.T) {
	rate, err := genkin.NewExchRate(calc.Int64{}, genkin.USD, genkin.EUR, genkin.Scaled[int64]{Value: 920, Scale: 3})
	if err != nil {
		t.Fatalf("NewExchRate failed: %v", err)
	}

	t.Run("converts base amount", func(t *testing.T) {
		a := usd(t, 1050)
		if !rate.CanConv(a) {
			t.Fatalf("CanConv(%v) = false, want true", a)
		}
		got, err := rate.Conv(a)
		if err != nil {
			t.Fatalf("Conv(%v) failed: %v", a, err)
		}
		if got.MinorUnits() != 966000 || got.Scale() != 5 || got.Currency().Code != "EUR" {
			t.Errorf("Conv(%v) = %v %v at scale %v, want 966000 EUR at 5",
				a, got.MinorUnits(), got.Currency().Code, got.Scale())
		}
	})

	t.Run("rejects quote amount", func(t *testing.T) {
		b, err := genkin.FromMinorUnits(calc.Int64{}, genkin.EUR, int64(1050))
		if err != nil {
			t.Fatalf("FromMinorUnits(EUR, 1050) failed: %v", err)
		}
		if rate.CanConv(b) {
			t.Errorf("CanConv(%v) = true, want false", b)
		}
		if _, err := rate.Conv(b); !errors.Is(err, genkin.ErrCurrencyMismatch) {
			t.Errorf("Conv(%v) error = %v, want %v", b, err, genkin.ErrCurrencyMismatch)
		}
	})
}
