package genkin_test

import (
	"errors"
	"math/big"
	"testing"

	"github.com/genkinhq/genkin"
	"github.com/genkinhq/genkin/calc"
)

func TestAmount_Allocate(t *testing.T) {
	t.Run("various", func(t *testing.T) {
		tests := []struct {
			units  int64
			ratios []int64
			want   []int64
		}{
			{1000, []int64{25, 75}, []int64{250, 750}},
			{1000, []int64{1, 3}, []int64{250, 750}},
			{1003, []int64{1, 1, 1}, []int64{335, 334, 334}},
			{1003, []int64{0, 1, 1}, []int64{0, 502, 501}},
			{100, []int64{1, 1, 1}, []int64{34, 33, 33}},
			{7, []int64{1, 2}, []int64{3, 4}},
			{-1003, []int64{1, 1, 1}, []int64{-334, -334, -335}},
			{0, []int64{1, 2, 3}, []int64{0, 0, 0}},
			{1000, []int64{100}, []int64{1000}},
		}
		for _, tt := range tests {
			a := usd(t, tt.units)
			shares, err := a.Allocate(tt.ratios...)
			if err != nil {
				t.Errorf("Allocate(%v, %v) failed: %v", tt.units, tt.ratios, err)
				continue
			}
			got := make([]int64, len(shares))
			sum := int64(0)
			for i, s := range shares {
				got[i] = s.MinorUnits()
				sum += s.MinorUnits()
				if s.Scale() != a.Scale() || s.Currency().Code != "USD" {
					t.Errorf("Allocate(%v, %v) share %d = %v, want USD at scale %v", tt.units, tt.ratios, i, s, a.Scale())
				}
			}
			if sum != tt.units {
				t.Errorf("Allocate(%v, %v) shares sum to %v, want %v", tt.units, tt.ratios, sum, tt.units)
			}
			for i := range tt.want {
				if got[i] != tt.want[i] {
					t.Errorf("Allocate(%v, %v) = %v, want %v", tt.units, tt.ratios, got, tt.want)
					break
				}
			}
		}
	})

	t.Run("error", func(t *testing.T) {
		tests := map[string]struct {
			ratios []int64
			err    error
		}{
			"no ratios":      {nil, genkin.ErrEmptyCollection},
			"zero total":     {[]int64{0, 0}, genkin.ErrEmptyCollection},
			"negative ratio": {[]int64{1, -1}, genkin.ErrInvalidInput},
		}
		for name, tt := range tests {
			t.Run(name, func(t *testing.T) {
				if _, err := usd(t, 1000).Allocate(tt.ratios...); !errors.Is(err, tt.err) {
					t.Errorf("Allocate(%v) error = %v, want %v", tt.ratios, err, tt.err)
				}
			})
		}
	})
}

func TestAmount_AllocateScaled(t *testing.T) {
	t.Run("mixed ratio scales", func(t *testing.T) {
		// 50.5% and 49.5% of 10.03.
		shares, err := usd(t, 1003).AllocateScaled(
			genkin.Scaled[int64]{Value: 505, Scale: 1},
			genkin.Scaled[int64]{Value: 495, Scale: 1},
		)
		if err != nil {
			t.Fatalf("AllocateScaled failed: %v", err)
		}
		want := []int64{507, 496}
		for i := range want {
			if shares[i].MinorUnits() != want[i] {
				t.Errorf("share %d = %v, want %v", i, shares[i].MinorUnits(), want[i])
			}
		}
	})

	t.Run("ratios normalized to common scale", func(t *testing.T) {
		// 1 at scale 0 and 10 at scale 1 are the same weight.
		shares, err := usd(t, 1000).AllocateScaled(
			genkin.Scaled[int64]{Value: 1, Scale: 0},
			genkin.Scaled[int64]{Value: 10, Scale: 1},
		)
		if err != nil {
			t.Fatalf("AllocateScaled failed: %v", err)
		}
		if shares[0].MinorUnits() != 500 || shares[1].MinorUnits() != 500 {
			t.Errorf("shares = [%v %v], want [500 500]", shares[0].MinorUnits(), shares[1].MinorUnits())
		}
	})

	t.Run("negative ratio scale", func(t *testing.T) {
		_, err := usd(t, 1000).AllocateScaled(genkin.Scaled[int64]{Value: 1, Scale: -1})
		if !errors.Is(err, genkin.ErrInvalidInput) {
			t.Errorf("got error %v, want %v", err, genkin.ErrInvalidInput)
		}
	})
}

// The shares must sum to the allocated amount exactly, for any input.
func TestAmount_AllocateSumExact(t *testing.T) {
	next := int64(7)
	for i := 0; i < 500; i++ {
		next = (next*6364136223846793005 + 1442695040888963407) % 1_000_003
		if next < 0 {
			next = -next
		}
		units := next%20_000 - 10_000
		ratios := []int64{next % 10, (next / 10) % 10, (next / 100) % 10, 1}
		shares, err := usd(t, units).Allocate(ratios...)
		if err != nil {
			t.Fatalf("Allocate(%v, %v) failed: %v", units, ratios, err)
		}
		sum := int64(0)
		for _, s := range shares {
			sum += s.MinorUnits()
		}
		if sum != units {
			t.Fatalf("Allocate(%v, %v) shares sum to %v, want %v", units, ratios, sum, units)
		}
	}
}

func TestAmount_AllocateBigInt(t *testing.T) {
	a, err := genkin.FromMinorUnits(calc.BigInt{}, genkin.USD, big.NewInt(1003))
	if err != nil {
		t.Fatalf("FromMinorUnits failed: %v", err)
	}
	shares, err := a.Allocate(big.NewInt(1), big.NewInt(1), big.NewInt(1))
	if err != nil {
		t.Fatalf("Allocate failed: %v", err)
	}
	want := []int64{335, 334, 334}
	for i := range want {
		if shares[i].MinorUnits().Int64() != want[i] {
			t.Errorf("share %d = %v, want %v", i, shares[i].MinorUnits(), want[i])
		}
	}
}

func TestAmount_Split(t *testing.T) {
	t.Run("various", func(t *testing.T) {
		tests := []struct {
			units int64
			parts int
			want  []int64
		}{
			{1003, 3, []int64{335, 334, 334}},
			{1000, 4, []int64{250, 250, 250, 250}},
			{5, 2, []int64{3, 2}},
			{100, 1, []int64{100}},
		}
		for _, tt := range tests {
			shares, err := usd(t, tt.units).Split(tt.parts)
			if err != nil {
				t.Errorf("Split(%v, %v) failed: %v", tt.units, tt.parts, err)
				continue
			}
			for i := range tt.want {
				if shares[i].MinorUnits() != tt.want[i] {
					t.Errorf("Split(%v, %v) share %d = %v, want %v", tt.units, tt.parts, i, shares[i].MinorUnits(), tt.want[i])
				}
			}
		}
	})

	t.Run("non-positive parts", func(t *testing.T) {
		for _, parts := range []int{0, -1} {
			if _, err := usd(t, 1000).Split(parts); !errors.Is(err, genkin.ErrInvalidInput) {
				t.Errorf("Split(%v) error = %v, want %v", parts, err, genkin.ErrInvalidInput)
			}
		}
	})
}
