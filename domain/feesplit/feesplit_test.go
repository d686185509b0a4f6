package feesplit

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/openmint/marketapi/domain"
)

func TestCalculate(t *testing.T) {
	req := require.New(t)

	cases := []struct {
		name       string
		price      uint64
		feeBps     uint16
		royaltyBps uint16
		want       Split
	}{
		{
			name:       "typical sale",
			price:      1000,
			feeBps:     250,
			royaltyBps: 500,
			want:       Split{Fee: 25, Royalty: 50, SellerAmount: 925},
		},
		{
			name:       "no fee no royalty",
			price:      1000,
			feeBps:     0,
			royaltyBps: 0,
			want:       Split{Fee: 0, Royalty: 0, SellerAmount: 1000},
		},
		{
			name:       "floor rounding",
			price:      999,
			feeBps:     250,
			royaltyBps: 333,
			want:       Split{Fee: 24, Royalty: 33, SellerAmount: 942},
		},
		{
			name:       "full fee",
			price:      1000,
			feeBps:     10000,
			royaltyBps: 0,
			want:       Split{Fee: 1000, Royalty: 0, SellerAmount: 0},
		},
		{
			name:       "zero price",
			price:      0,
			feeBps:     250,
			royaltyBps: 500,
			want:       Split{},
		},
	}

	for _, c := range cases {
		got, err := Calculate(c.price, c.feeBps, c.royaltyBps)
		req.NoError(err, c.name)
		req.Equal(c.want, *got, c.name)
		req.Equal(c.price, got.Fee+got.Royalty+got.SellerAmount, c.name)
	}
}

func TestCalculateMaxPrice(t *testing.T) {
	req := require.New(t)

	// the widened multiply keeps the max price from overflowing
	got, err := Calculate(math.MaxUint64, 250, 500)
	req.NoError(err)
	req.Equal(uint64(math.MaxUint64), got.Fee+got.Royalty+got.SellerAmount)
	req.Equal(uint64(math.MaxUint64)/40, got.Fee)
	req.Equal(uint64(math.MaxUint64)/20, got.Royalty)
}

func TestCalculateOutOfRange(t *testing.T) {
	req := require.New(t)

	_, err := Calculate(1000, 10001, 0)
	req.ErrorIs(err, domain.ErrInvalidFee)

	_, err = Calculate(1000, 0, 5001)
	req.ErrorIs(err, domain.ErrInvalidRoyalty)
}

func TestCalculateNegativeRemainder(t *testing.T) {
	req := require.New(t)

	// fee and royalty together exceed the price
	_, err := Calculate(1000, 10000, 5000)
	req.ErrorIs(err, domain.ErrAmountOverflow)
}

func TestCalculateConservation(t *testing.T) {
	req := require.New(t)

	prices := []uint64{1, 2, 3, 99, 100, 101, 9999, 10000, 10001, 123456789, math.MaxUint64 / 2}
	for _, price := range prices {
		for _, feeBps := range []uint16{0, 1, 250, 5000} {
			for _, royaltyBps := range []uint16{0, 1, 500, 4999} {
				got, err := Calculate(price, feeBps, royaltyBps)
				req.NoError(err)
				req.Equal(price, got.Fee+got.Royalty+got.SellerAmount)
			}
		}
	}
}
