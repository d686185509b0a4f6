// Package feesplit splits a sale price into marketplace fee, royalty and
// seller remainder. All math is integer basis points with floor rounding;
// the rounding residue accrues to no one.
package feesplit

import (
	"math/bits"

	"github.com/openmint/marketapi/domain"
)

const bpsDenominator = 10000

const (
	// MaxFeeBps is the cap for the marketplace fee rate
	MaxFeeBps = uint16(10000)
	// MaxRoyaltyBps is the cap for a listing's royalty rate
	MaxRoyaltyBps = uint16(5000)
)

// Split is the result of dividing a price between the fee treasury, the
// royalty recipient and the seller. Fee and Royalty round down and the
// seller takes the remainder, so Fee + Royalty + SellerAmount == price.
type Split struct {
	Fee          uint64
	Royalty      uint64
	SellerAmount uint64
}

// bpsShare computes floor(amount * bps / 10000) in a widened 128-bit
// domain so the multiplication cannot overflow.
func bpsShare(amount uint64, bps uint16) uint64 {
	hi, lo := bits.Mul64(amount, uint64(bps))
	quo, _ := bits.Div64(hi, lo, bpsDenominator)
	return quo
}

// Calculate splits price by feeBps and royaltyBps. It rejects rates outside
// their caps and fails with ErrAmountOverflow when the shares would exceed
// the price, so a partial payment is never observable by the caller.
func Calculate(price uint64, feeBps, royaltyBps uint16) (*Split, error) {
	if feeBps > MaxFeeBps {
		return nil, domain.ErrInvalidFee
	}
	if royaltyBps > MaxRoyaltyBps {
		return nil, domain.ErrInvalidRoyalty
	}

	fee := bpsShare(price, feeBps)
	royalty := bpsShare(price, royaltyBps)

	rest, borrow := bits.Sub64(price, fee, 0)
	rest, borrow2 := bits.Sub64(rest, royalty, borrow)
	if borrow2 != 0 {
		return nil, domain.ErrAmountOverflow
	}

	return &Split{
		Fee:          fee,
		Royalty:      royalty,
		SellerAmount: rest,
	}, nil
}
