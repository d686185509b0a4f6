package domain

import "errors"

var (
	// ErrInternalServerError will throw if any the Internal Server Error happen
	ErrInternalServerError = errors.New("Internal Server Error")
	// ErrNotFound will throw if the requested item is not exists
	ErrNotFound = errors.New("Your requested Item is not found")
	// ErrConflict will throw if the current action already exists
	ErrConflict = errors.New("Your Item already exist")
	// ErrBadParamInput will throw if the given request-body or params is not valid
	ErrBadParamInput = errors.New("Given Param is not valid")

	// validation errors, rejected before any state change
	ErrInvalidFee          = errors.New("invalid fee basis points")
	ErrInvalidPrice        = errors.New("invalid price")
	ErrInvalidRoyalty      = errors.New("invalid royalty basis points")
	ErrInvalidReservePrice = errors.New("invalid reserve price")
	ErrInvalidDuration     = errors.New("invalid duration")
	ErrInvalidAddress      = errors.New("invalid address")

	// state-conflict errors, the record is left untouched
	ErrAlreadyListed     = errors.New("item is already listed")
	ErrAlreadyOnAuction  = errors.New("item is already on auction")
	ErrListingNotActive  = errors.New("listing is not active")
	ErrAuctionNotActive  = errors.New("auction is not active")
	ErrAuctionEnded      = errors.New("auction has ended")
	ErrAuctionNotEnded   = errors.New("auction has not ended yet")
	ErrBidTooLow         = errors.New("bid amount is too low")
	ErrBidBelowStarting  = errors.New("bid is below starting price")
	ErrNotOwner          = errors.New("caller is not the owner")
	ErrEscrowReleased    = errors.New("escrow has already been released")

	// arithmetic errors abort the whole operation
	ErrAmountOverflow = errors.New("amount overflow")

	// external-dependency errors propagate as aborts, no partial transfer persists
	ErrInsufficientBalance     = errors.New("insufficient balance")
	ErrInsufficientItemBalance = errors.New("insufficient item balance")
	ErrInvalidMetadata         = errors.New("metadata does not comply with the marketplace standard")
)
