package auction

import "errors"

const (
	EventAuctionCreated     = "AuctionCreated"
	EventBidPlaced          = "BidPlaced"
	EventAuctionEnded       = "AuctionEnded"
	EventAuctionCanceled    = "AuctionCanceled"
	EventPlatformFeeUpdated = "PlatformFeeUpdated"
	EventInitialized        = "Initialized"
	EventPaymentReleased    = "PaymentReleased"
	EventPaymentDeferred    = "PaymentDeferred"
)

var (
	// validation
	ErrInvalidNftContract   = errors.New("Invalid NFT contract")
	ErrInvalidStartingPrice = errors.New("Invalid starting price")
	ErrReserveBelowStarting = errors.New("Reserve below starting price")
	ErrDurationTooShort     = errors.New("Duration too short")
	ErrDurationTooLong      = errors.New("Duration too long")
	ErrInvalidAmount        = errors.New("Invalid amount")
	ErrPaymentTokenMismatch = errors.New("Payment token mismatch")
	ErrETHAmountMismatch    = errors.New("ETH amount mismatch")
	ErrBelowStartingPrice   = errors.New("Below starting price")
	ErrBidTooLow            = errors.New("Bid too low")
	ErrFeeTooHigh           = errors.New("Fee too high")
	ErrInvalidOwner         = errors.New("Invalid owner")

	// authorization
	ErrNotSeller       = errors.New("Not seller")
	ErrNotOwner        = errors.New("Not owner")
	ErrNotFactory      = errors.New("Not factory")
	ErrSellerCannotBid = errors.New("Seller cannot bid")

	// state
	ErrEngineNotFound          = errors.New("Engine not found")
	ErrAuctionNotFound         = errors.New("Auction not found")
	ErrAlreadyInitialized      = errors.New("Already initialized")
	ErrNotInitialized          = errors.New("Not initialized")
	ErrAuctionEnded            = errors.New("Auction ended")
	ErrAuctionNotEnded         = errors.New("Auction not ended")
	ErrAuctionAlreadyFinalized = errors.New("Auction already finalized")
	ErrNothingToWithdraw       = errors.New("Nothing to withdraw")

	// resource
	ErrOracleUnavailable = errors.New("Oracle unavailable")
)
