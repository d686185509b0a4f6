package usecase

import (
	"math"
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/escrow"
	mEscrow "github.com/openmint/marketapi/domain/escrow/mocks"
	mItem "github.com/openmint/marketapi/domain/item/mocks"
	mWallet "github.com/openmint/marketapi/domain/wallet/mocks"
)

type custodianSuite struct {
	suite.Suite

	escrowRepo  *mEscrow.Repo
	itemService *mItem.Service
	ledger      *mWallet.Ledger

	im *impl
}

func TestCustodianSuite(t *testing.T) {
	suite.Run(t, new(custodianSuite))
}

var mockNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func (s *custodianSuite) SetupTest() {
	timeNow = func() time.Time { return mockNow }

	s.escrowRepo = &mEscrow.Repo{}
	s.itemService = &mItem.Service{}
	s.ledger = &mWallet.Ledger{}

	s.im = New(&CustodianCfg{
		EscrowRepo:  s.escrowRepo,
		ItemService: s.itemService,
		Ledger:      s.ledger,
	}).(*impl)
}

func (s *custodianSuite) TearDownTest() {
	timeNow = time.Now

	s.escrowRepo.AssertExpectations(s.T())
	s.itemService.AssertExpectations(s.T())
	s.ledger.AssertExpectations(s.T())
}

func (s *custodianSuite) TestOpen() {
	itemId := domain.ItemId("item-1")
	seller := domain.Address("seller")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindListing, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).Return(nil, domain.ErrNotFound).Once()
	s.itemService.On("Transfer", mock.Anything, domain.ItemTransferStandard, itemId, seller, holder, uint64(1)).Return(nil).Once()
	s.escrowRepo.On("Create", mock.Anything, &escrow.Escrow{
		Holder:    holder,
		ItemId:    itemId,
		OwnerKind: domain.EscrowHolderKindListing,
		OpenedAt:  mockNow,
	}).Return(nil).Once()

	res, err := s.im.Open(ctx.Background(), domain.EscrowHolderKindListing, itemId, seller)
	s.Nil(err)
	s.Equal(holder, res.Holder)
	s.False(res.Released)
}

func (s *custodianSuite) TestOpenOverActive() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindListing, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, Released: false}, nil).Once()

	_, err := s.im.Open(ctx.Background(), domain.EscrowHolderKindListing, itemId, "seller")
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *custodianSuite) TestOpenOverReleased() {
	itemId := domain.ItemId("item-1")
	seller := domain.Address("seller")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindListing, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, Released: true}, nil).Once()
	s.itemService.On("Transfer", mock.Anything, domain.ItemTransferStandard, itemId, seller, holder, uint64(1)).Return(nil).Once()
	s.escrowRepo.On("Delete", mock.Anything, holder).Return(nil).Once()
	s.escrowRepo.On("Create", mock.Anything, mock.Anything).Return(nil).Once()

	_, err := s.im.Open(ctx.Background(), domain.EscrowHolderKindListing, itemId, seller)
	s.Nil(err)
}

func (s *custodianSuite) TestReleaseItem() {
	itemId := domain.ItemId("item-1")
	buyer := domain.Address("buyer")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindListing, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, ItemId: itemId}, nil).Once()

	released := true
	releasedAt := mockNow
	s.escrowRepo.On("Patch", mock.Anything, holder, escrow.Patchable{
		Released:   &released,
		ReleasedAt: &releasedAt,
	}).Return(nil).Once()
	s.itemService.On("Transfer", mock.Anything, domain.ItemTransferCompressed, itemId, holder, buyer, uint64(1)).Return(nil).Once()

	err := s.im.ReleaseItem(ctx.Background(), domain.EscrowHolderKindListing, itemId, buyer, domain.ItemTransferCompressed)
	s.Nil(err)
}

func (s *custodianSuite) TestReleaseItemTwice() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, Released: true}, nil).Once()

	err := s.im.ReleaseItem(ctx.Background(), domain.EscrowHolderKindAuction, itemId, "buyer", domain.ItemTransferStandard)
	s.ErrorIs(err, domain.ErrEscrowReleased)
}

func (s *custodianSuite) TestDepositFunds() {
	itemId := domain.ItemId("item-1")
	bidder := domain.Address("bidder")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, FundsHeld: 0}, nil).Once()
	s.ledger.On("Transfer", mock.Anything, bidder, holder, uint64(120)).Return(nil).Once()

	held := uint64(120)
	s.escrowRepo.On("Patch", mock.Anything, holder, escrow.Patchable{FundsHeld: &held}).Return(nil).Once()

	err := s.im.DepositFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId, bidder, 120)
	s.Nil(err)
}

func (s *custodianSuite) TestDepositFundsOverflow() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, FundsHeld: math.MaxUint64}, nil).Once()

	err := s.im.DepositFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId, "bidder", 1)
	s.ErrorIs(err, domain.ErrAmountOverflow)
}

func (s *custodianSuite) TestWithdrawFunds() {
	itemId := domain.ItemId("item-1")
	to := domain.Address("seller")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, FundsHeld: 150}, nil).Once()
	s.ledger.On("Transfer", mock.Anything, holder, to, uint64(147)).Return(nil).Once()

	held := uint64(3)
	s.escrowRepo.On("Patch", mock.Anything, holder, escrow.Patchable{FundsHeld: &held}).Return(nil).Once()

	err := s.im.WithdrawFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId, to, 147)
	s.Nil(err)
}

func (s *custodianSuite) TestWithdrawMoreThanHeld() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, FundsHeld: 100}, nil).Once()

	err := s.im.WithdrawFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId, "seller", 101)
	s.ErrorIs(err, domain.ErrInsufficientBalance)
}

func (s *custodianSuite) TestHeldFunds() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).
		Return(&escrow.Escrow{Holder: holder, FundsHeld: 120}, nil).Once()

	held, err := s.im.HeldFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId)
	s.Nil(err)
	s.Equal(uint64(120), held)
}

func (s *custodianSuite) TestHeldFundsMissingEscrow() {
	itemId := domain.ItemId("item-1")
	holder := domain.DeriveEscrowHolder(domain.EscrowHolderKindAuction, itemId)

	s.escrowRepo.On("FindOne", mock.Anything, holder).Return(nil, domain.ErrNotFound).Once()

	held, err := s.im.HeldFunds(ctx.Background(), domain.EscrowHolderKindAuction, itemId)
	s.Nil(err)
	s.Equal(uint64(0), held)
}
