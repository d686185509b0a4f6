package usecase

import (
	"testing"
	"time"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/account"
	mAccount "github.com/openmint/marketapi/domain/account/mocks"
	"github.com/openmint/marketapi/domain/auction"
	mAuction "github.com/openmint/marketapi/domain/auction/mocks"
	mEscrow "github.com/openmint/marketapi/domain/escrow/mocks"
	"github.com/openmint/marketapi/domain/marketplace"
	mMarketplace "github.com/openmint/marketapi/domain/marketplace/mocks"
	mDomain "github.com/openmint/marketapi/domain/mocks"
)

type auctionSuite struct {
	suite.Suite

	auctionRepo   *mAuction.Repo
	marketplaceUC *mMarketplace.UseCase
	custodian     *mEscrow.Custodian
	activity      *mAccount.ActivityHistoryRepo
	txRunner      *mDomain.TxRunner

	im *impl
}

func TestAuctionSuite(t *testing.T) {
	suite.Run(t, new(auctionSuite))
}

var mockNow = time.Date(2024, 5, 1, 12, 0, 0, 0, time.UTC)

func (s *auctionSuite) SetupTest() {
	timeNow = func() time.Time { return mockNow }

	s.auctionRepo = &mAuction.Repo{}
	s.marketplaceUC = &mMarketplace.UseCase{}
	s.custodian = &mEscrow.Custodian{}
	s.activity = &mAccount.ActivityHistoryRepo{}
	s.txRunner = &mDomain.TxRunner{}

	s.txRunner.On("RunWithTransaction", mock.Anything, mock.Anything).
		Return(func(c ctx.Ctx, run func(ctx.Ctx) error) error { return run(c) }).Maybe()

	s.im = New(&AuctionUseCaseCfg{
		AuctionRepo:   s.auctionRepo,
		MarketplaceUC: s.marketplaceUC,
		Custodian:     s.custodian,
		ActivityRepo:  s.activity,
		TxRunner:      s.txRunner,
	}).(*impl)
}

func (s *auctionSuite) TearDownTest() {
	timeNow = time.Now

	s.auctionRepo.AssertExpectations(s.T())
	s.marketplaceUC.AssertExpectations(s.T())
	s.custodian.AssertExpectations(s.T())
	s.activity.AssertExpectations(s.T())
}

func (s *auctionSuite) TestCreate() {
	seller := domain.Address("seller")
	itemId := domain.ItemId("item-1")

	expected := &auction.Auction{
		ItemId:        itemId,
		Seller:        seller,
		StartingPrice: 100,
		ReservePrice:  150,
		StartTime:     mockNow,
		EndTime:       mockNow.Add(time.Hour),
		IsActive:      true,
	}

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(nil, domain.ErrNotFound).Once()
	s.custodian.On("Open", mock.Anything, domain.EscrowHolderKindAuction, itemId, seller).Return(nil, nil).Once()
	s.auctionRepo.On("Create", mock.Anything, expected).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.ActivityHistory) bool {
		return a.Type == account.ActivityHistoryTypeCreateAuction
	})).Return(nil).Once()

	res, err := s.im.Create(ctx.Background(), auction.CreateParams{
		Seller:        seller,
		ItemId:        itemId,
		StartingPrice: 100,
		ReservePrice:  150,
		Duration:      3600,
	})
	s.Nil(err)
	s.Equal(expected, res)
}

func (s *auctionSuite) TestCreateValidations() {
	c := ctx.Background()

	_, err := s.im.Create(c, auction.CreateParams{Seller: "seller", ItemId: "item-1", StartingPrice: 0, ReservePrice: 0, Duration: 60})
	s.ErrorIs(err, domain.ErrInvalidPrice)

	_, err = s.im.Create(c, auction.CreateParams{Seller: "seller", ItemId: "item-1", StartingPrice: 100, ReservePrice: 50, Duration: 60})
	s.ErrorIs(err, domain.ErrInvalidReservePrice)

	_, err = s.im.Create(c, auction.CreateParams{Seller: "seller", ItemId: "item-1", StartingPrice: 100, ReservePrice: 100, Duration: 0})
	s.ErrorIs(err, domain.ErrInvalidDuration)

	// a duration past the cap would push EndTime beyond what the
	// nanosecond arithmetic can represent
	_, err = s.im.Create(c, auction.CreateParams{Seller: "seller", ItemId: "item-1", StartingPrice: 100, ReservePrice: 100, Duration: 1 << 34})
	s.ErrorIs(err, domain.ErrInvalidDuration)

	_, err = s.im.Create(c, auction.CreateParams{Seller: "seller", ItemId: "item-1", StartingPrice: 100, ReservePrice: 100, Duration: maxAuctionDuration + 1})
	s.ErrorIs(err, domain.ErrInvalidDuration)
}

func (s *auctionSuite) TestCreateWhileActive() {
	itemId := domain.ItemId("item-1")

	s.auctionRepo.On("FindOne", mock.Anything, itemId).
		Return(&auction.Auction{ItemId: itemId, IsActive: true}, nil).Once()

	_, err := s.im.Create(ctx.Background(), auction.CreateParams{
		Seller: "seller", ItemId: itemId, StartingPrice: 100, ReservePrice: 100, Duration: 60,
	})
	s.ErrorIs(err, domain.ErrAlreadyOnAuction)
}

func (s *auctionSuite) runningAuction(itemId domain.ItemId) *auction.Auction {
	return &auction.Auction{
		ItemId:        itemId,
		Seller:        "seller",
		StartingPrice: 100,
		ReservePrice:  150,
		StartTime:     mockNow.Add(-time.Hour),
		EndTime:       mockNow.Add(time.Hour),
		IsActive:      true,
	}
}

func (s *auctionSuite) TestPlaceFirstBid() {
	itemId := domain.ItemId("item-1")
	bidder := domain.Address("bidder")

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(s.runningAuction(itemId), nil).Once()
	s.custodian.On("DepositFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, bidder, uint64(120)).Return(nil).Once()

	amount := uint64(120)
	s.auctionRepo.On("Patch", mock.Anything, itemId, auction.Patchable{
		CurrentBid:    &amount,
		HighestBidder: &bidder,
	}).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.ActivityHistory) bool {
		return a.Type == account.ActivityHistoryTypePlaceBid && a.Price == 120
	})).Return(nil).Once()

	res, err := s.im.PlaceBid(ctx.Background(), auction.BidParams{Bidder: bidder, Amount: 120, ItemId: itemId})
	s.Nil(err)
	s.Equal(uint64(120), res.CurrentBid)
	s.Equal(bidder, *res.HighestBidder)
}

func (s *auctionSuite) TestPlaceBidRefundsDisplacedBidder() {
	itemId := domain.ItemId("item-1")
	first := domain.Address("first")
	second := domain.Address("second")

	value := s.runningAuction(itemId)
	value.CurrentBid = 120
	value.HighestBidder = &first

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Once()
	s.custodian.On("WithdrawFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, first, uint64(120)).Return(nil).Once()
	s.custodian.On("DepositFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, second, uint64(130)).Return(nil).Once()
	s.auctionRepo.On("Patch", mock.Anything, itemId, mock.Anything).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.PlaceBid(ctx.Background(), auction.BidParams{Bidder: second, Amount: 130, ItemId: itemId})
	s.Nil(err)
	s.Equal(uint64(130), res.CurrentBid)
	s.Equal(second, *res.HighestBidder)
}

func (s *auctionSuite) TestPlaceBidValidations() {
	itemId := domain.ItemId("item-1")
	bidder := domain.Address("bidder")
	c := ctx.Background()

	value := s.runningAuction(itemId)
	value.CurrentBid = 120
	value.HighestBidder = &bidder

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Twice()

	_, err := s.im.PlaceBid(c, auction.BidParams{Bidder: "other", Amount: 120, ItemId: itemId})
	s.ErrorIs(err, domain.ErrBidTooLow)

	// outbidding yourself goes through the same gate
	_, err = s.im.PlaceBid(c, auction.BidParams{Bidder: bidder, Amount: 110, ItemId: itemId})
	s.ErrorIs(err, domain.ErrBidTooLow)
}

func (s *auctionSuite) TestPlaceBidBelowStarting() {
	itemId := domain.ItemId("item-1")

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(s.runningAuction(itemId), nil).Once()

	_, err := s.im.PlaceBid(ctx.Background(), auction.BidParams{Bidder: "bidder", Amount: 50, ItemId: itemId})
	s.ErrorIs(err, domain.ErrBidBelowStarting)
}

func (s *auctionSuite) TestPlaceBidAfterEnd() {
	itemId := domain.ItemId("item-1")

	value := s.runningAuction(itemId)
	value.EndTime = mockNow

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Once()

	// the end instant itself is already out of the window
	_, err := s.im.PlaceBid(ctx.Background(), auction.BidParams{Bidder: "bidder", Amount: 120, ItemId: itemId})
	s.ErrorIs(err, domain.ErrAuctionEnded)
}

func (s *auctionSuite) endedAuction(itemId domain.ItemId) *auction.Auction {
	return &auction.Auction{
		ItemId:        itemId,
		Seller:        "seller",
		StartingPrice: 100,
		ReservePrice:  150,
		StartTime:     mockNow.Add(-2 * time.Hour),
		EndTime:       mockNow.Add(-time.Hour),
		IsActive:      true,
	}
}

func (s *auctionSuite) TestSettleSold() {
	itemId := domain.ItemId("item-1")
	winner := domain.Address("winner")
	treasury := domain.Address("treasury")

	value := s.endedAuction(itemId)
	value.CurrentBid = 150
	value.HighestBidder = &winner

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Once()

	isActive := false
	s.auctionRepo.On("Patch", mock.Anything, itemId, auction.Patchable{IsActive: &isActive}).Return(nil).Once()
	s.marketplaceUC.On("Get", mock.Anything).Return(&marketplace.Marketplace{
		Treasury:       treasury,
		FeeBasisPoints: 200,
	}, nil).Once()
	s.custodian.On("WithdrawFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, treasury, uint64(3)).Return(nil).Once()
	s.custodian.On("WithdrawFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, domain.Address("seller"), uint64(147)).Return(nil).Once()
	s.custodian.On("ReleaseItem", mock.Anything, domain.EscrowHolderKindAuction, itemId, winner, domain.ItemTransferStandard).Return(nil).Once()
	s.marketplaceUC.On("RecordSale", mock.Anything, uint64(150)).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.MatchedBy(func(a *account.ActivityHistory) bool {
		return a.Type == account.ActivityHistoryTypeSettle
	})).Return(nil).Once()

	res, err := s.im.Settle(ctx.Background(), itemId)
	s.Nil(err)
	s.Equal(auction.OutcomeSold, res.Outcome)
	s.Equal(uint64(150), res.Price)
	s.Equal(winner, *res.Winner)
	s.Equal(uint64(3), res.Fee)
	s.Equal(uint64(147), res.SellerProceeds)
	s.Equal(uint64(0), res.Refunded)
}

func (s *auctionSuite) TestSettleReserveNotMet() {
	itemId := domain.ItemId("item-1")
	bidder := domain.Address("bidder")

	value := s.endedAuction(itemId)
	value.CurrentBid = 140
	value.HighestBidder = &bidder

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Once()

	isActive := false
	s.auctionRepo.On("Patch", mock.Anything, itemId, auction.Patchable{IsActive: &isActive}).Return(nil).Once()
	s.custodian.On("ReleaseItem", mock.Anything, domain.EscrowHolderKindAuction, itemId, domain.Address("seller"), domain.ItemTransferStandard).Return(nil).Once()
	s.custodian.On("WithdrawFunds", mock.Anything, domain.EscrowHolderKindAuction, itemId, bidder, uint64(140)).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.Settle(ctx.Background(), itemId)
	s.Nil(err)
	s.Equal(auction.OutcomeReturned, res.Outcome)
	s.Equal(uint64(140), res.Refunded)
	s.Equal(uint64(0), res.Fee)

	// no sale recorded, the full bid went back
	s.marketplaceUC.AssertNotCalled(s.T(), "RecordSale", mock.Anything, mock.Anything)
}

func (s *auctionSuite) TestSettleNoBids() {
	itemId := domain.ItemId("item-1")

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(s.endedAuction(itemId), nil).Once()

	isActive := false
	s.auctionRepo.On("Patch", mock.Anything, itemId, auction.Patchable{IsActive: &isActive}).Return(nil).Once()
	s.custodian.On("ReleaseItem", mock.Anything, domain.EscrowHolderKindAuction, itemId, domain.Address("seller"), domain.ItemTransferStandard).Return(nil).Once()
	s.activity.On("Insert", mock.Anything, mock.Anything).Return(nil).Once()

	res, err := s.im.Settle(ctx.Background(), itemId)
	s.Nil(err)
	s.Equal(auction.OutcomeReturned, res.Outcome)
	s.Equal(uint64(0), res.Refunded)
}

func (s *auctionSuite) TestSettleBeforeEnd() {
	itemId := domain.ItemId("item-1")

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(s.runningAuction(itemId), nil).Once()

	_, err := s.im.Settle(ctx.Background(), itemId)
	s.ErrorIs(err, domain.ErrAuctionNotEnded)
}

func (s *auctionSuite) TestSettleTwice() {
	itemId := domain.ItemId("item-1")

	value := s.endedAuction(itemId)
	value.IsActive = false

	s.auctionRepo.On("FindOne", mock.Anything, itemId).Return(value, nil).Once()

	_, err := s.im.Settle(ctx.Background(), itemId)
	s.ErrorIs(err, domain.ErrAuctionNotActive)
}
