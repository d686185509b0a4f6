package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/item"
	mItem "github.com/openmint/marketapi/domain/item/mocks"
)

type itemSuite struct {
	suite.Suite

	holdingRepo *mItem.HoldingRepo

	im *impl
}

func TestItemSuite(t *testing.T) {
	suite.Run(t, new(itemSuite))
}

func (s *itemSuite) SetupTest() {
	s.holdingRepo = &mItem.HoldingRepo{}
	s.im = New(&ServiceCfg{HoldingRepo: s.holdingRepo}).(*impl)
}

func (s *itemSuite) TearDownTest() {
	s.holdingRepo.AssertExpectations(s.T())
}

func (s *itemSuite) TestTransfer() {
	itemId := domain.ItemId("item-1")
	from := domain.Address("from")
	to := domain.Address("to")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, from).Return(&item.Holding{
		ItemId: itemId,
		Holder: from,
		Amount: 1,
		Kind:   domain.ItemTransferStandard,
	}, nil).Once()
	s.holdingRepo.On("DebitExact", mock.Anything, itemId, from, uint64(1)).Return(nil).Once()
	s.holdingRepo.On("CreditN", mock.Anything, itemId, to, domain.ItemTransferStandard, uint64(1)).Return(nil).Once()

	s.Nil(s.im.Transfer(ctx.Background(), domain.ItemTransferStandard, itemId, from, to, 1))
}

func (s *itemSuite) TestTransferWrongKind() {
	itemId := domain.ItemId("item-1")
	from := domain.Address("from")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, from).Return(&item.Holding{
		ItemId: itemId,
		Holder: from,
		Amount: 1,
		Kind:   domain.ItemTransferStandard,
	}, nil).Once()

	err := s.im.Transfer(ctx.Background(), domain.ItemTransferCompressed, itemId, from, "to", 1)
	s.ErrorIs(err, domain.ErrBadParamInput)
}

func (s *itemSuite) TestTransferWithoutHolding() {
	itemId := domain.ItemId("item-1")
	from := domain.Address("from")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, from).Return(nil, domain.ErrNotFound).Once()

	err := s.im.Transfer(ctx.Background(), domain.ItemTransferStandard, itemId, from, "to", 1)
	s.ErrorIs(err, domain.ErrInsufficientItemBalance)
}

func (s *itemSuite) TestTransferPartialHolding() {
	itemId := domain.ItemId("item-1")
	from := domain.Address("from")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, from).Return(&item.Holding{
		ItemId: itemId,
		Holder: from,
		Amount: 2,
		Kind:   domain.ItemTransferStandard,
	}, nil).Once()
	s.holdingRepo.On("DebitExact", mock.Anything, itemId, from, uint64(1)).
		Return(domain.ErrInsufficientItemBalance).Once()

	err := s.im.Transfer(ctx.Background(), domain.ItemTransferStandard, itemId, from, "to", 1)
	s.ErrorIs(err, domain.ErrInsufficientItemBalance)
}

func (s *itemSuite) TestMint() {
	itemId := domain.ItemId("item-1")
	to := domain.Address("to")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, to).Return(nil, domain.ErrNotFound).Once()
	s.holdingRepo.On("CreditN", mock.Anything, itemId, to, domain.ItemTransferCompressed, uint64(1)).Return(nil).Once()

	s.Nil(s.im.Mint(ctx.Background(), domain.ItemTransferCompressed, itemId, to))
}

func (s *itemSuite) TestMintTwice() {
	itemId := domain.ItemId("item-1")
	to := domain.Address("to")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, to).
		Return(&item.Holding{ItemId: itemId, Holder: to, Amount: 1}, nil).Once()

	err := s.im.Mint(ctx.Background(), domain.ItemTransferStandard, itemId, to)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *itemSuite) TestBalanceOf() {
	itemId := domain.ItemId("item-1")
	holder := domain.Address("holder")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, holder).
		Return(&item.Holding{ItemId: itemId, Holder: holder, Amount: 1}, nil).Once()

	amount, err := s.im.BalanceOf(ctx.Background(), itemId, holder)
	s.Nil(err)
	s.Equal(uint64(1), amount)
}

func (s *itemSuite) TestBalanceOfMissingHolding() {
	itemId := domain.ItemId("item-1")
	holder := domain.Address("holder")

	s.holdingRepo.On("FindOne", mock.Anything, itemId, holder).Return(nil, domain.ErrNotFound).Once()

	amount, err := s.im.BalanceOf(ctx.Background(), itemId, holder)
	s.Nil(err)
	s.Equal(uint64(0), amount)
}
