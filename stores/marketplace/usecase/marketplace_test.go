package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/marketplace"
	mMarketplace "github.com/openmint/marketapi/domain/marketplace/mocks"
)

type marketplaceSuite struct {
	suite.Suite

	marketplaceRepo *mMarketplace.Repo

	im *impl
}

func TestMarketplaceSuite(t *testing.T) {
	suite.Run(t, new(marketplaceSuite))
}

func (s *marketplaceSuite) SetupTest() {
	s.marketplaceRepo = &mMarketplace.Repo{}
	s.im = New(&MarketplaceUseCaseCfg{MarketplaceRepo: s.marketplaceRepo}).(*impl)
}

func (s *marketplaceSuite) TearDownTest() {
	s.marketplaceRepo.AssertExpectations(s.T())
}

func (s *marketplaceSuite) TestInitialize() {
	expected := &marketplace.Marketplace{
		Key:            marketplace.SingletonKey,
		Authority:      "authority",
		Treasury:       "treasury",
		FeeBasisPoints: 250,
	}

	s.marketplaceRepo.On("Create", mock.Anything, expected).Return(nil).Once()

	res, err := s.im.Initialize(ctx.Background(), "authority", "treasury", 250)
	s.Nil(err)
	s.Equal(expected, res)
}

func (s *marketplaceSuite) TestInitializeValidations() {
	c := ctx.Background()

	_, err := s.im.Initialize(c, "authority", "treasury", 10001)
	s.ErrorIs(err, domain.ErrInvalidFee)

	_, err = s.im.Initialize(c, "", "treasury", 250)
	s.ErrorIs(err, domain.ErrInvalidAddress)

	_, err = s.im.Initialize(c, "authority", "", 250)
	s.ErrorIs(err, domain.ErrInvalidAddress)
}

func (s *marketplaceSuite) TestInitializeTwice() {
	s.marketplaceRepo.On("Create", mock.Anything, mock.Anything).Return(domain.ErrConflict).Once()

	_, err := s.im.Initialize(ctx.Background(), "authority", "treasury", 250)
	s.ErrorIs(err, domain.ErrConflict)
}

func (s *marketplaceSuite) TestGetStats() {
	s.marketplaceRepo.On("FindOne", mock.Anything).Return(&marketplace.Marketplace{
		Key:         marketplace.SingletonKey,
		TotalSales:  3,
		TotalVolume: 4500,
	}, nil).Once()

	stats, err := s.im.GetStats(ctx.Background())
	s.Nil(err)
	s.Equal(&marketplace.Stats{TotalSales: 3, TotalVolume: 4500}, stats)
}

func (s *marketplaceSuite) TestGetBeforeInitialize() {
	s.marketplaceRepo.On("FindOne", mock.Anything).Return(nil, domain.ErrNotFound).Once()

	_, err := s.im.Get(ctx.Background())
	s.ErrorIs(err, domain.ErrNotFound)
}

func (s *marketplaceSuite) TestRecordSale() {
	s.marketplaceRepo.On("IncrementSales", mock.Anything, uint64(1000)).Return(nil).Once()

	s.Nil(s.im.RecordSale(ctx.Background(), 1000))
}
