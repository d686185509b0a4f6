package usecase

import (
	"testing"

	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/suite"

	"github.com/openmint/marketapi/base/ctx"
	"github.com/openmint/marketapi/domain"
	"github.com/openmint/marketapi/domain/wallet"
	mWallet "github.com/openmint/marketapi/domain/wallet/mocks"
)

type ledgerSuite struct {
	suite.Suite

	walletRepo *mWallet.Repo

	im *impl
}

func TestLedgerSuite(t *testing.T) {
	suite.Run(t, new(ledgerSuite))
}

func (s *ledgerSuite) SetupTest() {
	s.walletRepo = &mWallet.Repo{}
	s.im = New(&LedgerCfg{WalletRepo: s.walletRepo}).(*impl)
}

func (s *ledgerSuite) TearDownTest() {
	s.walletRepo.AssertExpectations(s.T())
}

func (s *ledgerSuite) TestTransfer() {
	from := domain.Address("from")
	to := domain.Address("to")

	s.walletRepo.On("Debit", mock.Anything, from, uint64(100)).Return(nil).Once()
	s.walletRepo.On("Credit", mock.Anything, to, uint64(100)).Return(nil).Once()

	s.Nil(s.im.Transfer(ctx.Background(), from, to, 100))
}

func (s *ledgerSuite) TestTransferZeroIsNoop() {
	s.Nil(s.im.Transfer(ctx.Background(), "from", "to", 0))

	s.walletRepo.AssertNotCalled(s.T(), "Debit", mock.Anything, mock.Anything, mock.Anything)
	s.walletRepo.AssertNotCalled(s.T(), "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ledgerSuite) TestTransferInsufficientBalance() {
	from := domain.Address("from")

	s.walletRepo.On("Debit", mock.Anything, from, uint64(100)).
		Return(domain.ErrInsufficientBalance).Once()

	err := s.im.Transfer(ctx.Background(), from, "to", 100)
	s.ErrorIs(err, domain.ErrInsufficientBalance)

	// a failed debit never credits the receiver
	s.walletRepo.AssertNotCalled(s.T(), "Credit", mock.Anything, mock.Anything, mock.Anything)
}

func (s *ledgerSuite) TestDeposit() {
	to := domain.Address("to")

	s.walletRepo.On("Credit", mock.Anything, to, uint64(500)).Return(nil).Once()

	s.Nil(s.im.Deposit(ctx.Background(), to, 500))
}

func (s *ledgerSuite) TestBalance() {
	addr := domain.Address("addr")

	s.walletRepo.On("FindOne", mock.Anything, addr).
		Return(&wallet.Wallet{Address: addr, Amount: 42}, nil).Once()

	amount, err := s.im.Balance(ctx.Background(), addr)
	s.Nil(err)
	s.Equal(uint64(42), amount)
}

func (s *ledgerSuite) TestBalanceMissingWallet() {
	addr := domain.Address("addr")

	s.walletRepo.On("FindOne", mock.Anything, addr).Return(nil, domain.ErrNotFound).Once()

	amount, err := s.im.Balance(ctx.Background(), addr)
	s.Nil(err)
	s.Equal(uint64(0), amount)
}
