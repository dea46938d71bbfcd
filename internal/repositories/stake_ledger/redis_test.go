package stake_ledger

import (
	"context"
	"testing"

	"github.com/alicebob/miniredis/v2"
	"github.com/redis/go-redis/v9"
	"github.com/stretchr/testify/suite"
)

type RedisRepositoryTestSuite struct {
	suite.Suite
	mr     *miniredis.Miniredis
	client *redis.Client
	repo   Repository
}

func (s *RedisRepositoryTestSuite) SetupTest() {
	// Create a new miniredis server for each test
	mr, err := miniredis.Run()
	s.Require().NoError(err)
	s.mr = mr

	// Create a Redis client connected to the miniredis server
	s.client = redis.NewClient(&redis.Options{
		Addr: s.mr.Addr(),
	})

	// Create the repository
	repo, err := NewRedis(&Config{
		RedisClient: s.client,
	})
	s.Require().NoError(err)
	s.repo = repo
}

func (s *RedisRepositoryTestSuite) TearDownTest() {
	s.client.Close()
	s.mr.Close()
}

func TestRedisRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(RedisRepositoryTestSuite))
}

func (s *RedisRepositoryTestSuite) TestDepositBuildsPot() {
	ctx := context.Background()

	err := s.repo.Deposit(ctx, &DepositInput{
		DuelID:  1,
		Account: "player-a",
		Amount:  100,
	})
	s.Require().NoError(err)

	err = s.repo.Deposit(ctx, &DepositInput{
		DuelID:  1,
		Account: "player-b",
		Amount:  100,
	})
	s.Require().NoError(err)

	pot, err := s.repo.GetPot(ctx, &GetPotInput{DuelID: 1})
	s.Require().NoError(err)
	s.Equal(uint64(200), pot)
}

func (s *RedisRepositoryTestSuite) TestPotsAreIndependentPerDuel() {
	ctx := context.Background()

	err := s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-a", Amount: 100})
	s.Require().NoError(err)

	err = s.repo.Deposit(ctx, &DepositInput{DuelID: 2, Account: "player-a", Amount: 300})
	s.Require().NoError(err)

	pot1, err := s.repo.GetPot(ctx, &GetPotInput{DuelID: 1})
	s.Require().NoError(err)
	s.Equal(uint64(100), pot1)

	pot2, err := s.repo.GetPot(ctx, &GetPotInput{DuelID: 2})
	s.Require().NoError(err)
	s.Equal(uint64(300), pot2)
}

func (s *RedisRepositoryTestSuite) TestGetPotMissingReadsZero() {
	pot, err := s.repo.GetPot(context.Background(), &GetPotInput{DuelID: 99})
	s.Require().NoError(err)
	s.Equal(uint64(0), pot)
}

func (s *RedisRepositoryTestSuite) TestPayoutTransfersFullPotOnce() {
	ctx := context.Background()

	err := s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-a", Amount: 100})
	s.Require().NoError(err)
	err = s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-b", Amount: 100})
	s.Require().NoError(err)

	out, err := s.repo.Payout(ctx, &PayoutInput{
		DuelID:  1,
		Account: "player-a",
	})
	s.Require().NoError(err)
	s.Equal(uint64(200), out.Amount)

	// Pot drains to zero
	pot, err := s.repo.GetPot(ctx, &GetPotInput{DuelID: 1})
	s.Require().NoError(err)
	s.Equal(uint64(0), pot)

	// Winner is credited the full pot
	balance, err := s.repo.GetBalance(ctx, &GetBalanceInput{Account: "player-a"})
	s.Require().NoError(err)
	s.Equal(uint64(200), balance)

	// A second payout for the same duel must fail
	_, err = s.repo.Payout(ctx, &PayoutInput{
		DuelID:  1,
		Account: "player-b",
	})
	s.Require().ErrorIs(err, ErrAlreadyPaid)

	// The loser's balance is untouched
	balance, err = s.repo.GetBalance(ctx, &GetBalanceInput{Account: "player-b"})
	s.Require().NoError(err)
	s.Equal(uint64(0), balance)
}

func (s *RedisRepositoryTestSuite) TestPayoutSplitConservesPot() {
	ctx := context.Background()

	err := s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-a", Amount: 150})
	s.Require().NoError(err)
	err = s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-b", Amount: 150})
	s.Require().NoError(err)

	out, err := s.repo.PayoutSplit(ctx, &PayoutSplitInput{
		DuelID:   1,
		AccountA: "player-a",
		AccountB: "player-b",
	})
	s.Require().NoError(err)
	s.Equal(uint64(150), out.AmountEach)

	balanceA, err := s.repo.GetBalance(ctx, &GetBalanceInput{Account: "player-a"})
	s.Require().NoError(err)
	balanceB, err := s.repo.GetBalance(ctx, &GetBalanceInput{Account: "player-b"})
	s.Require().NoError(err)

	// Every base unit deposited comes back out
	s.Equal(uint64(300), balanceA+balanceB)

	pot, err := s.repo.GetPot(ctx, &GetPotInput{DuelID: 1})
	s.Require().NoError(err)
	s.Equal(uint64(0), pot)
}

func (s *RedisRepositoryTestSuite) TestPayoutSplitOnlyOnce() {
	ctx := context.Background()

	err := s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-a", Amount: 100})
	s.Require().NoError(err)
	err = s.repo.Deposit(ctx, &DepositInput{DuelID: 1, Account: "player-b", Amount: 100})
	s.Require().NoError(err)

	_, err = s.repo.PayoutSplit(ctx, &PayoutSplitInput{
		DuelID:   1,
		AccountA: "player-a",
		AccountB: "player-b",
	})
	s.Require().NoError(err)

	_, err = s.repo.PayoutSplit(ctx, &PayoutSplitInput{
		DuelID:   1,
		AccountA: "player-a",
		AccountB: "player-b",
	})
	s.Require().ErrorIs(err, ErrAlreadyPaid)

	_, err = s.repo.Payout(ctx, &PayoutInput{
		DuelID:  1,
		Account: "player-a",
	})
	s.Require().ErrorIs(err, ErrAlreadyPaid)
}

func (s *RedisRepositoryTestSuite) TestPayoutWithoutPotFails() {
	_, err := s.repo.Payout(context.Background(), &PayoutInput{
		DuelID:  7,
		Account: "player-a",
	})
	s.Require().Error(err)
}

func (s *RedisRepositoryTestSuite) TestBalancesAccumulateAcrossDuels() {
	ctx := context.Background()

	for duelID := uint64(1); duelID <= 2; duelID++ {
		err := s.repo.Deposit(ctx, &DepositInput{DuelID: duelID, Account: "player-a", Amount: 100})
		s.Require().NoError(err)
		err = s.repo.Deposit(ctx, &DepositInput{DuelID: duelID, Account: "player-b", Amount: 100})
		s.Require().NoError(err)

		_, err = s.repo.Payout(ctx, &PayoutInput{DuelID: duelID, Account: "player-a"})
		s.Require().NoError(err)
	}

	balance, err := s.repo.GetBalance(ctx, &GetBalanceInput{Account: "player-a"})
	s.Require().NoError(err)
	s.Equal(uint64(400), balance)
}
