package duel

import (
	"context"
	"errors"
	"sync"

	"github.com/KirkDiggler/duelarena/internal/commitment"
	"github.com/KirkDiggler/duelarena/internal/common/clock"
	"github.com/KirkDiggler/duelarena/internal/common/uuid"
	"github.com/KirkDiggler/duelarena/internal/gate"
	"github.com/KirkDiggler/duelarena/internal/models"
	duelRepo "github.com/KirkDiggler/duelarena/internal/repositories/duel"
	eventRepo "github.com/KirkDiggler/duelarena/internal/repositories/event"
	ledgerRepo "github.com/KirkDiggler/duelarena/internal/repositories/stake_ledger"
	"github.com/KirkDiggler/duelarena/internal/rules"
)

// service implements the Service interface
type service struct {
	config     *Config
	duelRepo   duelRepo.Repository
	ledgerRepo ledgerRepo.Repository
	eventRepo  eventRepo.Repository
	gate       *gate.Gate
	clock      clock.Clock
	uuider     uuid.UUID

	// duelLocks serializes mutations per duel id. One call fully
	// completes, including any triggered payout, before the next call
	// for the same duel is admitted; independent duels do not contend.
	duelLocks sync.Map
}

// New creates a new duel service
func New(cfg *Config) (*service, error) {
	if cfg == nil {
		return nil, ErrNilConfig
	}

	if cfg.DuelRepo == nil {
		return nil, ErrNilDuelRepo
	}

	if cfg.LedgerRepo == nil {
		return nil, ErrNilLedgerRepo
	}

	if cfg.EventRepo == nil {
		return nil, ErrNilEventRepo
	}

	if cfg.Gate == nil {
		return nil, ErrNilGate
	}

	if cfg.Clock == nil {
		return nil, ErrNilClock
	}

	if cfg.UUIDGenerator == nil {
		return nil, ErrNilUUIDGenerator
	}

	// Apply stake bound and timeout defaults
	if cfg.MinStake == 0 {
		cfg.MinStake = DefaultMinStake
	}

	if cfg.MaxStake == 0 {
		cfg.MaxStake = DefaultMaxStake
	}

	if cfg.RoundTimeout == 0 {
		cfg.RoundTimeout = DefaultRoundTimeout
	}

	return &service{
		config:     cfg,
		duelRepo:   cfg.DuelRepo,
		ledgerRepo: cfg.LedgerRepo,
		eventRepo:  cfg.EventRepo,
		gate:       cfg.Gate,
		clock:      cfg.Clock,
		uuider:     cfg.UUIDGenerator,
	}, nil
}

// lockDuel acquires the mutation lock for a duel id and returns the
// unlock function
func (s *service) lockDuel(duelID uint64) func() {
	v, _ := s.duelLocks.LoadOrStore(duelID, &sync.Mutex{})
	mu := v.(*sync.Mutex)
	mu.Lock()
	return mu.Unlock
}

// emit appends an event to the log, stamping id and time
func (s *service) emit(ctx context.Context, ev *models.Event) error {
	ev.ID = s.uuider.NewUUID()
	ev.Timestamp = s.clock.Now()

	return s.eventRepo.AppendEvent(ctx, &eventRepo.AppendEventInput{
		Event: ev,
	})
}

// getDuel fetches a duel, mapping the repository's not-found error to
// the service sentinel
func (s *service) getDuel(ctx context.Context, duelID uint64) (*models.Duel, error) {
	duel, err := s.duelRepo.GetDuel(ctx, &duelRepo.GetDuelInput{
		DuelID: duelID,
	})
	if err != nil {
		if errors.Is(err, duelRepo.ErrDuelNotFound) {
			return nil, ErrDuelNotFound
		}
		return nil, err
	}

	return duel, nil
}

// CreateDuel opens a new duel and escrows the initiator's stake
func (s *service) CreateDuel(ctx context.Context, input *CreateDuelInput) (*CreateDuelOutput, error) {
	if s.gate.Paused() {
		return nil, ErrPaused
	}

	if !rules.ValidRoundCount(input.TotalRounds) {
		return nil, ErrInvalidRoundCount
	}

	if input.Stake < s.config.MinStake || input.Stake > s.config.MaxStake {
		return nil, ErrInvalidStake
	}

	// Allocate the duel id; ids are monotonic and never reused
	duelID, err := s.duelRepo.NextDuelID(ctx)
	if err != nil {
		return nil, err
	}

	// Escrow the initiator's stake
	err = s.ledgerRepo.Deposit(ctx, &ledgerRepo.DepositInput{
		DuelID:  duelID,
		Account: input.CallerID,
		Amount:  input.Stake,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	duel := &models.Duel{
		ID:           duelID,
		Initiator:    input.CallerID,
		StakeAmount:  input.Stake,
		TotalRounds:  input.TotalRounds,
		CurrentRound: 1,
		Status:       models.DuelStatusOpen,
		Rounds:       make([]models.RoundRecord, input.TotalRounds),
		CreatedAt:    now,
		UpdatedAt:    now,
	}

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	err = s.emit(ctx, &models.Event{
		Type:        models.EventDuelCreated,
		DuelID:      duelID,
		Actor:       input.CallerID,
		Stake:       input.Stake,
		TotalRounds: input.TotalRounds,
	})
	if err != nil {
		return nil, err
	}

	return &CreateDuelOutput{
		DuelID: duelID,
	}, nil
}

// JoinDuel adds a challenger to an open duel and escrows their stake
func (s *service) JoinDuel(ctx context.Context, input *JoinDuelInput) (*JoinDuelOutput, error) {
	if s.gate.Paused() {
		return nil, ErrPaused
	}

	unlock := s.lockDuel(input.DuelID)
	defer unlock()

	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if input.CallerID == duel.Initiator {
		return nil, ErrSelfJoin
	}

	if duel.Status != models.DuelStatusOpen {
		return nil, ErrInvalidState
	}

	if input.Stake != duel.StakeAmount {
		return nil, ErrStakeMismatch
	}

	// Escrow the challenger's stake; the pot is now 2x the stake
	err = s.ledgerRepo.Deposit(ctx, &ledgerRepo.DepositInput{
		DuelID:  duel.ID,
		Account: input.CallerID,
		Amount:  input.Stake,
	})
	if err != nil {
		return nil, err
	}

	now := s.clock.Now()
	duel.Challenger = input.CallerID
	duel.Status = models.DuelStatusActive
	duel.RoundDeadline = now.Add(s.config.RoundTimeout)
	duel.UpdatedAt = now

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	err = s.emit(ctx, &models.Event{
		Type:   models.EventDuelJoined,
		DuelID: duel.ID,
		Actor:  input.CallerID,
	})
	if err != nil {
		return nil, err
	}

	return &JoinDuelOutput{
		Duel: duel,
	}, nil
}

// CommitMove stores a side's hidden move commitment for the current round
func (s *service) CommitMove(ctx context.Context, input *CommitMoveInput) (*CommitMoveOutput, error) {
	unlock := s.lockDuel(input.DuelID)
	defer unlock()

	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if !duel.IsParticipant(input.CallerID) {
		return nil, ErrNotAParticipant
	}

	if duel.Status != models.DuelStatusActive {
		return nil, ErrInvalidState
	}

	if len(input.Digest) != commitment.DigestSize {
		return nil, ErrInvalidDigest
	}

	side := duel.SideOf(input.CallerID)
	round := duel.Round(duel.CurrentRound)
	record := round.BySide(side)

	if record.Committed() {
		return nil, ErrAlreadyCommitted
	}

	// Store only the digest; the move stays hidden until reveal
	record.Commitment = append([]byte(nil), input.Digest...)
	duel.UpdatedAt = s.clock.Now()

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	err = s.emit(ctx, &models.Event{
		Type:   models.EventMoveCommitted,
		DuelID: duel.ID,
		Actor:  input.CallerID,
		Side:   side,
	})
	if err != nil {
		return nil, err
	}

	return &CommitMoveOutput{
		Round:         duel.CurrentRound,
		BothCommitted: round.Initiator.Committed() && round.Challenger.Committed(),
	}, nil
}

// RevealMove opens a side's commitment. When the reveal completes the
// pair for the round, the round is resolved immediately: scores update,
// the duel advances or settles, and settlement pays the pot.
func (s *service) RevealMove(ctx context.Context, input *RevealMoveInput) (*RevealMoveOutput, error) {
	unlock := s.lockDuel(input.DuelID)
	defer unlock()

	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if !duel.IsParticipant(input.CallerID) {
		return nil, ErrNotAParticipant
	}

	if duel.Status != models.DuelStatusActive {
		return nil, ErrInvalidState
	}

	if !input.Move.Valid() {
		return nil, ErrInvalidMove
	}

	secret, err := commitment.ParseSecret(input.Secret)
	if err != nil {
		return nil, ErrInvalidReveal
	}

	side := duel.SideOf(input.CallerID)
	round := duel.Round(duel.CurrentRound)
	record := round.BySide(side)

	if !record.Committed() {
		return nil, ErrNotCommitted
	}

	if record.Revealed {
		return nil, ErrAlreadyRevealed
	}

	// Binding check: the claimed pair must reproduce the stored digest
	if !commitment.Verify(record.Commitment, input.Move, secret) {
		return nil, ErrInvalidReveal
	}

	record.Move = input.Move
	record.Revealed = true
	duel.UpdatedAt = s.clock.Now()

	output := &RevealMoveOutput{
		Round:  duel.CurrentRound,
		Scores: duel.Scores,
	}

	pairComplete := round.Initiator.Revealed && round.Challenger.Revealed
	var settledEvent *models.Event

	if pairComplete {
		roundWinner := s.resolveRound(duel, round)
		output.RoundComplete = true
		output.RoundWinner = roundWinner
		output.Scores = duel.Scores

		if duel.Status == models.DuelStatusSettled {
			// Pay the pot before persisting the terminal state so a
			// failed payout leaves the duel untouched
			potPaid, winner, err := s.payOut(ctx, duel)
			if err != nil {
				return nil, err
			}

			output.Settled = true
			output.Winner = winner
			output.PotPaid = potPaid

			settledEvent = &models.Event{
				Type:   models.EventDuelSettled,
				DuelID: duel.ID,
				Winner: winner,
				Pot:    potPaid,
			}
		}
	}

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	move := input.Move
	err = s.emit(ctx, &models.Event{
		Type:   models.EventMoveRevealed,
		DuelID: duel.ID,
		Actor:  input.CallerID,
		Side:   side,
		Move:   &move,
	})
	if err != nil {
		return nil, err
	}

	if pairComplete {
		err = s.emit(ctx, &models.Event{
			Type:   models.EventRoundResolved,
			DuelID: duel.ID,
			Round:  output.Round,
			Winner: output.RoundWinner,
		})
		if err != nil {
			return nil, err
		}
	}

	if settledEvent != nil {
		if err := s.emit(ctx, settledEvent); err != nil {
			return nil, err
		}
	}

	return output, nil
}

// resolveRound scores a completed round and advances or settles the
// duel in memory. It returns the round winner, empty on a tie.
func (s *service) resolveRound(duel *models.Duel, round *models.RoundRecord) models.Side {
	var roundWinner models.Side

	switch rules.Resolve(round.Initiator.Move, round.Challenger.Move) {
	case rules.OutcomeFirst:
		duel.Scores.Initiator++
		roundWinner = models.SideInitiator
	case rules.OutcomeSecond:
		duel.Scores.Challenger++
		roundWinner = models.SideChallenger
	case rules.OutcomeTie:
		// Ties score nothing but still consume the round
	}

	majority := rules.MajorityThreshold(duel.TotalRounds)

	switch {
	case duel.Scores.Initiator >= majority:
		duel.Status = models.DuelStatusSettled
		duel.Winner = models.SideInitiator
	case duel.Scores.Challenger >= majority:
		duel.Status = models.DuelStatusSettled
		duel.Winner = models.SideChallenger
	case duel.CurrentRound == duel.TotalRounds:
		// Rounds exhausted; the higher score wins, equal scores split
		duel.Status = models.DuelStatusSettled
		if duel.Scores.Initiator > duel.Scores.Challenger {
			duel.Winner = models.SideInitiator
		} else if duel.Scores.Challenger > duel.Scores.Initiator {
			duel.Winner = models.SideChallenger
		}
	default:
		duel.CurrentRound++
		duel.RoundDeadline = s.clock.Now().Add(s.config.RoundTimeout)
	}

	return roundWinner
}

// payOut drains the pot for a settled duel: the winner takes all, an
// even score splits the pot back to both sides
func (s *service) payOut(ctx context.Context, duel *models.Duel) (uint64, models.Side, error) {
	if duel.Winner != "" {
		out, err := s.ledgerRepo.Payout(ctx, &ledgerRepo.PayoutInput{
			DuelID:  duel.ID,
			Account: duel.AccountOf(duel.Winner),
		})
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrAlreadyPaid) {
				return 0, "", ErrAlreadyPaid
			}
			return 0, "", err
		}
		return out.Amount, duel.Winner, nil
	}

	out, err := s.ledgerRepo.PayoutSplit(ctx, &ledgerRepo.PayoutSplitInput{
		DuelID:   duel.ID,
		AccountA: duel.Initiator,
		AccountB: duel.Challenger,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrAlreadyPaid) {
			return 0, "", ErrAlreadyPaid
		}
		return 0, "", err
	}
	return out.AmountEach * 2, "", nil
}

// GetDuel retrieves a duel record; open to any caller, participants and
// observers alike
func (s *service) GetDuel(ctx context.Context, input *GetDuelInput) (*GetDuelOutput, error) {
	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	return &GetDuelOutput{
		Duel: duel,
	}, nil
}

// ListOpenDuels retrieves duels waiting for a challenger
func (s *service) ListOpenDuels(ctx context.Context, input *ListOpenDuelsInput) (*ListOpenDuelsOutput, error) {
	out, err := s.duelRepo.ListOpenDuels(ctx, &duelRepo.ListOpenDuelsInput{
		Limit: input.Limit,
	})
	if err != nil {
		return nil, err
	}

	return &ListOpenDuelsOutput{
		Duels: out.Duels,
	}, nil
}

// CancelDuel cancels an open duel and refunds the initiator's stake.
// Only the initiator or the admin account may cancel, and only while no
// challenger has joined.
func (s *service) CancelDuel(ctx context.Context, input *CancelDuelInput) (*CancelDuelOutput, error) {
	unlock := s.lockDuel(input.DuelID)
	defer unlock()

	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if input.CallerID != duel.Initiator && input.CallerID != s.config.AdminAccount {
		return nil, ErrUnauthorized
	}

	if duel.Status != models.DuelStatusOpen {
		return nil, ErrInvalidState
	}

	// The pot holds only the initiator's stake; return it
	out, err := s.ledgerRepo.Payout(ctx, &ledgerRepo.PayoutInput{
		DuelID:  duel.ID,
		Account: duel.Initiator,
	})
	if err != nil {
		if errors.Is(err, ledgerRepo.ErrAlreadyPaid) {
			return nil, ErrAlreadyPaid
		}
		return nil, err
	}

	duel.Status = models.DuelStatusCancelled
	duel.UpdatedAt = s.clock.Now()

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	err = s.emit(ctx, &models.Event{
		Type:   models.EventDuelCancelled,
		DuelID: duel.ID,
		Actor:  input.CallerID,
	})
	if err != nil {
		return nil, err
	}

	return &CancelDuelOutput{
		Refunded: out.Amount,
	}, nil
}

// ClaimForfeit resolves an active duel whose round deadline has passed.
// The participant who progressed further through the current round's
// commit/reveal takes the pot; if both sides stalled at the same point,
// the stakes are split back and the duel is cancelled.
func (s *service) ClaimForfeit(ctx context.Context, input *ClaimForfeitInput) (*ClaimForfeitOutput, error) {
	unlock := s.lockDuel(input.DuelID)
	defer unlock()

	duel, err := s.getDuel(ctx, input.DuelID)
	if err != nil {
		return nil, err
	}

	if !duel.IsParticipant(input.CallerID) {
		return nil, ErrNotAParticipant
	}

	if duel.Status != models.DuelStatusActive {
		return nil, ErrInvalidState
	}

	if !s.clock.Now().After(duel.RoundDeadline) {
		return nil, ErrDeadlineNotPassed
	}

	side := duel.SideOf(input.CallerID)
	round := duel.Round(duel.CurrentRound)
	mine := roundProgress(round.BySide(side))
	theirs := roundProgress(round.BySide(side.Opponent()))

	if mine < theirs {
		// The claimant is the one defaulting
		return nil, ErrForfeitNotClaimable
	}

	output := &ClaimForfeitOutput{}
	var settledEvent *models.Event

	if mine > theirs {
		// Opponent defaulted; claimant takes the whole pot
		out, err := s.ledgerRepo.Payout(ctx, &ledgerRepo.PayoutInput{
			DuelID:  duel.ID,
			Account: input.CallerID,
		})
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrAlreadyPaid) {
				return nil, ErrAlreadyPaid
			}
			return nil, err
		}

		duel.Status = models.DuelStatusSettled
		duel.Winner = side
		output.Won = true
		output.Amount = out.Amount

		settledEvent = &models.Event{
			Type:   models.EventDuelSettled,
			DuelID: duel.ID,
			Winner: side,
			Pot:    out.Amount,
		}
	} else {
		// Both sides idle; unwind the escrow
		out, err := s.ledgerRepo.PayoutSplit(ctx, &ledgerRepo.PayoutSplitInput{
			DuelID:   duel.ID,
			AccountA: duel.Initiator,
			AccountB: duel.Challenger,
		})
		if err != nil {
			if errors.Is(err, ledgerRepo.ErrAlreadyPaid) {
				return nil, ErrAlreadyPaid
			}
			return nil, err
		}

		duel.Status = models.DuelStatusCancelled
		output.Amount = out.AmountEach

		settledEvent = &models.Event{
			Type:   models.EventDuelCancelled,
			DuelID: duel.ID,
			Actor:  input.CallerID,
		}
	}

	duel.UpdatedAt = s.clock.Now()

	err = s.duelRepo.SaveDuel(ctx, &duelRepo.SaveDuelInput{
		Duel: duel,
	})
	if err != nil {
		return nil, err
	}

	if err := s.emit(ctx, settledEvent); err != nil {
		return nil, err
	}

	return output, nil
}

// roundProgress ranks how far a side got through a round: 0 nothing,
// 1 committed, 2 revealed
func roundProgress(record *models.SideRecord) int {
	switch {
	case record.Revealed:
		return 2
	case record.Committed():
		return 1
	default:
		return 0
	}
}

// GetBalance retrieves an account's paid-out balance
func (s *service) GetBalance(ctx context.Context, input *GetBalanceInput) (*GetBalanceOutput, error) {
	balance, err := s.ledgerRepo.GetBalance(ctx, &ledgerRepo.GetBalanceInput{
		Account: input.Account,
	})
	if err != nil {
		return nil, err
	}

	return &GetBalanceOutput{
		Balance: balance,
	}, nil
}

// Pause blocks new duel creation and joining. In-flight duels keep
// their commit/reveal entry points so active rounds can finish.
func (s *service) Pause(ctx context.Context, input *PauseInput) error {
	if input.CallerID != s.config.AdminAccount {
		return ErrUnauthorized
	}

	s.gate.Pause()
	return nil
}

// Unpause lifts the pause
func (s *service) Unpause(ctx context.Context, input *UnpauseInput) error {
	if input.CallerID != s.config.AdminAccount {
		return ErrUnauthorized
	}

	s.gate.Resume()
	return nil
}
