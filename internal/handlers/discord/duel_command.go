package discord

import (
	"context"
	"encoding/hex"
	"fmt"

	"github.com/KirkDiggler/duelarena/internal/commitment"
	"github.com/KirkDiggler/duelarena/internal/models"
	duelService "github.com/KirkDiggler/duelarena/internal/services/duel"
	"github.com/bwmarrin/discordgo"
	"github.com/rs/zerolog"
)

// DuelCommand handles the /duel command and its subcommands
type DuelCommand struct {
	BaseCommand
	duelService duelService.Service
	logger      zerolog.Logger
}

// NewDuelCommand creates a new duel command handler
func NewDuelCommand(svc duelService.Service, logger zerolog.Logger) *DuelCommand {
	moveChoices := []*discordgo.ApplicationCommandOptionChoice{
		{Name: "Sword", Value: models.MoveSword.String()},
		{Name: "Shield", Value: models.MoveShield.String()},
		{Name: "Magic", Value: models.MoveMagic.String()},
	}

	duelIDOption := func() *discordgo.ApplicationCommandOption {
		return &discordgo.ApplicationCommandOption{
			Type:        discordgo.ApplicationCommandOptionInteger,
			Name:        "duel",
			Description: "Duel ID",
			Required:    true,
		}
	}

	return &DuelCommand{
		BaseCommand: BaseCommand{
			Name:        "duel",
			Description: "Staked best-of-N duels with sealed moves",
			Options: []*discordgo.ApplicationCommandOption{
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "create",
					Description: "Open a new duel and stake the pot",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionInteger,
							Name:        "rounds",
							Description: "Best of how many rounds",
							Required:    true,
							Choices: []*discordgo.ApplicationCommandOptionChoice{
								{Name: "Best of 3", Value: 3},
								{Name: "Best of 5", Value: 5},
								{Name: "Best of 7", Value: 7},
							},
						},
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "stake",
							Description: "Stake in coins (0.001 to 10)",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "join",
					Description: "Join an open duel by matching its stake",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
						{
							Type:        discordgo.ApplicationCommandOptionNumber,
							Name:        "stake",
							Description: "Stake in coins, must match the duel's stake",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "seal",
					Description: "Generate a secret and sealed digest for a move",
					Options: []*discordgo.ApplicationCommandOption{
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "move",
							Description: "The move to seal",
							Required:    true,
							Choices:     moveChoices,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "commit",
					Description: "Commit a sealed move digest for the current round",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "digest",
							Description: "The 64-character hex digest from /duel seal",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "reveal",
					Description: "Reveal your committed move",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "move",
							Description: "The move you sealed",
							Required:    true,
							Choices:     moveChoices,
						},
						{
							Type:        discordgo.ApplicationCommandOptionString,
							Name:        "secret",
							Description: "The 32-character hex secret from /duel seal",
							Required:    true,
						},
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "status",
					Description: "Show the state of a duel",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "list",
					Description: "List open duels waiting for a challenger",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "cancel",
					Description: "Cancel an open duel and refund the stake",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "forfeit",
					Description: "Claim a duel where the opponent missed the round deadline",
					Options: []*discordgo.ApplicationCommandOption{
						duelIDOption(),
					},
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "balance",
					Description: "Show your winnings balance",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "pause",
					Description: "Pause duel creation and joining (admin only)",
				},
				{
					Type:        discordgo.ApplicationCommandOptionSubCommand,
					Name:        "unpause",
					Description: "Resume duel creation and joining (admin only)",
				},
			},
		},
		duelService: svc,
		logger:      logger,
	}
}

// Handle processes /duel interactions
func (c *DuelCommand) Handle(s *discordgo.Session, i *discordgo.InteractionCreate) error {
	data := i.ApplicationCommandData()
	if len(data.Options) == 0 {
		return RespondWithError(s, i, "No subcommand provided")
	}

	sub := data.Options[0]
	userID := interactionUserID(i)
	if userID == "" {
		return RespondWithError(s, i, "Could not determine who you are")
	}

	ctx := context.Background()

	switch sub.Name {
	case "create":
		return c.handleCreate(ctx, s, i, userID, sub.Options)
	case "join":
		return c.handleJoin(ctx, s, i, userID, sub.Options)
	case "seal":
		return c.handleSeal(s, i, sub.Options)
	case "commit":
		return c.handleCommit(ctx, s, i, userID, sub.Options)
	case "reveal":
		return c.handleReveal(ctx, s, i, userID, sub.Options)
	case "status":
		return c.handleStatus(ctx, s, i, sub.Options)
	case "list":
		return c.handleList(ctx, s, i)
	case "cancel":
		return c.handleCancel(ctx, s, i, userID, sub.Options)
	case "forfeit":
		return c.handleForfeit(ctx, s, i, userID, sub.Options)
	case "balance":
		return c.handleBalance(ctx, s, i, userID)
	case "pause":
		return c.handlePause(ctx, s, i, userID)
	case "unpause":
		return c.handleUnpause(ctx, s, i, userID)
	default:
		return RespondWithError(s, i, fmt.Sprintf("Unknown subcommand: %s", sub.Name))
	}
}

func (c *DuelCommand) handleCreate(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	rounds := int(intOption(opts, "rounds"))
	stakeCoins := numberOption(opts, "stake")

	out, err := c.duelService.CreateDuel(ctx, &duelService.CreateDuelInput{
		CallerID:    userID,
		TotalRounds: rounds,
		Stake:       models.CoinsToBase(stakeCoins),
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Msg("create duel failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"Duel **#%d** is open: best of %d for %s per side. Join with `/duel join duel:%d stake:%g`.",
		out.DuelID, rounds, formatCoins(models.CoinsToBase(stakeCoins)), out.DuelID, stakeCoins,
	))
}

func (c *DuelCommand) handleJoin(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))
	stakeCoins := numberOption(opts, "stake")

	out, err := c.duelService.JoinDuel(ctx, &duelService.JoinDuelInput{
		DuelID:   duelID,
		CallerID: userID,
		Stake:    models.CoinsToBase(stakeCoins),
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Uint64("duel", duelID).Msg("join duel failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, renderDuelEmbed(out.Duel,
		fmt.Sprintf("<@%s> accepted the challenge. Round 1 begins: seal a move with `/duel seal`, then commit it.", userID)))
}

// handleSeal never touches the service: the secret must only ever be
// shown to its owner, so the response is ephemeral
func (c *DuelCommand) handleSeal(s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	move, err := models.ParseMove(stringOption(opts, "move"))
	if err != nil {
		return RespondWithError(s, i, "Moves are sword, shield or magic")
	}

	secret, err := commitment.NewSecret()
	if err != nil {
		c.logger.Error().Err(err).Msg("secret generation failed")
		return RespondWithError(s, i, "Could not generate a secret, try again")
	}

	digest := commitment.Digest(move, secret)

	return RespondWithEphemeralEmbed(s, i, &discordgo.MessageEmbed{
		Title: fmt.Sprintf("Sealed: %s", move),
		Description: "Commit the digest now and keep the secret until both players have committed. " +
			"Anyone who sees the secret early can read your move.",
		Color: embedColorNeutral,
		Fields: []*discordgo.MessageEmbedField{
			{
				Name:  "Digest",
				Value: fmt.Sprintf("`%s`", hex.EncodeToString(digest)),
			},
			{
				Name:  "Secret",
				Value: fmt.Sprintf("`%s`", secret.String()),
			},
		},
	})
}

func (c *DuelCommand) handleCommit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))

	digest, err := hex.DecodeString(stringOption(opts, "digest"))
	if err != nil {
		return RespondWithError(s, i, "The digest must be the hex string from `/duel seal`")
	}

	out, err := c.duelService.CommitMove(ctx, &duelService.CommitMoveInput{
		DuelID:   duelID,
		CallerID: userID,
		Digest:   digest,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Uint64("duel", duelID).Msg("commit failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	msg := fmt.Sprintf("<@%s> committed a sealed move for round %d of duel **#%d**.", userID, out.Round, duelID)
	if out.BothCommitted {
		msg += " Both moves are in, reveal with `/duel reveal`."
	}
	return RespondWithMessage(s, i, msg)
}

func (c *DuelCommand) handleReveal(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))

	move, err := models.ParseMove(stringOption(opts, "move"))
	if err != nil {
		return RespondWithError(s, i, "Moves are sword, shield or magic")
	}

	out, err := c.duelService.RevealMove(ctx, &duelService.RevealMoveInput{
		DuelID:   duelID,
		CallerID: userID,
		Move:     move,
		Secret:   stringOption(opts, "secret"),
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Uint64("duel", duelID).Msg("reveal failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, renderRevealEmbed(duelID, userID, move, out))
}

func (c *DuelCommand) handleStatus(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))

	out, err := c.duelService.GetDuel(ctx, &duelService.GetDuelInput{DuelID: duelID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEmbed(s, i, renderDuelEmbed(out.Duel, ""))
}

func (c *DuelCommand) handleList(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate) error {
	out, err := c.duelService.ListOpenDuels(ctx, &duelService.ListOpenDuelsInput{Limit: 10})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	if len(out.Duels) == 0 {
		return RespondWithMessage(s, i, "No open duels. Start one with `/duel create`.")
	}

	return RespondWithEmbed(s, i, renderOpenDuelsEmbed(out.Duels))
}

func (c *DuelCommand) handleCancel(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))

	out, err := c.duelService.CancelDuel(ctx, &duelService.CancelDuelInput{
		DuelID:   duelID,
		CallerID: userID,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Uint64("duel", duelID).Msg("cancel failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithMessage(s, i, fmt.Sprintf(
		"Duel **#%d** cancelled, %s refunded.", duelID, formatCoins(out.Refunded)))
}

func (c *DuelCommand) handleForfeit(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string, opts []*discordgo.ApplicationCommandInteractionDataOption) error {
	duelID := uint64(intOption(opts, "duel"))

	out, err := c.duelService.ClaimForfeit(ctx, &duelService.ClaimForfeitInput{
		DuelID:   duelID,
		CallerID: userID,
	})
	if err != nil {
		c.logger.Warn().Err(err).Str("user", userID).Uint64("duel", duelID).Msg("forfeit claim failed")
		return RespondWithError(s, i, friendlyError(err))
	}

	if out.Won {
		return RespondWithMessage(s, i, fmt.Sprintf(
			"Duel **#%d** forfeited: <@%s> takes the pot of %s.", duelID, userID, formatCoins(out.Amount)))
	}
	return RespondWithMessage(s, i, fmt.Sprintf(
		"Duel **#%d** abandoned by both sides, stakes refunded (%s each).", duelID, formatCoins(out.Amount)))
}

func (c *DuelCommand) handleBalance(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	out, err := c.duelService.GetBalance(ctx, &duelService.GetBalanceInput{Account: userID})
	if err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}

	return RespondWithEphemeralMessage(s, i, fmt.Sprintf("Your balance: %s", formatCoins(out.Balance)))
}

func (c *DuelCommand) handlePause(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	if err := c.duelService.Pause(ctx, &duelService.PauseInput{CallerID: userID}); err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}
	return RespondWithMessage(s, i, "Duel creation and joining are paused. In-flight duels continue.")
}

func (c *DuelCommand) handleUnpause(ctx context.Context, s *discordgo.Session, i *discordgo.InteractionCreate, userID string) error {
	if err := c.duelService.Unpause(ctx, &duelService.UnpauseInput{CallerID: userID}); err != nil {
		return RespondWithError(s, i, friendlyError(err))
	}
	return RespondWithMessage(s, i, "Duels are open again.")
}

// interactionUserID resolves the invoking user for both guild and DM
// interactions
func interactionUserID(i *discordgo.InteractionCreate) string {
	if i.Member != nil && i.Member.User != nil {
		return i.Member.User.ID
	}
	if i.User != nil {
		return i.User.ID
	}
	return ""
}

func intOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) int64 {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.IntValue()
		}
	}
	return 0
}

func numberOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) float64 {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.FloatValue()
		}
	}
	return 0
}

func stringOption(opts []*discordgo.ApplicationCommandInteractionDataOption, name string) string {
	for _, opt := range opts {
		if opt.Name == name {
			return opt.StringValue()
		}
	}
	return ""
}
