package discord

import (
	"errors"
	"fmt"
	"strings"

	"github.com/KirkDiggler/duelarena/internal/models"
	duelService "github.com/KirkDiggler/duelarena/internal/services/duel"
	"github.com/bwmarrin/discordgo"
)

const (
	embedColorNeutral = 0x5865f2 // Discord blurple
	embedColorWin     = 0x00ff00
	embedColorDraw    = 0xffcc00
)

// formatCoins renders a base-unit amount as a coin figure
func formatCoins(units uint64) string {
	return fmt.Sprintf("%g coins", models.BaseToCoins(units))
}

func statusLabel(status models.DuelStatus) string {
	switch status {
	case models.DuelStatusOpen:
		return "Open — waiting for a challenger"
	case models.DuelStatusActive:
		return "Active"
	case models.DuelStatusSettled:
		return "Settled"
	case models.DuelStatusCancelled:
		return "Cancelled"
	default:
		return string(status)
	}
}

// renderDuelEmbed renders the state of a duel as an embed. The
// description overrides the default status line when non-empty.
func renderDuelEmbed(duel *models.Duel, description string) *discordgo.MessageEmbed {
	if description == "" {
		description = statusLabel(duel.Status)
	}

	challenger := "*none yet*"
	if duel.Challenger != "" {
		challenger = fmt.Sprintf("<@%s>", duel.Challenger)
	}

	fields := []*discordgo.MessageEmbedField{
		{
			Name:   "Initiator",
			Value:  fmt.Sprintf("<@%s>", duel.Initiator),
			Inline: true,
		},
		{
			Name:   "Challenger",
			Value:  challenger,
			Inline: true,
		},
		{
			Name:   "Stake",
			Value:  formatCoins(duel.StakeAmount),
			Inline: true,
		},
	}

	if duel.Status == models.DuelStatusActive {
		fields = append(fields,
			&discordgo.MessageEmbedField{
				Name:   "Round",
				Value:  fmt.Sprintf("%d of %d", duel.CurrentRound, duel.TotalRounds),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Score",
				Value:  fmt.Sprintf("%d – %d", duel.Scores.Initiator, duel.Scores.Challenger),
				Inline: true,
			},
			&discordgo.MessageEmbedField{
				Name:   "Round Deadline",
				Value:  fmt.Sprintf("<t:%d:R>", duel.RoundDeadline.Unix()),
				Inline: true,
			},
		)

		if round := duel.Round(duel.CurrentRound); round != nil {
			progress := func(rec models.SideRecord) string {
				switch {
				case rec.Revealed:
					return "revealed"
				case rec.Committed():
					return "committed"
				default:
					return "waiting"
				}
			}
			fields = append(fields, &discordgo.MessageEmbedField{
				Name: "This Round",
				Value: fmt.Sprintf("Initiator: %s\nChallenger: %s",
					progress(round.Initiator), progress(round.Challenger)),
				Inline: false,
			})
		}
	}

	color := embedColorNeutral
	if duel.Status == models.DuelStatusSettled {
		fields = append(fields, &discordgo.MessageEmbedField{
			Name:   "Final Score",
			Value:  fmt.Sprintf("%d – %d", duel.Scores.Initiator, duel.Scores.Challenger),
			Inline: true,
		})
		if duel.Winner != "" {
			color = embedColorWin
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Winner",
				Value:  fmt.Sprintf("<@%s>", duel.AccountOf(duel.Winner)),
				Inline: true,
			})
		} else {
			color = embedColorDraw
			fields = append(fields, &discordgo.MessageEmbedField{
				Name:   "Result",
				Value:  "Draw — pot split evenly",
				Inline: true,
			})
		}
	}

	return &discordgo.MessageEmbed{
		Title:       fmt.Sprintf("Duel #%d — best of %d", duel.ID, duel.TotalRounds),
		Description: description,
		Color:       color,
		Fields:      fields,
	}
}

// renderRevealEmbed renders the outcome of a reveal, which may close a
// round or settle the whole duel
func renderRevealEmbed(duelID uint64, userID string, move models.Move, out *duelService.RevealMoveOutput) *discordgo.MessageEmbed {
	title := fmt.Sprintf("Duel #%d — round %d", duelID, out.Round)
	description := fmt.Sprintf("<@%s> revealed **%s**.", userID, move)
	color := embedColorNeutral

	if out.RoundComplete {
		if out.RoundWinner == "" {
			description += " The round is a tie, no point scored."
		} else {
			description += fmt.Sprintf(" The %s takes the round.", out.RoundWinner)
		}
		description += fmt.Sprintf("\nScore: **%d – %d**.", out.Scores.Initiator, out.Scores.Challenger)
	}

	if out.Settled {
		title = fmt.Sprintf("Duel #%d — settled", duelID)
		if out.Winner == "" {
			color = embedColorDraw
			description += fmt.Sprintf("\n\nThe duel ends in a draw. The pot of %s is split evenly.", formatCoins(out.PotPaid))
		} else {
			color = embedColorWin
			description += fmt.Sprintf("\n\nThe %s wins the duel and takes the pot of %s.", out.Winner, formatCoins(out.PotPaid))
		}
	} else if out.RoundComplete {
		description += " Next round: seal and commit."
	}

	return &discordgo.MessageEmbed{
		Title:       title,
		Description: description,
		Color:       color,
	}
}

// renderOpenDuelsEmbed lists duels waiting for a challenger
func renderOpenDuelsEmbed(duels []*models.Duel) *discordgo.MessageEmbed {
	var lines []string
	for _, duel := range duels {
		lines = append(lines, fmt.Sprintf("**#%d** — best of %d, %s, by <@%s>",
			duel.ID, duel.TotalRounds, formatCoins(duel.StakeAmount), duel.Initiator))
	}

	return &discordgo.MessageEmbed{
		Title:       "Open Duels",
		Description: strings.Join(lines, "\n"),
		Color:       embedColorNeutral,
	}
}

// friendlyError maps service errors to player-facing messages
func friendlyError(err error) string {
	switch {
	case errors.Is(err, duelService.ErrDuelNotFound):
		return "No duel with that ID"
	case errors.Is(err, duelService.ErrInvalidStake):
		return "The stake must be between 0.001 and 10 coins"
	case errors.Is(err, duelService.ErrInvalidRoundCount):
		return "Duels are best of 3, 5 or 7 rounds"
	case errors.Is(err, duelService.ErrSelfJoin):
		return "You cannot duel yourself"
	case errors.Is(err, duelService.ErrStakeMismatch):
		return "Your stake must match the duel's stake exactly"
	case errors.Is(err, duelService.ErrInvalidState):
		return "The duel is not in the right state for that"
	case errors.Is(err, duelService.ErrNotAParticipant):
		return "You are not a participant in that duel"
	case errors.Is(err, duelService.ErrAlreadyCommitted):
		return "You already committed a move this round"
	case errors.Is(err, duelService.ErrNotCommitted):
		return "Commit a sealed move before revealing"
	case errors.Is(err, duelService.ErrAlreadyRevealed):
		return "You already revealed this round"
	case errors.Is(err, duelService.ErrInvalidReveal):
		return "That move and secret do not match your sealed digest"
	case errors.Is(err, duelService.ErrInvalidDigest):
		return "The digest must be the 64-character hex string from `/duel seal`"
	case errors.Is(err, duelService.ErrInvalidMove):
		return "Moves are sword, shield or magic"
	case errors.Is(err, duelService.ErrPaused):
		return "Duels are paused right now"
	case errors.Is(err, duelService.ErrUnauthorized):
		return "You are not allowed to do that"
	case errors.Is(err, duelService.ErrDeadlineNotPassed):
		return "The round deadline has not passed yet"
	case errors.Is(err, duelService.ErrForfeitNotClaimable):
		return "You cannot claim this duel, you are the one behind"
	default:
		return "Something went wrong, try again"
	}
}
