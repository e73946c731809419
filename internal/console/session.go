package console

import (
	"context"
	"errors"
	"fmt"
	"io"

	"github.com/fadedpez/blackjack/internal/logging"
	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/display"
	"github.com/fadedpez/blackjack/pkg/entities"
	"github.com/fadedpez/blackjack/pkg/services/blackjack"
	"github.com/fadedpez/blackjack/pkg/services/history"
)

// Session plays rounds against a terminal and keeps the journal up to date
type Session struct {
	in      io.Reader
	out     io.Writer
	history *history.Service
	limit   int
	logger  *logging.Logger
}

// NewSession creates a session. limit is how many rounds the tally covers.
func NewSession(in io.Reader, out io.Writer, history *history.Service, limit int, logger *logging.Logger) *Session {
	if logger == nil {
		logger = logging.Default
	}
	return &Session{
		in:      in,
		out:     out,
		history: history,
		limit:   limit,
		logger:  logger,
	}
}

// PlayRound runs round to completion, prints how it ended, records it and
// prints the tally of recent rounds. If ctx ends while the player is being
// asked for a decision the round is abandoned and nothing is recorded.
func (s *Session) PlayRound(ctx context.Context, round *blackjack.Round) (result *entities.RoundResult, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			if e, ok := rec.(error); ok && errors.Is(e, entities.ErrDeckExhausted) {
				result, err = nil, types.WrapError(types.ErrDeckExhausted, "deck ran out before the round finished", e)
				return
			}
			panic(rec)
		}
	}()

	if err := round.Deal(); err != nil {
		return nil, err
	}

	if round.State() == entities.StatePlayerTurn {
		fmt.Fprintln(s.out, "Make a hand more than the dealer's and less than 22.")
		fmt.Fprintln(s.out, "Enter (H)it or (S)tand to make a move.")
		fmt.Fprintln(s.out, "Your turn")
	}

	prompter := NewPrompter(s.in, s.out, round.Player())
	for round.State() == entities.StatePlayerTurn {
		decision, err := prompter.Decide(ctx)
		if err != nil {
			return nil, err
		}
		if err := round.Act(decision); err != nil {
			return nil, err
		}
	}

	if round.State() == entities.StateDealerTurn {
		fmt.Fprintln(s.out, "Dealer's turn")
		if err := round.PlayDealer(); err != nil {
			return nil, err
		}
	}

	outcome, _ := round.Outcome()

	fmt.Fprintf(s.out, "Dealer: %s\n", display.FormatHandWithTotal(round.Dealer()))
	fmt.Fprintf(s.out, "Player: %s\n", display.FormatHandWithTotal(round.Player()))
	fmt.Fprintln(s.out, display.FormatOutcome(outcome))

	result, err = round.Result()
	if err != nil {
		return nil, err
	}

	if err := s.history.Record(ctx, result); err != nil {
		// The round already happened; a journal failure only costs the tally
		s.logger.LogError(err)
		return result, nil
	}

	summary, err := s.history.Summary(ctx, s.limit)
	if err != nil {
		s.logger.LogError(err)
		return result, nil
	}
	s.printSummary(fmt.Sprintf("Last %d rounds", summary.Rounds), summary)

	allTime, ok, err := s.history.AllTime(ctx)
	switch {
	case err != nil:
		s.logger.LogError(err)
	case ok:
		s.printSummary("All time", allTime)
	}

	return result, nil
}

func (s *Session) printSummary(title string, summary *history.Summary) {
	fmt.Fprintf(s.out, "%s: %d won, %d lost (%.1f%%)\n",
		title, summary.PlayerWins, summary.DealerWins, summary.WinRate())
	for _, outcome := range entities.Outcomes() {
		if count := summary.ByOutcome[outcome]; count > 0 {
			fmt.Fprintf(s.out, "  %-16s %d\n", outcome, count)
		}
	}
}
