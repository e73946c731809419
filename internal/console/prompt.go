package console

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"strings"
	"sync"

	"github.com/fadedpez/blackjack/internal/types"
	"github.com/fadedpez/blackjack/pkg/display"
	"github.com/fadedpez/blackjack/pkg/entities"
)

// maxLineLength bounds one line of player input; longer lines are discarded
// as invalid
const maxLineLength = 1024

const invalidInputHint = "Enter (H)it or (S)tand."

// ParseDecision maps a line of player input to a decision. Anything other
// than hit or stand comes back as DecisionNone.
func ParseDecision(input string) entities.Decision {
	switch strings.ToUpper(strings.TrimSpace(input)) {
	case "H", "HIT":
		return entities.DecisionHit
	case "S", "STAND":
		return entities.DecisionStand
	default:
		return entities.DecisionNone
	}
}

// inputLine is one line read from the player
type inputLine struct {
	text    string
	tooLong bool
	err     error
}

// Prompter asks a person for hit or stand decisions over a text stream
type Prompter struct {
	reader *bufio.Reader
	out    io.Writer
	hand   display.Hand
	lines  chan inputLine
	start  sync.Once
}

// NewPrompter creates a prompter that shows hand before every question
func NewPrompter(in io.Reader, out io.Writer, hand display.Hand) *Prompter {
	return &Prompter{
		reader: bufio.NewReaderSize(in, maxLineLength),
		out:    out,
		hand:   hand,
		lines:  make(chan inputLine),
	}
}

// NextDecision implements blackjack.DecisionSource. Input that can no longer
// be read ends the player's turn with a stand.
func (p *Prompter) NextDecision() entities.Decision {
	decision, err := p.Decide(context.Background())
	if err != nil {
		return entities.DecisionStand
	}
	return decision
}

// Decide shows the player's hand and waits for one line of input. Once the
// input is exhausted the player stands, so a closed stream still finishes the
// round. Unreadable or overlong lines come back as DecisionNone. If ctx ends
// first, Decide gives up with a ROUND_ABANDONED error.
func (p *Prompter) Decide(ctx context.Context) (entities.Decision, error) {
	fmt.Fprintf(p.out, "%s\n> ", display.FormatHandWithTotal(p.hand))

	if err := ctx.Err(); err != nil {
		fmt.Fprintln(p.out)
		return entities.DecisionNone, types.WrapError(types.ErrRoundAbandoned, "stopped waiting for a decision", err)
	}

	p.start.Do(func() { go p.readLines() })

	select {
	case <-ctx.Done():
		fmt.Fprintln(p.out)
		return entities.DecisionNone, types.WrapError(types.ErrRoundAbandoned, "stopped waiting for a decision", ctx.Err())

	case line, ok := <-p.lines:
		if !ok || errors.Is(line.err, io.EOF) {
			fmt.Fprintln(p.out)
			return entities.DecisionStand, nil
		}
		if line.err != nil {
			return entities.DecisionNone, types.WrapError(types.ErrInternalError, "error reading input", line.err)
		}

		decision := entities.DecisionNone
		if !line.tooLong {
			decision = ParseDecision(line.text)
		}
		if decision == entities.DecisionNone {
			fmt.Fprintln(p.out, invalidInputHint)
		}
		return decision, nil
	}
}

// readLines feeds lines to Decide until the input fails. The blocking read
// lives here so Decide can still watch its context.
func (p *Prompter) readLines() {
	defer close(p.lines)
	for {
		line := p.readLine()
		p.lines <- line
		if line.err != nil {
			return
		}
	}
}

func (p *Prompter) readLine() inputLine {
	text, isPrefix, err := p.reader.ReadLine()
	if err != nil {
		return inputLine{err: err}
	}
	if !isPrefix {
		return inputLine{text: string(text)}
	}

	// Drop the rest of an overlong line
	for isPrefix {
		if _, isPrefix, err = p.reader.ReadLine(); err != nil {
			break
		}
	}
	return inputLine{tooLong: true}
}
