// Package cli contains the interactive terminal front end for review
// sessions and the shared card rendering helpers.
package cli

import (
	"bufio"
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
	"strings"

	"github.com/fatih/color"

	"github.com/hellodocs/flashdeck/internal/progress"
	"github.com/hellodocs/flashdeck/internal/review"
)

// errEnd terminates the interactive loop without reporting an error.
var errEnd = errors.New("end of session")

// ReviewCLI runs the study loop over a review session.
type ReviewCLI struct {
	session       *review.Session
	authenticated bool

	stdinReader  *bufio.Reader
	stdoutWriter io.Writer
	bold         *color.Color
	italic       *color.Color
	faint        *color.Color
}

func NewReviewCLI(session *review.Session, authenticated bool) *ReviewCLI {
	return &ReviewCLI{
		session:       session,
		authenticated: authenticated,
		stdinReader:   bufio.NewReader(os.Stdin),
		stdoutWriter:  os.Stdout,
		bold:          color.New(color.Bold),
		italic:        color.New(color.Italic),
		faint:         color.New(color.Faint),
	}
}

// Run drives Step until the session completes, the user quits, or an
// interrupt arrives.
func (r *ReviewCLI) Run(ctx context.Context) error {
	ctx, cancel := signal.NotifyContext(
		ctx,
		os.Interrupt,
	)
	defer cancel()

	errCh := make(chan error)
	go func() {
		defer close(errCh)

	LOOP:
		for {
			select {
			case <-ctx.Done():
				break LOOP
			default:
			}

			if err := r.Step(ctx); err != nil {
				if errors.Is(err, errEnd) {
					break
				}
				errCh <- err
				break
			}
		}
	}()
	select {
	case <-ctx.Done():
		fmt.Fprintln(r.stdoutWriter, "Received interrupt signal, exiting...")
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("error: %w", err)
		}
	}
	return nil
}

// Step shows the current card and handles one command.
func (r *ReviewCLI) Step(ctx context.Context) error {
	if r.session.State() == review.StateComplete {
		r.printCompletion()
		return errEnd
	}

	card, ok := r.session.Current()
	if !ok {
		return errEnd
	}

	fmt.Fprintf(r.stdoutWriter, "Card %d of %d", r.session.Index()+1, r.session.Remaining())
	if mastered := r.session.Mastered(); mastered > 0 {
		fmt.Fprintf(r.stdoutWriter, "  (%d mastered)", mastered)
	}
	if !r.authenticated {
		fmt.Fprintf(r.stdoutWriter, "  [guest %d/%d]", r.session.Mastered(), progress.Limit)
	}
	fmt.Fprintln(r.stdoutWriter)

	_, _ = r.bold.Fprintln(r.stdoutWriter, card.FrontContent)
	_, _ = r.faint.Fprintf(r.stdoutWriter, "%s · %s · %s\n", card.Category, card.DifficultyLevel, card.Language)

	fmt.Fprint(r.stdoutWriter, "[Enter] flip, [n]ext, [p]revious, [k]nown, [r]eset, [q]uit: ")
	line, err := r.stdinReader.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) {
			return errEnd
		}
		return fmt.Errorf("error reading input: %w", err)
	}

	switch strings.ToLower(strings.TrimSpace(line)) {
	case "":
		r.printBack(card.BackContent, card.ExampleCode, card.TagList())
	case "n":
		r.session.Next()
	case "p":
		r.session.Previous()
	case "k":
		if err := r.session.MarkKnown(); err != nil {
			if errors.Is(err, review.ErrLimitReached) {
				color.Yellow("Guest progress limit reached (%d cards). Login to save your progress and keep going.", progress.Limit)
				return nil
			}
			return err
		}
		color.Green("Marked as known.")
	case "r":
		if err := r.session.ResetKnown(ctx); err != nil {
			if errors.Is(err, review.ErrGuestReset) {
				color.Yellow("Guest progress cannot be reset. Login to manage your review history.")
				return nil
			}
			return err
		}
		fmt.Fprintln(r.stdoutWriter, "Known cards reset.")
	case "q":
		return errEnd
	default:
		fmt.Fprintln(r.stdoutWriter, "Unknown command.")
	}
	fmt.Fprintln(r.stdoutWriter)
	return nil
}

func (r *ReviewCLI) printBack(back, exampleCode string, tags []string) {
	_, _ = r.italic.Fprintln(r.stdoutWriter, back)
	if exampleCode != "" {
		fmt.Fprintf(r.stdoutWriter, "\n%s\n", exampleCode)
	}
	if len(tags) > 0 {
		_, _ = r.faint.Fprintf(r.stdoutWriter, "tags: %s\n", strings.Join(tags, ", "))
	}
}

func (r *ReviewCLI) printCompletion() {
	mastered := r.session.Mastered()
	if mastered > 0 {
		color.Green("Review complete! You've mastered %d card(s).", mastered)
	} else {
		fmt.Fprintln(r.stdoutWriter, "No cards available for review.")
	}
	if !r.authenticated && mastered > 0 {
		fmt.Fprintf(r.stdoutWriter, "%d cards saved in this guest session. Login to keep them.\n", mastered)
	}
}
