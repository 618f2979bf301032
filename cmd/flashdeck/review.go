package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/hellodocs/flashdeck/internal/cli"
	"github.com/hellodocs/flashdeck/internal/progress"
	"github.com/hellodocs/flashdeck/internal/review"
)

func newReviewCommand() *cobra.Command {
	var difficulty string
	command := &cobra.Command{
		Use:   "review",
		Short: "Start an interactive review session",
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := loadConfig()
			if err != nil {
				return err
			}

			store, err := restoreSessionStore(cfg)
			if err != nil {
				return err
			}

			client := newAPIClient(cfg)
			defer func() {
				_ = client.Close()
			}()

			var ledger *progress.Ledger
			var tracker review.Tracker
			authenticated := !store.IsGuest()
			if authenticated {
				tracker = review.NewKnownSetTracker()
				fmt.Printf("Reviewing as %s\n", store.Current().Username)
			} else {
				ledger, err = loadLedger(cfg)
				if err != nil {
					return err
				}
				tracker = review.NewGuestTracker(ledger)
				fmt.Printf("Reviewing as guest (progress %d/%d). Login to keep your progress.\n",
					ledger.Count(), progress.Limit)
			}

			mode := review.ModeAll
			if difficulty != "" {
				mode = review.ModeDifficulty
			}

			session := review.NewSession(client, tracker)
			session.Start(cmd.Context(), mode, difficulty)
			fmt.Printf("Starting review session with %d cards\n\n", session.Remaining())

			reviewCLI := cli.NewReviewCLI(session, authenticated)
			runErr := reviewCLI.Run(cmd.Context())

			if ledger != nil {
				if err := saveLedger(cfg, ledger); err != nil {
					return err
				}
			}
			return runErr
		},
	}
	command.Flags().StringVar(&difficulty, "difficulty", "", "review only cards of this difficulty level")
	return command
}
