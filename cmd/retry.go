package cmd

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amahdy/quizdrill/internal/app"
	"github.com/amahdy/quizdrill/internal/config"
	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/store"
)

var retryCmd = &cobra.Command{
	Use:   "retry",
	Short: "Start a retry test over your missed questions",
	Long:  "Start a retry test built from previously missed questions. With --category the test is scoped to that category's misses and its own unlock gate.",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		dbPath, err := resolveDBPath(cmd)
		if err != nil {
			return fmt.Errorf("resolve DB path: %w", err)
		}
		st, err := store.Open(dbPath)
		if err != nil {
			return fmt.Errorf("open store: %w", err)
		}
		defer st.Close()

		service := progress.NewService(st.EventRepo(), st.SnapshotRepo())
		category, _ := cmd.Flags().GetString("category")

		// Check the gate up front so a locked retry fails fast with the
		// exact deficits instead of opening the TUI.
		agg, err := service.Load(context.Background())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}
		gates := cfg.Gates()
		if err := checkRetryGate(gates, agg, category); err != nil {
			var notEligible *retrytest.NotEligibleError
			if !errors.As(err, &notEligible) {
				return err
			}
			if category != "" {
				fmt.Printf("Retry test for %q locked: %d more tests in the category needed, and its miss pool must not be empty.\n",
					category, notEligible.TestsNeeded)
			} else {
				fmt.Printf("Retry test locked: %d more tests and %d more wrong answers needed.\n",
					notEligible.TestsNeeded, notEligible.WrongAnswersNeeded)
			}
			return nil
		}

		return app.Run(app.Options{
			Progress:   service,
			EventRepo:  st.EventRepo(),
			Hub:        live.NewHub(),
			Policy:     cfg.RewardPolicy(),
			Gates:      gates,
			LoadBank:   bankLoader(cfg, "", category),
			Category:   category,
			StartRetry: true,
		})
	},
}

func init() {
	retryCmd.Flags().String("category", "", "Scope the retry test to one bank category")
}

func checkRetryGate(gates retrytest.Gates, agg progress.UserProgress, category string) error {
	if category != "" {
		sub := retrytest.FilterCategory(agg.WrongAnswerPool, category)
		return gates.CanCreateCategoryRetry(agg.CategoryTests(category), sub)
	}
	return gates.CanCreateGlobalRetry(agg.TestsCompleted, agg.WrongAnswerPool)
}
