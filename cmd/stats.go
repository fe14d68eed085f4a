package cmd

import (
	"context"
	"fmt"
	"sort"

	"github.com/spf13/cobra"

	"github.com/amahdy/quizdrill/internal/config"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/retrytest"
	"github.com/amahdy/quizdrill/internal/store"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Print progress statistics",
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
		agg, err := service.Load(context.Background())
		if err != nil {
			return fmt.Errorf("load progress: %w", err)
		}

		lp := agg.LevelProgress()
		fmt.Printf("Level:           %d (%d/%d XP, %.0f%%)\n", agg.Level(), lp.Current, lp.Required, lp.Percentage)
		fmt.Printf("Total XP:        %d\n", agg.TotalXP)
		fmt.Printf("Tests completed: %d\n", agg.TestsCompleted)
		fmt.Printf("Misses in pool:  %d\n", len(agg.WrongAnswerPool))

		gates := cfg.Gates()
		if err := gates.CanCreateGlobalRetry(agg.TestsCompleted, agg.WrongAnswerPool); err != nil {
			fmt.Printf("Retry test:      locked (%v)\n", err)
		} else {
			fmt.Println("Retry test:      unlocked")
		}

		if len(agg.PerCategoryTests) > 0 {
			fmt.Println("\nCategories:")
			categories := make([]string, 0, len(agg.PerCategoryTests))
			for cat := range agg.PerCategoryTests {
				categories = append(categories, cat)
			}
			sort.Strings(categories)
			for _, cat := range categories {
				misses := len(retrytest.FilterCategory(agg.WrongAnswerPool, cat))
				fmt.Printf("  %-24s %4d tests  %3d misses\n", cat, agg.CategoryTests(cat), misses)
			}
		}
		return nil
	},
}
