package cmd

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/amahdy/quizdrill/internal/app"
	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/config"
	"github.com/amahdy/quizdrill/internal/live"
	"github.com/amahdy/quizdrill/internal/progress"
	"github.com/amahdy/quizdrill/internal/store"
)

// runApp opens the store, builds dependencies, and launches the TUI.
// bankFile optionally narrows the bank to a single file, category to a
// single bank category.
func runApp(cmd *cobra.Command, bankFile, category string) error {
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

	return app.Run(app.Options{
		Progress:  progress.NewService(st.EventRepo(), st.SnapshotRepo()),
		EventRepo: st.EventRepo(),
		Hub:       live.NewHub(),
		Policy:    cfg.RewardPolicy(),
		Gates:     cfg.Gates(),
		LoadBank:  bankLoader(cfg, bankFile, category),
		Category:  category,
	})
}

// bankLoader resolves the bank source in priority order: explicit file,
// configured directory, default data directory. A non-empty category
// narrows the parsed questions to that category.
func bankLoader(cfg *config.Config, bankFile, category string) func(ctx context.Context) ([]bank.Question, error) {
	return func(ctx context.Context) ([]bank.Question, error) {
		src, err := bankSource(cfg, bankFile)
		if err != nil {
			return nil, err
		}
		text, err := src.Load()
		if err != nil {
			return nil, err
		}
		questions := bank.Parse(text)
		if category != "" {
			questions = bank.FilterCategory(questions, category)
		}
		return questions, nil
	}
}

func bankSource(cfg *config.Config, bankFile string) (bank.Source, error) {
	if bankFile != "" {
		return bank.FileSource{Path: bankFile}, nil
	}
	if cfg.Bank.Dir != "" {
		return bank.DirSource{Dir: cfg.Bank.Dir}, nil
	}
	dir, err := bank.DefaultBankDir()
	if err != nil {
		return nil, fmt.Errorf("resolve bank dir: %w", err)
	}
	return bank.DirSource{Dir: dir}, nil
}
