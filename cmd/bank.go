package cmd

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"github.com/amahdy/quizdrill/internal/bank"
	"github.com/amahdy/quizdrill/internal/config"
	"github.com/amahdy/quizdrill/internal/llm"
	"github.com/amahdy/quizdrill/internal/quizgen"
)

var bankCmd = &cobra.Command{
	Use:   "bank",
	Short: "Inspect and generate question banks",
}

var bankCheckCmd = &cobra.Command{
	Use:   "check <file>",
	Short: "Parse a bank file and report kept and dropped blocks",
	Args:  cobra.ExactArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		text, err := bank.FileSource{Path: args[0]}.Load()
		if err != nil {
			return err
		}

		result := bank.Check(text)
		fmt.Printf("%s: %d questions kept, %d blocks dropped\n",
			args[0], len(result.Kept), len(result.Dropped))
		for _, id := range result.Dropped {
			fmt.Printf("  dropped block %d (invalid question)\n", id)
		}

		categories := make(map[string]int)
		for _, q := range result.Kept {
			categories[q.Category]++
		}
		for cat, n := range categories {
			fmt.Printf("  %s: %d questions\n", cat, n)
		}
		return nil
	},
}

var bankGenerateCmd = &cobra.Command{
	Use:   "generate",
	Short: "Generate bank questions with an LLM provider",
	RunE: func(cmd *cobra.Command, args []string) error {
		category, _ := cmd.Flags().GetString("category")
		difficulty, _ := cmd.Flags().GetString("difficulty")
		count, _ := cmd.Flags().GetInt("count")
		startID, _ := cmd.Flags().GetInt("start-id")
		out, _ := cmd.Flags().GetString("out")

		appCfg, err := config.Load()
		if err != nil {
			return fmt.Errorf("load config: %w", err)
		}

		llmCfg := llm.ConfigFromEnv()
		if appCfg.LLM.Provider != "" {
			llmCfg.Provider = appCfg.LLM.Provider
		}
		if appCfg.LLM.Model != "" {
			switch llmCfg.Provider {
			case "anthropic":
				llmCfg.Anthropic.Model = appCfg.LLM.Model
			case "openai":
				llmCfg.OpenAI.Model = appCfg.LLM.Model
			case "gemini":
				llmCfg.Gemini.Model = appCfg.LLM.Model
			}
		}
		if err := llmCfg.Validate(); err != nil {
			// Fall back to the standard provider key env vars.
			discovered, ok := llm.DiscoverConfig()
			if !ok {
				return fmt.Errorf("no LLM provider configured: %w", err)
			}
			llmCfg = discovered
		}

		provider, err := llm.NewProvider(cmd.Context(), llmCfg)
		if err != nil {
			return fmt.Errorf("build provider: %w", err)
		}

		generator := quizgen.New(provider)
		questions, err := generator.Generate(cmd.Context(), quizgen.Params{
			Category:   category,
			Difficulty: bank.ParseDifficulty(difficulty),
			Count:      count,
			StartID:    startID,
		})
		if err != nil {
			return fmt.Errorf("generate questions: %w", err)
		}

		rendered := quizgen.RenderBank(questions)
		if out == "" {
			fmt.Print(rendered)
			return nil
		}
		if err := os.WriteFile(out, []byte(rendered), 0o644); err != nil {
			return fmt.Errorf("write bank file: %w", err)
		}
		fmt.Printf("Wrote %d questions to %s\n", len(questions), out)
		return nil
	},
}

func init() {
	bankGenerateCmd.Flags().String("category", "", "Category for the generated questions (required)")
	bankGenerateCmd.Flags().String("difficulty", "", "Difficulty: easy, medium, or hard")
	bankGenerateCmd.Flags().Int("count", 10, "Number of questions to generate")
	bankGenerateCmd.Flags().Int("start-id", 1, "First question id")
	bankGenerateCmd.Flags().String("out", "", "Output file (default stdout)")
	_ = bankGenerateCmd.MarkFlagRequired("category")

	bankCmd.AddCommand(bankCheckCmd)
	bankCmd.AddCommand(bankGenerateCmd)
}
