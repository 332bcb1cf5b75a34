package cmd

import (
	"fmt"

	"github.com/spf13/cobra"
	"go.uber.org/zap"

	"github.com/abhisek/curiolab/internal/llm"
)

var llmCmd = &cobra.Command{
	Use:   "llm",
	Short: "Inspect the LLM provider configuration",
}

var llmCheckCmd = &cobra.Command{
	Use:   "check",
	Short: "Verify the configured provider responds",
	RunE: func(cmd *cobra.Command, args []string) error {
		cfg := llm.ConfigFromEnv()
		if err := cfg.Validate(); err != nil {
			if discovered, ok := llm.DiscoverConfig(); ok {
				cfg = discovered
			} else {
				return fmt.Errorf("no provider configured: %w", err)
			}
		}

		fmt.Printf("Provider: %s\n", cfg.Provider)

		provider, err := llm.NewProvider(cmd.Context(), cfg, zap.NewNop())
		if err != nil {
			return fmt.Errorf("create provider: %w", err)
		}
		fmt.Printf("Model:    %s\n", provider.ModelID())

		resp, err := provider.Generate(cmd.Context(), llm.Request{
			Messages:  []llm.Message{{Role: llm.RoleUser, Content: "Reply with the single word: ok"}},
			MaxTokens: 10,
		})
		if err != nil {
			return fmt.Errorf("test generation failed: %w", err)
		}

		fmt.Printf("Response: %s\n", resp.Text())
		fmt.Printf("Tokens:   %d in / %d out\n", resp.Usage.InputTokens, resp.Usage.OutputTokens)
		return nil
	},
}

func init() {
	llmCmd.AddCommand(llmCheckCmd)
}
