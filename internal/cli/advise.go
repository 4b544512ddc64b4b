package cli

import (
	"context"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"envsnap/internal/config"
	"envsnap/internal/guidance"
)

var askPrompt string

var adviseCmd = &cobra.Command{
	Use:   "advise [sign]",
	Short: "Print guidance for a sign, or forward a free-text prompt to the model",
	Example: `  # Static guidance by sign
  envsnap advise taurus

  # Forward free text to the configured generation endpoint
  envsnap advise --ask "How should I plan this week?"`,
	Args: cobra.MaximumNArgs(1),
	RunE: func(cmd *cobra.Command, args []string) error {
		if askPrompt != "" {
			cfg, err := config.Load(cfgFile)
			if err != nil {
				return err
			}
			client := guidance.NewClient(cfg)
			text, err := client.Generate(context.Background(), askPrompt)
			if err != nil {
				return fmt.Errorf("generation failed: %w", err)
			}
			fmt.Println(strings.TrimSpace(text))
			return nil
		}

		if len(args) == 0 {
			return fmt.Errorf("provide a sign (one of: %s) or --ask", strings.Join(guidance.Signs(), ", "))
		}

		text, err := guidance.Lookup(args[0])
		if err != nil {
			return err
		}
		fmt.Println(text)
		return nil
	},
}

func init() {
	rootCmd.AddCommand(adviseCmd)
	adviseCmd.Flags().StringVar(&askPrompt, "ask", "", "Free-text prompt to forward to the generation endpoint")
}
