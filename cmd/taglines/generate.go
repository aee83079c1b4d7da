package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/spf13/cobra"

	"github.com/nyashahama/tagline-studio-backend/internal/ai"
	"github.com/nyashahama/tagline-studio-backend/internal/config"
	"github.com/nyashahama/tagline-studio-backend/internal/tagline"
)

var (
	tone          string
	audience      string
	backend       string
	model         string
	fallbackModel string
	verbose       bool
)

var generateCmd = &cobra.Command{
	Use:   "generate [description]",
	Short: "Generate taglines and a meta description",
	Long: `Generate five taglines and a meta description for a product.

The description must be at least 20 characters. Unknown tones and audiences
fall back to professional and general.

Tones:     Professional, Playful, Premium, Bold
Audiences: General, "Motorsport fans", Finance/banking, Developers
Matching is case-insensitive.

Examples:
  taglines generate "Lightweight carbon racing helmets for weekend track days" --tone bold --audience "motorsport fans"
  taglines generate "Open-source SDK for payments reconciliation" --backend openai --model gpt-4o-mini`,
	Args: cobra.ExactArgs(1),
	RunE: runGenerate,
}

func init() {
	rootCmd.AddCommand(generateCmd)
	generateCmd.Flags().StringVar(&tone, "tone", string(tagline.ToneProfessional), "Tone of voice")
	generateCmd.Flags().StringVar(&audience, "audience", string(tagline.AudienceGeneral), "Target audience")
	generateCmd.Flags().StringVar(&backend, "backend", "", "Generator backend: template or openai (default from GENERATOR)")
	generateCmd.Flags().StringVar(&model, "model", "", "OpenAI model (default from OPENAI_MODEL)")
	generateCmd.Flags().StringVar(&fallbackModel, "fallback-model", "", "OpenAI fallback model (default from OPENAI_FALLBACK_MODEL)")
	generateCmd.Flags().BoolVar(&verbose, "verbose", false, "Log provider attempts to stderr")
}

func runGenerate(cmd *cobra.Command, args []string) error {
	out := cmd.OutOrStdout()

	var (
		headerColor  = lipgloss.Color("#F780FF")
		taglineColor = lipgloss.Color("#8BE9FD")
		metaColor    = lipgloss.Color("#6272A4")
		errorColor   = lipgloss.Color("#FF5555")
	)
	headerStyle := lipgloss.NewStyle().Foreground(headerColor).Bold(true)
	taglineStyle := lipgloss.NewStyle().Foreground(taglineColor)
	metaStyle := lipgloss.NewStyle().Foreground(metaColor).Italic(true)
	errorStyle := lipgloss.NewStyle().Foreground(errorColor).Bold(true)

	req, err := tagline.NewRequest(args[0], tone, audience)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	cfg, err := config.Load()
	if err != nil {
		return fmt.Errorf("%s config: %w", errorStyle.Render("Error:"), err)
	}
	applyFlags(cmd, cfg)

	logLevel := slog.LevelWarn
	if verbose {
		logLevel = slog.LevelDebug
	}
	logger := slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: logLevel}))

	generator, err := newGenerator(cfg, logger)
	if err != nil {
		return fmt.Errorf("%s %w", errorStyle.Render("Error:"), err)
	}

	result, err := generator.Generate(context.Background(), req)
	if err != nil {
		logger.Debug("generate failed", "error", err)
		return fmt.Errorf("%s %s", errorStyle.Render("Error:"), ai.UserMessage(err))
	}

	printResult(out, req, result, headerStyle, taglineStyle, metaStyle)
	return nil
}

// applyFlags overrides environment configuration with explicitly set flags.
func applyFlags(cmd *cobra.Command, cfg *config.Config) {
	flags := cmd.Flags()
	if flags.Changed("backend") {
		cfg.Generator = strings.ToLower(strings.TrimSpace(backend))
	}
	if flags.Changed("model") {
		cfg.OpenAIModel = model
	}
	if flags.Changed("fallback-model") {
		cfg.OpenAIFallbackModel = fallbackModel
	}
}

func newGenerator(cfg *config.Config, logger *slog.Logger) (tagline.Generator, error) {
	switch cfg.Generator {
	case config.BackendTemplate:
		return tagline.Engine{}, nil
	case config.BackendOpenAI:
		completer, err := ai.NewOpenAICompleter(ai.OpenAIConfig{
			APIKey:      cfg.OpenAIAPIKey,
			BaseURL:     cfg.OpenAIBaseURL,
			Temperature: cfg.OpenAITemperature,
		})
		if errors.Is(err, ai.ErrNotConfigured) {
			return nil, errors.New(ai.MsgNotConfigured)
		}
		if err != nil {
			return nil, err
		}
		return ai.NewAdapter(completer, ai.DefaultChain(cfg.OpenAIModel, cfg.OpenAIFallbackModel), logger), nil
	default:
		return nil, fmt.Errorf("unknown backend %q (want %s or %s)", cfg.Generator, config.BackendTemplate, config.BackendOpenAI)
	}
}

func printResult(out io.Writer, req tagline.Request, result tagline.Result, header, line, meta lipgloss.Style) {
	fmt.Fprintln(out)
	fmt.Fprintln(out, header.Render(fmt.Sprintf("Taglines (%s, %s)", req.Tone, req.Audience.Label())))
	for i, t := range result.Taglines {
		fmt.Fprintf(out, "  %d. %s\n", i+1, line.Render(t))
	}
	fmt.Fprintln(out)
	fmt.Fprintln(out, header.Render("Meta description"))
	fmt.Fprintln(out, "  "+meta.Render(result.MetaDescription))
	fmt.Fprintln(out)
}
