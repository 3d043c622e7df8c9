package system

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/julianstephens/momentum/internal/cli"
	"github.com/julianstephens/momentum/internal/cli/formatter"
	"github.com/julianstephens/momentum/internal/keyring"
	"github.com/julianstephens/momentum/internal/logger"
)

type AICmd struct {
	Analyze AIAnalyzeCmd `cmd:"" help:"Summarize the last week of habit activity." default:"1"`
	Key     struct {
		Set    AIKeySetCmd    `cmd:"" help:"Store the AI API key in the OS keyring."`
		Delete AIKeyDeleteCmd `cmd:"" help:"Remove the AI API key from the OS keyring."`
	} `cmd:"" help:"Manage the AI API key."`
}

type AIAnalyzeCmd struct{}

func (c *AIAnalyzeCmd) Run(ctx *cli.Context) error {
	if ctx.Coach == nil {
		return errors.New("AI insights are not configured")
	}

	text, err := ctx.Coach.Analyze(context.Background(), resolveAPIKey(ctx), ctx.State.Habits(), ctx.State.Logs(), ctx.Now())
	if err != nil {
		logger.Debug("Analysis rejected", "error", err)
	}

	ctx.Println(formatter.Header("Insights"))
	ctx.Println(text)
	return nil
}

// resolveAPIKey prefers the flag or environment value over the keyring
func resolveAPIKey(ctx *cli.Context) string {
	if key := strings.TrimSpace(ctx.APIKey); key != "" {
		return key
	}
	key, err := keyring.GetAPIKey()
	if err != nil {
		if !errors.Is(err, keyring.ErrNotFound) {
			logger.Warn("Failed to read AI API key from keyring", "error", err)
		}
		return ""
	}
	return key
}

type AIKeySetCmd struct {
	Key string `arg:"" help:"API key for the generative AI service."`
}

func (c *AIKeySetCmd) Run(ctx *cli.Context) error {
	key := strings.TrimSpace(c.Key)
	if key == "" {
		return errors.New("API key cannot be empty")
	}
	if err := keyring.SetAPIKey(key); err != nil {
		return err
	}
	ctx.Println("✓ API key stored in OS keyring")
	return nil
}

type AIKeyDeleteCmd struct{}

func (c *AIKeyDeleteCmd) Run(ctx *cli.Context) error {
	if err := keyring.DeleteAPIKey(); err != nil {
		if errors.Is(err, keyring.ErrNotFound) {
			return errors.New("no API key found in keyring")
		}
		return fmt.Errorf("failed to delete API key from keyring: %w", err)
	}
	ctx.Println("✓ API key deleted from OS keyring")
	return nil
}
