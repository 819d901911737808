// Package messenger delivers posts to Slack channels.
package messenger

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/slack-go/slack"
)

const callTimeout = 10 * time.Second

// slackAPI is the part of *slack.Client the messenger uses
type slackAPI interface {
	PostMessageContext(ctx context.Context, channelID string, options ...slack.MsgOption) (string, string, error)
	AddPinContext(ctx context.Context, channel string, item slack.ItemRef) error
	RemovePinContext(ctx context.Context, channel string, item slack.ItemRef) error
	DeleteMessageContext(ctx context.Context, channel, messageTimestamp string) (string, string, error)
	ExportManifestContext(ctx context.Context, token string, appId string) (*slack.Manifest, error)
	UpdateManifestContext(ctx context.Context, manifest *slack.Manifest, token string, appId string) (*slack.UpdateManifestResponse, error)
}

type Slack struct {
	api         slackAPI
	command     string
	appID       string
	configToken string
}

var _ contract.Messenger = (*Slack)(nil)

// New wraps a Slack client. appID and configToken are only needed to publish
// the command menu; without them RegisterCommandMenu does nothing.
func New(api slackAPI, command, appID, configToken string) *Slack {
	return &Slack{
		api:         api,
		command:     command,
		appID:       appID,
		configToken: configToken,
	}
}

func (s *Slack) SendMessage(ctx context.Context, destination, text string) (string, error) {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	_, ts, err := s.api.PostMessageContext(ctx, destination, slack.MsgOptionText(text, false))
	if err != nil {
		return "", fmt.Errorf("failed to post message: %w", err)
	}
	return ts, nil
}

func (s *Slack) PinMessage(ctx context.Context, destination, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := s.api.AddPinContext(ctx, destination, slack.NewRefToMessage(destination, messageID)); err != nil {
		return fmt.Errorf("failed to pin message: %w", err)
	}
	return nil
}

func (s *Slack) UnpinMessage(ctx context.Context, destination, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if err := s.api.RemovePinContext(ctx, destination, slack.NewRefToMessage(destination, messageID)); err != nil {
		return fmt.Errorf("failed to unpin message: %w", err)
	}
	return nil
}

func (s *Slack) DeleteMessage(ctx context.Context, destination, messageID string) error {
	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	if _, _, err := s.api.DeleteMessageContext(ctx, destination, messageID); err != nil {
		return fmt.Errorf("failed to delete message: %w", err)
	}
	return nil
}

// RegisterCommandMenu writes the sub-command list into the slash command's
// description and usage hint in the app manifest.
func (s *Slack) RegisterCommandMenu(ctx context.Context, commands []contract.CommandInfo) error {
	if s.appID == "" || s.configToken == "" {
		slog.Info("Skipping command menu registration, app id or config token not set")
		return nil
	}

	ctx, cancel := context.WithTimeout(ctx, callTimeout)
	defer cancel()

	manifest, err := s.api.ExportManifestContext(ctx, s.configToken, s.appID)
	if err != nil {
		return fmt.Errorf("failed to export app manifest: %w", err)
	}

	names := make([]string, 0, len(commands))
	descriptions := make([]string, 0, len(commands))
	for _, c := range commands {
		names = append(names, c.Name)
		descriptions = append(descriptions, fmt.Sprintf("%s: %s", c.Name, c.Description))
	}

	found := false
	for i := range manifest.Features.SlashCommands {
		cmd := &manifest.Features.SlashCommands[i]
		if cmd.Command != s.command {
			continue
		}
		cmd.UsageHint = "[" + strings.Join(names, "|") + "]"
		cmd.Description = truncate(strings.Join(descriptions, "; "), 100)
		found = true
	}
	if !found {
		return fmt.Errorf("slash command %s not found in app manifest", s.command)
	}

	if _, err := s.api.UpdateManifestContext(ctx, manifest, s.configToken, s.appID); err != nil {
		return fmt.Errorf("failed to update app manifest: %w", err)
	}

	slog.Info("Command menu registered", "command", s.command, "entries", len(commands))
	return nil
}

// truncate cuts s to max runes, Slack rejects longer descriptions
func truncate(s string, max int) string {
	r := []rune(s)
	if len(r) <= max {
		return s
	}
	return string(r[:max-1]) + "…"
}
