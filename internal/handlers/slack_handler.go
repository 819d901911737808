package handlers

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"sync"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
	"github.com/diegoclair/slack-timetable-bot/internal/format"
	"github.com/diegoclair/slack-timetable-bot/internal/metrics"
	slackcmd "github.com/diegoclair/slack-timetable-bot/internal/slack"
	"github.com/slack-go/slack"
)

// FollowUpFunc delivers a late reply to a slash command's response_url
type FollowUpFunc func(ctx context.Context, responseURL string, msg *slack.Msg) error

const followUpTimeout = 2 * time.Minute

type SlackHandler struct {
	followUp      FollowUpFunc
	background    sync.WaitGroup
	messenger     contract.Messenger
	timetable     contract.TimetableService
	admins        contract.AdminService
	publisher     contract.PublicationService
	signingSecret string
	command       string
	location      *time.Location
}

func New(
	messenger contract.Messenger,
	timetable contract.TimetableService,
	admins contract.AdminService,
	publisher contract.PublicationService,
	signingSecret string,
	command string,
	location *time.Location,
) *SlackHandler {
	if location == nil {
		location = time.Local
	}
	return &SlackHandler{
		followUp:      postToResponseURL,
		messenger:     messenger,
		timetable:     timetable,
		admins:        admins,
		publisher:     publisher,
		signingSecret: signingSecret,
		command:       command,
		location:      location,
	}
}

// WithFollowUp replaces how late replies are delivered
func (h *SlackHandler) WithFollowUp(fn FollowUpFunc) *SlackHandler {
	h.followUp = fn
	return h
}

// Wait blocks until background work started by commands has finished
func (h *SlackHandler) Wait() {
	h.background.Wait()
}

func postToResponseURL(ctx context.Context, responseURL string, msg *slack.Msg) error {
	return slack.PostWebhookContext(ctx, responseURL, &slack.WebhookMessage{
		ResponseType: msg.ResponseType,
		Text:         msg.Text,
	})
}

func (h *SlackHandler) HandleSlashCommand(w http.ResponseWriter, r *http.Request) {
	// Verify request from Slack
	body, err := io.ReadAll(r.Body)
	if err != nil {
		w.WriteHeader(http.StatusBadRequest)
		return
	}
	r.Body = io.NopCloser(bytes.NewBuffer(body))

	verifier, err := slack.NewSecretsVerifier(r.Header, h.signingSecret)
	if err != nil {
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	if _, err := verifier.Write(body); err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	if err := verifier.Ensure(); err != nil {
		slog.Warn("Rejected slash command with invalid signature", "error", err)
		w.WriteHeader(http.StatusUnauthorized)
		return
	}

	s, err := slack.SlashCommandParse(r)
	if err != nil {
		w.WriteHeader(http.StatusInternalServerError)
		return
	}

	cmd, err := slackcmd.ParseCommand(s.Text)
	if err != nil {
		metrics.Commands.WithLabelValues("invalid").Inc()
		h.respond(w, h.createErrorResponse(h.userMessage(err)))
		return
	}

	metrics.Commands.WithLabelValues(string(cmd.Type)).Inc()
	h.respond(w, h.handleCommand(r.Context(), cmd, &s))
}

func (h *SlackHandler) handleCommand(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	switch cmd.Type {
	case slackcmd.CmdHelp:
		return h.handleHelp()
	case slackcmd.CmdID:
		return h.handleID(slashCmd)
	}

	if cmd.ChannelOnly() && isDirectMessage(slashCmd) {
		return h.createErrorResponse("This command only works in a channel. Invite me to one and try again.")
	}

	if cmd.Mutating() {
		ok, err := h.admins.IsAdmin(slashCmd.UserID)
		if err != nil {
			slog.Error("Failed to check admin", "user", slashCmd.UserID, "error", err)
			return h.createErrorResponse(h.userMessage(err))
		}
		if !ok {
			return h.createErrorResponse(h.userMessage(domain.ErrNotAdmin))
		}
	}

	switch cmd.Type {
	case slackcmd.CmdAnnounce:
		return h.handleAnnounce(ctx, cmd, slashCmd)
	case slackcmd.CmdAdmins:
		return h.handleListAdmins(slashCmd)
	case slackcmd.CmdAdmin:
		return h.handleAdmin(cmd, slashCmd)
	}

	group, created, err := h.timetable.SetupGroup(slashCmd.ChannelID, slashCmd.ChannelName, slashCmd.TeamID)
	if err != nil {
		slog.Error("Failed to set up group", "channel", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Failed to check channel")
	}

	now := time.Now().In(h.location)

	switch cmd.Type {
	case slackcmd.CmdSetup:
		return h.handleSetup(group, created)
	case slackcmd.CmdToday:
		return h.handleToday(group, now)
	case slackcmd.CmdTomorrow:
		return h.handleTomorrow(group, now)
	case slackcmd.CmdWeek:
		return h.handleWeek(group, now)
	case slackcmd.CmdDay:
		return h.handleDay(cmd, group, now)
	case slackcmd.CmdSet:
		return h.handleSet(cmd, group)
	case slackcmd.CmdEpoch:
		return h.handleEpoch(cmd, group)
	case slackcmd.CmdClear:
		return h.handleClear(group)
	case slackcmd.CmdPublish:
		return h.handlePublish(group, slashCmd.ResponseURL, now)
	default:
		return h.createErrorResponse("Unknown command")
	}
}

func (h *SlackHandler) handleHelp() *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         slackcmd.GetHelpText(h.command),
	}
}

func (h *SlackHandler) handleID(slashCmd *slack.SlashCommand) *slack.Msg {
	text := fmt.Sprintf("Your user id: `%s`", slashCmd.UserID)
	if slashCmd.ChannelID != "" {
		text += fmt.Sprintf("\nChannel id: `%s`", slashCmd.ChannelID)
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) handleSetup(group *entity.Group, created bool) *slack.Msg {
	status := "already registered"
	if created {
		status = "registered"
	}
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text: fmt.Sprintf("✅ This channel is %s. The schedule of the day is posted and pinned every morning.\nWeeks are counted from %s. Use `%s help` to see all commands.",
			status, format.Date(group.Epoch), h.command),
	}
}

func (h *SlackHandler) handleToday(group *entity.Group, now time.Time) *slack.Msg {
	schedule, err := h.timetable.Today(group.ID, now)
	if err != nil {
		slog.Error("Failed to get today's schedule", "group_id", group.ID, "error", err)
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel(format.Today(schedule))
}

func (h *SlackHandler) handleTomorrow(group *entity.Group, now time.Time) *slack.Msg {
	schedule, err := h.timetable.Tomorrow(group.ID, now)
	if err != nil {
		slog.Error("Failed to get tomorrow's schedule", "group_id", group.ID, "error", err)
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel(format.Tomorrow(schedule))
}

func (h *SlackHandler) handleWeek(group *entity.Group, now time.Time) *slack.Msg {
	info, err := h.timetable.WeekInfo(group.ID, now)
	if err != nil {
		slog.Error("Failed to get week info", "group_id", group.ID, "error", err)
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel(format.Week(info))
}

func (h *SlackHandler) handleDay(cmd *slackcmd.Command, group *entity.Group, now time.Time) *slack.Msg {
	overview, err := h.timetable.Day(group.ID, cmd.Day, now)
	if err != nil {
		slog.Error("Failed to get day schedule", "group_id", group.ID, "day", int(cmd.Day), "error", err)
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel(format.Overview(overview))
}

func (h *SlackHandler) handleSet(cmd *slackcmd.Command, group *entity.Group) *slack.Msg {
	if err := h.timetable.SetDayEntry(group.ID, cmd.Day, cmd.Parity, cmd.Text); err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}

	slot := format.DayName(cmd.Day)
	if cmd.Parity != domain.ParityNone {
		slot = fmt.Sprintf("%s (%s week)", slot, format.ParityName(cmd.Parity))
	}
	return h.inChannel(fmt.Sprintf("✅ Schedule for %s updated:\n%s", slot, cmd.Text))
}

func (h *SlackHandler) handleEpoch(cmd *slackcmd.Command, group *entity.Group) *slack.Msg {
	epoch, err := domain.ParseDate(cmd.Text)
	if err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}

	if err := h.timetable.SetEpoch(group.ID, epoch); err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel(fmt.Sprintf("✅ Weeks are now counted from %s (upper week).", format.Date(epoch)))
}

func (h *SlackHandler) handleClear(group *entity.Group) *slack.Msg {
	if err := h.timetable.ClearAll(group.ID); err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.inChannel("🗑️ Timetable cleared.")
}

func (h *SlackHandler) handleAnnounce(ctx context.Context, cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	messageTS, err := h.messenger.SendMessage(ctx, slashCmd.ChannelID, format.Announcement(cmd.Text))
	if err != nil {
		slog.Error("Failed to post announcement", "channel", slashCmd.ChannelID, "error", err)
		return h.createErrorResponse("Failed to post the announcement")
	}

	if err := h.messenger.PinMessage(ctx, slashCmd.ChannelID, messageTS); err != nil {
		slog.Warn("Failed to pin announcement", "channel", slashCmd.ChannelID, "message_ts", messageTS, "error", err)
		return h.ephemeral("📢 Announcement posted, but I could not pin it.")
	}
	return h.ephemeral("📢 Announcement posted and pinned.")
}

// handlePublish answers at once. The cycle runs in the background and its
// outcome goes to the command's response_url.
func (h *SlackHandler) handlePublish(group *entity.Group, responseURL string, now time.Time) *slack.Msg {
	h.background.Add(1)
	go func() {
		defer h.background.Done()

		ctx, cancel := context.WithTimeout(context.Background(), followUpTimeout)
		defer cancel()

		result := h.publisher.PublishGroup(ctx, group.ID, now)
		if responseURL == "" {
			return
		}
		if err := h.followUp(ctx, responseURL, h.publishReply(result)); err != nil {
			slog.Warn("Failed to deliver publish result", "group_id", group.ID, "error", err)
		}
	}()

	return h.ephemeral("⏳ Publishing today's schedule...")
}

func (h *SlackHandler) publishReply(result contract.PublishResult) *slack.Msg {
	switch result.Outcome {
	case contract.OutcomePublished:
		return h.ephemeral("✅ Today's schedule published and pinned.")
	case contract.OutcomePinFailed:
		return h.ephemeral("⚠️ Today's schedule published, but I could not pin it.")
	case contract.OutcomeSkipped:
		return h.ephemeral("Nothing to publish today.")
	default:
		return h.createErrorResponse("Failed to publish today's schedule")
	}
}

func (h *SlackHandler) handleListAdmins(slashCmd *slack.SlashCommand) *slack.Msg {
	admins, err := h.admins.List(slashCmd.UserID)
	if err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}

	if len(admins) == 0 {
		return h.ephemeral("No admins configured.")
	}

	var list strings.Builder
	list.WriteString("*Admins:*\n")
	for _, admin := range admins {
		list.WriteString(fmt.Sprintf("• <@%s>\n", admin.SlackUserID))
	}
	return h.ephemeral(list.String())
}

func (h *SlackHandler) handleAdmin(cmd *slackcmd.Command, slashCmd *slack.SlashCommand) *slack.Msg {
	if cmd.Action == "add" {
		if err := h.admins.Add(slashCmd.UserID, cmd.UserID); err != nil {
			return h.createErrorResponse(h.userMessage(err))
		}
		return h.ephemeral(fmt.Sprintf("✅ <@%s> is now an admin.", cmd.UserID))
	}

	if err := h.admins.Remove(slashCmd.UserID, cmd.UserID); err != nil {
		return h.createErrorResponse(h.userMessage(err))
	}
	return h.ephemeral(fmt.Sprintf("✅ <@%s> is no longer an admin.", cmd.UserID))
}

// userMessage turns an error into something a user can act on
func (h *SlackHandler) userMessage(err error) string {
	var usageErr *slackcmd.UsageError
	switch {
	case errors.As(err, &usageErr):
		return fmt.Sprintf("Usage: `%s %s`", h.command, usageErr.Usage)
	case errors.Is(err, slackcmd.ErrUnknownCommand):
		return fmt.Sprintf("Unknown command. Use `%s help` to see all commands.", h.command)
	case errors.Is(err, domain.ErrInvalidDay):
		return "Unknown day. Use monday ... sunday (or mon ... sun)."
	case errors.Is(err, domain.ErrParityRequired):
		return "Weekdays need a week: `upper` or `lower`."
	case errors.Is(err, domain.ErrInvalidParity):
		return "The week must be `upper` or `lower`."
	case errors.Is(err, domain.ErrParityNotAllowed):
		return "Weekend days have no upper or lower week."
	case errors.Is(err, domain.ErrInvalidDate):
		return "The date must look like YYYY-MM-DD."
	case errors.Is(err, domain.ErrInvalidUserID):
		return "Please mention a user."
	case errors.Is(err, domain.ErrNotAdmin):
		return "Only admins can use this command."
	case errors.Is(err, domain.ErrSelfRemoval):
		return "You cannot remove yourself from the admins."
	case errors.Is(err, domain.ErrAdminNotFound):
		return "That user is not an admin."
	case errors.Is(err, domain.ErrGroupNotFound):
		return fmt.Sprintf("This channel is not set up yet. Use `%s setup`.", h.command)
	default:
		return "Something went wrong, please try again."
	}
}

// isDirectMessage reports whether the command came from a DM instead of a channel
func isDirectMessage(s *slack.SlashCommand) bool {
	return strings.HasPrefix(s.ChannelID, "D") || s.ChannelName == "directmessage"
}

func (h *SlackHandler) inChannel(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeInChannel,
		Text:         text,
	}
}

func (h *SlackHandler) ephemeral(text string) *slack.Msg {
	return &slack.Msg{
		ResponseType: slack.ResponseTypeEphemeral,
		Text:         text,
	}
}

func (h *SlackHandler) createErrorResponse(message string) *slack.Msg {
	return h.ephemeral(fmt.Sprintf("❌ %s", message))
}

func (h *SlackHandler) respond(w http.ResponseWriter, msg *slack.Msg) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(msg); err != nil {
		slog.Error("Failed to write slash command response", "error", err)
	}
}
