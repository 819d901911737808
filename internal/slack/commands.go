package slack

import (
	"errors"
	"fmt"
	"strings"
	"unicode"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
)

type CommandType string

const (
	CmdHelp     CommandType = "help"
	CmdID       CommandType = "id"
	CmdSetup    CommandType = "setup"
	CmdToday    CommandType = "today"
	CmdTomorrow CommandType = "tomorrow"
	CmdWeek     CommandType = "week"
	CmdDay      CommandType = "day"
	CmdSet      CommandType = "set"
	CmdEpoch    CommandType = "epoch"
	CmdClear    CommandType = "clear"
	CmdAnnounce CommandType = "announce"
	CmdPublish  CommandType = "publish"
	CmdAdmins   CommandType = "admins"
	CmdAdmin    CommandType = "admin"
)

// Command is a parsed slash command. Only the fields relevant to Type are set.
type Command struct {
	Type   CommandType
	Day    domain.Day
	Parity domain.Parity
	Text   string
	Action string
	UserID string
	Raw    string
}

// Mutating reports whether the command changes state and needs an admin
func (c *Command) Mutating() bool {
	switch c.Type {
	case CmdSet, CmdEpoch, CmdClear, CmdAnnounce, CmdPublish, CmdAdmin:
		return true
	}
	return false
}

// ChannelOnly reports whether the command must come from a channel
func (c *Command) ChannelOnly() bool {
	return c.Type != CmdHelp && c.Type != CmdID
}

var ErrUnknownCommand = errors.New("unknown command")

// UsageError is returned when a known command is missing arguments
type UsageError struct {
	Usage string
}

func (e *UsageError) Error() string {
	return "usage: " + e.Usage
}

// ParseCommand parses the text after the slash command. Text given to set and
// announce keeps its original spacing and line breaks.
func ParseCommand(text string) (*Command, error) {
	first, rest := nextToken(text)
	if first == "" {
		return &Command{Type: CmdHelp}, nil
	}

	cmd := &Command{Raw: text}

	switch strings.ToLower(first) {
	case "help":
		cmd.Type = CmdHelp
	case "id":
		cmd.Type = CmdID
	case "setup", "start":
		cmd.Type = CmdSetup
	case "today":
		cmd.Type = CmdToday
	case "tomorrow":
		cmd.Type = CmdTomorrow
	case "week":
		cmd.Type = CmdWeek
	case "set":
		return parseSet(cmd, rest)
	case "epoch":
		cmd.Type = CmdEpoch
		token, _ := nextToken(rest)
		if token == "" {
			return nil, &UsageError{Usage: "epoch YYYY-MM-DD"}
		}
		cmd.Text = token
	case "clear":
		cmd.Type = CmdClear
	case "announce":
		cmd.Type = CmdAnnounce
		cmd.Text = strings.TrimSpace(rest)
		if cmd.Text == "" {
			return nil, &UsageError{Usage: "announce <text>"}
		}
	case "publish":
		cmd.Type = CmdPublish
	case "admins":
		cmd.Type = CmdAdmins
	case "admin":
		return parseAdmin(cmd, rest)
	default:
		day, err := domain.ParseDay(first)
		if err != nil {
			return nil, fmt.Errorf("%w: %s", ErrUnknownCommand, first)
		}
		cmd.Type = CmdDay
		cmd.Day = day
	}

	return cmd, nil
}

func parseSet(cmd *Command, rest string) (*Command, error) {
	const usage = "set <day> [upper|lower] <text>"
	cmd.Type = CmdSet

	dayToken, rest := nextToken(rest)
	if dayToken == "" {
		return nil, &UsageError{Usage: usage}
	}
	day, err := domain.ParseDay(dayToken)
	if err != nil {
		return nil, err
	}
	cmd.Day = day

	if !day.IsWeekend() {
		var parityToken string
		parityToken, rest = nextToken(rest)
		if parityToken == "" {
			return nil, &domain.ValidationError{Field: "parity", Err: domain.ErrParityRequired}
		}
		parity, err := domain.ParseParity(parityToken)
		if err != nil {
			return nil, err
		}
		cmd.Parity = parity
	}

	cmd.Text = strings.TrimSpace(rest)
	if cmd.Text == "" {
		return nil, &UsageError{Usage: usage}
	}
	return cmd, nil
}

func parseAdmin(cmd *Command, rest string) (*Command, error) {
	const usage = "admin add|remove @user"
	cmd.Type = CmdAdmin

	action, rest := nextToken(rest)
	switch strings.ToLower(action) {
	case "add", "remove", "rm":
	default:
		return nil, &UsageError{Usage: usage}
	}
	cmd.Action = strings.ToLower(action)
	if cmd.Action == "rm" {
		cmd.Action = "remove"
	}

	mention, _ := nextToken(rest)
	cmd.UserID = ExtractUserID(mention)
	if cmd.UserID == "" {
		return nil, &UsageError{Usage: usage}
	}
	return cmd, nil
}

// nextToken splits off the first whitespace separated word, returning the
// remainder untouched.
func nextToken(s string) (token, rest string) {
	s = strings.TrimLeftFunc(s, unicode.IsSpace)
	i := strings.IndexFunc(s, unicode.IsSpace)
	if i < 0 {
		return s, ""
	}
	return s[:i], s[i:]
}

// ExtractUserID accepts a Slack mention (<@U123> or <@U123|name>) or a bare id
func ExtractUserID(mention string) string {
	id := strings.TrimSpace(mention)
	id = strings.TrimPrefix(id, "<@")
	id = strings.TrimSuffix(id, ">")
	if i := strings.Index(id, "|"); i >= 0 {
		id = id[:i]
	}
	id = strings.TrimPrefix(id, "@")
	return strings.TrimSpace(id)
}

// Menu lists the sub-commands shown as the slash command's hint
func Menu() []contract.CommandInfo {
	return []contract.CommandInfo{
		{Name: "today", Description: "Today's schedule"},
		{Name: "tomorrow", Description: "Tomorrow's schedule"},
		{Name: "week", Description: "Current week parity"},
		{Name: "monday", Description: "Schedule for a day of the week"},
		{Name: "setup", Description: "Register this channel"},
		{Name: "id", Description: "Show your user id"},
		{Name: "help", Description: "List all commands"},
	}
}

func GetHelpText(command string) string {
	return `*Available Commands:*

*Schedule:*
• ` + "`" + command + " today`" + ` - Today's schedule
• ` + "`" + command + " tomorrow`" + ` - Tomorrow's schedule
• ` + "`" + command + " monday`" + ` ... ` + "`sunday`" + ` - Schedule for a day (both weeks)
• ` + "`" + command + " week`" + ` - Current and next week parity

*General:*
• ` + "`" + command + " setup`" + ` - Register this channel for daily posts
• ` + "`" + command + " id`" + ` - Show your user id and this channel id
• ` + "`" + command + " help`" + ` - Show this message

*Admin:*
• ` + "`" + command + " set <day> upper|lower <text>`" + ` - Set a weekday slot
• ` + "`" + command + " set saturday|sunday <text>`" + ` - Set a weekend day
• ` + "`" + command + " epoch YYYY-MM-DD`" + ` - Set the first day of the upper week
• ` + "`" + command + " clear`" + ` - Clear the whole timetable
• ` + "`" + command + " announce <text>`" + ` - Post a pinned announcement
• ` + "`" + command + " publish`" + ` - Publish today's schedule now
• ` + "`" + command + " admins`" + ` - List admins
• ` + "`" + command + " admin add|remove @user`" + ` - Manage admins`
}
