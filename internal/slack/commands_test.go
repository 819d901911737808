package slack

import (
	"testing"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseCommand(t *testing.T) {
	tests := []struct {
		name    string
		text    string
		want    *Command
		wantErr error
	}{
		{name: "Should default to help", text: "  ", want: &Command{Type: CmdHelp}},
		{name: "Should parse today", text: "today", want: &Command{Type: CmdToday, Raw: "today"}},
		{name: "Should be case insensitive", text: "TOMORROW", want: &Command{Type: CmdTomorrow, Raw: "TOMORROW"}},
		{name: "Should parse a day name", text: "wednesday", want: &Command{Type: CmdDay, Day: domain.Wednesday, Raw: "wednesday"}},
		{name: "Should parse a short day name", text: "sat", want: &Command{Type: CmdDay, Day: domain.Saturday, Raw: "sat"}},
		{
			name: "Should parse weekday set",
			text: "set wed upper Physics 101",
			want: &Command{Type: CmdSet, Day: domain.Wednesday, Parity: domain.ParityUpper, Text: "Physics 101", Raw: "set wed upper Physics 101"},
		},
		{
			name: "Should keep line breaks in set text",
			text: "set monday lower 9:00 Math\n11:00  Art",
			want: &Command{Type: CmdSet, Day: domain.Monday, Parity: domain.ParityLower, Text: "9:00 Math\n11:00  Art", Raw: "set monday lower 9:00 Math\n11:00  Art"},
		},
		{
			name: "Should not take a parity on weekends",
			text: "set saturday upper hike",
			want: &Command{Type: CmdSet, Day: domain.Saturday, Text: "upper hike", Raw: "set saturday upper hike"},
		},
		{name: "Should parse epoch", text: "epoch 2025-02-03", want: &Command{Type: CmdEpoch, Text: "2025-02-03", Raw: "epoch 2025-02-03"}},
		{name: "Should parse announce", text: "announce No classes\ntoday", want: &Command{Type: CmdAnnounce, Text: "No classes\ntoday", Raw: "announce No classes\ntoday"}},
		{
			name: "Should parse admin add with mention",
			text: "admin add <@U123456789|jane>",
			want: &Command{Type: CmdAdmin, Action: "add", UserID: "U123456789", Raw: "admin add <@U123456789|jane>"},
		},
		{
			name: "Should normalize admin rm",
			text: "admin rm U123",
			want: &Command{Type: CmdAdmin, Action: "remove", UserID: "U123", Raw: "admin rm U123"},
		},
		{name: "Should reject unknown command", text: "dance", wantErr: ErrUnknownCommand},
		{name: "Should require parity for weekday set", text: "set monday Math", wantErr: domain.ErrInvalidParity},
		{name: "Should require parity token for weekday set", text: "set monday", wantErr: domain.ErrParityRequired},
		{name: "Should reject unknown day in set", text: "set funday upper X", wantErr: domain.ErrInvalidDay},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := ParseCommand(tt.text)
			if tt.wantErr != nil {
				require.ErrorIs(t, err, tt.wantErr)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestParseCommand_Usage(t *testing.T) {
	for _, text := range []string{"set", "set tuesday upper", "set sunday   ", "epoch", "announce", "admin", "admin add", "admin promote U1"} {
		t.Run(text, func(t *testing.T) {
			_, err := ParseCommand(text)
			var usageErr *UsageError
			require.ErrorAs(t, err, &usageErr)
			assert.NotEmpty(t, usageErr.Usage)
		})
	}
}

func TestCommand_Gating(t *testing.T) {
	assert.True(t, (&Command{Type: CmdSet}).Mutating())
	assert.True(t, (&Command{Type: CmdPublish}).Mutating())
	assert.False(t, (&Command{Type: CmdAdmins}).Mutating())
	assert.False(t, (&Command{Type: CmdToday}).Mutating())

	assert.False(t, (&Command{Type: CmdID}).ChannelOnly())
	assert.False(t, (&Command{Type: CmdHelp}).ChannelOnly())
	assert.True(t, (&Command{Type: CmdWeek}).ChannelOnly())
}

func TestExtractUserID(t *testing.T) {
	assert.Equal(t, "U123", ExtractUserID("<@U123>"))
	assert.Equal(t, "U123", ExtractUserID("<@U123|jane>"))
	assert.Equal(t, "U123", ExtractUserID("@U123"))
	assert.Equal(t, "", ExtractUserID(""))
}

func TestGetHelpText(t *testing.T) {
	help := GetHelpText("/timetable")
	assert.Contains(t, help, "`/timetable today`")
	assert.Contains(t, help, "`/timetable set <day> upper|lower <text>`")
}
