package handlers_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/diegoclair/slack-timetable-bot/internal/domain"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/contract"
	"github.com/diegoclair/slack-timetable-bot/internal/domain/entity"
	"github.com/diegoclair/slack-timetable-bot/internal/handlers/test"
	"github.com/slack-go/slack"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/mock/gomock"
)

type args struct {
	text        string
	channelID   string
	channelName string
	userID      string
	teamID      string
}

type handlerTest struct {
	name          string
	args          args
	buildMocks    func(ctx context.Context, m test.ServiceMocks, args args)
	checkResponse func(t *testing.T, recorder *httptest.ResponseRecorder)
	checkFollowUp func(t *testing.T, followUps []*slack.Msg)
}

func channelArgs(text string) args {
	return args{
		text:        text,
		channelID:   "C123456789",
		channelName: "test-channel",
		userID:      "U987654321",
		teamID:      "T123456789",
	}
}

func testGroup(a args) *entity.Group {
	return &entity.Group{
		ID:               1,
		SlackChannelID:   a.channelID,
		SlackChannelName: a.channelName,
		SlackTeamID:      a.teamID,
		Epoch:            domain.DefaultEpoch,
	}
}

func expectSetup(m test.ServiceMocks, a args) {
	m.TimetableServiceMock.EXPECT().
		SetupGroup(a.channelID, a.channelName, a.teamID).
		Return(testGroup(a), false, nil).Times(1)
}

func expectAdmin(m test.ServiceMocks, a args, isAdmin bool) {
	m.AdminServiceMock.EXPECT().
		IsAdmin(a.userID).
		Return(isAdmin, nil).Times(1)
}

func decode(t *testing.T, resp *httptest.ResponseRecorder) slack.Msg {
	t.Helper()
	require.Equal(t, http.StatusOK, resp.Code)

	var response slack.Msg
	err := json.Unmarshal(resp.Body.Bytes(), &response)
	require.NoError(t, err)
	return response
}

func runHandlerTests(t *testing.T, tests []handlerTest) {
	t.Helper()

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			m, handler, ctrl := test.GetHandlerTest(t)
			defer ctrl.Finish()

			if tt.buildMocks != nil {
				tt.buildMocks(context.Background(), m, tt.args)
			}

			recorder := test.CreateTestRecorder()
			req := test.CreateSlackRequest(t, test.SlashCommand, tt.args.text, tt.args.channelID, tt.args.channelName, tt.args.userID, tt.args.teamID, test.SigningSecret)

			handler.HandleSlashCommand(recorder, req)
			handler.Wait()

			if tt.checkResponse != nil {
				tt.checkResponse(t, recorder)
			}
			if tt.checkFollowUp != nil {
				tt.checkFollowUp(t, m.FollowUps.Messages())
			}
		})
	}
}

func TestSlackHandler_HandleSlashCommand_Signature(t *testing.T) {
	_, handler, ctrl := test.GetHandlerTest(t)
	defer ctrl.Finish()

	recorder := test.CreateTestRecorder()
	req := test.CreateSlackRequest(t, test.SlashCommand, "today", "C123456789", "test-channel", "U987654321", "T123456789", "wrong-secret")

	handler.HandleSlashCommand(recorder, req)

	assert.Equal(t, http.StatusUnauthorized, recorder.Code)
}

func TestSlackHandler_HandleSlashCommand_General(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "Should show help when no text is given",
			args: channelArgs(""),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "*Available Commands:*")
				assert.Contains(t, response.Text, "`/timetable today`")
			},
		},
		{
			name: "Should answer id in a direct message",
			args: args{text: "id", channelID: "D123456789", channelName: "directmessage", userID: "U987654321", teamID: "T123456789"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "Your user id: `U987654321`")
				assert.Contains(t, response.Text, "Channel id: `D123456789`")
			},
		},
		{
			name: "Should refuse schedule queries in a direct message",
			args: args{text: "today", channelID: "D123456789", channelName: "directmessage", userID: "U987654321", teamID: "T123456789"},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "only works in a channel")
			},
		},
		{
			name: "Should report unknown command",
			args: channelArgs("dance"),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "❌ Unknown command. Use `/timetable help`")
			},
		},
		{
			name: "Should register the channel on setup",
			args: channelArgs("setup"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.TimetableServiceMock.EXPECT().
					SetupGroup(args.channelID, args.channelName, args.teamID).
					Return(testGroup(args), true, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ This channel is registered.")
				assert.Contains(t, response.Text, "01.09.2024")
			},
		},
		{
			name: "Should report setup failure",
			args: channelArgs("today"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.TimetableServiceMock.EXPECT().
					SetupGroup(args.channelID, args.channelName, args.teamID).
					Return(nil, false, errors.New("database error")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "❌ Failed to check channel")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Queries(t *testing.T) {
	monday := time.Date(2024, time.September, 9, 0, 0, 0, 0, time.UTC)

	runHandlerTests(t, []handlerTest{
		{
			name: "Should show today's schedule",
			args: channelArgs("today"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					Today(int64(1), gomock.Any()).
					Return(&entity.DaySchedule{Day: domain.Monday, Parity: domain.ParityLower, Date: monday, Text: "Math 9:00", Configured: true}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "SCHEDULE FOR TODAY")
				assert.Contains(t, response.Text, "(Monday, lower week)")
				assert.Contains(t, response.Text, "Math 9:00")
			},
		},
		{
			name: "Should show tomorrow's schedule",
			args: channelArgs("tomorrow"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					Tomorrow(int64(1), gomock.Any()).
					Return(&entity.DaySchedule{Day: domain.Tuesday, Parity: domain.ParityUpper, Text: domain.NotConfiguredText}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "SCHEDULE FOR TOMORROW")
				assert.Contains(t, response.Text, "(Tuesday, upper week)")
				assert.Contains(t, response.Text, domain.NotConfiguredText)
			},
		},
		{
			name: "Should show both weeks of a day",
			args: channelArgs("wed"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					Day(int64(1), domain.Wednesday, gomock.Any()).
					Return(&entity.DayOverview{
						Current: entity.DaySchedule{Day: domain.Wednesday, Parity: domain.ParityUpper, Text: "Physics 101", Configured: true},
						Other:   &entity.DaySchedule{Day: domain.Wednesday, Parity: domain.ParityLower, Text: domain.NotConfiguredText},
					}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "SCHEDULE FOR WEDNESDAY")
				assert.Contains(t, response.Text, "*Upper week:*\nPhysics 101")
				assert.Contains(t, response.Text, "*Lower week:*\n"+domain.NotConfiguredText)
			},
		},
		{
			name: "Should show week info",
			args: channelArgs("week"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					WeekInfo(int64(1), gomock.Any()).
					Return(&entity.WeekInfo{Current: domain.ParityLower, Next: domain.ParityUpper, Epoch: domain.DefaultEpoch, Today: monday}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "*Current week:* Lower")
				assert.Contains(t, response.Text, "*Next week:* Upper")
				assert.Contains(t, response.Text, "*Today:* 09.09.2024")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Set(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "Should set a weekday slot",
			args: channelArgs("set wednesday upper Physics 101\nRoom 4"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					SetDayEntry(int64(1), domain.Wednesday, domain.ParityUpper, "Physics 101\nRoom 4").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeInChannel, response.ResponseType)
				assert.Contains(t, response.Text, "✅ Schedule for Wednesday (upper week) updated:\nPhysics 101\nRoom 4")
			},
		},
		{
			name: "Should set a weekend day",
			args: channelArgs("set sunday Rest"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					SetDayEntry(int64(1), domain.Sunday, domain.ParityNone, "Rest").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "✅ Schedule for Sunday updated:\nRest")
			},
		},
		{
			name: "Should reject non admin",
			args: channelArgs("set monday upper X"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, false)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "❌ Only admins can use this command.")
			},
		},
		{
			name: "Should explain missing parity",
			args: channelArgs("set monday"),
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "Weekdays need a week")
			},
		},
		{
			name: "Should report persistence failure",
			args: channelArgs("set monday lower X"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					SetDayEntry(int64(1), domain.Monday, domain.ParityLower, "X").
					Return(errors.New("disk full")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "❌ Something went wrong")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_EpochClear(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "Should set epoch",
			args: channelArgs("epoch 2025-02-03"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().
					SetEpoch(int64(1), time.Date(2025, time.February, 3, 0, 0, 0, 0, time.UTC)).
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "✅ Weeks are now counted from 03.02.2025")
			},
		},
		{
			name: "Should reject malformed epoch",
			args: channelArgs("epoch 03.02.2025"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "YYYY-MM-DD")
			},
		},
		{
			name: "Should clear timetable",
			args: channelArgs("clear"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.TimetableServiceMock.EXPECT().ClearAll(int64(1)).Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "Timetable cleared")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_AnnouncePublish(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "Should post and pin an announcement",
			args: channelArgs("announce No classes today"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				m.MessengerMock.EXPECT().
					SendMessage(gomock.Any(), args.channelID, "*📢 ANNOUNCEMENT*\n\nNo classes today\n\n<!channel>").
					Return("ts-1", nil).Times(1)
				m.MessengerMock.EXPECT().
					PinMessage(gomock.Any(), args.channelID, "ts-1").
					Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Announcement posted and pinned")
			},
		},
		{
			name: "Should keep announcement when pin fails",
			args: channelArgs("announce Hello"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				m.MessengerMock.EXPECT().SendMessage(gomock.Any(), args.channelID, gomock.Any()).Return("ts-1", nil).Times(1)
				m.MessengerMock.EXPECT().PinMessage(gomock.Any(), args.channelID, "ts-1").Return(errors.New("not_pinnable")).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "could not pin it")
			},
		},
		{
			name: "Should publish today's schedule on demand",
			args: channelArgs("publish"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.PublicationServiceMock.EXPECT().
					PublishGroup(gomock.Any(), int64(1), gomock.Any()).
					Return(contract.PublishResult{GroupID: 1, Outcome: contract.OutcomePublished, MessageTS: "ts-2"}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "Publishing today's schedule")
			},
			checkFollowUp: func(t *testing.T, followUps []*slack.Msg) {
				require.Len(t, followUps, 1)
				assert.Equal(t, "✅ Today's schedule published and pinned.", followUps[0].Text)
			},
		},
		{
			name: "Should report failed publication",
			args: channelArgs("publish"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				expectSetup(m, args)
				m.PublicationServiceMock.EXPECT().
					PublishGroup(gomock.Any(), int64(1), gomock.Any()).
					Return(contract.PublishResult{GroupID: 1, Outcome: contract.OutcomeSendFailed, Err: errors.New("not_in_channel")}).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "Publishing today's schedule")
			},
			checkFollowUp: func(t *testing.T, followUps []*slack.Msg) {
				require.Len(t, followUps, 1)
				assert.Contains(t, followUps[0].Text, "❌ Failed to publish")
			},
		},
	})
}

func TestSlackHandler_HandleSlashCommand_Admins(t *testing.T) {
	runHandlerTests(t, []handlerTest{
		{
			name: "Should list admins",
			args: channelArgs("admins"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().
					List(args.userID).
					Return([]*entity.Admin{{SlackUserID: "U987654321"}, {SlackUserID: "U111111111"}}, nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Equal(t, slack.ResponseTypeEphemeral, response.ResponseType)
				assert.Contains(t, response.Text, "• <@U987654321>")
				assert.Contains(t, response.Text, "• <@U111111111>")
			},
		},
		{
			name: "Should hide admins from non admins",
			args: channelArgs("admins"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				m.AdminServiceMock.EXPECT().List(args.userID).Return(nil, domain.ErrNotAdmin).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "Only admins")
			},
		},
		{
			name: "Should add admin from mention",
			args: channelArgs("admin add <@U111111111|jane>"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				m.AdminServiceMock.EXPECT().Add(args.userID, "U111111111").Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "✅ <@U111111111> is now an admin.")
			},
		},
		{
			name: "Should refuse self removal",
			args: channelArgs("admin remove <@U987654321>"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				m.AdminServiceMock.EXPECT().Remove(args.userID, "U987654321").Return(domain.ErrSelfRemoval).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "You cannot remove yourself")
			},
		},
		{
			name: "Should remove another admin",
			args: channelArgs("admin remove <@U111111111>"),
			buildMocks: func(ctx context.Context, m test.ServiceMocks, args args) {
				expectAdmin(m, args, true)
				m.AdminServiceMock.EXPECT().Remove(args.userID, "U111111111").Return(nil).Times(1)
			},
			checkResponse: func(t *testing.T, resp *httptest.ResponseRecorder) {
				response := decode(t, resp)
				assert.Contains(t, response.Text, "is no longer an admin")
			},
		},
	})
}
