package logger

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"
)

type fakeBot struct {
	chatIDs  []int64
	messages []string
	err      error
}

func (f *fakeBot) SendMessage(chatID int64, text string) error {
	f.chatIDs = append(f.chatIDs, chatID)
	f.messages = append(f.messages, text)
	return f.err
}

func withLogger(t *testing.T, cfg Config) {
	t.Helper()
	Init(cfg)
	t.Cleanup(func() {
		Init(Config{Level: LevelInfo, Output: &bytes.Buffer{}})
	})
}

func TestParseLevel(t *testing.T) {
	tests := []struct {
		name string
		want Level
	}{
		{"debug", LevelDebug},
		{" INFO ", LevelInfo},
		{"warn", LevelWarn},
		{"error", LevelError},
		{"warning", LevelWarn},
		{"", LevelInfo},
		{"verbose", LevelInfo},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			require.Equal(t, tt.want, ParseLevel(tt.name))
		})
	}
}

func TestLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, Config{Level: LevelWarn, Output: &buf})

	Debug("hidden debug")
	Info("hidden info")
	Warn("shown warn")
	Error("shown error")

	got := buf.String()
	require.NotContains(t, got, "hidden")
	require.Contains(t, got, "WARN shown warn")
	require.Contains(t, got, "ERROR shown error")
	require.Equal(t, 2, strings.Count(got, "\n"))
}

func TestForwardsToBot(t *testing.T) {
	var buf bytes.Buffer
	bot := &fakeBot{}
	withLogger(t, Config{Level: LevelInfo, Output: &buf, Bot: bot, ChannelID: 42})

	Info("retrying search")

	require.Equal(t, []int64{42}, bot.chatIDs)
	require.Len(t, bot.messages, 1)
	require.Contains(t, bot.messages[0], "INFO\nretrying search")
}

func TestBotFailureIsReported(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, Config{Level: LevelInfo, Output: &buf, Bot: &fakeBot{err: errors.New("offline")}})

	LogWithErr("fetch failed", errors.New("timeout"))

	got := buf.String()
	require.Contains(t, got, "fetch failed\nError: timeout")
	require.Contains(t, got, "Failed to send log to channel: offline")
}

func TestDefaultLevelKeepsInfo(t *testing.T) {
	var buf bytes.Buffer
	withLogger(t, Config{Level: ParseLevel(""), Output: &buf})

	Debug("hidden debug")
	Info("No results found, retrying search with `a - b`")

	got := buf.String()
	require.NotContains(t, got, "hidden")
	require.Contains(t, got, "INFO No results found, retrying search with `a - b`")
}
