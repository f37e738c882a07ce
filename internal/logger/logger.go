package logger

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"
	"time"
)

// Level orders log messages by severity
type Level int

const (
	LevelDebug Level = iota
	LevelInfo
	LevelWarn
	LevelError
)

const timeFormat = "2006-01-02 15:04:05"

var (
	mu        sync.Mutex
	out       io.Writer = os.Stderr
	minLevel            = LevelInfo
	channelID int64
	botClient BotClient
)

// BotClient forwards log lines to a chat channel
type BotClient interface {
	SendMessage(chatID int64, text string) error
}

// Config selects where log lines go and which ones are kept
type Config struct {
	Level     Level
	Output    io.Writer
	Bot       BotClient
	ChannelID int64
}

// ParseLevel maps a level name to a Level. Unknown and empty names fall back to info.
func ParseLevel(name string) Level {
	switch strings.ToLower(strings.TrimSpace(name)) {
	case "debug":
		return LevelDebug
	case "warn", "warning":
		return LevelWarn
	case "error":
		return LevelError
	default:
		return LevelInfo
	}
}

func Init(cfg Config) {
	mu.Lock()
	defer mu.Unlock()

	minLevel = cfg.Level
	if cfg.Output != nil {
		out = cfg.Output
	}
	botClient = cfg.Bot
	channelID = cfg.ChannelID
}

// SetOutput redirects log lines and returns the previous writer
func SetOutput(w io.Writer) io.Writer {
	mu.Lock()
	defer mu.Unlock()

	prev := out
	out = w
	return prev
}

// SetLevel changes the minimum level and returns the previous one
func SetLevel(level Level) Level {
	mu.Lock()
	defer mu.Unlock()

	prev := minLevel
	minLevel = level
	return prev
}

func Debug(message string) {
	write(LevelDebug, "🔍 DEBUG", message)
}

func Info(message string) {
	write(LevelInfo, "ℹ️ INFO", message)
}

func Success(message string) {
	write(LevelInfo, "✅ SUCCESS", message)
}

func Warn(message string) {
	write(LevelWarn, "⚠️ WARN", message)
}

func Error(message string) {
	write(LevelError, "❌ ERROR", message)
}

// LogWithErr logs message as info when err is nil and as an error otherwise
func LogWithErr(message string, err error) {
	if err == nil {
		Info(message)
		return
	}

	Error(fmt.Sprintf("%s\nError: %v", message, err))
}

func write(level Level, prefix, message string) {
	mu.Lock()
	defer mu.Unlock()

	if level < minLevel {
		return
	}

	timestamp := time.Now().Format(timeFormat)
	fmt.Fprintf(out, "[%s] %s %s\n", timestamp, prefix, message)

	if botClient == nil {
		return
	}

	// the process exits right after printing, so the send is not backgrounded
	logMessage := fmt.Sprintf("[%s] %s\n%s", timestamp, prefix, message)
	if err := botClient.SendMessage(channelID, logMessage); err != nil {
		fmt.Fprintf(out, "Failed to send log to channel: %v\n", err)
	}
}
