package lyrics

import (
	"context"
	"fmt"
	"net/url"
	"strings"
	"time"

	"github.com/sukalov/lyrical/internal/logger"
	"github.com/sukalov/lyrical/internal/lyrics/parsers/amdm"
	"github.com/sukalov/lyrical/internal/lyrics/parsers/genius"
)

const (
	SourceGenius = "genius.com"
	SourceAmdm   = "amdm.ru"
)

// LyricsResult represents the result of lyrics extraction
type LyricsResult struct {
	URL       string    `json:"url"`
	Text      string    `json:"text"`
	Source    string    `json:"source"`
	FetchedAt time.Time `json:"fetched_at"`
}

// PageFetcher downloads an HTML page
type PageFetcher interface {
	GetPage(ctx context.Context, url string) (string, error)
}

// Service handles lyrics extraction for different sources
type Service struct {
	fetcher    PageFetcher
	amdmParser *amdm.Parser
	now        func() time.Time
}

// NewService creates a new lyrics service
func NewService(fetcher PageFetcher) *Service {
	return &Service{
		fetcher:    fetcher,
		amdmParser: amdm.NewParser(nil),
		now:        time.Now,
	}
}

// ExtractLyrics fetches rawURL and extracts the lyrics with the parser for
// its site. Pages outside amdm.ru are treated as genius.com song pages.
func (s *Service) ExtractLyrics(ctx context.Context, rawURL string) (*LyricsResult, error) {
	logger.Debug(fmt.Sprintf("ExtractLyrics called with URL: %s", rawURL))

	parsed, err := url.Parse(rawURL)
	if err != nil || parsed.Host == "" {
		return nil, fmt.Errorf("URL is invalid: %s", rawURL)
	}

	source, extract := s.parserFor(parsed.Hostname())

	html, err := s.fetcher.GetPage(ctx, rawURL)
	if err != nil {
		logger.LogWithErr(fmt.Sprintf("failed to fetch lyrics page %s", rawURL), err)
		return nil, fmt.Errorf("failed to request lyrics: %w", err)
	}

	text, err := extract(html)
	if err != nil {
		logger.LogWithErr(fmt.Sprintf("failed to extract lyrics from %s", rawURL), err)
		return nil, fmt.Errorf("failed to extract lyrics from %s: %w", rawURL, err)
	}

	logger.Debug(fmt.Sprintf("extracted %d chars of lyrics from %s", len(text), source))

	return &LyricsResult{
		URL:       rawURL,
		Text:      text,
		Source:    source,
		FetchedAt: s.now(),
	}, nil
}

func (s *Service) parserFor(host string) (string, func(string) (string, error)) {
	if host == SourceAmdm || strings.HasSuffix(host, "."+SourceAmdm) {
		return SourceAmdm, s.amdmParser.Extract
	}
	return SourceGenius, genius.Extract
}

// Format renders a result the way it is printed to the terminal
func Format(result *LyricsResult) string {
	return fmt.Sprintf("Lyrics retrieved from %s\n\n%s", result.URL, result.Text)
}
