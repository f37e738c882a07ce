package lyrics

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/sukalov/lyrical/internal/lyrics/parsers/genius"
)

type fakeFetcher struct {
	pages map[string]string
	err   error
	urls  []string
}

func (f *fakeFetcher) GetPage(_ context.Context, url string) (string, error) {
	f.urls = append(f.urls, url)
	if f.err != nil {
		return "", f.err
	}
	return f.pages[url], nil
}

func newTestService(fetcher PageFetcher) *Service {
	s := NewService(fetcher)
	s.now = func() time.Time { return time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC) }
	return s
}

func TestExtractLyrics_Genius(t *testing.T) {
	const pageURL = "https://genius.com/Johnny-cash-hurt-lyrics"
	fetcher := &fakeFetcher{pages: map[string]string{
		pageURL: `<div data-lyrics-container="true">I hurt myself today<br/>To see if I still feel</div>`,
	}}

	got, err := newTestService(fetcher).ExtractLyrics(context.Background(), pageURL)

	require.NoError(t, err)
	require.Equal(t, &LyricsResult{
		URL:       pageURL,
		Text:      "I hurt myself today\nTo see if I still feel\n",
		Source:    SourceGenius,
		FetchedAt: time.Date(2024, 1, 2, 3, 4, 5, 0, time.UTC),
	}, got)
	require.Equal(t, "Lyrics retrieved from "+pageURL+"\n\nI hurt myself today\nTo see if I still feel\n", Format(got))
}

func TestExtractLyrics_Amdm(t *testing.T) {
	const pageURL = "https://123.amdm.ru/akkordi/artist/1/song/"
	fetcher := &fakeFetcher{pages: map[string]string{
		pageURL: `<pre itemprop="chordsBlock" class="field__podbor_new podbor__text">line one
line two</pre>`,
	}}

	got, err := newTestService(fetcher).ExtractLyrics(context.Background(), pageURL)

	require.NoError(t, err)
	require.Equal(t, SourceAmdm, got.Source)
	require.Equal(t, "line one\nline two", got.Text)
}

func TestExtractLyrics_InvalidURL(t *testing.T) {
	fetcher := &fakeFetcher{}

	_, err := newTestService(fetcher).ExtractLyrics(context.Background(), "not a url")

	require.ErrorContains(t, err, "URL is invalid")
	require.Empty(t, fetcher.urls)
}

func TestExtractLyrics_FetchError(t *testing.T) {
	boom := errors.New("too many redirects")

	_, err := newTestService(&fakeFetcher{err: boom}).ExtractLyrics(context.Background(), "https://genius.com/x")

	require.ErrorIs(t, err, boom)
}

func TestExtractLyrics_NoLyrics(t *testing.T) {
	fetcher := &fakeFetcher{pages: map[string]string{"https://genius.com/x": "<p>Instrumental</p>"}}

	_, err := newTestService(fetcher).ExtractLyrics(context.Background(), "https://genius.com/x")

	require.ErrorIs(t, err, genius.ErrNoLyrics)
}
