package genius

import (
	"errors"
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

const lyricsContainerSelector = `div[data-lyrics-container="true"]`

// ErrNoLyrics is returned for pages without any lyrics container, such as
// instrumentals
var ErrNoLyrics = errors.New("no lyrics container on page")

var lineBreaks = strings.NewReplacer("<br/>", "\n", "<br>", "\n", "<br />", "\n")

// Extract returns the text of every lyrics container on a genius.com song
// page, each followed by a newline
func Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(lineBreaks.Replace(html)))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	containers := doc.Find(lyricsContainerSelector)
	if containers.Length() == 0 {
		return "", ErrNoLyrics
	}

	var lyrics strings.Builder
	containers.Each(func(_ int, s *goquery.Selection) {
		lyrics.WriteString(s.Text())
		lyrics.WriteString("\n")
	})

	return lyrics.String(), nil
}
