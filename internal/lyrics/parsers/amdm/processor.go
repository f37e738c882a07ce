package amdm

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

var (
	chordRegex           = regexp.MustCompile(`<div[^>]*class="podbor__chord"[^>]*>.*?</div>`)
	authorCommentRegex   = regexp.MustCompile(`<span[^>]*class="podbor__author-comment"[^>]*>.*?</span>`)
	closedCommentRegex   = regexp.MustCompile(`/\*[^*]*\*/`)
	trailingCommentRegex = regexp.MustCompile(`/\*.*$`)
	commentArtifact      = regexp.MustCompile(`/\*[^*]*\*?`)
	separatorLine        = regexp.MustCompile(`^[\s|]*$`)
)

// processHTML strips chords, comments and instrumental sections from the
// chords block and returns the remaining text
func (p *Parser) processHTML(blockHTML string) (string, error) {
	processed := chordRegex.ReplaceAllString(blockHTML, "\n\n")
	processed = authorCommentRegex.ReplaceAllString(processed, "")
	processed = closedCommentRegex.ReplaceAllString(processed, "")
	processed = trailingCommentRegex.ReplaceAllString(processed, "")
	processed = p.unwantedKeyword.ReplaceAllString(processed, "\n\n")
	processed = p.unwantedText.ReplaceAllString(processed, "\n\n")

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(processed))
	if err != nil {
		return "", fmt.Errorf("failed to parse processed HTML: %w", err)
	}

	return p.processTextLines(doc.Text()), nil
}

func (p *Parser) processTextLines(text string) string {
	var lines []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		if strings.HasPrefix(line, "[") {
			lines = append(lines, p.sectionLines(line)...)
			continue
		}

		if separatorLine.MatchString(line) {
			continue
		}

		line = commentArtifact.ReplaceAllString(line, "")
		line = strings.NewReplacer("*", "", "/", "").Replace(line)
		line = strings.TrimSpace(line)

		if line != "" {
			lines = append(lines, line)
		}
	}

	return p.finalCleanup(strings.Join(lines, "\n"))
}
