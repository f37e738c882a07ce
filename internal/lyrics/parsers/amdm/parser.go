package amdm

import (
	"errors"
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/sukalov/lyrical/internal/logger"
)

// chordsBlockSelector matches <pre itemprop="chordsBlock" class="field__podbor_new podbor__text">
const chordsBlockSelector = `pre[itemprop="chordsBlock"].field__podbor_new.podbor__text`

// ErrNoChordsBlock is returned when the page has no chords block
var ErrNoChordsBlock = errors.New("could not find target element with chords and lyrics")

// Parser turns AmDm.ru chord pages into plain lyrics
type Parser struct {
	config *ProcessingConfig

	unwantedKeyword *regexp.Regexp
	unwantedText    *regexp.Regexp
	excessBreaks    *regexp.Regexp
}

func NewParser(config *ProcessingConfig) *Parser {
	if config == nil {
		config = DefaultConfig()
	}

	names := make([]string, 0, len(config.UnwantedSections))
	for _, section := range config.UnwantedSections {
		names = append(names, regexp.QuoteMeta(string(section)))
	}
	unwanted := strings.Join(names, "|")

	maxBreaks := max(config.MaxLineBreaks, 1)

	return &Parser{
		config:          config,
		unwantedKeyword: regexp.MustCompile(`<div[^>]*class="podbor__keyword"[^>]*>\s*\[(` + unwanted + `)\][^<]*</div>`),
		unwantedText:    regexp.MustCompile(`\s*\[(` + unwanted + `)\][^<]*`),
		excessBreaks:    regexp.MustCompile(fmt.Sprintf(`\n{%d,}`, maxBreaks+1)),
	}
}

// Extract returns the lyrics found in an AmDm.ru page
func (p *Parser) Extract(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse HTML: %w", err)
	}

	selection := doc.Find(chordsBlockSelector)
	if selection.Length() == 0 {
		logger.Debug(fmt.Sprintf("amdm: no element matches %s", chordsBlockSelector))
		return "", ErrNoChordsBlock
	}

	blockHTML, err := selection.First().Html()
	if err != nil {
		return "", fmt.Errorf("failed to render chords block: %w", err)
	}

	text, err := p.processHTML(blockHTML)
	if err != nil {
		return "", err
	}

	logger.Debug(fmt.Sprintf("amdm: extracted %d chars of lyrics", len(text)))
	return text, nil
}
