package amdm

import "strings"

func (p *Parser) finalCleanup(lyrics string) string {
	for _, section := range p.config.UnwantedSections {
		lyrics = strings.ReplaceAll(lyrics, section.marker(), "\n\n")
	}

	lyrics = p.excessBreaks.ReplaceAllString(lyrics, strings.Repeat("\n", max(p.config.MaxLineBreaks, 1)))

	return strings.TrimSpace(lyrics)
}
