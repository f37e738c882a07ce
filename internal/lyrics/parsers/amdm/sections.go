package amdm

import "strings"

// sectionLines maps a "[Name]:" marker line to the lines that replace it.
// Sung sections keep their marker after a blank line, instrumental ones
// collapse to a break, anything else is dropped.
func (p *Parser) sectionLines(line string) []string {
	for _, section := range p.config.AllowedSections {
		if strings.Contains(line, section.marker()) {
			return []string{"", section.marker()}
		}
	}

	for _, section := range p.config.UnwantedSections {
		if strings.Contains(line, section.marker()) {
			return []string{"", ""}
		}
	}

	return nil
}
