package narrative

import (
	"fmt"
	"strings"
)

// ParseText converts pasted plain text into a narrative.
//
// Blocks separated by blank lines become sections. Within a block the
// first line is the section title (a leading markdown heading marker is
// stripped), lines starting with "-" or "*" become bullet items, and the
// remaining lines join into the body. The first heading line of the
// input, if it stands alone, becomes the narrative title.
func ParseText(text string) *Narrative {
	n := &Narrative{Title: "Untitled"}

	blocks := splitBlocks(text)
	for _, block := range blocks {
		// A lone heading before any sections titles the whole narrative.
		if len(block) == 1 && isHeading(block[0]) && len(n.Sections) == 0 && n.Title == "Untitled" {
			n.Title = stripHeading(block[0])
			continue
		}
		n.Sections = append(n.Sections, parseBlock(block, len(n.Sections)+1))
	}

	return n
}

func splitBlocks(text string) [][]string {
	var blocks [][]string
	var current []string

	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimRight(line, " \t\r")
		if strings.TrimSpace(line) == "" {
			if len(current) > 0 {
				blocks = append(blocks, current)
				current = nil
			}
			continue
		}
		current = append(current, line)
	}
	if len(current) > 0 {
		blocks = append(blocks, current)
	}
	return blocks
}

func parseBlock(lines []string, ordinal int) Section {
	s := Section{
		ID:    sectionID(ordinal),
		Title: stripHeading(lines[0]),
	}

	var body []string
	for _, line := range lines[1:] {
		trimmed := strings.TrimSpace(line)
		if item, ok := strings.CutPrefix(trimmed, "- "); ok {
			s.Items = append(s.Items, strings.TrimSpace(item))
			continue
		}
		if item, ok := strings.CutPrefix(trimmed, "* "); ok {
			s.Items = append(s.Items, strings.TrimSpace(item))
			continue
		}
		body = append(body, trimmed)
	}
	s.Body = strings.Join(body, " ")
	return s
}

func sectionID(ordinal int) string {
	return fmt.Sprintf("s%d", ordinal)
}

func isHeading(line string) bool {
	return strings.HasPrefix(strings.TrimSpace(line), "#")
}

func stripHeading(line string) string {
	return strings.TrimSpace(strings.TrimLeft(strings.TrimSpace(line), "#"))
}
