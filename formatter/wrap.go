package formatter

import (
	"strings"

	"github.com/mattn/go-runewidth"
)

// Wrap breaks text into lines no wider than width display cells. Lines
// break at spaces only; a word wider than width is kept whole on its own
// line. Existing newlines are preserved.
func Wrap(text string, width int) []string {
	if width < 1 {
		width = 1
	}

	var lines []string
	for _, para := range strings.Split(text, "\n") {
		lines = append(lines, wrapParagraph(para, width)...)
	}
	return lines
}

func wrapParagraph(para string, width int) []string {
	if runewidth.StringWidth(para) <= width {
		return []string{para}
	}

	var (
		lines   []string
		current strings.Builder
		used    int
		started bool
	)
	for _, word := range strings.Split(para, " ") {
		w := runewidth.StringWidth(word)
		if !started {
			current.WriteString(word)
			used = w
			started = true
			continue
		}
		if used+1+w <= width {
			current.WriteByte(' ')
			current.WriteString(word)
			used += 1 + w
			continue
		}
		lines = append(lines, current.String())
		current.Reset()
		current.WriteString(word)
		used = w
	}
	return append(lines, current.String())
}

// padRight pads s with spaces to width display cells.
func padRight(s string, width int) string {
	if pad := width - runewidth.StringWidth(s); pad > 0 {
		return s + strings.Repeat(" ", pad)
	}
	return s
}
