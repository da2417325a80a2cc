package formatter

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-runewidth"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
)

// TagWidth is the number of columns reserved for the right-aligned tag.
const TagWidth = 11

// ConsoleFormatter renders entries for a terminal: the message is word
// wrapped to the terminal width and the first line carries a
// right-aligned, optionally coloured "[level]" tag.
//
// Whether an entry is shown at all depends on its level and the current
// settings (see Render), so Format may return nil.
type ConsoleFormatter struct {
	source env.Source
}

// NewConsoleFormatter creates a console formatter that reads settings
// from src on every call. A nil src uses env.Static defaults.
func NewConsoleFormatter(src env.Source) *ConsoleFormatter {
	if src == nil {
		src = env.Static{}
	}
	return &ConsoleFormatter{source: src}
}

// Format formats an entry, or returns nil when it is hidden.
func (f *ConsoleFormatter) Format(entry *core.Entry) ([]byte, error) {
	return formatWith(entry, f.FormatEntry), nil
}

// FormatEntry writes the rendered entry into buf and reports whether the
// entry is visible (implements BufferFormatter).
func (f *ConsoleFormatter) FormatEntry(entry *core.Entry, buf *bytes.Buffer) bool {
	out, ok := Render(entry, f.source.Settings())
	if ok {
		buf.WriteString(out)
	}
	return ok
}

// Render formats entry under s. It returns false when the entry is not
// shown on the console:
//
//   - warning and cancel are always shown with a yellow tag;
//   - error is always shown with a red tag;
//   - ok and success are shown with a green tag unless Quiet is set;
//   - notice and info are shown only when Verbose is set;
//   - every other level, including debug and custom levels, is shown
//     only when Debug is set;
//   - nothing is shown in Backend mode.
//
// The returned text ends with a newline.
func Render(entry *core.Entry, s env.Settings) (string, bool) {
	level := core.ParseLevel(string(entry.Level))
	c, visible := visibility(level, s)
	if !visible {
		return "", false
	}

	// In backend mode messages travel through the backend transport.
	if s.Backend {
		return "", false
	}

	message := entry.Message
	if s.Debug {
		message += " " + timer(entry, s)
	}

	width := s.Width() - TagWidth
	if width < 1 {
		width = 1
	}

	// Place the status tag right aligned with the top line of the message.
	lines := Wrap(message, width)
	tag := plainTag(level)
	lines[0] = padRight(lines[0], width) +
		strings.Repeat(" ", max(TagWidth-runewidth.StringWidth(tag), 0)) +
		renderTag(level, c, s.NoColor)

	return strings.Join(lines, "\n") + "\n", true
}

// timer formats the debug suffix: seconds since process start and the
// memory captured with the entry.
func timer(entry *core.Entry, s env.Settings) string {
	var elapsed float64
	if !s.Start.IsZero() {
		elapsed = entry.Time.Sub(s.Start).Seconds()
	}
	return fmt.Sprintf("[%.2f sec, %s]", elapsed, humanize.IBytes(entry.Memory))
}
