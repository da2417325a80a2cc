// Package formatter turns log entries into bytes.
//
// ConsoleFormatter is the terminal renderer used by the console logger.
// It is driven by an env.Source so it can be used as a plain Formatter,
// while Render exposes the same logic as a pure function of an entry and
// a settings snapshot. Visibility is decided per level (see Render); a
// hidden entry formats to nil. Messages are word wrapped to the terminal
// width minus an 11-column tag field, and the first line ends with the
// right-aligned "[level]" tag, coloured with fatih/color unless colour
// is disabled. Widths are measured in display cells with go-runewidth.
//
// JSONFormatter writes an entry's packet as one JSON object per line,
// the format used when dumping the history buffer.
//
// Both formatters implement BufferFormatter and use a pooled
// bytes.Buffer for Format. Buffers larger than 64 KiB are not returned
// to the pool.
package formatter
