package env

import (
	"os"
	"strconv"
	"strings"
	"time"

	"github.com/mattn/go-isatty"
	"golang.org/x/term"
)

// Detect builds settings for f (normally os.Stderr) from the terminal
// and the environment. Colour is disabled when f is not a terminal or
// NO_COLOR is set. Columns come from the terminal size, then COLUMNS,
// then DefaultColumns.
func Detect(f *os.File) Settings {
	s := Settings{
		Columns: DefaultColumns,
		Start:   time.Now(),
	}
	if f == nil {
		s.NoColor = true
		return s
	}

	fd := f.Fd()
	tty := isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
	if !tty || os.Getenv("NO_COLOR") != "" {
		s.NoColor = true
	}

	if tty {
		if w, _, err := term.GetSize(int(fd)); err == nil && w > 0 {
			s.Columns = w
			return s
		}
	}
	if v := strings.TrimSpace(os.Getenv("COLUMNS")); v != "" {
		if w, err := strconv.Atoi(v); err == nil && w > 0 {
			s.Columns = w
		}
	}
	return s
}
