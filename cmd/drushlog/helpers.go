package main

import (
	"fmt"
	"strconv"
	"strings"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/watchdog"
)

var titleCaser = cases.Title(language.English)

// levelTitle returns the display name of a level.
func levelTitle(level core.Level) string {
	return titleCaser.String(level.String())
}

// severityLevel returns the standard level with the given severity.
func severityLevel(severity int) core.Level {
	for _, l := range core.Levels() {
		if s, ok := watchdog.DefaultSeverities.Lookup(l); ok && s == severity {
			return l
		}
	}
	return core.Level(strconv.Itoa(severity))
}

// parseContext turns key=value arguments into a context. Integer and
// boolean values keep their type.
func parseContext(args []string) (core.Context, error) {
	ctx := make(core.Context, len(args))
	for _, arg := range args {
		key, value, ok := strings.Cut(arg, "=")
		if !ok || key == "" {
			return nil, fmt.Errorf("invalid context %q: expected key=value", arg)
		}
		ctx[key] = parseValue(value)
	}
	return ctx, nil
}

func parseValue(s string) any {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return i
	}
	if b, err := strconv.ParseBool(s); err == nil && s != "0" && s != "1" {
		return b
	}
	return s
}

// parseLine splits "level: message" input lines. Lines without a known
// level prefix are notices.
func parseLine(line string) (core.Level, string) {
	if prefix, rest, ok := strings.Cut(line, ":"); ok {
		level := core.ParseLevel(prefix)
		if level.Known() {
			return level, strings.TrimSpace(rest)
		}
	}
	return core.LevelNotice, line
}
