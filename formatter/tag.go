package formatter

import (
	"github.com/fatih/color"

	"github.com/philipp01105/drushlog/core"
	"github.com/philipp01105/drushlog/env"
)

// tagColor selects the colour of a level tag.
type tagColor int

const (
	tagPlain tagColor = iota
	tagYellow
	tagRed
	tagGreen
)

// Colours are forced on; whether to use them is decided per call from
// the settings, not from fatih/color's own terminal detection.
var (
	yellowTag = forcedColor(color.Bold, color.FgYellow, color.BgBlack)
	redTag    = forcedColor(color.FgRed, color.BgBlack, color.Bold)
	greenTag  = forcedColor(color.Bold, color.FgGreen, color.BgBlack)
)

func forcedColor(attrs ...color.Attribute) *color.Color {
	c := color.New(attrs...)
	c.EnableColor()
	return c
}

// visibility returns the tag colour for level and whether the level is
// shown on the console under s.
func visibility(level core.Level, s env.Settings) (tagColor, bool) {
	switch level {
	case core.LevelWarning, core.LevelCancel:
		return tagYellow, true
	case core.LevelError:
		return tagRed, true
	case core.LevelOK, core.LevelSuccess:
		// In quiet mode, suppress progress messages
		return tagGreen, !s.Quiet
	case core.LevelNotice, core.LevelInfo:
		return tagPlain, s.Verbose
	default:
		return tagPlain, s.Debug
	}
}

// plainTag is the uncoloured tag text, also used for width calculations.
func plainTag(level core.Level) string {
	return "[" + string(level) + "]"
}

// renderTag returns the tag as printed, with ANSI colour unless noColor.
func renderTag(level core.Level, c tagColor, noColor bool) string {
	tag := plainTag(level)
	if noColor {
		return tag
	}
	switch c {
	case tagYellow:
		return yellowTag.Sprint(tag)
	case tagRed:
		return redTag.Sprint(tag)
	case tagGreen:
		return greenTag.Sprint(tag)
	default:
		return tag
	}
}
