// Package output handles terminal-facing rendering for the xpres CLI.
package output

import (
	"fmt"
	"strings"
)

// Format selects how structured output (token dumps) is rendered.
type Format string

// Output formats.
const (
	FormatAuto  Format = "auto" // TTY=table, non-TTY=plain
	FormatTable Format = "table"
	FormatPlain Format = "plain"
	FormatJSON  Format = "json"
	FormatYAML  Format = "yaml"
)

// Formats lists the accepted values, in help order.
var Formats = []Format{FormatAuto, FormatTable, FormatPlain, FormatJSON, FormatYAML}

// UnmarshalText implements encoding.TextUnmarshaler so koanf can decode it.
func (f *Format) UnmarshalText(text []byte) error {
	s := Format(strings.ToLower(strings.TrimSpace(string(text))))
	if s == "" {
		*f = FormatAuto
		return nil
	}
	for _, v := range Formats {
		if s == v {
			*f = s
			return nil
		}
	}
	return fmt.Errorf("unknown output format %q (want one of %s)", string(text), joinFormats())
}

func (f Format) String() string {
	return string(f)
}

// Resolve replaces FormatAuto with a concrete format.
func (f Format) Resolve(isTTY bool) Format {
	if f != FormatAuto && f != "" {
		return f
	}
	if isTTY {
		return FormatTable
	}
	return FormatPlain
}

func joinFormats() string {
	names := make([]string, len(Formats))
	for i, f := range Formats {
		names[i] = string(f)
	}
	return strings.Join(names, "|")
}

// ColorMode controls styling of diagnostics.
type ColorMode string

// Color modes.
const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

// UnmarshalText implements encoding.TextUnmarshaler.
func (c *ColorMode) UnmarshalText(text []byte) error {
	switch m := ColorMode(strings.ToLower(strings.TrimSpace(string(text)))); m {
	case "":
		*c = ColorAuto
	case ColorAuto, ColorAlways, ColorNever:
		*c = m
	default:
		return fmt.Errorf("unknown color mode %q (want auto|always|never)", string(text))
	}
	return nil
}

func (c ColorMode) String() string {
	return string(c)
}
