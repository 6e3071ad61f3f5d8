// Package ui provides theme and color support for the ratcalc command line.
// It defines ANSI color schemes, the matching lipgloss palettes used for
// tables, and accessor functions so that presentation code never hardcodes
// escape sequences.
package ui
