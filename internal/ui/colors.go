package ui

// Color accessors return the escape sequence of the active theme, or an
// empty string when colors are disabled.

// ColorReset clears all formatting.
func ColorReset() string { return GetCurrentTheme().Reset }

// ColorRed marks errors.
func ColorRed() string { return GetCurrentTheme().Error }

// ColorGreen marks successful outcomes.
func ColorGreen() string { return GetCurrentTheme().Success }

// ColorYellow marks warnings and limits.
func ColorYellow() string { return GetCurrentTheme().Warning }

// ColorBlue marks primary values.
func ColorBlue() string { return GetCurrentTheme().Primary }

// ColorMagenta marks informational values.
func ColorMagenta() string { return GetCurrentTheme().Info }

// ColorCyan marks secondary values such as paths.
func ColorCyan() string { return GetCurrentTheme().Primary }

// ColorDim marks de-emphasized text.
func ColorDim() string { return GetCurrentTheme().Secondary }

// ColorBold makes text bold.
func ColorBold() string { return GetCurrentTheme().Bold }
