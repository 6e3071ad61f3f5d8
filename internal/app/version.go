package app

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/ratcalc/internal/wide"
)

// Version is the release version, overridden at build time with
// -ldflags "-X github.com/agbru/ratcalc/internal/app.Version=...".
var Version = "dev"

// HasVersionFlag reports whether args request the version banner.
func HasVersionFlag(args []string) bool {
	for _, arg := range args {
		switch arg {
		case "--version", "-version", "-V":
			return true
		}
	}
	return false
}

// PrintVersion writes the version banner to out.
func PrintVersion(out io.Writer) {
	fmt.Fprintf(out, "ratcalc %s\n", Version)
	fmt.Fprintf(out, "%s %s/%s, %d-bit exact arithmetic\n", runtime.Version(), runtime.GOOS, runtime.GOARCH, wide.Bits)
}
