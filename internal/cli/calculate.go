package cli

import (
	"fmt"
	"io"
	"runtime"

	"github.com/agbru/ratcalc/internal/config"
	"github.com/agbru/ratcalc/internal/ui"
	"github.com/agbru/ratcalc/internal/wide"
)

// PrintExecutionConfig displays the run parameters and the environment.
func PrintExecutionConfig(cfg config.AppConfig, out io.Writer) {
	fmt.Fprintf(out, "--- Execution Configuration ---\n")
	fmt.Fprintf(out, "Computing %sB(%d, %d/%d)%s with a timeout of %s%s%s.\n",
		ui.ColorMagenta(), cfg.Trials, cfg.PNum, cfg.PDen, ui.ColorReset(),
		ui.ColorYellow(), cfg.Timeout, ui.ColorReset())
	fmt.Fprintf(out, "Environment: %s%d%s logical processors, Go %s%s%s, %s%d-bit%s exact arithmetic.\n",
		ui.ColorCyan(), runtime.NumCPU(), ui.ColorReset(),
		ui.ColorCyan(), runtime.Version(), ui.ColorReset(),
		ui.ColorCyan(), wide.Bits, ui.ColorReset())
	if cfg.Simulate > 0 {
		fmt.Fprintf(out, "Cross-check: %s%d%s Monte-Carlo rounds.\n", ui.ColorCyan(), cfg.Simulate, ui.ColorReset())
	}
	fmt.Fprintf(out, "\n--- Starting Execution ---\n")
}
