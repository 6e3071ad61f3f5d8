// # Naming Conventions
//
// Functions in this package follow consistent naming patterns based on their behavior:
//
//   - Display* functions write formatted output to an [io.Writer].
//     They handle presentation logic and colorization.
//     Examples: [DisplayReport], [DisplayQuietResult].
//
//   - Format* functions return a formatted string without performing I/O.
//     Examples: [FormatQuietResult], [FormatDecimal].
//
//   - Write* functions write data to files on the filesystem.
//     Examples: [WriteResultToFile].

package cli

import (
	"fmt"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/lipgloss/table"

	"github.com/agbru/ratcalc/internal/rational"
	"github.com/agbru/ratcalc/internal/sysmon"
	"github.com/agbru/ratcalc/internal/ui"
	"github.com/agbru/ratcalc/internal/wide"
)

// Report is everything computed for one binomial distribution.
type Report struct {
	Trials int
	P      rational.Rat
	// Distribution holds P(X = k) at index k.
	Distribution []rational.Rat
	AtLeastK     int
	AtLeast      rational.Rat
	Mean         rational.Rat
	Variance     rational.Rat
	Mode         int
	// CommonDenominator is the LCM of the term divisors.
	CommonDenominator wide.Int
	Duration          time.Duration
	// Simulated holds Monte-Carlo frequencies per k; nil when no
	// simulation ran.
	Simulated        []float64
	SimulationRounds int
}

// MaxSimulationError returns the largest gap between a simulated frequency
// and the exact probability, or 0 without simulation.
func (r Report) MaxSimulationError() float64 {
	var worst float64
	for k, f := range r.Simulated {
		if k >= len(r.Distribution) {
			break
		}
		worst = math.Max(worst, math.Abs(f-r.Distribution[k].Float64()))
	}
	return worst
}

// OutputConfig holds configuration for result output.
type OutputConfig struct {
	// OutputFile is the path to save the result (empty for no file output).
	OutputFile string
	// Quiet prints only the at-least-k probability.
	Quiet bool
	// Verbose adds the common denominator and timing details.
	Verbose bool
	// Precision is the number of decimal places next to fractions.
	Precision int
}

// DisplayReport renders the distribution table and the summary lines.
func DisplayReport(out io.Writer, r Report, config OutputConfig) {
	fmt.Fprintf(out, "\n--- Exact distribution: %sn = %d%s, %sp = %s%s (%s) ---\n",
		ui.ColorMagenta(), r.Trials, ui.ColorReset(),
		ui.ColorMagenta(), r.P, ui.ColorReset(), FormatDecimal(r.P, config.Precision))

	fmt.Fprintln(out, renderDistributionTable(r, config.Precision))

	fmt.Fprintf(out, "P(X >= %d) = %s%s%s ≈ %s\n",
		r.AtLeastK, ui.ColorGreen(), FormatFraction(r.AtLeast), ui.ColorReset(),
		FormatDecimal(r.AtLeast, config.Precision))
	fmt.Fprintf(out, "Mean = %s (%s), variance = %s (%s), mode = %d\n",
		r.Mean, FormatDecimal(r.Mean, config.Precision),
		r.Variance, FormatDecimal(r.Variance, config.Precision), r.Mode)

	if r.Simulated != nil {
		fmt.Fprintf(out, "Monte-Carlo cross-check: %s rounds, max |error| = %s%.6f%s\n",
			FormatNumber(wide.FromInt64(int64(r.SimulationRounds))),
			ui.ColorYellow(), r.MaxSimulationError(), ui.ColorReset())
	}

	if config.Verbose {
		fmt.Fprintf(out, "Common denominator: %s%s%s (%d-bit engine)\n",
			ui.ColorCyan(), FormatNumber(r.CommonDenominator), ui.ColorReset(), wide.Bits)
		fmt.Fprintf(out, "Computed in %s%s%s\n", ui.ColorYellow(), FormatExecutionDuration(r.Duration), ui.ColorReset())
	}
}

func renderDistributionTable(r Report, precision int) string {
	styles := ui.CurrentTableStyles()
	headers := []string{"k", "P(X = k)", "decimal"}
	if r.Simulated != nil {
		headers = append(headers, "simulated")
	}

	rows := make([][]string, len(r.Distribution))
	for k, p := range r.Distribution {
		row := []string{strconv.Itoa(k), FormatFraction(p), FormatDecimal(p, precision)}
		if r.Simulated != nil {
			row = append(row, strconv.FormatFloat(r.Simulated[k], 'f', precision, 64))
		}
		rows[k] = row
	}

	t := table.New().
		Border(lipgloss.RoundedBorder()).
		BorderStyle(styles.Border).
		Headers(headers...).
		Rows(rows...).
		StyleFunc(func(row, col int) lipgloss.Style {
			var s lipgloss.Style
			switch {
			case row == table.HeaderRow:
				return styles.Header
			case row == r.Mode:
				s = styles.Mode
			case row%2 == 1:
				s = styles.CellAlt
			default:
				s = styles.Cell
			}
			if col > 0 {
				s = s.Align(lipgloss.Right)
			}
			return s
		})
	return t.Render()
}

// FormatQuietResult formats the at-least-k probability as a bare fraction,
// suitable for scripting.
func FormatQuietResult(r Report) string {
	return r.AtLeast.String()
}

// DisplayQuietResult outputs a result in quiet mode (minimal output).
func DisplayQuietResult(out io.Writer, r Report) {
	fmt.Fprintln(out, FormatQuietResult(r))
}

// WriteResultToFile writes the distribution as tab-separated text with a
// commented header. Nothing is written when config.OutputFile is empty.
func WriteResultToFile(r Report, config OutputConfig) error {
	if config.OutputFile == "" {
		return nil
	}

	dir := filepath.Dir(config.OutputFile)
	if dir != "" && dir != "." {
		if err := os.MkdirAll(dir, 0755); err != nil {
			return fmt.Errorf("failed to create directory: %w", err)
		}
	}

	file, err := os.Create(config.OutputFile)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	fmt.Fprintf(file, "# ratcalc exact binomial distribution\n")
	fmt.Fprintf(file, "# Generated: %s\n", time.Now().Format(time.RFC3339))
	fmt.Fprintf(file, "# Trials: %d\n", r.Trials)
	fmt.Fprintf(file, "# P: %s\n", r.P)
	fmt.Fprintf(file, "# Duration: %s\n", r.Duration)
	fmt.Fprintf(file, "# Common denominator: %s\n", r.CommonDenominator)
	fmt.Fprintf(file, "\n")
	fmt.Fprintf(file, "k\tP(X = k)\n")
	for k, p := range r.Distribution {
		fmt.Fprintf(file, "%d\t%s\n", k, p)
	}
	fmt.Fprintf(file, "\nP(X >= %d) = %s\n", r.AtLeastK, r.AtLeast)
	fmt.Fprintf(file, "Mean = %s\nVariance = %s\n", r.Mean, r.Variance)

	if err := file.Close(); err != nil {
		return fmt.Errorf("failed to write output file: %w", err)
	}
	return nil
}

// DisplayResultWithConfig displays a report according to config and saves
// it to a file when requested.
func DisplayResultWithConfig(out io.Writer, r Report, config OutputConfig) error {
	if config.Quiet {
		DisplayQuietResult(out, r)
	} else {
		DisplayReport(out, r, config)
	}

	if config.OutputFile != "" {
		if err := WriteResultToFile(r, config); err != nil {
			return err
		}
		if !config.Quiet {
			fmt.Fprintf(out, "\n%s✓ Result saved to: %s%s%s\n",
				ui.ColorGreen(), ui.ColorCyan(), config.OutputFile, ui.ColorReset())
		}
	}
	return nil
}

// DisplayHostStats prints a host load sample.
func DisplayHostStats(s sysmon.Stats, out io.Writer) {
	fmt.Fprintf(out, "Host: %d logical CPUs at %s%.1f%%%s, memory %.1f%% of %s\n",
		s.LogicalCPUs, ui.ColorCyan(), s.CPUPercent, ui.ColorReset(), s.MemPercent, FormatBytes(s.MemTotal))
}

// DisplayMemoryStats prints the allocation cost of a run.
func DisplayMemoryStats(allocated uint64, gcCycles uint32, out io.Writer) {
	fmt.Fprintf(out, "Memory: %s%s%s allocated, %d GC cycles\n",
		ui.ColorCyan(), FormatBytes(allocated), ui.ColorReset(), gcCycles)
}
