package config

import (
	"flag"
	"os"
	"time"

	"github.com/pelletier/go-toml"

	apperrors "github.com/agbru/ratcalc/internal/errors"
)

// FileValues is the layout of a ratcalc TOML configuration file:
//
//	[distribution]
//	trials = 12
//	p-num = 1
//	p-den = 6
//	at-least = 2
//
//	[run]
//	timeout = "30s"
//	simulate = 100000
//	seed = 42
//
//	[output]
//	precision = 8
//	file = "dist.txt"
//	metrics-file = "ratcalc.prom"
//	no-color = true
//	theme = "light"
type FileValues struct {
	Distribution struct {
		Trials  int   `toml:"trials"`
		PNum    int64 `toml:"p-num"`
		PDen    int64 `toml:"p-den"`
		AtLeast int   `toml:"at-least"`
	} `toml:"distribution"`
	Run struct {
		Timeout  string `toml:"timeout"`
		Simulate int    `toml:"simulate"`
		Seed     uint64 `toml:"seed"`
	} `toml:"run"`
	Output struct {
		Precision   int    `toml:"precision"`
		File        string `toml:"file"`
		MetricsFile string `toml:"metrics-file"`
		NoColor     bool   `toml:"no-color"`
		Theme       string `toml:"theme"`
	} `toml:"output"`
}

// File is a decoded configuration file together with the set of keys it
// actually defines.
type File struct {
	Values FileValues

	timeout time.Duration
	tree    *toml.Tree
}

// LoadFile reads and decodes a TOML configuration file.
func LoadFile(path string) (*File, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, apperrors.NewConfigError("reading config file: %v", err)
	}
	tree, err := toml.LoadBytes(data)
	if err != nil {
		return nil, apperrors.NewConfigError("parsing config file %s: %v", path, err)
	}
	f := &File{tree: tree}
	if err := tree.Unmarshal(&f.Values); err != nil {
		return nil, apperrors.NewConfigError("decoding config file %s: %v", path, err)
	}
	if raw := f.Values.Run.Timeout; raw != "" {
		d, err := time.ParseDuration(raw)
		if err != nil {
			return nil, apperrors.NewConfigError("config file %s: invalid run.timeout %q", path, raw)
		}
		f.timeout = d
	}
	return f, nil
}

// apply copies the keys present in the file onto c, skipping values whose
// flag was given explicitly.
func (f *File) apply(c *AppConfig, fs *flag.FlagSet) {
	set := func(key string, flags ...string) bool {
		return f.tree.Has(key) && !isFlagSetAny(fs, flags...)
	}
	v := f.Values
	if set("distribution.trials", "trials", "n") {
		c.Trials = v.Distribution.Trials
	}
	if set("distribution.p-num", "p-num") {
		c.PNum = v.Distribution.PNum
	}
	if set("distribution.p-den", "p-den") {
		c.PDen = v.Distribution.PDen
	}
	if set("distribution.at-least", "at-least", "k") {
		c.AtLeast = v.Distribution.AtLeast
	}
	if set("run.timeout", "timeout") {
		c.Timeout = f.timeout
	}
	if set("run.simulate", "simulate") {
		c.Simulate = v.Run.Simulate
	}
	if set("run.seed", "seed") {
		c.Seed = v.Run.Seed
	}
	if set("output.precision", "precision") {
		c.Precision = v.Output.Precision
	}
	if set("output.file", "output", "o") {
		c.OutputFile = v.Output.File
	}
	if set("output.metrics-file", "metrics-file") {
		c.MetricsFile = v.Output.MetricsFile
	}
	if set("output.no-color", "no-color") {
		c.NoColor = v.Output.NoColor
	}
	if set("output.theme", "theme") {
		c.Theme = v.Output.Theme
	}
}
