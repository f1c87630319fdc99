package main

import (
	"fmt"
	"log/slog"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/gauge"
)

// settings are the CLI options after flags, environment and defaults have
// been merged.
type settings struct {
	Output        string `mapstructure:"output"`
	Lang          string `mapstructure:"lang"`
	Size          int    `mapstructure:"size"`
	Slices        int    `mapstructure:"slices"`
	Jobs          int    `mapstructure:"jobs"`
	CacheSize     int    `mapstructure:"cache-size"`
	Interpolation string `mapstructure:"interpolation"`
	AdaptiveColor string `mapstructure:"adaptive-color"`
	LogLevel      string `mapstructure:"log-level"`
}

func setDefaults(v *viper.Viper) {
	v.SetDefault("output", ".")
	v.SetDefault("lang", "")
	v.SetDefault("size", 0)
	v.SetDefault("slices", 0)
	v.SetDefault("jobs", 4)
	v.SetDefault("cache-size", 0)
	v.SetDefault("interpolation", "linear")
	v.SetDefault("adaptive-color", "")
	v.SetDefault("log-level", "warn")
}

// newViper returns a viper instance reading GAUGECTL_* variables, e.g.
// GAUGECTL_CACHE_SIZE for --cache-size.
func newViper() *viper.Viper {
	v := viper.New()
	setDefaults(v)
	v.SetEnvPrefix("GAUGECTL")
	v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	v.AutomaticEnv()
	return v
}

func loadSettings(v *viper.Viper) (*settings, error) {
	var s settings
	if err := v.Unmarshal(&s); err != nil {
		return nil, fmt.Errorf("read settings: %w", err)
	}
	return &s, nil
}

// engine builds the shared engine described by s.
func (s *settings) engine() (*gauge.Engine, error) {
	space, ok := gauge.ParseInterpolation(s.Interpolation)
	if !ok {
		return nil, fmt.Errorf("unknown interpolation %q (want linear or srgb)", s.Interpolation)
	}
	opts := []gauge.Option{
		gauge.WithInterpolation(space),
		gauge.WithCacheSize(s.CacheSize),
	}
	if s.AdaptiveColor != "" {
		if _, ok := gauge.ParseColor(s.AdaptiveColor); !ok {
			return nil, fmt.Errorf("invalid adaptive color %q", s.AdaptiveColor)
		}
		color := s.AdaptiveColor
		opts = append(opts, gauge.WithTheme(gauge.ThemeFunc(func() string { return color })))
	}
	return gauge.NewEngine(opts...), nil
}

func parseLevel(name string) (slog.Level, error) {
	var l slog.Level
	if err := l.UnmarshalText([]byte(name)); err != nil {
		return 0, fmt.Errorf("invalid log level %q: %w", name, err)
	}
	return l, nil
}

func newRootCmd() *cobra.Command {
	v := newViper()

	root := &cobra.Command{
		Use:   "gaugectl",
		Short: "Render circular gauge cards",
		Long: `gaugectl renders gauge card definitions (YAML) to SVG documents and PNG
previews, and resolves segment colors for single values.

Every flag can also be set through a GAUGECTL_ environment variable,
for example GAUGECTL_LOG_LEVEL=debug.`,
		SilenceUsage: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			level, err := parseLevel(v.GetString("log-level"))
			if err != nil {
				return err
			}
			gauge.SetLogger(slog.New(slog.NewTextHandler(cmd.ErrOrStderr(), &slog.HandlerOptions{Level: level})))
			return nil
		},
	}

	pf := root.PersistentFlags()
	pf.String("log-level", "warn", "log level (debug, info, warn, error)")
	pf.String("lang", "", "language tag for value formatting (default: the card's)")
	pf.Int("cache-size", 0, "per-shard result cache size, negative disables caching")
	pf.String("interpolation", "linear", "smooth segment color space (linear, srgb)")
	pf.String("adaptive-color", "", "color substituted for \"adaptive\" segments and rings")
	for _, name := range []string{"log-level", "lang", "cache-size", "interpolation", "adaptive-color"} {
		_ = v.BindPFlag(name, pf.Lookup(name))
	}

	root.AddCommand(
		newRenderCmd(v),
		newPreviewCmd(v),
		newColorCmd(v),
		newVersionCmd(),
	)
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "gaugectl %s\n", version)
			fmt.Fprintf(out, "  engine:  %s\n", gauge.Version)
			fmt.Fprintf(out, "  commit:  %s\n", commit)
		},
	}
}
