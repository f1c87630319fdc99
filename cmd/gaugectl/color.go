package main

import (
	"errors"
	"fmt"
	"math"
	"strconv"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/card"
)

var errNoSegments = errors.New("no segments: pass --segment or --card")

func newColorCmd(v *viper.Viper) *cobra.Command {
	var (
		segFlags []string
		cardPath string
		smooth   bool
	)
	cmd := &cobra.Command{
		Use:   "color VALUE",
		Short: "Resolve the segment color for a value",
		Example: `  gaugectl color 65 --segment 0=green --segment 50=yellow --segment 80=red --smooth
  gaugectl color 12.5 --card cpu.yaml`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			value, err := strconv.ParseFloat(args[0], 64)
			if err != nil {
				return fmt.Errorf("invalid value %q: %w", args[0], err)
			}

			segments, err := parseSegments(segFlags)
			if err != nil {
				return err
			}
			if cardPath != "" {
				c, err := card.Load(cardPath)
				if err != nil {
					return err
				}
				segments = append(segments, c.GaugeSegments()...)
				smooth = smooth || c.Smooth()
			}
			if len(segments) == 0 {
				return errNoSegments
			}

			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			e, err := s.engine()
			if err != nil {
				return err
			}
			color, ok := e.ResolveColor(value, segments, smooth)
			if !ok {
				return errNoSegments
			}
			fmt.Fprintln(cmd.OutOrStdout(), color)
			return nil
		},
	}
	f := cmd.Flags()
	f.StringArrayVarP(&segFlags, "segment", "s", nil, "segment as FROM=COLOR, repeatable")
	f.StringVar(&cardPath, "card", "", "take segments from a card file")
	f.BoolVar(&smooth, "smooth", false, "interpolate between segments")
	return cmd
}

// parseSegments reads FROM=COLOR pairs. A non-numeric FROM becomes NaN,
// the same as in card files.
func parseSegments(pairs []string) ([]gauge.Segment, error) {
	out := make([]gauge.Segment, 0, len(pairs))
	for _, pair := range pairs {
		from, color, ok := strings.Cut(pair, "=")
		if !ok || strings.TrimSpace(color) == "" {
			return nil, fmt.Errorf("invalid segment %q (want FROM=COLOR)", pair)
		}
		f, err := strconv.ParseFloat(strings.TrimSpace(from), 64)
		if err != nil {
			f = math.NaN()
		}
		out = append(out, gauge.Segment{From: f, Color: strings.TrimSpace(color)})
	}
	return out, nil
}
