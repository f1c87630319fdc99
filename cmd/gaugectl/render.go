package main

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"
	"golang.org/x/sync/errgroup"

	"github.com/gogpu/gauge"
	"github.com/gogpu/gauge/card"
	"github.com/gogpu/gauge/preview"
	"github.com/gogpu/gauge/svg"
)

// renderFunc writes one loaded card to path.
type renderFunc func(path string, c *card.Card) error

func newRenderCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "render [card.yaml...]",
		Short: "Render cards to SVG",
		Long:  "Render each card file to an SVG document in the output directory. Cards are rendered concurrently.",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			e, err := s.engine()
			if err != nil {
				return err
			}
			r := svg.New(
				svg.WithEngine(e),
				svg.WithSize(s.Size),
				svg.WithSlices(s.Slices),
				svg.WithLang(s.Lang),
			)
			return renderAll(cmd, s, args, ".svg", func(path string, c *card.Card) error {
				f, err := os.Create(path)
				if err != nil {
					return err
				}
				if err := r.Render(f, c); err != nil {
					f.Close()
					return err
				}
				return f.Close()
			}, e)
		},
	}
	addOutputFlags(cmd, v)
	return cmd
}

func newPreviewCmd(v *viper.Viper) *cobra.Command {
	cmd := &cobra.Command{
		Use:   "preview [card.yaml...]",
		Short: "Render card previews to PNG",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s, err := loadSettings(v)
			if err != nil {
				return err
			}
			e, err := s.engine()
			if err != nil {
				return err
			}
			r := preview.New(
				preview.WithEngine(e),
				preview.WithSize(s.Size),
				preview.WithSlices(s.Slices),
			)
			return renderAll(cmd, s, args, ".png", func(path string, c *card.Card) error {
				return r.SavePNG(path, c)
			}, e)
		},
	}
	addOutputFlags(cmd, v)
	return cmd
}

var outputFlags = []string{"output", "size", "slices", "jobs"}

// addOutputFlags defines the flags shared by render and preview. They are
// bound to v when the command runs, since both commands share the keys.
func addOutputFlags(cmd *cobra.Command, v *viper.Viper) {
	f := cmd.Flags()
	f.StringP("output", "o", ".", "output directory")
	f.Int("size", 0, "image width in pixels (0 for the renderer default)")
	f.Int("slices", 0, "slices approximating smooth gradients (0 for the renderer default)")
	f.IntP("jobs", "j", 4, "cards rendered in parallel")
	cmd.PreRunE = func(cmd *cobra.Command, args []string) error {
		for _, name := range outputFlags {
			if err := v.BindPFlag(name, cmd.Flags().Lookup(name)); err != nil {
				return err
			}
		}
		return nil
	}
}

// renderAll loads and renders every card file, at most s.Jobs at a time.
// The first failure cancels cards that have not started yet.
func renderAll(cmd *cobra.Command, s *settings, files []string, ext string, render renderFunc, e *gauge.Engine) error {
	if err := os.MkdirAll(s.Output, 0o755); err != nil {
		return fmt.Errorf("create output directory: %w", err)
	}

	g, ctx := errgroup.WithContext(cmdContext(cmd))
	if s.Jobs > 0 {
		g.SetLimit(s.Jobs)
	}

	outputs := make([]string, len(files))
	for i, file := range files {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			c, err := card.Load(file)
			if err != nil {
				return err
			}
			out := outputPath(s.Output, file, ext)
			if err := render(out, c); err != nil {
				return fmt.Errorf("render %s: %w", file, err)
			}
			gauge.Logger().Info("rendered card", "card", file, "output", out)
			outputs[i] = out
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for _, out := range outputs {
		fmt.Fprintln(cmd.OutOrStdout(), out)
	}
	st := e.Stats()
	gauge.Logger().Debug("engine cache", "entries", st.Len, "hits", st.Hits, "misses", st.Misses)
	return nil
}

// outputPath maps dir/name.yaml to out/name.ext.
func outputPath(dir, file, ext string) string {
	base := filepath.Base(file)
	return filepath.Join(dir, strings.TrimSuffix(base, filepath.Ext(base))+ext)
}

func cmdContext(cmd *cobra.Command) context.Context {
	if ctx := cmd.Context(); ctx != nil {
		return ctx
	}
	return context.Background()
}
