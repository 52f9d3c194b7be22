package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"

	"github.com/flowboard/flowboard/pkg/config"
	"github.com/flowboard/flowboard/pkg/errors"
	"github.com/flowboard/flowboard/pkg/render"
)

// debounceQuiet is how long the watcher waits after the last write before
// re-rendering. Editors often produce several events per save.
const debounceQuiet = 200 * time.Millisecond

// renderOpts holds the command-line flags for the render command.
type renderOpts struct {
	output    string  // output file path (derived from input when empty)
	format    string  // "svg", "png", or "dot"
	scale     float64 // PNG scale factor
	hierarchy bool    // draw parent/child links as dashed edges
	all       bool    // render hidden nodes too
	watch     bool    // re-render when the document changes
}

// newRenderCmd creates the render command for rasterizing a board.
// It renders the visible subgraph: collapsed subtrees are annotated on
// their parent rather than drawn.
func newRenderCmd() *cobra.Command {
	opts := renderOpts{}

	cmd := &cobra.Command{
		Use:   "render [file]",
		Short: "Render the visible graph to DOT, SVG, or PNG",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.Load("")
			if err != nil {
				return err
			}
			if opts.format == "" {
				opts.format = cfg.Render.Format
			}
			if opts.scale == 0 {
				opts.scale = cfg.Render.Scale
			}
			if err := validateFormat(opts.format); err != nil {
				return err
			}
			if opts.output == "" {
				opts.output = outputPath(args[0], opts.format)
			}
			if opts.watch {
				return watchAndRender(cmd.Context(), args[0], &opts)
			}
			return runRender(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (defaults next to the input)")
	cmd.Flags().StringVarP(&opts.format, "format", "f", "", "output format: svg (default), png, dot")
	cmd.Flags().Float64Var(&opts.scale, "scale", 0, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.hierarchy, "hierarchy", false, "draw parent/child links as dashed edges")
	cmd.Flags().BoolVar(&opts.all, "all", false, "render nodes hidden by collapsed ancestors")
	cmd.Flags().BoolVarP(&opts.watch, "watch", "w", false, "re-render whenever the document changes")
	return cmd
}

func validateFormat(format string) error {
	switch format {
	case "svg", "png", "dot":
		return nil
	default:
		return errors.New(errors.CodeInvalidFormat, "unsupported format %q (want svg, png, or dot)", format)
	}
}

// outputPath derives the output file from the input by swapping the extension.
func outputPath(input, format string) string {
	base := strings.TrimSuffix(input, filepath.Ext(input))
	return base + "." + format
}

func runRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger)

	b, err := loadBoard(path)
	if err != nil {
		return err
	}

	dot := render.ToDOT(b, render.Options{ShowHierarchy: opts.hierarchy, All: opts.all})

	var data []byte
	switch opts.format {
	case "dot":
		data = []byte(dot)
	case "svg":
		if data, err = render.SVG(ctx, dot); err != nil {
			return err
		}
	case "png":
		if data, err = render.PNG(ctx, dot, opts.scale); err != nil {
			return err
		}
	}

	if err := os.WriteFile(opts.output, data, 0644); err != nil {
		return fmt.Errorf("write %s: %w", opts.output, err)
	}
	prog.done(fmt.Sprintf("Rendered %s", opts.output))
	return nil
}

// watchAndRender renders once, then re-renders after every (debounced)
// change to the document until the context is canceled.
//
// It watches the directory rather than the file: many editors replace the
// file on save, which breaks a direct watch.
func watchAndRender(ctx context.Context, path string, opts *renderOpts) error {
	logger := loggerFromContext(ctx)

	if err := runRender(ctx, path, opts); err != nil {
		logger.Error("render failed", "err", err)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer watcher.Close()

	dir := filepath.Dir(path)
	if err := watcher.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	logger.Info("watching", "file", path)

	target, err := filepath.Abs(path)
	if err != nil {
		return err
	}

	var timer *time.Timer
	pending := make(chan struct{}, 1)

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case ev, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			abs, err := filepath.Abs(ev.Name)
			if err != nil || abs != target {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceQuiet, func() {
				select {
				case pending <- struct{}{}:
				default:
				}
			})
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Warn("watch error", "err", err)
		case <-pending:
			if err := runRender(ctx, path, opts); err != nil {
				logger.Error("render failed", "err", err)
			}
		}
	}
}
