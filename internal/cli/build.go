package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/conclusiv/conclusiv/pkg/errors"
	"github.com/conclusiv/conclusiv/pkg/icons"
	"github.com/conclusiv/conclusiv/pkg/narrative"
	"github.com/conclusiv/conclusiv/pkg/pipeline"
)

// buildOpts holds the command-line flags for the build command.
type buildOpts struct {
	output      string   // output file path (or base path for multiple formats)
	template    string   // motion template name
	formats     []string // output formats: svg, png, pdf, json, dot
	theme       string   // color theme: dark, light
	canvas      float64  // canvas dimension in pixels
	mobile      bool     // apply mobile motion reduction
	animations  bool     // embed CSS animations in SVG output
	labels      bool     // draw transition labels on connectors
	detailed    bool     // detailed DOT labels
	frames      int      // eased camera frames per step in JSON output
	scale       float64  // PNG scale factor
	noCache     bool     // disable the plan/artifact cache
	refresh     bool     // recompute even when cached
	remoteIcons bool     // resolve icons from the upstream set
}

// buildCommand creates the build command that turns a narrative file into
// a plan and rendered artifacts.
func (c *CLI) buildCommand() *cobra.Command {
	var formatsStr string
	opts := buildOpts{
		theme:      pipeline.DefaultTheme,
		scale:      pipeline.DefaultScale,
		animations: true,
	}

	cmd := &cobra.Command{
		Use:   "build [file]",
		Short: "Build a presentation from a narrative file",
		Long: `Build reads a narrative (JSON or plain text with blank-line separated
sections), resolves it against a motion template, and renders the
requested output formats.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			if err := pipeline.ValidateTheme(opts.theme); err != nil {
				return err
			}
			if opts.output != "" {
				if err := errors.ValidateOutputPath(opts.output); err != nil {
					return err
				}
			}
			return c.runBuild(cmd.Context(), args[0], &opts)
		},
	}

	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&opts.template, "template", "t", "", "motion template (zoom_reveal, linear_storyboard, flyover_map, contrast_split, priority_ladder)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, json, dot (comma-separated)")
	cmd.Flags().StringVar(&opts.theme, "theme", opts.theme, "color theme: dark (default), light")
	cmd.Flags().Float64Var(&opts.canvas, "canvas", 0, "canvas dimension in pixels")
	cmd.Flags().BoolVar(&opts.mobile, "mobile", false, "apply mobile motion reduction")
	cmd.Flags().BoolVar(&opts.animations, "animations", opts.animations, "embed CSS animations in SVG output")
	cmd.Flags().BoolVar(&opts.labels, "labels", false, "draw transition labels on connectors")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show detailed information (dot)")
	cmd.Flags().IntVar(&opts.frames, "frames", 0, "eased camera frames per step (json)")
	cmd.Flags().Float64Var(&opts.scale, "scale", opts.scale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the plan/artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "recompute even when cached")
	cmd.Flags().BoolVar(&opts.remoteIcons, "remote-icons", false, "resolve unknown icons from the upstream icon set")

	return cmd
}

// runBuild loads the narrative, resolves icons, executes the pipeline, and
// writes one file per requested format.
func (c *CLI) runBuild(ctx context.Context, input string, opts *buildOpts) error {
	logger := loggerFromContext(ctx)

	n, err := loadNarrative(input)
	if err != nil {
		return err
	}
	logger.Debugf("Loaded narrative: %d sections", n.SectionCount())

	glyphs, err := resolveIcons(ctx, n, opts.remoteIcons)
	if err != nil {
		// Icon resolution is best effort; a dead network should not block a build.
		logger.Warnf("Icon resolution failed: %v", err)
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return err
	}
	defer runner.Close()

	pipeOpts := pipeline.Options{
		Template:         opts.template,
		Canvas:           opts.canvas,
		Mobile:           opts.mobile,
		Refresh:          opts.refresh,
		Formats:          opts.formats,
		Theme:            opts.theme,
		Scale:            opts.scale,
		Frames:           opts.frames,
		Animations:       opts.animations,
		TransitionLabels: opts.labels,
		Detailed:         opts.detailed,
		Logger:           logger,
		Icons:            glyphs,
	}

	spinner := newSpinnerWithContext(ctx, "Building presentation")
	spinner.Start()
	result, err := runner.Execute(ctx, n, pipeOpts)
	spinner.Stop()
	if err != nil {
		if spinner.Cancelled() {
			return ctx.Err()
		}
		return err
	}

	printSuccess("Built %s with %s", n.Title, result.Plan.Template)
	printStats(result.Stats.StepCount, result.CacheInfo.PlanHit && result.CacheInfo.RenderHit)

	base := basePath(opts.output, input)
	for _, format := range opts.formats {
		path := base + "." + format
		if opts.output != "" && len(opts.formats) == 1 {
			path = opts.output
		}
		if err := os.WriteFile(path, result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", path, err)
		}
		printFile(path)
	}

	if len(opts.formats) == 1 && opts.formats[0] == pipeline.FormatSVG {
		printNextStep("Preview the section flow", "conclusiv preview "+input)
	}
	return nil
}

// resolveIcons maps the icon names referenced by the narrative to glyphs.
// Invalid names are rejected; unknown names are skipped.
func resolveIcons(ctx context.Context, n *narrative.Narrative, remote bool) (map[string]string, error) {
	var names []string
	for _, s := range n.Sections {
		if s.Icon == "" {
			continue
		}
		if err := errors.ValidateIconName(s.Icon); err != nil {
			return nil, err
		}
		names = append(names, s.Icon)
	}
	if len(names) == 0 {
		return nil, nil
	}

	var resolver icons.Resolver
	if remote {
		r, err := icons.NewRemoteResolver(nil)
		if err != nil {
			return nil, err
		}
		resolver = r
	} else {
		resolver = icons.NewBuiltinResolver()
	}
	return icons.ResolveAll(ctx, resolver, names)
}

// basePath derives the base output path from the output and input paths.
// If output is empty, it strips the extension from input. If output has a
// format extension, that extension is stripped.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if pipeline.ValidFormats[strings.TrimPrefix(ext, ".")] {
		return strings.TrimSuffix(output, ext)
	}
	return output
}
