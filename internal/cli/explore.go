package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/spf13/cobra"

	"github.com/matzehuels/pants/pkg/errors"
	"github.com/matzehuels/pants/pkg/explore"
	pio "github.com/matzehuels/pants/pkg/io"
	"github.com/matzehuels/pants/pkg/observability"
	"github.com/matzehuels/pants/pkg/observability/metrics"
	"github.com/matzehuels/pants/pkg/pants"
	"github.com/matzehuels/pants/pkg/puzzle"
	"github.com/matzehuels/pants/pkg/render/nodelink"
)

// Output formats accepted by the explore command.
const (
	formatText = "text" // per-depth report
	formatJSON = "json" // graph in the pkg/io JSON format
	formatDOT  = "dot"  // Graphviz source
	formatSVG  = "svg"  // rendered node-link diagram
)

var exploreFormats = []string{formatText, formatJSON, formatDOT, formatSVG}

// exploreOpts holds the command-line flags for the explore command.
type exploreOpts struct {
	file      string // TOML puzzle file supplying the root and bounds
	depth     int    // maximum depth, 0 for unbounded
	maxStates int    // state budget
	format    string // one of exploreFormats
	output    string // output file, stdout when empty
	list      bool   // list every state in the text report
	detailed  bool   // detailed node labels in dot and svg output
	target    string // state to print a shortest path to
	metrics   string // Prometheus textfile to write after the run
}

// exploreCommand walks the reachable states breadth-first.
func (c *CLI) exploreCommand() *cobra.Command {
	opts := exploreOpts{
		maxStates: explore.DefaultMaxStates,
		format:    formatText,
	}

	cmd := &cobra.Command{
		Use:   "explore [<pointer> <values...>]",
		Short: "Walk every state reachable from a start state",
		Long: `Walk the states reachable from a start state breadth-first.

Each state is recorded once, at the smallest number of moves that reaches it.
The start state comes from the arguments or from a TOML puzzle file; flags
override the bounds set in the file.`,
		Example: `  pants explore 0 1 2 3
  pants explore 2 1 2 3 4 5 --depth 3 --list
  pants explore --file puzzle.toml --format svg -o states.svg
  pants explore 0 1 2 3 --target 1:3,2,1`,
		RunE: func(cmd *cobra.Command, args []string) error {
			if err := errors.ValidateFormat(opts.format, exploreFormats...); err != nil {
				return err
			}
			root, err := opts.resolveRoot(cmd, args)
			if err != nil {
				return err
			}
			if opts.metrics == "" {
				return runExplore(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, &opts)
			}
			return withMetrics(opts.metrics, func() error {
				return runExplore(cmd.Context(), cmd.OutOrStdout(), cmd.ErrOrStderr(), root, &opts)
			})
		},
	}

	cmd.Flags().StringVar(&opts.file, "file", "", "TOML puzzle file with the start state")
	cmd.Flags().IntVarP(&opts.depth, "depth", "d", 0, "maximum depth (0 for no bound)")
	cmd.Flags().IntVar(&opts.maxStates, "max-states", opts.maxStates, "maximum number of states to record")
	cmd.Flags().StringVarP(&opts.format, "format", "f", opts.format, "output format: text, json, dot, svg")
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (default stdout)")
	cmd.Flags().BoolVar(&opts.list, "list", false, "list the states of each depth (text)")
	cmd.Flags().BoolVar(&opts.detailed, "detailed", false, "show depth and pointer in node labels (dot, svg)")
	cmd.Flags().StringVar(&opts.target, "target", "", "print a shortest path to this state, as pointer:v,v,... (text)")
	cmd.Flags().StringVar(&opts.metrics, "metrics", "", "write Prometheus metrics for the run to this file")

	_ = cmd.RegisterFlagCompletionFunc("format", func(*cobra.Command, []string, string) ([]string, cobra.ShellCompDirective) {
		return exploreFormats, cobra.ShellCompDirectiveNoFileComp
	})
	_ = cmd.MarkFlagFilename("file", "toml")

	return cmd
}

// resolveRoot picks the start state from the arguments or the puzzle file.
// Bounds from the file apply unless the matching flag was set explicitly.
func (o *exploreOpts) resolveRoot(cmd *cobra.Command, args []string) (pants.State[int], error) {
	switch {
	case o.file != "" && len(args) > 0:
		return pants.State[int]{}, errors.New(errors.ErrCodeInvalidInput, "give a start state or --file, not both")
	case o.file != "":
		f, err := puzzle.Load(o.file)
		if err != nil {
			return pants.State[int]{}, err
		}
		if !cmd.Flags().Changed("depth") {
			o.depth = f.Explore.MaxDepth
		}
		if !cmd.Flags().Changed("max-states") && f.Explore.MaxStates > 0 {
			o.maxStates = f.Explore.MaxStates
		}
		return f.State(), nil
	case len(args) > 0:
		return puzzle.ParseArgs(args)
	default:
		return pants.State[int]{}, errors.New(errors.ErrCodeInvalidInput, "need a start state or --file")
	}
}

// runExplore walks from root and writes the result in the requested format.
// Reports and graph data go to stdout or the output file; status lines go
// to stderr.
func runExplore(ctx context.Context, stdout, stderr io.Writer, root pants.State[int], opts *exploreOpts) error {
	logger := loggerFromContext(ctx)

	var target *pants.State[int]
	if opts.target != "" {
		t, err := puzzle.ParseState(opts.target)
		if err != nil {
			return err
		}
		target = &t
	}

	logger.Infof("Exploring from %v", root)
	prog := newProgress(logger)
	res, err := explore.Walk(ctx, root, explore.Options{
		MaxDepth:  opts.depth,
		MaxStates: opts.maxStates,
		Logger:    logger,
	})
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Explored %s", plural(res.States(), "state")))

	data, err := encodeResult(ctx, res, target, stderr, opts)
	if err != nil {
		return err
	}

	if opts.output == "" {
		_, err := stdout.Write(data)
		return err
	}
	if err := os.WriteFile(opts.output, data, 0o644); err != nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write %s", opts.output)
	}
	printSuccess(stderr, "Wrote %s output", opts.format)
	printFile(stderr, opts.output)
	return nil
}

// withMetrics installs Prometheus-backed hooks for the duration of fn and
// writes the gathered metrics to path afterwards, also when fn fails.
func withMetrics(path string, fn func() error) error {
	reg := prometheus.NewRegistry()
	h := metrics.New(reg)
	observability.SetExploreHooks(h)
	observability.SetRenderHooks(h)
	defer observability.Reset()

	runErr := fn()
	if err := prometheus.WriteToTextfile(path, reg); err != nil && runErr == nil {
		return errors.Wrap(errors.ErrCodeInvalidPath, err, "write metrics %s", path)
	}
	return runErr
}

func encodeResult(ctx context.Context, res *explore.Result[int], target *pants.State[int], stderr io.Writer, opts *exploreOpts) ([]byte, error) {
	var buf bytes.Buffer
	switch opts.format {
	case formatJSON:
		if err := pio.WriteJSON(res.Graph, &buf); err != nil {
			return nil, err
		}
	case formatDOT:
		buf.WriteString(nodelink.ToDOT(res.Graph, nodelinkOptions(opts)))
	case formatSVG:
		dot := nodelink.ToDOT(res.Graph, nodelinkOptions(opts))
		spin := startSpinner(ctx, stderr, "Rendering SVG...")
		svg, err := nodelink.RenderSVGContext(ctx, dot)
		spin.Stop()
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInternal, err, "render svg")
		}
		buf.Write(svg)
	default:
		writeReport(&buf, res, target, opts.list)
	}
	return buf.Bytes(), nil
}

func nodelinkOptions(opts *exploreOpts) nodelink.Options {
	o := nodelink.DefaultOptions()
	o.Detailed = opts.detailed
	return o
}

// writeReport prints the per-depth breakdown of a walk.
func writeReport(w io.Writer, res *explore.Result[int], target *pants.State[int], list bool) {
	for depth, layer := range res.Layers {
		printKeyValue(w, fmt.Sprintf("depth %d", depth), styleNumber.Render(plural(len(layer), "state")))
		if list {
			for _, s := range layer {
				printDetail(w, "%v", s)
			}
		}
	}
	printStats(w, res.States(), res.Graph.EdgeCount(), res.Depth(), res.Truncated)

	switch {
	case res.Exhausted:
		printInfo(w, "every reachable state was found")
	case res.Truncated:
		printWarning(w, "state budget reached; raise --max-states to walk further")
	}

	if target == nil {
		return
	}
	p, ok := res.PathTo(*target)
	if !ok {
		printWarning(w, "%v was not reached", *target)
		return
	}
	printInfo(w, "shortest path to %s (%s)", renderState(*target), plural(p.Depth(), "move"))
	for i, s := range p.States() {
		printDetail(w, "%2d  %v", i, s)
	}
}
