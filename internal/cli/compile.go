package cli

import (
	"context"
	"fmt"
	"path/filepath"

	"github.com/spf13/cobra"

	"github.com/matzehuels/svgsprite/pkg/config"
	"github.com/matzehuels/svgsprite/pkg/errors"
	"github.com/matzehuels/svgsprite/pkg/io"
	"github.com/matzehuels/svgsprite/pkg/pipeline"
)

// compileOpts holds the command-line flags for the compile command.
type compileOpts struct {
	configFlags
	manifest string // manifest output path
	dryRun   bool   // compile without writing artifacts
	strict   bool   // fail when any shape or mode failed
}

// compileCommand creates the compile command.
func (c *CLI) compileCommand() *cobra.Command {
	var opts compileOpts

	cmd := &cobra.Command{
		Use:   "compile [files, directories or globs...]",
		Short: "Compile SVG files into sprites",
		Long: `Compile merges SVG files into sprites.

Arguments may be files, directories (walked recursively for .svg files) or
glob patterns. Shape identifiers are derived from paths relative to the
directory argument, so icons/ui/home.svg under icons/ becomes "ui--home".`,
		Example: `  svgsprite compile icons/ --mode css,symbol --dest public
  svgsprite compile -c sprite.yaml 'assets/*.svg'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runCompile(cmd.Context(), args, &opts)
		},
	}

	opts.register(cmd)
	cmd.Flags().StringVar(&opts.manifest, "manifest", "", "write a JSON manifest of the run to this file")
	cmd.Flags().BoolVar(&opts.dryRun, "dry-run", false, "compile without writing files")
	cmd.Flags().BoolVar(&opts.strict, "strict", false, "exit with an error when any shape or mode failed")

	return cmd
}

// runCompile loads the inputs, runs the pipeline and writes its artifacts.
func runCompile(ctx context.Context, args []string, opts *compileOpts) error {
	logger := loggerFromContext(ctx)

	raw, err := opts.raw(logger)
	if err != nil {
		return err
	}
	settings, err := config.Resolve(raw)
	if err != nil {
		return err
	}

	inputs, err := io.ImportShapes(args)
	if err != nil {
		return err
	}
	if len(inputs) == 0 {
		return errors.New(errors.ErrCodeInvalidInput, "no svg files found in %v", args)
	}
	logger.Infof("Compiling %d shapes", len(inputs))

	prog := newProgress(logger)
	res, err := pipeline.NewRunner(settings, nil).Compile(ctx, inputs)
	if err != nil {
		return err
	}
	prog.done(fmt.Sprintf("Compiled %d shapes into %d modes", res.Stats.Shapes, len(res.Outputs)))

	if !opts.dryRun {
		if err := io.WriteArtifacts(ctx, settings.Dest, res.Artifacts); err != nil {
			return err
		}
	}
	if opts.manifest != "" {
		if err := io.ExportManifest(opts.manifest, res.RunID, res.Artifacts, res.Failures); err != nil {
			return err
		}
	}

	printResult(res, settings.Dest, opts.dryRun)

	err = res.Err()
	switch {
	case err == nil:
		return nil
	case errors.Is(err, errors.ErrCodePartial) && !opts.strict:
		return nil
	}
	return err
}

// printResult summarizes a run on stdout.
func printResult(res *pipeline.Result, dest string, dryRun bool) {
	switch {
	case len(res.Outputs) == 0:
		printError("No sprite compiled")
	case dryRun:
		printSuccess("Compiled %d artifacts (dry run)", len(res.Artifacts))
	default:
		printSuccess("Wrote %d artifacts", len(res.Artifacts))
	}
	for _, a := range res.Artifacts {
		printFile(filepath.Join(dest, filepath.FromSlash(a.Path)), a.Digest[:8])
	}
	printStats(res.Stats.Shapes, len(res.Outputs), len(res.Failures))

	for _, f := range res.Failures {
		printWarning("%v", f)
	}
}
