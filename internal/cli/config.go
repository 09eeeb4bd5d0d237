package cli

import (
	"context"
	"fmt"
	"os"
	"sort"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/matzehuels/svgsprite/pkg/config"
	"github.com/matzehuels/svgsprite/pkg/layout"
	"github.com/matzehuels/svgsprite/pkg/meta"
	"github.com/matzehuels/svgsprite/pkg/mode"
	"github.com/matzehuels/svgsprite/pkg/shape"
	"github.com/matzehuels/svgsprite/pkg/svg"
	"github.com/matzehuels/svgsprite/pkg/transform"
)

// configCommand creates the config command, which prints the settings a
// compile run would use.
func (c *CLI) configCommand() *cobra.Command {
	var flags configFlags

	cmd := &cobra.Command{
		Use:   "config",
		Short: "Print the resolved configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			return runConfig(cmd.Context(), &flags)
		},
	}
	flags.register(cmd)
	return cmd
}

// resolvedView is the printable form of config.Settings.
type resolvedView struct {
	Dest      string         `yaml:"dest"`
	Shape     shapeView      `yaml:"shape"`
	SVG       svg.Settings   `yaml:"svg"`
	Post      int            `yaml:"post"`
	Modes     []modeView     `yaml:"modes"`
	Variables map[string]any `yaml:"variables,omitempty"`
}

type shapeView struct {
	ID        shape.IDOptions        `yaml:"id"`
	Dimension shape.DimensionOptions `yaml:"dimension"`
	Padding   layout.Padding         `yaml:"padding"`
	Dest      string                 `yaml:"dest,omitempty"`
	Transform []string               `yaml:"transform"`
	Meta      []string               `yaml:"meta,omitempty"`
	Align     meta.AlignTable        `yaml:"align"`
}

type modeView struct {
	Key     string      `yaml:"key"`
	Mode    mode.Name   `yaml:"mode"`
	Options mode.Config `yaml:"options"`
}

func runConfig(ctx context.Context, flags *configFlags) error {
	logger := loggerFromContext(ctx)

	raw, err := flags.raw(logger)
	if err != nil {
		return err
	}
	s, err := config.Resolve(raw)
	if err != nil {
		return err
	}

	view := resolvedView{
		Dest: s.Dest,
		Shape: shapeView{
			ID:        s.Shape.ID,
			Dimension: s.Shape.Dimension,
			Padding:   s.Shape.Padding,
			Dest:      s.Shape.Dest,
			Transform: transform.Describe(s.Shape.Transform),
			Align:     s.Shape.Align,
		},
		SVG:       s.SVG,
		Post:      len(s.Post),
		Variables: s.Variables,
	}
	for p := range s.Shape.Meta {
		view.Shape.Meta = append(view.Shape.Meta, p)
	}
	sort.Strings(view.Shape.Meta)
	for _, m := range s.Modes {
		view.Modes = append(view.Modes, modeView{Key: m.Key, Mode: m.Config.Mode(), Options: m.Config})
	}

	enc := yaml.NewEncoder(os.Stdout)
	enc.SetIndent(2)
	defer enc.Close()
	if err := enc.Encode(view); err != nil {
		return fmt.Errorf("encode configuration: %w", err)
	}
	return nil
}
