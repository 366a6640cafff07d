// Command skirt generates the border skirt of a terrain OBJ mesh.
package main

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ZoserLock/skirt"
	"github.com/ZoserLock/skirt/obj"
)

type flags struct {
	config   string
	output   string
	floor    float64
	epsilon  float64
	axis     string
	material string
	mtllib   string
	verbose  bool
}

func main() {
	if err := newRootCommand(os.Stdout, os.Stderr).Execute(); err != nil {
		os.Exit(1)
	}
}

func newRootCommand(stdout, stderr io.Writer) *cobra.Command {
	var f flags

	root := &cobra.Command{
		Use:          "skirt",
		Short:        "Generate the border skirt of a terrain mesh",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			level := slog.LevelInfo
			if f.verbose {
				level = slog.LevelDebug
			}
			skirt.SetLogger(slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level})))
		},
	}
	root.SetOut(stdout)
	root.SetErr(stderr)

	pf := root.PersistentFlags()
	pf.StringVarP(&f.config, "config", "c", "", "TOML options file")
	pf.Float64Var(&f.floor, "floor", skirt.DefaultFloor, "height the skirt is dropped to")
	pf.Float64Var(&f.epsilon, "epsilon", skirt.DefaultOptions().Epsilon, "distance under which two vertices are the same point")
	pf.StringVar(&f.axis, "axis", skirt.AxisY.String(), "vertical axis (x, y or z)")
	pf.BoolVarP(&f.verbose, "verbose", "v", false, "display additional information")

	generate := &cobra.Command{
		Use:   "generate <terrain.obj>",
		Short: "Write the skirt of a terrain as OBJ",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runGenerate(cmd, &f, args[0])
		},
	}
	generate.Flags().StringVarP(&f.output, "output", "o", "", "output file (default <input>-skirt.obj)")
	generate.Flags().StringVar(&f.material, "material", "border", "material name written with usemtl")
	generate.Flags().StringVar(&f.mtllib, "mtllib", "", "material library written with mtllib")

	loop := &cobra.Command{
		Use:   "loop <terrain.obj>",
		Short: "Print the boundary loop of a terrain",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return runLoop(cmd, &f, args[0])
		},
	}

	root.AddCommand(generate, loop)

	return root
}

// options merges defaults, the config file and explicitly set flags, in
// that order.
func options(cmd *cobra.Command, f *flags) (skirt.Options, error) {
	opts := skirt.DefaultOptions()
	if f.config != "" {
		var err error
		if opts, err = skirt.LoadOptions(f.config); err != nil {
			return opts, err
		}
	}

	fs := cmd.Flags()
	if fs.Changed("floor") {
		opts.Floor = f.floor
	}
	if fs.Changed("epsilon") {
		opts.Epsilon = f.epsilon
	}
	if fs.Changed("axis") {
		if err := opts.Axis.UnmarshalText([]byte(f.axis)); err != nil {
			return opts, err
		}
	}

	return opts, opts.Validate()
}

func runGenerate(cmd *cobra.Command, f *flags, input string) error {
	opts, err := options(cmd, f)
	if err != nil {
		return err
	}

	terrain, err := obj.ReadFile(input)
	if err != nil {
		return err
	}

	gen := skirt.NewGenerator(skirt.Material{Name: f.material, Library: f.mtllib}, skirt.WithOptions(opts))
	border, err := gen.Generate(terrain.Mesh)
	if err != nil {
		return err
	}

	output := f.output
	if output == "" {
		output = strings.TrimSuffix(input, filepath.Ext(input)) + "-skirt.obj"
	}

	if err := obj.WriteFile(output, terrain.Name+"-skirt", border.Mesh, border.Material); err != nil {
		return err
	}

	fmt.Fprintf(cmd.OutOrStdout(), "%s: %d loop points, %d vertices, %d triangles\n",
		output, len(border.Loop), len(border.Mesh.Points), len(border.Mesh.Faces))

	return nil
}

func runLoop(cmd *cobra.Command, f *flags, input string) error {
	opts, err := options(cmd, f)
	if err != nil {
		return err
	}

	terrain, err := obj.ReadFile(input)
	if err != nil {
		return err
	}

	loop, err := skirt.ExtractLoop(terrain.Mesh, opts)
	if err != nil {
		return err
	}

	out := cmd.OutOrStdout()
	for _, p := range loop {
		fmt.Fprintf(out, "%g %g %g\n", p[0], p[1], p[2])
	}
	fmt.Fprintf(out, "# %d points, perimeter %g\n", len(loop), loop.Perimeter())

	return nil
}
