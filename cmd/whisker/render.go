package main

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"

	whisker "github.com/whisker-format/go-whisker"
	"github.com/whisker-format/go-whisker/ir"
	"github.com/whisker-format/go-whisker/render"

	"github.com/spf13/cobra"
)

var (
	dataFile     string
	outFile      string
	partialFlags []string
)

var renderCmd = &cobra.Command{
	Use:   "render TEMPLATE",
	Short: "Render a template file against a data file",
	Args:  cobra.ExactArgs(1),
	RunE:  runRender,
}

func init() {
	renderCmd.Flags().StringVarP(&dataFile, "data", "d", "", "JSON or YAML data file (format by extension)")
	renderCmd.Flags().StringArrayVarP(&partialFlags, "partial", "p", nil, "partial as name=file (repeatable)")
	renderCmd.Flags().StringVarP(&outFile, "out", "o", "-", "output file, - for stdout")
	rootCmd.AddCommand(renderCmd)
}

func runRender(cmd *cobra.Command, args []string) error {
	tmpl, err := os.ReadFile(args[0])
	if err != nil {
		return err
	}
	ctx, err := loadData(dataFile)
	if err != nil {
		return err
	}
	partials, err := loadPartials(partialFlags)
	if err != nil {
		return err
	}
	if verbose {
		theLog.Info("rendering", "template", args[0], "bytes", len(tmpl), "partials", len(partialFlags))
	}
	out, err := whisker.Render(string(tmpl), ctx, render.WithPartials(partials))
	if err != nil {
		return fmt.Errorf("rendering %s: %w", args[0], err)
	}
	if outFile == "-" {
		_, err = os.Stdout.WriteString(out)
		return err
	}
	return os.WriteFile(outFile, []byte(out), 0644)
}

func loadData(file string) (*ir.Node, error) {
	if file == "" {
		return ir.Null(), nil
	}
	d, err := os.ReadFile(file)
	if err != nil {
		return nil, err
	}
	switch strings.ToLower(filepath.Ext(file)) {
	case ".yaml", ".yml":
		return ir.FromYAML(d)
	default:
		return ir.FromJSON(d)
	}
}

func loadPartials(flags []string) (*ir.Node, error) {
	kvs := make([]ir.KeyVal, 0, len(flags))
	for _, f := range flags {
		name, file, ok := strings.Cut(f, "=")
		if !ok {
			return nil, fmt.Errorf("bad --partial %q: want name=file", f)
		}
		d, err := os.ReadFile(file)
		if err != nil {
			return nil, err
		}
		kvs = append(kvs, ir.KeyVal{Key: name, Val: ir.FromString(string(d))})
	}
	return ir.FromKeyVals(kvs), nil
}
