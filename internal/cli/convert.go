package cli

import (
	"fmt"
	"os"

	"github.com/spf13/cobra"

	"meshconv/pkg/mesh"
)

type convertOpts struct {
	inputFile  string
	outputFile string
	format     string
	optimize   bool
}

func ConvertCommand() *cobra.Command {
	opts := convertOpts{}

	command := &cobra.Command{
		Use:     "convert",
		Short:   "Convert a local GLB file to STL or OBJ",
		Example: "meshconv convert --input model.glb --output model.stl --format stl --optimize",
		RunE: func(cmd *cobra.Command, args []string) error {
			return ConvertFile(opts)
		},
	}

	command.Flags().StringVar(&opts.inputFile, "input", "", "GLB file to convert (original will not be touched)")
	command.Flags().StringVar(&opts.outputFile, "output", "", "Output file path/name for the converted model")
	command.Flags().StringVar(&opts.format, "format", "stl", "Output format, either stl or obj")
	command.Flags().BoolVar(&opts.optimize, "optimize", false, "Run mesh cleanup passes before exporting")

	MarkFlagsRequired(command, "input", "output")

	return command
}

func ConvertFile(opts convertOpts) error {
	format, err := mesh.ParseFormat(opts.format)
	if err != nil {
		return err
	}

	glbData, err := os.ReadFile(opts.inputFile)
	if err != nil {
		return err
	}

	s := NewSpinner()
	s.Prefix = "Converting "
	s.FinalMSG = fmt.Sprintf("Generated %s\n", opts.outputFile)
	s.Start()
	defer s.Stop()

	flatMesh, err := mesh.LoadGLB(glbData)
	if err != nil {
		return err
	}
	if opts.optimize {
		flatMesh = mesh.Normalize(flatMesh)
	}

	artifact, err := mesh.Export(flatMesh, format)
	if err != nil {
		return err
	}

	return os.WriteFile(opts.outputFile, artifact.Data, 0o644)
}
