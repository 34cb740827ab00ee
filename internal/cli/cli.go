package cli

import (
	"os"

	"github.com/spf13/cobra"
)

func Execute() {
	rootCmd := &cobra.Command{
		Use:   "meshconv",
		Short: "GLB to STL/OBJ conversion service",
	}

	rootCmd.AddCommand(ServeAppCommand(), ConvertCommand())

	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
