package main

import (
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// Execute builds the command tree and runs it. Each subcommand drives one
// decomposition over the fixed demo matrices defined in fixtures.go.
func Execute() error {
	var verbose bool

	root := &cobra.Command{
		Use:   "lvlinalg",
		Short: "Dense linear algebra demos: determinant, LU, Jacobi eigen, SVD, PCA",
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if verbose {
				zerolog.SetGlobalLevel(zerolog.DebugLevel)
			}
		},
	}
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug diagnostics (iterations, residuals)")

	root.AddCommand(detCmd())
	root.AddCommand(luCmd())
	root.AddCommand(eigenCmd())
	root.AddCommand(svdCmd())
	root.AddCommand(pcaCmd())

	return root.Execute()
}
