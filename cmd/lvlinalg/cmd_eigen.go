package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func eigenCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "eigen",
		Short: "Jacobi eigendecomposition of the symmetric demo matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			b := demoB()
			fmt.Print(formatDense("B", b))

			res, err := decomp.JacobiEigen(b)
			if err != nil {
				return err
			}
			res, err = decomp.SortEigenDesc(res)
			if err != nil {
				return err
			}

			offDiag, err := matrix.OffDiagNorm(b)
			if err != nil {
				return err
			}
			log.Debug().Int("iterations", res.Iterations).
				Bool("converged", res.Converged).
				Float64("offdiag_start", offDiag).
				Msg("Jacobi sweep finished")

			fmt.Println(formatVec("eigenvalues", res.Values))
			fmt.Print(formatDense("Q", res.Vectors))
			fmt.Printf("converged = %t after %d rotations\n", res.Converged, res.Iterations)
			return nil
		},
	}
}
