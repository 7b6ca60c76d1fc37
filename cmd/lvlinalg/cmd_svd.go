package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func svdCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "svd",
		Short: "Singular value decomposition of the demo matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := demoA()
			fmt.Print(formatDense("A", a))

			res, err := decomp.SVD(a)
			if err != nil {
				return err
			}

			// Reconstruct UΣVᵀ and report the residual against A.
			us, err := matrix.Mul(res.U, res.Sigma)
			if err != nil {
				return err
			}
			vt, err := matrix.Transpose(res.V)
			if err != nil {
				return err
			}
			recon, err := matrix.Mul(us, vt)
			if err != nil {
				return err
			}
			diff, err := matrix.Sub(a, recon)
			if err != nil {
				return err
			}
			residual, err := matrix.FrobeniusNorm(diff)
			if err != nil {
				return err
			}
			log.Debug().Float64("residual_fro", residual).Msg("A − UΣVᵀ residual")

			fmt.Print(formatDense("U", res.U))
			fmt.Print(formatDense("Sigma", res.Sigma))
			fmt.Print(formatDense("V", res.V))
			fmt.Println(formatVec("singular values", res.SingularValues()))
			return nil
		},
	}
}
