package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func luCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "lu",
		Short: "LU factorization with partial pivoting of the demo matrix",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := demoA()
			fmt.Print(formatDense("A", a))

			res, err := decomp.LU(a)
			if err != nil {
				return err
			}

			// Residual ‖PA − LU‖F verifies the factorization end to end.
			pa, err := matrix.Mul(res.P, a)
			if err != nil {
				return err
			}
			lu, err := matrix.Mul(res.L, res.U)
			if err != nil {
				return err
			}
			diff, err := matrix.Sub(pa, lu)
			if err != nil {
				return err
			}
			residual, err := matrix.FrobeniusNorm(diff)
			if err != nil {
				return err
			}
			log.Debug().Int("swaps", res.SwapCount).
				Float64("residual_fro", residual).
				Msg("PA − LU residual")

			fmt.Print(formatDense("P", res.P))
			fmt.Print(formatDense("L", res.L))
			fmt.Print(formatDense("U", res.U))
			fmt.Printf("row swaps = %d\n", res.SwapCount)
			return nil
		},
	}
}
