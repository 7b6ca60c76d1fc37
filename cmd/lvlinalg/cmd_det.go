package main

import (
	"fmt"
	"math"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"

	"github.com/katalvlaran/lvlinalg/decomp"
)

func detCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "det",
		Short: "Determinant of the demo matrix by cofactor expansion and via LU",
		RunE: func(cmd *cobra.Command, args []string) error {
			a := demoA()
			fmt.Print(formatDense("A", a))

			cofactor, err := decomp.Det(a)
			if err != nil {
				return err
			}
			viaLU, err := decomp.DetViaLU(a)
			if err != nil {
				return err
			}

			log.Debug().Float64("residual", math.Abs(cofactor-viaLU)).
				Msg("cofactor vs LU determinant")

			fmt.Printf("det (cofactor) = %.6f\n", cofactor)
			fmt.Printf("det (via LU)   = %.6f\n", viaLU)
			return nil
		},
	}
}
