package main

import (
	"fmt"

	"github.com/rs/zerolog/log"
	"github.com/spf13/cobra"
	"gonum.org/v1/plot"
	"gonum.org/v1/plot/plotter"
	"gonum.org/v1/plot/vg"

	"github.com/katalvlaran/lvlinalg/decomp"
	"github.com/katalvlaran/lvlinalg/matrix"
)

func pcaCmd() *cobra.Command {
	var plotFile string

	cmd := &cobra.Command{
		Use:   "pca",
		Short: "Principal component analysis of the 10×3 sample dataset",
		RunE: func(cmd *cobra.Command, args []string) error {
			x := sampleX()
			fmt.Print(formatDense("X", x))

			res, err := decomp.PCA(x, 2)
			if err != nil {
				return err
			}

			log.Debug().Floats64("mean", res.Mean).
				Floats64("explained_variance_ratio", res.ExplainedVarianceRatio).
				Msg("PCA fitted")

			fmt.Println(formatVec("mean", res.Mean))
			fmt.Print(formatDense("components", res.Components))
			fmt.Println(formatVec("explained variance ratio", res.ExplainedVarianceRatio))
			fmt.Print(formatDense("projected", res.Projected))

			if plotFile != "" {
				if err := scatterPlot(res.Projected, plotFile); err != nil {
					return err
				}
				log.Info().Str("file", plotFile).Msg("scatter written")
			}
			return nil
		},
	}
	cmd.Flags().StringVar(&plotFile, "plot", "", "write a scatter of the 2-D projection to this file (.png/.svg/.pdf)")
	return cmd
}

// scatterPlot renders the first two columns of z as a scatter chart.
func scatterPlot(z *matrix.Dense, file string) error {
	pts := make(plotter.XYs, z.Rows())
	for i := range pts {
		x, err := z.At(i, 0)
		if err != nil {
			return err
		}
		y, err := z.At(i, 1)
		if err != nil {
			return err
		}
		pts[i].X, pts[i].Y = x, y
	}

	p := plot.New()
	p.Title.Text = "PCA projection"
	p.X.Label.Text = "PC1"
	p.Y.Label.Text = "PC2"

	sc, err := plotter.NewScatter(pts)
	if err != nil {
		return err
	}
	p.Add(sc, plotter.NewGrid())

	return p.Save(6*vg.Inch, 6*vg.Inch, file)
}
