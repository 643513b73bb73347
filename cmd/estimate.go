package main

import (
	"fmt"
	"text/tabwriter"

	"github.com/spf13/cobra"

	"github.com/m04kA/SMC-InteriorStudio/internal/domain"
	estimatePriceUC "github.com/m04kA/SMC-InteriorStudio/internal/usecase/estimate_price"
	"github.com/m04kA/SMC-InteriorStudio/pkg/logger"
	"github.com/m04kA/SMC-InteriorStudio/pkg/metrics"
)

var estimateFlags struct {
	area       int
	complexity string
	material   string
	lighting   bool
}

var estimateCmd = &cobra.Command{
	Use:   "estimate",
	Short: "Print a price estimate with its breakdown",
	Example: `  studio estimate --area 250 --complexity complex --material luxury
  studio estimate --area 80 --lighting=false`,
	RunE: func(cmd *cobra.Command, args []string) error {
		uc := estimatePriceUC.NewUseCase((*metrics.Metrics)(nil), logger.Nop())

		result, err := uc.Execute(cmd.Context(), &estimatePriceUC.Request{
			Area:       &estimateFlags.area,
			Complexity: &estimateFlags.complexity,
			Material:   &estimateFlags.material,
			Lighting:   &estimateFlags.lighting,
		})
		if err != nil {
			return err
		}

		tw := tabwriter.NewWriter(cmd.OutOrStdout(), 0, 0, 2, ' ', 0)
		fmt.Fprintf(tw, "Area\t%d sq ft\n", result.Input.Area)
		fmt.Fprintf(tw, "Complexity\t%s\n", result.Input.Complexity)
		fmt.Fprintf(tw, "Material\t%s\n", result.Input.Material)
		fmt.Fprintf(tw, "Lighting\t%t\n", result.Input.Lighting)
		fmt.Fprintf(tw, "Base\t%s\n", domain.FormatPrice(int64(result.Breakdown.Base)))
		fmt.Fprintf(tw, "After complexity\t%s\n", domain.FormatPrice(int64(result.Breakdown.ComplexityAdjusted)))
		fmt.Fprintf(tw, "After materials\t%s\n", domain.FormatPrice(int64(result.Breakdown.MaterialAdjusted)))
		fmt.Fprintf(tw, "Lighting add-on\t%s\n", domain.FormatPrice(int64(result.Breakdown.LightingAddon)))
		fmt.Fprintf(tw, "Estimated total\t%s\n", domain.FormatPrice(result.Estimate))
		return tw.Flush()
	},
}

func init() {
	defaults := domain.DefaultCalculatorInput()

	estimateCmd.Flags().IntVar(&estimateFlags.area, "area", defaults.Area,
		fmt.Sprintf("Area in sq ft (%d-%d)", domain.MinArea, domain.MaxArea))
	estimateCmd.Flags().StringVar(&estimateFlags.complexity, "complexity", string(defaults.Complexity), "simple | medium | complex")
	estimateCmd.Flags().StringVar(&estimateFlags.material, "material", string(defaults.Material), "standard | premium | luxury")
	estimateCmd.Flags().BoolVar(&estimateFlags.lighting, "lighting", defaults.Lighting, "Include the lighting package")
}
