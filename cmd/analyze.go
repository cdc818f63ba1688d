package cmd

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	"go-krushivishwa/models"
	"go-krushivishwa/services"
	"go-krushivishwa/utils"
)

// analyzeFlags 命令行参数与检测指标的对应关系
var analyzeFlags = []struct {
	name  string
	param models.SoilParameter
	usage string
}{
	{"ph", models.ParamPH, "Soil pH (0-14)"},
	{"nitrogen", models.ParamNitrogen, "Nitrogen in ppm"},
	{"phosphorus", models.ParamPhosphorus, "Phosphorus in ppm"},
	{"potassium", models.ParamPotassium, "Potassium in ppm"},
	{"organic-matter", models.ParamOrganicMatter, "Organic matter in percent"},
	{"moisture", models.ParamSoilMoisture, "Soil moisture in percent"},
}

func newAnalyzeCmd() *cobra.Command {
	var format string

	cmd := &cobra.Command{
		Use:   "analyze",
		Short: "Score a soil sample from the command line",
		Long: `Score a soil sample without starting the server.

Only the flags that are given count as measured; the rest are treated as
not tested. Output is the analysis report as JSON, or an export file when
--format is json or csv.`,
		Example: `  krushi analyze --ph 7.8 --nitrogen 25 --moisture 65
  krushi analyze --ph 6.5 --format csv`,
		RunE: func(cmd *cobra.Command, args []string) error {
			sample, err := sampleFromFlags(cmd.Flags())
			if err != nil {
				return err
			}
			report := services.AnalyzeSoil(sample)

			out := cmd.OutOrStdout()
			if format == "" {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(report)
			}

			id, err := utils.GenerateReportID()
			if err != nil {
				return err
			}
			file, err := services.ExportReport(report, format, id, time.Now())
			if err != nil {
				return err
			}
			_, err = out.Write(file.Body)
			return err
		},
	}

	for _, f := range analyzeFlags {
		cmd.Flags().Float64(f.name, 0, f.usage)
	}
	cmd.Flags().StringVarP(&format, "format", "f", "", "Export format (json|csv); empty prints the report")
	return cmd
}

func sampleFromFlags(flags *pflag.FlagSet) (models.SoilSample, error) {
	var sample models.SoilSample
	for _, f := range analyzeFlags {
		if !flags.Changed(f.name) {
			continue
		}
		v, err := flags.GetFloat64(f.name)
		if err != nil {
			return sample, err
		}
		sample.Set(f.param, v)
	}
	if sample.IsEmpty() {
		return sample, fmt.Errorf("%w (use --ph, --nitrogen, --phosphorus, --potassium, --organic-matter or --moisture)", services.ErrEmptySample)
	}
	return sample, nil
}
