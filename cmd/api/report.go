package main

import (
	"bytes"
	"fmt"
	"strings"
	"time"

	"pet-exercise-tracker/internal/domain/reports"
	"pet-exercise-tracker/internal/platform/civil"

	"github.com/spf13/cobra"
)

const formatText = "text"

var (
	reportPetID  string
	reportFrom   string
	reportTo     string
	reportFormat string
	reportOut    string
)

var reportCmd = &cobra.Command{
	Use:   "report",
	Short: "Genera el reporte de una mascota (texto, json, csv, xlsx o html)",
	Example: `  pettrack report --pet 6c1f... --from 2025-03-01 --to 2025-03-31
  pettrack report --pet 6c1f... --format xlsx --out marzo.xlsx`,
	Args: cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		ctx := cmd.Context()

		from, err := optionalDate("--from", reportFrom)
		if err != nil {
			return err
		}
		to, err := optionalDate("--to", reportTo)
		if err != nil {
			return err
		}

		format := strings.ToLower(strings.TrimSpace(reportFormat))
		var f reports.Format
		if format != formatText {
			if f, err = reports.ParseFormat(format); err != nil {
				return err
			}
		}

		svcs, repos, err := openServices(ctx)
		if err != nil {
			return err
		}
		defer repos.Close()

		rep, err := svcs.Reports.Build(ctx, reportPetID, from, to)
		if err != nil {
			return err
		}

		var buf bytes.Buffer
		if format == formatText {
			buf.WriteString(renderText(rep))
		} else if err := reports.Render(&buf, rep, f); err != nil {
			return err
		}

		out := reportOut
		if out == "" && f.Attachment() {
			out = reports.Filename(rep, f)
		}
		if err := writeOutput(cmd, out, buf.Bytes()); err != nil {
			return err
		}
		if out != "" && out != "-" {
			log.Info("report written", map[string]any{"path": out, "format": format})
		}
		return nil
	},
}

func init() {
	reportCmd.Flags().StringVar(&reportPetID, "pet", "", "id de la mascota")
	reportCmd.Flags().StringVar(&reportFrom, "from", "", "YYYY-MM-DD (por defecto 30 días antes de --to)")
	reportCmd.Flags().StringVar(&reportTo, "to", "", "YYYY-MM-DD (por defecto hoy)")
	reportCmd.Flags().StringVar(&reportFormat, "format", formatText, "text | json | csv | xlsx | html")
	reportCmd.Flags().StringVarP(&reportOut, "out", "o", "", `archivo destino ("-" = stdout; csv/xlsx usan un nombre sugerido)`)
	_ = reportCmd.MarkFlagRequired("pet")
}

func optionalDate(flag, v string) (time.Time, error) {
	v = strings.TrimSpace(v)
	if v == "" {
		return time.Time{}, nil
	}
	d, err := civil.ParseDate(v)
	if err != nil {
		return time.Time{}, fmt.Errorf("%s must be YYYY-MM-DD", flag)
	}
	return d, nil
}
