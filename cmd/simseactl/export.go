package main

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/spf13/cobra"

	"simsea/internal/config"
	"simsea/internal/export"
	"simsea/internal/interfaces"
	"simsea/internal/repository"
	"simsea/internal/services"
)

// exportFilename stamps the export with the day it was taken, keeping the
// .csv extension for a spreadsheet that fell back to CSV.
func exportFilename(res *export.Result, now time.Time) string {
	ext := filepath.Ext(res.Filename)
	base := res.Filename[:len(res.Filename)-len(ext)]
	if res.Fallback() {
		ext = ".csv"
	}
	return fmt.Sprintf("%s_%s%s", base, now.Format("20060102_150405"), ext)
}

func newExportCmd() *cobra.Command {
	var (
		format  string
		outDir  string
		publish bool
		filter  interfaces.RecordFilter
	)

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write all matching records to a CSV or xlsx file",
		RunE: func(cmd *cobra.Command, args []string) error {
			f, err := export.ParseFormat(format)
			if err != nil {
				return err
			}

			a, err := openApp(cmd.Context())
			if err != nil {
				return err
			}
			defer a.Close()

			records, err := repository.NewRecordRepository(a.database.DB, a.retry).List(cmd.Context(), filter)
			if err != nil {
				return err
			}
			res, err := export.NewExporter(a.cfg.XLSXEnabled, a.logger).Export(records, f)
			if err != nil {
				return err
			}

			if outDir == "" {
				outDir = a.cfg.DataDir
			}
			if err := os.MkdirAll(outDir, 0o755); err != nil {
				return fmt.Errorf("create %s: %w", outDir, err)
			}
			path := filepath.Join(outDir, exportFilename(res, time.Now()))
			if err := os.WriteFile(path, res.Data, 0o644); err != nil {
				return fmt.Errorf("write export: %w", err)
			}
			if res.Fallback() {
				a.logger.Warn("spreadsheet output unavailable, wrote CSV instead")
			}
			fmt.Fprintf(cmd.OutOrStdout(), "wrote %d records to %s\n", len(records), path)

			if !publish {
				return nil
			}
			s3Config, err := config.NewS3Config(cmd.Context(), a.cfg)
			if err != nil {
				return err
			}
			published, err := services.NewExportPublisher(s3Config).Publish(cmd.Context(), res)
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "published s3://%s/%s\n", published.Bucket, published.Key)
			return nil
		},
	}

	cmd.Flags().StringVar(&format, "format", string(export.FormatXLSX), "csv or xlsx")
	cmd.Flags().StringVar(&outDir, "out", "", "output directory (default SIMSEA_DATA_DIR)")
	cmd.Flags().BoolVar(&publish, "publish", false, "also upload the export to S3")
	cmd.Flags().StringVar(&filter.People, "people", "", "people / nationality contains")
	cmd.Flags().StringVar(&filter.Country, "country", "", "exact country")
	cmd.Flags().StringVar(&filter.CreatedBy, "created-by", "", "creator contains")
	return cmd
}
