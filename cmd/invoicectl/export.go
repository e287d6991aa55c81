// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"fmt"
	"io"
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/xuri/excelize/v2"

	"github.com/danielhkuo/invoice-entry/form"
	"github.com/danielhkuo/invoice-entry/storage"
)

const exportSheet = "Invoices"

func newExportCmd(flags *dbFlags) *cobra.Command {
	var out string

	cmd := &cobra.Command{
		Use:   "export",
		Short: "Write submitted invoices to an XLSX file",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			conn, err := flags.open()
			if err != nil {
				return err
			}
			defer conn.Close()

			subs, err := storage.NewSubmissions(conn).List(cmd.Context())
			if err != nil {
				return err
			}

			f, err := os.Create(out)
			if err != nil {
				return err
			}
			if err := writeWorkbook(f, subs); err != nil {
				f.Close()
				return err
			}
			if err := f.Close(); err != nil {
				return err
			}

			fmt.Fprintf(cmd.OutOrStdout(), "Exported %d invoices to %s\n", len(subs), out)
			return nil
		},
	}

	cmd.Flags().StringVarP(&out, "out", "o", "invoices.xlsx", "Output file")
	return cmd
}

// writeWorkbook writes one header row and one row per submission, oldest
// first. Columns are the submission metadata followed by every form field.
func writeWorkbook(w io.Writer, subs []storage.Submission) error {
	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName("Sheet1", exportSheet); err != nil {
		return err
	}

	header := []interface{}{"ID", "Username", "Submitted At"}
	for _, field := range form.Fields() {
		header = append(header, form.Label(field))
	}
	if err := f.SetSheetRow(exportSheet, "A1", &header); err != nil {
		return err
	}

	for i, sub := range subs {
		var values form.Values
		if err := json.Unmarshal(sub.Payload, &values); err != nil {
			return fmt.Errorf("submission %s: %w", sub.ID, err)
		}

		row := []interface{}{sub.ID, sub.Username, sub.SubmittedAt.Format(time.RFC3339)}
		for _, field := range form.Fields() {
			v, _ := values.Get(field)
			row = append(row, v)
		}

		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := f.SetSheetRow(exportSheet, cell, &row); err != nil {
			return err
		}
	}

	return f.Write(w)
}
