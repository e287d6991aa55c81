// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"database/sql"
	"os"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/invoice-entry/cliparse"
	"github.com/danielhkuo/invoice-entry/db"
)

// dbFlags are shared by the commands that open the database.
type dbFlags struct {
	url    string
	dbType string
}

func (f *dbFlags) open() (*sql.DB, error) {
	conn, err := db.Open(f.dbType, f.url)
	if err != nil {
		return nil, err
	}
	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		return nil, err
	}
	return conn, nil
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}

func newRootCmd() *cobra.Command {
	flags := &dbFlags{}

	root := &cobra.Command{
		Use:   "invoicectl",
		Short: "Manage invoice-entry data from the command line",
		Long: `invoicectl works against the same database as the invoice-entry server.

  invoicectl export --out invoices.xlsx   # submitted invoices as a spreadsheet
  invoicectl validate draft.yaml          # check a draft without the server
  invoicectl login demo demo123           # try a demo account`,
		SilenceUsage:  true,
		SilenceErrors: true,
	}

	root.PersistentFlags().StringVarP(&flags.url, "database-url", "d",
		envOr("DATABASE_URL", cliparse.DefaultDatabaseURL), "Database URL")
	root.PersistentFlags().StringVarP(&flags.dbType, "database-type", "t",
		envOr("DATABASE_TYPE", db.TypeSQLite), "Database type (sqlite or postgres)")

	root.AddCommand(
		newExportCmd(flags),
		newValidateCmd(),
		newLoginCmd(),
	)
	return root
}
