// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/danielhkuo/invoice-entry/auth"
)

func newLoginCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "login USERNAME PASSWORD",
		Short: "Check a username and password against the demo accounts",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			fieldErrs, err := auth.Login(args[0], args[1])
			for _, name := range []string{"username", "password"} {
				if msg, ok := fieldErrs[name]; ok {
					fmt.Fprintln(cmd.OutOrStdout(), msg)
				}
			}
			if len(fieldErrs) > 0 {
				return errors.New("login form incomplete")
			}
			if err != nil {
				return err
			}
			fmt.Fprintf(cmd.OutOrStdout(), "Credentials accepted for %s\n", args[0])
			return nil
		},
	}
}
