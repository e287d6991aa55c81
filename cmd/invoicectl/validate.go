// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package main

import (
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"
	"gopkg.in/yaml.v3"

	"github.com/danielhkuo/invoice-entry/form"
)

var errDraftInvalid = errors.New("draft has validation errors")

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate FILE",
		Short: "Check a draft file (.json, .yaml or .yml)",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			values, err := readDraft(args[0])
			if err != nil {
				return err
			}

			errs := form.Validate(values)
			out := cmd.OutOrStdout()
			if len(errs) == 0 {
				fmt.Fprintln(out, "OK")
				return nil
			}

			for _, f := range form.Fields() {
				if msg, ok := errs[f]; ok {
					fmt.Fprintf(out, "%s: %s\n", f, msg)
				}
			}
			return fmt.Errorf("%w: %d", errDraftInvalid, len(errs))
		},
	}
}

// readDraft decodes a draft by file extension. Missing keys stay empty.
func readDraft(path string) (form.Values, error) {
	var values form.Values

	data, err := os.ReadFile(path)
	if err != nil {
		return values, err
	}

	switch ext := strings.ToLower(filepath.Ext(path)); ext {
	case ".json":
		err = json.Unmarshal(data, &values)
	case ".yaml", ".yml":
		err = yaml.Unmarshal(data, &values)
	default:
		return values, fmt.Errorf("unsupported draft format %q", ext)
	}
	if err != nil {
		return values, fmt.Errorf("failed to parse %s: %w", path, err)
	}
	return values, nil
}
