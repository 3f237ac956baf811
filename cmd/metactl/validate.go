/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"fmt"
	"maps"
	"os"
	"path/filepath"
	"slices"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metadoc"
)

func newValidateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "validate <moduleID> <instance.json|instance.yaml>",
		Short: "Validates instance values against rules of object descriptor",
		Args:  cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			d, err := loadObjectDescriptor(cmd.Context(), w, args[0])
			if err != nil {
				return err
			}
			values, err := readInstanceValues(args[1])
			if err != nil {
				return err
			}

			messages, err := validateValues(cmd.Context(), d, values)
			if err != nil {
				return err
			}
			out := cmd.OutOrStdout()
			for _, m := range messages {
				fmt.Fprintln(out, m)
			}
			if len(messages) > 0 {
				return fmt.Errorf("%w: %d message(s)", ErrValidationFailed, len(messages))
			}
			logger.Info(d.Name(), "instance", args[1], "is valid")
			return nil
		},
	}
}

func readInstanceValues(path string) (map[string]any, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, err
	}
	doc, err := metadoc.ParseFile(filepath.Base(path), data)
	if err != nil {
		return nil, err
	}
	return doc.Map(), nil
}

// Creates instance of descriptor with values and evaluates own and inherited rules.
//
// Returns message keys of fired rules, followed by messages for read only values.
func validateValues(ctx context.Context, d *meta.ObjectDescriptor, values map[string]any) ([]string, error) {
	instance, err := d.NewInstance(ctx)
	if err != nil {
		return nil, err
	}

	readOnly := []string{}
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if err := instance.Set(name, values[name]); err != nil {
			readOnly = append(readOnly, name+": "+err.Error())
		}
	}

	messages := []string{}
	evaluated := map[string]bool{}
	for _, r := range d.PropertyValidationRules() {
		// own rule hides inherited one with the same name
		if evaluated[r.Name()] {
			continue
		}
		evaluated[r.Name()] = true
		if r.EvaluateRule(instance) {
			messages = append(messages, r.MessageKey())
		}
	}
	return append(messages, readOnly...), nil
}
