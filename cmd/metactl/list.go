/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/voedger/objmeta/pkg/meta"
	"github.com/voedger/objmeta/pkg/metadoc"
)

func newListCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "list",
		Short: "Lists stored modules",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			out := cmd.OutOrStdout()
			return w.storage.Read(cmd.Context(), func(moduleID string, data []byte) error {
				kind, name := describeDocument(data)
				_, err := fmt.Fprintf(out, "%-10s %-24s %s\n", kind, name, moduleID)
				return err
			})
		},
	}
}

// Returns kind and name of stored document
func describeDocument(data []byte) (kind, name string) {
	doc, err := metadoc.Parse(data, metadoc.Format_JSON)
	if err != nil {
		return "broken", "-"
	}
	kind, key := "descriptor", meta.Key_Name
	if metadoc.IsModelDocument(doc) {
		kind, key = "model", meta.Key_ModelName
	}
	v, _ := doc.GetProperty(key)
	name, _ = v.(string)
	if name == "" {
		name = "-"
	}
	return kind, name
}
