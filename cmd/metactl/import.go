/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/metastore"
)

func newImportCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "import <file.yaml|file.json>...",
		Short: "Imports object descriptor and model documents into the store",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			for _, path := range args {
				moduleID, err := importFile(w.storage, path)
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), moduleID)
			}
			return nil
		},
	}
}

// Imports file into storage, returns stored module ID
func importFile(storage metastore.IDocStorage, path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", err
	}
	moduleID, err := metastore.ImportDocument(storage, filepath.Base(path), data)
	if err != nil {
		return "", fmt.Errorf("import «%s»: %w", path, err)
	}
	logger.Info("imported", path, "as module", moduleID)
	return moduleID, nil
}
