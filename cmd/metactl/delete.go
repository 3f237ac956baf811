/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"fmt"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
)

func newDeleteCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "delete <moduleID>...",
		Short: "Deletes stored modules",
		Args:  cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			for _, moduleID := range args {
				ok, err := w.storage.Delete(moduleID)
				if err != nil {
					return err
				}
				if !ok {
					return fmt.Errorf("%w: «%s»", ErrNothingDeleted, moduleID)
				}
				logger.Info("module", moduleID, "deleted")
			}
			return nil
		},
	}
}
