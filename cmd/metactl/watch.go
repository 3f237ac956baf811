/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"context"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"
	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"

	"github.com/voedger/objmeta/pkg/metadoc"
	"github.com/voedger/objmeta/pkg/metastore"
)

func newWatchCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "watch <dir>",
		Short: "Imports documents of directory and re-imports them on change until interrupted",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			w, err := openWorkspace(cmd)
			if err != nil {
				return err
			}
			defer w.close()

			return watchDir(cmd.Context(), w.storage, args[0], nil)
		},
	}
}

// Imports documents of dir, then watches dir and imports created or written documents.
//
// Returns when ctx is done. Import errors are logged. onImport, if not nil, is called for every imported document.
func watchDir(ctx context.Context, storage metastore.IDocStorage, dir string, onImport func(moduleID string)) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	if err := watcher.Add(dir); err != nil {
		return err
	}

	imp := func(path string) {
		if _, err := metadoc.FormatByName(path); err != nil {
			return
		}
		moduleID, err := importFile(storage, path)
		if err != nil {
			logger.Error(err)
			return
		}
		if onImport != nil {
			onImport(moduleID)
		}
	}

	entries, err := os.ReadDir(dir)
	if err != nil {
		return err
	}
	for _, e := range entries {
		if !e.IsDir() {
			imp(filepath.Join(dir, e.Name()))
		}
	}
	logger.Info("watching", dir)

	for {
		select {
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			// atomic save is create
			if event.Op&(fsnotify.Write|fsnotify.Create) != 0 {
				if logger.IsVerbose() {
					logger.Verbose(event.Op.String(), event.Name)
				}
				imp(event.Name)
			}
		case err, ok := <-watcher.Errors:
			if !ok {
				return nil
			}
			logger.Error("watcher:", err)
		case <-ctx.Done():
			return nil
		}
	}
}
