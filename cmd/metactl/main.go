/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	_ "embed"
	"io"
	"os"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/cobrau"
	"github.com/untillpro/goutils/logger"
)

//go:embed version
var version string

// path to config file (flag --config)
var configFile string

// storage kind (flag --store)
var storeKind string

// storage directory and file (flags --db-dir, --db-name)
var dbDir, dbName string

// output format of inspect (flag --format)
var outputFormat string

// commands output
var stdout io.Writer = os.Stdout

func main() {
	if err := execRootCmd(os.Args, version); err != nil {
		logger.Error(err)
		os.Exit(1)
	}
}

func execRootCmd(args []string, ver string) error {
	rootCmd := cobrau.PrepareRootCmd(
		"metactl",
		"Object descriptors store utility",
		args,
		ver,
		newImportCmd(),
		newListCmd(),
		newInspectCmd(),
		newValidateCmd(),
		newDeleteCmd(),
		newWatchCmd(),
	)

	rootCmd.SetOut(stdout)
	rootCmd.PersistentFlags().StringVar(&configFile, "config", "", "Path to YAML config file")
	rootCmd.PersistentFlags().StringVar(&storeKind, "store", "", "Storage kind: "+storeKind_BBolt+" or "+storeKind_Mem)
	rootCmd.PersistentFlags().StringVar(&dbDir, "db-dir", "", "Storage directory")
	rootCmd.PersistentFlags().StringVar(&dbName, "db-name", "", "Storage file name")

	return cobrau.ExecCommandAndCatchInterrupt(rootCmd)
}

func flagChanged(cmd *cobra.Command, name string) bool {
	f := cmd.Flags().Lookup(name)
	return f != nil && f.Changed
}
