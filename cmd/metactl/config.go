/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import (
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/spf13/cobra"
	"github.com/untillpro/goutils/logger"
	"gopkg.in/yaml.v3"

	"github.com/voedger/objmeta/pkg/metaref"
	"github.com/voedger/objmeta/pkg/metastore"
)

type config struct {
	Store     string `yaml:"store"`
	DBDir     string `yaml:"dbDir"`
	DBName    string `yaml:"dbName"`
	LogLevel  string `yaml:"logLevel"`
	CacheSize int    `yaml:"cacheSize"`
	Workers   int    `yaml:"workers"`
}

func defaultConfig() config {
	return config{
		Store:     storeKind_BBolt,
		DBDir:     defaultDBDir,
		DBName:    metastore.DefaultDBName,
		CacheSize: metaref.DefaultCacheSize,
		Workers:   metaref.DefaultWorkers,
	}
}

// Reads config file and applies flags over it.
//
// Config file is --config value or metactl.yaml in current directory if exists.
func loadConfig(cmd *cobra.Command) (cfg config, err error) {
	cfg = defaultConfig()

	path, explicit := configFile, configFile != ""
	if !explicit {
		path = defaultConfigName
	}
	data, err := os.ReadFile(path)
	switch {
	case err == nil:
		if err := yaml.Unmarshal(data, &cfg); err != nil {
			return cfg, fmt.Errorf("config «%s»: %w", path, err)
		}
		logger.Verbose("config loaded:", path)
	case explicit || !errors.Is(err, os.ErrNotExist):
		return cfg, err
	}

	if flagChanged(cmd, "store") {
		cfg.Store = storeKind
	}
	if flagChanged(cmd, "db-dir") {
		cfg.DBDir = dbDir
	}
	if flagChanged(cmd, "db-name") {
		cfg.DBName = dbName
	}

	// log level flags of the root command have priority
	if cfg.LogLevel != "" && !flagChanged(cmd, "verbose") && !flagChanged(cmd, "trace") {
		level, err := logLevelByName(cfg.LogLevel)
		if err != nil {
			return cfg, err
		}
		logger.SetLogLevel(level)
	}
	return cfg, nil
}

func logLevelByName(name string) (logger.TLogLevel, error) {
	switch strings.ToLower(name) {
	case "none":
		return logger.LogLevelNone, nil
	case "error":
		return logger.LogLevelError, nil
	case "warning":
		return logger.LogLevelWarning, nil
	case "info":
		return logger.LogLevelInfo, nil
	case "verbose":
		return logger.LogLevelVerbose, nil
	case "trace":
		return logger.LogLevelTrace, nil
	}
	return logger.LogLevelNone, fmt.Errorf("%w: «%s»", ErrUnknownLogLevel, name)
}
