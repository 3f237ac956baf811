/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

const (
	storeKind_BBolt = "bbolt"
	storeKind_Mem   = "mem"
)

const (
	defaultDBDir      = ".objmeta"
	defaultConfigName = "metactl.yaml"
)

const (
	format_YAML = "yaml"
	format_JSON = "json"
)
