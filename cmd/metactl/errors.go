/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package main

import "errors"

var (
	ErrUnknownStoreKind  = errors.New("unknown store kind")
	ErrUnknownLogLevel   = errors.New("unknown log level")
	ErrModuleIsNotObject = errors.New("module does not export object descriptor")
	ErrValidationFailed  = errors.New("validation failed")
	ErrNothingDeleted    = errors.New("module has no document")
)
