/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package meta

import (
	"errors"
	"fmt"
)

func EnrichError(err error, msg string, args ...any) error {
	s := msg
	if len(args) > 0 {
		s = fmt.Sprintf(msg, args...)
	}
	return fmt.Errorf("%w: %s", err, s)
}

var ErrNotFoundError = errors.New("not found")

func ErrNotFound(msg string, args ...any) error {
	return EnrichError(ErrNotFoundError, msg, args...)
}

var ErrInvalidError = errors.New("not valid")

func ErrInvalid(msg string, args ...any) error {
	return EnrichError(ErrInvalidError, msg, args...)
}

var ErrExportNotFound = errors.New("module export not found")

func ErrExportMissed(moduleID, export string) error {
	return EnrichError(ErrExportNotFound, "cannot find «%s» in module «%s»", export, moduleID)
}

var ErrUnexpectedExport = errors.New("unexpected module export")

func ErrUnexpectedExportType(moduleID, export string, v any) error {
	return EnrichError(ErrUnexpectedExport, "«%s» in module «%s» is %T", export, moduleID, v)
}

var ErrNoModuleLoader = errors.New("no module loader")

var ErrParentCycle = errors.New("parent cycle")

func ErrParentCycleDetected(d, parent string) error {
	return EnrichError(ErrParentCycle, "«%s» can not inherit «%s»", d, parent)
}

var ErrPrototypeMismatch = errors.New("prototype mismatch")

var ErrReadOnly = errors.New("read only")

func ErrReadOnlyProperty(name string) error {
	return EnrichError(ErrReadOnly, "property «%s»", name)
}
