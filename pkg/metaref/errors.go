/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metaref

import (
	"errors"

	"github.com/voedger/objmeta/pkg/meta"
)

var ErrReferenceCycle = errors.New("reference cycle")

func ErrReferenceCycleDetected(ref string) error {
	return meta.EnrichError(ErrReferenceCycle, "«%s» is already being resolved", ref)
}

var ErrModuleNotFound = errors.New("module not found")

func ErrModuleMissed(moduleID string) error {
	return meta.EnrichError(ErrModuleNotFound, "«%s»", moduleID)
}
