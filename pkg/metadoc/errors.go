/*
 * Copyright (c) 2026-present unTill Software Development Group B.V.
 */

package metadoc

import (
	"errors"
	"fmt"
)

var ErrUnknownFormat = errors.New("unknown document format")

func ErrUnknownFormatFor(name string) error {
	return fmt.Errorf("%w: «%s»", ErrUnknownFormat, name)
}

var ErrInvalidDocument = errors.New("invalid document")
