// SPDX-License-Identifier: MIT

package xformdoc

import "errors"

var (
	// ErrUnsupportedVersion indicates a document version newer than CurrentVersion.
	ErrUnsupportedVersion = errors.New("xformdoc: unsupported document version")

	// ErrEmptyName indicates a transform without a name.
	ErrEmptyName = errors.New("xformdoc: transform name is empty")

	// ErrDuplicateName indicates two transforms sharing a name.
	ErrDuplicateName = errors.New("xformdoc: duplicate transform name")

	// ErrBadStep indicates a step with zero or several operations set.
	ErrBadStep = errors.New("xformdoc: step must set exactly one operation")

	// ErrBadLength indicates a component list of the wrong length.
	ErrBadLength = errors.New("xformdoc: wrong number of components")
)
