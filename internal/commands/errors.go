// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package commands

import (
	"errors"
	"fmt"
)

var (
	// ErrNotFound is returned for unknown command names, ids and arguments.
	ErrNotFound = errors.New("not found")

	// ErrNoArguments is returned when trailing text is given to a command
	// that accepts no arguments.
	ErrNoArguments = errors.New("command does not accept arguments")

	// ErrMalformedDefinition is returned when trailing text yields no argument.
	ErrMalformedDefinition = errors.New("malformed definition")

	// ErrInvalidValue is returned when a value fails type conversion.
	// It never aborts a definition; only the offending argument is dropped.
	ErrInvalidValue = errors.New("invalid value")
)

// ParseError describes why a definition could not be resolved.
type ParseError struct {
	Definition string
	Reason     string
	Err        error
}

func (e *ParseError) Error() string {
	msg := fmt.Sprintf("parse %q", e.Definition)
	if e.Reason != "" {
		msg += ": " + e.Reason
	}
	if e.Err != nil {
		msg += ": " + e.Err.Error()
	}
	return msg
}

func (e *ParseError) Unwrap() error {
	return e.Err
}
