// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lz77

package lz77

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrTruncatedLiteral is returned when a literal run declares more payload than the input holds.
	ErrTruncatedLiteral = errors.New("truncated literal run")
	// ErrTruncatedMatch is returned when the input ends inside a back-reference token.
	ErrTruncatedMatch = errors.New("truncated back-reference")
	// ErrOffsetOutOfRange is returned when a back-reference points before the start of the output.
	ErrOffsetOutOfRange = errors.New("back-reference offset out of range")
	// ErrMalformedControlByte is returned when a control byte selects no known token category.
	ErrMalformedControlByte = errors.New("malformed control byte")
	// ErrOutputTooLarge is returned when decoded output would exceed Options.MaxOutputSize.
	ErrOutputTooLarge = errors.New("output exceeds MaxOutputSize")
	// ErrNegativeOption is returned when Options holds a negative size.
	ErrNegativeOption = errors.New("option must be non-negative")
	// ErrInternal is returned when the match resolver hits an internal invariant violation.
	ErrInternal = errors.New("internal decoder error")

	ErrNilReader = errors.New("reader is nil")
	ErrNilWriter = errors.New("writer is nil")
)
