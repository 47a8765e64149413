// SPDX-License-Identifier: MIT
// Copyright (c) 2026 Maxim Levchenko (WoozyMasta)
// Source: github.com/woozymasta/lzss-generic

package lzss

import "errors"

// Package errors. Use errors.New for static messages, fmt.Errorf when values are needed.
var (
	// ErrInvalidParams is returned when EI, EJ or P fall outside the supported range.
	ErrInvalidParams = errors.New("invalid lzss parameters")
	// ErrUnknownPreset is returned by LookupPreset for names not in Presets.
	ErrUnknownPreset = errors.New("unknown parameter preset")

	// ErrNilWindow is returned when a codec call gets a nil window.
	ErrNilWindow = errors.New("window is nil")
	// ErrWindowTooSmall is returned when the window buffer holds fewer than 2^EI bytes.
	ErrWindowTooSmall = errors.New("window buffer smaller than 2^EI")
	// ErrDstTooSmall is returned when the compressed stream does not fit into dst.
	ErrDstTooSmall = errors.New("destination buffer too small")

	// ErrUnexpectedEOF is returned when the source ends before the output is complete.
	ErrUnexpectedEOF = errors.New("unexpected end of input")
	// ErrInvalidOffset is returned for a back-reference offset of 0 or beyond the window.
	ErrInvalidOffset = errors.New("back-reference offset out of window")
	// ErrInvalidLength is returned for a back-reference shorter than the minimum match.
	ErrInvalidLength = errors.New("back-reference length below minimum match")

	// ErrNegativeOutLen is returned when the requested output length is below zero.
	ErrNegativeOutLen = errors.New("output length must be non-negative")
	// ErrNilReader is returned by DecompressFromReader for a nil reader.
	ErrNilReader = errors.New("reader is nil")
)
