package pixfmt

import (
	"errors"
	"fmt"
)

// Error kinds. Every error returned by Reformat and the dispatch table wraps
// exactly one of these, so callers select a fallback with errors.Is.
var (
	// ErrInvalidArgs is returned for nil bitmaps, empty sizes, unknown
	// formats, short buffers and out-of-range palette indices.
	ErrInvalidArgs = errors.New("pixfmt: invalid arguments")

	// ErrNotSupported is returned when no conversion exists for a format pair,
	// when an indexed bitmap has no palette, or when a required external
	// block codec is not registered.
	ErrNotSupported = errors.New("pixfmt: conversion not supported")

	// ErrOutOfMemory is returned when the destination would exceed the
	// configured memory limit.
	ErrOutOfMemory = errors.New("pixfmt: out of memory")

	// ErrFail is returned when a bitmap cannot be locked or an external
	// collaborator (quantizer, block codec) fails.
	ErrFail = errors.New("pixfmt: operation failed")
)

// ConversionError records the format pair of a failed conversion.
type ConversionError struct {
	Dst Format
	Src Format
	Err error
}

func (e *ConversionError) Error() string {
	return fmt.Sprintf("pixfmt: convert %s to %s: %v", e.Src, e.Dst, e.Err)
}

func (e *ConversionError) Unwrap() error {
	return e.Err
}
