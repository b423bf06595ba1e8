// SPDX-License-Identifier: MIT
// Package mat: sentinel errors for matrix and expression construction.
package mat

import "errors"

// Sentinel errors for mat operations.
var (
	// ErrInvalidShape indicates requested dimensions are non-positive.
	ErrInvalidShape = errors.New("mat: dimensions must be > 0")
	// ErrShapeMismatch indicates operand shapes disagree.
	ErrShapeMismatch = errors.New("mat: operand shapes must match")
	// ErrIndexOutOfBounds indicates a window origin or extent escapes the parent.
	ErrIndexOutOfBounds = errors.New("mat: index out of bounds")
	// ErrBadView indicates a degenerate window request.
	ErrBadView = errors.New("mat: view extents must be > 0")
	// ErrShortData indicates a backing slice too short for the requested shape.
	ErrShortData = errors.New("mat: backing data shorter than rows*cols")
)
