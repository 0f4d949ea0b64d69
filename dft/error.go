// Copyright 2026 The Feos Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

// package dft defines the capability interfaces and shared value types of the
// density-functional-theory profile engine: bulk states, phase equilibria,
// Helmholtz-energy functionals, convolution plans, and the error taxonomy.
package dft

import (
	"errors"

	"github.com/cpmech/gosl/io"
)

// ErrKind classifies failures of the profile engine
type ErrKind int

const (

	// Construction flags invalid geometry or grid parameters
	Construction ErrKind = iota

	// ShapeMismatch flags density or potential arrays inconsistent with the grid
	ShapeMismatch

	// NumericalInvalid flags a non-finite result where finiteness is required
	NumericalInvalid

	// SolverFailure flags non-convergence or overflow of the nonlinear solver
	SolverFailure

	// Precondition flags degenerate or out-of-range input to an operation
	Precondition
)

// String returns the name of the error kind
func (o ErrKind) String() string {
	switch o {
	case Construction:
		return "construction"
	case ShapeMismatch:
		return "shape mismatch"
	case NumericalInvalid:
		return "numerical invalid"
	case SolverFailure:
		return "solver failure"
	case Precondition:
		return "precondition"
	}
	return "unknown"
}

// Error is a classified failure. Msg identifies the computation that failed
// (construction, solve, or the named analysis metric).
type Error struct {
	Kind ErrKind // failure category
	Msg  string  // human readable message naming the failing computation
	Err  error   // wrapped cause; nil unless propagating a collaborator failure
}

// Error returns the message
func (o *Error) Error() string {
	if o.Err != nil {
		return io.Sf("%s: %s: %v", o.Kind, o.Msg, o.Err)
	}
	return io.Sf("%s: %s", o.Kind, o.Msg)
}

// Unwrap returns the wrapped cause
func (o *Error) Unwrap() error { return o.Err }

// Errf creates a classified error with a formatted message
func Errf(kind ErrKind, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...)}
}

// Wrapf wraps a collaborator failure, keeping it available via Unwrap
func Wrapf(kind ErrKind, err error, msg string, prm ...interface{}) *Error {
	return &Error{Kind: kind, Msg: io.Sf(msg, prm...), Err: err}
}

// KindOf extracts the error kind; ok is false for foreign errors
func KindOf(err error) (kind ErrKind, ok bool) {
	var e *Error
	if errors.As(err, &e) {
		return e.Kind, true
	}
	return 0, false
}
