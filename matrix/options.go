// SPDX-License-Identifier: MIT

// Package matrix: functional configuration for container construction.
// This file defines:
//   - Option / Options (functional options with internal state),
//   - documented defaults (constants),
//   - WithX constructors,
//   - gatherOptions helper (internal).
//
// Unlike option values that are programmer errors, a negative start index is
// a caller-supplied argument and is reported by the constructors as
// ErrInvalidArgument rather than a panic.
package matrix

// ---------- Defaults (single source of truth) ----------

const (
	// DefaultStartIndex is the first logical index of a new Vector.
	DefaultStartIndex = 0

	// DefaultValidateNaNInf toggles finite-value validation on Set and on
	// slice-based constructors. Off by default: integer containers never
	// need it and float containers opt in.
	DefaultValidateNaNInf = false
)

// Option mutates internal options. Safe to apply repeatedly; last writer wins.
type Option func(*Options)

// Options stores the effective configuration after applying Option setters.
// Fields are unexported; public entry points accept ...Option.
type Options struct {
	startIndex     int  // DefaultStartIndex; validated by constructors
	validateNaNInf bool // DefaultValidateNaNInf
}

// WithStartIndex sets the first logical index of a Vector.
// Matrix constructors ignore it: row i always starts at i.
func WithStartIndex(start int) Option {
	return func(o *Options) { o.startIndex = start }
}

// WithValidateNaNInf makes Set and slice constructors reject NaN and ±Inf
// with ErrNaNInf. The policy is copied into clones and assigned containers.
func WithValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = true }
}

// WithNoValidateNaNInf disables finite-value validation (default).
func WithNoValidateNaNInf() Option {
	return func(o *Options) { o.validateNaNInf = false }
}

// gatherOptions applies user options over the defaults in order.
func gatherOptions(user ...Option) Options {
	o := Options{
		startIndex:     DefaultStartIndex,
		validateNaNInf: DefaultValidateNaNInf,
	}
	for _, set := range user {
		if set != nil {
			set(&o)
		}
	}

	return o
}
