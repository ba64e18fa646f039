// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package glsl

// Dialect selects the flavor of GLSL the translator emits.
//
// There is a single dialect today. The knob is part of the public surface
// so renderers can pin it, but no emitter behavior branches on it yet.
type Dialect uint8

const (
	// DialectGL45 targets desktop OpenGL 4.5 core with the bindless
	// texture and draw parameter extensions.
	DialectGL45 Dialect = iota
)

// String returns the dialect name.
func (d Dialect) String() string {
	return "gl45"
}

// Options configures shader translation.
type Options struct {
	// Dialect is the target GLSL dialect.
	Dialect Dialect
}

// DefaultOptions returns sensible default options.
func DefaultOptions() Options {
	return Options{
		Dialect: DialectGL45,
	}
}
