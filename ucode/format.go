// Copyright 2025 The GoGPU Authors
// SPDX-License-Identifier: MIT

package ucode

// VertexFormat enumerates the data formats a vertex fetch can decode.
type VertexFormat uint8

const (
	FormatUndefined VertexFormat = iota
	Format8_8_8_8
	Format2_10_10_10
	Format10_11_11
	Format11_11_10
	Format16_16
	Format16_16_16_16
	Format16_16_FLOAT
	Format16_16_16_16_FLOAT
	Format32
	Format32_32
	Format32_32_32_32
	Format32_FLOAT
	Format32_32_FLOAT
	Format32_32_32_32_FLOAT
	Format32_32_32_FLOAT
)

// ComponentCount returns how many components the format decodes to.
func (f VertexFormat) ComponentCount() int {
	switch f {
	case Format32, Format32_FLOAT:
		return 1
	case Format16_16, Format32_32, Format16_16_FLOAT, Format32_32_FLOAT:
		return 2
	case Format10_11_11, Format11_11_10, Format32_32_32_FLOAT:
		return 3
	default:
		return 4
	}
}

// GLSLTypeName returns the host type a fetch of this format produces.
func (f VertexFormat) GLSLTypeName() string {
	switch f.ComponentCount() {
	case 1:
		return "float"
	case 2:
		return "vec2"
	case 3:
		return "vec3"
	default:
		return "vec4"
	}
}

// String returns the format mnemonic used in disassembly.
func (f VertexFormat) String() string {
	switch f {
	case Format8_8_8_8:
		return "8_8_8_8"
	case Format2_10_10_10:
		return "2_10_10_10"
	case Format10_11_11:
		return "10_11_11"
	case Format11_11_10:
		return "11_11_10"
	case Format16_16:
		return "16_16"
	case Format16_16_16_16:
		return "16_16_16_16"
	case Format16_16_FLOAT:
		return "16_16_FLOAT"
	case Format16_16_16_16_FLOAT:
		return "16_16_16_16_FLOAT"
	case Format32:
		return "32"
	case Format32_32:
		return "32_32"
	case Format32_32_32_32:
		return "32_32_32_32"
	case Format32_FLOAT:
		return "32_FLOAT"
	case Format32_32_FLOAT:
		return "32_32_FLOAT"
	case Format32_32_32_32_FLOAT:
		return "32_32_32_32_FLOAT"
	case Format32_32_32_FLOAT:
		return "32_32_32_FLOAT"
	}
	return "undefined"
}
