// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package ir

import "fmt"

// typeKind distinguishes the three shapes a Type can take: an integer of a
// given bitwidth, a float of a given bitwidth, or a pointer into a given
// memory block.  Mirrors original_source/backend/x86/src/cpu.rs's match over
// Type::I / Type::F / Type::PtrTo.
type typeKind uint8

const (
	typeInt typeKind = iota
	typeFloat
	typePtr
)

// Type is the type of a value produced by an Instruction or consumed by an
// Operand.
type Type struct {
	kind  typeKind
	width uint32
	mem   MemId
}

// IntType constructs an integer type of the given bitwidth.
func IntType(width uint32) Type {
	return Type{kind: typeInt, width: width}
}

// FloatType constructs a floating-point type of the given bitwidth.
func FloatType(width uint32) Type {
	return Type{kind: typeFloat, width: width}
}

// PtrType constructs a pointer-to-memory-block type.
func PtrType(mem MemId) Type {
	return Type{kind: typePtr, mem: mem}
}

// IsInteger indicates whether this is an integer type.
func (t Type) IsInteger() bool {
	return t.kind == typeInt
}

// IsFloat indicates whether this is a floating-point type.
func (t Type) IsFloat() bool {
	return t.kind == typeFloat
}

// IsPointer indicates whether this is a pointer type.
func (t Type) IsPointer() bool {
	return t.kind == typePtr
}

// BitWidth returns the bitwidth of an integer or float type, panicking for a
// pointer type (which has no meaningful scalar width here).
func (t Type) BitWidth() uint32 {
	if t.kind == typePtr {
		panic("pointer types have no scalar bitwidth")
	}

	return t.width
}

// MemBlock returns the memory block a pointer type refers to, panicking if
// this is not a pointer type.
func (t Type) MemBlock() MemId {
	if t.kind != typePtr {
		panic("not a pointer type")
	}

	return t.mem
}

// Equal reports whether two types are identical.
func (t Type) Equal(other Type) bool {
	return t == other
}

//nolint:revive
func (t Type) String() string {
	switch t.kind {
	case typeInt:
		return fmt.Sprintf("i%d", t.width)
	case typeFloat:
		return fmt.Sprintf("f%d", t.width)
	default:
		return fmt.Sprintf("ptr<%s>", t.mem)
	}
}
