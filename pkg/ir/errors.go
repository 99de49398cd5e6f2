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

// ExpectedType describes what kind of type was expected by a failed
// TypeError check (original_source/hir/src/ir/error.rs::ExpectedType).
type ExpectedType struct {
	kind     expectedKind
	specific Type
}

type expectedKind uint8

const (
	expectInteger expectedKind = iota
	expectFloat
	expectSpecific
)

// ExpectInteger indicates an integer type was expected.
func ExpectInteger() ExpectedType { return ExpectedType{kind: expectInteger} }

// ExpectFloat indicates a floating point type was expected.
func ExpectFloat() ExpectedType { return ExpectedType{kind: expectFloat} }

// ExpectSpecific indicates a specific type was expected.
func ExpectSpecific(t Type) ExpectedType { return ExpectedType{kind: expectSpecific, specific: t} }

//nolint:revive
func (e ExpectedType) String() string {
	switch e.kind {
	case expectInteger:
		return "an integer type"
	case expectFloat:
		return "a floating point type"
	default:
		return fmt.Sprintf("type `%s`", e.specific)
	}
}

// TypeError reports a failure encountered while type-checking IR under
// construction, mirroring original_source/hir/src/ir/error.rs::TypeError.
type TypeError struct {
	kind     typeErrKind
	t        Type
	inst     InstId
	expected ExpectedType
	given    Type
}

type typeErrKind uint8

const (
	errInvalidType typeErrKind = iota
	errExpectedReturnType
	errWrongType
	errUnexpectedType
)

// InvalidTypeError reports that a type is not valid on the targeted device.
func InvalidTypeError(t Type) *TypeError {
	return &TypeError{kind: errInvalidType, t: t}
}

// ExpectedReturnTypeError reports that an instruction must have a return type.
func ExpectedReturnTypeError(inst InstId) *TypeError {
	return &TypeError{kind: errExpectedReturnType, inst: inst}
}

// WrongTypeError reports that a value of the given type was supplied where
// the expected type was required.
func WrongTypeError(given Type, expected ExpectedType) *TypeError {
	return &TypeError{kind: errWrongType, given: given, expected: expected}
}

// UnexpectedTypeError reports that a type was supplied where none was
// expected.
func UnexpectedTypeError(t Type) *TypeError {
	return &TypeError{kind: errUnexpectedType, t: t}
}

func (e *TypeError) Error() string {
	switch e.kind {
	case errInvalidType:
		return fmt.Sprintf("type `%s` is not valid on the targeted device", e.t)
	case errExpectedReturnType:
		return fmt.Sprintf("%s must have a return type", e.inst)
	case errWrongType:
		return fmt.Sprintf("expected %s, got `%s`", e.expected, e.given)
	case errUnexpectedType:
		return fmt.Sprintf("unexpected type `%s`", e.t)
	default:
		return "unknown type error"
	}
}

// CheckTypeEquals ensures a type is equal to the expected one.
func CheckTypeEquals(given, expected Type) error {
	if given.Equal(expected) {
		return nil
	}

	return WrongTypeError(given, ExpectSpecific(expected))
}

// CheckInteger ensures the given type is an integer type.
func CheckInteger(given Type) error {
	if given.IsInteger() {
		return nil
	}

	return WrongTypeError(given, ExpectInteger())
}

// CheckFloat ensures the given type is a floating point type.
func CheckFloat(given Type) error {
	if given.IsFloat() {
		return nil
	}

	return WrongTypeError(given, ExpectFloat())
}

// Error reports a structural failure while constructing or mutating a
// Function, mirroring original_source/hir/src/ir/error.rs::Error.  A Type
// error is wrapped rather than embedded so that callers can distinguish the
// (rarer) type-checking failures from purely structural ones.
type Error struct {
	kind typeOrStructKind
	typ  *TypeError
	dim  DimId
	lhs  DimId
	rhs  DimId
}

type typeOrStructKind uint8

const (
	errKindType typeOrStructKind = iota
	errKindInvalidDimSize
	errKindDuplicateIncrement
	errKindMissingIterationDim
	errKindMissingDimMapping
	errKindInvalidDimInPattern
)

// WrapTypeError lifts a TypeError into a structural Error.
func WrapTypeError(e *TypeError) *Error {
	return &Error{kind: errKindType, typ: e}
}

// ErrInvalidDimSize reports a dimension declared with a size below 2.
func ErrInvalidDimSize() *Error {
	return &Error{kind: errKindInvalidDimSize}
}

// ErrDuplicateIncrement reports a dimension appearing twice in an induction
// variable's increment list.
func ErrDuplicateIncrement(dim DimId) *Error {
	return &Error{kind: errKindDuplicateIncrement, dim: dim}
}

// ErrMissingIterationDim reports an operator that needs to be nested in a
// dimension it is not nested in.
func ErrMissingIterationDim(dim DimId) *Error {
	return &Error{kind: errKindMissingIterationDim, dim: dim}
}

// ErrMissingDimMapping reports that no mapping was found between two
// dimensions that a DimMap operand needs related.
func ErrMissingDimMapping(lhs, rhs DimId) *Error {
	return &Error{kind: errKindMissingDimMapping, lhs: lhs, rhs: rhs}
}

// ErrInvalidDimInPattern reports an access pattern referencing a dimension
// which is not an iteration dim of the using instruction.
func ErrInvalidDimInPattern(dim DimId) *Error {
	return &Error{kind: errKindInvalidDimInPattern, dim: dim}
}

func (e *Error) Error() string {
	switch e.kind {
	case errKindType:
		return e.typ.Error()
	case errKindInvalidDimSize:
		return "dimensions must have a size of at least 2"
	case errKindDuplicateIncrement:
		return fmt.Sprintf("dimension %s appears twice in the increment list", e.dim)
	case errKindMissingIterationDim:
		return fmt.Sprintf("the operator needs to be nested in dimension %s", e.dim)
	case errKindMissingDimMapping:
		return fmt.Sprintf("no mapping found between dimensions %s and %s", e.lhs, e.rhs)
	case errKindInvalidDimInPattern:
		return fmt.Sprintf("dimension %s does not appear in the access pattern's instruction", e.dim)
	default:
		return "unknown ir error"
	}
}
