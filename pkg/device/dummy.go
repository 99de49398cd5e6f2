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
package device

import (
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/search"
)

// Dummy is a permissive device: pointer types and the standard integer and
// float widths are valid (see CheckType), nothing vectorizes, and every
// pressure method returns zero.
// Numeric limits are taken verbatim from
// original_source/backend/x86/src/cpu.rs::Cpu::dummy_cpu rather than
// invented, so block dimensions are unsupported (a CPU has none), threads
// are capped at 8 and unrolling at 512.
type Dummy struct {
	name string
}

// NewDummy returns the dummy device.
func NewDummy() *Dummy {
	return &Dummy{name: "x86"}
}

var _ Device = (*Dummy)(nil)

// Name returns the device's name.
func (d *Dummy) Name() string { return d.name }

// CheckType accepts pointer types unconditionally and restricts scalar
// widths to the set a real backend could materialize registers for:
// {1, 8, 16, 32, 64} bits for integers, {32, 64} bits for floats, matching
// original_source/backend/x86/src/cpu.rs::Cpu::check_type.
func (d *Dummy) CheckType(t ir.Type) error {
	switch {
	case t.IsPointer():
		return nil
	case t.IsInteger():
		switch t.BitWidth() {
		case 1, 8, 16, 32, 64:
			return nil
		}
	case t.IsFloat():
		switch t.BitWidth() {
		case 32, 64:
			return nil
		}
	}

	return ir.InvalidTypeError(t)
}

// MaxBlockDims is 0: block dimensions do not make sense on a CPU.
func (d *Dummy) MaxBlockDims() uint32 { return 0 }

// MaxInnerBlockSize is 1, consistent with MaxBlockDims being 0.
func (d *Dummy) MaxInnerBlockSize() uint32 { return 1 }

// MaxThreads returns 8.
func (d *Dummy) MaxThreads() uint32 { return 8 }

// MaxUnrolling returns 512.
func (d *Dummy) MaxUnrolling() uint32 { return 512 }

// SharedMem returns 0: the dummy device has no shared memory.
func (d *Dummy) SharedMem() uint32 { return 0 }

// HasVectorRegisters is false.
func (d *Dummy) HasVectorRegisters() bool { return false }

// CanVectorize always refuses: the dummy device never vectorizes.
func (d *Dummy) CanVectorize(_ *ir.Dimension, _ *ir.Instruction) bool { return false }

// MaxVectorization is [1, 1]: no vectorization is ever admissible.
func (d *Dummy) MaxVectorization(_ *ir.Instruction) [2]uint32 { return [2]uint32{1, 1} }

// PointerType uses memory block 0 as a dummy target for every space.
func (d *Dummy) PointerType(_ domain.MemorySpace) ir.Type {
	return ir.PtrType(ir.MemId(0))
}

// SupportedMemFlags admits only BlockCoherent, matching the original's
// hard-coded answer for load/store/temp-load/temp-store operators.
func (d *Dummy) SupportedMemFlags(_ *ir.Instruction) domain.InstFlag {
	return domain.BlockCoherent
}

// LowerType is the identity: the dummy device needs no further lowering
// once a type is already valid.
func (d *Dummy) LowerType(t ir.Type, _ *search.SearchSpace) (ir.Type, bool) {
	return t, true
}

// AllowGlobalTempMemory is false, matching the original's hard-coded
// dim_not_mapped behaviour (SPEC_FULL.md open question 1).
func (d *Dummy) AllowGlobalTempMemory() bool { return false }

// Pressure is always zero: the dummy device implements no cost model.
func (d *Dummy) Pressure(_ *search.SearchSpace, _ ir.Statement) Pressure { return ZeroPressure() }

// LoopIterPressure is always zero.
func (d *Dummy) LoopIterPressure(_ domain.DimKind) (Pressure, Pressure) {
	return ZeroPressure(), ZeroPressure()
}

// ThreadRates is zero: no rate model is implemented.
func (d *Dummy) ThreadRates() Pressure { return ZeroPressure() }

// BlockRates is zero: no rate model is implemented.
func (d *Dummy) BlockRates() Pressure { return ZeroPressure() }

// TotalRates is zero: no rate model is implemented.
func (d *Dummy) TotalRates() Pressure { return ZeroPressure() }

// BlockParallelism returns 1: the dummy device runs one block at a time.
func (d *Dummy) BlockParallelism(_ *search.SearchSpace) uint32 { return 1 }
