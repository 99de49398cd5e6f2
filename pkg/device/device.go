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

// Package device exposes the capability interface the engine consults for
// type validity, hardware limits and vectorization admissibility, restricted
// to the type/limit/vectorization/flags/lower_type subset the engine
// actually uses for correctness (the rest of a real backend's Device -- the
// pressure model -- is declared here for callers that want to model cost,
// but is never consulted by pkg/engine or pkg/search).  Grounded on
// original_source/hir/src/device/mod.rs's Device trait.
package device

import (
	"github.com/telamon-project/telamon/pkg/domain"
	"github.com/telamon-project/telamon/pkg/ir"
	"github.com/telamon-project/telamon/pkg/search"
)

// Device holds the specification of a compilation target.  Unlike the
// original's trait object (any `dyn Device`), Go callers pass a concrete
// implementation; there is no inheritance hierarchy to emulate, only a set
// of methods.
type Device interface {
	// Name returns a human-readable identifier for the device.
	Name() string

	// CheckType indicates whether t can be implemented on the device.
	CheckType(t ir.Type) error

	// MaxBlockDims returns the maximal number of block dimensions the
	// device supports; 0 if the device has no notion of thread blocks.
	MaxBlockDims() uint32
	// MaxInnerBlockSize returns the maximal size an inner block dimension
	// can have.
	MaxInnerBlockSize() uint32
	// MaxThreads returns the maximal number of threads per block.
	MaxThreads() uint32
	// MaxUnrolling returns the maximal unrolling factor.
	MaxUnrolling() uint32
	// SharedMem returns the amount of shared memory available per block,
	// in bytes.
	SharedMem() uint32

	// HasVectorRegisters indicates whether the device has actual vector
	// registers (as opposed to implicit gather/scatter on every vector
	// access).
	HasVectorRegisters() bool
	// CanVectorize indicates whether the instruction can be vectorized
	// along dim.
	CanVectorize(dim *ir.Dimension, inst *ir.Instruction) bool
	// MaxVectorization returns the maximal vectorization factor for the
	// instruction, as [innermost, outer] factors.
	MaxVectorization(inst *ir.Instruction) [2]uint32

	// PointerType returns the type used to represent a pointer into the
	// given memory space.
	PointerType(space domain.MemorySpace) ir.Type
	// SupportedMemFlags returns the InstFlag values the device can
	// implement for a memory instruction.
	SupportedMemFlags(inst *ir.Instruction) domain.InstFlag

	// LowerType lowers t using the memory space information carried by
	// space, returning false if space does not yet pin down enough
	// information to decide.
	LowerType(t ir.Type, space *search.SearchSpace) (ir.Type, bool)

	// AllowGlobalTempMemory reports whether a lowering-introduced
	// temporary may live in global memory rather than being forced into
	// shared memory (SPEC_FULL.md open question 1).  Every known device,
	// including the dummy device, returns false; the hook exists so a
	// future device can opt in without changing the engine.
	AllowGlobalTempMemory() bool

	// Pressure returns the opaque, zero-valued hardware pressure caused by
	// a statement.  Forwarded to a cost model but never consulted by the
	// engine for correctness (spec.md S4.7).
	Pressure(space *search.SearchSpace, stmt ir.Statement) Pressure
	// LoopIterPressure returns the per-iteration pressure and the
	// per-iteration latency overhead of a loop of the given kind.
	LoopIterPressure(kind domain.DimKind) (Pressure, Pressure)
	// ThreadRates returns the processing rate of a single thread.
	ThreadRates() Pressure
	// BlockRates returns the processing rate of a single block.
	BlockRates() Pressure
	// TotalRates returns the processing rate of the whole device.
	TotalRates() Pressure
	// BlockParallelism returns the number of blocks that can run in
	// parallel on the device for the given search space.
	BlockParallelism(space *search.SearchSpace) uint32
}

// Pressure is an opaque per-resource cost vector.  The engine never reads
// its contents; only a cost model (out of scope, spec.md S1) would.
type Pressure struct {
	values map[string]float64
}

// ZeroPressure returns a Pressure with no resource usage.
func ZeroPressure() Pressure {
	return Pressure{}
}

// Value returns the cost recorded for the named resource, 0 if absent.
func (p Pressure) Value(resource string) float64 {
	return p.values[resource]
}
