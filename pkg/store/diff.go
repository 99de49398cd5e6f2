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
package store

import "github.com/telamon-project/telamon/pkg/ir"

// DomainDiff records which objects had their domain narrowed during a single
// apply_action/apply_decisions pass, so the engine's worklist can requeue
// exactly the constraints that might now fire rather than rescanning
// everything (spec.md S4.3's fixpoint loop; the "unused_diff" discarded at
// SearchSpace::new time in original_source/src/search_space/mod.rs shows the
// same bookkeeping used only once real triggers are wired up).
type DomainDiff struct {
	Dims       []ir.DimId
	Insts      []ir.InstId
	MemBlocks  []ir.MemId
	Variables  []ir.VarId
	DimPairs   [][2]ir.DimId
	StmtPairs  [][2]ir.StmtId
}

// NewDomainDiff constructs an empty diff.
func NewDomainDiff() *DomainDiff {
	return &DomainDiff{}
}

// TouchDim records that dim's domain changed.
func (d *DomainDiff) TouchDim(dim ir.DimId) {
	d.Dims = append(d.Dims, dim)
}

// TouchInst records that inst's domain changed.
func (d *DomainDiff) TouchInst(inst ir.InstId) {
	d.Insts = append(d.Insts, inst)
}

// TouchMemBlock records that mem's domain changed.
func (d *DomainDiff) TouchMemBlock(mem ir.MemId) {
	d.MemBlocks = append(d.MemBlocks, mem)
}

// TouchVariable records that v's domain changed.
func (d *DomainDiff) TouchVariable(v ir.VarId) {
	d.Variables = append(d.Variables, v)
}

// TouchDimPair records that the pairwise domain (ThreadMapping, DimMapping)
// between a and b changed.
func (d *DomainDiff) TouchDimPair(a, b ir.DimId) {
	d.DimPairs = append(d.DimPairs, [2]ir.DimId{a, b})
}

// TouchStmtPair records that the Order domain between a and b changed.
func (d *DomainDiff) TouchStmtPair(a, b ir.StmtId) {
	d.StmtPairs = append(d.StmtPairs, [2]ir.StmtId{a, b})
}

// IsEmpty reports whether nothing was touched.
func (d *DomainDiff) IsEmpty() bool {
	return len(d.Dims) == 0 && len(d.Insts) == 0 && len(d.MemBlocks) == 0 &&
		len(d.Variables) == 0 && len(d.DimPairs) == 0 && len(d.StmtPairs) == 0
}

// Merge appends other's touches onto d.
func (d *DomainDiff) Merge(other *DomainDiff) {
	d.Dims = append(d.Dims, other.Dims...)
	d.Insts = append(d.Insts, other.Insts...)
	d.MemBlocks = append(d.MemBlocks, other.MemBlocks...)
	d.Variables = append(d.Variables, other.Variables...)
	d.DimPairs = append(d.DimPairs, other.DimPairs...)
	d.StmtPairs = append(d.StmtPairs, other.StmtPairs...)
}
