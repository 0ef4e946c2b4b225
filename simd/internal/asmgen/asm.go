// Copyright 2024 GRAIL, Inc.  All rights reserved.
// Use of this source code is governed by the Apache-2.0
// license that can be found in the LICENSE file.

// Command asmgen generates simd/sum_amd64.s.  Run it through go generate in
// the simd directory.
package main

import (
	"fmt"

	. "github.com/mmcloughlin/avo/build"
	. "github.com/mmcloughlin/avo/operand"
	"github.com/mmcloughlin/avo/reg"
)

// kernel describes one summation kernel: the vector register constructor and
// the zero / load+add / store instruction sequence of its extension.
type kernel struct {
	name    string
	label   string
	width   int
	log2    uint64
	vecSize int
	vec     func() reg.VecVirtual
	zero    func(acc reg.VecVirtual)
	accum   func(src Mem, tmp, acc reg.VecVirtual)
	store   func(acc reg.VecVirtual, dst Mem)
	cleanup func()
}

var kernels = []kernel{
	{
		name:    "sumInt32x4SSE2Asm",
		label:   "sse2",
		width:   4,
		log2:    2,
		vecSize: 16,
		vec:     XMM,
		zero:    func(acc reg.VecVirtual) { PXOR(acc, acc) },
		accum: func(src Mem, tmp, acc reg.VecVirtual) {
			MOVOU(src, tmp)
			PADDL(tmp, acc)
		},
		store: func(acc reg.VecVirtual, dst Mem) { MOVOU(acc, dst) },
	},
	{
		name:    "sumInt32x4AVXAsm",
		label:   "avx",
		width:   4,
		log2:    2,
		vecSize: 16,
		vec:     XMM,
		zero:    func(acc reg.VecVirtual) { VPXOR(acc, acc, acc) },
		accum: func(src Mem, tmp, acc reg.VecVirtual) {
			VMOVDQU(src, tmp)
			VPADDD(tmp, acc, acc)
		},
		store: func(acc reg.VecVirtual, dst Mem) { VMOVDQU(acc, dst) },
	},
	{
		name:    "sumInt32x8AVX2Asm",
		label:   "avx2",
		width:   8,
		log2:    3,
		vecSize: 32,
		vec:     YMM,
		zero:    func(acc reg.VecVirtual) { VPXOR(acc, acc, acc) },
		accum: func(src Mem, tmp, acc reg.VecVirtual) {
			VMOVDQU(src, tmp)
			VPADDD(tmp, acc, acc)
		},
		store:   func(acc reg.VecVirtual, dst Mem) { VMOVDQU(acc, dst) },
		cleanup: VZEROUPPER,
	},
}

func (k kernel) generate() {
	TEXT(k.name, NOSPLIT, fmt.Sprintf("func(lanes *[%d]int32, src []int32)", k.width))
	lanes := Mem{Base: Load(Param("lanes"), GP64())}
	src := Mem{Base: Load(Param("src").Base(), GP64())}
	nVec := Load(Param("src").Len(), GP64())
	SHRQ(Imm(k.log2), nVec)

	acc, tmp := k.vec(), k.vec()
	k.zero(acc)
	TESTQ(nVec, nVec)
	JZ(LabelRef(k.label + "_done"))

	Label(k.label + "_loop")
	k.accum(src, tmp, acc)
	ADDQ(Imm(uint64(k.vecSize)), src.Base)
	DECQ(nVec)
	JNZ(LabelRef(k.label + "_loop"))

	Label(k.label + "_done")
	k.store(acc, lanes)
	if k.cleanup != nil {
		k.cleanup()
	}
	RET()
}

func main() {
	ConstraintExpr("amd64,!appengine")
	for _, k := range kernels {
		k.generate()
	}
	Generate()
}
