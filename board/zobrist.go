// Copyright 2014-2016 The Zurichess Authors. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE file.

package board

import "math/rand"

var (
	zobristPiece    [PieceArraySize][SquareArraySize]uint64
	zobristEnpassant [SquareArraySize]uint64
	zobristCastle   [16]uint64
	zobristColor    [ColorArraySize]uint64
)

func rand64(r *rand.Rand) uint64 {
	return uint64(r.Int63())<<32 ^ uint64(r.Int63())
}

func init() {
	r := rand.New(rand.NewSource(1))

	for pi := 0; pi < PieceArraySize; pi++ {
		for sq := 0; sq < SquareArraySize; sq++ {
			zobristPiece[pi][sq] = rand64(r)
		}
	}
	for sq := 0; sq < SquareArraySize; sq++ {
		zobristEnpassant[sq] = rand64(r)
	}
	for i := range zobristCastle {
		zobristCastle[i] = rand64(r)
	}
	for c := range zobristColor {
		zobristColor[c] = rand64(r)
	}
}
