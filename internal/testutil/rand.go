// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package testutil is a collection of testing helper methods.
package testutil

import (
	"crypto/aes"
	"crypto/cipher"
	"encoding/binary"
)

// Rand implements a deterministic pseudo-random number generator.
// This differs from math.Rand in that the exact output will be consistent
// across different versions of Go.
type Rand struct {
	cipher.Block
	blk [aes.BlockSize]byte
}

func NewRand(seed int) *Rand {
	var key [aes.BlockSize]byte
	binary.LittleEndian.PutUint64(key[:], uint64(seed))
	r, _ := aes.NewCipher(key[:])
	return &Rand{Block: r}
}

func (r *Rand) Int() (x int) {
	r.Encrypt(r.blk[:], r.blk[:])
	x |= int(r.blk[0]) << 0
	x |= int(r.blk[1]) << 8
	x |= int(r.blk[2]) << 16
	x |= int(r.blk[3]) << 24
	x |= int(r.blk[4]&0x3f) << 32
	return x
}

func (r *Rand) Intn(n int) int {
	return r.Int() % n
}

// Bytes returns n uniformly distributed random bytes.
func (r *Rand) Bytes(n int) []byte {
	b := make([]byte, n)
	bb := b
	for len(bb) > 0 {
		r.Encrypt(r.blk[:], r.blk[:])
		cnt := copy(bb, r.blk[:])
		bb = bb[cnt:]
	}
	return b
}

// WeightedBytes returns n random bytes drawn from the symbol values
// 0..len(weights)-1, where the probability of value i is proportional to
// weights[i]. Skewed distributions like these are where prefix coding earns
// its keep, so most codec tests want them over uniform data.
func (r *Rand) WeightedBytes(n int, weights []int) []byte {
	var total int
	for _, w := range weights {
		total += w
	}
	if total <= 0 || len(weights) > 256 {
		panic("invalid weights")
	}

	b := make([]byte, n)
	for i := range b {
		x := r.Intn(total)
		for v, w := range weights {
			if x -= w; x < 0 {
				b[i] = byte(v)
				break
			}
		}
	}
	return b
}
