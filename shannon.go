// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Package shannon implements the Shannon-Fano coded data format.
//
// The format is a textual one: the coded stream opens with a table of
// symbol-to-codeword mappings and is followed by the payload rendered as a
// sequence of '0' and '1' characters, one character per bit. The codewords
// are assigned by recursively partitioning the probability-sorted symbol
// table into halves of most-equal cumulative probability, which yields a
// prefix-free code.
//
// Shannon-Fano coding is provably suboptimal compared to Huffman coding for
// some distributions, and this format does not pack the coded bits into
// bytes. The package exists for the format itself, not for density.
package shannon

// Error is the wrapper type for errors specific to this library.
type Error string

func (e Error) Error() string { return "shannon: " + string(e) }

var (
	// ErrMalformedTable indicates that the symbol table section of the
	// stream could not be parsed.
	ErrMalformedTable error = Error("table is malformed")

	// ErrCorrupt indicates that the bit section of the stream contains a
	// byte that is not a bit character, or a bit run that cannot belong to
	// any codeword in the table.
	ErrCorrupt error = Error("bit stream is corrupted")

	// ErrTruncated indicates that the bit section of the stream ended in
	// the middle of a codeword.
	ErrTruncated error = Error("bit stream is truncated")
)

// maxSyms is the number of distinct values an 8-bit symbol can take, and
// therefore the largest possible table. Codewords never grow longer than
// maxSyms-1 bits since every split leaves at least one symbol on each side.
const maxSyms = 256
