// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"bytes"
	"fmt"
	"sort"
)

// Symbol is one distinct byte value observed in the input, together with its
// occurrence statistics and, once assigned, its codeword.
type Symbol struct {
	Val   byte    // Raw byte value
	Count uint32  // Number of occurrences in the input
	Prob  float32 // Count divided by the total input length
	Code  string  // Codeword over {'0','1'}; empty until assigned
}

// Table is an ordered sequence of symbols, sorted by strictly descending
// probability. The position of a symbol in the table, not its byte value, is
// the index that the recursive codeword assignment operates on.
//
// Equal probabilities are ordered by ascending byte value so that the same
// input always produces the same table.
type Table []Symbol

// BuildTable computes the frequency of every distinct byte in data, sorts the
// distinct symbols by descending probability, and assigns a codeword to each.
//
// An empty input produces an empty table. A single distinct symbol receives
// the codeword "0" so that its coded stream remains decodable.
func BuildTable(data []byte) Table {
	var counts [maxSyms]uint32
	for _, b := range data {
		counts[b]++
	}

	t := make(Table, 0, 16)
	total := float32(len(data))
	for v, cnt := range counts {
		if cnt == 0 {
			continue
		}
		t = append(t, Symbol{Val: byte(v), Count: cnt, Prob: float32(cnt) / total})
	}
	sort.Slice(t, func(i, j int) bool {
		if t[i].Prob != t[j].Prob {
			return t[i].Prob > t[j].Prob
		}
		return t[i].Val < t[j].Val
	})

	t.assignCodes()
	return t
}

// String renders the table in its serialized textual form: the decimal
// symbol count, then one line per symbol holding the raw symbol byte, its
// probability, and its codeword, separated by tabs.
func (t Table) String() string {
	var buf bytes.Buffer
	fmt.Fprintf(&buf, "%d\n", len(t))
	for _, s := range t {
		buf.WriteByte(s.Val)
		fmt.Fprintf(&buf, "\t%f\t%s\n", s.Prob, s.Code)
	}
	return buf.String()
}

// CodeMap returns the mapping from byte value to codeword.
func (t Table) CodeMap() Code {
	codes := make(Code, len(t))
	for _, s := range t {
		codes[s.Val] = s.Code
	}
	return codes
}
