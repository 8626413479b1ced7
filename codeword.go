// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

// Code is the mapping from byte value to its codeword. Codewords are
// non-empty strings over {'0','1'} and no codeword is a prefix of another.
type Code map[byte]string

// assignCodes assigns a codeword to every symbol in the table by recursively
// splitting it into sub-ranges of most-equal cumulative probability.
//
// A table with a single symbol is special-cased to the one-bit codeword "0";
// the recursion itself would leave it with an empty codeword, which cannot be
// decoded.
func (t Table) assignCodes() {
	switch len(t) {
	case 0:
	case 1:
		t[0].Code = "0"
	default:
		t.split(0, len(t)-1)
	}
}

// split assigns one bit to every symbol in the inclusive index range
// [lo, hi]: '0' to the lower group and '1' to the upper group, where the
// boundary is placed so that the cumulative probabilities of the two groups
// are as equal as a single left-to-right scan can make them. It then recurses
// into both groups. Each level of recursion contributes one bit, so a
// symbol's codeword length equals the depth at which its range narrowed to
// itself, and the codewords of a range diverge at the level it was first
// split. That makes the resulting code prefix-free.
func (t Table) split(lo, hi int) {
	switch {
	case lo == hi:
	case hi-lo == 1:
		t[lo].Code += "0"
		t[hi].Code += "1"
	default:
		var total float32
		for i := lo; i <= hi; i++ {
			total += t[i].Prob
		}

		// The split position is the first index whose running probability
		// sum exceeds half of the range total.
		var p float32
		half := total / 2
		isp := -1 // Index of split position
		for i := lo; i <= hi; i++ {
			p += t[i].Prob
			if p > half {
				isp = i
				break
			}
		}

		// Both groups must be non-empty or the recursion never terminates.
		// The lower group collapses when the first symbol alone exceeds
		// half the total (the table is sorted, so only the first can);
		// force it to hold exactly that one symbol.
		if isp <= lo {
			isp = lo + 1
		}

		for i := lo; i <= hi; i++ {
			if i < isp {
				t[i].Code += "0"
			} else {
				t[i].Code += "1"
			}
		}

		t.split(lo, isp-1)
		t.split(isp, hi)
	}
}

// maxCodeLen returns the length of the longest codeword in the code.
func (c Code) maxCodeLen() (max int) {
	for _, code := range c {
		if len(code) > max {
			max = len(code)
		}
	}
	return max
}
