// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBuildTable(t *testing.T) {
	// The worked example for this format: frequencies A:4 B:3 C:2 D:1 over
	// ten bytes. The first split isolates A, the second isolates B, and the
	// last one separates C from D.
	got := BuildTable([]byte("AAAABBBCCD"))
	want := Table{
		{Val: 'A', Count: 4, Prob: 0.4, Code: "0"},
		{Val: 'B', Count: 3, Prob: 0.3, Code: "10"},
		{Val: 'C', Count: 2, Prob: 0.2, Code: "110"},
		{Val: 'D', Count: 1, Prob: 0.1, Code: "111"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTableTieBreak(t *testing.T) {
	// Equal probabilities order by ascending byte value, regardless of the
	// order the symbols appear in the input.
	got := BuildTable([]byte("ddccbbaa"))
	want := Table{
		{Val: 'a', Count: 2, Prob: 0.25, Code: "00"},
		{Val: 'b', Count: 2, Prob: 0.25, Code: "01"},
		{Val: 'c', Count: 2, Prob: 0.25, Code: "10"},
		{Val: 'd', Count: 2, Prob: 0.25, Code: "11"},
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("table mismatch (-want +got):\n%s", diff)
	}
}

func TestBuildTableDegenerate(t *testing.T) {
	vectors := []struct {
		input []byte
		want  Table
	}{
		{input: nil, want: Table{}},
		{input: []byte("zzzz"), want: Table{{Val: 'z', Count: 4, Prob: 1, Code: "0"}}},
	}
	for i, v := range vectors {
		got := BuildTable(v.input)
		if diff := cmp.Diff(v.want, got); diff != "" {
			t.Errorf("test %d, table mismatch (-want +got):\n%s", i, diff)
		}
	}
}
