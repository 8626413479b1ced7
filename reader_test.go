// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"bytes"
	"io/ioutil"
	"strings"
	"testing"

	"github.com/haqu/shannon/internal/testutil"
)

func TestDecode(t *testing.T) {
	vectors := []struct {
		name   string
		input  string
		output string
		err    error
	}{{
		name:   "Empty",
		input:  "0\n\n",
		output: "",
	}, {
		name:   "Example",
		input:  "4\nA\t0.400000\t0\nB\t0.300000\t10\nC\t0.200000\t110\nD\t0.100000\t111\n\n0000101010110110111",
		output: "AAAABBBCCD",
	}, {
		name:   "SingleSymbol",
		input:  "1\nz\t1.000000\t0\n\n000",
		output: "zzz",
	}, {
		name:   "WindowsNewlines",
		input:  "2\r\na\t0.500000\t0\r\nb\t0.500000\t1\r\n\r\n0110",
		output: "abba",
	}, {
		name:   "TrailingNewline",
		input:  "2\na\t0.500000\t0\nb\t0.500000\t1\n\n0110\n",
		output: "abba",
	}, {
		name:  "TruncatedBits",
		input: "4\nA\t0.400000\t0\nB\t0.300000\t10\nC\t0.200000\t110\nD\t0.100000\t111\n\n000010101011011011",
		err:   ErrTruncated,
	}, {
		name:  "NonBitByte",
		input: "2\na\t0.500000\t0\nb\t0.500000\t1\n\n01x0",
		err:   ErrCorrupt,
	}, {
		name:  "UnmatchableRun",
		input: "2\na\t0.500000\t00\nb\t0.500000\t01\n\n10",
		err:   ErrCorrupt,
	}, {
		name:  "BadCount",
		input: "x\na\t0.500000\t0\n\n",
		err:   ErrMalformedTable,
	}, {
		name:  "NegativeCount",
		input: "-1\n\n",
		err:   ErrMalformedTable,
	}, {
		name:  "CountTooLarge",
		input: "257\n\n",
		err:   ErrMalformedTable,
	}, {
		name:  "BadProbability",
		input: "1\nz\tone\t0\n\n0",
		err:   ErrMalformedTable,
	}, {
		name:  "ProbabilityOutOfRange",
		input: "1\nz\t2.000000\t0\n\n0",
		err:   ErrMalformedTable,
	}, {
		name:  "EmptyCodeword",
		input: "1\nz\t1.000000\t\n\n",
		err:   ErrMalformedTable,
	}, {
		name:  "BadCodewordAlphabet",
		input: "1\nz\t1.000000\t02\n\n",
		err:   ErrMalformedTable,
	}, {
		name:  "MissingSeparator",
		input: "1\nz\t1.000000\t0\n000",
		err:   ErrMalformedTable,
	}, {
		name:  "MissingTab",
		input: "1\nz 1.000000\t0\n\n0",
		err:   ErrMalformedTable,
	}, {
		name:  "DuplicateSymbol",
		input: "2\nz\t0.500000\t0\nz\t0.500000\t1\n\n0",
		err:   ErrMalformedTable,
	}, {
		name:  "DuplicateCodeword",
		input: "2\na\t0.500000\t0\nb\t0.500000\t0\n\n0",
		err:   ErrMalformedTable,
	}, {
		name:  "PrefixViolation",
		input: "2\na\t0.500000\t0\nb\t0.500000\t01\n\n001",
		err:   ErrMalformedTable,
	}, {
		name:  "TruncatedTable",
		input: "2\na\t0.500000\t0\n",
		err:   ErrMalformedTable,
	}}

	for _, v := range vectors {
		output, _, err := DecodeBytes([]byte(v.input))
		if err != v.err {
			t.Errorf("test %s, error mismatch: got %v, want %v", v.name, err, v.err)
		}
		if v.err == nil && string(output) != v.output {
			t.Errorf("test %s, output mismatch: got %q, want %q", v.name, output, v.output)
		}
	}
}

func TestDecodeTable(t *testing.T) {
	const input = "2\na\t0.750000\t0\nb\t0.250000\t1\n\n0001"
	var buf bytes.Buffer
	tbl, err := Decode(&buf, strings.NewReader(input))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	want := Table{
		{Val: 'a', Prob: 0.75, Code: "0"},
		{Val: 'b', Prob: 0.25, Code: "1"},
	}
	if len(tbl) != len(want) {
		t.Fatalf("table size mismatch: got %d, want %d", len(tbl), len(want))
	}
	for i := range want {
		if tbl[i] != want[i] {
			t.Errorf("symbol %d mismatch: got %+v, want %+v", i, tbl[i], want[i])
		}
	}
}

func TestReaderFailure(t *testing.T) {
	errFault := Error("fault injected")
	const input = "2\na\t0.500000\t0\nb\t0.500000\t1\n\n0110"

	// Fault inside the table section.
	br := &testutil.BuggyReader{R: strings.NewReader(input), N: 5, Err: errFault}
	if _, err := ioutil.ReadAll(NewReader(br)); err != errFault {
		t.Errorf("table fault: got %v, want %v", err, errFault)
	}

	// Fault inside the bit section.
	br = &testutil.BuggyReader{R: strings.NewReader(input), N: int64(len(input) - 2), Err: errFault}
	if _, err := ioutil.ReadAll(NewReader(br)); err != errFault {
		t.Errorf("bit fault: got %v, want %v", err, errFault)
	}
}
