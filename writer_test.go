// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"bytes"
	"io"
	"testing"

	"github.com/haqu/shannon/internal/testutil"
)

func TestEncode(t *testing.T) {
	vectors := []struct {
		name   string
		input  []byte
		output string
	}{{
		name:   "Empty",
		input:  nil,
		output: "0\n\n",
	}, {
		name:   "SingleSymbol",
		input:  []byte("zzz"),
		output: "1\nz\t1.000000\t0\n\n000",
	}, {
		name:  "Example",
		input: []byte("AAAABBBCCD"),
		output: "4\n" +
			"A\t0.400000\t0\n" +
			"B\t0.300000\t10\n" +
			"C\t0.200000\t110\n" +
			"D\t0.100000\t111\n" +
			"\n" +
			"0000101010110110111",
	}, {
		// A tab symbol is emitted raw; the decoder reads it positionally.
		name:   "TabSymbol",
		input:  []byte("\t\ta"),
		output: "2\n\t\t0.666667\t0\na\t0.333333\t1\n\n001",
	}}

	for _, v := range vectors {
		var buf bytes.Buffer
		if _, err := EncodeBytes(&buf, v.input); err != nil {
			t.Errorf("test %s, unexpected error: %v", v.name, err)
		}
		if got := buf.String(); got != v.output {
			t.Errorf("test %s, output mismatch:\ngot  %q\nwant %q", v.name, got, v.output)
		}
	}
}

func TestWriterReset(t *testing.T) {
	var buf1, buf2 bytes.Buffer
	zw := NewWriter(&buf1)
	if _, err := zw.Write([]byte("abab")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := zw.Write(nil); err != io.ErrClosedPipe {
		t.Errorf("write after close: got %v, want %v", err, io.ErrClosedPipe)
	}

	zw.Reset(&buf2)
	if _, err := zw.Write([]byte("abab")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := zw.Close(); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if !bytes.Equal(buf1.Bytes(), buf2.Bytes()) {
		t.Errorf("output mismatch after Reset")
	}
}

func TestWriterFailure(t *testing.T) {
	errFault := Error("fault injected")
	bw := &testutil.BuggyWriter{W: new(bytes.Buffer), N: 4, Err: errFault}

	zw := NewWriter(bw)
	if _, err := zw.Write([]byte("AAAABBBCCD")); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if err := zw.Close(); err != errFault {
		t.Errorf("close error mismatch: got %v, want %v", err, errFault)
	}
	if zw.Table() != nil {
		t.Errorf("table available despite failed close")
	}
}
