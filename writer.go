// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"bufio"
	"bytes"
	"io"
	"io/ioutil"
)

// Writer codes a byte stream into the Shannon-Fano format. The codeword table
// depends on the frequencies of the whole input, so the Writer buffers all
// bytes written to it and emits the coded stream when Close is called.
type Writer struct {
	wr  io.Writer    // Underlying writer
	buf bytes.Buffer // Raw input accumulated until Close
	tbl Table        // Table built by Close
	err error        // Persistent error
}

// NewWriter creates a new Writer coding to wr.
func NewWriter(wr io.Writer) *Writer {
	zw := new(Writer)
	zw.Reset(wr)
	return zw
}

// Reset resets the Writer with a new io.Writer.
func (zw *Writer) Reset(wr io.Writer) {
	zw.wr = wr
	zw.buf.Reset()
	zw.tbl = nil
	zw.err = nil
}

// Write buffers multiple bytes. Nothing reaches the underlying writer until
// Close is called.
func (zw *Writer) Write(buf []byte) (int, error) {
	if zw.err != nil {
		return 0, zw.err
	}
	return zw.buf.Write(buf)
}

// Table returns the symbol table built during Close, with codewords assigned.
// It returns nil if Close has not been called or failed.
func (zw *Writer) Table() Table { return zw.tbl }

// Close builds the symbol table from the buffered input and writes the table
// and the coded payload to the underlying writer.
func (zw *Writer) Close() error {
	if zw.err != nil {
		return zw.err
	}
	tbl := BuildTable(zw.buf.Bytes())
	if zw.err = encode(zw.wr, tbl, zw.buf.Bytes()); zw.err != nil {
		return zw.err
	}
	zw.tbl = tbl
	zw.err = io.ErrClosedPipe
	return nil
}

// Encode codes all of src into dst and returns the table that was built.
// Errors from either side are I/O errors and are returned as-is.
func Encode(dst io.Writer, src io.Reader) (Table, error) {
	data, err := ioutil.ReadAll(src)
	if err != nil {
		return nil, err
	}
	return EncodeBytes(dst, data)
}

// EncodeBytes codes data into dst and returns the table that was built.
func EncodeBytes(dst io.Writer, data []byte) (Table, error) {
	tbl := BuildTable(data)
	if err := encode(dst, tbl, data); err != nil {
		return nil, err
	}
	return tbl, nil
}

// encode writes the serialized table in its textual form, a blank separator
// line, and then the bit characters of every input byte's codeword.
func encode(wr io.Writer, tbl Table, data []byte) error {
	bw := bufio.NewWriter(wr)
	bw.WriteString(tbl.String())
	bw.WriteByte('\n')

	codes := tbl.CodeMap()
	for _, b := range data {
		bw.WriteString(codes[b])
	}
	return bw.Flush()
}
