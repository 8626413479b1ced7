// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package shannon

import (
	"bytes"
	"io"
	"strconv"

	"github.com/dsnet/golib/errs"
	"github.com/dsnet/golib/ioutil"
)

// The actual read interface needed by NewReader.
type byteReader interface {
	io.Reader
	io.ByteReader
}

// Reader decodes a Shannon-Fano coded stream. Decoding needs the complete
// codeword table before any payload byte can be recovered, so the Reader
// consumes the whole underlying stream on the first call to Read.
type Reader struct {
	rd  byteReader // Underlying reader
	tbl Table      // Table parsed from the stream
	buf []byte     // Decoded data yet to be consumed
	eos bool       // Whether the stream has been decoded
	err error      // Persistent error

	// Lazily allocated and reused for efficiency.
	brd ioutil.ByteReader
}

// NewReader creates a new Reader decoding from rd.
func NewReader(rd io.Reader) *Reader {
	zr := new(Reader)
	zr.Reset(rd)
	return zr
}

// Reset resets the Reader with a new io.Reader.
func (zr *Reader) Reset(rd io.Reader) {
	// For efficiency, rd should satisfy the io.ByteReader interface as well.
	// Otherwise, it will wrap the input with a single byte buffer reader.
	brd, ok := rd.(byteReader)
	if !ok {
		zr.brd.Reader = rd
		brd = &zr.brd
	}

	zr.rd = brd
	zr.tbl, zr.buf = nil, nil
	zr.eos, zr.err = false, nil
}

// Table returns the symbol table parsed from the stream. Only the byte value,
// probability, and codeword of each symbol are known to the decoder; counts
// are zero. It returns nil before the first Read and after a failure.
func (zr *Reader) Table() Table { return zr.tbl }

// Read returns the decoded data.
func (zr *Reader) Read(buf []byte) (int, error) {
	if zr.err == nil && !zr.eos {
		zr.decode()
	}
	if zr.err != nil {
		return 0, zr.err
	}
	if len(zr.buf) == 0 {
		return 0, io.EOF
	}
	cnt := copy(buf, zr.buf)
	zr.buf = zr.buf[cnt:]
	return cnt, nil
}

// Close closes the reader.
func (zr *Reader) Close() error {
	if zr.err != nil && zr.err != io.EOF && zr.err != io.ErrClosedPipe {
		return zr.err
	}
	zr.err = io.ErrClosedPipe
	return nil
}

// Decode decodes all of src into dst and returns the table parsed from the
// stream.
func Decode(dst io.Writer, src io.Reader) (Table, error) {
	zr := NewReader(src)
	if _, err := io.Copy(dst, zr); err != nil {
		return nil, err
	}
	return zr.tbl, nil
}

// DecodeBytes decodes data and returns the recovered input along with the
// table parsed from the stream.
func DecodeBytes(data []byte) ([]byte, Table, error) {
	var buf bytes.Buffer
	tbl, err := Decode(&buf, bytes.NewReader(data))
	if err != nil {
		return nil, nil, err
	}
	return buf.Bytes(), tbl, nil
}

// decode consumes the whole underlying stream: the symbol table section
// first, then the bit characters of the payload. The decoded data is left in
// zr.buf and the parsed table in zr.tbl.
func (zr *Reader) decode() {
	defer errs.Recover(&zr.err)

	tbl := parseTable(zr.rd)
	dec := tbl.decodeMap()
	max := tbl.CodeMap().maxCodeLen()

	// Since the code is prefix-free, comparing the accumulated bits against
	// the table after every bit character is equivalent to greedy
	// longest-prefix matching: no accumulated run that equals a codeword can
	// also be a proper prefix of another.
	var out []byte
	accum := make([]byte, 0, max)
	for {
		b, err := zr.rd.ReadByte()
		if err == io.EOF {
			break
		}
		errs.Panic(err)

		switch b {
		case '0', '1':
			accum = append(accum, b)
		case '\r', '\n':
			continue
		default:
			errs.Panic(ErrCorrupt)
		}
		if val, ok := dec[string(accum)]; ok {
			out = append(out, val)
			accum = accum[:0]
		} else {
			// A failed match at the length of the longest codeword can
			// never be extended into a successful one.
			errs.Assert(len(accum) < max, ErrCorrupt)
		}
	}
	errs.Assert(len(accum) == 0, ErrTruncated)

	zr.tbl, zr.buf, zr.eos = tbl, out, true
}

// decodeMap returns the inverse mapping from codeword to byte value.
// It panics with ErrMalformedTable if two symbols share a codeword or if any
// codeword is a prefix of another, since such a table cannot be decoded
// unambiguously.
func (t Table) decodeMap() map[string]byte {
	dec := make(map[string]byte, len(t))
	for _, s := range t {
		_, dup := dec[s.Code]
		errs.Assert(!dup, ErrMalformedTable)
		dec[s.Code] = s.Val
	}
	for _, s := range t {
		for l := 1; l < len(s.Code); l++ {
			_, ok := dec[s.Code[:l]]
			errs.Assert(!ok, ErrMalformedTable)
		}
	}
	return dec
}

// parseTable parses the symbol table section: the count line, one line per
// symbol, and the blank separator line. It panics with ErrMalformedTable on
// any structural damage, and with the underlying error on I/O failure.
func parseTable(br io.ByteReader) Table {
	cnt, err := strconv.Atoi(readField(br, '\n'))
	errs.Assert(err == nil && cnt >= 0 && cnt <= maxSyms, ErrMalformedTable)

	var seen [maxSyms]bool
	tbl := make(Table, 0, cnt)
	for i := 0; i < cnt; i++ {
		s := parseSymbol(br)
		errs.Assert(!seen[s.Val], ErrMalformedTable)
		seen[s.Val] = true
		tbl = append(tbl, s)
	}
	if b := readTableByte(br); b == '\r' {
		b = readTableByte(br)
		errs.Assert(b == '\n', ErrMalformedTable)
	} else {
		errs.Assert(b == '\n', ErrMalformedTable)
	}
	return tbl
}

// parseSymbol parses one symbol line: a raw byte, a tab, a probability
// rendered as decimal text, a tab, and the codeword. The raw byte is read
// positionally, so tab and newline values remain valid symbols.
func parseSymbol(br io.ByteReader) Symbol {
	val := readTableByte(br)
	errs.Assert(readTableByte(br) == '\t', ErrMalformedTable)

	prob, err := strconv.ParseFloat(readField(br, '\t'), 32)
	errs.Assert(err == nil && prob >= 0 && prob <= 1, ErrMalformedTable)

	code := readField(br, '\n')
	errs.Assert(len(code) > 0, ErrMalformedTable)
	for i := 0; i < len(code); i++ {
		errs.Assert(code[i] == '0' || code[i] == '1', ErrMalformedTable)
	}
	return Symbol{Val: val, Prob: float32(prob), Code: code}
}

// readField reads bytes up to and including delim and returns the field
// without the delimiter. A '\r' immediately before a '\n' delimiter is
// dropped so that both newline conventions parse.
func readField(br io.ByteReader, delim byte) string {
	var field []byte
	for {
		b := readTableByte(br)
		if b == delim {
			if delim == '\n' && len(field) > 0 && field[len(field)-1] == '\r' {
				field = field[:len(field)-1]
			}
			return string(field)
		}
		field = append(field, b)
	}
}

// readTableByte reads a single byte of the table section. The table is of
// known extent, so running out of input inside it is structural damage, not
// a clean EOF.
func readTableByte(br io.ByteReader) byte {
	b, err := br.ReadByte()
	if err == io.EOF {
		err = ErrMalformedTable
	}
	errs.Panic(err)
	return b
}
