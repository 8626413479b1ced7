// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

package bench

import (
	"io"

	"github.com/haqu/shannon"
)

func init() {
	// The Shannon-Fano coder has no compression levels; the level argument
	// is ignored.
	RegisterEncoder("sf",
		func(w io.Writer, lvl int) io.WriteCloser {
			return shannon.NewWriter(w)
		})
	RegisterDecoder("sf",
		func(r io.Reader) io.ReadCloser {
			return shannon.NewReader(r)
		})
}
