// Copyright 2025, Joe Tsai. All rights reserved.
// Use of this source code is governed by a BSD-style
// license that can be found in the LICENSE.md file.

// Command shannon codes and decodes files with a Shannon-Fano prefix code.
//
// The default action is to encode the input file. The default output file is
// encoded.txt when encoding and decoded.txt when decoding.
//
// Examples:
//	shannon input.txt
//	shannon input.txt encoded.txt
//	shannon -d encoded.txt
package main

import (
	"flag"
	"fmt"
	"log"
	"os"

	"github.com/haqu/shannon"
	"github.com/pkg/errors"
)

var (
	dFlag = flag.Bool("d", false, "decode the input file")
	vFlag = flag.Bool("v", false, "print the symbol table to stdout")
)

func usage() {
	fmt.Fprintf(os.Stderr, "Usage: %s [OPTIONS] input [output]\n", os.Args[0])
	fmt.Fprintf(os.Stderr, "  The default action is to encode the input file.\n")
	flag.PrintDefaults()
}

func main() {
	log.SetFlags(0)
	flag.Usage = usage
	flag.Parse()

	// A malformed invocation is not an error; print usage and leave quietly.
	if flag.NArg() < 1 || flag.NArg() > 2 {
		usage()
		os.Exit(0)
	}
	input := flag.Arg(0)
	output := flag.Arg(1)
	if output == "" {
		if *dFlag {
			output = "decoded.txt"
		} else {
			output = "encoded.txt"
		}
	}

	tbl, err := run(input, output, *dFlag)
	if err != nil {
		log.Fatalf("%v", err)
	}
	if *vFlag {
		fmt.Print(tbl)
	}
}

func run(input, output string, decode bool) (shannon.Table, error) {
	src, err := os.Open(input)
	if err != nil {
		return nil, errors.Wrap(err, "open input")
	}
	defer src.Close()

	dst, err := os.Create(output)
	if err != nil {
		return nil, errors.Wrap(err, "open output")
	}

	var tbl shannon.Table
	if decode {
		tbl, err = shannon.Decode(dst, src)
	} else {
		tbl, err = shannon.Encode(dst, src)
	}
	if err != nil {
		dst.Close()
		return nil, errors.Wrapf(err, "code %s", input)
	}
	if err := dst.Close(); err != nil {
		return nil, errors.Wrap(err, "close output")
	}
	return tbl, nil
}
