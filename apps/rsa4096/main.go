//
// main.go
//
// Copyright (c) 2025 Markku Rossi
//
// All rights reserved.
//

// Command rsa4096 is the driver for the RSA-4096 core: it runs the
// verification vectors, the large-key tests, the performance
// benchmarks, and the binary block-mode round trip, and renders their
// results. All algorithmic work happens in the core packages; this
// command only formats output.
package main

import (
	"flag"
	"fmt"
	"os"
)

var verbose = false

func main() {
	fVerbose := flag.Bool("v", false, "Verbose output")
	flag.Parse()

	verbose = *fVerbose

	if len(flag.Args()) != 1 {
		usage()
		os.Exit(1)
	}
	var err error

	switch flag.Arg(0) {
	case "verify":
		err = runVerification()

	case "test":
		err = runKeyTest()

	case "benchmark":
		err = runBenchmarks()

	case "binary":
		err = runBinaryVerification()

	default:
		fmt.Printf("unknown command: %s\n", flag.Arg(0))
		usage()
		os.Exit(1)
	}
	if err != nil {
		fmt.Printf("%s failed: %s\n", flag.Arg(0), err)
		os.Exit(1)
	}
}

func usage() {
	fmt.Printf("Usage: %s [options] verify|test|benchmark|binary\n",
		os.Args[0])
	flag.PrintDefaults()
}
