// Copyright 2025 go-highway Authors
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Command fpgen regenerates the lookup tables of the special-function
// packages from first principles.
//
// Usage:
//
//	fpgen -pkg reduce -output zz_tables.go
//	fpgen -pkg math -output zz_tables.go
//	fpgen -pkg math -tables sinPiTable,cbrtRoot -output -    # print to stdout
//
// Or via go:generate:
//
//	//go:generate go run ../../../cmd/fpgen -pkg math -output zz_tables.go
//
// Every value is computed with math/big at -prec bits and rounded once to
// float64. Double-double entries are written as a rounded head and the
// rounded remainder.
package main

import (
	"flag"
	"fmt"
	"os"
	"strings"
)

var (
	packageOut = flag.String("pkg", "", "Package to generate tables for ("+strings.Join(AvailablePackages(), ",")+")")
	outputFile = flag.String("output", "zz_tables.go", "Output file, or - for stdout")
	tableList  = flag.String("tables", "", "Comma-separated subset of tables (default: all tables of the package)")
	precision  = flag.Uint("prec", 2048, "Working precision in bits")
)

func main() {
	flag.Parse()

	if *packageOut == "" {
		fmt.Fprintf(os.Stderr, "Error: -pkg flag is required\n\n")
		flag.Usage()
		os.Exit(1)
	}

	gen := &Generator{
		Package: *packageOut,
		Tables:  parseList(*tableList),
		Prec:    *precision,
	}

	src, err := gen.Run()
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}

	if *outputFile == "-" {
		os.Stdout.Write(src)
		return
	}
	if err := os.WriteFile(*outputFile, src, 0o644); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("Successfully generated %s for package %s\n", *outputFile, *packageOut)
}

func parseList(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.TrimSpace(p)
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
