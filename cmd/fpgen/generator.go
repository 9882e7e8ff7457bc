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

package main

import (
	"bytes"
	"fmt"
	"math/big"
	"slices"
	"strconv"
	"strings"

	"golang.org/x/tools/imports"
)

const fpImport = "github.com/ajroetker/go-specfun/fp"

// minPrec is enough for all 75 digits of 2/pi plus guard bits.
const minPrec = 1900

// Generator renders the tables of one package.
type Generator struct {
	Package string   // "reduce" or "math"
	Tables  []string // subset to emit; empty means all
	Prec    uint     // working precision in bits
}

// table is one generated variable.
type table struct {
	name  string
	doc   []string
	usesD bool // element type is fp.DoubleDouble
	body  func(prec uint) string
}

var packages = map[string]func() []table{
	"reduce": reduceTables,
	"math":   mathTables,
}

// AvailablePackages returns the packages fpgen knows how to generate.
func AvailablePackages() []string {
	var names []string
	for name := range packages {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

// Run returns the formatted Go source of the selected tables.
func (g *Generator) Run() ([]byte, error) {
	build, ok := packages[g.Package]
	if !ok {
		return nil, fmt.Errorf("unknown package %q (have %s)", g.Package, strings.Join(AvailablePackages(), ", "))
	}
	if g.Prec < minPrec {
		return nil, fmt.Errorf("precision %d is below the %d bits needed for the 2/pi digits", g.Prec, minPrec)
	}

	all := build()
	selected := all
	if len(g.Tables) > 0 {
		selected = nil
		for _, name := range g.Tables {
			i := slices.IndexFunc(all, func(t table) bool { return t.name == name })
			if i < 0 {
				return nil, fmt.Errorf("package %s has no table %q", g.Package, name)
			}
			selected = append(selected, all[i])
		}
	}

	var buf bytes.Buffer
	buf.WriteString("// Code generated by fpgen. DO NOT EDIT.\n\n")
	fmt.Fprintf(&buf, "package %s\n", g.Package)
	if slices.ContainsFunc(selected, func(t table) bool { return t.usesD }) {
		fmt.Fprintf(&buf, "\nimport %q\n", fpImport)
	}
	for _, t := range selected {
		buf.WriteString("\n")
		for _, line := range t.doc {
			fmt.Fprintf(&buf, "// %s\n", line)
		}
		fmt.Fprintf(&buf, "var %s = %s", t.name, t.body(g.Prec))
	}

	formatted, err := imports.Process("zz_tables.go", buf.Bytes(), &imports.Options{
		Comments:   true,
		TabIndent:  true,
		TabWidth:   8,
		FormatOnly: true,
	})
	if err != nil {
		return nil, fmt.Errorf("formatting generated source: %w", err)
	}
	return formatted, nil
}

func formatFloat(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}

// split rounds v to a head and the rounded remainder.
func split(v *big.Float) (hi, lo float64) {
	hi, _ = v.Float64()
	rest := new(big.Float).SetPrec(v.Prec()).Sub(v, new(big.Float).SetFloat64(hi))
	lo, _ = rest.Float64()
	return hi, lo
}

func ddBody(vals []*big.Float) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]fp.DoubleDouble{\n", len(vals))
	for _, v := range vals {
		hi, lo := split(v)
		fmt.Fprintf(&b, "\t{Hi: %s, Lo: %s},\n", formatFloat(hi), formatFloat(lo))
	}
	b.WriteString("}\n")
	return b.String()
}

// rowsBody writes vals perLine to a line.
func rowsBody(typ string, vals []string, perLine int) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%d]%s{\n", len(vals), typ)
	for i := 0; i < len(vals); i += perLine {
		end := min(i+perLine, len(vals))
		fmt.Fprintf(&b, "\t%s,\n", strings.Join(vals[i:end], ", "))
	}
	b.WriteString("}\n")
	return b.String()
}

func floatStrings(vals []float64) []string {
	out := make([]string, len(vals))
	for i, v := range vals {
		out[i] = formatFloat(v)
	}
	return out
}
