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

// Package math provides scalar special functions written against the bit
// layout of each floating-point format.
//
// # Float32 and Float64
//
// Generic functions accept any fp.Floats type. Float32 inputs are widened,
// evaluated by the float64 kernel and rounded back:
//   - Sin, Cos, SinCos
//   - SinCosPi(t) - sin(pi*t) and cos(pi*t)
//   - Acos
//   - Erf
//   - NormalizedFresnelCos(x) - integral of cos(pi*t^2/2) from 0 to x
//   - Cbrt
//
// The float64 kernels are exported as function variables (Sin64, Cos64, ...)
// and are installed for the dispatch level chosen by package fp. UseLevel
// swaps them, which is mostly useful for comparing the two levels.
//
// # Extended precisions
//
// Double-double, 80-bit extended and 128-bit quadruple values are evaluated
// in double-double arithmetic:
//   - SinDD, CosDD, SinCosDD, SinCosPiDD, AcosDD, ErfDD, NormalizedFresnelCosDD, CbrtDD
//   - SinFloat80, CosFloat80, SinCosPiFloat80, AcosFloat80, ErfFloat80, NormalizedFresnelCosFloat80, CbrtFloat80
//   - SinFloat128, CosFloat128, SinCosPiFloat128, AcosFloat128, ErfFloat128, NormalizedFresnelCosFloat128, CbrtFloat128
//
// Quadruple results therefore carry about 106 significant bits.
//
// # Special values
//
// NaN inputs are returned unchanged. Domain errors return NaN. Nothing
// panics and nothing logs.
package math

//go:generate go run ../../../cmd/fpgen -pkg math -output zz_tables.go
