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

// Command fpcheck measures the accuracy of the float64 special functions.
//
// Usage:
//
//	fpcheck sweep --func sin,cos --from 0 --to 1e6 --samples 100000
//	fpcheck sweep --func erf --from 1e-10 --to 6 --scale log --ref std
//	fpcheck sweep --portable --max-ulp 2
//	fpcheck info
//
// Each sample is compared against a reference: the double-double evaluation
// (--ref dd, the default) or the standard library (--ref std). The normalized
// Fresnel cosine is always checked against its power series summed with
// math/big. The report lists the largest and mean error in ulps per function.
package main

import "os"

func main() {
	if err := newRootCmd().Execute(); err != nil {
		os.Exit(1)
	}
}
