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

// Package cpuinfo reports the processor features that decide how the fp
// packages evaluate exact products.
package cpuinfo

import (
	"runtime"
	"strings"

	"github.com/ajroetker/go-specfun/fp"
)

// Info describes the host and the dispatch level chosen for it.
type Info struct {
	Arch     string
	Features []string
	Level    fp.DispatchLevel
	Target   string
	FMA      bool
}

// Detect returns the Info for the running process.
func Detect() Info {
	return Info{
		Arch:     runtime.GOARCH,
		Features: features(),
		Level:    fp.CurrentLevel(),
		Target:   fp.CurrentName(),
		FMA:      fp.HasFMA(),
	}
}

// String formats the info on one line, e.g.
// "amd64 [avx fma] ieee754+fma".
func (i Info) String() string {
	return i.Arch + " [" + strings.Join(i.Features, " ") + "] " + i.Target
}
