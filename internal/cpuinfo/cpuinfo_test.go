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

package cpuinfo

import (
	"runtime"
	"strings"
	"testing"

	"github.com/ajroetker/go-specfun/fp"
)

func TestDetect(t *testing.T) {
	info := Detect()
	if info.Arch != runtime.GOARCH {
		t.Errorf("Arch = %q, want %q", info.Arch, runtime.GOARCH)
	}
	if info.Level != fp.CurrentLevel() || info.Target != fp.CurrentName() {
		t.Errorf("Detect() = %+v, fp reports %v %q", info, fp.CurrentLevel(), fp.CurrentName())
	}
	if info.FMA && !strings.HasSuffix(info.Target, "+fma") {
		t.Errorf("FMA set but target is %q", info.Target)
	}
	for _, f := range info.Features {
		if f == "" || strings.ToLower(f) != f {
			t.Errorf("bad feature name %q", f)
		}
	}
}

func TestString(t *testing.T) {
	info := Info{Arch: "amd64", Features: []string{"avx", "fma"}, Target: "ieee754+fma"}
	if got, want := info.String(), "amd64 [avx fma] ieee754+fma"; got != want {
		t.Errorf("String() = %q, want %q", got, want)
	}
}
