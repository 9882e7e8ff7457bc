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

//go:build arm64

package cpuinfo

import "golang.org/x/sys/cpu"

func features() []string {
	var out []string
	if cpu.ARM64.HasFP {
		out = append(out, "fp")
	}
	if cpu.ARM64.HasASIMD {
		out = append(out, "asimd")
	}
	if cpu.ARM64.HasSVE {
		out = append(out, "sve")
	}
	return out
}
