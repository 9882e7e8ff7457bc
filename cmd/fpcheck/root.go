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
	"fmt"
	"log"
	"strings"

	"github.com/spf13/cobra"

	"github.com/ajroetker/go-specfun/fp"
	"github.com/ajroetker/go-specfun/fp/contrib/math"
	"github.com/ajroetker/go-specfun/internal/cpuinfo"
)

func newRootCmd() *cobra.Command {
	var portable bool

	root := &cobra.Command{
		Use:          "fpcheck",
		Short:        "Measure the accuracy of the float64 special functions",
		SilenceUsage: true,
		PersistentPreRun: func(cmd *cobra.Command, args []string) {
			if portable {
				math.UseLevel(fp.DispatchPortable)
			}
		},
	}
	root.PersistentFlags().BoolVar(&portable, "portable", false, "evaluate with the portable dispatch level")

	root.AddCommand(newSweepCmd(), newInfoCmd())
	return root
}

func newSweepCmd() *cobra.Command {
	cfg := Config{}
	var (
		funcs  string
		maxULP float64
	)

	cmd := &cobra.Command{
		Use:   "sweep",
		Short: "Sample an interval and report the error of each function in ulps",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			logger := log.New(cmd.ErrOrStderr(), "fpcheck: ", 0)
			cfg.Funcs = parseFuncs(funcs)
			logger.Printf("dispatch level %v, %d samples per function, seed %d", math.Level(), cfg.Samples, cfg.Seed)

			results, err := Sweep(cfg, logger)
			if err != nil {
				return err
			}
			if err := WriteReport(cmd.OutOrStdout(), results); err != nil {
				return err
			}
			if maxULP > 0 {
				if failed := Exceeding(results, maxULP); len(failed) > 0 {
					return fmt.Errorf("error above %g ulp in %s", maxULP, strings.Join(failed, ", "))
				}
			}
			return nil
		},
	}

	f := cmd.Flags()
	f.StringVar(&funcs, "func", "", "comma-separated functions ("+strings.Join(FunctionNames(), ",")+"); default all")
	f.Float64Var(&cfg.From, "from", -10, "lower end of the sampled interval")
	f.Float64Var(&cfg.To, "to", 10, "upper end of the sampled interval")
	f.IntVar(&cfg.Samples, "samples", 10000, "samples per function")
	f.Int64Var(&cfg.Seed, "seed", 1, "random seed")
	f.StringVar(&cfg.Scale, "scale", ScaleLinear, "sample spacing: linear or log (log needs 0 < from < to)")
	f.StringVar(&cfg.Ref, "ref", RefDoubleDouble, "reference: dd or std")
	f.IntVar(&cfg.Workers, "workers", 0, "parallel workers (default GOMAXPROCS)")
	f.Float64Var(&maxULP, "max-ulp", 0, "fail when any function exceeds this error")
	return cmd
}

func newInfoCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "info",
		Short: "Print the CPU features and dispatch level in use",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			info := cpuinfo.Detect()
			out := cmd.OutOrStdout()
			fmt.Fprintf(out, "cpu:      %s\n", info)
			fmt.Fprintf(out, "fma:      %v\n", info.FMA)
			fmt.Fprintf(out, "kernels:  %v\n", math.Level())
		},
	}
}

func parseFuncs(s string) []string {
	var result []string
	for _, p := range strings.Split(s, ",") {
		p = strings.ToLower(strings.TrimSpace(p))
		if p != "" {
			result = append(result, p)
		}
	}
	return result
}
