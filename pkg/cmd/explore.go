// Copyright Consensys Software Inc.
//
// Licensed under the Apache License, Version 2.0 (the "License"); you may not use this file except in compliance with
// the License. You may obtain a copy of the License at
//
// http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software distributed under the License is distributed on
// an "AS IS" BASIS, WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied. See the License for the
// specific language governing permissions and limitations under the License.
//
// SPDX-License-Identifier: Apache-2.0
package cmd

import (
	"fmt"
	"os"

	"github.com/telamon-project/telamon/pkg/device"
	"github.com/telamon-project/telamon/pkg/kernel"
	"github.com/telamon-project/telamon/pkg/search"
	"github.com/telamon-project/telamon/pkg/util"
	log "github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

var exploreCmd = &cobra.Command{
	Use:   "explore [flags]",
	Short: "Build a seed kernel and report its narrowed search space.",
	Long: `Constructs one of the built-in seed kernels (axpy, by default), runs it
through SearchSpace.New against the dummy device, and prints the resulting
DimKind of d0 (axpy) or DimMapping(d0, d1) (dimmap), followed by the number
of dimensions, instructions and memory blocks.`,
	Run: func(cmd *cobra.Command, args []string) {
		if GetFlag(cmd, "verbose") {
			log.SetLevel(log.DebugLevel)
		}

		size := GetUint(cmd, "size")
		name := GetString(cmd, "kernel")

		var (
			space *search.SearchSpace
			err   error
		)

		dev := device.NewDummy()
		stats := util.NewPerfStats()

		switch name {
		case "axpy":
			fun, d0, initial := kernel.AXPY(uint32(size))
			space, err = search.New(fun, initial, dev)

			if err == nil {
				fmt.Printf("d0 (size %d): DimKind = %s\n", size, space.Domain().DimKind(d0))
			}
		case "dimmap":
			fun, d0, d1, _ := kernel.DimMap(uint32(size))
			space, err = search.New(fun, nil, dev)

			if err == nil {
				fmt.Printf("DimMapping(d0, d1) = %s\n", space.Domain().DimMapping(d0, d1))
			}
		default:
			fmt.Printf("unknown kernel %q (want axpy or dimmap)\n", name)
			os.Exit(1)
		}

		stats.Log("explore")

		if err != nil {
			fmt.Printf("dead branch: %v\n", err)
			os.Exit(1)
		}

		fmt.Printf("%d dims, %d instructions, %d memory blocks\n",
			space.IR().NumDims(), space.IR().NumInsts(), space.IR().NumMemBlocks())
	},
}

func init() {
	rootCmd.AddCommand(exploreCmd)
	exploreCmd.Flags().String("kernel", "axpy", "seed kernel to build (axpy, dimmap)")
	exploreCmd.Flags().Uint("size", 32, "dimension size")
	exploreCmd.Flags().Bool("verbose", false, "enable debug logging")
}
