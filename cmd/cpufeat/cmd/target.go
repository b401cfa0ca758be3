/*
Copyright © 2025 blacktop

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"fmt"

	cpufeatures "github.com/blacktop/go-cpufeatures"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(targetCmd)
	targetCmd.Flags().Bool("idiv", false, "Override: target supports integer division")
	targetCmd.Flags().Bool("vector", false, "Override: target has a vector unit")
}

var targetCmd = &cobra.Command{
	Use:   "target",
	Short: "Print the code generator's target capability view",
	Long: `Print the capability view a code generator would consult for the
generation target. The override flags force a simulated view with the
given capabilities, the way a simulator test harness would.`,
	RunE: func(cmd *cobra.Command, args []string) error {
		host := cpufeatures.NewHost()
		host.Init()
		defer host.Cleanup()

		var view cpufeatures.Features
		if cmd.Flags().Changed("idiv") || cmd.Flags().Changed("vector") {
			sim := cpufeatures.NewSimulatedTarget(host)
			if cmd.Flags().Changed("idiv") {
				idiv, err := cmd.Flags().GetBool("idiv")
				if err != nil {
					return err
				}
				sim.SetIntegerDivisionSupported(idiv)
			}
			if cmd.Flags().Changed("vector") {
				vector, err := cmd.Flags().GetBool("vector")
				if err != nil {
					return err
				}
				sim.SetVectorUnitSupported(vector)
			}
			view = sim
		} else {
			view = cpufeatures.NewTarget(host)
		}

		fmt.Printf("hardware:              %q\n", view.Hardware())
		fmt.Printf("integer division:      %v\n", view.IntegerDivisionSupported())
		fmt.Printf("vector unit:           %v\n", view.VectorUnitSupported())
		fmt.Printf("hard-float ABI:        %v\n", view.HardFloatABISupported())
		fmt.Printf("store-PC offset:       %d\n", view.StorePCReadOffset())
		fmt.Printf("double truncate round: %v\n", view.DoubleTruncateRoundSupported())

		return nil
	},
}
