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
	"runtime"

	cpufeatures "github.com/blacktop/go-cpufeatures"
	"github.com/spf13/cobra"
)

func init() {
	rootCmd.AddCommand(checkCmd)
}

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "Probe the host and print its detected capability set",
	RunE: func(cmd *cobra.Command, args []string) error {
		host := cpufeatures.NewHost()
		host.Init()
		defer host.Cleanup()

		fmt.Printf("host arch:        %s\n", runtime.GOARCH)
		fmt.Printf("hardware:         %q\n", host.Hardware())
		fmt.Printf("integer division: %v\n", host.IntegerDivisionSupported())
		fmt.Printf("vector unit:      %v\n", host.VectorUnitSupported())
		fmt.Printf("hard-float ABI:   %v\n", host.HardFloatABISupported())
		fmt.Printf("store-PC offset:  %d\n", host.StorePCReadOffset())

		return nil
	},
}
