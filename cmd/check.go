/*
Copyright © 2025 Ken'ichiro Oyama <k1lowxb@gmail.com>

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

	"github.com/fatih/color"
	"github.com/k1LoW/slicon"
	"github.com/spf13/cobra"
)

var checkCmd = &cobra.Command{
	Use:   "check",
	Short: "check that generated icons are present and up to date",
	Long:  `check that generated icons are present, valid PNG files of the right size, and match a fresh render.`,
	Args:  cobra.NoArgs,
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		results, err := g.Check(cmd.Context())
		if err != nil {
			return err
		}

		green := color.New(color.FgGreen)
		red := color.New(color.FgRed)
		yellow := color.New(color.FgYellow)
		out := cmd.OutOrStdout()

		failed := 0
		for _, r := range results {
			_, _ = fmt.Fprintf(out, "🔍 Checking %s (%dx%d) ... ", r.Spec.Path, r.Spec.Size, r.Spec.Size)
			switch r.Status {
			case slicon.CheckOK:
				_, _ = green.Fprintln(out, "✓ OK")
			case slicon.CheckStale:
				failed++
				_, _ = yellow.Fprintln(out, "⚠️ STALE")
				_, _ = fmt.Fprintf(out, "   Perceptual distance to a fresh render: %d\n", r.Distance)
			case slicon.CheckSizeMismatch:
				failed++
				_, _ = red.Fprintln(out, "✗ SIZE MISMATCH")
			case slicon.CheckMissing:
				failed++
				_, _ = red.Fprintln(out, "✗ NOT FOUND")
			default:
				failed++
				_, _ = red.Fprintln(out, "✗ INVALID")
				if r.Err != nil {
					_, _ = fmt.Fprintf(out, "   %v\n", r.Err)
				}
			}
		}
		if failed > 0 {
			return fmt.Errorf("%d of %d icons need to be regenerated; run %s", failed, len(results), rootCmd.Name())
		}
		return nil
	},
}

func init() {
	rootCmd.AddCommand(checkCmd)
}
