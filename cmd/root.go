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
	"encoding/json"
	"fmt"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/k1LoW/errors"
	"github.com/k1LoW/slicon"
	"github.com/k1LoW/slicon/config"
	"github.com/k1LoW/slicon/handler/dot"
	"github.com/k1LoW/slicon/version"
	"github.com/k1LoW/tail"
	slogmulti "github.com/samber/slog-multi"
	"github.com/spf13/cobra"
)

var profile string

// tb keeps the latest JSON log lines for error.json.
var tb = tail.New(100)

var rootCmd = &cobra.Command{
	Use:          version.Name,
	Short:        "slicon generates the SL application icons",
	Long:         `slicon generates the SL application icons (icons/icon-512.png and icons/icon-192.png).`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	Version:      fmt.Sprintf("%s (rev:%s)", version.Version, version.Revision),
	RunE: func(cmd *cobra.Command, args []string) error {
		g, err := newGenerator()
		if err != nil {
			return err
		}
		written, err := g.Generate(cmd.Context())
		if err != nil {
			return err
		}
		_, _ = fmt.Fprintln(cmd.OutOrStdout(), slicon.Message(written))
		return nil
	},
}

type errorData struct {
	LatestLogs  []any     `json:"latest_logs"`
	StackTraces any       `json:"stack_traces"`
	CreatedAt   time.Time `json:"created_at"`
	Version     string    `json:"version"`
	Revision    string    `json:"revision"`
}

func Execute() {
	if err := rootCmd.Execute(); err != nil {
		if err := dumpError(err, filepath.Join(config.StateHomePath(), "error.json")); err != nil {
			_, _ = fmt.Fprintf(os.Stderr, "%v\n", err)
		}
		os.Exit(1)
	}
}

// dumpError writes the latest logs and the stack traces of cerr to dumpPath.
func dumpError(cerr error, dumpPath string) error {
	var latestLogs []any
	for _, line := range tb.Lines() {
		var m map[string]any
		if err := json.Unmarshal([]byte(line), &m); err != nil {
			latestLogs = append(latestLogs, line)
		} else {
			latestLogs = append(latestLogs, m)
		}
	}
	d := &errorData{
		LatestLogs:  latestLogs,
		StackTraces: errors.StackTraces(cerr),
		CreatedAt:   time.Now(),
		Version:     version.Version,
		Revision:    version.Revision,
	}
	b, err := json.Marshal(d)
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(dumpPath), 0o700); err != nil {
		return fmt.Errorf("failed to create %s: %w", filepath.Dir(dumpPath), err)
	}
	if err := os.WriteFile(dumpPath, b, 0o600); err != nil {
		return fmt.Errorf("failed to write error.json to %s: %w", dumpPath, err)
	}
	return nil
}

func newLogger() *slog.Logger {
	return slog.New(
		slogmulti.Fanout(
			dot.New(slog.NewTextHandler(os.Stderr, nil)),
			slog.NewJSONHandler(tb, &slog.HandlerOptions{Level: slog.LevelDebug}),
		),
	)
}

func newGenerator() (*slicon.Generator, error) {
	cfg, err := config.Load(profile)
	if err != nil {
		return nil, err
	}
	fontPaths := append(cfg.FontPaths, slicon.SystemFontDirs()...)
	return slicon.New(
		slicon.WithLogger(newLogger()),
		slicon.WithFontPaths(fontPaths...),
	)
}

func init() {
	rootCmd.PersistentFlags().StringVarP(&profile, "profile", "", "", "profile name")
}
