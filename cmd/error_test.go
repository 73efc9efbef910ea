package cmd

import (
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/k1LoW/slicon/version"
)

func TestDumpError(t *testing.T) {
	chdir(t, t.TempDir())
	if err := os.WriteFile("icons", []byte("not a directory"), 0o644); err != nil {
		t.Fatal(err)
	}
	_, rerr := run(t)
	if rerr == nil {
		t.Fatal("want error when the output directory cannot be created")
	}

	dumpPath := filepath.Join(t.TempDir(), "state", "error.json")
	if err := dumpError(rerr, dumpPath); err != nil {
		t.Fatal(err)
	}
	b, err := os.ReadFile(dumpPath)
	if err != nil {
		t.Fatal(err)
	}
	var got struct {
		LatestLogs  []map[string]any `json:"latest_logs"`
		StackTraces any              `json:"stack_traces"`
		Version     string           `json:"version"`
	}
	if err := json.Unmarshal(b, &got); err != nil {
		t.Fatalf("error.json is not valid JSON: %v\n%s", err, b)
	}
	if got.Version != version.Version {
		t.Errorf("version = %q, want %q", got.Version, version.Version)
	}
	if got.StackTraces == nil {
		t.Error("stack_traces is empty")
	}
	found := false
	for _, l := range got.LatestLogs {
		if l["msg"] == "failed to create output directory" {
			found = true
		}
	}
	if !found {
		t.Errorf("latest_logs does not contain the failure record:\n%s", b)
	}
}
