package cmd

import (
	"bytes"
	"image"
	"image/color"
	"image/png"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func chdir(t *testing.T, dir string) {
	t.Helper()
	wd, err := os.Getwd()
	if err != nil {
		t.Fatal(err)
	}
	if err := os.Chdir(dir); err != nil {
		t.Fatal(err)
	}
	t.Cleanup(func() {
		if err := os.Chdir(wd); err != nil {
			t.Fatal(err)
		}
	})
}

func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	out := new(bytes.Buffer)
	rootCmd.SetOut(out)
	rootCmd.SetErr(new(bytes.Buffer))
	if args == nil {
		// nil makes cobra fall back to os.Args
		args = []string{}
	}
	rootCmd.SetArgs(args)
	t.Cleanup(func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	})
	err := rootCmd.Execute()
	return out.String(), err
}

func TestRootGeneratesIcons(t *testing.T) {
	chdir(t, t.TempDir())

	got, err := run(t)
	if err != nil {
		t.Fatal(err)
	}
	if want := "Icons generated: icons/icon-192.png, icons/icon-512.png\n"; got != want {
		t.Errorf("got %q, want %q", got, want)
	}

	for _, tt := range []struct {
		path string
		size int
	}{
		{"icons/icon-512.png", 512},
		{"icons/icon-192.png", 192},
	} {
		f, err := os.Open(filepath.FromSlash(tt.path))
		if err != nil {
			t.Fatal(err)
		}
		img, err := png.Decode(f)
		_ = f.Close()
		if err != nil {
			t.Fatalf("%s is not a valid PNG: %v", tt.path, err)
		}
		if _, ok := img.(*image.RGBA); !ok || img.ColorModel() != color.RGBAModel {
			t.Errorf("%s: got %T, want *image.RGBA", tt.path, img)
		}
		raw, err := os.ReadFile(filepath.FromSlash(tt.path))
		if err != nil {
			t.Fatal(err)
		}
		// IHDR color type 2: opaque icons carry no alpha channel.
		if len(raw) < 26 || string(raw[12:16]) != "IHDR" || raw[24] != 8 || raw[25] != 2 {
			t.Errorf("%s: want an 8-bit truecolor IHDR", tt.path)
		}
		if b := img.Bounds(); b.Dx() != tt.size || b.Dy() != tt.size {
			t.Errorf("%s: got %dx%d, want %dx%d", tt.path, b.Dx(), b.Dy(), tt.size, tt.size)
		}
	}
}

func TestRootRejectsArgs(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := run(t, "extra"); err == nil {
		t.Error("want error for unexpected argument")
	}
	if _, err := os.Stat("icons"); !os.IsNotExist(err) {
		t.Errorf("icons directory should not be created, stat error = %v", err)
	}
}

func TestCheck(t *testing.T) {
	chdir(t, t.TempDir())

	if _, err := run(t, "check"); err == nil {
		t.Error("check before generation should fail")
	}
	if _, err := run(t); err != nil {
		t.Fatal(err)
	}
	got, err := run(t, "check")
	if err != nil {
		t.Fatalf("check after generation failed: %v\n%s", err, got)
	}
	if n := strings.Count(got, "OK"); n != 2 {
		t.Errorf("got %d OK lines, want 2:\n%s", n, got)
	}

	if err := os.Remove(filepath.Join("icons", "icon-192.png")); err != nil {
		t.Fatal(err)
	}
	got, err = run(t, "check")
	if err == nil {
		t.Error("check with a missing icon should fail")
	}
	if !strings.Contains(got, "NOT FOUND") {
		t.Errorf("output does not report the missing icon:\n%s", got)
	}
}
