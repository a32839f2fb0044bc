package main

import (
	"bytes"
	"io"
	"math"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"testing"
)

func writeDef(t *testing.T, src string) string {
	t.Helper()
	name := filepath.Join(t.TempDir(), "def.yaml")
	if err := os.WriteFile(name, []byte(src), 0o600); err != nil {
		t.Fatal(err)
	}
	return name
}

func runArgs(t *testing.T, args ...string) (string, error) {
	t.Helper()
	opts, err := parseFlags(args, io.Discard)
	if err != nil {
		return "", err
	}
	var buf bytes.Buffer
	err = run(opts, &buf)
	return buf.String(), err
}

const ramp = `
points:
  - {position: 0, value: 0}
  - {position: 10, value: 10}
`

func TestSample(t *testing.T) {
	out, err := runArgs(t, "-in", writeDef(t, ramp), "-n", "3")
	if err != nil {
		t.Fatal(err)
	}
	if want := "0,0\n5,5\n10,10\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}

	out, err = runArgs(t, "-in", writeDef(t, ramp), "-n", "2", "-from", "-5", "-to", "2")
	if err != nil {
		t.Fatal(err)
	}
	if want := "-5,0\n2,2\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestTarget(t *testing.T) {
	out, err := runArgs(t, "-in", writeDef(t, ramp), "-target", "7")
	if err != nil {
		t.Fatal(err)
	}
	pos, err := strconv.ParseFloat(strings.Split(out, ",")[0], 64)
	if err != nil {
		t.Fatal(err)
	}
	if math.Abs(pos-7) > 1e-4 {
		t.Errorf("got %q, want a position close to 7", out)
	}
}

func TestExtents(t *testing.T) {
	out, err := runArgs(t, "-in", writeDef(t, ramp), "-extents")
	if err != nil {
		t.Fatal(err)
	}
	if want := "0,10\n"; out != want {
		t.Errorf("got %q, want %q", out, want)
	}
}

func TestSplit(t *testing.T) {
	def := writeDef(t, `
name: bump
kind: hermite
points:
  - {position: 0, value: 0, velocity: 2}
  - {position: 1, value: 0, velocity: -2}
`)
	out, err := runArgs(t, "-in", def, "-split", "0.5")
	if err != nil {
		t.Fatal(err)
	}
	if n := strings.Count(out, "name: bump."); n != 2 {
		t.Errorf("got %d pieces, want 2:\n%s", n, out)
	}

	if _, err := runArgs(t, "-in", writeDef(t, ramp), "-split", "5"); err == nil {
		t.Error("splitting a plain curve succeeded")
	}
}

func TestBadArguments(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"-in", "x.yaml", "extra"},
		{"-in", "x.yaml", "-n", "1"},
		{"-bogus"},
	} {
		if _, err := parseFlags(args, io.Discard); err == nil {
			t.Errorf("parseFlags(%q) succeeded", args)
		}
	}
	if _, err := runArgs(t, "-in", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Error("missing file didn't fail")
	}
}
