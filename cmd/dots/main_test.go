package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func TestSimsCommand(t *testing.T) {
	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"sims"})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "dots") {
		t.Fatalf("sims output = %q, want it to list dots", out.String())
	}
}

func TestHeadlessCommandWritesPNG(t *testing.T) {
	dir := t.TempDir()
	png := filepath.Join(dir, "frame.png")
	cfgPath := filepath.Join(dir, "dots.yaml")
	if err := os.WriteFile(cfgPath, []byte("width: 40\nheight: 30\ndots: 500\n"), 0644); err != nil {
		t.Fatal(err)
	}

	var out bytes.Buffer
	cmd := newRootCmd()
	cmd.SetOut(&out)
	cmd.SetArgs([]string{"headless", "--config", cfgPath, "--dots", "120", "--frames", "4", "--click", "20,15@1", "--out", png})
	if err := cmd.Execute(); err != nil {
		t.Fatal(err)
	}
	if !strings.Contains(out.String(), "40x30") {
		t.Fatalf("report missing size: %q", out.String())
	}
	info, err := os.Stat(png)
	if err != nil {
		t.Fatal(err)
	}
	if info.Size() == 0 {
		t.Fatal("empty PNG")
	}
}
