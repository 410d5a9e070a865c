package main

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
)

const songLRC = "[00:01.25]<00:01.25>Hello <00:02.00>world\n[ti: Song]\n[ar: Singer]\nplain line\n"

func TestParseCommandJSON(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"parse"}, env.configPath, songLRC)
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, `"ti": "Song"`)
	requireContains(t, out, `"tag": "00:01.250"`)
	requireContains(t, out, `"text": "Hello world"`)
	if strings.Index(out, `"ti"`) > strings.Index(out, `"ar"`) {
		t.Fatalf("info order lost:\n%s", out)
	}
}

func TestParseCommandYAMLFromFile(t *testing.T) {
	env := setupCLITestEnv(t)
	path := filepath.Join(env.baseDir, "song.lrc")
	if err := os.WriteFile(path, []byte("[00:03.00]   spaced   \n"), 0o644); err != nil {
		t.Fatalf("write input: %v", err)
	}

	out, _, err := runCLI(t, []string{"parse", "--format", "yaml", "--trim-start", "--trim-end", path}, env.configPath, "")
	if err != nil {
		t.Fatalf("parse: %v", err)
	}
	requireContains(t, out, "00:03.000")
	requireContains(t, out, "text: spaced\n")
}

func TestParseCommandRejectsUnknownFormat(t *testing.T) {
	env := setupCLITestEnv(t)
	if _, _, err := runCLI(t, []string{"parse", "--format", "xml"}, env.configPath, songLRC); err == nil {
		t.Fatal("expected error for unknown format")
	}
}

func TestFormatCommandDefaults(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"format"}, env.configPath, songLRC)
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	want := "[ti: Song]\r\n[ar: Singer]\r\n[00:01.250] <00:01.250>Hello <00:02.000>world\r\nplain line\r\n"
	if out != want {
		t.Fatalf("format output = %q, want %q", out, want)
	}
}

func TestFormatCommandFlagsOverridePrefs(t *testing.T) {
	env := setupCLITestEnv(t)

	if _, _, err := runCLI(t, []string{"prefs", "set", "fixed", "2"}, env.configPath, ""); err != nil {
		t.Fatalf("prefs set: %v", err)
	}

	out, _, err := runCLI(t, []string{"format", "--eol", "lf"}, env.configPath, "[00:01.25]Hi")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "[00:01.25] Hi" {
		t.Fatalf("prefs precision not applied: %q", out)
	}

	out, _, err = runCLI(t, []string{"format", "--eol", "lf", "--precision", "0", "--space-start", "0", "--space-end", "2"}, env.configPath, "[00:01.25]Hi")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "[00:01]Hi  " {
		t.Fatalf("flags not applied: %q", out)
	}
}

func TestFormatCommandRejectsBadFlags(t *testing.T) {
	env := setupCLITestEnv(t)
	for _, args := range [][]string{
		{"format", "--precision", "7"},
		{"format", "--eol", "nl"},
		{"format", "--space-start", "100000000000"},
		{"format", "--space-end", "65"},
	} {
		if _, _, err := runCLI(t, args, env.configPath, songLRC); err == nil {
			t.Fatalf("expected error for %v", args)
		}
	}
}

func TestFormatCommandWritesOutputFile(t *testing.T) {
	env := setupCLITestEnv(t)
	target := filepath.Join(env.baseDir, "out", "song.lrc")

	out, _, err := runCLI(t, []string{"format", "--eol", "lf", "-o", target}, env.configPath, "[00:02.00]two")
	if err != nil {
		t.Fatalf("format: %v", err)
	}
	if out != "" {
		t.Fatalf("expected no stdout, got %q", out)
	}
	data, err := os.ReadFile(target)
	if err != nil {
		t.Fatalf("read output: %v", err)
	}
	if string(data) != "[00:02.000] two" {
		t.Fatalf("file content = %q", data)
	}
}

func TestShowCommand(t *testing.T) {
	env := setupCLITestEnv(t)

	out, _, err := runCLI(t, []string{"show"}, env.configPath, "[ar: Band]\n[01:02.50]one\ntwo\n")
	if err != nil {
		t.Fatalf("show: %v", err)
	}
	requireContains(t, out, "Band")
	requireContains(t, out, "01:02.50")
	requireContains(t, out, "3 lines, 1 timed, duration 01:02.50")
}

func TestMissingInputFile(t *testing.T) {
	env := setupCLITestEnv(t)
	_, _, err := runCLI(t, []string{"parse", filepath.Join(env.baseDir, "nope.lrc")}, env.configPath, "")
	if err == nil {
		t.Fatal("expected error for missing file")
	}
}
