package main

import (
	"testing"

	"github.com/spf13/pflag"

	"github.com/marcislaughter/bible-cryptogram/internal/verse"
)

func TestEnvName(t *testing.T) {
	tests := map[string]string{
		"db":        "VERSEGAMES_DB",
		"log-level": "VERSEGAMES_LOG_LEVEL",
		"fps":       "VERSEGAMES_FPS",
	}
	for flag, want := range tests {
		if got := envName(flag); got != want {
			t.Errorf("envName(%q) = %q, want %q", flag, got, want)
		}
	}
}

func TestApplyEnvSetsUnchangedFlags(t *testing.T) {
	t.Setenv("VERSEGAMES_FPS", "30")
	t.Setenv("VERSEGAMES_DB", "/tmp/env.db")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fps := fs.Int("fps", 60, "")
	db := fs.String("db", "default.db", "")
	if err := fs.Parse([]string{"--db", "cli.db"}); err != nil {
		t.Fatal(err)
	}

	if err := applyEnv(fs); err != nil {
		t.Fatalf("applyEnv: %v", err)
	}
	if *fps != 30 {
		t.Errorf("fps = %d, want 30 from env", *fps)
	}
	if *db != "cli.db" {
		t.Errorf("db = %q, command line must win over env", *db)
	}
}

func TestApplyEnvRejectsBadValue(t *testing.T) {
	t.Setenv("VERSEGAMES_FPS", "fast")

	fs := pflag.NewFlagSet("test", pflag.ContinueOnError)
	fs.Int("fps", 60, "")

	if err := applyEnv(fs); err == nil {
		t.Error("expected error for non-numeric VERSEGAMES_FPS")
	}
}

func TestResolveReference(t *testing.T) {
	corpus := verse.Default()

	ref, err := resolveReference(corpus, "John 3:16")
	if err != nil || ref != "John 3:16" {
		t.Errorf("verse: got %q, %v", ref, err)
	}

	ref, err = resolveReference(corpus, " Psalm 23 ")
	if err != nil || ref != "Psalm 23:1" {
		t.Errorf("chapter: got %q, %v", ref, err)
	}

	if _, err := resolveReference(corpus, "Hezekiah 1:1"); err == nil {
		t.Error("expected error for unknown reference")
	}
}
