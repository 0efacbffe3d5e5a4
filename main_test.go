package main

import (
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"
)

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	for _, k := range []string{"HOTEL_STORE", "HOTEL_SEED_FILE", "HOTEL_LOG_LEVEL"} {
		t.Setenv(k, "")
	}
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(append([]string{"--env-file", filepath.Join(t.TempDir(), "none.env")}, args...))
	err := cmd.Execute()
	return out.String(), err
}

func TestRoomsCommand(t *testing.T) {
	for _, store := range []string{"memory", "sqlite"} {
		t.Run(store, func(t *testing.T) {
			out, err := execute(t, "rooms", "--store", store)
			if err != nil {
				t.Fatalf("rooms: %v\n%s", err, out)
			}
			for _, want := range []string{"101", "Standard", "$300.00", "Available"} {
				if !strings.Contains(out, want) {
					t.Fatalf("output missing %q:\n%s", want, out)
				}
			}
		})
	}
}

func TestRoomsCommandSeedFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "rooms.yaml")
	doc := "rooms:\n  - {number: 9, category: Loft, price: \"75.25\"}\n"
	if err := os.WriteFile(path, []byte(doc), 0o644); err != nil {
		t.Fatalf("write file: %v", err)
	}
	out, err := execute(t, "rooms", "--seed", path)
	if err != nil {
		t.Fatalf("rooms: %v\n%s", err, out)
	}
	if !strings.Contains(out, "Loft") || !strings.Contains(out, "$75.25") || strings.Contains(out, "Suite") {
		t.Fatalf("unexpected inventory:\n%s", out)
	}
}

func TestRejectsBadConfig(t *testing.T) {
	if _, err := execute(t, "rooms", "--store", "redis"); err == nil {
		t.Fatalf("expected invalid store error")
	}
	if _, err := execute(t, "rooms", "--log-level", "loud"); err == nil {
		t.Fatalf("expected invalid log level error")
	}
	if _, err := execute(t, "rooms", "--seed", filepath.Join(t.TempDir(), "missing.yaml")); err == nil {
		t.Fatalf("expected missing seed file error")
	}
}
