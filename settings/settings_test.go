package settings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/oomph-ac/strafe/oerror"
)

func TestSaveAndLoadDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	if err := SaveDefault(path); err != nil {
		t.Fatalf("unexpected error saving default settings: %v", err)
	}
	if err := SaveDefault(path); err == nil {
		t.Fatalf("expected an error when the settings file already exists")
	}

	s, err := Load(path)
	if err != nil {
		t.Fatalf("unexpected error loading settings: %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Fatalf("loaded settings differ from the defaults (-want +got):\n%s", diff)
	}
}

func TestLoadMissing(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "missing.toml")); err == nil {
		t.Fatalf("expected an error for a missing settings file")
	}
}

func TestLoadMalformed(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	if err := os.WriteFile(path, []byte("[Player\nGroundSpeed = "), 0644); err != nil {
		t.Fatalf("unexpected error writing settings: %v", err)
	}
	if _, err := Load(path); err == nil {
		t.Fatalf("expected an error for a malformed settings file")
	}
}

func TestLoadOrCreate(t *testing.T) {
	path := filepath.Join(t.TempDir(), "strafe.toml")
	s, err := LoadOrCreate(path)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, err := os.Stat(path); err != nil {
		t.Fatalf("expected the settings file to be created: %v", err)
	}
	if diff := cmp.Diff(Default(), s); diff != "" {
		t.Fatalf("created settings differ from the defaults (-want +got):\n%s", diff)
	}
}

func TestValidate(t *testing.T) {
	if err := Default().Validate(); err != nil {
		t.Fatalf("default settings must be valid: %v", err)
	}

	s := Default()
	s.Player.Stand.Radius = 0
	if err := s.Validate(); !oerror.IsKind(err, oerror.KindConfig) {
		t.Fatalf("expected a config error for a zero radius, got %v", err)
	}

	s = Default()
	s.Abilities.Noclip.MinScale = 0
	if err := s.Validate(); !oerror.IsKind(err, oerror.KindConfig) {
		t.Fatalf("expected a config error for a zero noclip scale, got %v", err)
	}
}
