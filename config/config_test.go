package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestDefaultPresetsCoverPlayModes(t *testing.T) {
	presets := DefaultPresets()
	if len(presets) != 3 {
		t.Fatalf("preset count = %d, want 3", len(presets))
	}
	if presets[0].Config.Controller != ControllerHuman {
		t.Error("classic preset should use the human controller")
	}
	if presets[2].Config.Controller != ControllerAutopilot {
		t.Error("autopilot preset should use the AI controller")
	}
	if presets[2].Config.Profile != ProfileBalanced {
		t.Error("autopilot preset should default to the balanced profile")
	}
}

func TestBudgetPresets(t *testing.T) {
	classic := ClassicBudgets()
	arcade := ArcadeBudgets()
	if classic.MaxBodies != 800 {
		t.Errorf("classic MaxBodies = %d, want 800", classic.MaxBodies)
	}
	if arcade.MaxBodies <= classic.MaxBodies {
		t.Error("arcade preset should allow more bodies than classic")
	}
}

func TestCollisionDowngradeLadder(t *testing.T) {
	if CollisionFull.Downgraded() != CollisionBigOnly {
		t.Error("full should downgrade to big-only")
	}
	if CollisionBigOnly.Downgraded() != CollisionPlayerOnly {
		t.Error("big-only should downgrade to player-only")
	}
	if CollisionPlayerOnly.Downgraded() != CollisionPlayerOnly {
		t.Error("player-only is the floor")
	}
}

func TestLoadMissingFileUsesDefaults(t *testing.T) {
	cfg, err := Load(t.TempDir())
	if err != nil {
		t.Fatalf("Load with no config file: %v", err)
	}
	if cfg.Collision != CollisionPlayerOnly || cfg.Fragmentation != FragmentationClassicSplit {
		t.Errorf("defaults not applied: %+v", cfg)
	}
	if cfg.Budgets != ClassicBudgets() {
		t.Errorf("default budgets mismatch: %+v", cfg.Budgets)
	}
}

func TestLoadParsesFile(t *testing.T) {
	dir := t.TempDir()
	content := []byte("collision = \"full\"\nfragmentation = \"explode\"\nseed = 1234\n\n[budgets]\nmax_bodies = 500\n")
	if err := os.WriteFile(filepath.Join(dir, "vector-rocks.toml"), content, 0o644); err != nil {
		t.Fatal(err)
	}

	cfg, err := Load(dir)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if cfg.Collision != CollisionFull {
		t.Errorf("collision = %v, want full", cfg.Collision)
	}
	if cfg.Fragmentation != FragmentationExplode {
		t.Errorf("fragmentation = %v, want explode", cfg.Fragmentation)
	}
	if cfg.Seed != 1234 {
		t.Errorf("seed = %d, want 1234", cfg.Seed)
	}
	if cfg.Budgets.MaxBodies != 500 {
		t.Errorf("max_bodies = %d, want 500", cfg.Budgets.MaxBodies)
	}
}

func TestLoadRejectsUnknownEnums(t *testing.T) {
	dir := t.TempDir()
	content := []byte("collision = \"everything\"\n")
	if err := os.WriteFile(filepath.Join(dir, "vector-rocks.toml"), content, 0o644); err != nil {
		t.Fatal(err)
	}
	if _, err := Load(dir); err == nil {
		t.Error("unknown collision policy should be rejected")
	}
}

func TestEnumStrings(t *testing.T) {
	cases := []struct {
		got, want string
	}{
		{CollisionBigOnly.String(), "big-only"},
		{FragmentationSliceOnly.String(), "slice-only"},
		{PhysicsArcade.String(), "arcade"},
		{ProfileVeteran.String(), "veteran"},
	}
	for _, c := range cases {
		if c.got != c.want {
			t.Errorf("String() = %q, want %q", c.got, c.want)
		}
	}
}
