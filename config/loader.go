package config

import (
	"fmt"
	"strings"

	"github.com/spf13/viper"
)

// Load assembles an immutable GameConfig from an optional TOML file plus
// VECTOR_ROCKS_* environment overrides. A missing file is not an error; the
// defaults are a complete playable configuration. The simulation core never
// sees viper, only the returned value.
func Load(configDir string) (GameConfig, error) {
	v := viper.New()

	def := Default()
	v.SetDefault("controller", "human")
	v.SetDefault("profile", "balanced")
	v.SetDefault("leaderboard", "local-top10")
	v.SetDefault("physics", "arcade")
	v.SetDefault("fragmentation", "classic-split")
	v.SetDefault("collision", "player-only")
	v.SetDefault("upgrades", def.UpgradesEnabled)
	v.SetDefault("guard.enabled", def.GuardEnabled)
	v.SetDefault("guard.allow_auto_downgrade", def.AllowAutoDowngrade)
	v.SetDefault("seed", int64(def.Seed))
	v.SetDefault("budgets.max_bodies", def.Budgets.MaxBodies)
	v.SetDefault("budgets.frag_event_cap", def.Budgets.FragEventCap)
	v.SetDefault("budgets.debris_ttl_ms", def.Budgets.DebrisTTLMs)
	v.SetDefault("budgets.big_collision_radius", def.Budgets.BigCollisionRadius)
	v.SetDefault("budgets.v_max", def.Budgets.VMax)

	v.SetConfigName("vector-rocks")
	v.SetConfigType("toml")
	v.AddConfigPath(configDir)
	v.SetEnvPrefix("VECTOR_ROCKS")
	v.SetEnvKeyReplacer(strings.NewReplacer(".", "_"))
	v.AutomaticEnv()

	if err := v.ReadInConfig(); err != nil {
		if _, notFound := err.(viper.ConfigFileNotFoundError); !notFound {
			return GameConfig{}, fmt.Errorf("reading config file: %w", err)
		}
	}

	cfg := def
	var err error
	if cfg.Controller, err = parseController(v.GetString("controller")); err != nil {
		return GameConfig{}, err
	}
	if cfg.Profile, err = ParseProfile(v.GetString("profile")); err != nil {
		return GameConfig{}, err
	}
	if cfg.Leaderboard, err = parseLeaderboard(v.GetString("leaderboard")); err != nil {
		return GameConfig{}, err
	}
	if cfg.Physics, err = parsePhysics(v.GetString("physics")); err != nil {
		return GameConfig{}, err
	}
	if cfg.Fragmentation, err = ParseFragmentation(v.GetString("fragmentation")); err != nil {
		return GameConfig{}, err
	}
	if cfg.Collision, err = ParseCollision(v.GetString("collision")); err != nil {
		return GameConfig{}, err
	}

	cfg.UpgradesEnabled = v.GetBool("upgrades")
	cfg.GuardEnabled = v.GetBool("guard.enabled")
	cfg.AllowAutoDowngrade = v.GetBool("guard.allow_auto_downgrade")
	cfg.Seed = uint64(v.GetInt64("seed"))

	cfg.Budgets.MaxBodies = v.GetInt("budgets.max_bodies")
	cfg.Budgets.FragEventCap = v.GetInt("budgets.frag_event_cap")
	cfg.Budgets.DebrisTTLMs = v.GetInt("budgets.debris_ttl_ms")
	cfg.Budgets.BigCollisionRadius = v.GetFloat64("budgets.big_collision_radius")
	cfg.Budgets.VMax = v.GetInt("budgets.v_max")

	if cfg.Budgets.MaxBodies < 1 || cfg.Budgets.FragEventCap < 1 || cfg.Budgets.VMax < 3 {
		return GameConfig{}, fmt.Errorf("invalid budgets: %+v", cfg.Budgets)
	}
	return cfg, nil
}

func parseController(s string) (ControllerMode, error) {
	switch strings.ToLower(s) {
	case "human":
		return ControllerHuman, nil
	case "autopilot", "ai":
		return ControllerAutopilot, nil
	}
	return 0, fmt.Errorf("unknown controller mode %q", s)
}

// ParseProfile resolves an autopilot profile name
func ParseProfile(s string) (AiProfile, error) {
	switch strings.ToLower(s) {
	case "casual":
		return ProfileCasual, nil
	case "balanced":
		return ProfileBalanced, nil
	case "veteran":
		return ProfileVeteran, nil
	}
	return 0, fmt.Errorf("unknown ai profile %q", s)
}

func parseLeaderboard(s string) (LeaderboardMode, error) {
	switch strings.ToLower(s) {
	case "off":
		return LeaderboardOff, nil
	case "local-top10", "local":
		return LeaderboardLocalTop10, nil
	}
	return 0, fmt.Errorf("unknown leaderboard mode %q", s)
}

func parsePhysics(s string) (PhysicsMode, error) {
	switch strings.ToLower(s) {
	case "off":
		return PhysicsOff, nil
	case "arcade":
		return PhysicsArcade, nil
	case "lite":
		return PhysicsLite, nil
	}
	return 0, fmt.Errorf("unknown physics mode %q", s)
}

// ParseFragmentation resolves a fragmentation mode name
func ParseFragmentation(s string) (FragmentationMode, error) {
	switch strings.ToLower(s) {
	case "off":
		return FragmentationOff, nil
	case "classic-split", "classic":
		return FragmentationClassicSplit, nil
	case "slice-only", "slice":
		return FragmentationSliceOnly, nil
	case "explode":
		return FragmentationExplode, nil
	case "full":
		return FragmentationFull, nil
	}
	return 0, fmt.Errorf("unknown fragmentation mode %q", s)
}

// ParseCollision resolves a collision policy name
func ParseCollision(s string) (CollisionPolicy, error) {
	switch strings.ToLower(s) {
	case "player-only", "player":
		return CollisionPlayerOnly, nil
	case "big-only", "big":
		return CollisionBigOnly, nil
	case "full":
		return CollisionFull, nil
	}
	return 0, fmt.Errorf("unknown collision policy %q", s)
}
