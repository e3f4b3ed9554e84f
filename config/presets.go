package config

// Preset couples a selectable configuration with its menu label
type Preset struct {
	Label  string
	Config GameConfig
}

// DefaultPresets returns the run configurations offered at startup
func DefaultPresets() []Preset {
	return []Preset{
		{Label: "Classic", Config: classic()},
		{Label: "Arcade Upgrades", Config: arcadeUpgrades()},
		{Label: "AI Autopilot", Config: aiAutopilot()},
	}
}

func classic() GameConfig {
	return Default()
}

func arcadeUpgrades() GameConfig {
	cfg := Default()
	cfg.Budgets = ArcadeBudgets()
	cfg.UpgradesEnabled = true
	return cfg
}

func aiAutopilot() GameConfig {
	cfg := Default()
	cfg.Controller = ControllerAutopilot
	cfg.Profile = ProfileBalanced
	return cfg
}
