package main

import (
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// Scenario names one controller stack and its Param knobs, per spec
// 6's "recognized design knobs per controller" table. Plant selects
// the simulated plant, "dcm" or "heater"; the ema and lqe filter
// blocks are both optional with either plant, and the EMA filter is
// used when both are present.
type Scenario struct {
	Plant   string  `yaml:"plant"` // "dcm" or "heater"
	Samples int     `yaml:"samples"`
	Dt      float64 `yaml:"dt"`
	Setpoint float64 `yaml:"setpoint"`

	EMA *struct {
		Alpha float64 `yaml:"alpha"`
	} `yaml:"ema"`

	LQE *struct {
		F, H, Q, R float64
	} `yaml:"lqe"`

	PID struct {
		P float64  `yaml:"p"`
		I *float64 `yaml:"i"`
		D *float64 `yaml:"d"`
	} `yaml:"pid"`

	DCM *struct {
		R float64 `yaml:"R"`
		L float64 `yaml:"L"`
		K float64 `yaml:"K"`
		J float64 `yaml:"J"`
	} `yaml:"dcm"`

	Heater *struct {
		C, Mass, RTh, TEnv float64
	} `yaml:"heater"`
}

// LoadScenario reads and validates a YAML scenario file, the
// cmd/ctrlbench analogue of the teacher's deviceid.go reading
// tocalls.yaml.
func LoadScenario(path string) (Scenario, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return Scenario{}, fmt.Errorf("ctrlbench: reading scenario: %w", err)
	}

	var sc Scenario
	if err := yaml.Unmarshal(raw, &sc); err != nil {
		return Scenario{}, fmt.Errorf("ctrlbench: parsing scenario: %w", err)
	}

	if sc.Samples <= 0 {
		return Scenario{}, fmt.Errorf("ctrlbench: samples must be positive, got %d", sc.Samples)
	}
	if sc.Dt <= 0 {
		return Scenario{}, fmt.Errorf("ctrlbench: dt must be positive, got %g", sc.Dt)
	}
	if sc.Plant != "dcm" && sc.Plant != "heater" {
		return Scenario{}, fmt.Errorf("ctrlbench: plant must be \"dcm\" or \"heater\", got %q", sc.Plant)
	}
	if sc.Plant == "dcm" && sc.DCM == nil {
		return Scenario{}, fmt.Errorf("ctrlbench: plant \"dcm\" requires a dcm: block")
	}
	if sc.Plant == "heater" && sc.Heater == nil {
		return Scenario{}, fmt.Errorf("ctrlbench: plant \"heater\" requires a heater: block")
	}

	return sc, nil
}
