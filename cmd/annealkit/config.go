package main

import (
	"fmt"
	"os"

	"github.com/spf13/pflag"
	"gopkg.in/yaml.v3"

	"github.com/gitrdm/annealkit/pkg/anneal"
)

// preset is the YAML shape of a parameter file. Absent fields keep the
// puzzle's defaults, so a preset only has to name what it changes.
type preset struct {
	InitialTemp   *float64 `yaml:"initial_temp"`
	CoolingRate   *float64 `yaml:"cooling_rate"`
	MinTemp       *float64 `yaml:"min_temp"`
	MaxIterations *int     `yaml:"max_iterations"`
	MaxRestarts   *int     `yaml:"max_restarts"`
}

// loadPreset overlays the preset file at path onto base and validates
// the result.
func loadPreset(path string, base anneal.Params) (anneal.Params, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return anneal.Params{}, fmt.Errorf("reading preset: %w", err)
	}
	var p preset
	if err := yaml.Unmarshal(data, &p); err != nil {
		return anneal.Params{}, fmt.Errorf("parsing preset %s: %w", path, err)
	}

	out := base
	if p.InitialTemp != nil {
		out.InitialTemp = *p.InitialTemp
	}
	if p.CoolingRate != nil {
		out.CoolingRate = *p.CoolingRate
	}
	if p.MinTemp != nil {
		out.MinTemp = *p.MinTemp
	}
	if p.MaxIterations != nil {
		out.MaxIterations = *p.MaxIterations
	}
	if p.MaxRestarts != nil {
		out.MaxRestarts = *p.MaxRestarts
	}
	if err := out.Validate(); err != nil {
		return anneal.Params{}, fmt.Errorf("preset %s: %w", path, err)
	}
	return out, nil
}

// paramFlags are the per-command parameter overrides. Flags that the
// user actually set win over both defaults and preset values.
type paramFlags struct {
	temp       float64
	cooling    float64
	minTemp    float64
	iterations int
	restarts   int
}

// registerParamFlags wires the shared parameter flags onto a command's
// flag set with the puzzle's defaults.
func registerParamFlags(fs *pflag.FlagSet, f *paramFlags, def anneal.Params) {
	fs.Float64Var(&f.temp, "temp", def.InitialTemp, "Initial temperature")
	fs.Float64Var(&f.cooling, "cooling", def.CoolingRate, "Multiplicative cooling rate in (0,1)")
	fs.Float64Var(&f.minTemp, "min-temp", def.MinTemp, "Temperature floor")
	fs.IntVar(&f.iterations, "iterations", def.MaxIterations, "Iteration budget per attempt")
	fs.IntVar(&f.restarts, "restarts", def.MaxRestarts, "Restart budget after the first attempt")
}

// resolveParams layers defaults, an optional preset file, and explicit
// flag overrides into the final parameter set.
func resolveParams(fs *pflag.FlagSet, f *paramFlags, def anneal.Params) (anneal.Params, error) {
	params := def
	if flagPreset != "" {
		loaded, err := loadPreset(flagPreset, def)
		if err != nil {
			return anneal.Params{}, err
		}
		params = loaded
	}
	if fs.Changed("temp") {
		params.InitialTemp = f.temp
	}
	if fs.Changed("cooling") {
		params.CoolingRate = f.cooling
	}
	if fs.Changed("min-temp") {
		params.MinTemp = f.minTemp
	}
	if fs.Changed("iterations") {
		params.MaxIterations = f.iterations
	}
	if fs.Changed("restarts") {
		params.MaxRestarts = f.restarts
	}
	if err := params.Validate(); err != nil {
		return anneal.Params{}, err
	}
	return params, nil
}
