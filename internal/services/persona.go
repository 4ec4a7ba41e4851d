package services

import (
	"fmt"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

// Persona is the system instruction the model is configured with at startup.
type Persona struct {
	Name        string `yaml:"name"`
	Instruction string `yaml:"instruction"`
}

var builtinPersonas = map[string]Persona{
	"explainer": {
		Name: "explainer",
		Instruction: "You are a neutral, non-partisan explainer of 'One Nation One Election' (ONOE) in India. " +
			"Structure every answer exactly once as: a short introduction of two or three sentences, " +
			"a bulleted list titled Pros, a bulleted list titled Cons, and a one-paragraph neutral conclusion. " +
			"Never repeat a section and never add sections beyond these four. " +
			"Do not endorse or criticise any political party or leader.",
	},
	"voter": {
		Name: "voter",
		Instruction: "You are a neutral voter awareness assistant for 'One Nation One Election' (ONOE). " +
			"Provide objective, non-partisan facts. Always present both pros and cons. " +
			"If the user asks something unrelated to elections, politely steer them back.",
	},
}

// ResolvePersona picks the persona to run with. A persona file, when given,
// takes precedence over the built-in name.
func ResolvePersona(name, file string) (Persona, error) {
	if strings.TrimSpace(file) != "" {
		return LoadPersonaFile(file)
	}

	p, ok := builtinPersonas[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return Persona{}, fmt.Errorf("unknown persona %q", name)
	}
	return p, nil
}

// LoadPersonaFile reads a persona from a YAML document:
//
//	name: explainer-hi
//	instruction: |
//	  You are ...
func LoadPersonaFile(path string) (Persona, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Persona{}, fmt.Errorf("failed to read persona file: %w", err)
	}

	var p Persona
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Persona{}, fmt.Errorf("failed to parse persona file: %w", err)
	}

	p.Instruction = strings.TrimSpace(p.Instruction)
	if p.Instruction == "" {
		return Persona{}, fmt.Errorf("persona file %s has no instruction", path)
	}
	if p.Name == "" {
		p.Name = "custom"
	}
	return p, nil
}
