// SPDX-License-Identifier: MIT
package config

import (
	"fmt"

	"github.com/usun/usunplanning/core"
)

// Validate checks the scenario without building anything. Builder-level
// constraints such as minimum shape sizes surface later from Build.
func (s *Scenario) Validate() error {
	if s.Capacity < 0 || s.Capacity > core.MaxVertices {
		return invalid("capacity %d not in [0,%d]", s.Capacity, core.MaxVertices)
	}

	seen := make(map[string]struct{}, len(s.Vertices))
	for i, v := range s.Vertices {
		if v == "" {
			return invalid("vertices[%d] is empty", i)
		}
		if _, dup := seen[v]; dup {
			return invalid("vertices[%d] %q is listed twice", i, v)
		}
		seen[v] = struct{}{}
	}

	for i, e := range s.Edges {
		if e.From == "" || e.To == "" {
			return invalid("edges[%d] needs both from and to", i)
		}
		if e.Weight < 0 {
			return invalid("edges[%d] %s->%s has negative weight %d", i, e.From, e.To, e.Weight)
		}
	}

	if s.Shape != nil {
		return s.Shape.validate()
	}

	return nil
}

func (sh *Shape) validate() error {
	if _, ok := shapeKinds[sh.Kind]; !ok {
		return invalid("shape kind %q is unknown", sh.Kind)
	}
	if _, ok := idSchemes[sh.IDs]; !ok {
		return invalid("shape ids %q is unknown", sh.IDs)
	}
	if sh.MinWeight < 0 || sh.MaxWeight < 0 {
		return invalid("shape weights must not be negative")
	}
	if sh.MaxWeight > 0 && sh.MaxWeight < max(sh.MinWeight, 1) {
		return invalid("shape max_weight %d below min_weight %d", sh.MaxWeight, sh.MinWeight)
	}

	return nil
}

func invalid(format string, args ...any) error {
	return fmt.Errorf("%s: %w", fmt.Sprintf(format, args...), ErrInvalidScenario)
}
