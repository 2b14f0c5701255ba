// Package config holds the fabrication constants the geometry engine
// consumes. The numbers come from shop practice, not from the geometry math,
// so they live here as overridable configuration rather than literals in the
// algorithms.
package config

// Fabrication holds the shop constants for flanges, stiffeners and end
// sections. All lengths share the engine's linear unit.
type Fabrication struct {
	FlangeLeg          float64 `yaml:"flange_leg"`           // angle-iron leg length
	FlangeThickness    float64 `yaml:"flange_thickness"`     // angle-iron material thickness
	FlangeWidth        float64 `yaml:"flange_width"`         // companion flange radial extension
	StiffenerLeg       float64 `yaml:"stiffener_leg"`        // stiffener leg length
	StiffenerThickness float64 `yaml:"stiffener_thickness"`  // stiffener material thickness
	StiffenerThreshold float64 `yaml:"stiffener_threshold"`  // straight length above which one stiffener is added
	LeadLength         float64 `yaml:"lead_length"`          // straight section length at each end of a bend
	LeadRings          int     `yaml:"lead_rings"`           // rings per straight end section
	DefaultSegments    int     `yaml:"default_segments"`     // tessellation when the caller leaves Segments unset
	MinBendRings       int     `yaml:"min_bend_rings"`       // lower bound on round bend tessellation
}

// Default returns the fabrication constants observed in practice.
func Default() Fabrication {
	return Fabrication{
		FlangeLeg:          1.5,
		FlangeThickness:    0.125,
		FlangeWidth:        1.5,
		StiffenerLeg:       1.5,
		StiffenerThickness: 0.125,
		StiffenerThreshold: 48,
		LeadLength:         2,
		LeadRings:          3,
		DefaultSegments:    20,
		MinBendRings:       8,
	}
}
