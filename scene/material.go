package scene

// Material is a PBR surface description stored in the stage's looks library.
type Material struct {
	Name      string
	Diffuse   [3]float64
	Metallic  float64
	Roughness float64
	IOR       float64
}

// Galvanized returns the default galvanized-steel look bound to generated
// duct work.
func Galvanized() Material {
	return Material{
		Name:      "GalvanizedSteel",
		Diffuse:   [3]float64{0.25, 0.25, 0.27},
		Metallic:  0.9,
		Roughness: 0.35,
		IOR:       2.5,
	}
}

// GetOrCreateMaterial returns the material registered under name, creating
// it from the given prototype on first use. Repeated calls with the same
// name return the originally stored material unchanged.
func (s *Stage) GetOrCreateMaterial(name string, proto Material) Material {
	s.mu.Lock()
	defer s.mu.Unlock()
	if m, ok := s.looks[name]; ok {
		return m
	}
	proto.Name = name
	s.looks[name] = proto
	return proto
}

// BindMaterial binds a looks-library material to the primitive at path,
// creating the material from proto on first use.
func (s *Stage) BindMaterial(path, name string, proto Material) {
	m := s.GetOrCreateMaterial(name, proto)
	s.mu.Lock()
	defer s.mu.Unlock()
	s.prim(path).Material = m.Name
}
