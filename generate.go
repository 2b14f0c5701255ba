package conduit

import (
	"github.com/fabworks/conduit/config"
	"go.uber.org/zap"
	"gonum.org/v1/gonum/spatial/r3"
)

// Result is the output of one generation call: the local-space mesh, the two
// mating ports and the parameter record for later regeneration.
type Result struct {
	Mesh   *Mesh
	Start  Port
	End    Port
	Record Record
}

// Generator runs the geometry pipeline with a fixed set of fabrication
// constants. The zero value is not usable; use New. Generators are pure and
// stateless, so one may serve any number of concurrent calls.
type Generator struct {
	fab config.Fabrication
	log *zap.Logger
}

// New returns a Generator using the given fabrication constants. A nil
// logger disables logging.
func New(fab config.Fabrication, log *zap.Logger) *Generator {
	if log == nil {
		log = zap.NewNop()
	}
	return &Generator{fab: fab, log: log}
}

// Generate runs the full pipeline with default fabrication constants and no
// logging.
func Generate(p Params) (*Result, error) {
	return New(config.Default(), nil).Generate(p)
}

// Generate validates p and builds the mesh, ports and regeneration record.
// Parameter errors abort before any geometry work; failures inside optional
// blocks (flanges, stiffener) degrade to the block being omitted.
func (g *Generator) Generate(p Params) (*Result, error) {
	p.applyDefaults(g.fab)
	if err := p.validate(); err != nil {
		return nil, err
	}
	res := &Result{Record: recordOf(p)}
	switch p.kind() {
	case kindRectStraight:
		g.rectStraight(p, res)
	case kindRectBent:
		g.rectBent(p, res)
	case kindRoundStraight:
		g.roundStraight(p, res)
	case kindRoundBent:
		g.roundBent(p, res)
	}
	return res, nil
}

func (g *Generator) sweep() sweep {
	return sweep{
		leadLength:   g.fab.LeadLength,
		leadRings:    g.fab.LeadRings,
		minBendRings: g.fab.MinBendRings,
	}
}

// appendOptional appends an additive block, recovering any panic raised by
// degenerate geometry so the rest of the mesh survives.
func (g *Generator) appendOptional(m *Mesh, what string, build func() ([]r3.Vec, []int, []int)) {
	defer func() {
		if a := recover(); a != nil {
			err := &geomErr{panicObj: a}
			g.log.Warn("omitting geometry block",
				zap.String("block", what),
				zap.Error(err),
			)
		}
	}()
	pts, faceIndices, faceCounts := build()
	m.AppendBlock(pts, faceIndices, faceCounts)
}

func (g *Generator) rectStraight(p Params, res *Result) {
	rings := g.sweep().rectStraight(p.Width, p.Height, p.Length)
	m := stitchRings(rings)
	if p.AddFlanges {
		g.appendOptional(m, "start flange", func() ([]r3.Vec, []int, []int) {
			return angleFlange(rings[0], g.fab.FlangeLeg, g.fab.FlangeThickness, true)
		})
		g.appendOptional(m, "end flange", func() ([]r3.Vec, []int, []int) {
			return angleFlange(rings[len(rings)-1], g.fab.FlangeLeg, g.fab.FlangeThickness, false)
		})
	}
	if p.Length > g.fab.StiffenerThreshold {
		g.appendOptional(m, "stiffener", func() ([]r3.Vec, []int, []int) {
			return stiffener(rings[0], p.Length/2, g.fab.StiffenerLeg, g.fab.StiffenerThickness)
		})
	}
	res.Mesh = m
	res.Start = rectPort(r3.Vec{}, r3.Vec{X: -1}, p.Width, p.Height)
	res.End = rectPort(r3.Vec{X: p.Length}, r3.Vec{X: 1}, p.Width, p.Height)
}

func (g *Generator) rectBent(p Params, res *Result) {
	rings := g.sweep().rectBent(p.Width, p.Height, p.BendRadius, p.BendAngle, p.Segments)
	m := stitchRings(rings)
	if p.AddFlanges {
		g.appendOptional(m, "start flange", func() ([]r3.Vec, []int, []int) {
			return angleFlange(rings[0], g.fab.FlangeLeg, g.fab.FlangeThickness, true)
		})
		g.appendOptional(m, "end flange", func() ([]r3.Vec, []int, []int) {
			return angleFlange(rings[len(rings)-1], g.fab.FlangeLeg, g.fab.FlangeThickness, false)
		})
	}
	res.Mesh = m

	b := bendMap{radius: p.BendRadius, angle: DtoR(p.BendAngle)}
	exit, tangent := b.centerlineExit()
	end := r3.Add(exit, r3.Scale(g.fab.LeadLength, tangent))
	res.Start = rectPort(r3.Vec{X: -g.fab.LeadLength}, r3.Vec{X: -1}, p.Width, p.Height)
	res.End = rectPort(end, tangent, p.Width, p.Height)
}

func (g *Generator) roundStraight(p Params, res *Result) {
	rings := g.sweep().roundStraight(p.Diameter, p.Length, p.Segments)
	m := stitchRings(rings)
	if p.AddFlanges {
		g.appendOptional(m, "start flange", func() ([]r3.Vec, []int, []int) {
			return companionFlange(rings[0], p.Diameter, g.fab.FlangeWidth, g.fab.FlangeThickness, true)
		})
		g.appendOptional(m, "end flange", func() ([]r3.Vec, []int, []int) {
			return companionFlange(rings[len(rings)-1], p.Diameter, g.fab.FlangeWidth, g.fab.FlangeThickness, false)
		})
	}
	res.Mesh = m
	res.Start = roundPort(r3.Vec{}, r3.Vec{X: -1}, p.Diameter)
	res.End = roundPort(r3.Vec{X: p.Length}, r3.Vec{X: 1}, p.Diameter)
}

func (g *Generator) roundBent(p Params, res *Result) {
	rings := g.sweep().roundBent(p.Diameter, p.BendRadius, p.BendAngle, p.Segments)
	m := stitchRings(rings)
	if p.AddFlanges {
		g.appendOptional(m, "start flange", func() ([]r3.Vec, []int, []int) {
			return companionFlange(rings[0], p.Diameter, g.fab.FlangeWidth, g.fab.FlangeThickness, true)
		})
		g.appendOptional(m, "end flange", func() ([]r3.Vec, []int, []int) {
			return companionFlange(rings[len(rings)-1], p.Diameter, g.fab.FlangeWidth, g.fab.FlangeThickness, false)
		})
	}
	res.Mesh = m

	exit, tangent := roundCenterline(p.BendRadius, DtoR(p.BendAngle))
	end := r3.Add(exit, r3.Scale(g.fab.LeadLength, tangent))
	res.Start = roundPort(r3.Vec{X: -g.fab.LeadLength}, r3.Vec{X: -1}, p.Diameter)
	res.End = roundPort(end, tangent, p.Diameter)
}
