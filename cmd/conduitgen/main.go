// Command conduitgen generates a duct or pipe section from command-line
// parameters and writes it as binary STL plus a yaml regeneration record.
package main

import (
	"flag"
	"os"
	"strings"

	"github.com/fabworks/conduit"
	"github.com/fabworks/conduit/config"
	"github.com/fabworks/conduit/internal/logger"
	"github.com/fabworks/conduit/render"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

func main() {
	var (
		shape      = flag.String("shape", "rectangular", "cross-section: rectangular or round")
		system     = flag.String("system", "duct", "system type: duct or pipe")
		width      = flag.Float64("width", 20, "duct width (rectangular)")
		height     = flag.Float64("height", 10, "duct height (rectangular)")
		diameter   = flag.Float64("diameter", 12, "duct diameter (round)")
		length     = flag.Float64("length", 24, "total length of a straight run")
		radius     = flag.Float64("radius", 30, "bend centerline radius")
		angle      = flag.Float64("angle", 0, "bend angle in degrees, 0 for straight")
		segments   = flag.Int("segments", 0, "tessellation count, 0 for default")
		noFlanges  = flag.Bool("no-flanges", false, "skip connection flanges")
		fabPath    = flag.String("fab", "", "yaml file overriding fabrication constants")
		out        = flag.String("o", "conduit.stl", "output STL path")
		recordPath = flag.String("record", "", "output yaml record path (default: output path with .yaml)")
		level      = flag.String("log-level", "info", "log level: debug, info, warn, error")
		logFile    = flag.String("log-file", "", "optional rotated log file")
	)
	flag.Parse()

	log := logger.New(*level, *logFile)
	defer log.Sync()

	fab := config.Default()
	if *fabPath != "" {
		var err error
		fab, err = config.Load(*fabPath)
		if err != nil {
			log.Fatal("loading fabrication config", zap.Error(err))
		}
	}

	params := conduit.Params{
		Width:      *width,
		Height:     *height,
		Diameter:   *diameter,
		Length:     *length,
		BendRadius: *radius,
		BendAngle:  *angle,
		Segments:   *segments,
		AddFlanges: !*noFlanges,
	}
	switch strings.ToLower(*shape) {
	case "round":
		params.Shape = conduit.Round
	default:
		params.Shape = conduit.Rectangular
	}
	switch strings.ToLower(*system) {
	case "pipe":
		params.System = conduit.Pipe
	default:
		params.System = conduit.Duct
	}

	gen := conduit.New(fab, log)
	res, err := gen.Generate(params)
	if err != nil {
		log.Fatal("generation failed", zap.Error(err))
	}

	tris, err := render.Triangulate(res.Mesh)
	if err != nil {
		log.Fatal("mesh invalid", zap.Error(err))
	}
	if err := render.CreateSTL(*out, tris); err != nil {
		log.Fatal("writing STL", zap.Error(err))
	}

	recPath := *recordPath
	if recPath == "" {
		recPath = strings.TrimSuffix(*out, ".stl") + ".yaml"
	}
	recData, err := yaml.Marshal(res.Record)
	if err != nil {
		log.Fatal("encoding record", zap.Error(err))
	}
	if err := os.WriteFile(recPath, recData, 0o644); err != nil {
		log.Fatal("writing record", zap.Error(err))
	}

	log.Info("generated conduit",
		zap.String("type", res.Record.Tag),
		zap.Int("points", len(res.Mesh.Points)),
		zap.Int("faces", res.Mesh.NumFaces()),
		zap.String("stl", *out),
		zap.String("record", recPath),
	)
}
