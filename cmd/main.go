package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"path/filepath"
	"runtime"

	"github.com/alitto/pond"
	"github.com/urfave/cli/v2"

	"github.com/mferrera/seismic-forward"
	"github.com/mferrera/seismic-forward/decode"
	"github.com/mferrera/seismic-forward/encode"
	"github.com/mferrera/seismic-forward/search"
)

// buildConfig assembles a seismic.Config from a cli.Context, matching
// the §6 option set.
func buildConfig(cCtx *cli.Context) *seismic.Config {
	cfg := &seismic.Config{
		NMOCorrect:    cCtx.Bool("nmo-correct"),
		PSSeismic:     cCtx.Bool("ps-seismic"),
		TwtFile:       cCtx.String("twt-file"),
		MemoryLimit:   cCtx.Int64("memory-limit"),
		WhiteNoise:    cCtx.Bool("white-noise"),
		StdDev:        cCtx.Float64("std-dev"),
		Seed:          cCtx.Int64("seed"),
		WaveletFile:   cCtx.String("wavelet-file"),
		PeakFrequency: cCtx.Float64("peak-frequency"),
		WaveletScale:  cCtx.Float64("wavelet-scale"),
		Offsets:       cCtx.Float64Slice("offset"),
		Angles:        cCtx.Float64Slice("angle"),
		T0:            cCtx.Float64("t0"),
		Dt:            cCtx.Float64("dt"),
		Nt:            cCtx.Int("nt"),
		Z0:            cCtx.Float64("z0"),
		Dz:            cCtx.Float64("dz"),
		Nz:            cCtx.Int("nz"),
		Output: seismic.OutputFlags{
			Time:         cCtx.Bool("output-time"),
			Depth:        cCtx.Bool("output-depth"),
			ShiftedTime:  cCtx.Bool("output-timeshift"),
			TimeStack:    cCtx.Bool("output-time-stack"),
			DepthStack:   cCtx.Bool("output-depth-stack"),
			ShiftedStack: cCtx.Bool("output-timeshift-stack"),
		},
		OutputPrefix: cCtx.String("output-prefix"),
		OutputSuffix: cCtx.String("output-suffix"),
	}
	return cfg
}

// generateOne runs a full synthetic-seismic generation for one earth
// model, from ingest through to the output writers.
func generateOne(modelURI, configURI, outdirURI string, cCtx *cli.Context) error {
	cfg := buildConfig(cCtx)

	dir, file := filepath.Split(modelURI)
	if outdirURI == "" {
		outdirURI = dir
	}

	log.Println("Reading earth model:", modelURI)
	gridSpec := decode.GridSpec{NI: cCtx.Int("nx"), NJ: cCtx.Int("ny"), NK: cCtx.Int("nzrefl")}
	surfSpec := decode.SurfaceSpec{
		NX: cCtx.Int("nx"), NY: cCtx.Int("ny"),
		X0: cCtx.Float64("x0"), Y0: cCtx.Float64("y0"),
		DX: cCtx.Float64("dx"), DY: cCtx.Float64("dy"),
	}
	uris := decode.EarthModelURIs{
		Vp: modelURI + "/vp.grid", Vs: modelURI + "/vs.grid", Rho: modelURI + "/rho.grid",
		Twt: modelURI + "/twt.grid", Z: modelURI + "/z.grid",
		TwtShift:    cfg.TwtFile,
		TopTime:     modelURI + "/toptime.surf",
		BottomDepth: modelURI + "/botdepth.surf",
		TraceStatus: cCtx.String("trace-status-file"),
		ConstVp:     cCtx.Float64("const-vp"),
		ConstVs:     cCtx.Float64("const-vs"),
		ConstRho:    cCtx.Float64("const-rho"),
	}
	model, err := decode.ReadEarthModel(uris, configURI, gridSpec, surfSpec)
	if err != nil {
		return err
	}

	log.Println("Reading wavelet")
	var wavelet *seismic.Wavelet
	if cfg.WaveletFile != "" {
		wavelet, err = decode.ReadLandmarkWavelet(cfg.WaveletFile, configURI)
		if err != nil {
			return err
		}
	} else {
		wavelet = seismic.NewRickerWavelet(cfg.PeakFrequency)
	}

	geom := seismic.NewLateralGeometry(model.NX(), model.NY(), surfSpec.X0, surfSpec.Y0, surfSpec.DX, surfSpec.DY)

	budget := seismic.EstimateWorkingSetBytes(
		model.NX(), model.NY(), model.NZRefl(), cfg.Nz, cfg.Nt,
		len(cfg.Offsets)+len(cfg.Angles), cfg.Output.Depth, cfg.Output.Time,
	)

	var sink seismic.TraceSink
	if cfg.MemoryLimit > 0 && budget > cfg.MemoryLimit {
		log.Println("Working set exceeds memory limit, using file-backed sink")
		sink = seismic.NewFileBackedSink(filepath.Join(outdirURI, file+".tmp"), configURI)
	} else {
		sink = seismic.NewMemorySink(model.NX(), model.NY(), cfg.Nt)
	}

	rt := &seismic.Runtime{
		Model:         seismic.NewReflectionModel(cfg.PSSeismic),
		Wavelet:       wavelet,
		Config:        cfg,
		Sink:          sink,
		Monitor:       seismic.NewMonitor(model.NX(), model.NY()),
		ConstVpBottom: cCtx.Float64("const-vp-bottom"),
	}

	log.Println("Generating synthetic seismic")
	seismic.GenerateAll(model, geom, rt)
	if err := sink.Close(); err != nil {
		return err
	}

	log.Println("Writing output cubes")
	angleCount := len(cfg.Offsets)
	if !cfg.NMOCorrect {
		angleCount = len(cfg.Angles)
	}
	axes := []struct {
		axis      seismic.Axis
		name      string
		n         int
		enabled   bool
		stackWant bool
	}{
		{seismic.AxisTime, "time", cfg.Nt, cfg.Output.Time, cfg.Output.TimeStack},
		{seismic.AxisDepth, "depth", cfg.Nz, cfg.Output.Depth, cfg.Output.DepthStack},
		{seismic.AxisShiftedTime, "timeshift", cfg.Nt, cfg.Output.ShiftedTime, cfg.Output.ShiftedStack},
	}

	for _, ax := range axes {
		if !ax.enabled {
			continue
		}
		cubes := make([]*seismic.Grid3D, 0, angleCount)

		for a := 0; a < angleCount; a++ {
			value := cfg.Offsets[a]
			if !cfg.NMOCorrect {
				value = cfg.Angles[a] * seismic.RadianToDegree
			}

			var cube *seismic.Grid3D
			switch s := sink.(type) {
			case *seismic.MemorySink:
				cube = s.Cube(ax.axis, a)
			case *seismic.FileBackedSink:
				var err error
				cube, err = s.AssembleCube(ax.axis, a, model.NX(), model.NY(), ax.n)
				if err != nil {
					return err
				}
			}
			if cube == nil {
				continue
			}
			cubes = append(cubes, cube)

			name := encode.FileName(cfg.OutputPrefix, ax.name, value, false, cfg.OutputSuffix, "tiledb")
			md := encode.RunMetadata{Axis: ax.name, AngleOrOffset: value, PSSeismic: cfg.PSSeismic, NMOCorrect: cfg.NMOCorrect}
			if err := encode.WriteCubeTdb(filepath.Join(outdirURI, name), configURI, cube, md); err != nil {
				return err
			}

			if fbs, ok := sink.(*seismic.FileBackedSink); ok {
				if err := seismic.RemoveVFSFile(fbs.URIFor(ax.axis, a), configURI); err != nil {
					return err
				}
			}
		}

		if ax.stackWant && len(cubes) > 0 {
			stack := seismic.StackCubes(cubes)
			name := encode.FileName(cfg.OutputPrefix, ax.name, 0, true, cfg.OutputSuffix, "tiledb")
			md := encode.RunMetadata{Axis: ax.name, PSSeismic: cfg.PSSeismic, NMOCorrect: cfg.NMOCorrect}
			if err := encode.WriteCubeTdb(filepath.Join(outdirURI, name), configURI, stack, md); err != nil {
				return err
			}
		}
	}

	log.Println("Finished:", modelURI)
	return nil
}

// generateBatch submits every earth model discovered under uri to a
// fixed-size pond worker pool, cancelled on Ctrl+C.
func generateBatch(uri, configURI, outdirURI string, cCtx *cli.Context) error {
	log.Println("Searching uri:", uri)
	items := search.FindEarthModels(uri, configURI)

	// items are .grid files; each earth model is the directory holding them.
	models := make([]string, 0, len(items))
	seen := make(map[string]bool)
	for _, item := range items {
		dir, _ := filepath.Split(item)
		if n := len(dir); n > 1 {
			dir = dir[:n-1]
		}
		if !seen[dir] {
			seen[dir] = true
			models = append(models, dir)
		}
	}
	log.Println("Number of earth models to process:", len(models))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	n := runtime.NumCPU() * 2
	pool := pond.New(n, 0, pond.MinWorkers(n), pond.Context(ctx))
	defer pool.StopAndWait()

	for _, name := range models {
		modelURI := name
		pool.Submit(func() {
			if err := generateOne(modelURI, configURI, outdirURI, cCtx); err != nil {
				log.Println("Error processing", modelURI, ":", err)
			}
		})
	}

	return nil
}

func commonFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{Name: "config-uri", Usage: "URI or pathname to a TileDB config file."},
		&cli.StringFlag{Name: "outdir-uri", Usage: "URI or pathname to an output directory."},
		&cli.BoolFlag{Name: "nmo-correct", Usage: "Generate offset-indexed NMO-corrected gathers instead of an angle stack."},
		&cli.BoolFlag{Name: "ps-seismic", Usage: "Use the PS (converted-wave) reflection model instead of PP."},
		&cli.StringFlag{Name: "twt-file", Usage: "URI to an optional TWT-shift grid."},
		&cli.StringFlag{Name: "trace-status-file", Usage: "URI to an optional per-trace status byte array, cross-checked against the mask test."},
		&cli.Int64Flag{Name: "memory-limit", Usage: "Working-set byte budget before falling back to a file-backed sink."},
		&cli.BoolFlag{Name: "white-noise", Usage: "Inject per-cell seeded Gaussian noise into the reflectivity."},
		&cli.Float64Flag{Name: "std-dev", Usage: "Standard deviation of the injected noise."},
		&cli.Int64Flag{Name: "seed", Usage: "Base seed for per-cell noise injection."},
		&cli.StringFlag{Name: "wavelet-file", Usage: "URI to a LANDMARK ASCII wavelet file."},
		&cli.Float64Flag{Name: "peak-frequency", Value: 25.0, Usage: "Ricker wavelet peak frequency (Hz), used when wavelet-file is not set."},
		&cli.Float64Flag{Name: "wavelet-scale", Value: 1.0, Usage: "Wavelet amplitude scale factor."},
		&cli.Float64SliceFlag{Name: "offset", Usage: "Source-receiver offsets (NMO path)."},
		&cli.Float64SliceFlag{Name: "angle", Usage: "Incidence angles in radians (angle-stack path)."},
		&cli.Float64Flag{Name: "t0", Usage: "Output time axis start (ms)."},
		&cli.Float64Flag{Name: "dt", Usage: "Output time axis sample interval (ms)."},
		&cli.IntFlag{Name: "nt", Usage: "Output time axis sample count."},
		&cli.Float64Flag{Name: "z0", Usage: "Output depth axis start (m)."},
		&cli.Float64Flag{Name: "dz", Usage: "Output depth axis sample interval (m)."},
		&cli.IntFlag{Name: "nz", Usage: "Output depth axis sample count."},
		&cli.BoolFlag{Name: "output-time", Usage: "Write time-domain output."},
		&cli.BoolFlag{Name: "output-depth", Usage: "Write depth-domain output."},
		&cli.BoolFlag{Name: "output-timeshift", Usage: "Write shifted-time-domain output."},
		&cli.BoolFlag{Name: "output-time-stack", Usage: "Write the angle/offset-averaged time-domain stack."},
		&cli.BoolFlag{Name: "output-depth-stack", Usage: "Write the angle/offset-averaged depth-domain stack."},
		&cli.BoolFlag{Name: "output-timeshift-stack", Usage: "Write the angle/offset-averaged shifted-time-domain stack."},
		&cli.StringFlag{Name: "output-prefix", Usage: "Output file name prefix."},
		&cli.StringFlag{Name: "output-suffix", Usage: "Output file name suffix."},
		&cli.IntFlag{Name: "nx", Usage: "Earth model lateral sample count (inline direction)."},
		&cli.IntFlag{Name: "ny", Usage: "Earth model lateral sample count (crossline direction)."},
		&cli.IntFlag{Name: "nzrefl", Usage: "Earth model reflector-stack sample count."},
		&cli.Float64Flag{Name: "x0", Usage: "Earth model lateral origin x."},
		&cli.Float64Flag{Name: "y0", Usage: "Earth model lateral origin y."},
		&cli.Float64Flag{Name: "dx", Usage: "Earth model lateral sample spacing x."},
		&cli.Float64Flag{Name: "dy", Usage: "Earth model lateral sample spacing y."},
		&cli.Float64Flag{Name: "const-vp", Usage: "Constant Vp filler value for a masked pillar's interior."},
		&cli.Float64Flag{Name: "const-vs", Usage: "Constant Vs filler value for a masked pillar's interior."},
		&cli.Float64Flag{Name: "const-rho", Usage: "Constant Rho filler value for a masked pillar's interior."},
		&cli.Float64Flag{Name: "const-vp-bottom", Usage: "Constant Vp below the bottom reflector, used to extrapolate the depth axis."},
	}
}

func main() {
	app := &cli.App{
		Commands: []*cli.Command{
			{
				Name:  "generate",
				Usage: "Generate synthetic seismic traces for a single earth model.",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "model-uri", Usage: "URI or pathname to a directory holding one earth model's grids."},
				}, commonFlags()...),
				Action: func(cCtx *cli.Context) error {
					return generateOne(cCtx.String("model-uri"), cCtx.String("config-uri"), cCtx.String("outdir-uri"), cCtx)
				},
			},
			{
				Name:  "generate-batch",
				Usage: "Generate synthetic seismic traces for every earth model found under a URI.",
				Flags: append([]cli.Flag{
					&cli.StringFlag{Name: "uri", Usage: "URI or pathname to a directory tree containing earth models."},
				}, commonFlags()...),
				Action: func(cCtx *cli.Context) error {
					return generateBatch(cCtx.String("uri"), cCtx.String("config-uri"), cCtx.String("outdir-uri"), cCtx)
				},
			},
		},
	}

	if err := app.Run(os.Args); err != nil {
		log.Fatal(err)
	}
}
