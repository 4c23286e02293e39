package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/chewxy/math32"
	"github.com/ethaniccc/float32-cube/cube"
	"github.com/go-echarts/statsview"
	"github.com/go-echarts/statsview/viewer"
	"github.com/go-gl/mathgl/mgl32"
	"github.com/sirupsen/logrus"

	"github.com/stride-sim/stride/config"
	"github.com/stride-sim/stride/game"
	"github.com/stride-sim/stride/player"
	"github.com/stride-sim/stride/simulation"
	"github.com/stride-sim/stride/worker"
	"github.com/stride-sim/stride/world"
)

// The following program runs a batch of scripted actors through a demo course
// and reports where each one ends up.
func main() {
	ticks := 600
	if len(os.Args) > 1 {
		n, err := strconv.Atoi(os.Args[1])
		if err != nil || n <= 0 {
			fmt.Println("Usage: ./bin [ticks]")
			return
		}
		ticks = n
	}

	logger := logrus.New()
	logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:     false,
		TimestampFormat: "2006-01-02 15:04:05",
		FullTimestamp:   true,
	})

	cfg := config.Default()
	if path := os.Getenv("STRIDE_CONFIG"); path != "" {
		c, err := config.Load(path)
		if err != nil {
			logger.Fatalf("loading %s: %v", path, err)
		}
		cfg = c
	}

	if os.Getenv("PPROF_ENABLED") != "" {
		// set configurations before calling `statsview.New()` method
		viewer.SetConfiguration(viewer.WithTheme(viewer.ThemeWesteros), viewer.WithAddr("localhost:8080"))

		mgr := statsview.New()
		go mgr.Start()
	}

	sim := simulation.New(demoCourse())
	sim.Log = logger
	sim.Tuning = cfg

	actors := make([]*player.Actor, 0, 8)
	starts := make([]mgl32.Vec3, 0, 8)
	for i := 0; i < 8; i++ {
		a := player.New()
		a.Position = mgl32.Vec3{float32(i) * 100, 0, -400}
		a.Controller = &player.ScriptedController{Frames: script(i)}
		actors = append(actors, a)
		starts = append(starts, a.Position)
	}

	for t := 0; t < ticks; t++ {
		worker.AdvanceAll(sim, actors)
	}

	for i, a := range actors {
		dist := game.Round32(math32.Sqrt(game.Vec3HzDistSqr(a.Position.Sub(starts[i]))), 1)
		logger.Infof("actor %d: action=%#x pos=(%.1f %.1f %.1f) dist=%v health=%#x hash=%#x",
			i, a.Action, a.Position.X(), a.Position.Y(), a.Position.Z(), dist, a.Health, a.StateHash())
	}
}

// demoCourse builds a small box course exercising most of the floor types:
// flat ground, a platform to jump or ledge-grab onto, a hangable awning, a
// lava strip, moving sand and a pool.
func demoCourse() *world.BoxWorld {
	w := world.NewBoxWorld()
	w.AddFloor(-2000, -2000, 2000, 2000, 0, world.SurfaceDefault)
	w.AddBox(world.Box{Bounds: cube.Box(300, 0, -300, 700, 150, 300)})
	w.AddBox(world.Box{
		Bounds: cube.Box(-700, 250, -300, -300, 350, 300),
		Ceil:   world.SurfaceHangable,
	})
	w.AddBox(world.Box{
		Bounds: cube.Box(-2000, -1000, 400, -1000, 0, 800),
		Floor:  world.SurfaceBurning,
	})
	w.AddBox(world.Box{
		Bounds: cube.Box(1000, -1000, 400, 2000, 0, 800),
		Floor:  world.SurfaceMovingQuicksand,
		Force:  0x40, // pushes toward +x
	})
	w.SetWaterLevel(-200)
	return w
}

// script gives each actor a slightly different run so the course fans out:
// walk forward, jump periodically, and veer by index.
func script(i int) []player.ControllerState {
	frames := make([]player.ControllerState, 0, 600)
	for t := 0; t < 600; t++ {
		st := player.ControllerState{StickY: -64}
		if t%(40+i*7) == 0 {
			st.APressed = true
		}
		if t%3 != 0 {
			st.ADown = true
		}
		if t > 200 {
			st.StickX = float32(i-4) * 12
		}
		frames = append(frames, st)
	}
	return frames
}
