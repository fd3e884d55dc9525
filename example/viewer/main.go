package main

import (
	"context"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/planar"
	"github.com/akmonengine/planar/gjk"
	"github.com/akmonengine/planar/internal/tui"
	"github.com/akmonengine/planar/scene"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"
)

func main() {
	scenePath := flag.String("scene", "", "YAML scene file, the two-shape demo scene when empty")
	once := flag.Bool("once", false, "print the verdict of every pair of bodies and exit")
	logLevel := flag.String("log-level", "warn", "log level: debug, info, warn, error")
	flag.Parse()

	logger, err := newLogger(*logLevel)
	if err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(2)
	}
	defer logger.Sync()

	if err := run(*scenePath, *once, logger); err != nil {
		logger.Error("viewer", zap.Error(err))
		os.Exit(1)
	}
}

func newLogger(level string) (*zap.Logger, error) {
	zapLevel, err := zapcore.ParseLevel(level)
	if err != nil {
		return nil, err
	}

	config := zap.Config{
		Level:            zap.NewAtomicLevelAt(zapLevel),
		Development:      false,
		Encoding:         "console",
		EncoderConfig:    zap.NewDevelopmentEncoderConfig(),
		OutputPaths:      []string{"stderr"},
		ErrorOutputPaths: []string{"stderr"},
		DisableCaller:    true,
	}
	return config.Build()
}

func run(scenePath string, once bool, logger *zap.Logger) error {
	config := scene.Default()
	if scenePath != "" {
		var err error
		if config, err = scene.LoadFile(scenePath); err != nil {
			return err
		}
	}

	world, err := config.Build(logger)
	if err != nil {
		return err
	}
	world.Events.Subscribe(planar.OVERLAP_ENTER, func(e planar.Event) {
		ev := e.(planar.OverlapEnterEvent)
		logger.Info("overlap enter", zap.String("bodyA", ev.BodyA.Id), zap.String("bodyB", ev.BodyB.Id))
	})
	world.Events.Subscribe(planar.OVERLAP_EXIT, func(e planar.Event) {
		ev := e.(planar.OverlapExitEvent)
		logger.Info("overlap exit", zap.String("bodyA", ev.BodyA.Id), zap.String("bodyB", ev.BodyB.Id))
	})

	if once {
		return printVerdicts(os.Stdout, world)
	}

	m, err := tui.New(world, logger)
	if err != nil {
		return err
	}
	_, err = tea.NewProgram(m, tea.WithAltScreen()).Run()
	return err
}

// printVerdicts runs the solver on every pair of bodies, then a full detection pass
func printVerdicts(w io.Writer, world *planar.World) error {
	var solver gjk.Solver
	for i, a := range world.Bodies {
		for _, b := range world.Bodies[i+1:] {
			if err := solver.Reset(a.Shape, b.Shape, world.MaxIterations); err != nil {
				return fmt.Errorf("pair %s/%s: %w", a.Id, b.Id, err)
			}
			outcome := solver.Run()
			fmt.Fprintf(w, "%s %s %s (%d iterations)\n", a.Id, b.Id, outcome, solver.Iterations())
		}
	}

	overlaps, err := world.Detect(context.Background())
	if err != nil {
		return err
	}
	fmt.Fprintf(w, "%d pairs overlapping or inconclusive\n", len(overlaps))
	return nil
}
