// Package scene loads planar worlds from YAML files.
package scene

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/akmonengine/planar"
	"github.com/akmonengine/planar/gjk"
	"github.com/akmonengine/planar/shape"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"gopkg.in/yaml.v3"
)

var ErrInvalidConfig = errors.New("scene: invalid config")

const (
	KindCircle  = "circle"
	KindDiamond = "diamond"
)

type Config struct {
	MaxIterations int          `yaml:"max_iterations,omitempty"`
	Workers       int          `yaml:"workers,omitempty"`
	Grid          GridConfig   `yaml:"grid,omitempty"`
	Bodies        []BodyConfig `yaml:"bodies"`
}

type GridConfig struct {
	CellSize float64 `yaml:"cell_size,omitempty"`
	Cells    int     `yaml:"cells,omitempty"`
}

type BodyConfig struct {
	Id           string    `yaml:"id,omitempty"`
	Kind         string    `yaml:"kind"`
	Center       []float64 `yaml:"center"`
	Radius       float64   `yaml:"radius,omitempty"`
	HalfDiagonal float64   `yaml:"half_diagonal,omitempty"`
	Static       bool      `yaml:"static,omitempty"`
}

// Default returns the two-shape scene: a unit circle at (1, 1) and a diamond
// of half-diagonal 1 at (2, 2).
func Default() *Config {
	return &Config{
		MaxIterations: gjk.MaxIterations,
		Workers:       planar.DEFAULT_WORKERS,
		Grid: GridConfig{
			CellSize: planar.DEFAULT_CELL_SIZE,
			Cells:    planar.DEFAULT_CELLS,
		},
		Bodies: []BodyConfig{
			{Id: "circle", Kind: KindCircle, Center: []float64{1, 1}, Radius: 1},
			{Id: "diamond", Kind: KindDiamond, Center: []float64{2, 2}, HalfDiagonal: 1},
		},
	}
}

// Load decodes a YAML scene. Unknown keys are rejected.
func Load(r io.Reader) (*Config, error) {
	var c Config
	dec := yaml.NewDecoder(r)
	dec.KnownFields(true)
	if err := dec.Decode(&c); err != nil {
		if errors.Is(err, io.EOF) {
			return nil, fmt.Errorf("%w: empty document", ErrInvalidConfig)
		}
		return nil, fmt.Errorf("%w: %w", ErrInvalidConfig, err)
	}
	if err := c.Validate(); err != nil {
		return nil, err
	}
	return &c, nil
}

func LoadFile(path string) (*Config, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	c, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return c, nil
}

// Validate checks every body and the grid parameters.
func (c *Config) Validate() error {
	if c.MaxIterations < 0 {
		return fmt.Errorf("%w: max_iterations %d", ErrInvalidConfig, c.MaxIterations)
	}
	if c.Workers < 0 {
		return fmt.Errorf("%w: workers %d", ErrInvalidConfig, c.Workers)
	}
	if c.Grid.CellSize < 0 || c.Grid.Cells < 0 {
		return fmt.Errorf("%w: grid %+v", ErrInvalidConfig, c.Grid)
	}

	ids := make(map[string]int, len(c.Bodies))
	for i, b := range c.Bodies {
		if _, err := b.Shape(); err != nil {
			return fmt.Errorf("%w: body %d: %w", ErrInvalidConfig, i, err)
		}
		if b.Id == "" {
			continue
		}
		if j, ok := ids[b.Id]; ok {
			return fmt.Errorf("%w: bodies %d and %d share id %q", ErrInvalidConfig, j, i, b.Id)
		}
		ids[b.Id] = i
	}
	return nil
}

// Shape builds and validates the shape of the body.
func (b BodyConfig) Shape() (shape.Shape, error) {
	if len(b.Center) != 2 {
		return nil, fmt.Errorf("center must have 2 coordinates, got %d", len(b.Center))
	}
	center := mgl64.Vec2{b.Center[0], b.Center[1]}

	var s shape.Shape
	switch b.Kind {
	case KindCircle:
		s = shape.Circle{Center: center, Radius: b.Radius}
	case KindDiamond:
		s = shape.Diamond{Center: center, HalfDiagonal: b.HalfDiagonal}
	default:
		return nil, fmt.Errorf("unknown kind %q", b.Kind)
	}

	if err := shape.Validate(s); err != nil {
		return nil, err
	}
	return s, nil
}

// Build validates the config and creates the world. Bodies without an id get a random one.
func (c *Config) Build(logger *zap.Logger) (*planar.World, error) {
	if err := c.Validate(); err != nil {
		return nil, err
	}

	world := planar.NewWorld(logger)
	if c.MaxIterations > 0 {
		world.MaxIterations = c.MaxIterations
	}
	if c.Workers > 0 {
		world.Workers = c.Workers
	}
	if c.Grid.CellSize > 0 || c.Grid.Cells > 0 {
		cellSize := c.Grid.CellSize
		if cellSize == 0 {
			cellSize = planar.DEFAULT_CELL_SIZE
		}
		cells := c.Grid.Cells
		if cells == 0 {
			cells = planar.DEFAULT_CELLS
		}
		world.SpatialGrid = planar.NewSpatialGrid(cellSize, cells)
	}

	for i, b := range c.Bodies {
		s, err := b.Shape()
		if err != nil {
			return nil, fmt.Errorf("%w: body %d: %w", ErrInvalidConfig, i, err)
		}

		id := b.Id
		if id == "" {
			id = uuid.NewString()
		}

		bodyType := planar.BodyTypeDynamic
		if b.Static {
			bodyType = planar.BodyTypeStatic
		}
		world.AddBody(planar.NewBody(id, s, bodyType))
	}

	if logger != nil {
		logger.Debug("scene built",
			zap.Int("bodies", len(world.Bodies)),
			zap.Int("workers", world.Workers),
			zap.Int("maxIterations", world.MaxIterations),
		)
	}

	return world, nil
}
