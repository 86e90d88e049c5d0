package world

import (
	"context"
	"fmt"
	"time"

	"go.opentelemetry.io/otel/attribute"

	"github.com/samdwyer/rouge/internal/telemetry"
)

// Generator builds the map a session is played on.
// Layout algorithms plug in here without touching rendering or movement.
type Generator interface {
	Generate(ctx context.Context, width, height int) (*Map, error)
}

// EmptyGenerator produces a map with no walls at all.
type EmptyGenerator struct{}

// Generate returns a width x height grid of empty tiles.
func (EmptyGenerator) Generate(ctx context.Context, width, height int) (*Map, error) {
	return generate(ctx, "empty", width, height, nil)
}

// FixedGenerator produces an empty map with walls at fixed positions.
type FixedGenerator struct {
	Walls []Point
}

// Pillars returns a generator placing two wall pillars on the given row,
// three eighths of the width in from each side.
func Pillars(width, row int) FixedGenerator {
	return FixedGenerator{Walls: []Point{
		{X: width * 3 / 8, Y: row},
		{X: width * 5 / 8, Y: row},
	}}
}

// Generate returns an empty map with every listed wall placed.
// Walls outside the map are an error.
func (g FixedGenerator) Generate(ctx context.Context, width, height int) (*Map, error) {
	return generate(ctx, "fixed", width, height, g.Walls)
}

// generate builds the grid and records the generation span.
func generate(ctx context.Context, kind string, width, height int, walls []Point) (*Map, error) {
	tracer := telemetry.Tracer("world")
	_, span := tracer.Start(ctx, "world.generate")
	defer span.End()

	startTime := time.Now()

	if width <= 0 || height <= 0 {
		err := fmt.Errorf("generate %dx%d map: %w", width, height, ErrInvalidSize)
		span.RecordError(err)
		return nil, err
	}

	m := NewMap(width, height)
	for _, p := range walls {
		if err := m.SetTile(p.X, p.Y, Wall()); err != nil {
			span.RecordError(err)
			return nil, err
		}
	}

	span.SetAttributes(
		attribute.String("map.generator", kind),
		attribute.Int("map.width", width),
		attribute.Int("map.height", height),
		attribute.Int("map.wall_count", len(walls)),
		attribute.Int64("map.generation_ms", time.Since(startTime).Milliseconds()),
	)
	return m, nil
}
