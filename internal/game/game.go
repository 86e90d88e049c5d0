package game

import (
	"context"
	"errors"
	"fmt"

	"github.com/gdamore/tcell/v2"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/trace"

	"github.com/samdwyer/rouge/internal/entity"
	"github.com/samdwyer/rouge/internal/input"
	"github.com/samdwyer/rouge/internal/telemetry"
	"github.com/samdwyer/rouge/internal/ui"
	"github.com/samdwyer/rouge/internal/world"
)

// NPC placement relative to the player
const npcOffsetX = -5

// Game holds the entire game state.
type Game struct {
	cfg      Config
	display  ui.Display
	renderer *ui.Renderer
	console  *ui.Console // Off-screen buffer, map sized
	world    *world.Map
	roster   *entity.Roster
	state    State
	turns    int
	tracer   trace.Tracer
}

// New creates a game on the given display, with its map built by gen.
// The player starts at the center of the window with one NPC to its left.
func New(ctx context.Context, cfg Config, display ui.Display, gen world.Generator) (*Game, error) {
	tracer := telemetry.NoopTracer()
	if cfg.Tracing {
		tracer = telemetry.Tracer("game")
	}

	ctx, initSpan := tracer.Start(ctx, "game.init")
	defer initSpan.End()

	m, err := gen.Generate(ctx, cfg.MapWidth, cfg.MapHeight)
	if err != nil {
		initSpan.RecordError(err)
		return nil, fmt.Errorf("generate map: %w", err)
	}

	startX, startY := cfg.ScreenWidth/2, cfg.ScreenHeight/2
	if !m.InBounds(startX, startY) || !m.InBounds(startX+npcOffsetX, startY) {
		err := fmt.Errorf("start (%d,%d) on %dx%d map: %w", startX, startY, m.Width, m.Height, world.ErrOutOfBounds)
		initSpan.RecordError(err)
		return nil, err
	}

	player := entity.New(startX, startY, '@', tcell.ColorWhite)
	player.Name = "player"
	npc := entity.New(startX+npcOffsetX, startY, '@', tcell.ColorYellow)
	npc.Name = "npc"
	roster := entity.NewRoster(player, npc)

	initSpan.SetAttributes(
		attribute.Int("map.width", m.Width),
		attribute.Int("map.height", m.Height),
		attribute.String("player.id", player.ID.String()),
		attribute.Int("roster.size", roster.Len()),
		attribute.Int("player.start_x", startX),
		attribute.Int("player.start_y", startY),
	)

	return &Game{
		cfg:      cfg,
		display:  display,
		renderer: ui.NewRenderer(display),
		console:  ui.NewConsole(m.Width, m.Height),
		world:    m,
		roster:   roster,
		state:    StateRunning,
		tracer:   tracer,
	}, nil
}

// Run executes the main game loop until Escape is pressed or the window closes.
// The display is closed when Run returns.
func (g *Game) Run(ctx context.Context) error {
	defer g.Close()

	ctx, span := g.tracer.Start(ctx, "game.run")
	defer span.End()

	g.display.SetTargetFPS(g.cfg.TargetFPS)

	for g.state == StateRunning {
		if g.display.Closed() {
			g.state = StateTerminated
			break
		}

		g.renderer.Render(g.console, g.world, g.roster)

		// Handle input (blocking)
		ev, err := g.display.WaitKey()
		if errors.Is(err, ui.ErrClosed) {
			g.state = StateTerminated
			break
		}
		if err != nil {
			span.RecordError(err)
			return fmt.Errorf("wait for key: %w", err)
		}

		g.Step(ctx, ev)
	}

	span.SetAttributes(attribute.Int("game.turns", g.turns))
	return nil
}

// Step handles one key press and returns the resulting state.
func (g *Game) Step(ctx context.Context, ev *tcell.EventKey) State {
	_, span := g.tracer.Start(ctx, "game.turn")
	defer span.End()

	player := g.roster.Player
	fromX, fromY := player.Position()

	action := input.HandleKey(ev, g.world, player, g.display)
	if action == input.Exit {
		g.state = StateTerminated
	}
	g.turns++

	span.SetAttributes(
		attribute.String("input.key", ev.Name()),
		attribute.String("input.action", action.String()),
		attribute.String("player.name", player.Name),
		attribute.Int("player.x", player.X),
		attribute.Int("player.y", player.Y),
		attribute.Bool("player.moved", player.X != fromX || player.Y != fromY),
		attribute.String("game.state", g.state.String()),
	)
	return g.state
}

// Player returns the player entity.
func (g *Game) Player() *entity.Entity {
	return g.roster.Player
}

// Roster returns every entity in the session.
func (g *Game) Roster() *entity.Roster {
	return g.roster
}

// Map returns the world map.
func (g *Game) Map() *world.Map {
	return g.world
}

// State returns the current game state.
func (g *Game) State() State {
	return g.state
}

// Close cleans up game resources.
func (g *Game) Close() {
	if g.display != nil {
		g.display.Close()
	}
}
