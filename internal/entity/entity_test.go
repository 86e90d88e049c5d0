package entity

import (
	"testing"

	"github.com/gdamore/tcell/v2"

	"github.com/samdwyer/rouge/internal/world"
)

// mockCanvas records the drawing calls made on it.
type mockCanvas struct {
	fg    tcell.Color
	calls []string
	cells map[[2]int]drawnCell
}

type drawnCell struct {
	r  rune
	fg tcell.Color
}

func newMockCanvas() *mockCanvas {
	return &mockCanvas{cells: make(map[[2]int]drawnCell)}
}

func (c *mockCanvas) SetForeground(color tcell.Color) {
	c.fg = color
	c.calls = append(c.calls, "fg")
}

func (c *mockCanvas) PutChar(x, y int, r rune) {
	c.cells[[2]int{x, y}] = drawnCell{r: r, fg: c.fg}
	c.calls = append(c.calls, "put")
}

func TestNew(t *testing.T) {
	e := New(3, 4, '@', tcell.ColorWhite)

	if x, y := e.Position(); x != 3 || y != 4 {
		t.Errorf("Position() = (%d,%d), want (3,4)", x, y)
	}
	if e.Glyph != '@' {
		t.Errorf("Glyph = %c, want @", e.Glyph)
	}
	if e.Color != tcell.ColorWhite {
		t.Errorf("Color = %v, want white", e.Color)
	}

	other := New(3, 4, '@', tcell.ColorWhite)
	if e.ID == other.ID {
		t.Error("Entities should get distinct IDs")
	}
}

func TestMoveBy(t *testing.T) {
	tests := []struct {
		name         string
		dx, dy       int
		wantX, wantY int
		wantMoved    bool
	}{
		{"up", 0, -1, 5, 4, true},
		{"down", 0, 1, 5, 6, true},
		{"left", -1, 0, 4, 5, true},
		{"right", 1, 0, 6, 5, true},
		{"diagonal", 1, 1, 6, 6, true},
		{"into wall", 2, 0, 5, 5, false},
	}

	for _, tt := range tests {
		m := world.NewMap(10, 10)
		if err := m.SetTile(7, 5, world.Wall()); err != nil {
			t.Fatalf("SetTile failed: %v", err)
		}
		e := New(5, 5, '@', tcell.ColorWhite)

		moved := e.MoveBy(tt.dx, tt.dy, m)
		if moved != tt.wantMoved {
			t.Errorf("%s: MoveBy() = %v, want %v", tt.name, moved, tt.wantMoved)
		}
		if e.X != tt.wantX || e.Y != tt.wantY {
			t.Errorf("%s: position = (%d,%d), want (%d,%d)", tt.name, e.X, e.Y, tt.wantX, tt.wantY)
		}
	}
}

func TestMoveByDiagonalNoCornerCheck(t *testing.T) {
	m := world.NewMap(5, 5)
	// Walls on both orthogonal neighbours of the diagonal step.
	_ = m.SetTile(2, 1, world.Wall())
	_ = m.SetTile(1, 2, world.Wall())

	e := New(1, 1, '@', tcell.ColorWhite)
	if !e.MoveBy(1, 1, m) {
		t.Fatal("Diagonal move between walls should succeed")
	}
	if e.X != 2 || e.Y != 2 {
		t.Errorf("Position = (%d,%d), want (2,2)", e.X, e.Y)
	}
}

func TestMoveByOffMap(t *testing.T) {
	m := world.NewMap(5, 5)
	corners := []struct {
		x, y, dx, dy int
	}{
		{0, 0, -1, 0},
		{0, 0, 0, -1},
		{4, 4, 1, 0},
		{4, 4, 0, 1},
		{0, 4, -1, 1},
	}

	for _, c := range corners {
		e := New(c.x, c.y, '@', tcell.ColorWhite)
		if e.MoveBy(c.dx, c.dy, m) {
			t.Errorf("MoveBy(%d,%d) from (%d,%d) left the map", c.dx, c.dy, c.x, c.y)
		}
		if e.X != c.x || e.Y != c.y {
			t.Errorf("Position changed to (%d,%d) from (%d,%d)", e.X, e.Y, c.x, c.y)
		}
	}
}

func TestMoveByLeavesOthersAlone(t *testing.T) {
	m := world.NewMap(10, 10)
	player := New(5, 5, '@', tcell.ColorWhite)
	npc := New(0, 5, '@', tcell.ColorYellow)
	roster := NewRoster(player, npc)

	player.MoveBy(1, 0, m)

	if npc.X != 0 || npc.Y != 5 {
		t.Errorf("NPC moved to (%d,%d)", npc.X, npc.Y)
	}
	if roster.Player.X != 6 {
		t.Errorf("Player X = %d, want 6", roster.Player.X)
	}
}

func TestDraw(t *testing.T) {
	c := newMockCanvas()
	e := New(2, 3, 'g', tcell.ColorGreen)

	e.Draw(c)

	if len(c.calls) != 2 || c.calls[0] != "fg" || c.calls[1] != "put" {
		t.Fatalf("Draw calls = %v, want [fg put]", c.calls)
	}
	got, ok := c.cells[[2]int{2, 3}]
	if !ok {
		t.Fatal("Nothing drawn at (2,3)")
	}
	if got.r != 'g' || got.fg != tcell.ColorGreen {
		t.Errorf("Drawn cell = %c/%v, want g/green", got.r, got.fg)
	}
}

func TestRosterOrder(t *testing.T) {
	player := New(1, 1, '@', tcell.ColorWhite)
	a := New(1, 1, 'a', tcell.ColorRed)
	b := New(2, 2, 'b', tcell.ColorBlue)
	roster := NewRoster(player, a, b)

	all := roster.All()
	if roster.Len() != 3 || len(all) != 3 {
		t.Fatalf("Roster length = %d/%d, want 3", roster.Len(), len(all))
	}
	if all[0] != player || all[1] != a || all[2] != b {
		t.Error("All() should list the player first, then others in order")
	}

	// Later entities win a shared cell.
	c := newMockCanvas()
	for _, e := range all {
		e.Draw(c)
	}
	if got := c.cells[[2]int{1, 1}]; got.r != 'a' || got.fg != tcell.ColorRed {
		t.Errorf("Cell (1,1) = %c/%v, want a/red", got.r, got.fg)
	}
}

func TestRosterWithoutPlayer(t *testing.T) {
	roster := NewRoster(nil)
	if roster.Len() != 0 || len(roster.All()) != 0 {
		t.Error("Empty roster should have no entities")
	}
}
