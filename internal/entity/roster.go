package entity

// Roster holds every entity of a session: the player and everyone else.
type Roster struct {
	Player *Entity
	Others []*Entity
}

// NewRoster creates a roster around the given player.
func NewRoster(player *Entity, others ...*Entity) *Roster {
	return &Roster{
		Player: player,
		Others: others,
	}
}

// All returns the entities in drawing order: the player first, then the others.
// Later entities overwrite earlier ones sharing a cell.
func (r *Roster) All() []*Entity {
	all := make([]*Entity, 0, len(r.Others)+1)
	if r.Player != nil {
		all = append(all, r.Player)
	}
	return append(all, r.Others...)
}

// Len returns the number of entities in the roster.
func (r *Roster) Len() int {
	n := len(r.Others)
	if r.Player != nil {
		n++
	}
	return n
}
