package entity

// Directions holds one frame of directional input.
type Directions struct {
	Up, Down, Left, Right bool
}

// Vector returns the raw input vector: each active direction contributes
// ±1 on its axis. Opposite directions cancel.
func (d Directions) Vector() (x, y float64) {
	if d.Up {
		y--
	}
	if d.Down {
		y++
	}
	if d.Left {
		x--
	}
	if d.Right {
		x++
	}
	return x, y
}

// Frame is the per-tick context passed to every actor update. It replaces
// process-wide timing state: everything an update may read comes in here.
type Frame struct {
	// DT is the elapsed time in seconds, already clamped by the caller.
	DT float64
	// TileSize is the map's pixels-per-tile factor.
	TileSize float64
	Input    Directions

	Player  *Player
	Objects []*Object
	Actors  []Actor
}

// Actor is an object with per-frame behavior.
type Actor interface {
	Body() *Object
	Update(f *Frame)
}

// Damageable is an actor that can be hurt by attacks.
type Damageable interface {
	Actor
	Alive() bool
	TakeDamage(amount int)
}

// World is the ordered collection of actors in a level. Order is insertion
// order and is the order of updates, draws and collision scans.
type World struct {
	actors []Actor
	bodies []*Object
}

// NewWorld returns an empty world.
func NewWorld() *World {
	return &World{}
}

// Add appends an actor. Call between frames only.
func (w *World) Add(a Actor) {
	w.actors = append(w.actors, a)
	w.bodies = append(w.bodies, a.Body())
}

// Actors returns the actors in order. The slice must not be modified.
func (w *World) Actors() []Actor { return w.actors }

// Objects returns the actors' bodies in the same order.
func (w *World) Objects() []*Object { return w.bodies }

// Len returns the number of actors.
func (w *World) Len() int { return len(w.actors) }

// Update runs one frame: every actor is updated in order against the
// frame's view of the collection.
func (w *World) Update(f *Frame) {
	f.Objects = w.bodies
	f.Actors = w.actors
	for _, a := range w.actors {
		a.Update(f)
	}
}
