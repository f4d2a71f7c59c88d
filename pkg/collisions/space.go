package collisions

import "github.com/solarlune/resolv"

const (
	CollisionSpaceTagBird  = "bird"
	CollisionSpaceTagPipe  = "pipe"
	CollisionSpaceTagLevel = "level"

	cellSize  = 16
	wallDepth = 16
)

// Space tracks the bird and pipe hitboxes of the flappy scene. resolv's cell
// grid is the broad phase; candidates are then tested rect against rect.
type Space struct {
	space *resolv.Space
	bird  *resolv.Object
	pipes map[int]*resolv.Object
}

// NewCollisionSpace creates a space for a width x height screen with a solid
// floor and ceiling just outside the visible area.
func NewCollisionSpace(width, height int) *Space {
	space := resolv.NewSpace(width, height+2*wallDepth, cellSize, cellSize)
	space.Add(
		resolv.NewObject(0, 0, float64(width), wallDepth, CollisionSpaceTagLevel),
		resolv.NewObject(0, float64(height+wallDepth), float64(width), wallDepth, CollisionSpaceTagLevel),
	)
	return &Space{
		space: space,
		pipes: make(map[int]*resolv.Object),
	}
}

// SetBird places the bird's hitbox, the square around a circle of radius r
// centered at x, y.
func (s *Space) SetBird(x, y, r float64) {
	if s.bird == nil {
		s.bird = resolv.NewObject(0, 0, 2*r, 2*r, CollisionSpaceTagBird)
		s.space.Add(s.bird)
	}
	s.bird.Position.X = x - r
	s.bird.Position.Y = y - r + wallDepth
	s.bird.Size.X = 2 * r
	s.bird.Size.Y = 2 * r
	s.bird.Update()
}

// SetPipe adds or moves the pipe segment with the given id.
func (s *Space) SetPipe(id int, x, y, w, h float64) {
	obj, ok := s.pipes[id]
	if !ok {
		obj = resolv.NewObject(0, 0, w, h, CollisionSpaceTagPipe)
		s.pipes[id] = obj
		s.space.Add(obj)
	}
	obj.Position.X = x
	obj.Position.Y = y + wallDepth
	obj.Size.X = w
	obj.Size.Y = h
	obj.Update()
}

func (s *Space) RemovePipe(id int) {
	obj, ok := s.pipes[id]
	if !ok {
		return
	}
	s.space.Remove(obj)
	delete(s.pipes, id)
}

func (s *Space) Pipes() int {
	return len(s.pipes)
}

// BirdHit reports whether the bird touches a pipe, the floor or the ceiling.
func (s *Space) BirdHit() bool {
	if s.bird == nil {
		return false
	}
	for _, tag := range []string{CollisionSpaceTagPipe, CollisionSpaceTagLevel} {
		collision := s.bird.Check(0, 0, tag)
		if collision == nil {
			continue
		}
		for _, obj := range collision.Objects {
			if overlaps(s.bird, obj) {
				return true
			}
		}
	}
	return false
}

func overlaps(a, b *resolv.Object) bool {
	return a.Position.X < b.Position.X+b.Size.X &&
		b.Position.X < a.Position.X+a.Size.X &&
		a.Position.Y < b.Position.Y+b.Size.Y &&
		b.Position.Y < a.Position.Y+a.Size.Y
}
