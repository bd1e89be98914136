// internal/entity/ecs.go
package entity

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/types"
)

// ECS is the map-based component store. One map per component kind,
// keyed by entity ID; systems iterate the store they care about.
type ECS struct {
	GameTime    float64
	NextID      types.EntityID
	Positions   map[types.EntityID]*component.Position
	Players     map[types.EntityID]*component.Player
	Adversaries map[types.EntityID]*component.Adversary
	Lasers      map[types.EntityID]*component.Laser
	Explosions  map[types.EntityID]*component.Explosion
	Renderables map[types.EntityID]*component.Renderable
}

func NewECS() *ECS {
	return &ECS{
		NextID:      1,
		Positions:   make(map[types.EntityID]*component.Position),
		Players:     make(map[types.EntityID]*component.Player),
		Adversaries: make(map[types.EntityID]*component.Adversary),
		Lasers:      make(map[types.EntityID]*component.Laser),
		Explosions:  make(map[types.EntityID]*component.Explosion),
		Renderables: make(map[types.EntityID]*component.Renderable),
	}
}

func (ecs *ECS) NewEntity() types.EntityID {
	id := ecs.NextID
	ecs.NextID++
	return id
}

// RemoveEntity drops the entity from every store.
func (ecs *ECS) RemoveEntity(id types.EntityID) {
	delete(ecs.Positions, id)
	delete(ecs.Players, id)
	delete(ecs.Adversaries, id)
	delete(ecs.Lasers, id)
	delete(ecs.Explosions, id)
	delete(ecs.Renderables, id)
}
