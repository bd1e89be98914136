// internal/system/collision.go
package system

import (
	"go-mazemaster/internal/component"
	"go-mazemaster/internal/config"
	"go-mazemaster/internal/entity"
	"go-mazemaster/internal/event"
	"go-mazemaster/pkg/grid"
)

// CollisionSystem resolves the three interactions that matter: laser
// hits adversary, adversary reaches player, player reaches the exit.
// Outcomes are published as events; the game decides what they mean.
type CollisionSystem struct {
	ecs        *entity.ECS
	dispatcher *event.Dispatcher
	exit       grid.Cell
}

func NewCollisionSystem(ecs *entity.ECS, dispatcher *event.Dispatcher) *CollisionSystem {
	return &CollisionSystem{
		ecs:        ecs,
		dispatcher: dispatcher,
		exit:       grid.Exit(config.MazeWidth, config.MazeHeight),
	}
}

func (s *CollisionSystem) Update(deltaTime float64) {
	s.laserHits()
	s.playerContacts()
}

func (s *CollisionSystem) laserHits() {
	for laserID, laser := range s.ecs.Lasers {
		if !laser.Active {
			continue
		}
		for advID := range s.ecs.Adversaries {
			advPos, ok := s.ecs.Positions[advID]
			if !ok {
				continue
			}
			if absF(laser.X-float64(advPos.Cell.X)) < 1 && absF(laser.Y-float64(advPos.Cell.Y)) < 1 {
				laser.Active = false
				cell := advPos.Cell
				s.ecs.RemoveEntity(laserID)
				s.ecs.RemoveEntity(advID)

				explosionID := s.ecs.NewEntity()
				s.ecs.Explosions[explosionID] = &component.Explosion{
					Cell:     cell,
					Duration: config.ExplosionDuration,
				}

				s.dispatcher.Dispatch(event.Event{Type: event.AdversaryKilled, Data: advID})
				break
			}
		}
	}
}

func (s *CollisionSystem) playerContacts() {
	for playerID := range s.ecs.Players {
		playerPos, ok := s.ecs.Positions[playerID]
		if !ok {
			continue
		}

		for advID := range s.ecs.Adversaries {
			advPos, ok := s.ecs.Positions[advID]
			if !ok {
				continue
			}
			if playerPos.Cell.Distance(advPos.Cell) <= 1 {
				s.dispatcher.Dispatch(event.Event{Type: event.PlayerCaught})
				return
			}
		}

		if playerPos.Cell.X >= s.exit.X && playerPos.Cell.Y >= s.exit.Y {
			s.dispatcher.Dispatch(event.Event{Type: event.ExitReached})
			return
		}
	}
}

func absF(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
