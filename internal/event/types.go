// internal/event/types.go
package event

const (
	LaserFired       EventType = "LaserFired"
	AdversaryKilled  EventType = "AdversaryKilled"  // Data: types.EntityID
	AdversarySpawned EventType = "AdversarySpawned" // Data: types.EntityID
	PlayerCaught     EventType = "PlayerCaught"
	ExitReached      EventType = "ExitReached"
	LevelStarted     EventType = "LevelStarted" // Data: level number
)
