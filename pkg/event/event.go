// pkg/event/event.go
package event

import (
	"sync"
)

// Type represents the type of event
type Type string

// Common event types
const (
	GameStarted    Type = "game_started"
	GameEnded      Type = "game_ended"
	LevelStarted   Type = "level_started"
	LevelCompleted Type = "level_completed"
	ShipDestroyed  Type = "ship_destroyed"
	BodySpawned    Type = "body_spawned"
	FuelExhausted  Type = "fuel_exhausted"
)

// Event is the base interface for all events
type Event interface {
	GetType() Type
	GetSource() interface{}
}

// BaseEvent provides common functionality for all events
type BaseEvent struct {
	EventType Type
	Source    interface{}
}

// GetType returns the event type
func (e *BaseEvent) GetType() Type {
	return e.EventType
}

// GetSource returns the event source
func (e *BaseEvent) GetSource() interface{} {
	return e.Source
}

// Handler is a function that handles events
type Handler func(Event)

// Bus manages event subscriptions and dispatching
type Bus struct {
	handlers map[Type][]Handler
	mu       sync.RWMutex
}

// NewEventBus creates a new event bus
func NewEventBus() *Bus {
	return &Bus{
		handlers: make(map[Type][]Handler),
	}
}

// Subscribe registers a handler for a specific event type
func (b *Bus) Subscribe(eventType Type, handler Handler) {
	b.mu.Lock()
	defer b.mu.Unlock()

	b.handlers[eventType] = append(b.handlers[eventType], handler)
}

// Publish sends an event to all subscribed handlers
func (b *Bus) Publish(event Event) {
	b.mu.RLock()
	handlers, ok := b.handlers[event.GetType()]
	b.mu.RUnlock()

	if !ok {
		return
	}

	for _, handler := range handlers {
		handler(event)
	}
}

// LevelEvent carries level lifecycle information
type LevelEvent struct {
	BaseEvent
	LevelIndex int
	LevelName  string
	Score      int
}

// NewLevelEvent creates a new level event
func NewLevelEvent(eventType Type, source interface{}, levelIndex int, levelName string, score int) *LevelEvent {
	return &LevelEvent{
		BaseEvent: BaseEvent{
			EventType: eventType,
			Source:    source,
		},
		LevelIndex: levelIndex,
		LevelName:  levelName,
		Score:      score,
	}
}

// CollisionEvent carries information about the ship hitting a hazard
type CollisionEvent struct {
	BaseEvent
	ShipID uint64
	BodyID uint64
}

// NewCollisionEvent creates a new collision event
func NewCollisionEvent(source interface{}, shipID, bodyID uint64) *CollisionEvent {
	return &CollisionEvent{
		BaseEvent: BaseEvent{
			EventType: ShipDestroyed,
			Source:    source,
		},
		ShipID: shipID,
		BodyID: bodyID,
	}
}

// SpawnEvent carries information about a player-spawned body
type SpawnEvent struct {
	BaseEvent
	BodyID uint64
	Preset string
}

// NewSpawnEvent creates a new spawn event
func NewSpawnEvent(source interface{}, bodyID uint64, preset string) *SpawnEvent {
	return &SpawnEvent{
		BaseEvent: BaseEvent{
			EventType: BodySpawned,
			Source:    source,
		},
		BodyID: bodyID,
		Preset: preset,
	}
}
