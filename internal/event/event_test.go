// internal/event/event_test.go
package event_test

import (
	"testing"

	"go-mazemaster/internal/event"

	"github.com/stretchr/testify/assert"
)

type recordingListener struct {
	received []event.Event
}

func (r *recordingListener) OnEvent(e event.Event) {
	r.received = append(r.received, e)
}

func TestDispatchDeliversToSubscriber(t *testing.T) {
	d := event.NewDispatcher()
	listener := &recordingListener{}
	d.Subscribe(event.LaserFired, listener)

	d.Dispatch(event.Event{Type: event.LaserFired, Data: 42})

	assert.Len(t, listener.received, 1)
	assert.Equal(t, event.LaserFired, listener.received[0].Type)
	assert.Equal(t, 42, listener.received[0].Data)
}

func TestDispatchIgnoresOtherTypes(t *testing.T) {
	d := event.NewDispatcher()
	listener := &recordingListener{}
	d.Subscribe(event.LaserFired, listener)

	d.Dispatch(event.Event{Type: event.PlayerCaught})

	assert.Empty(t, listener.received)
}

func TestDispatchFansOutInOrder(t *testing.T) {
	d := event.NewDispatcher()
	first := &recordingListener{}
	second := &recordingListener{}
	d.Subscribe(event.ExitReached, first)
	d.Subscribe(event.ExitReached, second)

	d.Dispatch(event.Event{Type: event.ExitReached})

	assert.Len(t, first.received, 1)
	assert.Len(t, second.received, 1)
}

func TestUnsubscribeStopsDelivery(t *testing.T) {
	d := event.NewDispatcher()
	listener := &recordingListener{}
	d.Subscribe(event.AdversaryKilled, listener)
	d.Unsubscribe(event.AdversaryKilled, listener)

	d.Dispatch(event.Event{Type: event.AdversaryKilled})

	assert.Empty(t, listener.received)
}

func TestUnsubscribeOnlyRemovesTarget(t *testing.T) {
	d := event.NewDispatcher()
	kept := &recordingListener{}
	removed := &recordingListener{}
	d.Subscribe(event.LevelStarted, kept)
	d.Subscribe(event.LevelStarted, removed)
	d.Unsubscribe(event.LevelStarted, removed)

	d.Dispatch(event.Event{Type: event.LevelStarted, Data: 3})

	assert.Len(t, kept.received, 1)
	assert.Empty(t, removed.received)
}

func TestDispatchWithoutSubscribersIsNoop(t *testing.T) {
	d := event.NewDispatcher()
	assert.NotPanics(t, func() {
		d.Dispatch(event.Event{Type: event.LaserFired})
	})
}
