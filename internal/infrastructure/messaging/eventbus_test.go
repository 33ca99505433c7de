package messaging

import (
	"bytes"
	"errors"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/alem-hub/school-registry/internal/domain/shared"
	"github.com/alem-hub/school-registry/pkg/logger"
)

func TestInMemoryEventBus_DeliveryOrder(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultInMemoryEventBusConfig())

	var calls []string
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		calls = append(calls, "all")
		return nil
	}))
	require.NoError(t, bus.Subscribe(shared.EventCourseAdded, func(e shared.Event) error {
		calls = append(calls, "course:"+e.AggregateID())
		return nil
	}))
	require.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, func(shared.Event) error {
		calls = append(calls, "enrolled")
		return nil
	}))

	require.NoError(t, bus.Publish(shared.NewCourseAddedEvent("MATH101")))

	assert.Equal(t, []string{"course:MATH101", "all"}, calls)
}

func TestInMemoryEventBus_HandlerErrorDoesNotStopOthers(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultInMemoryEventBusConfig())

	ran := false
	require.NoError(t, bus.Subscribe(shared.EventLockerAssigned, func(shared.Event) error {
		return errors.New("handler failed")
	}))
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error {
		ran = true
		return nil
	}))

	err := bus.Publish(shared.NewLockerAssignedEvent(9312, "id", 1, 0))
	require.NoError(t, err)
	assert.True(t, ran)

	snap := bus.Metrics().Snapshot()
	assert.Equal(t, int64(1), snap.TotalPublished)
	assert.Equal(t, int64(1), snap.Published[shared.EventLockerAssigned])
	assert.Equal(t, int64(1), snap.HandlerSuccess)
	assert.Equal(t, int64(1), snap.HandlerFailures)
	assert.Equal(t, int64(1), snap.Succeeded[shared.EventLockerAssigned])
	assert.Equal(t, int64(1), snap.Failed[shared.EventLockerAssigned])
}

func TestEventBusMetrics_CountsHandlersPerType(t *testing.T) {
	bus := NewInMemoryEventBus(DefaultInMemoryEventBusConfig())
	require.NoError(t, bus.Subscribe(shared.EventStudentEnrolled, func(shared.Event) error {
		return errors.New("enrollment handler failed")
	}))
	require.NoError(t, bus.SubscribeAll(func(shared.Event) error { return nil }))

	require.NoError(t, bus.Publish(shared.NewCourseAddedEvent("MATH101")))
	require.NoError(t, bus.Publish(shared.NewCourseAddedEvent("PHYS200")))
	require.NoError(t, bus.Publish(shared.NewStudentEnrolledEvent(9312, "MATH101")))

	snap := bus.Metrics().Snapshot()
	assert.Equal(t, map[shared.EventType]int64{
		shared.EventCourseAdded:     2,
		shared.EventStudentEnrolled: 1,
	}, snap.Succeeded)
	assert.Equal(t, map[shared.EventType]int64{
		shared.EventStudentEnrolled: 1,
	}, snap.Failed)
	assert.Equal(t, int64(3), snap.HandlerSuccess)
	assert.Equal(t, int64(1), snap.HandlerFailures)
}

func TestInMemoryEventBus_Rejects(t *testing.T) {
	bus := NewInMemoryEventBus(InMemoryEventBusConfig{})

	assert.Error(t, bus.Subscribe(shared.EventCourseAdded, nil))
	assert.Error(t, bus.SubscribeAll(nil))
	assert.Error(t, bus.Publish(nil))
	assert.Nil(t, bus.Metrics())

	require.NoError(t, bus.Close())
	require.NoError(t, bus.Close())

	assert.ErrorIs(t, bus.Publish(shared.NewCourseAddedEvent("MATH101")), ErrEventBusClosed)
	assert.ErrorIs(t, bus.SubscribeAll(func(shared.Event) error { return nil }), ErrEventBusClosed)
}

func TestLoggingHandler(t *testing.T) {
	var buf bytes.Buffer
	log := logger.New(logger.Options{Output: &buf, Level: logger.LevelInfo, Format: logger.FormatJSON})

	err := LoggingHandler(log)(shared.NewStudentEnrolledEvent(9312, "MATH101"))
	require.NoError(t, err)

	out := buf.String()
	assert.True(t, strings.Contains(out, `"event_type":"student.enrolled"`), out)
	assert.True(t, strings.Contains(out, `"course_code":"MATH101"`), out)
}
