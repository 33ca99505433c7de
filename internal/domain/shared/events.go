package shared

import (
	"time"

	"github.com/google/uuid"
)

// EventType represents the type of domain event.
type EventType string

// Domain event types published by the school registry.
const (
	EventCourseAdded       EventType = "course.added"
	EventStudentRegistered EventType = "student.registered"
	EventStudentRemoved    EventType = "student.removed"
	EventStudentEnrolled   EventType = "student.enrolled"
	EventLockerAssigned    EventType = "locker.assigned"
)

// Event is the base interface for all domain events.
type Event interface {
	// EventID returns the unique ID of this occurrence.
	EventID() string

	// EventType returns the type of the event.
	EventType() EventType

	// OccurredAt returns when the event occurred.
	OccurredAt() time.Time

	// AggregateID returns the ID of the aggregate that produced this event.
	AggregateID() string

	// Payload returns the event data as a map, used for logging.
	Payload() map[string]interface{}
}

// BaseEvent provides common event functionality.
type BaseEvent struct {
	ID          string
	Type        EventType
	Timestamp   time.Time
	AggregateId string
}

// EventID implements Event interface.
func (e BaseEvent) EventID() string {
	return e.ID
}

// EventType implements Event interface.
func (e BaseEvent) EventType() EventType {
	return e.Type
}

// OccurredAt implements Event interface.
func (e BaseEvent) OccurredAt() time.Time {
	return e.Timestamp
}

// AggregateID implements Event interface.
func (e BaseEvent) AggregateID() string {
	return e.AggregateId
}

// NewBaseEvent creates a new base event.
func NewBaseEvent(eventType EventType, aggregateID string) BaseEvent {
	return BaseEvent{
		ID:          uuid.New().String(),
		Type:        eventType,
		Timestamp:   time.Now(),
		AggregateId: aggregateID,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Course Events
// ═══════════════════════════════════════════════════════════════════════════

// CourseAddedEvent is emitted when the registry accepts a new course code.
type CourseAddedEvent struct {
	BaseEvent
	Code CourseCode
}

// Payload implements Event interface.
func (e CourseAddedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"course_code": e.Code.String(),
	}
}

// NewCourseAddedEvent creates a new CourseAddedEvent.
func NewCourseAddedEvent(code CourseCode) CourseAddedEvent {
	return CourseAddedEvent{
		BaseEvent: NewBaseEvent(EventCourseAdded, code.String()),
		Code:      code,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Student Events
// ═══════════════════════════════════════════════════════════════════════════

// StudentRegisteredEvent is emitted when a student is created by the registry.
type StudentRegisteredEvent struct {
	BaseEvent
	Number StudentNumber
	Name   string
}

// Payload implements Event interface.
func (e StudentRegisteredEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_number": uint(e.Number),
		"name":           e.Name,
	}
}

// NewStudentRegisteredEvent creates a new StudentRegisteredEvent.
func NewStudentRegisteredEvent(n StudentNumber, name string) StudentRegisteredEvent {
	return StudentRegisteredEvent{
		BaseEvent: NewBaseEvent(EventStudentRegistered, n.String()),
		Number:    n,
		Name:      name,
	}
}

// StudentRemovedEvent is emitted when a student is discarded from the registry.
type StudentRemovedEvent struct {
	BaseEvent
	Number StudentNumber
}

// Payload implements Event interface.
func (e StudentRemovedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_number": uint(e.Number),
	}
}

// NewStudentRemovedEvent creates a new StudentRemovedEvent.
func NewStudentRemovedEvent(n StudentNumber) StudentRemovedEvent {
	return StudentRemovedEvent{
		BaseEvent: NewBaseEvent(EventStudentRemoved, n.String()),
		Number:    n,
	}
}

// StudentEnrolledEvent is emitted once both sides of an enrollment are linked.
type StudentEnrolledEvent struct {
	BaseEvent
	Number StudentNumber
	Code   CourseCode
}

// Payload implements Event interface.
func (e StudentEnrolledEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_number": uint(e.Number),
		"course_code":    e.Code.String(),
	}
}

// NewStudentEnrolledEvent creates a new StudentEnrolledEvent.
func NewStudentEnrolledEvent(n StudentNumber, code CourseCode) StudentEnrolledEvent {
	return StudentEnrolledEvent{
		BaseEvent: NewBaseEvent(EventStudentEnrolled, n.String()),
		Number:    n,
		Code:      code,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Locker Events
// ═══════════════════════════════════════════════════════════════════════════

// LockerAssignedEvent is emitted when a locker leaves the pool for a student.
type LockerAssignedEvent struct {
	BaseEvent
	Number       StudentNumber
	LockerID     string
	LockerNumber int
	Remaining    int
}

// Payload implements Event interface.
func (e LockerAssignedEvent) Payload() map[string]interface{} {
	return map[string]interface{}{
		"student_number": uint(e.Number),
		"locker_id":      e.LockerID,
		"locker_number":  e.LockerNumber,
		"remaining":      e.Remaining,
	}
}

// NewLockerAssignedEvent creates a new LockerAssignedEvent.
func NewLockerAssignedEvent(n StudentNumber, lockerID string, lockerNumber, remaining int) LockerAssignedEvent {
	return LockerAssignedEvent{
		BaseEvent:    NewBaseEvent(EventLockerAssigned, n.String()),
		Number:       n,
		LockerID:     lockerID,
		LockerNumber: lockerNumber,
		Remaining:    remaining,
	}
}

// ═══════════════════════════════════════════════════════════════════════════
// Bus contracts
// ═══════════════════════════════════════════════════════════════════════════

// EventHandler is a function that handles an event.
type EventHandler func(event Event) error

// EventPublisher defines the interface for publishing events.
type EventPublisher interface {
	// Publish sends an event to subscribers.
	Publish(event Event) error
}

// EventSubscriber defines the interface for subscribing to events.
type EventSubscriber interface {
	// Subscribe registers a handler for an event type.
	Subscribe(eventType EventType, handler EventHandler) error

	// SubscribeAll registers a handler for all events.
	SubscribeAll(handler EventHandler) error
}

// EventBus combines publishing and subscribing.
type EventBus interface {
	EventPublisher
	EventSubscriber
}
