package model

import "time"

type EventType string

const (
	EventDeviceDomainCreated EventType = "created"
	EventDeviceDomainUpdated EventType = "updated"
	EventDeviceDomainDeleted EventType = "deleted"
)

type DeviceDomainEvent struct {
	Type       EventType      `json:"type"`
	ID         DeviceDomainID `json:"id"`
	Name       string         `json:"name"`
	Brand      string         `json:"brand"`
	State      State          `json:"state"`
	OccurredAt time.Time      `json:"occurredAt"`
}

func NewDeviceDomainEvent(eventType EventType, d *DeviceDomain) DeviceDomainEvent {
	return DeviceDomainEvent{
		Type:       eventType,
		ID:         d.ID,
		Name:       d.Name,
		Brand:      d.Brand,
		State:      d.State,
		OccurredAt: time.Now().UTC(),
	}
}
