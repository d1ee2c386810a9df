package domain

import "time"

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventTokenDecoded  EventType = "TokenDecoded"
	EventDecodeFailed  EventType = "DecodeFailed"
	EventClockTick     EventType = "ClockTick"
	EventError         EventType = "Error"
	EventConfigLoaded  EventType = "ConfigLoaded"
	EventConfigSaved   EventType = "ConfigSaved"
	EventConfigChanged EventType = "ConfigChanged"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// TokenDecodedEvent is emitted after a token was decoded successfully
type TokenDecodedEvent struct {
	Entry HistoryEntry
}

func (e TokenDecodedEvent) Type() EventType { return EventTokenDecoded }

// DecodeFailedEvent is emitted when a token could not be decoded
type DecodeFailedEvent struct {
	Raw string
	Err error
}

func (e DecodeFailedEvent) Type() EventType { return EventDecodeFailed }

// ClockTickEvent is emitted by the refresh clock
type ClockTickEvent struct {
	At time.Time
}

func (e ClockTickEvent) Type() EventType { return EventClockTick }

// ErrorEvent is emitted when an error occurs
type ErrorEvent struct {
	Message string
	Err     error
}

func (e ErrorEvent) Type() EventType { return EventError }

// ConfigLoadedEvent is emitted when configuration is loaded
type ConfigLoadedEvent struct {
	Path       string
	LightTheme bool
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted when configuration is saved
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }

// ConfigChangedEvent is emitted when a setting changed at runtime and needs saving
type ConfigChangedEvent struct {
	Revision   uint64 // increases with every change
	LightTheme bool
}

func (e ConfigChangedEvent) Type() EventType { return EventConfigChanged }
