package domain

// EventType represents the type of domain event
type EventType string

// Event types
const (
	EventSelectionConfirmed EventType = "SelectionConfirmed"
	EventFetchFailed        EventType = "FetchFailed"
	EventStaleResults       EventType = "StaleResults"
	EventConfigLoaded       EventType = "ConfigLoaded"
	EventConfigSaved        EventType = "ConfigSaved"
)

// DomainEvent is the interface for all domain events
type DomainEvent interface {
	Type() EventType
}

// SelectionConfirmedEvent is emitted when a widget confirms a candidate
type SelectionConfirmedEvent struct {
	Widget string
	Text   string
	Value  any
}

func (e SelectionConfirmedEvent) Type() EventType { return EventSelectionConfirmed }

// FetchFailedEvent is emitted when a remote lookup degrades to no results
type FetchFailedEvent struct {
	Query string
	Err   error
}

func (e FetchFailedEvent) Type() EventType { return EventFetchFailed }

// StaleResultsEvent is emitted when a widget drops an out-of-date resolution
type StaleResultsEvent struct {
	Widget string
	Query  string
	Seq    uint64
	Latest uint64
}

func (e StaleResultsEvent) Type() EventType { return EventStaleResults }

// ConfigLoadedEvent is emitted after configuration is read
type ConfigLoadedEvent struct {
	Path string
}

func (e ConfigLoadedEvent) Type() EventType { return EventConfigLoaded }

// ConfigSavedEvent is emitted after configuration is written
type ConfigSavedEvent struct {
	Path string
}

func (e ConfigSavedEvent) Type() EventType { return EventConfigSaved }
