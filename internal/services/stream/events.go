package stream

import "time"

const SchemaVersion = 1

type EventKind string

const (
	EventKindStart EventKind = "start"
	EventKindEntry EventKind = "entry"
	EventKindError EventKind = "error"
	EventKindDone  EventKind = "done"
)

type Event struct {
	Version   int       `json:"version"`
	Kind      EventKind `json:"kind"`
	Command   string    `json:"command,omitempty"`
	Path      string    `json:"path,omitempty"`
	EmittedAt time.Time `json:"emittedAt,omitempty"`

	Root  *RootEvent  `json:"root,omitempty"`
	Entry *EntryEvent `json:"entry,omitempty"`
	Err   *ErrorEvent `json:"error,omitempty"`
}

// RootEvent describes the directory a traversal starts from.
type RootEvent struct {
	Name string `json:"name"`
	Path string `json:"path"`
}

// EntryEvent carries one rendered line.
type EntryEvent struct {
	Name      string `json:"name"`
	Path      string `json:"path"`
	Type      string `json:"type"`
	Depth     int    `json:"depth"`
	IsLast    bool   `json:"isLast"`
	Prefix    string `json:"prefix"`
	Connector string `json:"connector"`
}

// Line returns the printable form of the entry.
func (entry *EntryEvent) Line() string {
	return entry.Prefix + entry.Connector + entry.Name
}

type ErrorEvent struct {
	Message string `json:"message"`
}
