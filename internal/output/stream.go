package output

import (
	"github.com/temirov/dirtree/internal/services/stream"
)

type StreamRenderer interface {
	Handle(event stream.Event) error
	Flush() error
}
