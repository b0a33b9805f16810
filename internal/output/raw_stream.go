package output

import (
	"fmt"
	"io"

	"github.com/temirov/dirtree/internal/services/stream"
)

const errorWriteRawLineFormat = "write raw line for %s: %w"

type rawStreamRenderer struct {
	stdout io.Writer
}

// NewRawStreamRenderer returns a renderer that writes the root name and every
// entry line to stdout as soon as the event arrives.
func NewRawStreamRenderer(stdout io.Writer) StreamRenderer {
	return &rawStreamRenderer{stdout: stdout}
}

func (renderer *rawStreamRenderer) Handle(event stream.Event) error {
	if renderer.stdout == nil {
		return nil
	}
	switch event.Kind {
	case stream.EventKindStart:
		if event.Root != nil {
			return renderer.writeLine(event.Root.Path, event.Root.Name)
		}
	case stream.EventKindEntry:
		if event.Entry != nil {
			return renderer.writeLine(event.Entry.Path, event.Entry.Line())
		}
	}
	return nil
}

func (renderer *rawStreamRenderer) Flush() error {
	return nil
}

func (renderer *rawStreamRenderer) writeLine(path, line string) error {
	if _, err := fmt.Fprintln(renderer.stdout, line); err != nil {
		return fmt.Errorf(errorWriteRawLineFormat, path, err)
	}
	return nil
}
