package stream

import (
	"context"
	"fmt"
	"path/filepath"
	"time"

	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
)

// TreeOptions configures StreamTree.
type TreeOptions struct {
	Root   string
	Ignore tree.IgnoreSet
}

type emitter struct {
	ctx     context.Context
	out     chan<- Event
	command string
}

func newEmitter(ctx context.Context, out chan<- Event, command string) *emitter {
	if ctx == nil {
		ctx = context.Background()
	}
	return &emitter{ctx: ctx, out: out, command: command}
}

func (e *emitter) send(event Event) error {
	if e.out == nil {
		return fmt.Errorf("stream: event channel is nil")
	}
	event.Version = SchemaVersion
	if event.Command == "" {
		event.Command = e.command
	}
	if event.EmittedAt.IsZero() {
		event.EmittedAt = time.Now().UTC()
	}
	select {
	case <-e.ctx.Done():
		return e.ctx.Err()
	case e.out <- event:
		return nil
	}
}

// StreamTree walks opts.Root and sends a start event, one entry event per
// rendered line in traversal order and a done event. A traversal failure is
// sent as an error event and returned.
func StreamTree(ctx context.Context, opts TreeOptions, out chan<- Event) error {
	if opts.Root == "" {
		return fmt.Errorf("stream: tree root path is empty")
	}

	emitter := newEmitter(ctx, out, types.CommandTree)

	absoluteRoot, absoluteError := filepath.Abs(opts.Root)
	if absoluteError != nil {
		return fmt.Errorf("stream: resolving %s: %w", opts.Root, absoluteError)
	}
	rootName, rootNameError := tree.RootName(absoluteRoot)
	if rootNameError != nil {
		return rootNameError
	}
	if err := emitter.send(Event{
		Kind: EventKindStart,
		Path: absoluteRoot,
		Root: &RootEvent{Name: rootName, Path: absoluteRoot},
	}); err != nil {
		return err
	}

	handler := func(line tree.Line) error {
		entryType := types.NodeTypeFile
		if line.Entry.IsDirectory {
			entryType = types.NodeTypeDirectory
		}
		return emitter.send(Event{
			Kind: EventKindEntry,
			Path: line.Entry.Path,
			Entry: &EntryEvent{
				Name:      line.Entry.Name,
				Path:      line.Entry.Path,
				Type:      entryType,
				Depth:     line.Entry.Depth,
				IsLast:    line.IsLast,
				Prefix:    line.Prefix,
				Connector: line.Connector,
			},
		})
	}

	if renderError := tree.Render(absoluteRoot, "", opts.Ignore, handler); renderError != nil {
		if ctx != nil && ctx.Err() != nil {
			return renderError
		}
		_ = emitter.send(Event{Kind: EventKindError, Path: absoluteRoot, Err: &ErrorEvent{Message: renderError.Error()}})
		return renderError
	}

	return emitter.send(Event{Kind: EventKindDone, Path: absoluteRoot})
}
