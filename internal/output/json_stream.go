package output

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/temirov/dirtree/internal/services/stream"
	"github.com/temirov/dirtree/internal/types"
)

const (
	jsonIndent                 = "  "
	errorJSONMarshalFormat     = "marshal tree %s: %w"
	errorJSONWriteFormat       = "write tree %s: %w"
	errorJSONStackFormat       = "stream: no parent directory at depth %d for %s"
	errorJSONMissingRootFormat = "stream: entry %s arrived before start"
)

type jsonStreamRenderer struct {
	stdout   io.Writer
	root     *types.TreeNode
	dirStack []*types.TreeNode
}

// NewJSONStreamRenderer returns a renderer that rebuilds the nested tree from
// entry events and writes it as one indented JSON document on Flush.
func NewJSONStreamRenderer(stdout io.Writer) StreamRenderer {
	return &jsonStreamRenderer{stdout: stdout}
}

func (renderer *jsonStreamRenderer) Handle(event stream.Event) error {
	switch event.Kind {
	case stream.EventKindStart:
		if event.Root == nil {
			return nil
		}
		renderer.root = &types.TreeNode{
			Path: event.Root.Path,
			Name: event.Root.Name,
			Type: types.NodeTypeDirectory,
		}
		renderer.dirStack = []*types.TreeNode{renderer.root}
		return nil
	case stream.EventKindEntry:
		return renderer.handleEntry(event.Entry)
	default:
		return nil
	}
}

func (renderer *jsonStreamRenderer) handleEntry(entry *stream.EntryEvent) error {
	if entry == nil {
		return nil
	}
	if renderer.root == nil {
		return fmt.Errorf(errorJSONMissingRootFormat, entry.Path)
	}
	if entry.Depth < 0 || entry.Depth >= len(renderer.dirStack) {
		return fmt.Errorf(errorJSONStackFormat, entry.Depth, entry.Path)
	}
	renderer.dirStack = renderer.dirStack[:entry.Depth+1]
	parent := renderer.dirStack[entry.Depth]

	node := &types.TreeNode{Path: entry.Path, Name: entry.Name, Type: entry.Type}
	parent.Children = append(parent.Children, node)
	if entry.Type == types.NodeTypeDirectory {
		renderer.dirStack = append(renderer.dirStack, node)
	}
	return nil
}

func (renderer *jsonStreamRenderer) Flush() error {
	if renderer.stdout == nil || renderer.root == nil {
		return nil
	}
	encoded, marshalError := json.MarshalIndent(renderer.root, "", jsonIndent)
	if marshalError != nil {
		return fmt.Errorf(errorJSONMarshalFormat, renderer.root.Path, marshalError)
	}
	if _, writeError := fmt.Fprintln(renderer.stdout, string(encoded)); writeError != nil {
		return fmt.Errorf(errorJSONWriteFormat, renderer.root.Path, writeError)
	}
	return nil
}
