package output_test

import (
	"bytes"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/dirtree/internal/output"
	"github.com/temirov/dirtree/internal/services/stream"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
)

const rootPath = "/tmp/root"

func sampleEvents() []stream.Event {
	return []stream.Event{
		{Kind: stream.EventKindStart, Path: rootPath, Root: &stream.RootEvent{Name: "root", Path: rootPath}},
		{Kind: stream.EventKindEntry, Entry: &stream.EntryEvent{Name: "dirA", Path: rootPath + "/dirA", Type: types.NodeTypeDirectory, Depth: 0, Prefix: "", Connector: tree.ConnectorBranch}},
		{Kind: stream.EventKindEntry, Entry: &stream.EntryEvent{Name: "dirB", Path: rootPath + "/dirA/dirB", Type: types.NodeTypeDirectory, Depth: 1, Prefix: tree.PrefixContinue, Connector: tree.ConnectorLast, IsLast: true}},
		{Kind: stream.EventKindEntry, Entry: &stream.EntryEvent{Name: "file.txt", Path: rootPath + "/dirA/dirB/file.txt", Type: types.NodeTypeFile, Depth: 2, Prefix: tree.PrefixContinue + tree.PrefixClosed, Connector: tree.ConnectorLast, IsLast: true}},
		{Kind: stream.EventKindEntry, Entry: &stream.EntryEvent{Name: "z.txt", Path: rootPath + "/z.txt", Type: types.NodeTypeFile, Depth: 0, Prefix: "", Connector: tree.ConnectorLast, IsLast: true}},
		{Kind: stream.EventKindDone, Path: rootPath},
	}
}

func TestRawStreamRendererWritesLinesInOrder(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	renderer := output.NewRawStreamRenderer(&stdout)
	for index, event := range sampleEvents() {
		require.NoError(t, renderer.Handle(event), "handle event %d", index)
	}
	require.NoError(t, renderer.Flush())

	assert.Equal(t, "root\n├── dirA\n│   └── dirB\n│       └── file.txt\n└── z.txt\n", stdout.String())
}

func TestRawStreamRendererWritesImmediately(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	renderer := output.NewRawStreamRenderer(&stdout)
	events := sampleEvents()
	require.NoError(t, renderer.Handle(events[0]))
	require.NoError(t, renderer.Handle(events[1]))

	assert.Equal(t, "root\n├── dirA\n", stdout.String())
}

func TestRawStreamRendererIgnoresErrorEvents(t *testing.T) {
	t.Parallel()

	var stdout bytes.Buffer
	renderer := output.NewRawStreamRenderer(&stdout)
	require.NoError(t, renderer.Handle(stream.Event{Kind: stream.EventKindError, Err: &stream.ErrorEvent{Message: "boom"}}))
	assert.Empty(t, stdout.String())
}

type failingWriter struct{}

func (failingWriter) Write([]byte) (int, error) {
	return 0, errors.New("closed")
}

func TestRawStreamRendererReportsWriteFailure(t *testing.T) {
	t.Parallel()

	renderer := output.NewRawStreamRenderer(failingWriter{})
	handleError := renderer.Handle(sampleEvents()[0])
	require.Error(t, handleError)
	assert.Contains(t, handleError.Error(), rootPath)
}

func TestNewStreamRendererRejectsUnknownFormat(t *testing.T) {
	t.Parallel()

	renderer, rendererError := output.NewStreamRenderer("xml", &bytes.Buffer{})
	require.Error(t, rendererError)
	assert.Nil(t, renderer)
}
