package stream_test

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/temirov/dirtree/internal/services/stream"
	"github.com/temirov/dirtree/internal/tree"
	"github.com/temirov/dirtree/internal/types"
)

func collectEvents(t *testing.T, produce func(chan<- stream.Event) error) ([]stream.Event, error) {
	t.Helper()
	events := make(chan stream.Event)
	var produceError error
	go func() {
		defer close(events)
		produceError = produce(events)
	}()

	var collected []stream.Event
	for event := range events {
		collected = append(collected, event)
	}
	return collected, produceError
}

func TestStreamTreeEmitsEntriesInTraversalOrder(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	nested := filepath.Join(root, "nested")
	require.NoError(t, os.MkdirAll(filepath.Join(root, ".git"), 0o755))
	require.NoError(t, os.Mkdir(nested, 0o755))
	require.NoError(t, os.WriteFile(filepath.Join(nested, "example.txt"), []byte("tree"), 0o600))
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o600))

	events, streamError := collectEvents(t, func(ch chan<- stream.Event) error {
		return stream.StreamTree(context.Background(), stream.TreeOptions{Root: root, Ignore: tree.DefaultIgnoreSet()}, ch)
	})
	require.NoError(t, streamError)
	require.Len(t, events, 5)

	assert.Equal(t, stream.EventKindStart, events[0].Kind)
	require.NotNil(t, events[0].Root)
	assert.Equal(t, filepath.Base(root), events[0].Root.Name)
	assert.Equal(t, root, events[0].Root.Path)

	var lines []string
	for _, event := range events[1:4] {
		require.Equal(t, stream.EventKindEntry, event.Kind)
		require.NotNil(t, event.Entry)
		assert.Equal(t, stream.SchemaVersion, event.Version)
		assert.Equal(t, types.CommandTree, event.Command)
		assert.False(t, event.EmittedAt.IsZero())
		lines = append(lines, event.Entry.Line())
	}
	assert.Equal(t, []string{"├── nested", "│   └── example.txt", "└── a.txt"}, lines)
	assert.Equal(t, types.NodeTypeDirectory, events[1].Entry.Type)
	assert.Equal(t, 1, events[2].Entry.Depth)
	assert.True(t, events[3].Entry.IsLast)

	assert.Equal(t, stream.EventKindDone, events[4].Kind)
}

func TestStreamTreeReportsTraversalFailure(t *testing.T) {
	t.Parallel()
	missing := filepath.Join(t.TempDir(), "missing")

	events, streamError := collectEvents(t, func(ch chan<- stream.Event) error {
		return stream.StreamTree(context.Background(), stream.TreeOptions{Root: missing, Ignore: tree.DefaultIgnoreSet()}, ch)
	})
	require.Error(t, streamError)
	assert.Equal(t, tree.ErrorKindPathNotFound, tree.Classify(streamError))

	require.Len(t, events, 2)
	assert.Equal(t, stream.EventKindStart, events[0].Kind)
	assert.Equal(t, "missing", events[0].Root.Name)
	assert.Equal(t, stream.EventKindError, events[1].Kind)
	require.NotNil(t, events[1].Err)
	assert.Contains(t, events[1].Err.Message, missing)
}

func TestStreamTreeStopsWhenContextCancelled(t *testing.T) {
	t.Parallel()
	root := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(root, "a.txt"), []byte("a"), 0o600))

	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	streamError := stream.StreamTree(ctx, stream.TreeOptions{Root: root}, make(chan stream.Event))
	require.ErrorIs(t, streamError, context.Canceled)
}

func TestStreamTreeRejectsEmptyRoot(t *testing.T) {
	t.Parallel()
	streamError := stream.StreamTree(context.Background(), stream.TreeOptions{}, make(chan stream.Event))
	require.Error(t, streamError)
}
