package trace

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func sampleSpans(t *testing.T) []Span {
	t.Helper()
	first := NewSpan("run-1", "alpha", 0, "user: task").Finish("reply one", nil)
	second := NewSpan("run-1", "beta", 1, "user: task\nalpha: reply one").Finish("", errors.New("timeout"))
	return []Span{first, second}
}

func testDatasetStore(t *testing.T, store DatasetStore) {
	t.Helper()

	spans := sampleSpans(t)
	require.NoError(t, store.Save("triage-run", spans))

	loaded, err := store.Load("triage-run")
	require.NoError(t, err)
	require.Len(t, loaded, 2)
	assert.Equal(t, spans[0].ID, loaded[0].ID)
	assert.Equal(t, "alpha", loaded[0].Agent)
	assert.Equal(t, StatusOK, loaded[0].Status)
	assert.Equal(t, StatusError, loaded[1].Status)
	assert.Equal(t, "timeout", loaded[1].Error)

	_, err = store.Load("missing")
	assert.ErrorIs(t, err, ErrDatasetNotFound)

	require.NoError(t, store.Save("another", spans[:1]))
	names, err := store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"another", "triage-run"}, names)

	require.NoError(t, store.Delete("another"))
	assert.ErrorIs(t, store.Delete("another"), ErrDatasetNotFound)

	names, err = store.List()
	require.NoError(t, err)
	assert.Equal(t, []string{"triage-run"}, names)
}

func TestInMemoryDatasetStore(t *testing.T) {
	testDatasetStore(t, NewInMemoryDatasetStore())
}

func TestFileDatasetStore(t *testing.T) {
	store, err := NewFileDatasetStore(t.TempDir())
	require.NoError(t, err)
	testDatasetStore(t, store)
}

func TestFileDatasetStoreSurvivesReopen(t *testing.T) {
	dir := t.TempDir()

	store, err := NewFileDatasetStore(dir)
	require.NoError(t, err)
	require.NoError(t, store.Save("persisted", sampleSpans(t)))

	reopened, err := NewFileDatasetStore(dir)
	require.NoError(t, err)

	loaded, err := reopened.Load("persisted")
	require.NoError(t, err)
	assert.Len(t, loaded, 2)
}
