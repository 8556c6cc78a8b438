package service

import (
	"context"
	"errors"
	"testing"

	"github.com/docfaq/docfaq/internal/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
)

// MockDocumentSource is a mock implementation of DocumentSource
type MockDocumentSource struct {
	mock.Mock
}

func (m *MockDocumentSource) Name() string {
	args := m.Called()
	return args.String(0)
}

func (m *MockDocumentSource) Fetch(ctx context.Context) ([]byte, error) {
	args := m.Called(ctx)
	if args.Get(0) == nil {
		return nil, args.Error(1)
	}
	return args.Get(0).([]byte), args.Error(1)
}

// MockTextExtractor is a mock implementation of TextExtractor
type MockTextExtractor struct {
	mock.Mock
}

func (m *MockTextExtractor) ExtractText(name string, data []byte) (string, error) {
	args := m.Called(name, data)
	return args.String(0), args.Error(1)
}

func newTestEngine(t *testing.T, text string) *Engine {
	t.Helper()

	source := new(MockDocumentSource)
	source.On("Name").Return("faq.txt")
	source.On("Fetch", mock.Anything).Return([]byte(text), nil)

	extractor := new(MockTextExtractor)
	extractor.On("ExtractText", "faq.txt", []byte(text)).Return(text, nil)

	return NewEngine(source, extractor, DefaultEngineConfig())
}

func TestEngineReload(t *testing.T) {
	engine := newTestEngine(t, cabDocument)

	require.NoError(t, engine.Reload(context.Background()))

	snap := engine.Snapshot()
	require.Equal(t, 2, snap.Len())
	assert.Equal(t, "faq.txt", snap.Source)
	assert.False(t, snap.LoadedAt.IsZero())
}

func TestEngineAnswerConfident(t *testing.T) {
	engine := newTestEngine(t, cabDocument)
	require.NoError(t, engine.Reload(context.Background()))

	result := engine.Answer("tell me about the CAB")
	require.True(t, result.Matched)
	assert.Equal(t, "A Change Advisory Board reviews RFCs.", result.Body)
	assert.Equal(t, "What is a CAB?", result.Label)
	assert.Greater(t, result.ConfidencePercent, 35)
	assert.Empty(t, result.FallbackMessage)
}

func TestEngineAnswerFallback(t *testing.T) {
	engine := newTestEngine(t, cabDocument)
	require.NoError(t, engine.Reload(context.Background()))

	result := engine.Answer("banana spaceship")
	require.False(t, result.Matched)
	assert.Empty(t, result.Body)
	assert.Equal(t, DefaultEngineConfig().FallbackMessage, result.FallbackMessage)
	assert.LessOrEqual(t, result.ConfidencePercent, 35)
}

func TestEngineAnswerEmptyBase(t *testing.T) {
	engine := newTestEngine(t, cabDocument)

	// No reload yet: the engine starts with zero knowledge and must
	// still answer, with the fallback message and confidence 0.
	result := engine.Answer("what is a cab")
	assert.False(t, result.Matched)
	assert.Zero(t, result.ConfidencePercent)
	assert.NotEmpty(t, result.FallbackMessage)
}

func TestEngineReloadFetchFailureKeepsSnapshot(t *testing.T) {
	engine := newTestEngine(t, cabDocument)
	require.NoError(t, engine.Reload(context.Background()))

	source := new(MockDocumentSource)
	source.On("Name").Return("faq.txt")
	source.On("Fetch", mock.Anything).Return(nil, errors.New("disk on fire"))
	engine.source = source

	err := engine.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))

	assert.Equal(t, 2, engine.Snapshot().Len(), "stale snapshot survives a failed reload")
	assert.Contains(t, engine.Status().LastError, "disk on fire")
}

func TestEngineReloadExtractFailureKeepsSnapshot(t *testing.T) {
	engine := newTestEngine(t, cabDocument)
	require.NoError(t, engine.Reload(context.Background()))

	extractor := new(MockTextExtractor)
	extractor.On("ExtractText", mock.Anything, mock.Anything).Return("", errors.New("not a document"))
	engine.extractor = extractor

	err := engine.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrExtractionFailed))
	assert.Equal(t, 2, engine.Snapshot().Len())
}

func TestEngineReloadEmptyDocumentKeepsSnapshot(t *testing.T) {
	engine := newTestEngine(t, cabDocument)
	require.NoError(t, engine.Reload(context.Background()))

	source := new(MockDocumentSource)
	source.On("Name").Return("faq.txt")
	source.On("Fetch", mock.Anything).Return([]byte(""), nil)
	engine.source = source

	extractor := new(MockTextExtractor)
	extractor.On("ExtractText", mock.Anything, mock.Anything).Return("   \n\n ", nil)
	engine.extractor = extractor

	err := engine.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrEmptyDocument))
	assert.Equal(t, 2, engine.Snapshot().Len())
}

func TestEngineReloadNoSource(t *testing.T) {
	engine := NewEngine(nil, new(MockTextExtractor), DefaultEngineConfig())

	err := engine.Reload(context.Background())
	require.Error(t, err)
	assert.True(t, errors.Is(err, domain.ErrNoDocumentConfigured))
	assert.Zero(t, engine.Snapshot().Len())
}

func TestEngineStatus(t *testing.T) {
	engine := newTestEngine(t, cabDocument)

	status := engine.Status()
	assert.Zero(t, status.EntryCount)
	assert.Equal(t, "faq.txt", status.Source)

	require.NoError(t, engine.Reload(context.Background()))

	status = engine.Status()
	assert.Equal(t, 2, status.EntryCount)
	assert.Empty(t, status.LastError)
	assert.False(t, status.LastAttemptAt.IsZero())
}
