package store

import (
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func openTestStore(t *testing.T) *Store {
	t.Helper()
	s, err := Open(filepath.Join(t.TempDir(), "test.db"))
	require.NoError(t, err)
	t.Cleanup(func() { s.Close() })
	return s
}

func TestEventRepo_AppendAndQuery(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := t.Context()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID: "r1", Provider: "gemini", Model: "gemini-3-flash-preview",
		Purpose: "solve", Kind: "generate", InputTokens: 100, OutputTokens: 40,
		LatencyMs: 900, Success: true, RequestBody: "[user]\n12 + 7", ResponseBody: `{"ok":true}`,
	}))
	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID: "r2", Provider: "gemini", Model: "gemini-2.5-flash-preview-tts",
		Purpose: "narrate", Kind: "speech", LatencyMs: 1500, Success: false,
		ErrorMessage: "audio generation failed",
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{})
	require.NoError(t, err)
	require.Len(t, events, 2)

	// Newest first.
	assert.Equal(t, "r2", events[0].RequestID)
	assert.False(t, events[0].Success)
	assert.Equal(t, "audio generation failed", events[0].ErrorMessage)
	assert.Equal(t, "r1", events[1].RequestID)
	assert.True(t, events[1].Success)
	assert.False(t, events[1].Timestamp.IsZero())

	filtered, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "solve", Limit: 10})
	require.NoError(t, err)
	require.Len(t, filtered, 1)
	assert.Equal(t, 100, filtered[0].InputTokens)

	failed, err := repo.QueryLLMEvents(ctx, QueryOpts{FailedOnly: true})
	require.NoError(t, err)
	require.Len(t, failed, 1)
	assert.Equal(t, "r2", failed[0].RequestID)

	none, err := repo.QueryLLMEvents(ctx, QueryOpts{Purpose: "solve", FailedOnly: true})
	require.NoError(t, err)
	assert.Empty(t, none)
}

func TestEventRepo_GetLLMEvent(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := t.Context()

	require.NoError(t, repo.AppendLLMRequest(ctx, LLMRequestEventData{
		RequestID: "abc", Provider: "mock", Model: "mock", Purpose: "solve", Kind: "generate", Success: true,
	}))

	events, err := repo.QueryLLMEvents(ctx, QueryOpts{Limit: 1})
	require.NoError(t, err)
	require.Len(t, events, 1)

	got, err := repo.GetLLMEvent(ctx, events[0].ID)
	require.NoError(t, err)
	require.NotNil(t, got)
	assert.Equal(t, "abc", got.RequestID)

	missing, err := repo.GetLLMEvent(ctx, 9999)
	require.NoError(t, err)
	assert.Nil(t, missing)
}

func TestEventRepo_Usage(t *testing.T) {
	repo := openTestStore(t).EventRepo()
	ctx := t.Context()

	for _, d := range []LLMRequestEventData{
		{Model: "m1", Purpose: "solve", InputTokens: 10, OutputTokens: 5, LatencyMs: 100},
		{Model: "m1", Purpose: "solve", InputTokens: 20, OutputTokens: 15, LatencyMs: 300},
		{Model: "m2", Purpose: "illustrate", InputTokens: 7, OutputTokens: 1, LatencyMs: 50},
	} {
		d.Provider, d.Kind, d.Success = "gemini", "generate", true
		require.NoError(t, repo.AppendLLMRequest(ctx, d))
	}

	byPurpose, err := repo.LLMUsageByPurpose(ctx)
	require.NoError(t, err)
	require.Len(t, byPurpose, 2)
	assert.Equal(t, PurposeUsage{Purpose: "illustrate", Calls: 1, InputTokens: 7, OutputTokens: 1, AvgLatencyMs: 50}, byPurpose[0])
	assert.Equal(t, PurposeUsage{Purpose: "solve", Calls: 2, InputTokens: 30, OutputTokens: 20, AvgLatencyMs: 200}, byPurpose[1])

	byModel, err := repo.LLMUsageByModel(ctx)
	require.NoError(t, err)
	require.Len(t, byModel, 2)
	assert.Equal(t, ModelUsage{Model: "m1", Calls: 2, InputTokens: 30, OutputTokens: 20}, byModel[0])
}

func TestEnsureDir(t *testing.T) {
	p := filepath.Join(t.TempDir(), "a", "b", "c.db")
	require.NoError(t, EnsureDir(p))
	assert.DirExists(t, filepath.Dir(p))
}
