package main

import (
	"context"
	"encoding/json"
	"testing"

	"jobmatch/internal/domain/matching"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func callTool(t *testing.T, h func(context.Context, mcp.CallToolRequest) (*mcp.CallToolResult, error), args any) (*mcp.CallToolResult, string) {
	t.Helper()

	var req mcp.CallToolRequest
	req.Params.Arguments = args
	res, err := h(context.Background(), req)
	require.NoError(t, err)
	require.NotNil(t, res)
	require.NotEmpty(t, res.Content)

	text, ok := res.Content[0].(mcp.TextContent)
	require.True(t, ok)
	return res, text.Text
}

func sampleJob() map[string]interface{} {
	return map[string]interface{}{
		"title":    "Software Engineer",
		"location": "Singapore",
		"remote":   true,
		"jobType":  []interface{}{"Full-time"},
		"salary":   map[string]interface{}{"min": 5000.0, "max": 8000.0, "period": "month"},
	}
}

func samplePrefs() map[string]interface{} {
	return map[string]interface{}{
		"job_titles":  []interface{}{"Software Engineer"},
		"city":        "Singapore",
		"remote_work": true,
		"minimum_pay": 4000.0,
		"pay_period":  "month",
	}
}

func TestScoreJobTool(t *testing.T) {
	h := scoreJobHandler(matching.DefaultScorer())

	res, text := callTool(t, h, map[string]interface{}{"job": sampleJob(), "preferences": samplePrefs()})
	assert.False(t, res.IsError)

	var out matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, 100.0, out.Score)

	_, text = callTool(t, h, map[string]interface{}{"job": sampleJob()})
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	assert.Equal(t, matching.NeutralScore, out.Score)
}

func TestScoreJobTool_NullPreferencesIsNeutral(t *testing.T) {
	h := scoreJobHandler(matching.DefaultScorer())

	for _, prefs := range []interface{}{nil, json.RawMessage("null")} {
		res, text := callTool(t, h, map[string]interface{}{"job": sampleJob(), "preferences": prefs})
		require.False(t, res.IsError)

		var out matching.JobMatchScore
		require.NoError(t, json.Unmarshal([]byte(text), &out))
		assert.Equal(t, matching.NeutralScore, out.Score)
		assert.Empty(t, out.MatchReasons)
	}
}

func TestScoreJobTool_ArgumentErrors(t *testing.T) {
	h := scoreJobHandler(matching.DefaultScorer())

	res, _ := callTool(t, h, "nope")
	assert.True(t, res.IsError)

	res, text := callTool(t, h, map[string]interface{}{})
	assert.True(t, res.IsError)
	assert.Contains(t, text, "job")

	res, _ = callTool(t, h, map[string]interface{}{"job": "not an object"})
	assert.True(t, res.IsError)
}

func TestRankJobsTool(t *testing.T) {
	h := rankJobsHandler(matching.DefaultScorer())

	jobs := []interface{}{
		map[string]interface{}{"title": "Barista", "location": "Jakarta"},
		sampleJob(),
		map[string]interface{}{"title": "Junior Software Engineer", "location": "Singapore CBD"},
	}
	res, text := callTool(t, h, map[string]interface{}{
		"jobs":        jobs,
		"preferences": samplePrefs(),
		"min_score":   1.0,
		"limit":       1.0,
	})
	assert.False(t, res.IsError)

	var out []matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(text), &out))
	require.Len(t, out, 1)
	assert.Equal(t, "Software Engineer", out[0].Job.Title)
}

func TestRankJobsTool_ArgumentErrors(t *testing.T) {
	h := rankJobsHandler(matching.DefaultScorer())

	for _, args := range []map[string]interface{}{
		{},
		{"jobs": "x"},
		{"jobs": []interface{}{}, "min_score": 101.0},
		{"jobs": []interface{}{}, "limit": -2.0},
	} {
		res, _ := callTool(t, h, args)
		assert.True(t, res.IsError, "%v", args)
	}
}
