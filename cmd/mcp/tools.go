package main

import (
	"context"
	"encoding/json"
	"fmt"

	"jobmatch/internal/domain/matching"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"
)

var jobSchema = map[string]interface{}{
	"type":        "object",
	"description": "A job posting with title, location, remote, jobType and optional salary {min, max, period, currency}",
}

var preferencesSchema = map[string]interface{}{
	"type":        "object",
	"description": "User preferences: job_titles, city, country, remote_work, minimum_pay, pay_period. Omit for the neutral score.",
}

func registerTools(s *server.MCPServer, scorer *matching.Scorer) {
	scoreTool := mcp.NewTool("score_job",
		mcp.WithDescription("Score one job posting against user preferences and explain the match"),
	)
	scoreTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"job":         jobSchema,
			"preferences": preferencesSchema,
		},
		Required: []string{"job"},
	}
	s.AddTool(scoreTool, scoreJobHandler(scorer))

	rankTool := mcp.NewTool("rank_jobs",
		mcp.WithDescription("Rank job postings by match score, highest first"),
	)
	rankTool.InputSchema = mcp.ToolInputSchema{
		Type: "object",
		Properties: map[string]interface{}{
			"jobs":        map[string]interface{}{"type": "array", "items": jobSchema},
			"preferences": preferencesSchema,
			"min_score":   map[string]interface{}{"type": "number", "description": "Drop jobs scoring below this value (0-100)"},
			"limit":       map[string]interface{}{"type": "integer", "description": "Maximum number of results"},
		},
		Required: []string{"jobs"},
	}
	s.AddTool(rankTool, rankJobsHandler(scorer))
}

func scoreJobHandler(scorer *matching.Scorer) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}
		raw, ok := args["job"]
		if !ok || raw == nil {
			return mcp.NewToolResultError("missing required field: job"), nil
		}

		var job matching.Job
		if err := decodeArg(raw, &job); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid job: %v", err)), nil
		}
		prefs, err := decodePreferences(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid preferences: %v", err)), nil
		}

		return jsonResult(scorer.Score(job, prefs))
	}
}

func rankJobsHandler(scorer *matching.Scorer) server.ToolHandlerFunc {
	return func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		args, ok := request.Params.Arguments.(map[string]interface{})
		if !ok {
			return mcp.NewToolResultError("invalid arguments format"), nil
		}
		raw, ok := args["jobs"]
		if !ok || raw == nil {
			return mcp.NewToolResultError("missing required field: jobs"), nil
		}

		var jobs []matching.Job
		if err := decodeArg(raw, &jobs); err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid jobs: %v", err)), nil
		}
		prefs, err := decodePreferences(args)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("invalid preferences: %v", err)), nil
		}

		opts := matching.RankOptions{}
		if v, ok := args["min_score"].(float64); ok {
			if v < matching.MinScore || v > matching.MaxScore {
				return mcp.NewToolResultError("min_score must be between 0 and 100"), nil
			}
			opts.MinScore = v
		}
		if v, ok := args["limit"].(float64); ok {
			if v < 0 {
				return mcp.NewToolResultError("limit must not be negative"), nil
			}
			opts.Limit = int(v)
		}

		ranked, err := scorer.Rank(ctx, jobs, prefs, opts)
		if err != nil {
			return mcp.NewToolResultError(fmt.Sprintf("rank failed: %v", err)), nil
		}
		return jsonResult(ranked)
	}
}

// decodeArg round-trips a loosely typed argument through JSON into out.
func decodeArg(raw interface{}, out interface{}) error {
	b, err := json.Marshal(raw)
	if err != nil {
		return err
	}
	return json.Unmarshal(b, out)
}

func decodePreferences(args map[string]interface{}) (*matching.UserPreferences, error) {
	raw, ok := args["preferences"]
	if !ok || raw == nil {
		return nil, nil
	}
	var p *matching.UserPreferences
	if err := decodeArg(raw, &p); err != nil {
		return nil, err
	}
	return p, nil
}

func jsonResult(v interface{}) (*mcp.CallToolResult, error) {
	b, err := json.Marshal(v)
	if err != nil {
		return mcp.NewToolResultError(fmt.Sprintf("encode result: %v", err)), nil
	}
	return mcp.NewToolResultText(string(b)), nil
}
