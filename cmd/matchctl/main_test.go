package main

import (
	"bytes"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"jobmatch/internal/domain/matching"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	p := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(p, []byte(content), 0o644))
	return p
}

func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	cmd := newRootCmd()
	var out bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&out)
	cmd.SetArgs(args)
	err := cmd.Execute()
	return out.String(), err
}

const jobJSON = `{
  "title": "Software Engineer",
  "location": "Singapore",
  "remote": true,
  "jobType": ["Full-time"],
  "salary": {"min": 5000, "max": 8000, "period": "month", "currency": "S$"}
}`

const prefsJSON = `{
  "job_titles": ["Software Engineer"],
  "city": "Singapore",
  "remote_work": true,
  "minimum_pay": 4000,
  "pay_period": "month"
}`

func TestScoreCmd_FullMatch(t *testing.T) {
	out, err := execute(t, "score", "--job", writeFile(t, "job.json", jobJSON), "--prefs", writeFile(t, "prefs.json", prefsJSON))
	require.NoError(t, err)

	var res matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 100.0, res.Score)
	assert.Len(t, res.MatchReasons, 5)
}

func TestScoreCmd_NoPrefsIsNeutral(t *testing.T) {
	out, err := execute(t, "score", "--job", writeFile(t, "job.json", jobJSON))
	require.NoError(t, err)

	var res matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, matching.NeutralScore, res.Score)
	assert.Empty(t, res.MatchReasons)
}

func TestScoreCmd_NullPrefsIsNeutral(t *testing.T) {
	out, err := execute(t, "score", "--job", writeFile(t, "job.json", jobJSON), "--prefs", writeFile(t, "prefs.json", "null"))
	require.NoError(t, err)

	var res matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, matching.NeutralScore, res.Score)
	assert.Empty(t, res.MatchReasons)
}

func TestScoreCmd_RequiresJob(t *testing.T) {
	_, err := execute(t, "score")
	assert.Error(t, err)
}

func TestScoreCmd_CustomWeights(t *testing.T) {
	weights := writeFile(t, "w.yaml", "weights:\n  remote: 25\n  job_type: 0\n")
	_, err := execute(t, "score", "--job", writeFile(t, "job.json", jobJSON), "--weights", weights)
	assert.Error(t, err)

	weights = writeFile(t, "w.yaml", "weights:\n  remote: 20\n  job_type: 5\n")
	out, err := execute(t, "score", "--job", writeFile(t, "job.json", jobJSON), "--prefs", writeFile(t, "p.json", `{"remote_work": true}`), "--weights", weights)
	require.NoError(t, err)

	var res matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	assert.Equal(t, 25.0, res.Score)
}

func TestRankCmd(t *testing.T) {
	jobs := `[
	  {"title": "Barista", "location": "Jakarta"},
	  ` + jobJSON + `,
	  {"title": "Junior Software Engineer", "location": "Singapore CBD"}
	]`
	out, err := execute(t, "rank", "--jobs", writeFile(t, "jobs.json", jobs), "--prefs", writeFile(t, "prefs.json", prefsJSON), "--min-score", "1")
	require.NoError(t, err)

	var res []matching.JobMatchScore
	require.NoError(t, json.Unmarshal([]byte(out), &res))
	require.Len(t, res, 2)
	assert.Equal(t, "Software Engineer", res[0].Job.Title)
	assert.Equal(t, "Junior Software Engineer", res[1].Job.Title)
}

func TestRankCmd_RejectsBadFlags(t *testing.T) {
	jobs := writeFile(t, "jobs.json", "[]")

	_, err := execute(t, "rank", "--jobs", jobs, "--limit", "-1")
	assert.Error(t, err)

	_, err = execute(t, "rank", "--jobs", jobs, "--min-score", "150")
	assert.Error(t, err)

	_, err = execute(t, "rank", "--jobs", writeFile(t, "bad.json", "{"))
	assert.Error(t, err)
}

func TestWeightsValidateCmd(t *testing.T) {
	out, err := execute(t, "weights", "validate", "--file", writeFile(t, "w.yaml", "weights:\n  title_exact: 30\n"))
	require.NoError(t, err)
	assert.Contains(t, out, "weights OK")

	_, err = execute(t, "weights", "validate", "--file", writeFile(t, "w.yaml", "weights:\n  title_partial: 40\n"))
	assert.Error(t, err)
}

func TestWeightsShowCmd_Defaults(t *testing.T) {
	out, err := execute(t, "weights", "show")
	require.NoError(t, err)

	var w matching.Weights
	require.NoError(t, json.Unmarshal([]byte(out), &w))
	assert.Equal(t, matching.DefaultWeights(), w)
}
