package cli

import (
	"context"
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadProfile(t *testing.T) {
	p, err := LoadProfile("testdata/small.yaml")
	require.NoError(t, err)
	assert.Equal(t, "small", p.Name)
	assert.Equal(t, 16, p.Load)
	assert.Equal(t, 0.25, p.UpdateRatio)
	assert.Equal(t, 2000, p.Size)
	assert.Equal(t, 3, p.Mix.Add)
	assert.Equal(t, 20, p.Batch)
}

func TestLoadProfileRejectsUnknownFields(t *testing.T) {
	_, err := LoadProfile("testdata/typo.yaml")
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse YAML")
}

func TestLoadProfileMissingFile(t *testing.T) {
	_, err := LoadProfile("testdata/does-not-exist.yaml")
	require.Error(t, err)
}

func TestProfileValidation(t *testing.T) {
	p := DefaultProfile
	p.Mix = Mix{}
	assert.Error(t, p.validate(), "empty mix")

	p = DefaultProfile
	p.Load = 1
	p.UpdateRatio = -1
	assert.Error(t, p.validate(), "negative ratio")

	p = DefaultProfile
	p.Ops = 0
	p.Mix = Mix{}
	assert.NoError(t, p.validate(), "no operations need no mix")
}

func TestRunBench(t *testing.T) {
	p, err := LoadProfile("testdata/small.yaml")
	require.NoError(t, err)
	report, err := RunBench(p, true)
	require.NoError(t, err)
	assert.True(t, report.Checked)
	assert.Equal(t, "small", report.Profile)
	total := 0
	for _, op := range report.Ops {
		total += op.Count
	}
	assert.Equal(t, p.Ops, total)
	assert.Equal(t, report.Len, report.Summary.Len)
	assert.Len(t, report.Metrics, 4)
	assert.Contains(t, report.String(), "invariants ok")

	again, err := RunBench(p, false)
	require.NoError(t, err)
	assert.Equal(t, report.Len, again.Len, "runs with equal seeds are reproducible")
}

func TestBenchCommandOverridesProfile(t *testing.T) {
	out, err := execute(t, "--format", "json", "bench", "testdata/small.yaml",
		"--size", "500", "--ops", "200", "--load", "8", "--check")
	require.NoError(t, err)
	var resp struct {
		Status string      `json:"status"`
		Data   BenchReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	assert.Equal(t, "ok", resp.Status)
	assert.True(t, resp.Data.Checked)
	assert.Equal(t, resp.Data.Summary.Len, resp.Data.Len)
	assert.Greater(t, resp.Data.Summary.Segments, 1)
}

func TestBenchCommandBadProfile(t *testing.T) {
	_, err := execute(t, "bench", "testdata/typo.yaml")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))

	_, err = execute(t, "bench", "--load", "1", "--ratio", "-2")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}

func TestRunBenchesKeepsProfileOrder(t *testing.T) {
	small, err := LoadProfile("testdata/small.yaml")
	require.NoError(t, err)
	tiny := *small
	tiny.Name, tiny.Size, tiny.Ops = "tiny", 50, 100
	reports, err := RunBenches(context.Background(), []*Profile{small, &tiny}, 2, true)
	require.NoError(t, err)
	require.Len(t, reports, 2)
	assert.Equal(t, "small", reports[0].Profile)
	assert.Equal(t, "tiny", reports[1].Profile)
	assert.NotEqual(t, reports[0].RunID, reports[1].RunID)
	assert.Contains(t, reports.String(), "profile tiny")
}

func TestBenchCommandSeveralProfiles(t *testing.T) {
	out, err := execute(t, "--format", "json", "bench", "-j", "2", "--ops", "100",
		"testdata/small.yaml", "testdata/small.yaml")
	require.NoError(t, err)
	var resp struct {
		Status string        `json:"status"`
		Data   []BenchReport `json:"data"`
	}
	require.NoError(t, json.Unmarshal([]byte(out), &resp))
	require.Len(t, resp.Data, 2)
	assert.Equal(t, resp.Data[0].Len, resp.Data[1].Len, "equal seeds give equal lists")

	_, err = execute(t, "bench", "--jobs", "0")
	require.Error(t, err)
	assert.Equal(t, ExitCommandError, GetExitCode(err))
}
