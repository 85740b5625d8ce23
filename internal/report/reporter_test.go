package report

import (
	"bytes"
	"encoding/json"
	"testing"

	"github.com/rota-app/classcfg"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func plainReporter(t *testing.T, buf *bytes.Buffer, format Format) *Reporter {
	t.Helper()
	t.Setenv("FORCE_COLOR", "")
	r := NewReporter(buf, Options{Format: format})
	r.useColors = false
	return r
}

func TestParseFormat(t *testing.T) {
	assert.Equal(t, FormatJSON, ParseFormat("json"))
	assert.Equal(t, FormatText, ParseFormat("text"))
	assert.Equal(t, FormatText, ParseFormat(""))
	assert.Equal(t, FormatText, ParseFormat("yaml"))
}

func TestJSONNeverColored(t *testing.T) {
	r := NewReporter(&bytes.Buffer{}, Options{Format: FormatJSON, UseColors: true})
	assert.False(t, r.UseColors())
}

func TestTargetsText(t *testing.T) {
	var buf bytes.Buffer
	r := plainReporter(t, &buf, FormatText)

	targets := []string{"rota/templates/list.html", "templates/index.html"}
	stats := classcfg.ScanStats{Patterns: 3, FilesDiscovered: 3, FilesScanned: 2, FilesSkipped: 1}
	require.NoError(t, r.Targets(classcfg.Default(), targets, stats))

	out := buf.String()
	assert.Contains(t, out, "Scan targets\n")
	assert.Contains(t, out, "  rota/templates/list.html\n")
	assert.Contains(t, out, "  templates/index.html\n")
	assert.Contains(t, out, "2 files from 3 patterns (skipped 1 ignored)\n")
}

func TestTargetsJSON(t *testing.T) {
	var buf bytes.Buffer
	r := plainReporter(t, &buf, FormatJSON)

	stats := classcfg.ScanStats{Patterns: 3}
	require.NoError(t, r.Targets(classcfg.Default(), nil, stats))

	var got JSONTargets
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.Equal(t, "1.0", got.Version)
	assert.Equal(t, classcfg.Default().Content, got.Content)
	assert.Equal(t, []string{}, got.Targets)
	assert.Equal(t, 3, got.Stats.Patterns)
	assert.Contains(t, buf.String(), `"targets": []`)
}

func TestClassesText(t *testing.T) {
	var buf bytes.Buffer
	r := plainReporter(t, &buf, FormatText)
	r.verbose = true

	set := classcfg.ClassSet{
		Classes: []classcfg.ClassUsage{
			{Name: "flex", Count: 1, Files: []string{"templates/a.html"}},
			{Name: "p-4", Count: 3, Files: []string{"templates/a.html", "templates/b.html"}},
		},
		FilesScanned: 2,
		Warnings:     []string{"reading templates/c.html: permission denied"},
	}
	require.NoError(t, r.Classes(set))

	out := buf.String()
	assert.Contains(t, out, "  flex (1)\n")
	assert.Contains(t, out, "  p-4 (3)\n      templates/a.html\n      templates/b.html\n")
	assert.Contains(t, out, "• reading templates/c.html: permission denied\n")
	assert.Contains(t, out, "2 classes in 2 files\n")
}

func TestProblemsText(t *testing.T) {
	var buf bytes.Buffer
	r := plainReporter(t, &buf, FormatText)

	require.NoError(t, r.Problems(".classcfg.yaml", nil))
	assert.Equal(t, "ok .classcfg.yaml\n", buf.String())

	buf.Reset()
	problems := classcfg.Config{}.Validate()
	require.NoError(t, r.Problems(".classcfg.yaml", problems))
	assert.Contains(t, buf.String(), ".classcfg.yaml: content: "+classcfg.ProblemEmptyContent+"\n")
	assert.Contains(t, buf.String(), "1 problem\n")
}

func TestProblemsJSON(t *testing.T) {
	var buf bytes.Buffer
	r := plainReporter(t, &buf, FormatJSON)

	require.NoError(t, r.Problems("cfg.yaml", nil))

	var got JSONProblems
	require.NoError(t, json.Unmarshal(buf.Bytes(), &got))
	assert.True(t, got.Valid)
	assert.Equal(t, "cfg.yaml", got.Config)
	assert.Empty(t, got.Problems)
}

func TestPluralizeCount(t *testing.T) {
	assert.Equal(t, "1 file", pluralizeCount(1, "file", "files"))
	assert.Equal(t, "0 files", pluralizeCount(0, "file", "files"))
	assert.Equal(t, "2 classes", pluralizeCount(2, "class", "classes"))
}
