package main

import (
	"bytes"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"fieldbind/internal/bindings"
)

const completeManifest = `version: "1"
bindings:
  - record: movies.Filter
    target: "*movies.Clause"
    handlers:
      - field: DirectorEq
        func: DirectorClause
        optional: true
      - field: RatingGte
        func: RatingClause
        optional: true
      - field: ReleaseYear
        func: YearClause
        optional: true
      - field: TitleLike
        func: TitleClause
        optional: true
`

func writeManifest(t *testing.T, content string) string {
	t.Helper()

	path := filepath.Join(t.TempDir(), "bindings.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))

	return path
}

func execute(t *testing.T, args ...string) (string, string, error) {
	t.Helper()

	cmd := newRootCmd()

	var out, errOut bytes.Buffer
	cmd.SetOut(&out)
	cmd.SetErr(&errOut)
	cmd.SetArgs(args)

	err := cmd.Execute()

	return out.String(), errOut.String(), err
}

func TestVersionCmd(t *testing.T) {
	out, _, err := execute(t, "version")

	require.NoError(t, err)
	assert.Contains(t, out, "fieldbind")
}

func TestFieldsCmd(t *testing.T) {
	out, _, err := execute(t, "fields", "movies.Filter", "-p", "fieldbind/movies")

	require.NoError(t, err)
	assert.Contains(t, out, "fieldbind/movies.Filter")
	assert.Contains(t, out, "DirectorEq")
	assert.Contains(t, out, "*string")
	assert.Contains(t, out, "optional")
}

func TestFieldsCmd_AllRecords(t *testing.T) {
	out, _, err := execute(t, "fields", "-p", "fieldbind/movies")

	require.NoError(t, err)
	assert.Contains(t, out, "fieldbind/movies.Filter")
	assert.Contains(t, out, "fieldbind/movies.Movie")
}

func TestFieldsCmd_NotARecord(t *testing.T) {
	_, _, err := execute(t, "fields", "rentals.Tags", "-p", "fieldbind/rentals")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "not a record type")
}

func TestInitCmd_ScaffoldPassesCheck(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")

	out, _, err := execute(t, "init", "movies.Filter", "-p", "fieldbind/movies", "-b", path)

	require.NoError(t, err)
	assert.Contains(t, out, "4 fields to cover")

	m, err := bindings.LoadFile(path)
	require.NoError(t, err)
	require.Len(t, m.Bindings, 1)
	assert.Equal(t, "fieldbind/movies.Filter", m.Bindings[0].Record)
	assert.Equal(t,
		bindings.FieldList{"DirectorEq", "RatingGte", "ReleaseYear", "TitleLike"},
		m.Bindings[0].Ignore)

	out, _, err = execute(t, "check", "-p", "fieldbind/movies", "-b", path)
	require.NoError(t, err)
	assert.Contains(t, out, "ok: all record bindings complete")
}

func TestInitCmd_RefusesOverwrite(t *testing.T) {
	path := writeManifest(t, completeManifest)

	_, _, err := execute(t, "init", "movies.Filter", "-p", "fieldbind/movies", "-b", path)

	require.Error(t, err)
	assert.Contains(t, err.Error(), "already exists")
}

func TestCheckCmd_Complete(t *testing.T) {
	path := writeManifest(t, completeManifest)

	out, _, err := execute(t, "check", "-p", "fieldbind/movies", "-b", path)

	require.NoError(t, err)
	assert.Contains(t, out, "ok: all record bindings complete")
}

func TestCheckCmd_MissingHandlers(t *testing.T) {
	path := writeManifest(t, `version: "1"
bindings:
  - record: movies.Filter
    target: "*movies.Clause"
    handlers:
      - field: DirectorEq
        func: DirectorClause
        optional: true
`)

	_, errOut, err := execute(t, "check", "-p", "fieldbind/movies", "-b", path)

	require.Error(t, err)
	assert.Contains(t, errOut, "missing field handlers")
	assert.Contains(t, errOut, "RatingGte")
	assert.Contains(t, errOut, "TitleLike")
}

func TestCheckCmd_MissingManifest(t *testing.T) {
	_, _, err := execute(t, "check", "-p", "fieldbind/movies", "-b", "no-such-file.yaml")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "no-such-file.yaml")
}

func TestGenCmd_WritesFiles(t *testing.T) {
	path := writeManifest(t, completeManifest)
	outDir := filepath.Join(t.TempDir(), "generated")

	out, _, err := execute(t, "gen", "-p", "fieldbind/movies", "-b", path, "-o", outDir)

	require.NoError(t, err)
	assert.Contains(t, out, "movies_filter_evaluator.go")

	b, err := os.ReadFile(filepath.Join(outDir, "movies_filter_evaluator.go"))
	require.NoError(t, err)
	assert.Contains(t, string(b), "func NewFilterEvaluator()")
}

func TestGenCmd_RefusesIncompleteManifest(t *testing.T) {
	path := writeManifest(t, `version: "1"
bindings:
  - record: movies.Filter
    target: "*movies.Clause"
    ignore: [DirectorEq, RatingGte]
`)
	outDir := filepath.Join(t.TempDir(), "generated")

	_, errOut, err := execute(t, "gen", "-p", "fieldbind/movies", "-b", path, "-o", outDir)

	require.Error(t, err)
	assert.Contains(t, errOut, "missing field handlers")

	_, statErr := os.Stat(outDir)
	assert.True(t, os.IsNotExist(statErr))
}
