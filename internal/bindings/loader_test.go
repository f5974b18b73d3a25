package bindings

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParse(t *testing.T) {
	yaml := `
version: "1"
bindings:
  - record: movies.Filter
    target: "*movies.Clause"
    output:
      package: evaluators
      constructor: NewFilterEvaluator
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
  - record: rentals.Rental
    target: string
    handlers:
      - field: DueBack
        func: rentals.DueClause
        optional: true
    ignore:
      - Period
      - ID
      - MemberID
      - Tags
`

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.NotNil(t, m)

	assert.Equal(t, "1", m.Version)
	require.Len(t, m.Bindings, 2)

	filter := m.Bindings[0]
	assert.Equal(t, "movies.Filter", filter.Record)
	assert.Equal(t, "*movies.Clause", filter.Target)
	assert.Equal(t, "evaluators", filter.Output.Package)
	assert.Equal(t, "NewFilterEvaluator", filter.Output.Constructor)
	require.Len(t, filter.Handlers, 4)
	assert.Equal(t, "DirectorEq", filter.Handlers[0].Field)
	assert.Equal(t, "DirectorClause", filter.Handlers[0].Func)
	assert.True(t, filter.Handlers[0].Optional)
	assert.Empty(t, filter.Ignore)

	rental := m.Bindings[1]
	assert.Equal(t, "rentals.Rental", rental.Record)
	assert.Equal(t, "string", rental.Target)
	assert.Empty(t, rental.Output.Package)
	require.Len(t, rental.Handlers, 1)
	assert.Equal(t, "rentals.DueClause", rental.Handlers[0].Func)
	assert.Equal(t, FieldList{"Period", "ID", "MemberID", "Tags"}, rental.Ignore)
}

func TestParseScalarIgnore(t *testing.T) {
	yaml := `
bindings:
  - record: rentals.Rental
    target: string
    ignore: ID
`

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)
	require.Len(t, m.Bindings, 1)

	assert.Equal(t, FieldList{"ID"}, m.Bindings[0].Ignore)
	assert.False(t, m.Bindings[0].Ignore.IsEmpty())
}

func TestParseIgnoreRejectsMapping(t *testing.T) {
	yaml := `
bindings:
  - record: rentals.Rental
    target: string
    ignore: {ID: yes}
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "expected field name or array of field names")
}

func TestParseMinimal(t *testing.T) {
	yaml := `
bindings:
  - record: A
    target: string
`

	m, err := Parse([]byte(yaml))
	require.NoError(t, err)

	assert.Equal(t, "1", m.Version) // Default version
	require.Len(t, m.Bindings, 1)
	assert.Equal(t, "A", m.Bindings[0].Record)
	assert.Nil(t, m.Bindings[0].Handlers)
}

func TestParseUnsupportedVersion(t *testing.T) {
	yaml := `
version: "2"
bindings: []
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unsupported bindings version")
}

func TestParseUnknownKeys(t *testing.T) {
	yaml := `
version: "1"
bindings:
  - record: movies.Filter
    target: string
    handelrs:
      - field: DirectorEq
        func: DirectorClause
`

	_, err := Parse([]byte(yaml))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "failed to parse bindings YAML")
}

func TestParseInvalidYAML(t *testing.T) {
	_, err := Parse([]byte("bindings: [{{"))
	assert.Error(t, err)
}

func TestLoadFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "bindings.yaml")
	content := `
version: "1"
bindings:
  - record: movies.Filter
    target: "*movies.Clause"
`

	require.NoError(t, os.WriteFile(path, []byte(content), 0644))

	m, err := LoadFile(path)
	require.NoError(t, err)
	require.Len(t, m.Bindings, 1)
	assert.Equal(t, "movies.Filter", m.Bindings[0].Record)

	_, err = LoadFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}

func TestWriteFileRoundTrip(t *testing.T) {
	m := &Manifest{
		Version: "1",
		Bindings: []RecordBinding{
			{
				Record: "movies.Filter",
				Target: "*movies.Clause",
				Handlers: []HandlerSpec{
					{Field: "DirectorEq", Func: "DirectorClause", Optional: true},
				},
				Ignore: []string{"RatingGte"},
			},
			{
				Record: "rentals.Rental",
				Target: "string",
				Ignore: []string{"ID", "MemberID", "Period", "Tags", "DueBack"},
			},
		},
	}

	path := filepath.Join(t.TempDir(), "out.yaml")
	require.NoError(t, WriteFile(m, path))

	// A lone ignored field is written back in scalar form.
	data, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Contains(t, string(data), "ignore: RatingGte")

	back, err := LoadFile(path)
	require.NoError(t, err)
	assert.Equal(t, m, back)
}

func TestRecordName(t *testing.T) {
	tests := []struct {
		record string
		want   string
	}{
		{record: "movies.Filter", want: "Filter"},
		{record: "fieldbind/movies.Filter", want: "Filter"},
		{record: "Filter", want: "Filter"},
	}

	for _, tt := range tests {
		b := RecordBinding{Record: tt.record}
		assert.Equal(t, tt.want, b.RecordName())
	}
}
