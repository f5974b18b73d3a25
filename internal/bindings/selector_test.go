package bindings

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseSelector(t *testing.T) {
	for _, s := range []string{"ID", "DirectorEq", "_hidden", "Field2", "Ünïcode"} {
		name, err := ParseSelector(s)
		require.NoError(t, err, "selector %q", s)
		assert.Equal(t, s, name)
	}
}

func TestParseSelectorRejects(t *testing.T) {
	tests := []struct {
		selector string
		wantErr  string
	}{
		{selector: "", wantErr: "empty field selector"},
		{selector: "Owner.Name", wantErr: "not a path"},
		{selector: "Items[]", wantErr: "not an element"},
		{selector: "Items[0]", wantErr: "not an element"},
		{selector: "Title Like", wantErr: "not a valid field name"},
		{selector: "1st", wantErr: "not a valid field name"},
		{selector: "Title-Like", wantErr: "not a valid field name"},
	}

	for _, tt := range tests {
		t.Run(tt.selector, func(t *testing.T) {
			_, err := ParseSelector(tt.selector)
			require.Error(t, err)
			assert.Contains(t, err.Error(), tt.wantErr)
		})
	}
}
