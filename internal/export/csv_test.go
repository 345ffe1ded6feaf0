package export

import (
	"bytes"
	"encoding/csv"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCSV(t *testing.T) {
	tests := []struct {
		name    string
		columns []string
		rows    [][]string
		want    string
	}{
		{
			name:    "header only",
			columns: []string{"ID", "Name", "Course"},
			want:    "ID,Name,Course\n",
		},
		{
			name:    "plain rows",
			columns: []string{"ID", "Name", "Course"},
			rows: [][]string{
				{"1", "Alice", "Mathematics"},
				{"2", "Bob", "Science"},
			},
			want: "ID,Name,Course\n1,Alice,Mathematics\n2,Bob,Science\n",
		},
		{
			name:    "field with comma is quoted",
			columns: []string{"ID", "Name"},
			rows:    [][]string{{"1", "Doe, Jane"}},
			want:    "ID,Name\n1,\"Doe, Jane\"\n",
		},
		{
			name:    "embedded quote is doubled",
			columns: []string{"ID", "Name"},
			rows:    [][]string{{"1", `Jan "JJ" Kowalski`}},
			want:    "ID,Name\n1,\"Jan \"\"JJ\"\" Kowalski\"\n",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := CSV(tt.columns, tt.rows)
			require.NoError(t, err)
			assert.Equal(t, tt.want, string(got))
		})
	}
}

func TestCSVRoundTrip(t *testing.T) {
	columns := []string{"ID", "Name", "Course"}
	rows := [][]string{
		{"1", "Doe, Jane", "Art"},
		{"2", "O'Neill\nJunior", `He said "hi"`},
	}

	data, err := CSV(columns, rows)
	require.NoError(t, err)

	parsed, err := csv.NewReader(bytes.NewReader(data)).ReadAll()
	require.NoError(t, err)
	require.Len(t, parsed, 3)
	assert.Equal(t, columns, parsed[0])
	assert.Equal(t, rows[0], parsed[1])
	assert.Equal(t, rows[1], parsed[2])
}
