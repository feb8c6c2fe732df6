package tabular

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/rcet-nz/rteqc-api/services"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFile(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "catalog.csv")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoad(t *testing.T) {
	t.Run("spec scenario", func(t *testing.T) {
		path := writeFile(t, "id,time,magnitude\n1,2014-01-01T00:00:00,5.2\n")

		table, err := Load(path, 1)
		require.NoError(t, err)

		require.Equal(t, []Column{
			{Name: "id", Type: TypeNumber},
			{Name: "time", Type: TypeDatetime},
			{Name: "magnitude", Type: TypeNumber},
		}, table.Columns)

		require.Equal(t, 1, table.NumRows())
		assert.Equal(t, float64(1), table.Rows[0][0])
		assert.Equal(t, time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC), table.Rows[0][1])
		assert.Equal(t, 5.2, table.Rows[0][2])
	})

	t.Run("mixed column stays string", func(t *testing.T) {
		path := writeFile(t, "station,time,phase\nWEL,2014-01-01 12:30:00,P\nKHZ,2014-01-02 01:02:03,1\n")

		table, err := Load(path, 1)
		require.NoError(t, err)

		assert.Equal(t, TypeString, table.Columns[0].Type)
		assert.Equal(t, TypeDatetime, table.Columns[1].Type)
		// one cell is numeric but the other is not, so the column is string
		assert.Equal(t, TypeString, table.Columns[2].Type)
		assert.Equal(t, "1", table.Rows[1][2])
	})

	t.Run("empty cells in numeric column become nil", func(t *testing.T) {
		path := writeFile(t, "id,time,depth\n1,2014-01-01T00:00:00,12.5\n2,2014-01-02T00:00:00,\n")

		table, err := Load(path, 1)
		require.NoError(t, err)

		assert.Equal(t, TypeNumber, table.Columns[2].Type)
		assert.Equal(t, 12.5, table.Rows[0][2])
		assert.Nil(t, table.Rows[1][2])
	})

	t.Run("header only gives zero rows", func(t *testing.T) {
		path := writeFile(t, "id,time,magnitude\n")

		table, err := Load(path, 1)
		require.NoError(t, err)
		assert.Equal(t, 0, table.NumRows())
		assert.Equal(t, []string{"id", "time", "magnitude"}, table.ColumnNames())
	})

	t.Run("timestamp column out of range is ignored", func(t *testing.T) {
		path := writeFile(t, "id\n1\n")

		table, err := Load(path, 1)
		require.NoError(t, err)
		assert.Equal(t, TypeNumber, table.Columns[0].Type)
	})

	t.Run("missing file", func(t *testing.T) {
		_, err := Load(filepath.Join(t.TempDir(), "nope.csv"), 1)
		require.Error(t, err)
		assert.True(t, services.IsNotFoundError(err))
	})

	t.Run("ragged rows fail to parse", func(t *testing.T) {
		path := writeFile(t, "id,time\n1,2014-01-01T00:00:00,extra\n")

		_, err := Load(path, 1)
		require.Error(t, err)
		assert.True(t, services.IsParseError(err))
	})

	t.Run("bad timestamp fails to parse", func(t *testing.T) {
		path := writeFile(t, "id,time\n1,not-a-date\n")

		_, err := Load(path, 1)
		require.Error(t, err)
		assert.True(t, services.IsParseError(err))
	})

	t.Run("empty file has no header", func(t *testing.T) {
		path := writeFile(t, "")

		_, err := Load(path, 1)
		require.Error(t, err)
		assert.True(t, services.IsParseError(err))
	})
}

func TestParseTimestamp(t *testing.T) {
	tests := []struct {
		in   string
		want time.Time
	}{
		{"2014-01-01T00:00:00", time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2014-01-01T12:30:45.5", time.Date(2014, 1, 1, 12, 30, 45, 500000000, time.UTC)},
		{"2014-01-01 12:30:45", time.Date(2014, 1, 1, 12, 30, 45, 0, time.UTC)},
		{"2014-01-01", time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
		{"2014-01-01T00:00:00Z", time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)},
	}

	for _, tt := range tests {
		t.Run(tt.in, func(t *testing.T) {
			got, err := ParseTimestamp(tt.in)
			require.NoError(t, err)
			assert.True(t, tt.want.Equal(got), "got %v", got)
		})
	}

	_, err := ParseTimestamp("yesterday")
	assert.Error(t, err)
}

func TestFormatTimestamp(t *testing.T) {
	assert.Equal(t, "2014-01-01T00:00:00",
		FormatTimestamp(time.Date(2014, 1, 1, 0, 0, 0, 0, time.UTC)))
	assert.Equal(t, "2014-01-01T12:30:45.500",
		FormatTimestamp(time.Date(2014, 1, 1, 12, 30, 45, 500000000, time.UTC)))
}
