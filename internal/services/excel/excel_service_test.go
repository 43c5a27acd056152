package excel

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func TestColumnToLetter(t *testing.T) {
	assert.Equal(t, "A", columnToLetter(1))
	assert.Equal(t, "B", columnToLetter(2))
	assert.Equal(t, "Z", columnToLetter(26))
	assert.Equal(t, "AA", columnToLetter(27))
	assert.Equal(t, "AZ", columnToLetter(52))
}

func TestHeaderIndex(t *testing.T) {
	t.Run("maps and normalizes headers", func(t *testing.T) {
		index, err := headerIndex([]string{" Username ", "PASSWORD", "full_name"}, []string{"username", "password"})
		require.NoError(t, err)
		assert.Equal(t, 0, index["username"])
		assert.Equal(t, 1, index["password"])
		assert.Equal(t, 2, index["full_name"])
	})

	t.Run("missing required column", func(t *testing.T) {
		_, err := headerIndex([]string{"username"}, []string{"username", "password"})
		require.Error(t, err)
		assert.Contains(t, err.Error(), "password")
	})
}

func TestCellAt(t *testing.T) {
	row := []string{"alice", " secret "}
	assert.Equal(t, "alice", cellAt(row, 0))
	assert.Equal(t, "secret", cellAt(row, 1))
	assert.Equal(t, "", cellAt(row, 2))
	assert.Equal(t, "", cellAt(row, -1))
}

func TestReadRows(t *testing.T) {
	svc := &Service{}

	t.Run("csv", func(t *testing.T) {
		input := "code,name\nSE,Software Engineering\nIS,Information Systems\n"
		rows, err := svc.readRows(strings.NewReader(input), "majors.csv")
		require.NoError(t, err)
		require.Len(t, rows, 3)
		assert.Equal(t, []string{"code", "name"}, rows[0])
		assert.Equal(t, []string{"SE", "Software Engineering"}, rows[1])
	})

	t.Run("csv with ragged rows", func(t *testing.T) {
		input := "code,name,description\nSE,Software Engineering\n"
		rows, err := svc.readRows(strings.NewReader(input), "majors.csv")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Len(t, rows[1], 2)
	})

	t.Run("xlsx", func(t *testing.T) {
		f := excelize.NewFile()
		sheet := f.GetSheetName(0)
		require.NoError(t, f.SetCellValue(sheet, "A1", "code"))
		require.NoError(t, f.SetCellValue(sheet, "B1", "name"))
		require.NoError(t, f.SetCellValue(sheet, "A2", "SE"))
		require.NoError(t, f.SetCellValue(sheet, "B2", "Software Engineering"))

		var buf bytes.Buffer
		require.NoError(t, f.Write(&buf))

		rows, err := svc.readRows(&buf, "majors.xlsx")
		require.NoError(t, err)
		require.Len(t, rows, 2)
		assert.Equal(t, "SE", rows[1][0])
	})

	t.Run("unsupported extension", func(t *testing.T) {
		_, err := svc.readRows(strings.NewReader("x"), "majors.txt")
		assert.Error(t, err)
	})
}
