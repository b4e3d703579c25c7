package source

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"calsdt/domain/core"
	"calsdt/internal/errors"

	"github.com/jmoiron/sqlx"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/xuri/excelize/v2"
)

func writeFile(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

func TestTextSource(t *testing.T) {
	path := writeFile(t, "sodienthoai.txt", "0123456789\r\n\n0912.345.678  note\n")

	lines, err := NewTextSource(path).ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0123456789", "", "0912.345.678  note"}, lines)
}

func TestTextSourceMissingFile(t *testing.T) {
	_, err := NewTextSource(filepath.Join(t.TempDir(), "nope.txt")).ReadLines(context.Background())
	require.Error(t, err)
	assert.Equal(t, errors.CodeSourceError, errors.GetCode(err))
}

func TestTableSourceCSV(t *testing.T) {
	path := writeFile(t, "list.csv", "name,phone\nAn,0123456789\nBinh,0912345678\nChi,\n")

	t.Run("named column", func(t *testing.T) {
		src, err := NewTableSource(path, TableOptions{Column: "Phone"})
		require.NoError(t, err)
		lines, err := src.ReadLines(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"0123456789", "0912345678", ""}, lines)
	})

	t.Run("detected column", func(t *testing.T) {
		src, err := NewTableSource(path, TableOptions{Header: true})
		require.NoError(t, err)
		lines, err := src.ReadLines(context.Background())
		require.NoError(t, err)
		assert.Equal(t, []string{"0123456789", "0912345678", ""}, lines)
	})

	t.Run("unknown column", func(t *testing.T) {
		src, err := NewTableSource(path, TableOptions{Column: "mobile"})
		require.NoError(t, err)
		_, err = src.ReadLines(context.Background())
		assert.Equal(t, errors.CodeSourceError, errors.GetCode(err))
	})
}

func TestTableSourceXLSX(t *testing.T) {
	path := filepath.Join(t.TempDir(), "list.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"id", "so dien thoai"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{1, "0123456789"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{2, "0987654321"}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src, err := NewTableSource(path, TableOptions{Column: "so dien thoai"})
	require.NoError(t, err)
	lines, err := src.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0123456789", "0987654321"}, lines)
}

func TestTableSourceXLSXNumericCells(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numeric.xlsx")
	f := excelize.NewFile()
	require.NoError(t, f.SetSheetRow("Sheet1", "A1", &[]interface{}{"phone"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A2", &[]interface{}{912345678}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A3", &[]interface{}{"0987654321"}))
	require.NoError(t, f.SetSheetRow("Sheet1", "A4", &[]interface{}{12345}))
	require.NoError(t, f.SaveAs(path))
	require.NoError(t, f.Close())

	src, err := NewTableSource(path, TableOptions{Column: "phone"})
	require.NoError(t, err)
	lines, err := src.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0912345678", "0987654321", "12345"}, lines)
}

func TestDetectNumberColumn(t *testing.T) {
	rows := [][]string{
		{"1", "x", "0123456789"},
		{"2", "0987654321", "0912345678"},
		{"3"},
	}
	assert.Equal(t, 2, DetectNumberColumn(rows))
	assert.Equal(t, 0, DetectNumberColumn(nil))
}

func TestNewTableSourceUnsupported(t *testing.T) {
	_, err := NewTableSource("numbers.ods", TableOptions{})
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}

func TestSQLSource(t *testing.T) {
	path := filepath.Join(t.TempDir(), "numbers.db")
	db, err := sqlx.Open("sqlite3", path)
	require.NoError(t, err)
	db.MustExec(`CREATE TABLE candidates (id INTEGER PRIMARY KEY, phone TEXT)`)
	db.MustExec(`INSERT INTO candidates (id, phone) VALUES (2, '0987654321'), (1, '0123456789'), (3, NULL)`)
	require.NoError(t, db.Close())

	src, err := Open("sqlite://" + path + "?table=candidates&column=phone&order=id")
	require.NoError(t, err)
	defer src.(*SQLSource).Close()

	assert.Equal(t, "sqlite3:candidates.phone", src.Name())
	lines, err := src.ReadLines(context.Background())
	require.NoError(t, err)
	assert.Equal(t, []string{"0123456789", "0987654321", ""}, lines)
}

func TestSQLSourceRejectsBadIdentifiers(t *testing.T) {
	db, err := sqlx.Open("sqlite3", filepath.Join(t.TempDir(), "x.db"))
	require.NoError(t, err)
	defer db.Close()

	for _, opts := range []SQLOptions{
		{Table: "t; DROP TABLE t", Column: "phone"},
		{Table: "t", Column: ""},
		{Table: "t", Column: "phone", OrderBy: "id desc"},
	} {
		_, err := NewSQLSource(db, opts)
		assert.Equal(t, errors.CodeInvalidInput, errors.GetCode(err), opts)
	}
}

func TestOpen(t *testing.T) {
	src, err := Open("sodienthoai.txt")
	require.NoError(t, err)
	assert.IsType(t, &TextSource{}, src)

	src, err = Open("numbers.xlsx#Phone")
	require.NoError(t, err)
	assert.IsType(t, &TableSource{}, src)
	assert.Equal(t, "Phone", src.(*TableSource).opts.Column)

	_, err = Open("numbers.pdf")
	assert.ErrorIs(t, err, core.ErrUnsupportedFormat)
}
