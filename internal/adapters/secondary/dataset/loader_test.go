package dataset

import (
	"context"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"scattering-report/internal/core/domain"
)

func writeTemp(t *testing.T, name, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), name)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o644))
	return path
}

func TestLoader_ReadCSV(t *testing.T) {
	loader := NewLoader()

	table, err := loader.Read(context.Background(), "testdata/misell_burdett.csv")
	require.NoError(t, err)
	require.Len(t, table, 6)

	// The published 100 kV row parses with its voltage intact; the 5 mrad
	// cross section stays in m²/mg until the transform stage.
	last := table[5]
	assert.Equal(t, 100.0, last.VoltageKV)
	assert.InDelta(t, 1.991047e-3, last.Sp5, 1e-9)
	assert.Greater(t, last.Sp5, last.Sp10)
	assert.Greater(t, last.Sp10, last.Sp15)
}

func TestLoader_VoltagesAscending(t *testing.T) {
	loader := NewLoader()

	table, err := loader.Read(context.Background(), "testdata/misell_burdett.csv")
	require.NoError(t, err)
	for i := 1; i < len(table); i++ {
		assert.Greater(t, table[i].VoltageKV, table[i-1].VoltageKV)
	}
}

func TestLoader_MissingFile(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Read(context.Background(), "testdata/nope.csv")
	assert.ErrorIs(t, err, domain.ErrDatasetNotFound)
}

func TestLoader_UnsupportedExtension(t *testing.T) {
	loader := NewLoader()

	_, err := loader.Read(context.Background(), "testdata/misell_burdett.json")
	assert.ErrorIs(t, err, domain.ErrUnsupportedFormat)
}

func TestLoader_WrongColumnCount(t *testing.T) {
	loader := NewLoader()
	path := writeTemp(t, "short.csv", "voltage_kV,sp_5mrad,sp_10mrad,sp_15mrad\n100,1.99e-3,1.04e-3\n")

	_, err := loader.Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrWrongColumnCount)
}

func TestLoader_NonNumericCell(t *testing.T) {
	loader := NewLoader()
	path := writeTemp(t, "bad.csv", "voltage_kV,sp_5mrad,sp_10mrad,sp_15mrad\n100,oops,1.04e-3,4.71e-4\n")

	_, err := loader.Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrNonNumericCell)
}

func TestLoader_HeaderOnly(t *testing.T) {
	loader := NewLoader()
	path := writeTemp(t, "empty.csv", "voltage_kV,sp_5mrad,sp_10mrad,sp_15mrad\n")

	_, err := loader.Read(context.Background(), path)
	assert.ErrorIs(t, err, domain.ErrEmptyDataset)
}
