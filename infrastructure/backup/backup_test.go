package backup

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

func TestWriteStoreReport(t *testing.T) {
	baseDir := t.TempDir()
	writer := NewFileWriter(baseDir)

	snapshot := &domain.StoreSnapshot{
		StoreID:       1,
		StoreName:     "Loja Centro",
		ReferenceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	path, err := writer.WriteStoreReport(snapshot, "<html>relatório</html>")

	assert.NoError(t, err)
	assert.Equal(t, filepath.Join(baseDir, "Loja Centro", "2024-01-15_Loja Centro.html"), path)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "<html>relatório</html>", string(content))
}

func TestWriteStoreReportOverwritesSameDay(t *testing.T) {
	baseDir := t.TempDir()
	writer := NewFileWriter(baseDir)

	snapshot := &domain.StoreSnapshot{
		StoreID:       1,
		StoreName:     "Loja Centro",
		ReferenceDate: time.Date(2024, 1, 15, 0, 0, 0, 0, time.UTC),
	}

	_, err := writer.WriteStoreReport(snapshot, "primeira versão")
	require.NoError(t, err)

	path, err := writer.WriteStoreReport(snapshot, "segunda versão")
	require.NoError(t, err)

	content, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, "segunda versão", string(content))
}
