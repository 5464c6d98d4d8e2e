// Package backup grava em disco uma cópia de cada relatório gerado
package backup

import (
	"fmt"
	"os"
	"path/filepath"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/vfg2006/store-indicators-api/internal/domain"
)

type FileWriter struct {
	baseDir string
}

func NewFileWriter(baseDir string) *FileWriter {
	return &FileWriter{baseDir: baseDir}
}

// WriteStoreReport grava o relatório da loja em
// <base>/<loja>/<data>_<loja>.html e retorna o caminho gravado
func (w *FileWriter) WriteStoreReport(snapshot *domain.StoreSnapshot, htmlBody string) (string, error) {
	storeDir := filepath.Join(w.baseDir, snapshot.StoreName)

	if err := os.MkdirAll(storeDir, 0o755); err != nil {
		return "", errors.Wrapf(err, "erro ao criar diretório de backup %s", storeDir)
	}

	fileName := fmt.Sprintf(
		"%s_%s.html",
		snapshot.ReferenceDate.Format(time.DateOnly),
		snapshot.StoreName,
	)
	filePath := filepath.Join(storeDir, fileName)

	if err := os.WriteFile(filePath, []byte(htmlBody), 0o644); err != nil {
		return "", errors.Wrapf(err, "erro ao gravar backup do relatório em %s", filePath)
	}

	logrus.WithFields(logrus.Fields{
		"store": snapshot.StoreName,
		"file":  filePath,
	}).Debug("Backup do relatório gravado")

	return filePath, nil
}
