package repository

import (
	"github.com/diillson/cpm-dashboard-go/internal/domain/entity"
)

// ExportRepository writes a computed dashboard to report files and returns the absolute path written.
type ExportRepository interface {
	ExportToCSV(data entity.Dashboard, filename, outputDir string) (string, error)
	ExportToJSON(data entity.Dashboard, filename, outputDir string) (string, error)
	ExportToPDF(data entity.Dashboard, filename, outputDir string) (string, error)
	ExportToHTML(data entity.Dashboard, filename, outputDir string) (string, error)
}
