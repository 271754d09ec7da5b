package service

import (
	"encoding/csv"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"time"

	"sales-crm-backend/internal/database/models"
	apperrors "sales-crm-backend/internal/errors"
	"sales-crm-backend/internal/logger"
	"sales-crm-backend/internal/repository"

	"github.com/xuri/excelize/v2"
)

// ExportFormat selects the output encoding of the export pipeline
type ExportFormat string

const (
	ExportFormatCSV  ExportFormat = "csv"
	ExportFormatXLSX ExportFormat = "xlsx"
)

// IsValid checks if the ExportFormat is valid
func (f ExportFormat) IsValid() bool {
	return f == ExportFormatCSV || f == ExportFormatXLSX
}

// Ext returns the file extension for the format
func (f ExportFormat) Ext() string {
	return string(f)
}

// exportColumns is the fixed column order of every export artifact
var exportColumns = []string{
	"Company Name",
	"Contact Name",
	"Contact Email",
	"Contact Phone",
	"Status",
	"Product Interest",
	"Estimated Value",
	"Enquiry Date",
	"Next Follow-up",
	"Notes",
	"Owner",
}

// missingValue is rendered instead of empty optional fields for readability
const missingValue = "-"

// exportFetchLimit bounds a single export; far above realistic volumes
const exportFetchLimit = 100000

// ExportResult describes a produced export artifact
type ExportResult struct {
	Path     string       `json:"path"`
	Filename string       `json:"filename"`
	Format   ExportFormat `json:"format"`
	RowCount int          `json:"row_count"`
	Shared   bool         `json:"shared"`
}

// ExportService transforms filtered enquiries into downloadable tabular artifacts
type ExportService struct {
	enquiryRepo repository.EnquiryRepositoryInterface
	sharer      Sharer
	exportDir   string
	log         *logger.Logger
}

// NewExportService creates a new export service. The sharer may be nil;
// sharing is best-effort and its absence is not an error.
func NewExportService(enquiryRepo repository.EnquiryRepositoryInterface, sharer Sharer, exportDir string) *ExportService {
	return &ExportService{
		enquiryRepo: enquiryRepo,
		sharer:      sharer,
		exportDir:   exportDir,
		log:         logger.WithComponent("export"),
	}
}

// Export produces an artifact with one row per enquiry matching the filter.
// An empty filename defaults to enquiries_<ISO-date>.<ext>. Any write failure
// propagates; no partial file is reported as success.
func (s *ExportService) Export(filter repository.EnquiryFilter, format ExportFormat, filename string) (*ExportResult, error) {
	if !format.IsValid() {
		return nil, apperrors.ErrInvalidExportFormat
	}
	if s.exportDir == "" {
		return nil, apperrors.ErrExportDirUnset
	}

	enquiries, _, err := s.enquiryRepo.ListFiltered(filter, exportFetchLimit, 0)
	if err != nil {
		return nil, fmt.Errorf("failed to fetch enquiries for export: %w", err)
	}

	rows := make([][]string, 0, len(enquiries))
	for i := range enquiries {
		rows = append(rows, ProjectExportRow(&enquiries[i]))
	}

	if filename == "" {
		filename = fmt.Sprintf("enquiries_%s.%s", time.Now().UTC().Format("2006-01-02"), format.Ext())
	}

	if err := os.MkdirAll(s.exportDir, 0o755); err != nil {
		return nil, fmt.Errorf("failed to create export directory: %w", err)
	}
	path := filepath.Join(s.exportDir, filename)

	switch format {
	case ExportFormatCSV:
		err = writeCSV(path, rows)
	case ExportFormatXLSX:
		err = writeXLSX(path, rows)
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write export file: %w", err)
	}

	result := &ExportResult{
		Path:     path,
		Filename: filename,
		Format:   format,
		RowCount: len(rows),
	}

	// Sharing is best-effort: no sharer means no-op, a failing sharer is
	// logged, and neither invalidates the artifact already on disk.
	if s.sharer != nil {
		if err := s.sharer.Share(path); err != nil {
			s.log.WithError(err).WithField("path", path).Warn("failed to share export artifact")
		} else {
			result.Shared = true
		}
	}

	s.log.WithFields(map[string]interface{}{
		"path":   path,
		"rows":   len(rows),
		"format": format,
	}).Info("export produced")
	return result, nil
}

// ProjectExportRow flattens an enquiry with its preloaded relations into the
// fixed 11-column export row. Missing optional values render as "-"; a
// missing company or contact never crashes the projection.
func ProjectExportRow(enquiry *models.Enquiry) []string {
	contactName, contactEmail, contactPhone := "", "", ""
	if enquiry.Contact != nil {
		contactName = enquiry.Contact.FullName()
		contactEmail = enquiry.Contact.Email
		contactPhone = enquiry.Contact.Phone
	}

	estimatedValue := ""
	if enquiry.EstimatedValue != nil {
		estimatedValue = strconv.FormatFloat(*enquiry.EstimatedValue, 'f', 2, 64)
	}

	followUp := ""
	if enquiry.FollowUpDate != nil {
		followUp = enquiry.FollowUpDate.Format("2006-01-02")
	}

	return []string{
		orDash(enquiry.Company.Name),
		orDash(contactName),
		orDash(contactEmail),
		orDash(contactPhone),
		string(enquiry.Status),
		orDash(enquiry.ProductInterest),
		orDash(estimatedValue),
		enquiry.EnquiryDate.Format("2006-01-02"),
		orDash(followUp),
		orDash(enquiry.Notes),
		orDash(enquiry.Owner),
	}
}

func orDash(value string) string {
	if value == "" {
		return missingValue
	}
	return value
}

func writeCSV(path string, rows [][]string) error {
	file, err := os.Create(path)
	if err != nil {
		return err
	}
	defer file.Close()

	writer := csv.NewWriter(file)
	if err := writer.Write(exportColumns); err != nil {
		return err
	}
	for _, row := range rows {
		if err := writer.Write(row); err != nil {
			return err
		}
	}
	writer.Flush()
	if err := writer.Error(); err != nil {
		return err
	}
	return file.Close()
}

func writeXLSX(path string, rows [][]string) error {
	workbook := excelize.NewFile()
	defer workbook.Close()

	const sheet = "Enquiries"
	index, err := workbook.NewSheet(sheet)
	if err != nil {
		return err
	}
	workbook.SetActiveSheet(index)
	if err := workbook.DeleteSheet("Sheet1"); err != nil {
		return err
	}

	header := make([]interface{}, len(exportColumns))
	for i, col := range exportColumns {
		header[i] = col
	}
	if err := workbook.SetSheetRow(sheet, "A1", &header); err != nil {
		return err
	}

	for i, row := range rows {
		cells := make([]interface{}, len(row))
		for j, value := range row {
			cells[j] = value
		}
		cell, err := excelize.CoordinatesToCellName(1, i+2)
		if err != nil {
			return err
		}
		if err := workbook.SetSheetRow(sheet, cell, &cells); err != nil {
			return err
		}
	}

	return workbook.SaveAs(path)
}
