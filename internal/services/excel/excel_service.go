package excel

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/onegreenvn/outreach-dashboard/internal/models"
	"github.com/sirupsen/logrus"
	"github.com/xuri/excelize/v2"
)

// ProfileColumns are the workbook headers, in the order the scraper reports them
var ProfileColumns = []string{
	"Profile URL", "About",
	"Phone", "Email", "Website", "Address", "Birthday", "Twitter",
}

// ErrExportNotFound is returned when a requested export does not exist
var ErrExportNotFound = errors.New("export not found")

const sheetName = "Profiles"

// Service writes scraped profiles to Excel workbooks
type Service struct {
	exportsDir string
	now        func() time.Time
}

// NewExcelService creates a new Excel service instance
func NewExcelService(exportsDir string) *Service {
	// Create exports directory if it doesn't exist
	if err := os.MkdirAll(exportsDir, 0755); err != nil {
		logrus.Errorf("Failed to create exports directory %s: %v", exportsDir, err)
	}

	return &Service{
		exportsDir: exportsDir,
		now:        time.Now,
	}
}

// ExportResult contains the result of an export operation
type ExportResult struct {
	Success  bool
	Message  string
	Filename string
}

// ExportProfiles writes one row per scraped profile
func (s *Service) ExportProfiles(profiles []models.ScrapedProfile) (*ExportResult, error) {
	filename := fmt.Sprintf("scraped_profiles_%s_%d.xlsx", uuid.New().String()[:8], s.now().Unix())
	filePath := filepath.Join(s.exportsDir, filename)

	if err := os.MkdirAll(s.exportsDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create exports directory: %w", err)
	}

	f := excelize.NewFile()
	defer f.Close()

	// Gray rows for profiles the scraper could not read
	emptyStyle, _ := f.NewStyle(&excelize.Style{
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"D9D9D9"},
			Pattern: 1,
		},
	})

	if err := f.SetSheetName(f.GetSheetName(0), sheetName); err != nil {
		return nil, fmt.Errorf("failed to rename sheet: %w", err)
	}
	f.SetActiveSheet(0)

	for i, col := range ProfileColumns {
		cell := fmt.Sprintf("%s1", columnToLetter(i+1))
		f.SetCellValue(sheetName, cell, col)
	}

	headerStyle, err := f.NewStyle(&excelize.Style{
		Font: &excelize.Font{
			Bold: true,
		},
		Fill: excelize.Fill{
			Type:    "pattern",
			Color:   []string{"FFFF00"},
			Pattern: 1,
		},
		Border: []excelize.Border{
			{Type: "left", Color: "000000", Style: 1},
			{Type: "top", Color: "000000", Style: 1},
			{Type: "right", Color: "000000", Style: 1},
			{Type: "bottom", Color: "000000", Style: 1},
		},
	})
	if err == nil {
		f.SetCellStyle(sheetName, "A1", columnToLetter(len(ProfileColumns))+strconv.Itoa(1), headerStyle)
	}

	for i, col := range ProfileColumns {
		colLetter := columnToLetter(i + 1)
		width := 20.0

		switch col {
		case "Profile URL", "Website":
			width = 40.0
		case "About":
			width = 60.0
		case "Birthday":
			width = 15.0
		}

		f.SetColWidth(sheetName, colLetter, colLetter, width)
	}

	if len(profiles) == 0 {
		f.SetCellValue(sheetName, "A2", "no profiles returned by the scraper")
	}

	lastColumn := columnToLetter(len(ProfileColumns))
	for j, profile := range profiles {
		rowNum := j + 2

		row := ProfileRow(profile)
		for i, value := range row {
			f.SetCellValue(sheetName, fmt.Sprintf("%s%d", columnToLetter(i+1), rowNum), value)
		}

		if about := row[1]; about == "" || about == "N/A" {
			f.SetCellStyle(sheetName, fmt.Sprintf("A%d", rowNum), fmt.Sprintf("%s%d", lastColumn, rowNum), emptyStyle)
		}
	}

	if err := f.SaveAs(filePath); err != nil {
		return nil, fmt.Errorf("failed to save Excel file: %w", err)
	}

	return &ExportResult{
		Success:  true,
		Message:  fmt.Sprintf("Successfully exported %d profiles", len(profiles)),
		Filename: filename,
	}, nil
}

// ResolveExport returns the path of an exported workbook. Names that would
// leave the exports directory are rejected.
func (s *Service) ResolveExport(filename string) (string, error) {
	if filename == "" || filename != filepath.Base(filename) || strings.HasPrefix(filename, ".") {
		return "", ErrExportNotFound
	}
	if !strings.HasSuffix(filename, ".xlsx") {
		return "", ErrExportNotFound
	}

	filePath := filepath.Join(s.exportsDir, filename)
	info, err := os.Stat(filePath)
	if err != nil || info.IsDir() {
		return "", ErrExportNotFound
	}
	return filePath, nil
}

// DeleteExportsOlderThan removes workbooks last modified before cutoff
func (s *Service) DeleteExportsOlderThan(cutoff time.Time) (int64, error) {
	entries, err := os.ReadDir(s.exportsDir)
	if err != nil {
		if os.IsNotExist(err) {
			return 0, nil
		}
		return 0, fmt.Errorf("failed to list exports: %w", err)
	}

	var removed int64
	for _, entry := range entries {
		if entry.IsDir() || !strings.HasSuffix(entry.Name(), ".xlsx") {
			continue
		}
		info, err := entry.Info()
		if err != nil || !info.ModTime().Before(cutoff) {
			continue
		}
		if err := os.Remove(filepath.Join(s.exportsDir, entry.Name())); err != nil {
			return removed, fmt.Errorf("failed to remove export %s: %w", entry.Name(), err)
		}
		removed++
	}
	return removed, nil
}

// ProfileRow lays out a profile in ProfileColumns order
func ProfileRow(profile models.ScrapedProfile) []string {
	row := make([]string, 0, len(ProfileColumns))
	row = append(row, profile.URL)
	for _, col := range ProfileColumns[1:] {
		row = append(row, profileField(profile, col))
	}
	return row
}

// profileField reads a scraped field by its column name, falling back to
// the lowercase key some scraper versions emit
func profileField(profile models.ScrapedProfile, column string) string {
	if value := profile.Field(column); value != "" {
		return value
	}
	return profile.Field(strings.ToLower(column))
}

// Helper function to convert column number to Excel column letter
func columnToLetter(col int) string {
	var result string
	for col > 0 {
		col--
		result = string(rune('A'+col%26)) + result
		col /= 26
	}
	return result
}
