package services

import (
	"encoding/csv"
	"fmt"
	"os"
	"strconv"

	"github.com/headhunt/headhunt-helper/internal/models"
)

const appliedTimeLayout = "2006-01-02 15:04:05"

var csvHeader = []string{
	"ID", "Company Name", "Position", "Job URL", "Status", "Applied Time",
	"Location", "Salary", "Contact Person", "Contact Email", "Notes",
}

// CSVExportService writes the full application list to a fixed path,
// overwriting the previous snapshot on every call. Fields containing
// commas, quotes or newlines are quoted with embedded quotes doubled.
type CSVExportService struct {
	path string
}

func NewCSVExportService(path string) *CSVExportService {
	return &CSVExportService{path: path}
}

func (s *CSVExportService) Export(apps []models.JobApplication) error {
	f, err := os.Create(s.path)
	if err != nil {
		return fmt.Errorf("create csv file: %w", err)
	}
	defer f.Close()

	w := csv.NewWriter(f)
	if err := w.Write(csvHeader); err != nil {
		return fmt.Errorf("write csv header: %w", err)
	}
	for _, app := range apps {
		record := []string{
			strconv.FormatUint(uint64(app.ID), 10),
			app.CompanyName,
			app.Position,
			app.JobURL,
			string(app.Status),
			app.AppliedTime.Format(appliedTimeLayout),
			app.Location,
			app.Salary,
			app.ContactPerson,
			app.ContactEmail,
			app.Notes,
		}
		if err := w.Write(record); err != nil {
			return fmt.Errorf("write csv record: %w", err)
		}
	}
	w.Flush()
	return w.Error()
}
