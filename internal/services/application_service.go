package services

import (
	"log"

	"github.com/headhunt/headhunt-helper/internal/models"
	"github.com/headhunt/headhunt-helper/internal/repository"
)

// ApplicationService owns the CRUD surface over tracked applications.
// Every read of the full list and every mutation refreshes the CSV
// snapshot on disk.
type ApplicationService struct {
	repo *repository.ApplicationRepository
	csv  *CSVExportService
}

func NewApplicationService(repo *repository.ApplicationRepository, csv *CSVExportService) *ApplicationService {
	return &ApplicationService{repo: repo, csv: csv}
}

func (s *ApplicationService) GetAll() ([]models.JobApplication, error) {
	apps, err := s.repo.FindAll()
	if err != nil {
		return nil, err
	}
	s.exportSnapshot(apps)
	return apps, nil
}

func (s *ApplicationService) GetByID(id uint) (*models.JobApplication, error) {
	return s.repo.FindByID(id)
}

// Create persists a new record. Length caps and the "Unknown" fallback
// for required fields are applied here so the direct-submission path
// and the extraction path store identical content for identical input.
func (s *ApplicationService) Create(app *models.JobApplication) error {
	normalizeForStorage(app)
	if err := s.repo.Create(app); err != nil {
		return err
	}
	s.refreshSnapshot()
	return nil
}

// Update is a full-record replacement keyed by identifier. The
// identifier and the original AppliedTime are preserved.
func (s *ApplicationService) Update(id uint, app *models.JobApplication) (*models.JobApplication, error) {
	existing, err := s.repo.FindByID(id)
	if err != nil {
		return nil, err
	}

	app.ID = id
	app.AppliedTime = existing.AppliedTime // immutable after first write
	if app.Status == "" {
		app.Status = existing.Status
	}
	normalizeForStorage(app)

	if err := s.repo.Save(app); err != nil {
		return nil, err
	}
	s.refreshSnapshot()
	return app, nil
}

// Delete removes the record; a missing identifier is a no-op.
func (s *ApplicationService) Delete(id uint) error {
	if err := s.repo.DeleteByID(id); err != nil {
		return err
	}
	s.refreshSnapshot()
	return nil
}

func (s *ApplicationService) SearchByCompany(companyName string) ([]models.JobApplication, error) {
	return s.repo.SearchByCompanyName(companyName)
}

func (s *ApplicationService) SearchByPosition(position string) ([]models.JobApplication, error) {
	return s.repo.SearchByPosition(position)
}

func (s *ApplicationService) GetByStatus(status models.ApplicationStatus) ([]models.JobApplication, error) {
	return s.repo.FindByStatus(status)
}

// normalizeForStorage enforces the at-rest invariants on every write
// path: required fields are never empty, every field respects its cap.
func normalizeForStorage(app *models.JobApplication) {
	if app.CompanyName == "" {
		app.CompanyName = unknownValue
	}
	if app.Position == "" {
		app.Position = unknownValue
	}
	if app.JobURL == "" {
		app.JobURL = unknownValue
	}

	app.CompanyName = truncateField(app.CompanyName, textMaxLength, "companyName")
	app.Position = truncateField(app.Position, textMaxLength, "position")
	app.JobURL = truncateField(app.JobURL, urlMaxLength, "jobUrl")
	app.JobWebsite = truncateField(app.JobWebsite, urlMaxLength, "jobWebsite")
	app.Location = truncateField(app.Location, textMaxLength, "location")
	app.Salary = truncateField(app.Salary, textMaxLength, "salary")
	app.ContactPerson = truncateField(app.ContactPerson, textMaxLength, "contactPerson")
	app.ContactEmail = truncateField(app.ContactEmail, textMaxLength, "contactEmail")
	app.Notes = truncateField(app.Notes, notesMaxLength, "notes")
}

// The CSV snapshot is a side effect, never part of the request
// outcome: export failures are logged and swallowed.
func (s *ApplicationService) refreshSnapshot() {
	apps, err := s.repo.FindAll()
	if err != nil {
		log.Printf("⚠️ CSV export skipped: %v", err)
		return
	}
	s.exportSnapshot(apps)
}

func (s *ApplicationService) exportSnapshot(apps []models.JobApplication) {
	if err := s.csv.Export(apps); err != nil {
		log.Printf("⚠️ CSV export failed: %v", err)
	}
}
