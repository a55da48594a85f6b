package repository

import (
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/headhunt/headhunt-helper/internal/models"
)

// ErrNotFound is returned when a lookup references an identifier that
// does not exist in the store.
var ErrNotFound = errors.New("application not found")

type ApplicationRepository struct {
	DB *gorm.DB
}

func NewApplicationRepository(db *gorm.DB) *ApplicationRepository {
	return &ApplicationRepository{DB: db}
}

func (r *ApplicationRepository) Create(app *models.JobApplication) error {
	return r.DB.Create(app).Error
}

func (r *ApplicationRepository) Save(app *models.JobApplication) error {
	return r.DB.Save(app).Error
}

func (r *ApplicationRepository) FindAll() ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.DB.Order("id").Find(&apps).Error
	return apps, err
}

func (r *ApplicationRepository) FindByID(id uint) (*models.JobApplication, error) {
	var app models.JobApplication
	err := r.DB.First(&app, id).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return &app, nil
}

func (r *ApplicationRepository) ExistsByID(id uint) (bool, error) {
	var count int64
	err := r.DB.Model(&models.JobApplication{}).Where("id = ?", id).Count(&count).Error
	return count > 0, err
}

// DeleteByID removes the record if present. Deleting an identifier that
// does not exist is a no-op, not an error.
func (r *ApplicationRepository) DeleteByID(id uint) error {
	return r.DB.Delete(&models.JobApplication{}, id).Error
}

// SearchByCompanyName is a case-insensitive substring match.
func (r *ApplicationRepository) SearchByCompanyName(q string) ([]models.JobApplication, error) {
	return r.searchColumn("company_name", q)
}

// SearchByPosition is a case-insensitive substring match.
func (r *ApplicationRepository) SearchByPosition(q string) ([]models.JobApplication, error) {
	return r.searchColumn("position", q)
}

func (r *ApplicationRepository) FindByStatus(status models.ApplicationStatus) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	err := r.DB.Where("status = ?", status).Order("id").Find(&apps).Error
	return apps, err
}

// LOWER(...) LIKE instead of ILIKE so the same query runs on postgres
// and on the sqlite test database.
func (r *ApplicationRepository) searchColumn(column, q string) ([]models.JobApplication, error) {
	var apps []models.JobApplication
	pattern := "%" + strings.ToLower(q) + "%"
	err := r.DB.Where("LOWER("+column+") LIKE ?", pattern).Order("id").Find(&apps).Error
	return apps, err
}
