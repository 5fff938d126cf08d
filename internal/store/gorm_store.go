package store

import (
	"errors"

	"github.com/lib/pq"
	"gorm.io/gorm"

	"church_admin/internal/models"
)

// gormStore executes every operation as a single parameterized
// statement through GORM against Postgres.
type gormStore struct {
	db *gorm.DB
}

// NewGormStore wraps an open GORM handle.
func NewGormStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

// translate maps driver-level errors onto the store sentinels.
func translate(err error) error {
	if err == nil {
		return nil
	}
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return ErrNotFound
	}
	var pgErr *pq.Error
	if errors.As(err, &pgErr) && pgErr.Code == "23505" {
		return ErrDuplicate
	}
	return err
}

func (s *gormStore) CreateApplication(app *models.Application) error {
	return translate(s.db.Create(app).Error)
}

func (s *gormStore) ListApplications() ([]models.Application, error) {
	var apps []models.Application
	err := s.db.Order("submitted_at DESC").Find(&apps).Error
	return apps, translate(err)
}

func (s *gormStore) GetApplication(id string) (*models.Application, error) {
	var app models.Application
	if err := s.db.First(&app, "id = ?", id).Error; err != nil {
		return nil, translate(err)
	}
	return &app, nil
}

func (s *gormStore) UpdateApplicationStatus(id, status string) error {
	res := s.db.Model(&models.Application{}).Where("id = ?", id).Update("status", status)
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) CreateMember(m *models.Member) error {
	return translate(s.db.Create(m).Error)
}

func (s *gormStore) ListMembers() ([]models.Member, error) {
	var members []models.Member
	err := s.db.Order("first_name ASC").Find(&members).Error
	return members, translate(err)
}

func (s *gormStore) UpdateMember(m *models.Member) error {
	res := s.db.Model(&models.Member{}).Where("id = ?", m.ID).Updates(map[string]interface{}{
		"first_name":         m.FirstName,
		"middle_name":        m.MiddleName,
		"last_name":          m.LastName,
		"phone":              m.Phone,
		"first_fruit_number": m.FirstFruitNumber,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteMember(id uint) error {
	return translate(s.db.Delete(&models.Member{}, id).Error)
}

func (s *gormStore) CreateTransaction(t *models.Transaction) error {
	return translate(s.db.Create(t).Error)
}

func (s *gormStore) ListTransactions() ([]models.Transaction, error) {
	var txs []models.Transaction
	err := s.db.Order("id DESC").Find(&txs).Error
	return txs, translate(err)
}

func (s *gormStore) CreateAsset(a *models.Asset) error {
	return translate(s.db.Create(a).Error)
}

func (s *gormStore) ListAssets() ([]models.Asset, error) {
	var assets []models.Asset
	err := s.db.Order("id DESC").Find(&assets).Error
	return assets, translate(err)
}

func (s *gormStore) UpdateAsset(a *models.Asset) error {
	res := s.db.Model(&models.Asset{}).Where("id = ?", a.ID).Updates(map[string]interface{}{
		"name":             a.Name,
		"category":         a.Category,
		"purchase_date":    a.PurchaseDate,
		"purchase_value":   a.PurchaseValue,
		"current_value":    a.CurrentValue,
		"condition_status": a.Condition,
		"location":         a.Location,
		"description":      a.Description,
		"quantity":         a.Quantity,
	})
	if res.Error != nil {
		return translate(res.Error)
	}
	if res.RowsAffected == 0 {
		return ErrNotFound
	}
	return nil
}

func (s *gormStore) DeleteAsset(id uint) error {
	return translate(s.db.Delete(&models.Asset{}, id).Error)
}

func (s *gormStore) CreateCategory(c *models.AssetCategory) error {
	return translate(s.db.Create(c).Error)
}

func (s *gormStore) ListCategories() ([]models.AssetCategory, error) {
	var cats []models.AssetCategory
	err := s.db.Order("name ASC").Find(&cats).Error
	return cats, translate(err)
}

// DeleteCategory refuses to remove a category that assets still
// reference by name. The check and the delete are separate statements,
// same as the original system.
func (s *gormStore) DeleteCategory(id uint) error {
	var cat models.AssetCategory
	if err := s.db.First(&cat, id).Error; err != nil {
		return translate(err)
	}
	var inUse int64
	if err := s.db.Model(&models.Asset{}).Where("category = ?", cat.Name).Count(&inUse).Error; err != nil {
		return translate(err)
	}
	if inUse > 0 {
		return ErrCategoryInUse
	}
	return translate(s.db.Delete(&models.AssetCategory{}, id).Error)
}

func (s *gormStore) CreateAttendance(rec *models.Attendance) error {
	return translate(s.db.Create(rec).Error)
}

func (s *gormStore) ListAttendance() ([]models.Attendance, error) {
	var recs []models.Attendance
	err := s.db.Order("id DESC").Find(&recs).Error
	return recs, translate(err)
}

func (s *gormStore) CreateUser(u *models.User) error {
	return translate(s.db.Create(u).Error)
}

func (s *gormStore) FindUserByPhone(phone string) (*models.User, error) {
	var user models.User
	if err := s.db.Where("phone = ?", phone).First(&user).Error; err != nil {
		return nil, translate(err)
	}
	return &user, nil
}
