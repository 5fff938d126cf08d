package store

import (
	"errors"

	"church_admin/internal/models"
)

// Sentinel errors handlers translate into HTTP statuses. Anything else
// coming out of a Store is a generic storage failure.
var (
	ErrNotFound      = errors.New("record not found")
	ErrDuplicate     = errors.New("record already exists")
	ErrCategoryInUse = errors.New("category is still referenced by assets")
)

// Store is the persistence adapter behind the entity endpoints. Two
// implementations exist: a GORM/Postgres store and an in-memory store
// used for demo mode and tests. Every mutation is a single atomic
// statement; there are no transactions spanning entities.
type Store interface {
	// Applications
	CreateApplication(app *models.Application) error
	ListApplications() ([]models.Application, error)
	GetApplication(id string) (*models.Application, error)
	UpdateApplicationStatus(id, status string) error

	// Members
	CreateMember(m *models.Member) error
	ListMembers() ([]models.Member, error)
	UpdateMember(m *models.Member) error
	DeleteMember(id uint) error

	// Transactions (append-only)
	CreateTransaction(t *models.Transaction) error
	ListTransactions() ([]models.Transaction, error)

	// Assets
	CreateAsset(a *models.Asset) error
	ListAssets() ([]models.Asset, error)
	UpdateAsset(a *models.Asset) error
	DeleteAsset(id uint) error

	// Asset categories
	CreateCategory(c *models.AssetCategory) error
	ListCategories() ([]models.AssetCategory, error)
	DeleteCategory(id uint) error

	// Attendance (append-only)
	CreateAttendance(rec *models.Attendance) error
	ListAttendance() ([]models.Attendance, error)

	// Portal users
	CreateUser(u *models.User) error
	FindUserByPhone(phone string) (*models.User, error)
}

// current is the store the controllers talk to, assigned once at startup.
var current Store

// Use installs the active store.
func Use(s Store) {
	current = s
}

// Current returns the active store.
func Current() Store {
	return current
}
