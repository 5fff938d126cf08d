package store

import (
	"sort"
	"strings"
	"sync"

	"church_admin/internal/models"
)

// memoryStore keeps everything in process-wide maps. It backs the
// self-contained demo mode (STORE_BACKEND=memory) and the tests. A
// single mutex is enough at this scale; there is no multi-writer
// coordination beyond last-write-wins, same as the real backend.
type memoryStore struct {
	mu sync.Mutex

	applications map[string]models.Application
	members      map[uint]models.Member
	transactions map[uint]models.Transaction
	assets       map[uint]models.Asset
	categories   map[uint]models.AssetCategory
	attendance   map[uint]models.Attendance
	users        map[uint]models.User

	nextID uint
}

// NewMemoryStore returns an empty in-memory store.
func NewMemoryStore() Store {
	return &memoryStore{
		applications: make(map[string]models.Application),
		members:      make(map[uint]models.Member),
		transactions: make(map[uint]models.Transaction),
		assets:       make(map[uint]models.Asset),
		categories:   make(map[uint]models.AssetCategory),
		attendance:   make(map[uint]models.Attendance),
		users:        make(map[uint]models.User),
	}
}

func (s *memoryStore) next() uint {
	s.nextID++
	return s.nextID
}

func (s *memoryStore) CreateApplication(app *models.Application) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.applications[app.ID]; ok {
		return ErrDuplicate
	}
	s.applications[app.ID] = *app
	return nil
}

func (s *memoryStore) ListApplications() ([]models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	apps := make([]models.Application, 0, len(s.applications))
	for _, a := range s.applications {
		apps = append(apps, a)
	}
	sort.Slice(apps, func(i, j int) bool {
		return apps[i].SubmittedAt.After(apps[j].SubmittedAt)
	})
	return apps, nil
}

func (s *memoryStore) GetApplication(id string) (*models.Application, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[id]
	if !ok {
		return nil, ErrNotFound
	}
	return &app, nil
}

func (s *memoryStore) UpdateApplicationStatus(id, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	app, ok := s.applications[id]
	if !ok {
		return ErrNotFound
	}
	app.Status = status
	s.applications[id] = app
	return nil
}

func (s *memoryStore) CreateMember(m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	m.ID = s.next()
	s.members[m.ID] = *m
	return nil
}

func (s *memoryStore) ListMembers() ([]models.Member, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	members := make([]models.Member, 0, len(s.members))
	for _, m := range s.members {
		members = append(members, m)
	}
	sort.Slice(members, func(i, j int) bool {
		return strings.ToLower(members[i].FirstName) < strings.ToLower(members[j].FirstName)
	})
	return members, nil
}

func (s *memoryStore) UpdateMember(m *models.Member) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.members[m.ID]; !ok {
		return ErrNotFound
	}
	s.members[m.ID] = *m
	return nil
}

func (s *memoryStore) DeleteMember(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.members, id)
	return nil
}

func (s *memoryStore) CreateTransaction(t *models.Transaction) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	t.ID = s.next()
	s.transactions[t.ID] = *t
	return nil
}

func (s *memoryStore) ListTransactions() ([]models.Transaction, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	txs := make([]models.Transaction, 0, len(s.transactions))
	for _, t := range s.transactions {
		txs = append(txs, t)
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].ID > txs[j].ID })
	return txs, nil
}

func (s *memoryStore) CreateAsset(a *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	a.ID = s.next()
	s.assets[a.ID] = *a
	return nil
}

func (s *memoryStore) ListAssets() ([]models.Asset, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	assets := make([]models.Asset, 0, len(s.assets))
	for _, a := range s.assets {
		assets = append(assets, a)
	}
	sort.Slice(assets, func(i, j int) bool { return assets[i].ID > assets[j].ID })
	return assets, nil
}

func (s *memoryStore) UpdateAsset(a *models.Asset) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.assets[a.ID]; !ok {
		return ErrNotFound
	}
	s.assets[a.ID] = *a
	return nil
}

func (s *memoryStore) DeleteAsset(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.assets, id)
	return nil
}

func (s *memoryStore) CreateCategory(c *models.AssetCategory) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.categories {
		if existing.Code == c.Code {
			return ErrDuplicate
		}
	}
	c.ID = s.next()
	s.categories[c.ID] = *c
	return nil
}

func (s *memoryStore) ListCategories() ([]models.AssetCategory, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	cats := make([]models.AssetCategory, 0, len(s.categories))
	for _, c := range s.categories {
		cats = append(cats, c)
	}
	sort.Slice(cats, func(i, j int) bool {
		return strings.ToLower(cats[i].Name) < strings.ToLower(cats[j].Name)
	})
	return cats, nil
}

func (s *memoryStore) DeleteCategory(id uint) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	cat, ok := s.categories[id]
	if !ok {
		return ErrNotFound
	}
	for _, a := range s.assets {
		if a.Category == cat.Name {
			return ErrCategoryInUse
		}
	}
	delete(s.categories, id)
	return nil
}

func (s *memoryStore) CreateAttendance(rec *models.Attendance) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	rec.ID = s.next()
	s.attendance[rec.ID] = *rec
	return nil
}

func (s *memoryStore) ListAttendance() ([]models.Attendance, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	recs := make([]models.Attendance, 0, len(s.attendance))
	for _, r := range s.attendance {
		recs = append(recs, r)
	}
	sort.Slice(recs, func(i, j int) bool { return recs[i].ID > recs[j].ID })
	return recs, nil
}

func (s *memoryStore) CreateUser(u *models.User) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, existing := range s.users {
		if existing.Phone == u.Phone {
			return ErrDuplicate
		}
	}
	u.ID = s.next()
	s.users[u.ID] = *u
	return nil
}

func (s *memoryStore) FindUserByPhone(phone string) (*models.User, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	for _, u := range s.users {
		if u.Phone == phone {
			user := u
			return &user, nil
		}
	}
	return nil, ErrNotFound
}
