package service

import (
	"context"

	"gorm.io/gorm"

	"github.com/DraymeM/tiomi/internal/model"
	"github.com/DraymeM/tiomi/internal/repository"
)

// ── Mock UserRepository ──

type mockUserRepo struct {
	users  map[int64]*model.User
	nextID int64
}

func newMockUserRepo() *mockUserRepo {
	return &mockUserRepo{users: make(map[int64]*model.User), nextID: 1}
}

func (m *mockUserRepo) Create(_ context.Context, user *model.User) error {
	for _, u := range m.users {
		if u.Username == user.Username || u.Email == user.Email {
			return gorm.ErrDuplicatedKey
		}
	}
	user.ID = m.nextID
	m.nextID++
	m.users[user.ID] = user
	return nil
}

func (m *mockUserRepo) GetByID(_ context.Context, id int64) (*model.User, error) {
	if u, ok := m.users[id]; ok {
		return u, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByUsername(_ context.Context, username string) (*model.User, error) {
	for _, u := range m.users {
		if u.Username == username {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) GetByEmail(_ context.Context, email string) (*model.User, error) {
	for _, u := range m.users {
		if u.Email == email {
			return u, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockUserRepo) UpdatePassword(_ context.Context, id int64, passwordHash string) (bool, error) {
	u, ok := m.users[id]
	if !ok {
		return false, nil
	}
	u.PasswordHash = passwordHash
	return true, nil
}

// ── Mock TetelRepository ──

type mockTetelRepo struct {
	tetelek map[int64]*model.Tetel
	nextID  int64
}

func newMockTetelRepo() *mockTetelRepo {
	return &mockTetelRepo{tetelek: make(map[int64]*model.Tetel), nextID: 1}
}

func (m *mockTetelRepo) List(_ context.Context) ([]repository.TetelListRow, error) {
	var rows []repository.TetelListRow
	for id := int64(1); id < m.nextID; id++ {
		t, ok := m.tetelek[id]
		if !ok {
			continue
		}
		rows = append(rows, repository.TetelListRow{
			ID:           t.ID,
			Name:         t.Name,
			SectionCount: len(t.Sections),
		})
	}
	return rows, nil
}

func (m *mockTetelRepo) GetDetails(_ context.Context, id int64) (*model.Tetel, error) {
	if t, ok := m.tetelek[id]; ok {
		return t, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (m *mockTetelRepo) Create(_ context.Context, tetel *model.Tetel) error {
	tetel.ID = m.nextID
	m.nextID++
	m.tetelek[tetel.ID] = tetel
	return nil
}

func (m *mockTetelRepo) Replace(_ context.Context, tetel *model.Tetel) error {
	if _, ok := m.tetelek[tetel.ID]; !ok {
		return gorm.ErrRecordNotFound
	}
	m.tetelek[tetel.ID] = tetel
	return nil
}

func (m *mockTetelRepo) Delete(_ context.Context, id int64) error {
	if _, ok := m.tetelek[id]; !ok {
		return gorm.ErrRecordNotFound
	}
	delete(m.tetelek, id)
	return nil
}
