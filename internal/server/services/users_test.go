package services

import (
	"context"
	"database/sql"
	"errors"
	"testing"

	"golang.org/x/crypto/bcrypt"

	"github.com/wetrippo/wishlist/internal/common"
	"github.com/wetrippo/wishlist/internal/dbx"
	"github.com/wetrippo/wishlist/internal/server/models"
	itemsrepo "github.com/wetrippo/wishlist/internal/server/repositories/items"
	usersrepo "github.com/wetrippo/wishlist/internal/server/repositories/users"
)

type fakeUsersRepo struct {
	created   *models.User
	createErr error

	getOut *models.User
	getErr error
}

func (f *fakeUsersRepo) Create(ctx context.Context, u *models.User) (*models.User, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	u.ID = "u-1"
	f.created = u
	return u, nil
}

func (f *fakeUsersRepo) GetByLogin(ctx context.Context, login string) (*models.User, error) {
	if f.getErr != nil {
		return nil, f.getErr
	}
	return f.getOut, nil
}

type fakeItemsRepo struct {
	listOut []*models.Item
	listErr error

	created   *models.Item
	createErr error

	updateOut *models.Item
	updateErr error

	deleteErr error
}

func (f *fakeItemsRepo) ListByOwner(ctx context.Context, ownerID string) ([]*models.Item, error) {
	if f.listErr != nil {
		return nil, f.listErr
	}
	return f.listOut, nil
}

func (f *fakeItemsRepo) Create(ctx context.Context, item *models.Item) (*models.Item, error) {
	if f.createErr != nil {
		return nil, f.createErr
	}
	item.ID = 7
	f.created = item
	return item, nil
}

func (f *fakeItemsRepo) Update(ctx context.Context, id int64, ownerID string, upd *models.ItemUpdate) (*models.Item, error) {
	if f.updateErr != nil {
		return nil, f.updateErr
	}
	return f.updateOut, nil
}

func (f *fakeItemsRepo) Delete(ctx context.Context, id int64, ownerID string) error {
	return f.deleteErr
}

type fakeRepoManager struct {
	u *fakeUsersRepo
	i *fakeItemsRepo
}

func (m *fakeRepoManager) RunMigrations(context.Context, *sql.DB) error { return nil }
func (m *fakeRepoManager) Users(db dbx.DBTX) usersrepo.Repository      { return m.u }
func (m *fakeRepoManager) Items(db dbx.DBTX) itemsrepo.Repository      { return m.i }

func TestRegister_HashesPassword(t *testing.T) {
	repo := &fakeUsersRepo{}
	s := NewUserService(nil, &fakeRepoManager{u: repo})

	user, err := s.Register(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Register error: %v", err)
	}
	if user.ID != "u-1" || user.Login != "alice" {
		t.Fatalf("unexpected user: %+v", user)
	}
	if err := bcrypt.CompareHashAndPassword(repo.created.PasswordHash, []byte("hunter2")); err != nil {
		t.Fatalf("stored hash does not verify: %v", err)
	}
}

func TestRegister_DuplicateLogin(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{u: &fakeUsersRepo{createErr: common.ErrAlreadyExists}})

	_, err := s.Register(context.Background(), "alice", "hunter2")
	if !errors.Is(err, common.ErrAlreadyExists) {
		t.Fatalf("expected ErrAlreadyExists, got %v", err)
	}
}

func TestRegister_EmptyCredentials(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{u: &fakeUsersRepo{}})

	if _, err := s.Register(context.Background(), "", "pw"); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty login, got %v", err)
	}
	if _, err := s.Register(context.Background(), "alice", ""); !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized for empty password, got %v", err)
	}
}

func TestLogin_Success(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u-1", Login: "alice", PasswordHash: hash}}
	s := NewUserService(nil, &fakeRepoManager{u: repo})

	user, err := s.Login(context.Background(), "alice", "hunter2")
	if err != nil {
		t.Fatalf("Login error: %v", err)
	}
	if user.ID != "u-1" {
		t.Fatalf("unexpected user: %+v", user)
	}
}

func TestLogin_WrongPassword(t *testing.T) {
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	if err != nil {
		t.Fatal(err)
	}
	repo := &fakeUsersRepo{getOut: &models.User{ID: "u-1", Login: "alice", PasswordHash: hash}}
	s := NewUserService(nil, &fakeRepoManager{u: repo})

	_, err = s.Login(context.Background(), "alice", "wrong")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}

func TestLogin_UnknownUser(t *testing.T) {
	s := NewUserService(nil, &fakeRepoManager{u: &fakeUsersRepo{getErr: common.ErrNotFound}})

	_, err := s.Login(context.Background(), "ghost", "pw")
	if !errors.Is(err, common.ErrUnauthorized) {
		t.Fatalf("expected ErrUnauthorized, got %v", err)
	}
}
