package service

import (
	"context"
	"errors"
	"testing"

	"go.uber.org/zap"

	"github.com/DraymeM/tiomi/internal/repository"
)

func setupTestUserService() (UserService, *mockUserRepo) {
	userRepo := newMockUserRepo()
	repo := &repository.Repository{User: userRepo, Tetel: newMockTetelRepo()}
	return NewUserService(repo, zap.NewNop()), userRepo
}

func TestUserCreate_ThenFindAndVerify(t *testing.T) {
	svc, _ := setupTestUserService()

	id, err := svc.Create(context.Background(), "alice", "s3cretpass", "alice@example.com", false)
	if err != nil {
		t.Fatalf("Create should succeed, got %v", err)
	}
	if id == 0 {
		t.Fatal("expected a nonzero id")
	}

	found, err := svc.FindByUsername(context.Background(), "alice")
	if err != nil {
		t.Fatalf("FindByUsername should succeed, got %v", err)
	}
	if found.ID != id {
		t.Errorf("expected id=%d, got %d", id, found.ID)
	}

	ok, err := svc.VerifyPassword(context.Background(), id, "s3cretpass")
	if err != nil {
		t.Fatalf("VerifyPassword should not error, got %v", err)
	}
	if !ok {
		t.Error("correct password should verify")
	}
}

func TestUserCreate_Duplicate(t *testing.T) {
	svc, _ := setupTestUserService()

	if _, err := svc.Create(context.Background(), "bob", "password123", "bob@example.com", false); err != nil {
		t.Fatalf("first Create should succeed, got %v", err)
	}
	if _, err := svc.Create(context.Background(), "bob", "password123", "bob2@example.com", false); !errors.Is(err, ErrUsernameExists) {
		t.Errorf("expected ErrUsernameExists, got %v", err)
	}
}

func TestUserCreate_StoresHashNotPlaintext(t *testing.T) {
	svc, userRepo := setupTestUserService()

	id, err := svc.Create(context.Background(), "carol", "plaintextpw", "carol@example.com", true)
	if err != nil {
		t.Fatalf("Create should succeed, got %v", err)
	}

	stored, _ := userRepo.GetByID(context.Background(), id)
	if stored.PasswordHash == "plaintextpw" {
		t.Error("stored value must be a hash, not the plaintext")
	}
	if !stored.Superuser {
		t.Error("superuser flag should persist")
	}
}

func TestVerifyPassword_WrongPassword(t *testing.T) {
	svc, _ := setupTestUserService()

	id, _ := svc.Create(context.Background(), "dave", "rightpass1", "dave@example.com", false)

	ok, err := svc.VerifyPassword(context.Background(), id, "wrongpass1")
	if err != nil {
		t.Fatalf("a mismatch must not error, got %v", err)
	}
	if ok {
		t.Error("wrong password must not verify")
	}
}

func TestVerifyPassword_UnknownUser(t *testing.T) {
	svc, _ := setupTestUserService()

	if _, err := svc.VerifyPassword(context.Background(), 9999, "whatever"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}

func TestUpdatePassword_Rotation(t *testing.T) {
	svc, _ := setupTestUserService()

	id, _ := svc.Create(context.Background(), "erin", "oldpass123", "erin@example.com", false)

	updated, err := svc.UpdatePassword(context.Background(), id, "newpass123")
	if err != nil {
		t.Fatalf("UpdatePassword should succeed, got %v", err)
	}
	if !updated {
		t.Fatal("expected exactly one row affected")
	}

	if ok, _ := svc.VerifyPassword(context.Background(), id, "newpass123"); !ok {
		t.Error("new password should verify after rotation")
	}
	if ok, _ := svc.VerifyPassword(context.Background(), id, "oldpass123"); ok {
		t.Error("old password must not verify after rotation")
	}
}

func TestUpdatePassword_UnknownUser(t *testing.T) {
	svc, userRepo := setupTestUserService()

	updated, err := svc.UpdatePassword(context.Background(), 9999, "newpass123")
	if err != nil {
		t.Fatalf("UpdatePassword for unknown id should not error, got %v", err)
	}
	if updated {
		t.Error("no rows should be affected for a nonexistent id")
	}
	if len(userRepo.users) != 0 {
		t.Error("no rows should be mutated")
	}
}

func TestFindByEmail(t *testing.T) {
	svc, _ := setupTestUserService()

	id, _ := svc.Create(context.Background(), "frank", "password123", "frank@example.com", false)

	found, err := svc.FindByEmail(context.Background(), "frank@example.com")
	if err != nil {
		t.Fatalf("FindByEmail should succeed, got %v", err)
	}
	if found.ID != id {
		t.Errorf("expected id=%d, got %d", id, found.ID)
	}

	if _, err := svc.FindByEmail(context.Background(), "nobody@example.com"); !errors.Is(err, ErrUserNotFound) {
		t.Errorf("expected ErrUserNotFound, got %v", err)
	}
}
