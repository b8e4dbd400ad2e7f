package app_test

import (
	"errors"
	"testing"
	"time"

	"dermaglow/internal/app"
	"dermaglow/internal/model"
	"dermaglow/internal/pkg/jwtutil"
)

type fakeUserStore struct {
	users  map[uint]*model.User
	nextID uint
}

func newFakeUserStore() *fakeUserStore {
	return &fakeUserStore{users: make(map[uint]*model.User)}
}

func (s *fakeUserStore) Create(user *model.User) error {
	s.nextID++
	user.ID = s.nextID
	copied := *user
	s.users[user.ID] = &copied
	return nil
}

func (s *fakeUserStore) GetByUsername(username string) (*model.User, error) {
	for _, user := range s.users {
		if user.Username == username {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByEmail(email string) (*model.User, error) {
	for _, user := range s.users {
		if user.Email == email {
			copied := *user
			return &copied, nil
		}
	}
	return nil, nil
}

func (s *fakeUserStore) GetByID(id uint) (*model.User, error) {
	user, ok := s.users[id]
	if !ok {
		return nil, nil
	}
	copied := *user
	return &copied, nil
}

const testSecret = "test-secret"

func newAuthService() (*app.AuthService, *fakeUserStore) {
	store := newFakeUserStore()
	return app.NewAuthService(store, testSecret, time.Hour), store
}

func TestRegisterAndLogin(t *testing.T) {
	service, _ := newAuthService()

	registered, err := service.Register(app.RegisterInput{
		Username: "ayesha",
		Email:    "Ayesha@Example.com",
		Password: "correct-horse",
	})
	if err != nil {
		t.Fatalf("Register: %v", err)
	}
	if registered.User.Email != "ayesha@example.com" {
		t.Fatalf("email should be lowercased, got %q", registered.User.Email)
	}
	if registered.User.Role != model.RoleUser {
		t.Fatalf("new users get the user role, got %q", registered.User.Role)
	}
	if registered.User.PasswordHash == "correct-horse" {
		t.Fatalf("password stored in plain text")
	}

	claims, err := jwtutil.ParseToken(testSecret, registered.Token)
	if err != nil {
		t.Fatalf("ParseToken: %v", err)
	}
	if claims.UserID != registered.User.ID || claims.Username != "ayesha" || claims.Role != model.RoleUser {
		t.Fatalf("unexpected claims: %+v", claims)
	}

	logged, err := service.Login(app.LoginInput{Username: "ayesha", Password: "correct-horse"})
	if err != nil {
		t.Fatalf("Login: %v", err)
	}
	if logged.User.ID != registered.User.ID {
		t.Fatalf("login resolved a different user")
	}
}

func TestRegisterRejectsShortPassword(t *testing.T) {
	service, _ := newAuthService()
	_, err := service.Register(app.RegisterInput{Username: "a", Email: "a@b.c", Password: "short"})
	if !errors.Is(err, app.ErrInvalidInput) {
		t.Fatalf("expected ErrInvalidInput, got %v", err)
	}
}

func TestRegisterRejectsDuplicates(t *testing.T) {
	service, _ := newAuthService()
	if _, err := service.Register(app.RegisterInput{Username: "ayesha", Email: "a@b.c", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Register(app.RegisterInput{Username: "ayesha", Email: "other@b.c", Password: "correct-horse"}); !errors.Is(err, app.ErrUsernameExists) {
		t.Fatalf("expected ErrUsernameExists, got %v", err)
	}
	if _, err := service.Register(app.RegisterInput{Username: "other", Email: "a@b.c", Password: "correct-horse"}); !errors.Is(err, app.ErrEmailExists) {
		t.Fatalf("expected ErrEmailExists, got %v", err)
	}
}

func TestGetUserByIDMissing(t *testing.T) {
	service, _ := newAuthService()
	if _, err := service.GetUserByID(42); !errors.Is(err, app.ErrUserNotFound) {
		t.Fatalf("expected ErrUserNotFound, got %v", err)
	}
}

func TestLoginWrongPassword(t *testing.T) {
	service, _ := newAuthService()
	if _, err := service.Register(app.RegisterInput{Username: "ayesha", Email: "a@b.c", Password: "correct-horse"}); err != nil {
		t.Fatalf("Register: %v", err)
	}

	if _, err := service.Login(app.LoginInput{Username: "ayesha", Password: "wrong"}); !errors.Is(err, app.ErrInvalidCredential) {
		t.Fatalf("expected ErrInvalidCredential, got %v", err)
	}
	if _, err := service.Login(app.LoginInput{Username: "nobody", Password: "whatever"}); !errors.Is(err, app.ErrInvalidCredential) {
		t.Fatalf("unknown users map to the same error, got %v", err)
	}
}
