package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/auth"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/application/dto"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain"
	"github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/internal/domain/entity"
	pkgjwt "github.com/LouisSetyandaruTA/reminder-apps-v2-sub000/pkg/jwt"
)

type fakeUserRepo struct {
	rows []entity.User
}

func (f *fakeUserRepo) Create(u *entity.User) error {
	for i := range f.rows {
		if f.rows[i].Email == u.Email {
			return domain.ErrEmailAlreadyExists
		}
	}
	f.rows = append(f.rows, *u)
	return nil
}

func (f *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	for i := range f.rows {
		if f.rows[i].ID == id {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for i := range f.rows {
		if f.rows[i].Email == email {
			u := f.rows[i]
			return &u, nil
		}
	}
	return nil, nil
}

func (f *fakeUserRepo) Update(u *entity.User) error {
	for i := range f.rows {
		if f.rows[i].ID == u.ID {
			f.rows[i] = *u
			return nil
		}
	}
	return domain.ErrUserNotFound
}

func (f *fakeUserRepo) Delete(id string) error {
	for i := range f.rows {
		if f.rows[i].ID == id {
			f.rows = append(f.rows[:i], f.rows[i+1:]...)
			return nil
		}
	}
	return nil
}

var testJWT = auth.JWTConfig{Secret: "unit-test-secret", ExpMinutes: 60, Issuer: "reminder-apps-test"}

func TestRegisterUser_HashesPasswordAndDefaultsRole(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	out, err := uc.RegisterUser(dto.RegisterRequest{
		Email:    "petugas@example.com",
		Password: "rahasia-123",
	})
	require.NoError(t, err)

	assert.Equal(t, "petugas@example.com", out.Email)
	assert.Equal(t, entity.RoleStaff, out.Role, "role defaults to staff")
	assert.Equal(t, "active", out.Status)
	assert.NotEmpty(t, out.ID)

	require.Len(t, repo.rows, 1)
	assert.NotEqual(t, "rahasia-123", repo.rows[0].PasswordHash,
		"plaintext must never reach the store")
	assert.NotEmpty(t, repo.rows[0].PasswordHash)
}

func TestRegisterUser_DuplicateEmailRejected(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password-1"})
	require.NoError(t, err)
	_, err = uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password-2"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestLogin_ReturnsWorkingTokenWithRole(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{
		Email: "admin@example.com", Password: "password-1", Role: entity.RoleAdmin,
	})
	require.NoError(t, err)

	out, err := uc.Login(dto.LoginRequest{Email: "admin@example.com", Password: "password-1"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, entity.RoleAdmin, out.User.Role)

	userID, role, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, out.User.ID, userID)
	assert.Equal(t, entity.RoleAdmin, role)
}

func TestLogin_WrongPasswordAndUnknownUser(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password-1"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "wrong"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)

	_, err = uc.Login(dto.LoginRequest{Email: "nobody@b.c", Password: "password-1"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}

func TestLogin_InactiveAccountForbidden(t *testing.T) {
	repo := &fakeUserRepo{}
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.RegisterUser(dto.RegisterRequest{Email: "a@b.c", Password: "password-1"})
	require.NoError(t, err)
	repo.rows[0].Status = "inactive"

	_, err = uc.Login(dto.LoginRequest{Email: "a@b.c", Password: "password-1"})
	assert.ErrorIs(t, err, domain.ErrForbidden)
}
