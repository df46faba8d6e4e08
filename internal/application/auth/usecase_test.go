package auth_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/Ventas-api/internal/application/auth"
	"github.com/jhoicas/Ventas-api/internal/application/dto"
	"github.com/jhoicas/Ventas-api/internal/domain"
	"github.com/jhoicas/Ventas-api/internal/domain/entity"
	pkgjwt "github.com/jhoicas/Ventas-api/pkg/jwt"
)

type fakeUserRepo struct {
	users map[string]*entity.User // por ID
}

func newFakeUserRepo() *fakeUserRepo {
	return &fakeUserRepo{users: map[string]*entity.User{}}
}

func (r *fakeUserRepo) Create(u *entity.User) error {
	cp := *u
	r.users[u.ID] = &cp
	return nil
}

func (r *fakeUserRepo) GetByID(id string) (*entity.User, error) {
	u, ok := r.users[id]
	if !ok {
		return nil, nil
	}
	cp := *u
	return &cp, nil
}

func (r *fakeUserRepo) GetByUsername(username string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Username == username {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

func (r *fakeUserRepo) GetByEmail(email string) (*entity.User, error) {
	for _, u := range r.users {
		if u.Email == email {
			cp := *u
			return &cp, nil
		}
	}
	return nil, nil
}

var testJWT = auth.JWTConfig{
	Secret:     "test-secret-key-for-unit-tests",
	ExpMinutes: 60,
	Issuer:     "ventas-api-test",
}

func TestAuth_RegistroYLogin(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	user, err := uc.Register(dto.RegisterRequest{
		Username: "jperez",
		Email:    "jperez@example.com",
		Password: "secreto-muy-largo",
	})
	require.NoError(t, err)
	assert.NotEmpty(t, user.ID)
	assert.Equal(t, "jperez", user.Username)

	out, err := uc.Login(dto.LoginRequest{Username: "jperez", Password: "secreto-muy-largo"})
	require.NoError(t, err)
	require.NotEmpty(t, out.Token)
	assert.Equal(t, user.ID, out.User.ID)

	// El token debe llevar id y email del usuario
	userID, email, err := pkgjwt.Parse(testJWT.Secret, out.Token)
	require.NoError(t, err)
	assert.Equal(t, user.ID, userID)
	assert.Equal(t, "jperez@example.com", email)
}

func TestAuth_UsernameDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "jperez", Email: "a@example.com", Password: "secreto-muy-largo"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "jperez", Email: "b@example.com", Password: "secreto-muy-largo"})
	assert.ErrorIs(t, err, domain.ErrUsernameTaken)
}

func TestAuth_EmailDuplicado(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "jperez", Email: "a@example.com", Password: "secreto-muy-largo"})
	require.NoError(t, err)

	_, err = uc.Register(dto.RegisterRequest{Username: "mlopez", Email: "a@example.com", Password: "secreto-muy-largo"})
	assert.ErrorIs(t, err, domain.ErrEmailAlreadyExists)
}

func TestAuth_PasswordIncorrecto(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Register(dto.RegisterRequest{Username: "jperez", Email: "a@example.com", Password: "secreto-muy-largo"})
	require.NoError(t, err)

	_, err = uc.Login(dto.LoginRequest{Username: "jperez", Password: "otra-cosa"})
	assert.ErrorIs(t, err, domain.ErrUnauthorized)
}

func TestAuth_UsuarioInexistente(t *testing.T) {
	repo := newFakeUserRepo()
	uc := auth.NewAuthUseCase(repo, testJWT)

	_, err := uc.Login(dto.LoginRequest{Username: "fantasma", Password: "lo-que-sea"})
	assert.ErrorIs(t, err, domain.ErrUserNotFound)
}
