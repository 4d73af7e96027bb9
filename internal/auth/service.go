package auth

import (
	"context"
	"errors"
	"strings"

	"todo-api/internal/models"
	"todo-api/pkg/crypto"
)

// UserStore adalah akses persistence minimum yang dibutuhkan register/login.
// Implementasi harus mencari username secara case-insensitive dan
// mengembalikan ErrDuplicateUsername / ErrUserNotFound.
type UserStore interface {
	CreateUser(ctx context.Context, username, passwordHash string) (int, error)
	FindByUsername(ctx context.Context, username string) (*models.User, error)
}

// Service menangani register dan login: hashing kredensial dan penerbitan token.
type Service struct {
	users  UserStore
	tokens *JWTManager
}

func NewService(users UserStore, tokens *JWTManager) *Service {
	return &Service{users: users, tokens: tokens}
}

// Register membuat akun baru dan langsung mengembalikan token.
// Keunikan username (case-insensitive) dijaga oleh storage, bukan
// pre-check di sini, supaya registrasi konkuren tidak saling balapan.
func (s *Service) Register(ctx context.Context, username, password string) (string, error) {
	username = strings.TrimSpace(username)

	passwordHash, err := crypto.HashPassword(password)
	if err != nil {
		return "", err
	}

	id, err := s.users.CreateUser(ctx, username, passwordHash)
	if err != nil {
		return "", err
	}

	return s.tokens.Issue(id, username)
}

// Login memverifikasi kredensial dan mengembalikan token baru.
// User tidak ada dan password salah sama-sama menjadi ErrInvalidCredentials
// supaya username tidak bisa di-enumerate.
func (s *Service) Login(ctx context.Context, username, password string) (string, error) {
	user, err := s.users.FindByUsername(ctx, strings.TrimSpace(username))
	if err != nil {
		if errors.Is(err, ErrUserNotFound) {
			return "", ErrInvalidCredentials
		}
		return "", err
	}

	if !crypto.VerifyPassword(password, user.PasswordHash) {
		return "", ErrInvalidCredentials
	}

	return s.tokens.Issue(user.ID, user.Username)
}
