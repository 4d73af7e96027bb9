package auth

import "errors"

var (
	// ErrDuplicateUsername: username sudah terpakai (perbandingan case-insensitive).
	ErrDuplicateUsername = errors.New("username already exists")

	// ErrInvalidCredentials mencakup user tidak ada DAN password salah.
	// Keduanya tidak pernah dibedakan ke pemanggil.
	ErrInvalidCredentials = errors.New("invalid username or password")

	// ErrUnauthenticated: token hilang, rusak, kedaluwarsa, atau salah tanda tangan.
	// Semua penyebab dilaporkan seragam.
	ErrUnauthenticated = errors.New("unauthenticated")

	// ErrUserNotFound dikembalikan oleh UserStore; service menerjemahkannya
	// menjadi ErrInvalidCredentials sebelum sampai ke handler.
	ErrUserNotFound = errors.New("user not found")
)
