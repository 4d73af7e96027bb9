package repository

import "errors"

var (
	// ErrNotFound mencakup record yang tidak ada DAN record milik akun lain.
	// Keduanya sengaja tidak dibedakan supaya keberadaan data user lain
	// tidak bocor.
	ErrNotFound = errors.New("record not found")

	// ErrTimerRunning: task sudah punya time log yang berjalan.
	ErrTimerRunning = errors.New("task already has a running time log")

	// ErrTimerNotRunning: tidak ada time log berjalan untuk dihentikan.
	ErrTimerNotRunning = errors.New("task has no running time log")

	// ErrEndBeforeStart: timestamp akhir mendahului timestamp mulai.
	ErrEndBeforeStart = errors.New("end time cannot be earlier than start time")
)
