package models

import "time"

type User struct {
	ID           int       `json:"id"`
	Username     string    `json:"username"`
	PasswordHash string    `json:"-"`
	CreatedAt    time.Time `json:"created_at"`
}

type Task struct {
	ID          int        `json:"id"`
	UserID      int        `json:"user_id"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	Status      string     `json:"status"`
	Priority    string     `json:"priority"`
	DueDate     *time.Time `json:"due_date,omitempty"`
	CreatedAt   time.Time  `json:"created_at"`
	UpdatedAt   time.Time  `json:"updated_at"`
}

type SubTask struct {
	ID          int    `json:"id"`
	TaskID      int    `json:"task_id"`
	Title       string `json:"title"`
	IsCompleted bool   `json:"is_completed"`
}

type TimeLog struct {
	ID        int        `json:"id"`
	TaskID    int        `json:"task_id"`
	StartedAt time.Time  `json:"started_at"`
	EndedAt   *time.Time `json:"ended_at,omitempty"`
}

// IsRunning: ended_at yang masih null berarti timer sedang berjalan.
func (tl TimeLog) IsRunning() bool {
	return tl.EndedAt == nil
}

// DurationMinutes menghitung durasi log yang sudah selesai, nil jika masih berjalan.
func (tl TimeLog) DurationMinutes() *int {
	if tl.EndedAt == nil {
		return nil
	}
	minutes := int(tl.EndedAt.Sub(tl.StartedAt).Minutes())
	return &minutes
}
