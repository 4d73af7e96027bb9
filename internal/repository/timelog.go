package repository

import (
	"context"
	"database/sql"
	"errors"
	"time"

	"todo-api/internal/models"

	"github.com/lib/pq"
)

// TimeLogRepo menangani pencatatan waktu per task. State machine per task:
// Idle -> Running saat start, Running -> Idle saat stop. Maksimal satu log
// berjalan per task, dijaga oleh partial unique index time_logs_one_running_idx.
type TimeLogRepo struct {
	DB *sql.DB
}

func NewTimeLogRepo(db *sql.DB) *TimeLogRepo {
	return &TimeLogRepo{DB: db}
}

func scanTimeLog(row interface{ Scan(...interface{}) error }) (*models.TimeLog, error) {
	var timeLog models.TimeLog
	var endedAt sql.NullTime
	if err := row.Scan(&timeLog.ID, &timeLog.TaskID, &timeLog.StartedAt, &endedAt); err != nil {
		return nil, err
	}
	if endedAt.Valid {
		timeLog.EndedAt = &endedAt.Time
	}
	return &timeLog, nil
}

func (r *TimeLogRepo) ListByTask(ctx context.Context, taskID int) ([]models.TimeLog, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, task_id, started_at, ended_at FROM time_logs WHERE task_id = $1 ORDER BY started_at DESC",
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	timeLogs := []models.TimeLog{}
	for rows.Next() {
		timeLog, err := scanTimeLog(rows)
		if err != nil {
			return nil, err
		}
		timeLogs = append(timeLogs, *timeLog)
	}
	return timeLogs, rows.Err()
}

// Start membuat log berjalan baru untuk task. Insert-nya sendiri adalah
// pemeriksaan: jika sudah ada log berjalan, partial unique index menolak
// baris kedua dan kita menerjemahkannya menjadi ErrTimerRunning. Dua start
// konkuren tidak mungkin dua-duanya berhasil.
func (r *TimeLogRepo) Start(ctx context.Context, taskID int, startedAt time.Time) (*models.TimeLog, error) {
	timeLog := models.TimeLog{TaskID: taskID, StartedAt: startedAt}
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO time_logs (task_id, started_at) VALUES ($1, $2) RETURNING id",
		taskID, startedAt).Scan(&timeLog.ID)
	if err != nil {
		var pqErr *pq.Error
		if errors.As(err, &pqErr) && pqErr.Code == "23505" {
			return nil, ErrTimerRunning
		}
		return nil, err
	}
	return &timeLog, nil
}

// Running mengembalikan log yang sedang berjalan untuk task, atau
// ErrTimerNotRunning.
func (r *TimeLogRepo) Running(ctx context.Context, taskID int) (*models.TimeLog, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT id, task_id, started_at, ended_at FROM time_logs WHERE task_id = $1 AND ended_at IS NULL",
		taskID)
	timeLog, err := scanTimeLog(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrTimerNotRunning
		}
		return nil, err
	}
	return timeLog, nil
}

// Stop menghentikan log yang berjalan. endedAt harus >= started_at.
// Transisi dilakukan dengan UPDATE ... WHERE ended_at IS NULL sehingga dua
// stop konkuren tidak bisa dua-duanya berhasil.
func (r *TimeLogRepo) Stop(ctx context.Context, taskID int, endedAt time.Time) (*models.TimeLog, error) {
	running, err := r.Running(ctx, taskID)
	if err != nil {
		return nil, err
	}
	if endedAt.Before(running.StartedAt) {
		return nil, ErrEndBeforeStart
	}

	result, err := r.DB.ExecContext(ctx,
		"UPDATE time_logs SET ended_at = $1 WHERE id = $2 AND ended_at IS NULL",
		endedAt, running.ID)
	if err != nil {
		return nil, err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return nil, err
	}
	if affected == 0 {
		// Kalah balapan dengan stop lain
		return nil, ErrTimerNotRunning
	}

	running.EndedAt = &endedAt
	return running, nil
}
