package repository

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"todo-api/internal/models"
)

// TaskRepo menangani akses task. Setiap query dibatasi dengan user_id milik
// pemanggil: task yang tidak ada dan task milik akun lain sama-sama berakhir
// sebagai ErrNotFound.
type TaskRepo struct {
	DB *sql.DB
}

func NewTaskRepo(db *sql.DB) *TaskRepo {
	return &TaskRepo{DB: db}
}

// TaskFilter adalah parameter list task. Semua field opsional.
type TaskFilter struct {
	Status   string
	Priority string
	Query    string // substring judul, case-insensitive
	Sort     string // "duedate" | "createdat"
}

const taskColumns = "id, user_id, title, description, status, priority, due_date, created_at, updated_at"

func scanTask(row interface{ Scan(...interface{}) error }) (*models.Task, error) {
	var task models.Task
	var dueDate sql.NullTime
	err := row.Scan(&task.ID, &task.UserID, &task.Title, &task.Description,
		&task.Status, &task.Priority, &dueDate, &task.CreatedAt, &task.UpdatedAt)
	if err != nil {
		return nil, err
	}
	if dueDate.Valid {
		task.DueDate = &dueDate.Time
	}
	return &task, nil
}

func (r *TaskRepo) Create(ctx context.Context, task *models.Task) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO tasks (user_id, title, description, status, priority, due_date) VALUES ($1, $2, $3, $4, $5, $6) RETURNING id",
		task.UserID, task.Title, task.Description, task.Status, task.Priority, task.DueDate).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *TaskRepo) GetByID(ctx context.Context, id, userID int) (*models.Task, error) {
	row := r.DB.QueryRowContext(ctx,
		"SELECT "+taskColumns+" FROM tasks WHERE id = $1 AND user_id = $2",
		id, userID)
	task, err := scanTask(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return task, nil
}

// Exists adalah ownership guard: true hanya jika task dengan id tersebut ada
// DAN dimiliki oleh userID.
func (r *TaskRepo) Exists(ctx context.Context, id, userID int) (bool, error) {
	var exists bool
	err := r.DB.QueryRowContext(ctx,
		"SELECT EXISTS(SELECT 1 FROM tasks WHERE id = $1 AND user_id = $2)",
		id, userID).Scan(&exists)
	if err != nil {
		return false, err
	}
	return exists, nil
}

func (r *TaskRepo) List(ctx context.Context, userID int, filter TaskFilter) ([]models.Task, error) {
	query := "SELECT " + taskColumns + " FROM tasks WHERE user_id = $1"
	args := []interface{}{userID}

	if filter.Status != "" {
		args = append(args, filter.Status)
		query += fmt.Sprintf(" AND status = $%d", len(args))
	}
	if filter.Priority != "" {
		args = append(args, filter.Priority)
		query += fmt.Sprintf(" AND priority = $%d", len(args))
	}
	if filter.Query != "" {
		args = append(args, "%"+filter.Query+"%")
		query += fmt.Sprintf(" AND title ILIKE $%d", len(args))
	}

	switch filter.Sort {
	case "duedate":
		query += " ORDER BY due_date ASC NULLS LAST"
	case "createdat":
		query += " ORDER BY created_at ASC"
	default:
		query += " ORDER BY id ASC"
	}

	rows, err := r.DB.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	tasks := []models.Task{}
	for rows.Next() {
		task, err := scanTask(rows)
		if err != nil {
			return nil, err
		}
		tasks = append(tasks, *task)
	}
	return tasks, rows.Err()
}

func (r *TaskRepo) Update(ctx context.Context, task *models.Task) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE tasks SET title = $1, description = $2, status = $3, priority = $4, due_date = $5, updated_at = CURRENT_TIMESTAMP WHERE id = $6 AND user_id = $7",
		task.Title, task.Description, task.Status, task.Priority, task.DueDate, task.ID, task.UserID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}

func (r *TaskRepo) Delete(ctx context.Context, id, userID int) error {
	result, err := r.DB.ExecContext(ctx,
		"DELETE FROM tasks WHERE id = $1 AND user_id = $2", id, userID)
	if err != nil {
		return err
	}
	affected, err := result.RowsAffected()
	if err != nil {
		return err
	}
	if affected == 0 {
		return ErrNotFound
	}
	return nil
}
