package repository

import (
	"context"
	"database/sql"
	"errors"

	"todo-api/internal/models"
)

// SubTaskRepo menangani checklist item di bawah sebuah task.
// Ownership ke akun bersifat transitif lewat parent task; pemeriksaan itu
// dilakukan pemanggil dengan TaskRepo.Exists.
type SubTaskRepo struct {
	DB *sql.DB
}

func NewSubTaskRepo(db *sql.DB) *SubTaskRepo {
	return &SubTaskRepo{DB: db}
}

func (r *SubTaskRepo) Create(ctx context.Context, subTask *models.SubTask) (int, error) {
	var id int
	err := r.DB.QueryRowContext(ctx,
		"INSERT INTO sub_tasks (task_id, title, is_completed) VALUES ($1, $2, $3) RETURNING id",
		subTask.TaskID, subTask.Title, subTask.IsCompleted).Scan(&id)
	if err != nil {
		return 0, err
	}
	return id, nil
}

func (r *SubTaskRepo) GetByID(ctx context.Context, id int) (*models.SubTask, error) {
	var subTask models.SubTask
	err := r.DB.QueryRowContext(ctx,
		"SELECT id, task_id, title, is_completed FROM sub_tasks WHERE id = $1",
		id).Scan(&subTask.ID, &subTask.TaskID, &subTask.Title, &subTask.IsCompleted)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &subTask, nil
}

func (r *SubTaskRepo) ListByTask(ctx context.Context, taskID int) ([]models.SubTask, error) {
	rows, err := r.DB.QueryContext(ctx,
		"SELECT id, task_id, title, is_completed FROM sub_tasks WHERE task_id = $1 ORDER BY id ASC",
		taskID)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	subTasks := []models.SubTask{}
	for rows.Next() {
		var subTask models.SubTask
		if err := rows.Scan(&subTask.ID, &subTask.TaskID, &subTask.Title, &subTask.IsCompleted); err != nil {
			return nil, err
		}
		subTasks = append(subTasks, subTask)
	}
	return subTasks, rows.Err()
}

func (r *SubTaskRepo) Update(ctx context.Context, subTask *models.SubTask) error {
	result, err := r.DB.ExecContext(ctx,
		"UPDATE sub_tasks SET title = $1, is_completed = $2 WHERE id = $3",
		subTask.Title, subTask.IsCompleted, subTask.ID)
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

func (r *SubTaskRepo) Delete(ctx context.Context, id int) error {
	result, err := r.DB.ExecContext(ctx, "DELETE FROM sub_tasks WHERE id = $1", id)
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
