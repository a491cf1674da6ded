package services

import (
	"context"
	"errors"

	"gorm.io/gorm"

	"github.com/Shubhamagrahari9191/Todolist/internal/constants"
	apperrors "github.com/Shubhamagrahari9191/Todolist/internal/errors"
	model "github.com/Shubhamagrahari9191/Todolist/internal/models"
	repository "github.com/Shubhamagrahari9191/Todolist/internal/repositories"
)

type TaskService struct {
	repo *repository.TaskRepository
}

func NewTaskService(repo *repository.TaskRepository) *TaskService {
	return &TaskService{repo: repo}
}

type CreateTaskInput struct {
	UserID    string
	Title     string
	Subject   string
	Date      string
	StartTime string
	EndTime   string
	IsEvent   bool
}

// TaskPatch carries sparse update fields: nil means "leave untouched".
// Progress, when present, recomputes Status and wins over a Status sent in
// the same patch.
type TaskPatch struct {
	Title     *string
	Subject   *string
	Date      *string
	StartTime *string
	EndTime   *string
	IsEvent   *bool
	Status    *constants.TaskStatus
	Progress  *int
}

func (s *TaskService) ListTasks(ctx context.Context, userID string) ([]model.Task, error) {
	return s.repo.ListByUser(ctx, userID)
}

func (s *TaskService) CreateTask(ctx context.Context, input CreateTaskInput) (*model.Task, error) {
	if input.UserID == "" || input.Title == "" || input.Date == "" {
		return nil, apperrors.ErrMissingTaskFields
	}

	task := &model.Task{
		UserID:    input.UserID,
		Title:     input.Title,
		Subject:   defaultString(input.Subject, "General"),
		Date:      input.Date,
		StartTime: defaultString(input.StartTime, "09:00"),
		EndTime:   defaultString(input.EndTime, "10:00"),
		IsEvent:   input.IsEvent,
		Status:    constants.StatusPending,
		Progress:  0,
	}

	if err := s.repo.CreateTask(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func defaultString(value, fallback string) string {
	if value == "" {
		return fallback
	}
	return value
}

func (s *TaskService) UpdateTask(ctx context.Context, taskID string, patch TaskPatch) (*model.Task, error) {
	task, err := s.repo.FindByID(ctx, taskID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, apperrors.ErrTaskNotFound
		}
		return nil, err
	}

	if patch.Title != nil {
		task.Title = *patch.Title
	}
	if patch.Subject != nil {
		task.Subject = *patch.Subject
	}
	if patch.Date != nil {
		task.Date = *patch.Date
	}
	if patch.StartTime != nil {
		task.StartTime = *patch.StartTime
	}
	if patch.EndTime != nil {
		task.EndTime = *patch.EndTime
	}
	if patch.IsEvent != nil {
		task.IsEvent = *patch.IsEvent
	}
	if patch.Status != nil {
		task.Status = *patch.Status
	}
	if patch.Progress != nil {
		task.Progress = *patch.Progress
		task.Status = constants.StatusForProgress(*patch.Progress)
	}

	if err := s.repo.Update(ctx, task); err != nil {
		return nil, err
	}

	return task, nil
}

func (s *TaskService) DeleteTask(ctx context.Context, taskID string) error {
	deleted, err := s.repo.Delete(ctx, taskID)
	if err != nil {
		return err
	}
	if !deleted {
		return apperrors.ErrTaskNotFound
	}
	return nil
}
