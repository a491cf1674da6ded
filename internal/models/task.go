package model

import (
	"time"

	"github.com/Shubhamagrahari9191/Todolist/internal/constants"
)

// Task is a planner entry: a scheduled task or an all-day event.
// Date is a YYYY-MM-DD string, StartTime/EndTime are HH:MM strings.
// Status is derived from Progress whenever an update supplies Progress.
type Task struct {
	ID        string               `gorm:"primaryKey;size:36" json:"id"`
	UserID    string               `gorm:"index;not null" json:"userId"`
	Title     string               `gorm:"not null" json:"title"`
	Subject   string               `json:"subject"`
	Date      string               `gorm:"size:10" json:"date"`
	StartTime string               `gorm:"size:5" json:"startTime"`
	EndTime   string               `gorm:"size:5" json:"endTime"`
	IsEvent   bool                 `json:"isEvent"`
	Status    constants.TaskStatus `gorm:"type:varchar(20);not null" json:"status"`
	Progress  int                  `gorm:"check:progress >= 0 AND progress <= 100" json:"progress"`
	CreatedAt time.Time            `json:"createdAt"`
}
