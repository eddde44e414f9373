package repository

import (
	"time"

	"kisan/entities"
)

type CultivationRepository interface {
	// StartNew completes any prior ACTIVE cultivation for the user and
	// inserts the new one in a single transaction.
	StartNew(userID uint, cropName string, start time.Time) (*entities.Cultivation, error)
	ActiveByUser(userID uint) (*entities.Cultivation, error)
	CompleteActive(userID uint) error
	FindOwned(id, userID uint) (*entities.Cultivation, error)
	CompletedByUser(userID uint) ([]entities.Cultivation, error)

	InsertTasks(ts []entities.ScheduleTask) error
	TasksByCultivation(cultivationID uint) ([]entities.ScheduleTask, error)
	SetTaskCompleted(taskID uint, completed bool) error

	InsertLedger(e *entities.LedgerEntry) error
	LedgersByCultivation(cultivationID uint) ([]entities.LedgerEntry, error)
	SumLedger(cultivationID uint, entryType string) (float64, error)
}
