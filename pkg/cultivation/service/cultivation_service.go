package service

import (
	"context"
	"errors"

	"kisan/entities"
)

var (
	ErrCropNameRequired    = errors.New("crop name required")
	ErrNoActiveCultivation = errors.New("no active cultivation")
	// ErrNotFound covers both true absence and non-ownership; the two
	// are deliberately indistinguishable to the caller.
	ErrNotFound = errors.New("cultivation not found or unauthorized")
)

type StartResult struct {
	CultivationID uint `json:"cultivation_id"`
	Tasks         int  `json:"tasks"`
}

type ActiveView struct {
	Cultivation entities.Cultivation   `json:"cultivation"`
	Schedules   []entities.ScheduleTask `json:"schedules"`
	Ledgers     []entities.LedgerEntry  `json:"ledgers"`
}

type LedgerInput struct {
	Type     string  `json:"type"` // PROFIT|EXPENSE
	Amount   float64 `json:"amount"`
	Category string  `json:"category"`
	Notes    string  `json:"notes"`
}

type HistoryItem struct {
	ID        uint    `json:"id"`
	CropName  string  `json:"crop_name"`
	StartDate string  `json:"start_date"`
	Profit    float64 `json:"profit"`
	Expense   float64 `json:"expense"`
	Net       float64 `json:"net"`
}

type CultivationService interface {
	Start(ctx context.Context, userID uint, cropName string) (*StartResult, error)
	Active(userID uint) (*ActiveView, error) // nil view means none active
	UpdateTask(taskID uint, completed bool) error
	AddLedger(userID uint, in LedgerInput) error
	Finish(userID uint) error
	History(userID uint) ([]HistoryItem, error)
	HistoryDetail(userID, cultivationID uint) (*ActiveView, error)
}
