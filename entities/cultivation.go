package entities

import "time"

const (
	CultivationActive    = "ACTIVE"
	CultivationCompleted = "COMPLETED"
)

const (
	LedgerProfit  = "PROFIT"
	LedgerExpense = "EXPENSE"
)

type Cultivation struct {
	ID        uint      `gorm:"primaryKey" json:"id"`
	UserID    uint      `gorm:"index" json:"user_id"`
	CropName  string    `json:"crop_name"`
	Status    string    `gorm:"index" json:"status"` // ACTIVE|COMPLETED
	StartDate time.Time `json:"start_date"`
	CreatedAt time.Time
}

type ScheduleTask struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CultivationID uint      `gorm:"index" json:"cultivation_id"`
	TaskName      string    `json:"task_name"`
	DueDate       time.Time `json:"due_date"`
	Completed     bool      `json:"completed"`
	CreatedAt     time.Time
	UpdatedAt     time.Time
}

type LedgerEntry struct {
	ID            uint      `gorm:"primaryKey" json:"id"`
	CultivationID uint      `gorm:"index" json:"cultivation_id"`
	Type          string    `json:"type"` // PROFIT|EXPENSE
	Amount        float64   `json:"amount"`
	Category      string    `json:"category"`
	Notes         string    `json:"notes"`
	Date          time.Time `json:"date"`
}
