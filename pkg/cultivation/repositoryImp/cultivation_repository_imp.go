package repositoryImp

import (
	"errors"
	"time"

	"gorm.io/gorm"

	"kisan/entities"
	"kisan/pkg/cultivation/repository"
)

type cultRepo struct{ db *gorm.DB }

func New(db *gorm.DB) repository.CultivationRepository { return &cultRepo{db} }

func (r *cultRepo) StartNew(userID uint, cropName string, start time.Time) (*entities.Cultivation, error) {
	cult := &entities.Cultivation{
		UserID:    userID,
		CropName:  cropName,
		Status:    entities.CultivationActive,
		StartDate: start,
	}
	// Complete-prior + insert-new must not interleave with a concurrent
	// start for the same user.
	err := r.db.Transaction(func(tx *gorm.DB) error {
		if err := tx.Model(&entities.Cultivation{}).
			Where("user_id = ? AND status = ?", userID, entities.CultivationActive).
			Update("status", entities.CultivationCompleted).Error; err != nil {
			return err
		}
		return tx.Create(cult).Error
	})
	if err != nil {
		return nil, err
	}
	return cult, nil
}

func (r *cultRepo) ActiveByUser(userID uint) (*entities.Cultivation, error) {
	var c entities.Cultivation
	err := r.db.Where("user_id = ? AND status = ?", userID, entities.CultivationActive).First(&c).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cultRepo) CompleteActive(userID uint) error {
	return r.db.Model(&entities.Cultivation{}).
		Where("user_id = ? AND status = ?", userID, entities.CultivationActive).
		Update("status", entities.CultivationCompleted).Error
}

func (r *cultRepo) FindOwned(id, userID uint) (*entities.Cultivation, error) {
	var c entities.Cultivation
	if err := r.db.Where("id = ? AND user_id = ?", id, userID).First(&c).Error; err != nil {
		return nil, err
	}
	return &c, nil
}

func (r *cultRepo) CompletedByUser(userID uint) ([]entities.Cultivation, error) {
	var out []entities.Cultivation
	err := r.db.Where("user_id = ? AND status = ?", userID, entities.CultivationCompleted).
		Order("start_date DESC").Find(&out).Error
	return out, err
}

func (r *cultRepo) InsertTasks(ts []entities.ScheduleTask) error {
	if len(ts) == 0 {
		return nil
	}
	return r.db.Create(&ts).Error
}

func (r *cultRepo) TasksByCultivation(cultivationID uint) ([]entities.ScheduleTask, error) {
	var out []entities.ScheduleTask
	err := r.db.Where("cultivation_id = ?", cultivationID).Order("due_date ASC").Find(&out).Error
	return out, err
}

func (r *cultRepo) SetTaskCompleted(taskID uint, completed bool) error {
	return r.db.Model(&entities.ScheduleTask{}).Where("id = ?", taskID).
		Update("completed", completed).Error
}

func (r *cultRepo) InsertLedger(e *entities.LedgerEntry) error { return r.db.Create(e).Error }

func (r *cultRepo) LedgersByCultivation(cultivationID uint) ([]entities.LedgerEntry, error) {
	var out []entities.LedgerEntry
	err := r.db.Where("cultivation_id = ?", cultivationID).Order("date DESC").Find(&out).Error
	return out, err
}

func (r *cultRepo) SumLedger(cultivationID uint, entryType string) (float64, error) {
	var sum *float64
	err := r.db.Model(&entities.LedgerEntry{}).
		Where("cultivation_id = ? AND type = ?", cultivationID, entryType).
		Select("SUM(amount)").Scan(&sum).Error
	if err != nil {
		return 0, err
	}
	if sum == nil {
		return 0, nil
	}
	return *sum, nil
}
