package serviceImp

import (
	"context"
	"strings"
	"time"

	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/ai"
	"kisan/pkg/cultivation/repository"
	"kisan/pkg/cultivation/service"
)

type CultivationSvc struct {
	repo repository.CultivationRepository
	llm  ai.Client
	log  *zap.Logger
	now  func() time.Time
}

func NewCultivationService(repo repository.CultivationRepository, llm ai.Client, log *zap.Logger) *CultivationSvc {
	return &CultivationSvc{repo: repo, llm: llm, log: log, now: time.Now}
}

// Start opens a new ACTIVE cultivation, force-completing any prior one,
// and materializes an LLM-generated task schedule. A failed or malformed
// schedule leaves the cultivation with no tasks; starting still succeeds.
func (s *CultivationSvc) Start(ctx context.Context, userID uint, cropName string) (*service.StartResult, error) {
	cropName = strings.TrimSpace(cropName)
	if cropName == "" {
		return nil, service.ErrCropNameRequired
	}

	start := s.now()
	cult, err := s.repo.StartNew(userID, cropName, start)
	if err != nil {
		return nil, err
	}

	specs, err := s.llm.GenerateSchedule(ctx, cropName)
	if err != nil {
		s.log.Warn("schedule generation failed", zap.String("crop", cropName), zap.Error(err))
		specs = nil
	}
	tasks := make([]entities.ScheduleTask, 0, len(specs))
	for _, t := range specs {
		tasks = append(tasks, entities.ScheduleTask{
			CultivationID: cult.ID,
			TaskName:      t.TaskName,
			DueDate:       start.AddDate(0, 0, t.DaysFromStart),
		})
	}
	if err := s.repo.InsertTasks(tasks); err != nil {
		s.log.Warn("schedule insert failed", zap.Uint("cultivation_id", cult.ID), zap.Error(err))
		tasks = nil
	}

	return &service.StartResult{CultivationID: cult.ID, Tasks: len(tasks)}, nil
}

func (s *CultivationSvc) Active(userID uint) (*service.ActiveView, error) {
	cult, err := s.repo.ActiveByUser(userID)
	if err != nil {
		return nil, err
	}
	if cult == nil {
		return nil, nil
	}
	return s.view(cult)
}

func (s *CultivationSvc) view(cult *entities.Cultivation) (*service.ActiveView, error) {
	schedules, err := s.repo.TasksByCultivation(cult.ID)
	if err != nil {
		return nil, err
	}
	ledgers, err := s.repo.LedgersByCultivation(cult.ID)
	if err != nil {
		return nil, err
	}
	return &service.ActiveView{Cultivation: *cult, Schedules: schedules, Ledgers: ledgers}, nil
}

// UpdateTask toggles completion by task id. Ownership is not checked
// here; see the design notes.
func (s *CultivationSvc) UpdateTask(taskID uint, completed bool) error {
	return s.repo.SetTaskCompleted(taskID, completed)
}

func (s *CultivationSvc) AddLedger(userID uint, in service.LedgerInput) error {
	cult, err := s.repo.ActiveByUser(userID)
	if err != nil {
		return err
	}
	if cult == nil {
		return service.ErrNoActiveCultivation
	}
	return s.repo.InsertLedger(&entities.LedgerEntry{
		CultivationID: cult.ID,
		Type:          in.Type,
		Amount:        in.Amount,
		Category:      in.Category,
		Notes:         in.Notes,
		Date:          s.now(),
	})
}

// Finish is idempotent: with nothing active it is a no-op.
func (s *CultivationSvc) Finish(userID uint) error {
	return s.repo.CompleteActive(userID)
}

func (s *CultivationSvc) History(userID uint) ([]service.HistoryItem, error) {
	cults, err := s.repo.CompletedByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]service.HistoryItem, 0, len(cults))
	for _, c := range cults {
		profit, err := s.repo.SumLedger(c.ID, entities.LedgerProfit)
		if err != nil {
			return nil, err
		}
		expense, err := s.repo.SumLedger(c.ID, entities.LedgerExpense)
		if err != nil {
			return nil, err
		}
		out = append(out, service.HistoryItem{
			ID:        c.ID,
			CropName:  c.CropName,
			StartDate: c.StartDate.Format("2006-01-02"),
			Profit:    profit,
			Expense:   expense,
			Net:       profit - expense,
		})
	}
	return out, nil
}

func (s *CultivationSvc) HistoryDetail(userID, cultivationID uint) (*service.ActiveView, error) {
	cult, err := s.repo.FindOwned(cultivationID, userID)
	if err != nil {
		return nil, service.ErrNotFound
	}
	return s.view(cult)
}
