package serviceImp

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/ai"
	"kisan/pkg/weather"
)

type fakeLLM struct {
	reply      string
	err        error
	gotCrop    string
	gotKB      string
	gotMessage string
}

func (f *fakeLLM) Explain(ctx context.Context, crop, soilType string, w weather.Snapshot, confidence float64, language string) (string, error) {
	return "", nil
}

func (f *fakeLLM) Chat(ctx context.Context, message, language, activeCrop, kbContext string) (string, error) {
	f.gotMessage, f.gotCrop, f.gotKB = message, activeCrop, kbContext
	return f.reply, f.err
}

func (f *fakeLLM) GenerateSchedule(ctx context.Context, cropName string) ([]ai.TaskSpec, error) {
	return nil, nil
}

type fakeChatRepo struct {
	msgs      []entities.ChatMessage
	appendErr error
}

func (f *fakeChatRepo) Append(m *entities.ChatMessage) error {
	if f.appendErr != nil {
		return f.appendErr
	}
	f.msgs = append(f.msgs, *m)
	return nil
}

func (f *fakeChatRepo) ByUser(userID uint) ([]entities.ChatMessage, error) { return f.msgs, nil }

type fakeCultRepo struct{ active *entities.Cultivation }

func (f *fakeCultRepo) StartNew(userID uint, cropName string, start time.Time) (*entities.Cultivation, error) {
	return nil, nil
}
func (f *fakeCultRepo) ActiveByUser(userID uint) (*entities.Cultivation, error) {
	return f.active, nil
}
func (f *fakeCultRepo) CompleteActive(userID uint) error { return nil }
func (f *fakeCultRepo) FindOwned(id, userID uint) (*entities.Cultivation, error) {
	return nil, errors.New("not found")
}
func (f *fakeCultRepo) CompletedByUser(userID uint) ([]entities.Cultivation, error) {
	return nil, nil
}
func (f *fakeCultRepo) InsertTasks(ts []entities.ScheduleTask) error { return nil }
func (f *fakeCultRepo) TasksByCultivation(cultivationID uint) ([]entities.ScheduleTask, error) {
	return nil, nil
}
func (f *fakeCultRepo) SetTaskCompleted(taskID uint, completed bool) error { return nil }
func (f *fakeCultRepo) InsertLedger(e *entities.LedgerEntry) error         { return nil }
func (f *fakeCultRepo) LedgersByCultivation(cultivationID uint) ([]entities.LedgerEntry, error) {
	return nil, nil
}
func (f *fakeCultRepo) SumLedger(cultivationID uint, entryType string) (float64, error) {
	return 0, nil
}

type fakeSearcher struct{ hits []entities.KBChunk }

func (f fakeSearcher) Search(query string, k int) ([]entities.KBChunk, error) { return f.hits, nil }

func TestReplyIncludesActiveCropContext(t *testing.T) {
	llm := &fakeLLM{reply: "keep the field flooded"}
	cults := &fakeCultRepo{active: &entities.Cultivation{CropName: "Rice"}}
	svc := NewChatService(llm, &fakeChatRepo{}, cults, nil, zap.NewNop())

	uid := uint(1)
	reply, err := svc.Reply(context.Background(), &uid, "how much water?", "en")
	require.NoError(t, err)
	assert.Equal(t, "keep the field flooded", reply)
	assert.Equal(t, "Rice", llm.gotCrop)
}

func TestReplyAnonymousSkipsPersistence(t *testing.T) {
	llm := &fakeLLM{reply: "hello"}
	repo := &fakeChatRepo{}
	svc := NewChatService(llm, repo, &fakeCultRepo{}, nil, zap.NewNop())

	_, err := svc.Reply(context.Background(), nil, "hi", "en")
	require.NoError(t, err)
	assert.Empty(t, repo.msgs)
	assert.Empty(t, llm.gotCrop)
}

func TestReplyPersistsUserBotPair(t *testing.T) {
	llm := &fakeLLM{reply: "use urea in splits"}
	repo := &fakeChatRepo{}
	svc := NewChatService(llm, repo, &fakeCultRepo{}, nil, zap.NewNop())

	uid := uint(5)
	_, err := svc.Reply(context.Background(), &uid, "fertilizer for rice?", "en")
	require.NoError(t, err)

	require.Len(t, repo.msgs, 2)
	assert.Equal(t, "fertilizer for rice?", repo.msgs[0].Message)
	assert.False(t, repo.msgs[0].IsBot)
	assert.Equal(t, "use urea in splits", repo.msgs[1].Message)
	assert.True(t, repo.msgs[1].IsBot)
}

func TestReplyLLMFailureReturnsApology(t *testing.T) {
	llm := &fakeLLM{err: errors.New("timeout")}
	svc := NewChatService(llm, &fakeChatRepo{}, &fakeCultRepo{}, nil, zap.NewNop())

	reply, err := svc.Reply(context.Background(), nil, "hi", "en")
	require.NoError(t, err)
	assert.Contains(t, reply, "offline")
}

func TestReplyPersistFailureDoesNotFail(t *testing.T) {
	llm := &fakeLLM{reply: "ok"}
	repo := &fakeChatRepo{appendErr: errors.New("disk full")}
	svc := NewChatService(llm, repo, &fakeCultRepo{}, nil, zap.NewNop())

	uid := uint(5)
	reply, err := svc.Reply(context.Background(), &uid, "hi", "en")
	require.NoError(t, err)
	assert.Equal(t, "ok", reply)
}

func TestReplyGroundsOnKBSnippets(t *testing.T) {
	llm := &fakeLLM{reply: "ok"}
	kb := fakeSearcher{hits: []entities.KBChunk{{Text: "apply MOP at tillering"}}}
	svc := NewChatService(llm, &fakeChatRepo{}, &fakeCultRepo{}, kb, zap.NewNop())

	_, err := svc.Reply(context.Background(), nil, "potash timing?", "en")
	require.NoError(t, err)
	assert.Contains(t, llm.gotKB, "apply MOP at tillering")
}

func TestHistoryMapsMessages(t *testing.T) {
	repo := &fakeChatRepo{msgs: []entities.ChatMessage{
		{Message: "hi", IsBot: false},
		{Message: "hello farmer", IsBot: true},
	}}
	svc := NewChatService(&fakeLLM{}, repo, &fakeCultRepo{}, nil, zap.NewNop())

	items, err := svc.History(1)
	require.NoError(t, err)
	require.Len(t, items, 2)
	assert.Equal(t, HistoryItem{Text: "hi", IsBot: false}, items[0])
	assert.Equal(t, HistoryItem{Text: "hello farmer", IsBot: true}, items[1])
}
