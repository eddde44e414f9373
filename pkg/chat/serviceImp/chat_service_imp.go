package serviceImp

import (
	"context"
	"strings"

	"go.uber.org/zap"

	"kisan/entities"
	"kisan/pkg/ai"
	"kisan/pkg/chat/repository"
	cultrepo "kisan/pkg/cultivation/repository"
)

type kbSearcher interface {
	Search(query string, k int) ([]entities.KBChunk, error)
}

type ChatSvc struct {
	llm          ai.Client
	repo         repository.ChatRepository
	cultivations cultrepo.CultivationRepository
	kb           kbSearcher
	log          *zap.Logger
}

func NewChatService(llm ai.Client, repo repository.ChatRepository, cults cultrepo.CultivationRepository, kb kbSearcher, log *zap.Logger) *ChatSvc {
	return &ChatSvc{llm: llm, repo: repo, cultivations: cults, kb: kb, log: log}
}

// Reply answers a farmer message, grounding the model with the active
// cultivation and any matching knowledge-base snippets. The conversation
// log is written in user/bot pairs; log failures never fail the reply.
func (s *ChatSvc) Reply(ctx context.Context, userID *uint, message, language string) (string, error) {
	activeCrop := ""
	if userID != nil {
		if cult, err := s.cultivations.ActiveByUser(*userID); err == nil && cult != nil {
			activeCrop = cult.CropName
		}
	}

	kbCtx := ""
	if s.kb != nil {
		if snips, err := s.kb.Search(message, 4); err == nil {
			var sb strings.Builder
			for _, ch := range snips {
				if sb.Len() > 4000 {
					break
				}
				sb.WriteString("\n---\n")
				sb.WriteString(ch.Text)
			}
			kbCtx = sb.String()
		}
	}

	reply, err := s.llm.Chat(ctx, message, language, activeCrop, kbCtx)
	if err != nil {
		s.log.Warn("chat completion failed", zap.Error(err))
		reply = "Sorry, the assistant is offline right now. Please try again later."
	}

	if userID != nil {
		if err := s.repo.Append(&entities.ChatMessage{UserID: *userID, Message: message, IsBot: false}); err != nil {
			s.log.Warn("chat save failed", zap.Error(err))
		} else if err := s.repo.Append(&entities.ChatMessage{UserID: *userID, Message: reply, IsBot: true}); err != nil {
			s.log.Warn("chat save failed", zap.Error(err))
		}
	}
	return reply, nil
}

type HistoryItem struct {
	Text  string `json:"text"`
	IsBot bool   `json:"isBot"`
}

func (s *ChatSvc) History(userID uint) ([]HistoryItem, error) {
	rows, err := s.repo.ByUser(userID)
	if err != nil {
		return nil, err
	}
	out := make([]HistoryItem, 0, len(rows))
	for _, r := range rows {
		out = append(out, HistoryItem{Text: r.Message, IsBot: r.IsBot})
	}
	return out, nil
}
