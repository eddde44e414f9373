package controllerImp

import (
	"io"
	"net/http"
	"os"
	"path/filepath"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"
	"go.uber.org/zap"

	chatSvcImp "kisan/pkg/chat/serviceImp"
	"kisan/pkg/voice"
)

type VoiceCtrl struct {
	stt      voice.Transcriber
	tts      voice.Synthesizer
	chat     *chatSvcImp.ChatSvc
	audioDir string
	log      *zap.Logger
}

func New(stt voice.Transcriber, tts voice.Synthesizer, chat *chatSvcImp.ChatSvc, audioDir string, log *zap.Logger) *VoiceCtrl {
	return &VoiceCtrl{stt: stt, tts: tts, chat: chat, audioDir: audioDir, log: log}
}

// VoiceChat accepts a recorded question, answers it through the chat
// service and returns the reply plus a URL to the synthesized audio.
func (h *VoiceCtrl) VoiceChat(c echo.Context) error {
	if h.stt == nil || h.tts == nil {
		return c.JSON(http.StatusServiceUnavailable, map[string]string{"status": "error", "error": "voice service not configured"})
	}

	fh, err := c.FormFile("audio")
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "error": "audio file required"})
	}
	language := c.FormValue("language")
	if language == "" {
		language = "en"
	}

	f, err := fh.Open()
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "error": "cannot read audio"})
	}
	defer f.Close()
	audio, err := io.ReadAll(f)
	if err != nil {
		return c.JSON(http.StatusBadRequest, map[string]string{"status": "error", "error": "cannot read audio"})
	}

	ctx := c.Request().Context()
	userText, err := h.stt.Transcribe(ctx, audio, fh.Filename, language)
	if err != nil {
		h.log.Warn("transcription failed", zap.Error(err))
		return c.JSON(http.StatusBadGateway, map[string]string{"status": "error", "error": "could not transcribe audio"})
	}
	if userText == "" {
		return c.JSON(http.StatusOK, map[string]string{"status": "error", "error": "no speech detected"})
	}

	var userID *uint
	if v, ok := c.Get("uid").(uint); ok {
		userID = &v
	}
	reply, err := h.chat.Reply(ctx, userID, userText, language)
	if err != nil {
		return c.JSON(http.StatusInternalServerError, map[string]string{"status": "error", "error": err.Error()})
	}

	resp := map[string]any{"status": "success", "user_text": userText, "reply": reply}
	if mp3, err := h.tts.Synthesize(ctx, reply, language); err != nil {
		h.log.Warn("synthesis failed", zap.Error(err))
	} else if name, err := h.saveAudio(mp3); err != nil {
		h.log.Warn("audio save failed", zap.Error(err))
	} else {
		resp["audio_url"] = "/static/audio/" + name
	}
	return c.JSON(http.StatusOK, resp)
}

func (h *VoiceCtrl) saveAudio(mp3 []byte) (string, error) {
	if err := os.MkdirAll(h.audioDir, 0o755); err != nil {
		return "", err
	}
	name := "out_" + uuid.NewString() + ".mp3"
	if err := os.WriteFile(filepath.Join(h.audioDir, name), mp3, 0o644); err != nil {
		return "", err
	}
	return name, nil
}
