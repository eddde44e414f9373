package voice

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"mime/multipart"
	"net/http"
	"strings"
	"time"
)

// Transcriber turns recorded speech into text.
type Transcriber interface {
	Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error)
}

// Synthesizer renders text to spoken audio (mp3 bytes).
type Synthesizer interface {
	Synthesize(ctx context.Context, text, language string) ([]byte, error)
}

type httpSpeech struct {
	endpoint string
	key      string
	client   *http.Client
}

// NewHTTPSpeech talks to a speech service exposing /transcribe and
// /synthesize. The same client serves both directions.
func NewHTTPSpeech(endpoint, key string) *httpSpeech {
	return &httpSpeech{
		endpoint: strings.TrimRight(endpoint, "/"),
		key:      key,
		client:   &http.Client{Timeout: 60 * time.Second},
	}
}

func (s *httpSpeech) Transcribe(ctx context.Context, audio []byte, filename, language string) (string, error) {
	var buf bytes.Buffer
	mw := multipart.NewWriter(&buf)
	fw, err := mw.CreateFormFile("audio", filename)
	if err != nil {
		return "", err
	}
	if _, err := fw.Write(audio); err != nil {
		return "", err
	}
	_ = mw.WriteField("language", language)
	if err := mw.Close(); err != nil {
		return "", err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/transcribe", &buf)
	if err != nil {
		return "", err
	}
	req.Header.Set("Content-Type", mw.FormDataContentType())
	if s.key != "" {
		req.Header.Set("Authorization", "Bearer "+s.key)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return "", err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return "", fmt.Errorf("speech service status %d", resp.StatusCode)
	}
	var out struct {
		Text string `json:"text"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", err
	}
	return strings.TrimSpace(out.Text), nil
}

func (s *httpSpeech) Synthesize(ctx context.Context, text, language string) ([]byte, error) {
	body, _ := json.Marshal(map[string]string{"text": text, "language": language})
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, s.endpoint+"/synthesize", bytes.NewReader(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")
	if s.key != "" {
		req.Header.Set("Authorization", "Bearer "+s.key)
	}
	resp, err := s.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("speech service status %d", resp.StatusCode)
	}
	return io.ReadAll(resp.Body)
}
