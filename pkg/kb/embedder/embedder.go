package embedder

import (
	"bytes"
	"context"
	"encoding/binary"
	"strings"

	openai "github.com/sashabaranov/go-openai"
)

// Client embeds text through an OpenAI-compatible embeddings endpoint.
type Client struct {
	api   *openai.Client
	model string
}

func New(endpoint, key, model string) *Client {
	cfg := openai.DefaultConfig(key)
	if endpoint != "" {
		cfg.BaseURL = strings.TrimRight(endpoint, "/") + "/v1"
	}
	return &Client{api: openai.NewClientWithConfig(cfg), model: model}
}

func (c *Client) Embed(ctx context.Context, texts []string) ([][]float32, error) {
	resp, err := c.api.CreateEmbeddings(ctx, openai.EmbeddingRequest{
		Model: openai.EmbeddingModel(c.model),
		Input: texts,
	})
	if err != nil {
		return nil, err
	}
	out := make([][]float32, len(resp.Data))
	for i := range resp.Data {
		out[i] = resp.Data[i].Embedding
	}
	return out, nil
}

func FloatsToBytes(v []float32) []byte {
	buf := new(bytes.Buffer)
	_ = binary.Write(buf, binary.LittleEndian, v)
	return buf.Bytes()
}

func BytesToFloats(b []byte) []float32 {
	n := len(b) / 4
	out := make([]float32, n)
	_ = binary.Read(bytes.NewReader(b), binary.LittleEndian, &out)
	return out
}
