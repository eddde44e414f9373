package croprank

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"sort"
	"strings"
	"time"
)

type Features struct {
	N           float64 `json:"N"`
	P           float64 `json:"P"`
	K           float64 `json:"K"`
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	PH          float64 `json:"ph"`
	Rainfall    float64 `json:"rainfall"`
}

type Scored struct {
	Crop       string  `json:"crop"`
	Confidence float64 `json:"confidence"`
}

// Ranker returns up to the top 3 crops, confidence descending. There is
// no fallback: an error here is fatal to the recommendation.
type Ranker interface {
	Rank(ctx context.Context, f Features) ([]Scored, error)
}

type httpRanker struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTPRanker talks to the tabular crop-classification model server.
func NewHTTPRanker(endpoint string) Ranker {
	return &httpRanker{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *httpRanker) Rank(ctx context.Context, f Features) ([]Scored, error) {
	b, _ := json.Marshal(f)
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(b))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("crop model: status %d", resp.StatusCode)
	}

	var out struct {
		Predictions []Scored `json:"predictions"`
	}
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return nil, err
	}
	if len(out.Predictions) == 0 {
		return nil, fmt.Errorf("crop model: empty prediction set")
	}
	return Top3(out.Predictions), nil
}

// Top3 enforces the ranking contract regardless of what the model
// server returned: confidence descending, at most three entries, stable
// for equal confidences.
func Top3(preds []Scored) []Scored {
	out := make([]Scored, len(preds))
	copy(out, preds)
	sort.SliceStable(out, func(i, j int) bool { return out[i].Confidence > out[j].Confidence })
	if len(out) > 3 {
		out = out[:3]
	}
	return out
}
