package soil

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"strings"
	"time"
)

type Prediction struct {
	Label      string  `json:"label"`
	Confidence float64 `json:"confidence"` // [0,1]
}

// Estimator classifies a soil photo. A returned error means the model
// server itself failed; the caller decides how to degrade.
type Estimator interface {
	Classify(ctx context.Context, image []byte) (Prediction, error)
}

type httpEstimator struct {
	endpoint string
	httpc    *http.Client
}

// NewHTTPEstimator talks to the soil image-classification model server.
func NewHTTPEstimator(endpoint string) Estimator {
	return &httpEstimator{
		endpoint: strings.TrimRight(endpoint, "/"),
		httpc:    &http.Client{Timeout: 25 * time.Second},
	}
}

func (c *httpEstimator) Classify(ctx context.Context, image []byte) (Prediction, error) {
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.endpoint+"/predict", bytes.NewReader(image))
	if err != nil {
		return Prediction{Label: "Unknown"}, err
	}
	req.Header.Set("Content-Type", "application/octet-stream")

	resp, err := c.httpc.Do(req)
	if err != nil {
		return Prediction{Label: "Unknown"}, err
	}
	defer resp.Body.Close()
	if resp.StatusCode != http.StatusOK {
		return Prediction{Label: "Unknown"}, fmt.Errorf("soil model: status %d", resp.StatusCode)
	}

	var out Prediction
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return Prediction{Label: "Unknown"}, err
	}
	if out.Label == "" {
		out.Label = "Unknown"
	}
	return out, nil
}
