package weather

import "context"

type Snapshot struct {
	Temperature float64 `json:"temperature"`
	Humidity    float64 `json:"humidity"`
	Rainfall    float64 `json:"rainfall"`
	Location    string  `json:"location"`
}

// Resolver never fails: any upstream problem yields Fallback().
type Resolver interface {
	Current(ctx context.Context, lat, lon float64) Snapshot
}

// Fallback is the regional-average snapshot used when the upstream
// weather API is unreachable or returns garbage.
func Fallback() Snapshot {
	return Snapshot{Temperature: 30.0, Humidity: 70.0, Rainfall: 150.0}
}
