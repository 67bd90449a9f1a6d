// Package statefile is the JSON-file persistence gateway behind the schedule
// cache and the wellness history.
package statefile

import (
	"context"
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"

	"github.com/dawarpower/fitcoach-api/internal/domain/schedule"
	"github.com/dawarpower/fitcoach-api/internal/domain/wellness"
)

const wellnessCap = 200

// Snapshot is the on-disk shape: schedules keyed by profile fingerprint plus
// the capped wellness history.
type Snapshot struct {
	Schedules map[string]schedule.Response `json:"schedules"`
	Wellness  []wellness.Metric            `json:"wellness"`
}

// LoadReport counts records dropped during a best-effort reload.
type LoadReport struct {
	SkippedSchedules int
	SkippedWellness  int
}

// Gateway owns the state file. Writers replace one half of the snapshot at a
// time; the gateway keeps the other half from its last known state.
type Gateway struct {
	path string

	mu   sync.Mutex
	snap Snapshot
}

// New builds a gateway for the given path. Nothing is read until Load.
func New(path string) *Gateway {
	return &Gateway{
		path: path,
		snap: Snapshot{Schedules: make(map[string]schedule.Response)},
	}
}

// Load reads the state file. A missing file yields an empty snapshot; records
// that fail to parse are skipped and counted rather than aborting startup.
func (g *Gateway) Load() (Snapshot, LoadReport, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	var report LoadReport
	data, err := os.ReadFile(g.path)
	if err != nil {
		if os.IsNotExist(err) {
			return g.copySnapshotLocked(), report, nil
		}
		return Snapshot{}, report, fmt.Errorf("read state file: %w", err)
	}

	var raw struct {
		Schedules map[string]json.RawMessage `json:"schedules"`
		Wellness  []json.RawMessage          `json:"wellness"`
	}
	if err := json.Unmarshal(data, &raw); err != nil {
		return Snapshot{}, report, fmt.Errorf("parse state file: %w", err)
	}

	snap := Snapshot{Schedules: make(map[string]schedule.Response, len(raw.Schedules))}
	for key, payload := range raw.Schedules {
		var resp schedule.Response
		if err := json.Unmarshal(payload, &resp); err != nil {
			report.SkippedSchedules++
			continue
		}
		snap.Schedules[key] = resp
	}
	for _, payload := range raw.Wellness {
		var metric wellness.Metric
		if err := json.Unmarshal(payload, &metric); err != nil {
			report.SkippedWellness++
			continue
		}
		snap.Wellness = append(snap.Wellness, metric)
	}

	g.snap = snap
	return g.copySnapshotLocked(), report, nil
}

// SaveSchedules replaces the schedule half of the snapshot and flushes.
func (g *Gateway) SaveSchedules(_ context.Context, schedules map[string]schedule.Response) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	copied := make(map[string]schedule.Response, len(schedules))
	for key, resp := range schedules {
		copied[key] = resp
	}
	g.snap.Schedules = copied
	return g.flushLocked()
}

// SaveWellness replaces the wellness half of the snapshot and flushes.
func (g *Gateway) SaveWellness(_ context.Context, metrics []wellness.Metric) error {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.snap.Wellness = append([]wellness.Metric(nil), metrics...)
	return g.flushLocked()
}

func (g *Gateway) flushLocked() error {
	snap := g.snap
	if len(snap.Wellness) > wellnessCap {
		snap.Wellness = snap.Wellness[len(snap.Wellness)-wellnessCap:]
	}
	if snap.Schedules == nil {
		snap.Schedules = map[string]schedule.Response{}
	}
	if snap.Wellness == nil {
		snap.Wellness = []wellness.Metric{}
	}

	data, err := json.MarshalIndent(snap, "", "  ")
	if err != nil {
		return fmt.Errorf("marshal state: %w", err)
	}
	if dir := filepath.Dir(g.path); dir != "." {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("create state dir: %w", err)
		}
	}
	if err := os.WriteFile(g.path, data, 0o644); err != nil {
		return fmt.Errorf("write state file: %w", err)
	}
	return nil
}

func (g *Gateway) copySnapshotLocked() Snapshot {
	out := Snapshot{
		Schedules: make(map[string]schedule.Response, len(g.snap.Schedules)),
		Wellness:  append([]wellness.Metric(nil), g.snap.Wellness...),
	}
	for key, resp := range g.snap.Schedules {
		out.Schedules[key] = resp
	}
	return out
}
