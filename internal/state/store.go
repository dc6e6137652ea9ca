package state

import (
	"fmt"
	"sync"
	"time"

	"github.com/codescale/radar/internal/radar"
	"github.com/codescale/radar/internal/radarapi"
)

// Snapshot represents the latest radar data available to the UI.
type Snapshot struct {
	RadarDate           string
	Records             []radar.TrendRecord
	Health              radarapi.Health
	HasHealth           bool
	HasData             bool
	LastUpdated         time.Time // last poll, failed or not
	LastSuccess         time.Time // last poll that replaced the data
	LastError           error
	ConsecutiveFailures int
}

// IsOffline returns true when the backend has been unreachable for multiple polls.
func (s Snapshot) IsOffline() bool {
	return s.ConsecutiveFailures >= 2
}

// Payload is one successful poll result.
type Payload struct {
	RadarDate string
	Records   []radar.TrendRecord
	Health    *radarapi.Health
}

// Store coordinates concurrent updates to the snapshot.
type Store struct {
	mu       sync.RWMutex
	snapshot Snapshot
}

// Update replaces the stored snapshot. When err is non-nil the previous data is
// kept but the error is recorded for visibility.
func (s *Store) Update(payload Payload, err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if err != nil {
		s.snapshot.LastError = err
		s.snapshot.LastUpdated = time.Now()
		s.snapshot.ConsecutiveFailures++
		return
	}

	s.snapshot.RadarDate = payload.RadarDate
	s.snapshot.Records = cloneRecords(payload.Records)
	if payload.Health != nil {
		s.snapshot.Health = *payload.Health
		s.snapshot.HasHealth = true
	} else {
		s.snapshot.HasHealth = false
	}
	s.snapshot.HasData = true
	s.snapshot.LastError = nil
	s.snapshot.LastUpdated = time.Now()
	s.snapshot.LastSuccess = s.snapshot.LastUpdated
	s.snapshot.ConsecutiveFailures = 0
}

// Snapshot returns a copy of the current snapshot.
func (s *Store) Snapshot() Snapshot {
	s.mu.RLock()
	defer s.mu.RUnlock()

	snap := s.snapshot
	snap.Records = cloneRecords(s.snapshot.Records)
	if s.snapshot.LastError != nil {
		snap.LastError = fmt.Errorf("%w", s.snapshot.LastError)
	}
	return snap
}

func cloneRecords(records []radar.TrendRecord) []radar.TrendRecord {
	if len(records) == 0 {
		return nil
	}
	dup := make([]radar.TrendRecord, len(records))
	for i, rec := range records {
		rec.SignalEvidence = append([]string(nil), rec.SignalEvidence...)
		rec.NoiseIndicators = append([]string(nil), rec.NoiseIndicators...)
		dup[i] = rec
	}
	return dup
}
