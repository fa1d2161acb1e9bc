package compliance

import (
	"fmt"
	"time"
)

// AddOrder journals an order against the snapshot for its step,
// creating the snapshot when it is the step's first order
func (m *Manager) AddOrder(offset int, timestamp time.Time, o SnapshotOrder) {
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		if m.Snapshots[i].Offset == offset {
			m.Snapshots[i].Orders = append(m.Snapshots[i].Orders, o)
			return
		}
	}
	m.Snapshots = append(m.Snapshots, Snapshot{
		Offset:    offset,
		Timestamp: timestamp,
		Orders:    []SnapshotOrder{o},
	})
}

// GetSnapshotAtOffset returns the orders journalled for one step
func (m *Manager) GetSnapshotAtOffset(offset int) (Snapshot, error) {
	for i := len(m.Snapshots) - 1; i >= 0; i-- {
		if m.Snapshots[i].Offset == offset {
			return m.Snapshots[i], nil
		}
	}
	return Snapshot{}, fmt.Errorf("%w at offset %v", errSnapshotNotFound, offset)
}

// GetLatestSnapshot returns the most recent snapshot, which is empty
// when no order has been placed yet
func (m *Manager) GetLatestSnapshot() Snapshot {
	if len(m.Snapshots) == 0 {
		return Snapshot{}
	}
	return m.Snapshots[len(m.Snapshots)-1]
}

// Reset returns the journal to defaults
func (m *Manager) Reset() {
	m.Snapshots = nil
}
