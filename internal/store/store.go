// Package store keeps parsed resumes in memory between requests.
package store

import (
	"fmt"
	"sync"
	"time"
)

// Record is one parsed resume.
type Record struct {
	Text     string
	Skills   []string
	Filename string
}

// Store maps resume ids to parsed records.
type Store interface {
	Save(record Record) string
	Get(id string) (Record, bool)
}

type entry struct {
	record  Record
	savedAt time.Time
}

// Memory is a process-local Store with sequential ids and optional TTL
// expiry. A zero TTL keeps records for the lifetime of the process.
type Memory struct {
	mu      sync.RWMutex
	ttl     time.Duration
	next    int
	records map[string]entry
	now     func() time.Time
}

func NewMemory(ttl time.Duration) *Memory {
	return &Memory{
		ttl:     ttl,
		records: make(map[string]entry),
		now:     time.Now,
	}
}

// Save stores the record and returns its id. Expired records are evicted on
// every insert, so an idle store does not grow without bound under load.
func (m *Memory) Save(record Record) string {
	m.mu.Lock()
	defer m.mu.Unlock()

	m.evictLocked()

	m.next++
	id := fmt.Sprintf("resume_%d", m.next)
	m.records[id] = entry{record: record, savedAt: m.now()}

	return id
}

// Get returns the record for id. Expired records are reported as missing.
func (m *Memory) Get(id string) (Record, bool) {
	m.mu.RLock()
	defer m.mu.RUnlock()

	stored, ok := m.records[id]
	if !ok || m.expired(stored) {
		return Record{}, false
	}

	return stored.record, true
}

func (m *Memory) expired(e entry) bool {
	return m.ttl > 0 && m.now().Sub(e.savedAt) > m.ttl
}

func (m *Memory) evictLocked() {
	if m.ttl <= 0 {
		return
	}
	for id, stored := range m.records {
		if m.expired(stored) {
			delete(m.records, id)
		}
	}
}
