package status

import (
	"sync"
	"sync/atomic"
)

const (
	StateStarting = "starting"
	StateRunning  = "running"
	StateError    = "error"
	StateLaunched = "instance launched"
)

// Status is the last-known state of the watch loop, served as-is by the
// health endpoint.
type Status struct {
	Status string      `json:"status"`
	Error  string      `json:"error,omitempty"`
	Result interface{} `json:"result,omitempty"`
}

// Store holds the current Status. The watcher is the only writer and every
// transition replaces the value wholesale, so readers get a complete
// snapshot without locking.
type Store struct {
	current atomic.Value

	mu      sync.Mutex
	metrics map[string]float64
}

func NewStore() *Store {
	s := &Store{
		metrics: map[string]float64{},
	}
	s.current.Store(Status{Status: StateStarting})
	return s
}

// Get returns the most recently stored snapshot. It never blocks.
func (s *Store) Get() Status {
	return s.current.Load().(Status)
}

func (s *Store) SetRunning() {
	s.current.Store(Status{Status: StateRunning})
}

func (s *Store) SetError(err error) {
	s.current.Store(Status{Status: StateError, Error: err.Error()})
}

func (s *Store) SetLaunched(result interface{}) {
	s.current.Store(Status{Status: StateLaunched, Result: result})
}

func (s *Store) UpdateMetric(name string, value float64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.metrics[name] = value
}

func (s *Store) Metrics() map[string]float64 {
	s.mu.Lock()
	defer s.mu.Unlock()

	m := map[string]float64{}
	for k, v := range s.metrics {
		m[k] = v
	}
	return m
}
