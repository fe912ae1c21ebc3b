package usecase

import (
	"slices"
	"sync"
	"sync/atomic"

	"mesa-pacing/internal/core/domain"
)

// campaignCell owns one campaign's pacing state. Every read-modify-write of
// the state happens under mu, so an ingestion and a tick never interleave.
type campaignCell struct {
	mu    sync.Mutex
	state *domain.PacingState

	// busy is set while an evaluation of this cell is running. It keeps two
	// ticks from evaluating the same campaign at once.
	busy atomic.Bool
}

func (c *campaignCell) snapshot() *domain.PacingState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state.Clone()
}

// StateStore is the arena of per-campaign cells keyed by campaign ID. Its
// lock only guards membership; contention on state is confined to a cell.
type StateStore struct {
	mu      sync.RWMutex
	cells   map[int64]*campaignCell
	retired map[int64]struct{}
}

// NewStateStore returns an empty store.
func NewStateStore() *StateStore {
	return &StateStore{
		cells:   make(map[int64]*campaignCell),
		retired: make(map[int64]struct{}),
	}
}

func (s *StateStore) get(id int64) *campaignCell {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.cells[id]
}

// put installs fresh state for its campaign, replacing any previous period.
func (s *StateStore) put(st *domain.PacingState) *campaignCell {
	c := &campaignCell{state: st}
	s.mu.Lock()
	defer s.mu.Unlock()
	s.cells[st.Config.CampaignID] = c
	delete(s.retired, st.Config.CampaignID)
	return c
}

// removeCell evicts id only if it is still backed by c.
func (s *StateStore) removeCell(id int64, c *campaignCell) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cells[id] != c {
		return false
	}
	delete(s.cells, id)
	return true
}

// retire evicts id and remembers that the config store no longer knows it.
func (s *StateStore) retire(id int64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.cells, id)
	s.retired[id] = struct{}{}
}

func (s *StateStore) isRetired(id int64) bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	_, ok := s.retired[id]
	return ok
}

// ids returns the campaign IDs with state in ascending order.
func (s *StateStore) ids() []int64 {
	s.mu.RLock()
	ids := make([]int64, 0, len(s.cells))
	for id := range s.cells {
		ids = append(ids, id)
	}
	s.mu.RUnlock()
	slices.Sort(ids)
	return ids
}

// Len returns the number of campaigns with state.
func (s *StateStore) Len() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.cells)
}
