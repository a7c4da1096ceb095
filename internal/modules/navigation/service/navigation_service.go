package service

import (
	"sync"

	"planwise/internal/modules/navigation/domain"
)

// NavigationService is the browsing history. Every move that changes what is
// shown takes a new generation, so results issued under an older one can be
// recognised as stale.
type NavigationService struct {
	mu         sync.Mutex
	entries    []domain.Page
	cursor     int
	generation uint64
}

func NewNavigationService() *NavigationService {
	return &NavigationService{entries: []domain.Page{domain.PageHome}}
}

// Visit pushes page, dropping any forward entries.
func (s *NavigationService) Visit(page domain.Page) (domain.Page, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.entries = append(s.entries[:s.cursor+1], page)
	s.cursor = len(s.entries) - 1
	s.generation++
	return page, s.generation
}

func (s *NavigationService) Back() (domain.Page, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor == 0 {
		return s.entries[s.cursor], s.generation, false
	}
	s.cursor--
	s.generation++
	return s.entries[s.cursor], s.generation, true
}

func (s *NavigationService) Forward() (domain.Page, uint64, bool) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cursor >= len(s.entries)-1 {
		return s.entries[s.cursor], s.generation, false
	}
	s.cursor++
	s.generation++
	return s.entries[s.cursor], s.generation, true
}

// Refresh keeps the current page under a new generation.
func (s *NavigationService) Refresh() (domain.Page, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.generation++
	return s.entries[s.cursor], s.generation
}

func (s *NavigationService) Current() (domain.Page, uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.entries[s.cursor], s.generation
}

func (s *NavigationService) IsCurrent(generation uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return generation == s.generation
}
