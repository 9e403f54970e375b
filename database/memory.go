package database

import (
	"context"
	"sort"
	"sync"
	"time"

	"makeyou-digital/backend/models"
)

// MemoryLeadStore keeps leads in process memory. Used when no database is
// configured and in tests.
type MemoryLeadStore struct {
	mu     sync.RWMutex
	nextID int64
	leads  []models.Lead
	now    func() time.Time
}

func NewMemoryLeadStore() *MemoryLeadStore {
	return &MemoryLeadStore{now: time.Now}
}

var _ LeadStore = (*MemoryLeadStore)(nil)

func (s *MemoryLeadStore) Create(_ context.Context, lead *models.Lead) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.nextID++
	lead.ID = s.nextID
	if lead.CreatedAt.IsZero() {
		lead.CreatedAt = s.now().UTC()
	}
	s.leads = append(s.leads, *lead)
	return nil
}

func (s *MemoryLeadStore) List(_ context.Context) ([]models.Lead, error) {
	s.mu.RLock()
	out := make([]models.Lead, len(s.leads))
	copy(out, s.leads)
	s.mu.RUnlock()

	sort.SliceStable(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out, nil
}

type MemoryProjectStore struct {
	mu   sync.RWMutex
	subs map[string]models.ProjectSubmission
}

func NewMemoryProjectStore() *MemoryProjectStore {
	return &MemoryProjectStore{subs: map[string]models.ProjectSubmission{}}
}

var _ ProjectStore = (*MemoryProjectStore)(nil)

func (s *MemoryProjectStore) Create(_ context.Context, sub *models.ProjectSubmission) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.subs[sub.ProjectID]; ok {
		return ErrDuplicate
	}
	s.subs[sub.ProjectID] = *sub
	return nil
}

func (s *MemoryProjectStore) List(_ context.Context) ([]models.ProjectSubmission, error) {
	s.mu.RLock()
	out := make([]models.ProjectSubmission, 0, len(s.subs))
	for _, sub := range s.subs {
		out = append(out, sub)
	}
	s.mu.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].SubmittedAt.Equal(out[j].SubmittedAt) {
			return out[i].ProjectID > out[j].ProjectID
		}
		return out[i].SubmittedAt.After(out[j].SubmittedAt)
	})
	return out, nil
}

func (s *MemoryProjectStore) UpdateStatus(_ context.Context, projectID, status string) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	sub, ok := s.subs[projectID]
	if !ok {
		return ErrNotFound
	}
	sub.Status = status
	s.subs[projectID] = sub
	return nil
}
