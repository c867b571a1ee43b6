package archive

import (
	"context"
	"sync"

	"github.com/nfrund/studiosite/internal/domain"
)

// Memory keeps submissions in process memory, newest first.
type Memory struct {
	mu    sync.RWMutex
	items []domain.Submission
}

var _ domain.SubmissionArchive = (*Memory)(nil)

// NewMemory creates an empty in-memory archive.
func NewMemory() *Memory {
	return &Memory{}
}

func (m *Memory) Save(_ context.Context, s domain.Submission) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.items = append([]domain.Submission{s}, m.items...)
	return nil
}

func (m *Memory) List(_ context.Context, limit int) ([]domain.Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	n := len(m.items)
	if limit > 0 && limit < n {
		n = limit
	}
	out := make([]domain.Submission, n)
	copy(out, m.items[:n])
	return out, nil
}

func (m *Memory) Close() error { return nil }
