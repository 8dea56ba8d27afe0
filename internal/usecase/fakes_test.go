package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"strings"
	"sync"
	"time"

	"jobmatch/internal/domain/job"
	"jobmatch/internal/domain/user"
	"jobmatch/internal/repository"

	"github.com/google/uuid"
)

type mockJobRepo struct {
	items     []job.Job
	err       error
	listCalls int
}

func (m *mockJobRepo) GetByID(_ context.Context, id uuid.UUID) (job.Job, error) {
	if m.err != nil {
		return job.Job{}, m.err
	}
	for _, it := range m.items {
		if it.ID == id {
			return it, nil
		}
	}
	return job.Job{}, repository.ErrJobNotFound
}

func (m *mockJobRepo) ListJobs(_ context.Context, limit, offset int) ([]job.Job, error) {
	m.listCalls++
	if m.err != nil {
		return nil, m.err
	}
	if offset >= len(m.items) {
		return nil, nil
	}
	end := offset + limit
	if end > len(m.items) {
		end = len(m.items)
	}
	return m.items[offset:end], nil
}

type mockPrefsRepo struct {
	mu        sync.Mutex
	byUser    map[uuid.UUID]user.Preferences
	findErr   error
	upsertErr error
}

func newMockPrefsRepo() *mockPrefsRepo {
	return &mockPrefsRepo{byUser: map[uuid.UUID]user.Preferences{}}
}

func (m *mockPrefsRepo) FindByUserID(_ context.Context, userID uuid.UUID) (user.Preferences, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.findErr != nil {
		return user.Preferences{}, m.findErr
	}
	p, ok := m.byUser[userID]
	if !ok {
		return user.Preferences{}, user.ErrPreferencesNotFound
	}
	return p, nil
}

func (m *mockPrefsRepo) Upsert(_ context.Context, p user.Preferences) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.upsertErr != nil {
		return m.upsertErr
	}
	p.UpdatedAt = time.Now().UTC()
	m.byUser[p.UserID] = p
	return nil
}

type memoryCache struct {
	mu   sync.Mutex
	data map[string][]byte
	sets int
}

func newMemoryCache() *memoryCache {
	return &memoryCache{data: map[string][]byte{}}
}

func (c *memoryCache) GetJSON(_ context.Context, key string, out any) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	b, ok := c.data[key]
	if !ok {
		return false, nil
	}
	return true, json.Unmarshal(b, out)
}

func (c *memoryCache) SetJSON(_ context.Context, key string, value any, _ time.Duration) error {
	b, err := json.Marshal(value)
	if err != nil {
		return err
	}
	c.mu.Lock()
	defer c.mu.Unlock()
	c.data[key] = b
	c.sets++
	return nil
}

func (c *memoryCache) Delete(_ context.Context, key string) error {
	c.mu.Lock()
	defer c.mu.Unlock()
	delete(c.data, key)
	return nil
}

func (c *memoryCache) DeleteByPattern(_ context.Context, pattern string) error {
	prefix := strings.TrimSuffix(pattern, "*")
	c.mu.Lock()
	defer c.mu.Unlock()
	for k := range c.data {
		if strings.HasPrefix(k, prefix) {
			delete(c.data, k)
		}
	}
	return nil
}

func (c *memoryCache) SetIfNotExists(_ context.Context, key string, value string, _ time.Duration) (bool, error) {
	c.mu.Lock()
	defer c.mu.Unlock()
	if _, ok := c.data[key]; ok {
		return false, nil
	}
	c.data[key] = []byte(value)
	return true, nil
}

func (c *memoryCache) keys() []string {
	c.mu.Lock()
	defer c.mu.Unlock()
	out := make([]string, 0, len(c.data))
	for k := range c.data {
		out = append(out, k)
	}
	return out
}

type recordingNotifier struct {
	users []string
}

func (n *recordingNotifier) NotifyRecommendationsUpdated(userID string) {
	n.users = append(n.users, userID)
}

var errBoom = errors.New("boom")

func strPtr(s string) *string     { return &s }
func boolPtr(b bool) *bool        { return &b }
func floatPtr(f float64) *float64 { return &f }
