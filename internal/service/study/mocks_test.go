package study

import (
	"context"
	"sync"

	"github.com/google/uuid"

	"github.com/quantprep/mastery-engine/internal/domain"
	"github.com/quantprep/mastery-engine/internal/events"
	"github.com/quantprep/mastery-engine/internal/store"
)

// In-memory store fakes. They implement only what the service exercises
// and enforce the same sentinel-error contracts real implementations must.

type fakeCardStore struct {
	mu    sync.Mutex
	cards map[[2]uuid.UUID]*domain.ReviewCard
}

func newFakeCardStore() *fakeCardStore {
	return &fakeCardStore{cards: make(map[[2]uuid.UUID]*domain.ReviewCard)}
}

func (s *fakeCardStore) Get(_ context.Context, userID, materialID uuid.UUID) (*domain.ReviewCard, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	card, ok := s.cards[[2]uuid.UUID{userID, materialID}]
	if !ok {
		return nil, store.ErrCardNotFound
	}
	copied := *card
	return &copied, nil
}

func (s *fakeCardStore) Save(_ context.Context, card *domain.ReviewCard) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *card
	s.cards[[2]uuid.UUID{card.UserID, card.MaterialID}] = &copied
	return nil
}

func (s *fakeCardStore) ListDue(_ context.Context, _ uuid.UUID, _ int) ([]*domain.ReviewCard, error) {
	return nil, nil
}

type fakeProgressStore struct {
	mu      sync.Mutex
	records map[uuid.UUID]*domain.UserProgress
}

func newFakeProgressStore() *fakeProgressStore {
	return &fakeProgressStore{records: make(map[uuid.UUID]*domain.UserProgress)}
}

func (s *fakeProgressStore) Get(_ context.Context, userID uuid.UUID) (*domain.UserProgress, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	record, ok := s.records[userID]
	if !ok {
		return nil, store.ErrProgressNotFound
	}
	copied := *record
	return &copied, nil
}

func (s *fakeProgressStore) Update(_ context.Context, progress *domain.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.records[progress.UserID]; !ok {
		return store.ErrProgressNotFound
	}
	copied := *progress
	s.records[progress.UserID] = &copied
	return nil
}

func (s *fakeProgressStore) Create(_ context.Context, progress *domain.UserProgress) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	copied := *progress
	s.records[progress.UserID] = &copied
	return nil
}

type fakeCatalog struct {
	achievements []*domain.Achievement
}

func (s *fakeCatalog) List(_ context.Context) ([]*domain.Achievement, error) {
	return s.achievements, nil
}

func (s *fakeCatalog) Get(_ context.Context, id uuid.UUID) (*domain.Achievement, error) {
	for _, ach := range s.achievements {
		if ach.ID == id {
			return ach, nil
		}
	}
	return nil, store.ErrAchievementNotFound
}

type fakeUnlockStore struct {
	mu      sync.Mutex
	unlocks map[[2]uuid.UUID]*domain.AchievementUnlock
}

func newFakeUnlockStore() *fakeUnlockStore {
	return &fakeUnlockStore{unlocks: make(map[[2]uuid.UUID]*domain.AchievementUnlock)}
}

func (s *fakeUnlockStore) Exists(_ context.Context, userID, achievementID uuid.UUID) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	_, ok := s.unlocks[[2]uuid.UUID{userID, achievementID}]
	return ok, nil
}

func (s *fakeUnlockStore) Create(_ context.Context, unlock *domain.AchievementUnlock) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	key := [2]uuid.UUID{unlock.UserID, unlock.AchievementID}
	if _, ok := s.unlocks[key]; ok {
		return store.ErrDuplicateUnlock
	}
	copied := *unlock
	s.unlocks[key] = &copied
	return nil
}

func (s *fakeUnlockStore) ListByUser(_ context.Context, userID uuid.UUID) ([]*domain.AchievementUnlock, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var result []*domain.AchievementUnlock
	for key, unlock := range s.unlocks {
		if key[0] == userID {
			copied := *unlock
			result = append(result, &copied)
		}
	}
	return result, nil
}

// racingUnlockStore pretends the unlock does not exist yet, forcing the
// service onto the Create path so the uniqueness-constraint race can be
// exercised.
type racingUnlockStore struct {
	*fakeUnlockStore
}

func (s *racingUnlockStore) Exists(context.Context, uuid.UUID, uuid.UUID) (bool, error) {
	return false, nil
}

// captureEmitter records emitted events for assertions.
type captureEmitter struct {
	mu     sync.Mutex
	events []*events.ProgressionEvent
}

func (e *captureEmitter) EmitEvent(_ context.Context, event *events.ProgressionEvent) error {
	e.mu.Lock()
	defer e.mu.Unlock()
	e.events = append(e.events, event)
	return nil
}

func (e *captureEmitter) byType(eventType string) []*events.ProgressionEvent {
	e.mu.Lock()
	defer e.mu.Unlock()
	var matched []*events.ProgressionEvent
	for _, event := range e.events {
		if event.Type == eventType {
			matched = append(matched, event)
		}
	}
	return matched
}
