package selection

import (
	"log/slog"
	"math/rand"
	"sort"
	"strings"

	"github.com/google/uuid"
	"github.com/samber/lo"

	"github.com/quantprep/mastery-engine/internal/domain"
)

// Mode controls how a session treats questions the user has already
// answered.
type Mode string

// Session modes.
const (
	// ModePractice excludes questions in the user's already-answered set so
	// practice keeps covering new ground.
	ModePractice Mode = "practice"

	// ModeMock draws from the full filtered pool, mastered or not, like a
	// real exam sitting.
	ModeMock Mode = "mock"
)

// Filters narrows the candidate pool. Zero values match everything.
type Filters struct {
	Topic      string
	Difficulty domain.DifficultyTier
	CFALevel   int
	Mode       Mode
}

// Selector draws question subsets from pool snapshots. Stateless per
// invocation; safe to use from concurrent sessions of different users.
type Selector struct {
	logger *slog.Logger
}

// NewSelector creates a selector.
func NewSelector(logger *slog.Logger) *Selector {
	return &Selector{
		logger: logger.With("component", "question_selector"),
	}
}

// Select draws exactly count question IDs from the pool snapshot.
//
// The pool is filtered to active, approved questions matching the filters;
// in practice mode, questions in the excluded set are removed. Candidates
// are then put into a canonical order (ascending attempt count, ties broken
// by ID) so that the subsequent seeded Fisher-Yates shuffle is a pure
// function of (snapshot, seed). The shuffle runs over the whole filtered
// pool, not just its head, so the same least-attempted questions are not
// served every session; the attempt-count bias comes from the caller
// requesting small counts against large pools over many sessions.
//
// If the filtered pool is smaller than count, Select fails with
// InsufficientQuestionsError instead of returning a short result.
// Production callers supply a fresh seed per call.
func (s *Selector) Select(
	pool []domain.QuestionStat,
	filters Filters,
	excluded map[uuid.UUID]struct{},
	count int,
	seed int64,
) ([]uuid.UUID, error) {
	if count < 1 {
		return nil, ErrInvalidCount
	}

	candidates := lo.Filter(pool, func(q domain.QuestionStat, _ int) bool {
		return s.matches(&q, filters)
	})

	if filters.Mode == ModePractice && len(excluded) > 0 {
		candidates = lo.Filter(candidates, func(q domain.QuestionStat, _ int) bool {
			_, done := excluded[q.ID]
			return !done
		})
	}

	// Corrupt attempt counters would silently skew the ordering below, so
	// they are rejected here instead.
	for i := range candidates {
		if err := candidates[i].Validate(); err != nil {
			return nil, err
		}
	}

	if len(candidates) < count {
		s.logger.Debug("filtered pool too small",
			"available", len(candidates),
			"requested", count)
		return nil, &InsufficientQuestionsError{
			Available: len(candidates),
			Requested: count,
		}
	}

	// Canonical pre-shuffle order: under-attempted first, IDs as the
	// deterministic tie-break.
	sort.Slice(candidates, func(i, j int) bool {
		if candidates[i].TimesAttempted != candidates[j].TimesAttempted {
			return candidates[i].TimesAttempted < candidates[j].TimesAttempted
		}
		return strings.Compare(candidates[i].ID.String(), candidates[j].ID.String()) < 0
	})

	ids := lo.Map(candidates, func(q domain.QuestionStat, _ int) uuid.UUID {
		return q.ID
	})

	shuffle(ids, seed)

	return ids[:count], nil
}

// matches applies the activity flags and session filters to one question.
func (s *Selector) matches(q *domain.QuestionStat, filters Filters) bool {
	if !q.Active || !q.Approved {
		return false
	}
	if filters.Topic != "" && q.Topic != filters.Topic {
		return false
	}
	if filters.Difficulty != "" && q.Difficulty != filters.Difficulty {
		return false
	}
	if filters.CFALevel != 0 && q.CFALevel != filters.CFALevel {
		return false
	}
	return true
}

// shuffle is a seeded Fisher-Yates shuffle. Uniform over permutations,
// unlike the comparison-function shuffles this replaces.
func shuffle(ids []uuid.UUID, seed int64) {
	rng := rand.New(rand.NewSource(seed))
	for i := len(ids) - 1; i > 0; i-- {
		j := rng.Intn(i + 1)
		ids[i], ids[j] = ids[j], ids[i]
	}
}
