package application

import (
	"context"
	"log/slog"
	"sync"
	"time"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/metrics"
)

const (
	maxSuggestions           = 3
	defaultSuggestionTimeout = 20 * time.Second
)

// Suggester proposes candidate solutions for an issue.
type Suggester interface {
	Suggest(ctx context.Context, title, description string) ([]solution.Candidate, error)
}

// SuggestionService turns model candidates into solutions in the
// background. Failures never reach the resident who filed the issue.
type SuggestionService struct {
	suggester Suggester
	issues    *IssueService
	timeout   time.Duration

	mu     sync.Mutex
	closed bool
	wg     sync.WaitGroup
	ctx    context.Context
	cancel context.CancelFunc
}

func NewSuggestionService(suggester Suggester, issues *IssueService, timeout time.Duration) *SuggestionService {
	if timeout <= 0 {
		timeout = defaultSuggestionTimeout
	}
	ctx, cancel := context.WithCancel(context.Background())
	return &SuggestionService{
		suggester: suggester,
		issues:    issues,
		timeout:   timeout,
		ctx:       ctx,
		cancel:    cancel,
	}
}

// Dispatch starts a suggestion run for the issue and returns immediately.
// It is a no-op once Close has been called.
func (s *SuggestionService) Dispatch(is issue.Issue) {
	if s.suggester == nil {
		return
	}
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		slog.Debug("Suggestion service closed, skipping run", "issue_id", is.ID)
		return
	}
	s.wg.Add(1)
	s.mu.Unlock()
	go func() {
		defer s.wg.Done()
		ctx, cancel := context.WithTimeout(s.ctx, s.timeout)
		defer cancel()
		s.Run(ctx, is)
	}()
}

// Run asks the suggester for candidates and stores up to three of them.
// It returns the number of solutions created.
func (s *SuggestionService) Run(ctx context.Context, is issue.Issue) int {
	if s.suggester == nil {
		return 0
	}

	start := time.Now()
	candidates, err := s.suggester.Suggest(ctx, is.Title, is.Description)
	metrics.AISuggestionLatency.Observe(time.Since(start).Seconds())
	if err != nil {
		metrics.AISuggestions.WithLabelValues("failure").Inc()
		slog.Warn("AI suggestion failed", "issue_id", is.ID, "error", err)
		return 0
	}
	if len(candidates) > maxSuggestions {
		candidates = candidates[:maxSuggestions]
	}

	created := 0
	for _, c := range candidates {
		if c.Title == "" {
			continue
		}
		confidence := clampConfidence(c.Confidence)
		_, res, err := s.issues.SuggestAISolution(is.ID, solution.SuggestSolutionInput{
			Title:       c.Title,
			Description: c.Description,
			Confidence:  &confidence,
		})
		if err != nil {
			slog.Warn("Failed to store AI solution", "issue_id", is.ID, "error", err)
			continue
		}
		if !res.IsAccepted() {
			// issue deleted while the model was thinking
			break
		}
		created++
	}

	result := "success"
	if created == 0 {
		result = "empty"
	}
	metrics.AISuggestions.WithLabelValues(result).Inc()
	slog.Info("AI suggestions stored", "issue_id", is.ID, "count", created)
	return created
}

// Wait blocks until every dispatched run has finished.
func (s *SuggestionService) Wait() {
	s.wg.Wait()
}

// Close cancels in-flight runs and waits for them. Later dispatches are dropped.
func (s *SuggestionService) Close() {
	s.mu.Lock()
	s.closed = true
	s.cancel()
	s.mu.Unlock()
	s.wg.Wait()
}

func clampConfidence(v int) int {
	if v < 0 {
		return 0
	}
	if v > 100 {
		return 100
	}
	return v
}
