package application

import (
	"context"
	"errors"
	"sync"
	"testing"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/testutils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSuggestionRun_StoresAtMostThree(t *testing.T) {
	env := newSQLiteEnv(t)
	reporter := testutils.SeedUser(t, env.conn, "reporter")
	is := testutils.SeedIssue(t, env.conn, reporter, issue.StatusOpen)

	fake := &fakeSuggester{candidates: []solution.Candidate{
		{Title: "one", Description: "d", Confidence: 150},
		{Title: "two", Description: "d", Confidence: -4},
		{Title: "", Description: "skipped"},
		{Title: "three", Description: "d", Confidence: 40},
		{Title: "four", Description: "d", Confidence: 40},
	}}
	svc := NewSuggestionService(fake, env.services.Issue, 0)

	created := svc.Run(context.Background(), is)
	assert.Equal(t, 2, created)

	sols, err := env.repos.Solution.ListByIssue(is.ID)
	require.NoError(t, err)
	require.Len(t, sols, 2)
	confidences := map[string]int{}
	for _, s := range sols {
		assert.Nil(t, s.SuggestedByID)
		require.NotNil(t, s.Confidence)
		confidences[s.Title] = *s.Confidence
	}
	assert.Equal(t, map[string]int{"one": 100, "two": 0}, confidences)
}

func TestSuggestionRun_FailureIsSwallowed(t *testing.T) {
	env := newSQLiteEnv(t)
	reporter := testutils.SeedUser(t, env.conn, "reporter")
	is := testutils.SeedIssue(t, env.conn, reporter, issue.StatusOpen)

	svc := NewSuggestionService(&fakeSuggester{err: errors.New("quota exceeded")}, env.services.Issue, 0)

	assert.Zero(t, svc.Run(context.Background(), is))

	stored, err := env.repos.Issue.GetIssueByID(is.ID)
	require.NoError(t, err)
	assert.Equal(t, issue.StatusOpen, stored.Status)
}

func TestSuggestionRun_DeletedIssue(t *testing.T) {
	env := newSQLiteEnv(t)

	fake := &fakeSuggester{candidates: []solution.Candidate{{Title: "one"}, {Title: "two"}}}
	svc := NewSuggestionService(fake, env.services.Issue, 0)

	assert.Zero(t, svc.Run(context.Background(), issue.Issue{ID: 404}))
}

func TestSuggestionDispatch_NilSuggester(t *testing.T) {
	env := newSQLiteEnv(t)
	svc := NewSuggestionService(nil, env.services.Issue, 0)

	svc.Dispatch(issue.Issue{ID: 1})
	svc.Close()
}

func TestSuggestionDispatch_AfterClose(t *testing.T) {
	env := newSQLiteEnv(t)
	reporter := testutils.SeedUser(t, env.conn, "reporter")
	is := testutils.SeedIssue(t, env.conn, reporter, issue.StatusOpen)

	fake := &fakeSuggester{candidates: []solution.Candidate{{Title: "late"}}}
	svc := NewSuggestionService(fake, env.services.Issue, 0)
	svc.Close()

	svc.Dispatch(is)
	svc.Wait()
	svc.Close()

	assert.Zero(t, fake.calls)
	solutions, err := env.repos.Solution.ListByIssue(is.ID)
	require.NoError(t, err)
	assert.Empty(t, solutions)
}

func TestSuggestionDispatch_ConcurrentWithClose(t *testing.T) {
	env := newSQLiteEnv(t)
	svc := NewSuggestionService(&fakeSuggester{err: errors.New("offline")}, env.services.Issue, 0)

	var wg sync.WaitGroup
	for i := 0; i < 20; i++ {
		wg.Add(1)
		go func(id uint) {
			defer wg.Done()
			svc.Dispatch(issue.Issue{ID: id})
		}(uint(i + 1))
	}
	svc.Close()
	wg.Wait()
	svc.Wait()
}

func TestClampConfidence(t *testing.T) {
	assert.Equal(t, 0, clampConfidence(-1))
	assert.Equal(t, 55, clampConfidence(55))
	assert.Equal(t, 100, clampConfidence(101))
}
