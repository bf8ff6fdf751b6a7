package testutils

import (
	"fmt"
	"testing"

	"github.com/linskybing/residence-hub/internal/domain/issue"
	"github.com/linskybing/residence-hub/internal/domain/solution"
	"github.com/linskybing/residence-hub/internal/domain/user"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"
)

func SeedUser(t *testing.T, conn *gorm.DB, name string) user.User {
	t.Helper()
	u := user.User{
		Email:      fmt.Sprintf("%s@example.com", name),
		Password:   "x",
		FlatNumber: "A-1",
		Role:       "resident",
	}
	require.NoError(t, conn.Create(&u).Error)
	return u
}

func SeedIssue(t *testing.T, conn *gorm.DB, reporter user.User, status issue.Status) issue.Issue {
	t.Helper()
	is := issue.Issue{
		Title:       "Leaky faucet",
		Description: "Water keeps dripping in the laundry room.",
		Status:      status,
		ReporterID:  reporter.UID,
	}
	require.NoError(t, conn.Create(&is).Error)
	return is
}

// SeedSolution creates a solution with the given counters. A nil author
// stands for an AI-authored solution.
func SeedSolution(t *testing.T, conn *gorm.DB, is issue.Issue, author *user.User, upvotes uint, votingEnabled bool) solution.Solution {
	t.Helper()
	s := solution.Solution{
		Title:           "Replace the washer",
		Description:     "Swap the worn rubber washer.",
		IssueID:         is.ID,
		Upvotes:         upvotes,
		Status:          solution.StatusPending,
		IsVotingEnabled: votingEnabled,
	}
	if author != nil {
		id := author.UID
		s.SuggestedByID = &id
	}
	require.NoError(t, conn.Create(&s).Error)
	return s
}
