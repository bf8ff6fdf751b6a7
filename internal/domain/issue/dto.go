package issue

type CreateIssueInput struct {
	Title       string `json:"title" form:"title" binding:"required,max=100"`
	Description string `json:"description" form:"description" binding:"required"`
}

type ListParams struct {
	Status     *Status
	ReporterID *uint
	Limit      int
	Offset     int
}

// StatusBreakdown summarises a set of issues for the dashboard progress bars.
type StatusBreakdown struct {
	Total           int `json:"total"`
	OpenCount       int `json:"open_count"`
	InReviewCount   int `json:"in_review_count"`
	ResolvedCount   int `json:"resolved_count"`
	OpenPercent     int `json:"open_percent"`
	InReviewPercent int `json:"in_review_percent"`
	ResolvedPercent int `json:"resolved_percent"`
}

// Breakdown counts statuses over issues. A non-zero share is never shown
// below 1 percent.
func Breakdown(issues []Issue) StatusBreakdown {
	b := StatusBreakdown{Total: len(issues)}
	for _, is := range issues {
		switch is.Status {
		case StatusOpen:
			b.OpenCount++
		case StatusInReview:
			b.InReviewCount++
		case StatusResolved:
			b.ResolvedCount++
		}
	}
	b.OpenPercent = percent(b.OpenCount, b.Total)
	b.InReviewPercent = percent(b.InReviewCount, b.Total)
	b.ResolvedPercent = percent(b.ResolvedCount, b.Total)
	return b
}

func percent(count, total int) int {
	if count == 0 || total == 0 {
		return 0
	}
	p := count * 100 / total
	if p < 1 {
		return 1
	}
	return p
}
