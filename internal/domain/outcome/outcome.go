// Package outcome describes how a core operation ended. Store failures are
// reported separately as errors; an outcome is always a normal result.
package outcome

type Kind string

const (
	KindAccepted Kind = "accepted"
	KindRejected Kind = "rejected"
	KindNotFound Kind = "not_found"
)

type Reason string

const (
	ReasonNone               Reason = ""
	ReasonNotAuthenticated   Reason = "NotAuthenticated"
	ReasonReporterCannotVote Reason = "ReporterCannotVote"
	ReasonAlreadyVoted       Reason = "AlreadyVoted"
	ReasonSelfVoteForbidden  Reason = "SelfVoteForbidden"
	ReasonVotingNotOpen      Reason = "VotingNotOpen"
	ReasonNotReporter        Reason = "NotReporter"
	ReasonIssueResolved      Reason = "IssueResolved"
)

type Result struct {
	Kind   Kind   `json:"outcome"`
	Reason Reason `json:"reason,omitempty"`
}

func Accepted() Result {
	return Result{Kind: KindAccepted}
}

func Rejected(reason Reason) Result {
	return Result{Kind: KindRejected, Reason: reason}
}

func NotFound() Result {
	return Result{Kind: KindNotFound}
}

func (r Result) IsAccepted() bool { return r.Kind == KindAccepted }
func (r Result) IsRejected() bool { return r.Kind == KindRejected }
func (r Result) IsNotFound() bool { return r.Kind == KindNotFound }
