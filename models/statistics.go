package models

// Statistics holds the reviewer dashboard counters.
//
// CasesPending is the size of the global pending queue, not a per-user
// number; the dashboard shows every reviewer the same backlog.
type Statistics struct {
	CasesReviewed int `json:"cases_reviewed"`
	CasesApproved int `json:"cases_approved"`
	CasesRejected int `json:"cases_rejected"`
	CasesPending  int `json:"cases_pending"`
}
