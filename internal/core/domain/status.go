package domain

// CampaignStatus is the lifecycle state of a campaign.
type CampaignStatus string

const (
	CampaignDraft     CampaignStatus = "draft"
	CampaignActive    CampaignStatus = "active"
	CampaignPaused    CampaignStatus = "paused"
	CampaignCompleted CampaignStatus = "completed"
	CampaignCancelled CampaignStatus = "cancelled"
)

// CollaborationStatus is the lifecycle state of a collaboration. The
// invited/accepted/active vocabulary is canonical; there is no separate
// pending/in_progress tier.
type CollaborationStatus string

const (
	CollaborationInvited   CollaborationStatus = "invited"
	CollaborationAccepted  CollaborationStatus = "accepted"
	CollaborationActive    CollaborationStatus = "active"
	CollaborationCompleted CollaborationStatus = "completed"
	CollaborationDeclined  CollaborationStatus = "declined"
	CollaborationCancelled CollaborationStatus = "cancelled"
)

// CampaignTransitions maps each campaign status to the statuses directly
// reachable from it. Completed and cancelled are terminal.
var CampaignTransitions = map[CampaignStatus][]CampaignStatus{
	CampaignDraft:     {CampaignActive, CampaignCancelled},
	CampaignActive:    {CampaignPaused, CampaignCompleted, CampaignCancelled},
	CampaignPaused:    {CampaignActive, CampaignCancelled},
	CampaignCompleted: {},
	CampaignCancelled: {},
}

// CollaborationTransitions maps each collaboration status to the statuses
// directly reachable from it.
var CollaborationTransitions = map[CollaborationStatus][]CollaborationStatus{
	CollaborationInvited:   {CollaborationAccepted, CollaborationDeclined, CollaborationCancelled},
	CollaborationAccepted:  {CollaborationActive, CollaborationCancelled},
	CollaborationActive:    {CollaborationCompleted, CollaborationCancelled},
	CollaborationCompleted: {},
	CollaborationDeclined:  {},
	CollaborationCancelled: {},
}

// CanTransition reports whether the move from one status to another is
// listed in the transition table. A status missing from the table has no
// outgoing edges, so any transition from it is rejected. The check never
// mutates the table and never fails.
func CanTransition[S ~string](table map[S][]S, from, to S) bool {
	for _, next := range table[from] {
		if next == to {
			return true
		}
	}
	return false
}

// AllowedTransitions returns the statuses reachable from the given one.
// Unknown statuses yield an empty slice.
func AllowedTransitions[S ~string](table map[S][]S, from S) []S {
	allowed := table[from]
	out := make([]S, len(allowed))
	copy(out, allowed)
	return out
}

// CampaignAction is a named lifecycle operation on a campaign.
type CampaignAction string

const (
	CampaignActionActivate CampaignAction = "activate"
	CampaignActionPause    CampaignAction = "pause"
	CampaignActionResume   CampaignAction = "resume"
	CampaignActionComplete CampaignAction = "complete"
	CampaignActionCancel   CampaignAction = "cancel"
)

// Target returns the status the action moves a campaign into. The second
// return value is false for unknown actions.
func (a CampaignAction) Target() (CampaignStatus, bool) {
	switch a {
	case CampaignActionActivate, CampaignActionResume:
		return CampaignActive, true
	case CampaignActionPause:
		return CampaignPaused, true
	case CampaignActionComplete:
		return CampaignCompleted, true
	case CampaignActionCancel:
		return CampaignCancelled, true
	default:
		return "", false
	}
}

// CollaborationAction is a named lifecycle operation on a collaboration.
type CollaborationAction string

const (
	CollaborationActionAccept   CollaborationAction = "accept"
	CollaborationActionDecline  CollaborationAction = "decline"
	CollaborationActionStart    CollaborationAction = "start"
	CollaborationActionComplete CollaborationAction = "complete"
	CollaborationActionCancel   CollaborationAction = "cancel"
)

// Target returns the status the action moves a collaboration into. The
// second return value is false for unknown actions.
func (a CollaborationAction) Target() (CollaborationStatus, bool) {
	switch a {
	case CollaborationActionAccept:
		return CollaborationAccepted, true
	case CollaborationActionDecline:
		return CollaborationDeclined, true
	case CollaborationActionStart:
		return CollaborationActive, true
	case CollaborationActionComplete:
		return CollaborationCompleted, true
	case CollaborationActionCancel:
		return CollaborationCancelled, true
	default:
		return "", false
	}
}
