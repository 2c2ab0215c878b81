package domain

type ComplaintCategory string

const (
	ComplaintMaintenance ComplaintCategory = "maintenance"
	ComplaintCleanliness ComplaintCategory = "cleanliness"
	ComplaintElectrical  ComplaintCategory = "electrical"
	ComplaintPlumbing    ComplaintCategory = "plumbing"
	ComplaintOther       ComplaintCategory = "other"
)

type ComplaintStatus string

const (
	ComplaintPending    ComplaintStatus = "pending"
	ComplaintInProgress ComplaintStatus = "in_progress"
	ComplaintResolved   ComplaintStatus = "resolved"
)

// complaintRank orders the complaint state machine. Transitions only move
// forward: pending -> in_progress -> resolved.
var complaintRank = map[ComplaintStatus]int{
	ComplaintPending:    0,
	ComplaintInProgress: 1,
	ComplaintResolved:   2,
}

// CanTransitionTo reports whether moving from s to next is a legal forward
// step. Staying put is not a transition.
func (s ComplaintStatus) CanTransitionTo(next ComplaintStatus) bool {
	from, ok := complaintRank[s]
	if !ok {
		return false
	}
	to, ok := complaintRank[next]
	if !ok {
		return false
	}
	return to > from
}

type Complaint struct {
	ID          string            `json:"id"`
	StudentID   string            `json:"student_id"`
	StudentName string            `json:"student_name"`
	RoomNumber  string            `json:"room_number"`
	Title       string            `json:"title"`
	Description string            `json:"description"`
	Category    ComplaintCategory `json:"category"`
	Status      ComplaintStatus   `json:"status"`
	CreatedAt   string            `json:"created_at,omitempty"`
	ResolvedAt  string            `json:"resolved_at,omitempty"`
}
