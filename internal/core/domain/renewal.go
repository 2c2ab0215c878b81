package domain

type RenewalStatus string

const (
	RenewalSubmitted   RenewalStatus = "submitted"
	RenewalUnderReview RenewalStatus = "under_review"
	RenewalApproved    RenewalStatus = "approved"
	RenewalRejected    RenewalStatus = "rejected"
)

// renewalNext lists the legal forward moves of the review state machine.
// Approved and rejected are terminal.
var renewalNext = map[RenewalStatus][]RenewalStatus{
	RenewalSubmitted:   {RenewalUnderReview, RenewalApproved, RenewalRejected},
	RenewalUnderReview: {RenewalApproved, RenewalRejected},
}

func (s RenewalStatus) CanTransitionTo(next RenewalStatus) bool {
	for _, n := range renewalNext[s] {
		if n == next {
			return true
		}
	}
	return false
}

// RenewalForm is a student's request to extend hostel residency.
// Files maps a document kind (aadhar, result, caste_cert, photo) to the
// filename stored server-side.
type RenewalForm struct {
	ID            string            `json:"id"`
	StudentID     string            `json:"student_id"`
	StudentName   string            `json:"student_name"`
	RoomNumber    string            `json:"room_number"`
	Status        RenewalStatus     `json:"status"`
	Files         map[string]string `json:"files,omitempty"`
	AdminComments string            `json:"admin_comments,omitempty"`
	CreatedAt     string            `json:"created_at,omitempty"`
	UpdatedAt     string            `json:"updated_at,omitempty"`
	ReviewedAt    string            `json:"reviewed_at,omitempty"`
	ReviewedBy    string            `json:"reviewed_by,omitempty"`
}
