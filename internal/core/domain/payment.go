package domain

type PaymentType string

const (
	PaymentHostelFee       PaymentType = "hostel_fee"
	PaymentMessFee         PaymentType = "mess_fee"
	PaymentSecurityDeposit PaymentType = "security_deposit"
)

type PaymentStatus string

const (
	PaymentPending PaymentStatus = "pending"
	PaymentPaid    PaymentStatus = "paid"
	PaymentOverdue PaymentStatus = "overdue"
)

type Payment struct {
	ID          string        `json:"id"`
	StudentID   string        `json:"student_id"`
	StudentName string        `json:"student_name"`
	Amount      float64       `json:"amount"`
	Month       string        `json:"month"`
	Year        string        `json:"year"`
	PaymentType PaymentType   `json:"payment_type"`
	Status      PaymentStatus `json:"status"`
	DueDate     string        `json:"due_date,omitempty"`
	PaidDate    string        `json:"paid_date,omitempty"`
}
