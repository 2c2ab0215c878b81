package domain

type Role string

const (
	RoleStudent Role = "student"
	RoleAdmin   Role = "admin"
)

// Dashboard is the screen a freshly authenticated user is routed to.
type Dashboard string

const (
	DashboardStudent Dashboard = "student"
	DashboardAdmin   Dashboard = "admin"
)

// Dashboard routes solely by role: admins land on the admin dashboard,
// every other role falls through to the student one.
func (r Role) Dashboard() Dashboard {
	if r == RoleAdmin {
		return DashboardAdmin
	}
	return DashboardStudent
}

type User struct {
	ID         string `json:"id"`
	Email      string `json:"email"`
	Name       string `json:"name"`
	Role       Role   `json:"role"`
	RoomNumber string `json:"room_number,omitempty"`
	Phone      string `json:"phone,omitempty"`
}

func (u *User) IsAdmin() bool {
	return u != nil && u.Role == RoleAdmin
}

func (u *User) IsStudent() bool {
	return u != nil && u.Role == RoleStudent
}
