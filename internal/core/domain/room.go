package domain

type RoomType string

const (
	RoomSingle RoomType = "single"
	RoomDouble RoomType = "double"
	RoomTriple RoomType = "triple"
	RoomQuad   RoomType = "quad"
)

type RoomStatus string

const (
	RoomAvailable        RoomStatus = "available"
	RoomFull             RoomStatus = "full"
	RoomUnderMaintenance RoomStatus = "maintenance"
)

type Room struct {
	RoomNumber string     `json:"room_number"`
	Capacity   int        `json:"capacity"`
	Occupied   int        `json:"occupied"`
	Students   []string   `json:"students,omitempty"`
	RoomType   RoomType   `json:"room_type"`
	Floor      string     `json:"floor"`
	Status     RoomStatus `json:"status"`
	Roommates  []User     `json:"roommates,omitempty"`
}

// IsFull holds when the stored status says so or occupancy has reached
// capacity, whichever comes first. The occupancy check overrides a stale
// stored status.
func (r *Room) IsFull() bool {
	return r.Status == RoomFull || r.Occupied >= r.Capacity
}

func (r *Room) IsAvailable() bool {
	return r.Status == RoomAvailable && !r.IsFull()
}

func (r *Room) IsUnderMaintenance() bool {
	return r.Status == RoomUnderMaintenance
}

// EffectiveStatus applies the derived-full override to the stored status.
func (r *Room) EffectiveStatus() RoomStatus {
	if r.IsFull() {
		return RoomFull
	}
	return r.Status
}
