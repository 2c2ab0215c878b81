package domain

type MealType string

const (
	MealBreakfast MealType = "breakfast"
	MealLunch     MealType = "lunch"
	MealDinner    MealType = "dinner"
)

type MessMenu struct {
	ID        string   `json:"id"`
	Day       string   `json:"day"`
	MealType  MealType `json:"meal_type"`
	Items     []string `json:"items"`
	CreatedAt string   `json:"created_at,omitempty"`
}
