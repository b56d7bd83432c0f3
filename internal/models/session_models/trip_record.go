package session_models

import "safarsathi/pkg/utils"

// GroupDetails is the group composition with the per-person budget (USD) of each category.
type GroupDetails struct {
	NumMen    int `json:"num_men"`
	NumWomen  int `json:"num_women"`
	NumOthers int `json:"num_others"`

	BudgetMen    float64 `json:"budget_men"`
	BudgetWomen  float64 `json:"budget_women"`
	BudgetOthers float64 `json:"budget_others"`
}

// TripRecord is the per-session trip request and its generated itinerary.
// A submission always replaces the whole record.
type TripRecord struct {
	Destination string       `json:"city"`
	Interests   []string     `json:"interests"`
	StartDate   string       `json:"start_date"`
	EndDate     string       `json:"end_date"`
	Group       GroupDetails `json:"group"`
	TotalBudget float64      `json:"total_budget"`

	Itinerary string `json:"itinerary"`

	// Not filled by the planner yet.
	HotelRecommendations string `json:"hotel_recommendations,omitempty"`
	FoodRecommendations  string `json:"food_recommendations,omitempty"`

	Messages []utils.ChatMessage `json:"messages,omitempty"`
}

func (r TripRecord) HasItinerary() bool {
	return r.Itinerary != ""
}
