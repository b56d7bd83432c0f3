package request_models

// TripRequestForm is what the planner form (and the JSON API) submits.
// Numeric fields default to zero when absent; the service layer decides validity.
type TripRequestForm struct {
	Destination string `form:"destination" json:"destination"`
	Interests   string `form:"interests" json:"interests"` // comma-separated
	StartDate   string `form:"start_date" json:"start_date"`
	EndDate     string `form:"end_date" json:"end_date"`

	NumMen    int `form:"num_men" json:"num_men"`
	NumWomen  int `form:"num_women" json:"num_women"`
	NumOthers int `form:"num_others" json:"num_others"`

	BudgetMen    float64 `form:"budget_men" json:"budget_men"`
	BudgetWomen  float64 `form:"budget_women" json:"budget_women"`
	BudgetOthers float64 `form:"budget_others" json:"budget_others"`
}

// DefaultTripRequestForm is the form as first shown to a new session.
func DefaultTripRequestForm(today string) TripRequestForm {
	return TripRequestForm{
		StartDate:    today,
		EndDate:      today,
		NumMen:       1,
		NumWomen:     1,
		NumOthers:    0,
		BudgetMen:    100,
		BudgetWomen:  100,
		BudgetOthers: 100,
	}
}
