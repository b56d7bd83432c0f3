package services

import (
	"math"
	"strings"

	"safarsathi/internal/models/request_models"
	"safarsathi/internal/models/session_models"
	"safarsathi/pkg/utils"
)

// MaxHeadcount caps each traveller category so the group total cannot overflow.
const MaxHeadcount = 1000

type TripServiceInterface interface {
	BuildTripRecord(form request_models.TripRequestForm) (session_models.TripRecord, error)
}

type TripService struct{}

func NewTripService() TripServiceInterface {
	return &TripService{}
}

// ParseInterests splits a comma-separated list, trimming each entry and
// dropping the empty ones.
func ParseInterests(raw string) []string {
	interests := []string{}
	for _, part := range strings.Split(raw, ",") {
		if p := strings.TrimSpace(part); p != "" {
			interests = append(interests, p)
		}
	}
	return interests
}

func CalculateTotalBudget(g session_models.GroupDetails) float64 {
	return float64(g.NumMen)*g.BudgetMen +
		float64(g.NumWomen)*g.BudgetWomen +
		float64(g.NumOthers)*g.BudgetOthers
}

func TotalMembers(g session_models.GroupDetails) int {
	return g.NumMen + g.NumWomen + g.NumOthers
}

// BuildTripRecord validates the form and returns a fresh record. The caller's
// stored record is never touched here, so a rejected form leaves no trace.
func (t *TripService) BuildTripRecord(form request_models.TripRequestForm) (session_models.TripRecord, error) {
	destination := strings.TrimSpace(form.Destination)
	if destination == "" {
		return session_models.TripRecord{}, utils.ErrDestinationRequired
	}

	interests := ParseInterests(form.Interests)
	if len(interests) == 0 {
		return session_models.TripRecord{}, utils.ErrInterestsRequired
	}

	start, err := utils.ParseTripDate(form.StartDate)
	if err != nil {
		return session_models.TripRecord{}, err
	}
	end, err := utils.ParseTripDate(form.EndDate)
	if err != nil {
		return session_models.TripRecord{}, err
	}
	if end.Before(start) {
		return session_models.TripRecord{}, utils.ErrInvalidDateRange
	}

	group := session_models.GroupDetails{
		NumMen:       form.NumMen,
		NumWomen:     form.NumWomen,
		NumOthers:    form.NumOthers,
		BudgetMen:    form.BudgetMen,
		BudgetWomen:  form.BudgetWomen,
		BudgetOthers: form.BudgetOthers,
	}
	if group.NumMen < 0 || group.NumWomen < 0 || group.NumOthers < 0 ||
		group.BudgetMen < 0 || group.BudgetWomen < 0 || group.BudgetOthers < 0 {
		return session_models.TripRecord{}, utils.ErrNegativeValue
	}
	for _, amount := range []float64{group.BudgetMen, group.BudgetWomen, group.BudgetOthers} {
		if math.IsNaN(amount) || math.IsInf(amount, 0) {
			return session_models.TripRecord{}, utils.ErrInvalidAmount
		}
	}
	if group.NumMen > MaxHeadcount || group.NumWomen > MaxHeadcount || group.NumOthers > MaxHeadcount {
		return session_models.TripRecord{}, utils.ErrGroupTooLarge
	}
	if TotalMembers(group) == 0 {
		return session_models.TripRecord{}, utils.ErrEmptyGroup
	}

	return session_models.TripRecord{
		Destination: destination,
		Interests:   interests,
		StartDate:   utils.FormatTripDate(start),
		EndDate:     utils.FormatTripDate(end),
		Group:       group,
		TotalBudget: CalculateTotalBudget(group),
	}, nil
}
