package response_models

import "safarsathi/internal/models/session_models"

type ItineraryResponse struct {
	Record   session_models.TripRecord `json:"record"`
	Filename string                    `json:"filename"`
}
