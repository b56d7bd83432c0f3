package controllers

import (
	"fmt"
	"net/http"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"

	"safarsathi/internal/models/request_models"
	"safarsathi/internal/models/response_models"
	"safarsathi/internal/models/session_models"
	"safarsathi/internal/services"
	"safarsathi/pkg/memcache"
	"safarsathi/pkg/middleware"
	"safarsathi/pkg/utils"
)

const plannerTemplate = "planner.html.tmpl"

type ItineraryController struct {
	tripService      services.TripServiceInterface
	itineraryService services.ItineraryServiceInterface
	sessions         memcache.SessionStore
	logger           *zap.Logger
}

func NewItineraryController(
	tripService services.TripServiceInterface,
	itineraryService services.ItineraryServiceInterface,
	sessions memcache.SessionStore,
	logger *zap.Logger,
) *ItineraryController {
	return &ItineraryController{
		tripService:      tripService,
		itineraryService: itineraryService,
		sessions:         sessions,
		logger:           logger,
	}
}

type plannerView struct {
	Form     request_models.TripRequestForm
	Record   session_models.TripRecord
	Filename string
	Error    string
}

// ShowPlanner renders the planner page for the caller's session.
func (ic *ItineraryController) ShowPlanner(c *gin.Context) {
	record, ok := ic.sessions.Get(c.GetString(middleware.SessionIDKey))
	form := request_models.DefaultTripRequestForm(utils.TodayISO())
	if ok {
		form = formFromRecord(record)
	}
	ic.render(c, http.StatusOK, form, record, "")
}

// GenerateItineraryHandler handles the planner form submit.
func (ic *ItineraryController) GenerateItineraryHandler(c *gin.Context) {
	sessionID := c.GetString(middleware.SessionIDKey)
	current, _ := ic.sessions.Get(sessionID)

	var form request_models.TripRequestForm
	if err := c.ShouldBind(&form); err != nil {
		ic.render(c, http.StatusBadRequest, form, current, "Invalid form input: headcounts must be whole numbers and budgets must be numbers.")
		return
	}

	record, err := ic.tripService.BuildTripRecord(form)
	if err != nil {
		ic.render(c, http.StatusBadRequest, form, current, capitalize(err.Error()))
		return
	}

	record = ic.itineraryService.CreateItinerary(c.Request.Context(), record)
	ic.sessions.Put(sessionID, record)

	c.Redirect(http.StatusSeeOther, "/")
}

// DownloadItineraryHandler serves the session itinerary as a text file.
func (ic *ItineraryController) DownloadItineraryHandler(c *gin.Context) {
	record, ok := ic.sessions.Get(c.GetString(middleware.SessionIDKey))
	if !ok || !record.HasItinerary() {
		c.String(http.StatusNotFound, "No itinerary has been generated yet.")
		return
	}

	c.Header("Content-Disposition", fmt.Sprintf("attachment; filename=%q", services.ExportFilename(record)))
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(record.Itinerary))
}

// CreateItineraryAPIHandler godoc
// @Summary Generate an itinerary
// @Description Validates the trip request, asks the language model for an itinerary and returns it. Nothing is stored.
// @Tags Itinerary
// @Accept json
// @Produce json
// @Param request body request_models.TripRequestForm true "Trip request"
// @Success 200 {object} utils.APIResponse
// @Failure 400 {object} utils.APIResponse
// @Router /api/itinerary [post]
func (ic *ItineraryController) CreateItineraryAPIHandler(c *gin.Context) {
	var form request_models.TripRequestForm
	if err := c.ShouldBindJSON(&form); err != nil {
		utils.RespondError(c, http.StatusBadRequest, "Invalid request format")
		return
	}

	record, err := ic.tripService.BuildTripRecord(form)
	if err != nil {
		utils.HandleServiceError(c, ic.logger, err)
		return
	}

	record = ic.itineraryService.CreateItinerary(c.Request.Context(), record)

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Record:   record,
		Filename: services.ExportFilename(record),
	}, "Itinerary created")
}

// GetSessionItineraryHandler returns the itinerary stored for the caller's session.
func (ic *ItineraryController) GetSessionItineraryHandler(c *gin.Context) {
	record, ok := ic.sessions.Get(c.GetString(middleware.SessionIDKey))
	if !ok || !record.HasItinerary() {
		utils.HandleServiceError(c, ic.logger, utils.ErrItineraryNotFound)
		return
	}

	utils.RespondSuccess(c, response_models.ItineraryResponse{
		Record:   record,
		Filename: services.ExportFilename(record),
	}, "Fetched itinerary successfully")
}

func (ic *ItineraryController) render(c *gin.Context, status int, form request_models.TripRequestForm, record session_models.TripRecord, errMsg string) {
	c.HTML(status, plannerTemplate, plannerView{
		Form:     form,
		Record:   record,
		Filename: services.ExportFilename(record),
		Error:    errMsg,
	})
}

func formFromRecord(r session_models.TripRecord) request_models.TripRequestForm {
	return request_models.TripRequestForm{
		Destination:  r.Destination,
		Interests:    strings.Join(r.Interests, ", "),
		StartDate:    r.StartDate,
		EndDate:      r.EndDate,
		NumMen:       r.Group.NumMen,
		NumWomen:     r.Group.NumWomen,
		NumOthers:    r.Group.NumOthers,
		BudgetMen:    r.Group.BudgetMen,
		BudgetWomen:  r.Group.BudgetWomen,
		BudgetOthers: r.Group.BudgetOthers,
	}
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return strings.ToUpper(s[:1]) + s[1:]
}
