package services

import (
	"context"
	"fmt"
	"strings"

	"go.uber.org/zap"

	"safarsathi/internal/models/session_models"
	"safarsathi/pkg/utils"
)

const (
	itinerarySystemTemplate = "You are a helpful travel assistant. Create a detailed travel itinerary for %s " +
		"based on the user's interests: %s, dates: %s to %s, total members: %d, and budget: %s. " +
		"Include hotel recommendations and food suggestions."
	itineraryHumanPrompt = "Create an itinerary for my trip."

	defaultExportFilename = "travel_itinerary.txt"

	msgClientUnavailable = "Failed to initialize the language model. Please check your API key and try again."
	msgGenerationFailed  = "An error occurred while generating the itinerary: %s"
)

type ItineraryServiceInterface interface {
	CreateItinerary(ctx context.Context, record session_models.TripRecord) session_models.TripRecord
}

type ItineraryService struct {
	client utils.TextGenerationClientInterface
	logger *zap.Logger
}

func NewItineraryService(client utils.TextGenerationClientInterface, logger *zap.Logger) ItineraryServiceInterface {
	return &ItineraryService{
		client: client,
		logger: logger,
	}
}

// BuildItineraryPrompt renders the fixed system template for record followed by
// the constant human instruction.
func BuildItineraryPrompt(record session_models.TripRecord) []utils.ChatMessage {
	system := fmt.Sprintf(itinerarySystemTemplate,
		record.Destination,
		strings.Join(record.Interests, ", "),
		record.StartDate,
		record.EndDate,
		TotalMembers(record.Group),
		fmt.Sprintf("%.2f", record.TotalBudget),
	)
	return []utils.ChatMessage{
		{Role: utils.RoleSystem, Content: system},
		{Role: utils.RoleHuman, Content: itineraryHumanPrompt},
	}
}

// CreateItinerary asks the text generation endpoint for an itinerary and
// returns record with the reply stored verbatim. Failures never escape: the
// itinerary then holds a readable explanation instead.
func (s *ItineraryService) CreateItinerary(ctx context.Context, record session_models.TripRecord) session_models.TripRecord {
	prompt := BuildItineraryPrompt(record)
	record.Messages = prompt
	record.HotelRecommendations = ""
	record.FoodRecommendations = ""

	if s.client == nil {
		s.logger.Error("Text generation client is not configured")
		record.Itinerary = msgClientUnavailable
		return record
	}

	text, err := s.generate(ctx, prompt)
	if err != nil {
		s.logger.Error("Itinerary generation failed",
			zap.String("destination", record.Destination),
			zap.Error(err))
		record.Itinerary = fmt.Sprintf(msgGenerationFailed, err.Error())
		return record
	}

	s.logger.Info("Itinerary generated",
		zap.String("destination", record.Destination),
		zap.Int("length", len(text)))

	record.Itinerary = text
	record.Messages = append(record.Messages, utils.ChatMessage{Role: utils.RoleAssistant, Content: text})
	return record
}

func (s *ItineraryService) generate(ctx context.Context, prompt []utils.ChatMessage) (text string, err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("text generation panicked: %v", r)
		}
	}()
	return s.client.GenerateText(ctx, prompt)
}

// ExportFilename names the downloadable itinerary after the destination and start date.
func ExportFilename(record session_models.TripRecord) string {
	slug := utils.Slugify(record.Destination)
	if slug == "" {
		return defaultExportFilename
	}
	if record.StartDate == "" {
		return fmt.Sprintf("itinerary_%s.txt", slug)
	}
	return fmt.Sprintf("itinerary_%s_%s.txt", slug, record.StartDate)
}
