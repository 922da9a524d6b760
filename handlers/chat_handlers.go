package handlers

import (
	"context"
	"fmt"
	"log"
	"strings"

	"app/catalog"
	"app/config"
	"app/models"

	"github.com/gofiber/fiber/v2"
	"github.com/google/generative-ai-go/genai"
	"google.golang.org/api/option"
)

const chatModel = "gemini-1.5-flash"

// HandleChat answers free-text questions with the Gemini API, falling back
// to the canned keyword table when no key is configured or the API fails.
// POST /api/v1/chat
func HandleChat(c *fiber.Ctx) error {
	var req models.ChatRequest
	if err := c.BodyParser(&req); err != nil {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Invalid request body"})
	}

	message := strings.TrimSpace(req.Message)
	if message == "" {
		return c.Status(fiber.StatusBadRequest).JSON(fiber.Map{"status": "error", "message": "Empty message"})
	}

	if config.AppConfig.HasGeminiKey() {
		answer, err := generateChatResponse(c.Context(), message)
		if err == nil {
			saveChat(c.Context(), message, answer, "google-gemini")
			logActivity(c.Context(), "chatbot_interaction", "AI response generated", truncate(message, 50))
			return c.JSON(fiber.Map{"status": "success", "response": answer, "source": "google-gemini"})
		}
		log.Printf("Gemini API error, falling back to keyword responses: %v", err)
	}

	answer := fallbackResponse(message)
	saveChat(c.Context(), message, answer, "fallback")
	logActivity(c.Context(), "chatbot_interaction", "Fallback response sent", truncate(message, 50))
	return c.JSON(fiber.Map{"status": "success", "response": answer, "source": "fallback"})
}

// generateChatResponse calls the Gemini API with an inventory-assistant
// system prompt built from the live catalog.
func generateChatResponse(ctx context.Context, message string) (string, error) {
	client, err := genai.NewClient(ctx, option.WithAPIKey(config.AppConfig.GeminiAPIKey))
	if err != nil {
		return "", fmt.Errorf("failed to create Gemini client: %w", err)
	}
	defer client.Close()

	model := client.GenerativeModel(chatModel)
	model.SetTemperature(0.7)
	model.SetMaxOutputTokens(500)

	categories := strings.Join(catalog.Categories(), ", ")
	if categories == "" {
		categories = "General"
	}

	systemPrompt := fmt.Sprintf(`You are an expert AI assistant for D-Mart Smart Inventory Management System.
You help with:
- Inventory management and stock optimization
- Seasonal trends and demand forecasting
- Product pricing strategies
- Category insights: %s
- Best practices for retail management

Available product categories: %s

Provide concise, actionable advice. Be professional but friendly. Keep responses to 2-3 sentences unless asked for more details.`, categories, categories)

	resp, err := model.GenerateContent(ctx, genai.Text(systemPrompt+"\n\nUser: "+message))
	if err != nil {
		return "", fmt.Errorf("failed to generate content: %w", err)
	}
	if len(resp.Candidates) == 0 || resp.Candidates[0].Content == nil || len(resp.Candidates[0].Content.Parts) == 0 {
		return "", fmt.Errorf("empty response from Gemini")
	}

	answer := strings.TrimSpace(fmt.Sprint(resp.Candidates[0].Content.Parts[0]))
	if answer == "" {
		return "", fmt.Errorf("empty response from Gemini")
	}
	return answer, nil
}

func truncate(s string, n int) string {
	if len(s) <= n {
		return s
	}
	return s[:n]
}
