package main

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log"
	"math"
	"net/http"
	"os"
	"strings"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/google/uuid"

	"lg/lifestyle-tracker-api/internal/analysis"
	"lg/lifestyle-tracker-api/internal/model"
	"lg/lifestyle-tracker-api/internal/store"
)

/* ─── Request / Response types ───────────────────────────────────────── */

// suggestRequest is the request body for POST /api/dishes/suggest.
// When Save is true the suggestion is added to the dish library.
type suggestRequest struct {
	Description string `json:"description"`
	Save        bool   `json:"save"`
}

// suggestionResponse is the structured dish returned by the AI. Calories are
// not trusted from the model; they are derived from macros before replying.
// Confidence is 1-5 indicating how accurate the estimate is.
type suggestionResponse struct {
	Name       string      `json:"name"`
	Category   string      `json:"category"`
	Protein    float64     `json:"protein"`
	Carbs      float64     `json:"carbs"`
	Fats       float64     `json:"fats"`
	Calories   int         `json:"calories"`
	Confidence int         `json:"confidence"`
	Dish       *model.Dish `json:"dish,omitempty"`
}

/* ─── OpenAI prompt constants ────────────────────────────────────────── */

const dishSystemPrompt = `You are a nutrition assistant. Parse the dish description into one serving and return a JSON object with:
- "name" (string, cleaned up title case)
- "category" (one of: protein, carbs, vegetables, fruits, dairy, snacks, other)
- "protein" (grams, number)
- "carbs" (grams, number)
- "fats" (grams, number)
- "confidence" (integer 1-5: 5=exact known nutritional data, 4=very close estimate, 3=reasonable estimate, 2=rough guess, 1=very uncertain)

Always provide your best estimate, even for unfamiliar or vague dishes. Only return {"error": "unrecognized"} if the input is not food at all (e.g. random characters, non-food objects).
Return only valid JSON, no explanation.`

/* ─── OpenAI HTTP client ─────────────────────────────────────────────── */

// openAIMessage is a single message in the OpenAI chat completions request.
type openAIMessage struct {
	Role    string `json:"role"`
	Content string `json:"content"`
}

// openAIRequest is the request body for the OpenAI chat completions API.
type openAIRequest struct {
	Model          string            `json:"model"`
	Messages       []openAIMessage   `json:"messages"`
	Temperature    float64           `json:"temperature"`
	ResponseFormat map[string]string `json:"response_format"`
}

// openAIResponse holds the part of a chat completions reply we read.
type openAIResponse struct {
	Choices []struct {
		Message openAIMessage `json:"message"`
	} `json:"choices"`
}

const (
	openAIModel        = "gpt-4o-mini"
	openAIErrBodyLimit = 4 << 10
)

var openAIHTTPClient = &http.Client{Timeout: 15 * time.Second}

// jsonModeRequest builds a deterministic JSON-mode chat request.
func jsonModeRequest(ctx context.Context, baseURL, apiKey string, messages []openAIMessage) (*http.Request, error) {
	body, err := json.Marshal(openAIRequest{
		Model:          openAIModel,
		Messages:       messages,
		ResponseFormat: map[string]string{"type": "json_object"},
	})
	if err != nil {
		return nil, fmt.Errorf("marshal request: %w", err)
	}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, baseURL+"/v1/chat/completions", bytes.NewReader(body))
	if err != nil {
		return nil, fmt.Errorf("create request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("Authorization", "Bearer "+apiKey)
	return req, nil
}

// callOpenAI sends a JSON-mode chat request and returns the content of the
// first choice. OPENAI_API_KEY is read per call.
func callOpenAI(ctx context.Context, messages []openAIMessage, baseURL string) (string, error) {
	apiKey := os.Getenv("OPENAI_API_KEY")
	if apiKey == "" {
		return "", errors.New("OPENAI_API_KEY not set")
	}
	req, err := jsonModeRequest(ctx, baseURL, apiKey, messages)
	if err != nil {
		return "", err
	}

	resp, err := openAIHTTPClient.Do(req)
	if err != nil {
		return "", fmt.Errorf("http request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		detail, _ := io.ReadAll(io.LimitReader(resp.Body, openAIErrBodyLimit))
		return "", fmt.Errorf("openai returned status %d: %s", resp.StatusCode, detail)
	}

	// Parse the response to extract choices[0].message.content
	var out openAIResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", fmt.Errorf("decode response: %w", err)
	}
	if len(out.Choices) == 0 {
		return "", errors.New("no choices in response")
	}
	return out.Choices[0].Message.Content, nil
}

/* ─── Handler ────────────────────────────────────────────────────────── */

// suggestDish handles POST /api/dishes/suggest.
// Accepts a free-text dish description, asks OpenAI for per-serving macros,
// and returns the suggestion with calories computed from the macros. With
// "save": true the dish is also added to the library and returned as "dish".
func (h *Handler) suggestDish(c *gin.Context) {
	var req suggestRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		apiError(c, http.StatusBadRequest, "invalid request body")
		return
	}
	if strings.TrimSpace(req.Description) == "" {
		apiError(c, http.StatusBadRequest, "description is required")
		return
	}

	messages := []openAIMessage{
		{Role: "system", Content: dishSystemPrompt},
		{Role: "user", Content: req.Description},
	}
	content, err := callOpenAI(c.Request.Context(), messages, h.openAIBaseURL)
	if err != nil {
		log.Printf("[suggest] OpenAI error: %v", err)
		apiError(c, http.StatusInternalServerError, "openai request failed")
		return
	}

	var errorResp struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal([]byte(content), &errorResp); err != nil {
		log.Printf("[suggest] Failed to parse OpenAI response: %v", err)
		apiError(c, http.StatusInternalServerError, "openai request failed")
		return
	}
	if errorResp.Error == "unrecognized" {
		c.JSON(http.StatusOK, gin.H{"error": "unrecognized"})
		return
	}

	var s suggestionResponse
	if err := json.Unmarshal([]byte(content), &s); err != nil {
		log.Printf("[suggest] Failed to parse suggestion JSON: %v", err)
		apiError(c, http.StatusInternalServerError, "openai request failed")
		return
	}
	s.Dish = nil
	s.Name = strings.TrimSpace(s.Name)
	if s.Name == "" || s.Protein < 0 || s.Carbs < 0 || s.Fats < 0 {
		c.JSON(http.StatusOK, gin.H{"error": "unrecognized"})
		return
	}
	if s.Category == "" {
		s.Category = model.DefaultDishCategory
	}
	s.Calories = int(math.Round(analysis.CaloriesFromMacros(s.Protein, s.Carbs, s.Fats)))

	if req.Save {
		d := model.Dish{
			ID:        uuid.NewString(),
			Name:      s.Name,
			Category:  s.Category,
			Protein:   s.Protein,
			Carbs:     s.Carbs,
			Fats:      s.Fats,
			CreatedAt: h.now().UTC(),
		}
		d.Normalize()
		if _, err := store.PutAs(c, h.store, currentUser(c), store.EntityDish, d.ID, d); err != nil {
			storeError(c, "suggestDish", err, "")
			return
		}
		s.Dish = &d
	}

	c.JSON(http.StatusOK, s)
}
