package main

import (
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/gin-gonic/gin"
)

// setupSuggestTest creates a Gin engine with a mock OpenAI server and returns
// the router and a function to set the mock response. No store is needed
// unless a test saves the suggestion.
func setupSuggestTest(h *Handler) (*gin.Engine, *httptest.Server, func(int, interface{})) {
	var mockStatus int
	var mockBody interface{}

	mockOpenAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(mockStatus)
		json.NewEncoder(w).Encode(mockBody)
	}))

	gin.SetMode(gin.TestMode)
	if h == nil {
		h = &Handler{}
	}
	h.openAIBaseURL = mockOpenAI.URL
	router := gin.New()
	// Skip auth middleware for tests; set a fixed user_id
	router.POST("/api/dishes/suggest", func(c *gin.Context) {
		c.Set("user_id", testUserID)
		c.Next()
	}, h.suggestDish)

	setMock := func(status int, body interface{}) {
		mockStatus = status
		mockBody = body
	}

	return router, mockOpenAI, setMock
}

// doSuggestRequest sends a POST to the suggest endpoint with the given body.
func doSuggestRequest(router *gin.Engine, body string) *httptest.ResponseRecorder {
	req := httptest.NewRequest("POST", "/api/dishes/suggest", strings.NewReader(body))
	req.Header.Set("Content-Type", "application/json")
	w := httptest.NewRecorder()
	router.ServeHTTP(w, req)
	return w
}

// openAIChatResponse wraps a content string in the OpenAI chat completions
// response shape (choices[0].message.content).
func openAIChatResponse(content string) map[string]interface{} {
	return map[string]interface{}{
		"choices": []map[string]interface{}{
			{
				"message": map[string]interface{}{
					"content": content,
				},
			},
		},
	}
}

func TestSuggest_DishSuccess(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	// The model's calorie figure is ignored; 4*30 + 4*45 + 9*12 = 408.
	suggestion := `{"name":"Chicken Burrito Bowl","category":"protein","protein":30,"carbs":45,"fats":12,"calories":999,"confidence":4}`
	setMock(http.StatusOK, openAIChatResponse(suggestion))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"chicken burrito bowl with rice"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp suggestionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Name != "Chicken Burrito Bowl" {
		t.Errorf("expected name 'Chicken Burrito Bowl', got '%s'", resp.Name)
	}
	if resp.Calories != 408 {
		t.Errorf("expected calories 408, got %d", resp.Calories)
	}
	if resp.Dish != nil {
		t.Errorf("expected no saved dish without save flag, got %+v", resp.Dish)
	}
}

func TestSuggest_DefaultCategory(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"name":"Mystery Stew","protein":10,"carbs":10,"fats":10,"confidence":2}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"stew"}`)

	var resp suggestionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Category != "other" {
		t.Errorf("expected category 'other', got '%s'", resp.Category)
	}
	if resp.Calories != 170 {
		t.Errorf("expected calories 170, got %d", resp.Calories)
	}
}

func TestSuggest_SaveAddsDish(t *testing.T) {
	h := newTestHandler(t)
	router, mockServer, setMock := setupSuggestTest(h)
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"name":"Greek Yogurt","category":"dairy","protein":10,"carbs":4,"fats":0.4,"confidence":5}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"100g greek yogurt","save":true}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}
	var resp suggestionResponse
	if err := json.Unmarshal(w.Body.Bytes(), &resp); err != nil {
		t.Fatalf("failed to parse response: %v", err)
	}
	if resp.Dish == nil || resp.Dish.ID == "" {
		t.Fatalf("expected saved dish in response, got %s", w.Body.String())
	}

	dishes := listTestDishes(t, h)
	if len(dishes) != 1 || dishes[0].Name != "Greek Yogurt" || dishes[0].Calories != 60 {
		t.Errorf("expected one saved Greek Yogurt at 60 kcal, got %+v", dishes)
	}
}

func TestSuggest_Unrecognized(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"error":"unrecognized"}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"asdfghjkl"}`)

	if w.Code != http.StatusOK {
		t.Fatalf("expected 200, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "unrecognized" {
		t.Errorf("expected error 'unrecognized', got '%s'", resp["error"])
	}
}

func TestSuggest_MissingName(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"protein":5,"carbs":5,"fats":5}`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"something"}`)

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "unrecognized" {
		t.Errorf("expected error 'unrecognized', got '%s'", resp["error"])
	}
}

func TestSuggest_OpenAIError500(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	setMock(http.StatusInternalServerError, map[string]string{"error": "server error"})
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"banana"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}

	var resp map[string]string
	json.Unmarshal(w.Body.Bytes(), &resp)
	if resp["error"] != "openai request failed" {
		t.Errorf("expected error 'openai request failed', got '%s'", resp["error"])
	}
}

func TestSuggest_MissingAPIKey(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	setMock(http.StatusOK, openAIChatResponse(`{"name":"Banana","protein":1,"carbs":27,"fats":0.4}`))
	t.Setenv("OPENAI_API_KEY", "")

	w := doSuggestRequest(router, `{"description":"banana"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSuggest_EmptyDescription(t *testing.T) {
	router, mockServer, _ := setupSuggestTest(nil)
	defer mockServer.Close()

	w := doSuggestRequest(router, `{"description":"   "}`)

	if w.Code != http.StatusBadRequest {
		t.Fatalf("expected 400, got %d: %s", w.Code, w.Body.String())
	}
}

func TestSuggest_MalformedJSON(t *testing.T) {
	router, mockServer, setMock := setupSuggestTest(nil)
	defer mockServer.Close()

	// OpenAI returns something that isn't valid JSON
	setMock(http.StatusOK, openAIChatResponse(`not valid json at all`))
	t.Setenv("OPENAI_API_KEY", "test-key")

	w := doSuggestRequest(router, `{"description":"banana"}`)

	if w.Code != http.StatusInternalServerError {
		t.Fatalf("expected 500, got %d: %s", w.Code, w.Body.String())
	}
}

func TestCallOpenAI_RequestShape(t *testing.T) {
	var got openAIRequest
	var auth string
	mockOpenAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if r.URL.Path != "/v1/chat/completions" {
			t.Errorf("unexpected path %s", r.URL.Path)
		}
		auth = r.Header.Get("Authorization")
		json.NewDecoder(r.Body).Decode(&got)
		json.NewEncoder(w).Encode(openAIChatResponse(`{"ok":true}`))
	}))
	defer mockOpenAI.Close()
	t.Setenv("OPENAI_API_KEY", "test-key")

	content, err := callOpenAI(context.Background(), []openAIMessage{{Role: "user", Content: "hi"}}, mockOpenAI.URL)
	if err != nil {
		t.Fatalf("callOpenAI: %v", err)
	}
	if content != `{"ok":true}` {
		t.Errorf("unexpected content %q", content)
	}
	if auth != "Bearer test-key" {
		t.Errorf("expected bearer auth, got %q", auth)
	}
	if got.Model != openAIModel || got.ResponseFormat["type"] != "json_object" || len(got.Messages) != 1 {
		t.Errorf("unexpected request %+v", got)
	}
}

func TestCallOpenAI_NoChoices(t *testing.T) {
	mockOpenAI := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"choices":[]}`))
	}))
	defer mockOpenAI.Close()
	t.Setenv("OPENAI_API_KEY", "test-key")

	if _, err := callOpenAI(context.Background(), nil, mockOpenAI.URL); err == nil {
		t.Error("expected an error for an empty choices list")
	}
}
