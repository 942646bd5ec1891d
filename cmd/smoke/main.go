package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"os"
	"time"

	_ "github.com/joho/godotenv/autoload"
)

const (
	defaultAPIBase = "http://localhost:8080"
)

var (
	apiBase     string
	token       string
	userID      string
	client      = &http.Client{Timeout: 30 * time.Second}
	testDate    string
	loggedMeals []string // ids to clean up
)

func main() {
	fmt.Println("=== Thali E2E Smoke Test ===")
	fmt.Println()

	// Load config from env
	apiBase = getEnv("API_BASE_URL", defaultAPIBase)
	token = getEnv("SMOKE_TOKEN", "")
	userID = getEnv("SMOKE_USER_ID", "smoke-user")

	fmt.Printf("API Base: %s\n", apiBase)
	fmt.Printf("Token: %s\n", maskString(token))
	fmt.Printf("User ID: %s\n", userID)
	fmt.Println()

	testDate = time.Now().Format("2006-01-02")

	steps := []struct {
		name string
		fn   func() error
	}{
		{"Healthz", testHealthz},
		{"Dev Sign-in", testDevSignIn},
		{"Planner Options", testOptions},
		{"Generate Meal Plan", testGenerate},
		{"Save Meal Plan", testSave},
		{"Get Saved Plan (page 1)", testGetSaved},
		{"Log Meal", testLogMeal},
		{"Meal Summary", testSummary},
		{"Dashboard", testDashboard},
		{"Meal Plan Report (CSV)", testMealPlanReport},
		{"Meal Log Report (PDF)", testMealLogReport},
		{"Delete Logged Meals", testDeleteMeals},
		{"Delete Saved Plan", testDeleteSaved},
	}

	failed := false
	for i, step := range steps {
		fmt.Printf("[%d/%d] %s... ", i+1, len(steps), step.name)
		if err := step.fn(); err != nil {
			fmt.Printf("❌ FAILED\n")
			fmt.Printf("  Error: %v\n\n", err)
			failed = true
			break
		}
		fmt.Printf("✅ OK\n")
	}

	fmt.Println()
	if failed {
		fmt.Println("❌ SMOKE TEST FAILED")
		os.Exit(1)
	}

	fmt.Println("✅ ALL SMOKE TESTS PASSED")
}

func testHealthz() error {
	_, err := call(http.MethodGet, "/healthz", nil, http.StatusOK)
	return err
}

func testDevSignIn() error {
	// token from env wins
	if token != "" {
		return nil
	}

	body, err := call(http.MethodPost, "/v1/auth/dev", map[string]string{"userId": userID}, http.StatusOK)
	if err != nil {
		return err
	}

	var result struct {
		AccessToken string `json:"accessToken"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if result.AccessToken == "" {
		return fmt.Errorf("empty access token")
	}
	token = result.AccessToken
	return nil
}

func testOptions() error {
	body, err := call(http.MethodGet, "/v1/meal-plan/options", nil, http.StatusOK)
	if err != nil {
		return err
	}

	var result struct {
		Goals     []string `json:"goals"`
		DietTypes []string `json:"dietTypes"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if len(result.Goals) == 0 || len(result.DietTypes) == 0 {
		return fmt.Errorf("empty planner options")
	}
	return nil
}

func testGenerate() error {
	payload := map[string]any{
		"goal":          "Energy Balance",
		"dietType":      "Kerala",
		"restrictions":  []string{},
		"servings":      "2",
		"duration":      "7",
		"calorieTarget": "1800",
	}

	body, err := call(http.MethodPost, "/v1/meal-plan/generate", payload, http.StatusOK)
	if err != nil {
		return err
	}

	var result struct {
		Plan struct {
			Days []json.RawMessage `json:"days"`
		} `json:"plan"`
	}
	if err := json.Unmarshal(body, &result); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if len(result.Plan.Days) != 7 {
		return fmt.Errorf("expected 7 days, got %d", len(result.Plan.Days))
	}
	return nil
}

func testSave() error {
	_, err := call(http.MethodPost, "/v1/meal-plan/save", nil, http.StatusOK)
	return err
}

func testGetSaved() error {
	_, err := call(http.MethodGet, "/v1/meal-plan/saved?page=1", nil, http.StatusOK)
	return err
}

func testLogMeal() error {
	payload := map[string]any{
		"recipeId": 1,
		"type":     "Lunch",
		"portion":  1.5,
		"rice":     map[string]int{"grams": 150},
		"date":     testDate,
	}

	body, err := call(http.MethodPost, "/v1/meals", payload, http.StatusCreated)
	if err != nil {
		return err
	}

	var meal struct {
		ID       string `json:"id"`
		Calories int    `json:"calories"`
	}
	if err := json.Unmarshal(body, &meal); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if meal.ID == "" || meal.Calories <= 0 {
		return fmt.Errorf("unexpected meal: %s", string(body))
	}
	loggedMeals = append(loggedMeals, meal.ID)
	return nil
}

func testSummary() error {
	_, err := call(http.MethodGet, "/v1/meals/summary", nil, http.StatusOK)
	return err
}

func testDashboard() error {
	body, err := call(http.MethodGet, "/v1/dashboard", nil, http.StatusOK)
	if err != nil {
		return err
	}

	var stats struct {
		CaloriesConsumed int `json:"caloriesConsumed"`
	}
	if err := json.Unmarshal(body, &stats); err != nil {
		return fmt.Errorf("decode failed: %w", err)
	}
	if stats.CaloriesConsumed <= 0 {
		return fmt.Errorf("dashboard shows no calories after logging a meal")
	}
	return nil
}

// Reports come back inline (200) in local mode or as a download link (201) with S3.
func testMealPlanReport() error {
	return fetchReport("/v1/reports/meal-plan?format=csv")
}

func testMealLogReport() error {
	return fetchReport(fmt.Sprintf("/v1/reports/meal-log?from=%s&to=%s&format=pdf", testDate, testDate))
}

func fetchReport(path string) error {
	status, body, err := send(http.MethodGet, path, nil)
	if err != nil {
		return err
	}

	switch status {
	case http.StatusOK:
		if len(body) == 0 {
			return fmt.Errorf("empty report body")
		}
		return nil
	case http.StatusCreated:
		var result struct {
			DownloadURL string `json:"downloadUrl"`
		}
		if err := json.Unmarshal(body, &result); err != nil {
			return fmt.Errorf("decode failed: %w", err)
		}
		if result.DownloadURL == "" {
			return fmt.Errorf("missing downloadUrl")
		}
		resp, err := client.Get(result.DownloadURL)
		if err != nil {
			return fmt.Errorf("download failed: %w", err)
		}
		defer resp.Body.Close()
		if resp.StatusCode != http.StatusOK {
			return fmt.Errorf("download status=%d", resp.StatusCode)
		}
		return nil
	default:
		return fmt.Errorf("status=%d body=%s", status, string(body))
	}
}

func testDeleteMeals() error {
	for _, id := range loggedMeals {
		if _, err := call(http.MethodDelete, "/v1/meals/"+id, nil, http.StatusNoContent); err != nil {
			return err
		}
	}
	return nil
}

func testDeleteSaved() error {
	_, err := call(http.MethodDelete, "/v1/meal-plan/saved", nil, http.StatusNoContent)
	return err
}

// Helper functions

func call(method, path string, payload any, want int) ([]byte, error) {
	status, body, err := send(method, path, payload)
	if err != nil {
		return nil, err
	}
	if status != want {
		return nil, fmt.Errorf("status=%d body=%s", status, string(body))
	}
	return body, nil
}

func send(method, path string, payload any) (int, []byte, error) {
	var reader io.Reader
	if payload != nil {
		raw, err := json.Marshal(payload)
		if err != nil {
			return 0, nil, err
		}
		reader = bytes.NewReader(raw)
	}

	req, err := http.NewRequest(method, apiBase+path, reader)
	if err != nil {
		return 0, nil, err
	}
	if payload != nil {
		req.Header.Set("Content-Type", "application/json")
	}
	addAuth(req)

	resp, err := client.Do(req)
	if err != nil {
		return 0, nil, err
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return 0, nil, err
	}
	return resp.StatusCode, body, nil
}

func addAuth(req *http.Request) {
	if token != "" {
		req.Header.Set("Authorization", "Bearer "+token)
	}
}

func getEnv(key, defaultVal string) string {
	if val := os.Getenv(key); val != "" {
		return val
	}
	return defaultVal
}

func maskString(s string) string {
	if s == "" {
		return "(not set)"
	}
	if len(s) <= 8 {
		return "***"
	}
	return s[:4] + "..." + s[len(s)-4:]
}
