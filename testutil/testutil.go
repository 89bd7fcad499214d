// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package testutil

import (
	"bytes"
	"database/sql"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"github.com/danielhkuo/parade-jury/catalog"
	"github.com/danielhkuo/parade-jury/db"
	"github.com/danielhkuo/parade-jury/models"
)

// TestDBURL is an in-memory SQLite database; each SetupTestDB call gets a fresh one
const TestDBURL = ":memory:"

// SetupTestDB creates a fresh SQLite test database with the full schema
func SetupTestDB(t *testing.T) *sql.DB {
	t.Helper()

	conn, err := db.Open(db.TypeSQLite, TestDBURL)
	if err != nil {
		t.Fatalf("Failed to open test database: %v", err)
	}

	if err := db.CreateSchema(conn); err != nil {
		conn.Close()
		t.Fatalf("Failed to create schema: %v", err)
	}

	return conn
}

// ScenarioDataset is the two-participant dataset: g1 (groteWagens) and
// k1 (kleineWagens), with JURY1 assigned only g1.
func ScenarioDataset() *catalog.Dataset {
	return &catalog.Dataset{
		Categories: []models.Category{
			{ID: catalog.CategoryGroteWagens, Label: "Grote Wagens"},
			{ID: catalog.CategoryKleineWagens, Label: "Kleine Wagens"},
		},
		Participants: []models.Participant{
			{ID: "g1", Name: "De Vrolijke Bouwers", Category: catalog.CategoryGroteWagens},
			{ID: "k1", Name: "De Mini's", Category: catalog.CategoryKleineWagens},
		},
		Assignments: map[string][]string{
			"JURY1": {"g1"},
		},
	}
}

// FixedTime is a stable timestamp for test votes
var FixedTime = time.Date(2025, time.February, 1, 14, 3, 0, 0, time.UTC)

// NewVote builds a vote with a correct total
func NewVote(participantID, juryCode string, originality, interaction float64) models.Vote {
	return models.Vote{
		ParticipantID: participantID,
		JuryCode:      juryCode,
		Originality:   originality,
		Interaction:   interaction,
		Total:         originality + interaction,
		Timestamp:     FixedTime,
	}
}

// MakeRequest creates an HTTP test request
func MakeRequest(method, path string, body interface{}, headers map[string]string) *http.Request {
	var req *http.Request
	if body != nil {
		jsonBody, _ := json.Marshal(body)
		req = httptest.NewRequest(method, path, bytes.NewReader(jsonBody))
		req.Header.Set("Content-Type", "application/json")
	} else {
		req = httptest.NewRequest(method, path, nil)
	}

	for k, v := range headers {
		req.Header.Set(k, v)
	}

	return req
}

// JuryHeader returns the header map that authenticates as code
func JuryHeader(code string) map[string]string {
	return map[string]string{"X-Jury-Code": code}
}

// AssertStatus checks that the response has the expected status code
func AssertStatus(t *testing.T, w *httptest.ResponseRecorder, expected int) {
	t.Helper()
	if w.Code != expected {
		t.Errorf("Expected status %d, got %d. Body: %s", expected, w.Code, w.Body.String())
	}
}

// AssertJSON decodes the response body into the provided struct
func AssertJSON(t *testing.T, w *httptest.ResponseRecorder, v interface{}) {
	t.Helper()
	if err := json.NewDecoder(w.Body).Decode(v); err != nil {
		t.Fatalf("Failed to decode JSON response: %v", err)
	}
}
