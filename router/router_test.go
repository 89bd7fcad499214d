// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package router

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/danielhkuo/parade-jury/auth"
	"github.com/danielhkuo/parade-jury/catalog"
	"github.com/danielhkuo/parade-jury/jury"
	"github.com/danielhkuo/parade-jury/models"
	"github.com/danielhkuo/parade-jury/store"
	"github.com/danielhkuo/parade-jury/testutil"
)

// newTestRouter wires the scenario dataset to a fresh SQLite store
func newTestRouter(t *testing.T) *http.ServeMux {
	t.Helper()

	conn := testutil.SetupTestDB(t)
	t.Cleanup(func() { conn.Close() })

	ds := testutil.ScenarioDataset()
	table := auth.NewTable(ds.Assignments, ds.ParticipantIDs())
	votes := store.NewSQLStore(conn)
	svc := jury.NewServices(table, catalog.New(ds, table), votes, votes, ds.Categories)

	return NewRouter(svc, table)
}

func TestHealthEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/health", nil))

	if w.Code != http.StatusOK {
		t.Errorf("Expected status 200, got %d", w.Code)
	}
	if w.Body.String() != "OK" {
		t.Errorf("Expected body 'OK', got '%s'", w.Body.String())
	}
}

func TestRootEndpoint(t *testing.T) {
	mux := newTestRouter(t)

	w := httptest.NewRecorder()
	mux.ServeHTTP(w, httptest.NewRequest("GET", "/", nil))

	expected := "parade-jury API v1"
	if w.Body.String() != expected {
		t.Errorf("Expected body '%s', got '%s'", expected, w.Body.String())
	}
}

func TestRouteExistence(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"GET", "/health"},
		{"GET", "/"},
		{"POST", "/login"},
		{"GET", "/categories"},
		{"GET", "/dashboard"},
		{"GET", "/categories/groteWagens/participants"},
		{"GET", "/participants/g1/vote"},
		{"POST", "/votes"},
		{"GET", "/export"},
		{"POST", "/export/reset"},
		{"POST", "/juries"},
		{"GET", "/juries"},
		{"GET", "/juries/some-id"},
		{"DELETE", "/juries/some-id"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code == http.StatusMethodNotAllowed {
				t.Errorf("Route %s %s returned 405, expected route handler to exist", tc.method, tc.path)
			}
		})
	}
}

func TestMethodNotAllowed(t *testing.T) {
	mux := newTestRouter(t)

	testCases := []struct {
		method string
		path   string
	}{
		{"POST", "/health"},
		{"DELETE", "/votes"},
		{"PUT", "/export"},
	}

	for _, tc := range testCases {
		t.Run(tc.method+" "+tc.path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest(tc.method, tc.path, nil))

			if w.Code != http.StatusMethodNotAllowed {
				t.Errorf("Expected 405 for %s %s, got %d", tc.method, tc.path, w.Code)
			}
		})
	}
}

func TestJuryRoutesRequireCode(t *testing.T) {
	mux := newTestRouter(t)

	for _, path := range []string{"/dashboard", "/export", "/juries", "/participants/g1/vote"} {
		t.Run(path, func(t *testing.T) {
			w := httptest.NewRecorder()
			mux.ServeHTTP(w, httptest.NewRequest("GET", path, nil))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)

			w = httptest.NewRecorder()
			mux.ServeHTTP(w, testutil.MakeRequest("GET", path, nil, testutil.JuryHeader("NOBODY")))
			testutil.AssertStatus(t, w, http.StatusUnauthorized)
		})
	}
}

// TestJuryWorkflow walks one juror through login, browsing, voting,
// handing a participant over to another jury, export and reset
func TestJuryWorkflow(t *testing.T) {
	mux := newTestRouter(t)
	do := func(method, path string, body interface{}, code string) *httptest.ResponseRecorder {
		var headers map[string]string
		if code != "" {
			headers = testutil.JuryHeader(code)
		}
		w := httptest.NewRecorder()
		mux.ServeHTTP(w, testutil.MakeRequest(method, path, body, headers))
		return w
	}

	// Step 1: login normalizes the code
	w := do("POST", "/login", models.LoginRequest{Code: "jury1"}, "")
	testutil.AssertStatus(t, w, http.StatusOK)
	var login models.LoginResponse
	testutil.AssertJSON(t, w, &login)
	code := login.Code
	if code != "JURY1" {
		t.Fatalf("Step 1 - Expected JURY1, got %s", code)
	}

	// Step 2: the path parameter reaches the category browser
	w = do("GET", "/categories/groteWagens/participants", nil, code)
	testutil.AssertStatus(t, w, http.StatusOK)
	var participants []models.ParticipantWithVote
	testutil.AssertJSON(t, w, &participants)
	if len(participants) != 1 || participants[0].ID != "g1" {
		t.Fatalf("Step 2 - Expected [g1], got %+v", participants)
	}

	w = do("GET", "/categories/kleineWagens/participants", nil, code)
	testutil.AssertStatus(t, w, http.StatusOK)
	participants = nil
	testutil.AssertJSON(t, w, &participants)
	if len(participants) != 0 {
		t.Errorf("Step 2 - Expected no kleineWagens participants for JURY1, got %+v", participants)
	}

	// Step 3: vote and read it back
	w = do("POST", "/votes", models.SubmitVoteRequest{ParticipantID: "g1", Originality: 8, Interaction: 6}, code)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/participants/g1/vote", nil, code)
	testutil.AssertStatus(t, w, http.StatusOK)

	// Step 4: dashboard shows completion
	w = do("GET", "/dashboard", nil, code)
	testutil.AssertStatus(t, w, http.StatusOK)
	var dashboard []models.DashboardCategory
	testutil.AssertJSON(t, w, &dashboard)
	if len(dashboard) != 1 || dashboard[0].Progress != 100 {
		t.Errorf("Step 4 - Expected one complete category, got %+v", dashboard)
	}

	// Step 5: ADMIN overwrites g1; JURY1 no longer sees a vote
	w = do("POST", "/votes", models.SubmitVoteRequest{ParticipantID: "g1", Originality: 3, Interaction: 4}, "ADMIN")
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/participants/g1/vote", nil, code)
	testutil.AssertStatus(t, w, http.StatusNotFound)

	// Step 6: export scoping
	w = do("GET", "/export", nil, code)
	testutil.AssertStatus(t, w, http.StatusOK)
	var mine []models.Vote
	if err := json.Unmarshal(w.Body.Bytes(), &mine); err != nil {
		t.Fatalf("Step 6 - Failed to decode export: %v", err)
	}
	if len(mine) != 0 {
		t.Errorf("Step 6 - Expected JURY1 export to be empty, got %+v", mine)
	}

	w = do("GET", "/export", nil, "ADMIN")
	testutil.AssertStatus(t, w, http.StatusOK)
	var all []models.Vote
	if err := json.Unmarshal(w.Body.Bytes(), &all); err != nil {
		t.Fatalf("Step 6 - Failed to decode export: %v", err)
	}
	if len(all) != 1 || all[0].JuryCode != "ADMIN" || all[0].Total != 7 {
		t.Errorf("Step 6 - Expected ADMIN's vote only, got %+v", all)
	}

	// Step 7: reset
	w = do("POST", "/export/reset", models.ResetRequest{Confirm: "RESET"}, code)
	testutil.AssertStatus(t, w, http.StatusOK)

	w = do("GET", "/export", nil, "ADMIN")
	if w.Body.String() != "[]" {
		t.Errorf("Step 7 - Expected empty export after reset, got %s", w.Body.String())
	}
}
