// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package models

import "time"

// Score bounds for both criteria
const (
	MinScore  = 1.0
	MaxScore  = 10.0
	ScoreStep = 0.5
)

// Domain types

type Category struct {
	ID    string `json:"id" yaml:"id"`
	Label string `json:"label" yaml:"label"`
	Icon  string `json:"icon,omitempty" yaml:"icon"`
	Color string `json:"color,omitempty" yaml:"color"`
}

type Participant struct {
	ID       string `json:"id" yaml:"id"`
	Name     string `json:"name" yaml:"name"`
	Category string `json:"category" yaml:"category"`
	Title    string `json:"title,omitempty" yaml:"title"`
}

// Vote is also the export record, so its JSON field names and order are
// part of the hand-off format read outside the app.
type Vote struct {
	ParticipantID string    `json:"participantId"`
	JuryCode      string    `json:"juryCode"`
	Originality   float64   `json:"originality"`
	Interaction   float64   `json:"interaction"`
	Total         float64   `json:"total"`
	Timestamp     time.Time `json:"timestamp"`
}

// Jury is a registered jury panel
type Jury struct {
	ID        string    `json:"id"`
	Name      string    `json:"name"`
	Category  string    `json:"category"`
	CreatedAt time.Time `json:"created_at"`
}

// Derived types

type DashboardCategory struct {
	Category
	TotalParticipants int     `json:"total_participants"`
	VotedParticipants int     `json:"voted_participants"`
	Progress          float64 `json:"progress"` // 0-100
}

// Vote is nil until this jury has scored the participant
type ParticipantWithVote struct {
	Participant
	Vote *Vote `json:"vote,omitempty"`
}

// Request types

type LoginRequest struct {
	Code string `json:"code"`
}

type SubmitVoteRequest struct {
	ParticipantID string  `json:"participant_id"`
	Originality   float64 `json:"originality"`
	Interaction   float64 `json:"interaction"`
}

type ResetRequest struct {
	Confirm string `json:"confirm"`
}

type CreateJuryRequest struct {
	Name     string `json:"name"`
	Category string `json:"category"`
}

// Response types

type LoginResponse struct {
	Code    string `json:"code"`
	IsAdmin bool   `json:"is_admin"`
}

type SubmitVoteResponse struct {
	Vote    Vote   `json:"vote"`
	Message string `json:"message"`
}

type ResetResponse struct {
	Message string `json:"message"`
}

// Error response

type ErrorResponse struct {
	Error   string `json:"error"`
	Message string `json:"message,omitempty"`
}
