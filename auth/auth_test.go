// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"slices"
	"testing"
)

func newTestTable() *Table {
	return NewTable(
		map[string][]string{
			"JURY1": {"g1", "g2", "g1"},
			"jury2": {"k1"},
			"EMPTY": {},
		},
		[]string{"g1", "g2", "k1", "l1"},
	)
}

func TestNormalizeCode(t *testing.T) {
	tests := []struct {
		in   string
		want string
	}{
		{"JURY1", "JURY1"},
		{"jury1", "JURY1"},
		{"  Jury1\t", "JURY1"},
		{"", ""},
		{"admin", "ADMIN"},
	}

	for _, tt := range tests {
		if got := NormalizeCode(tt.in); got != tt.want {
			t.Errorf("NormalizeCode(%q) = %q, want %q", tt.in, got, tt.want)
		}
	}
}

func TestLogin(t *testing.T) {
	table := newTestTable()

	tests := []struct {
		name string
		code string
		want bool
	}{
		{"configured code", "JURY1", true},
		{"normalized at build", "JURY2", true},
		{"normalized at lookup", " jury1 ", true},
		{"admin", "ADMIN", true},
		{"code with no participants", "EMPTY", true},
		{"unknown", "JURY3", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := table.Login(tt.code); got != tt.want {
				t.Errorf("Login(%q) = %v, want %v", tt.code, got, tt.want)
			}
		})
	}
}

func TestAssignedParticipantIDs(t *testing.T) {
	table := newTestTable()

	t.Run("deduplicated in configured order", func(t *testing.T) {
		got := table.AssignedParticipantIDs("JURY1")
		if !slices.Equal(got, []string{"g1", "g2"}) {
			t.Errorf("got %v, want [g1 g2]", got)
		}
	})

	t.Run("admin gets every participant", func(t *testing.T) {
		got := table.AssignedParticipantIDs(AdminCode)
		if !slices.Equal(got, []string{"g1", "g2", "k1", "l1"}) {
			t.Errorf("got %v, want all participants", got)
		}
	})

	t.Run("unknown code is empty", func(t *testing.T) {
		got := table.AssignedParticipantIDs("NOPE")
		if len(got) != 0 {
			t.Errorf("got %v, want empty", got)
		}
	})

	t.Run("result is a copy", func(t *testing.T) {
		got := table.AssignedParticipantIDs("JURY1")
		got[0] = "mutated"
		if table.AssignedParticipantIDs("JURY1")[0] != "g1" {
			t.Error("caller mutation leaked into the table")
		}
	})
}

func TestAdminIsDerived(t *testing.T) {
	// A configured ADMIN entry is overwritten by the full participant list
	table := NewTable(map[string][]string{"ADMIN": {"g1"}}, []string{"g1", "k1"})

	if got := table.AssignedParticipantIDs(AdminCode); !slices.Equal(got, []string{"g1", "k1"}) {
		t.Errorf("got %v, want [g1 k1]", got)
	}
}

func TestIsAssigned(t *testing.T) {
	table := newTestTable()

	tests := []struct {
		code string
		pid  string
		want bool
	}{
		{"JURY1", "g1", true},
		{"jury1", "g2", true},
		{"JURY1", "k1", false},
		{"JURY2", "k1", true},
		{"ADMIN", "l1", true},
		{"NOPE", "g1", false},
	}

	for _, tt := range tests {
		if got := table.IsAssigned(tt.code, tt.pid); got != tt.want {
			t.Errorf("IsAssigned(%q, %q) = %v, want %v", tt.code, tt.pid, got, tt.want)
		}
	}
}

func TestCodes(t *testing.T) {
	got := newTestTable().Codes()
	want := []string{"ADMIN", "EMPTY", "JURY1", "JURY2"}
	if !slices.Equal(got, want) {
		t.Errorf("Codes() = %v, want %v", got, want)
	}
}

func TestIsAdmin(t *testing.T) {
	if !IsAdmin("ADMIN") {
		t.Error("IsAdmin(ADMIN) = false")
	}
	for _, code := range []string{"admin", " ADMIN", "JURY1", ""} {
		if IsAdmin(code) {
			t.Errorf("IsAdmin(%q) = true, want exact match only", code)
		}
	}
}
