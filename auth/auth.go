// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package auth

import (
	"slices"
	"strings"
)

// AdminCode is granted every participant and sees every jury's votes on export
const AdminCode = "ADMIN"

// NormalizeCode trims and upper-cases a jury code as typed by a juror
func NormalizeCode(code string) string {
	return strings.ToUpper(strings.TrimSpace(code))
}

// Table is the static access-control table: jury code -> assigned participant IDs.
// It is immutable after NewTable.
type Table struct {
	assignments map[string]map[string]struct{}
	ordered     map[string][]string
}

// NewTable builds the table from the configured assignments. The ADMIN entry
// is derived from allParticipantIDs and never taken from the configuration.
func NewTable(assignments map[string][]string, allParticipantIDs []string) *Table {
	t := &Table{
		assignments: make(map[string]map[string]struct{}, len(assignments)+1),
		ordered:     make(map[string][]string, len(assignments)+1),
	}

	for code, ids := range assignments {
		t.add(NormalizeCode(code), ids)
	}
	t.add(AdminCode, allParticipantIDs)

	return t
}

func (t *Table) add(code string, ids []string) {
	set := make(map[string]struct{}, len(ids))
	list := make([]string, 0, len(ids))
	for _, id := range ids {
		if _, dup := set[id]; dup {
			continue
		}
		set[id] = struct{}{}
		list = append(list, id)
	}
	t.assignments[code] = set
	t.ordered[code] = list
}

// Login reports whether the code exists in the table. Unknown codes are not an error.
func (t *Table) Login(code string) bool {
	_, ok := t.assignments[NormalizeCode(code)]
	return ok
}

// AssignedParticipantIDs returns the IDs the code may see and score,
// or an empty slice for an unknown code.
func (t *Table) AssignedParticipantIDs(code string) []string {
	ids := t.ordered[NormalizeCode(code)]
	out := make([]string, len(ids))
	copy(out, ids)
	return out
}

// IsAssigned reports whether code may act on participantID
func (t *Table) IsAssigned(code, participantID string) bool {
	_, ok := t.assignments[NormalizeCode(code)][participantID]
	return ok
}

// Codes returns every known jury code, ADMIN included, sorted
func (t *Table) Codes() []string {
	codes := make([]string, 0, len(t.assignments))
	for code := range t.assignments {
		codes = append(codes, code)
	}
	slices.Sort(codes)
	return codes
}

// IsAdmin is an exact comparison against AdminCode. Callers pass an
// already-normalized code.
func IsAdmin(code string) bool {
	return code == AdminCode
}
