// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package auth provides jury-code access control.

# Jury Codes

Codes are shared plaintext secrets. Every lookup normalizes the code first:

	code := auth.NormalizeCode("  jury1 ") // "JURY1"

# Access-Control Table

The table maps a code to the participant IDs it may see and score:

	table := auth.NewTable(dataset.Assignments, dataset.ParticipantIDs())
	ok := table.Login("jury1")                  // true
	ids := table.AssignedParticipantIDs("JURY1") // [g1 g2 g3 ...]

Unknown codes are a normal outcome: Login returns false and
AssignedParticipantIDs returns an empty slice.

# Admin Code

The reserved ADMIN code is assigned the union of all participant IDs,
computed when the table is built. It also sees every jury's votes on
export. IsAdmin is a plain string comparison, not a capability flag:

	if auth.IsAdmin(code) { ... }

Codes are plaintext and enumerable. This package is not a hardened
authentication system.
*/
package auth
