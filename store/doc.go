// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package store persists votes and registered jury panels.

# Vote Store

VoteStore holds at most one vote per participant ID. Save overwrites the
slot no matter which jury wrote it before (last write wins):

	s.Save(ctx, models.Vote{ParticipantID: "g1", JuryCode: "JURY1", ...})
	s.Save(ctx, models.Vote{ParticipantID: "g1", JuryCode: "JURY2", ...})

	s.GetVote(ctx, "g1", "JURY1") // ok=false, overwritten
	s.GetVote(ctx, "g1", "JURY2") // the second vote

The store does not validate scores, participants, or authorization.
Callers submit through jury.SubmitVote, which does.

Concurrent writers for the same participant are not reconciled. There is
no version check or conflict detection.

# Implementations

  - MemoryStore: process memory, guarded by a sync.RWMutex
  - SQLStore: SQLite or PostgreSQL via database/sql, one upsert per save

# Errors

SQL failures are wrapped with ErrStorage:

	if errors.Is(err, store.ErrStorage) { ... }

Jury lookups that miss return ErrNotFound.
*/
package store
