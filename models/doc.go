// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package models defines domain, request, and response types for the API.

# Domain Types

  - Category: a fixed group of participants (id, label, icon, color)
  - Participant: an entrant being judged, in exactly one category
  - Vote: one jury's score pair for one participant, plus total and timestamp
  - Jury: a registered jury panel (admin registry)

# Derived Types

  - DashboardCategory: a category with this jury's progress counters
  - ParticipantWithVote: a participant and the jury's vote, if any

The Vote pointer in ParticipantWithVote is nil when the jury has not
scored the participant yet. A zero-score vote is still a non-nil vote.

# Export Format

Vote serializes with the field names used by the export hand-off:

	{
	  "participantId": "g1",
	  "juryCode": "JURY1",
	  "originality": 8,
	  "interaction": 6,
	  "total": 14,
	  "timestamp": "2025-02-01T14:03:00Z"
	}

# Score Constants

	MinScore  = 1.0
	MaxScore  = 10.0
	ScoreStep = 0.5
*/
package models
