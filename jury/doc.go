// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package jury implements the jury use cases on top of the catalog,
access-control table, and vote store.

# Use Cases

  - Login: normalize a code and check it exists
  - Dashboard: per-category progress for one jury
  - CategoryBrowser: a jury's participants in one category, with votes
  - VoteLookup: the jury's own vote for one participant
  - SubmitVote: validate and store a vote (last write wins per participant)
  - ExportVotes: the jury's votes (all votes for ADMIN) and full reset
  - Registry: admin list of jury panels

NewServices wires one instance of each:

	svc := jury.NewServices(table, cat, votes, juries, ds.Categories)
	rows, err := svc.Dashboard.Execute(ctx, "JURY1")

# Validation

SubmitVote rejects a vote with a *ValidationError when the participant is
unknown or not assigned to the jury, a score is outside 1-10 or not a
multiple of 0.5, the total is not the sum of both scores, or the
timestamp is missing:

	if errors.Is(err, jury.ErrValidation) { ... }

# Reset

ExportVotes.Clear removes every jury's votes. The HTTP layer requires
ResetConfirmation before calling it.
*/
package jury
