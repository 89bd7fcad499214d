// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

/*
Package catalog holds the participant registry and the static dataset it is built from.

# Dataset

A deployment runs with one Dataset: ordered categories, participants, and
jury assignments. Use the built-in parade dataset or load one from YAML:

	ds := catalog.Default()
	ds, err := catalog.Load("parade.yaml")

Load validates the dataset. Every assigned participant ID must exist, and
the ADMIN assignment must not be configured since it is derived.

# Catalog

The Catalog is immutable after New:

	table := auth.NewTable(ds.Assignments, ds.ParticipantIDs())
	c := catalog.New(ds, table)

	c.GetAll()               // every participant
	c.GetByJuryCode("JURY1") // participants assigned to JURY1
	c.GetByID("g1")          // one participant, ok=false if unknown
*/
package catalog
