// Copyright (c) 2025 Daniel Kuo.
// Source-available; no permission granted to use, copy, modify, or distribute. See LICENSE.

package catalog

import "github.com/danielhkuo/parade-jury/models"

// Category IDs of the built-in parade dataset
const (
	CategoryGroteWagens  = "groteWagens"
	CategoryKleineWagens = "kleineWagens"
	CategoryLoopgroepen  = "loopgroepen"
)

// Default returns the built-in parade dataset. Each call returns a fresh copy.
func Default() *Dataset {
	return &Dataset{
		Categories: []models.Category{
			{ID: CategoryGroteWagens, Label: "Grote Wagens", Icon: "truck", Color: "bg-blue-500"},
			{ID: CategoryKleineWagens, Label: "Kleine Wagens", Icon: "car", Color: "bg-green-500"},
			{ID: CategoryLoopgroepen, Label: "Loopgroepen", Icon: "users", Color: "bg-purple-500"},
		},
		Participants: []models.Participant{
			{ID: "g1", Name: "De Vrolijke Bouwers", Category: CategoryGroteWagens, Title: "Reis om de wereld"},
			{ID: "g2", Name: "CV De Doordouwers", Category: CategoryGroteWagens, Title: "Vikings op pad"},
			{ID: "g3", Name: "Buurtschap Centrum", Category: CategoryGroteWagens, Title: "Alice in Wonderland"},
			{ID: "g4", Name: "De Laatkomers", Category: CategoryGroteWagens, Title: "Tijdreizigers"},
			{ID: "g5", Name: "CV Net Op Tijd", Category: CategoryGroteWagens, Title: "Steampunk Circus"},
			{ID: "g6", Name: "De Bouwloods", Category: CategoryGroteWagens, Title: "Atlantis Herrezen"},

			{ID: "k1", Name: "De Mini's", Category: CategoryKleineWagens, Title: "Mario Kart"},
			{ID: "k2", Name: "Duo Penotti", Category: CategoryKleineWagens, Title: "Twee kleuren in de wind"},
			{ID: "k3", Name: "De Solist", Category: CategoryKleineWagens, Title: "Ik loop alleen"},
			{ID: "k4", Name: "CV De Kleintjes", Category: CategoryKleineWagens, Title: "Boer zoekt Vrouw"},
			{ID: "k5", Name: "Duo Zonder Naam", Category: CategoryKleineWagens, Title: "Peppi en Kokki"},

			{ID: "l1", Name: "De Dansmarietjes", Category: CategoryLoopgroepen, Title: "Swingend het jaar door"},
			{ID: "l2", Name: "Vriendengroep X", Category: CategoryLoopgroepen, Title: "Levende Standbeelden"},
			{ID: "l3", Name: "School De Klimop", Category: CategoryLoopgroepen, Title: "De tovenaarsleerlingen"},
			{ID: "l4", Name: "De Buren", Category: CategoryLoopgroepen, Title: "De Zoete Inval"},
			{ID: "l5", Name: "Fanfare De Blaasbalg", Category: CategoryLoopgroepen, Title: "Muziek uit de ruimte"},
			{ID: "l6", Name: "CV De Stoppers", Category: CategoryLoopgroepen, Title: "Verkeersregelaars"},
		},
		Assignments: map[string][]string{
			"JURY1": {"g1", "g2", "g3", "l1", "l2", "l3", "l4", "l5", "l6"},
			"JURY2": {"g4", "g5", "g6", "k1", "k2", "k3", "k4", "k5"},
			"JURY3": {"k1", "l3"},
		},
	}
}
