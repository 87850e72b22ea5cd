// Package seed holds the static events every new client starts with.
package seed

import (
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

type mockEvent struct {
	id           string
	title        string
	description  string
	location     string
	category     string
	compensation string
	requirements []string
	day          int // day of the month, 1 based
	startHour    int
	startMinute  int
	duration     time.Duration
	needed       int
	signedUp     int
}

var mockEvents = []mockEvent{
	{
		id:           "evt-1",
		title:        "Old Town Walking Tour",
		description:  "A two hour walk through the historic centre for a group of international visitors.",
		location:     "Main Square, Fountain",
		category:     "City Tour",
		compensation: "€60 per tour",
		requirements: []string{"Fluent English", "Knowledge of local history", "Comfortable walking shoes"},
		day:          3, startHour: 10, duration: 2 * time.Hour,
		needed: 3, signedUp: 2,
	},
	{
		id:           "evt-2",
		title:        "Museum Night",
		description:  "Guided evening tours through the permanent exhibition during the long museum night.",
		location:     "City Museum, Entrance Hall",
		category:     "Museum",
		compensation: "€80 per evening",
		requirements: []string{"Art history background", "Available until midnight"},
		day:          7, startHour: 18, duration: 5 * time.Hour,
		needed: 4, signedUp: 4,
	},
	{
		id:           "evt-3",
		title:        "Harbour Boat Trip",
		description:  "Commentary on board of the harbour ferry for a school class.",
		location:     "Pier 4",
		category:     "Boat Tour",
		compensation: "€45 per trip",
		requirements: []string{"Experience with children", "Not prone to seasickness"},
		day:          10, startHour: 9, startMinute: 30, duration: 90 * time.Minute,
		needed: 2, signedUp: 0,
	},
	{
		id:           "evt-4",
		title:        "Street Food Market Tour",
		description:  "Tasting tour across the weekend market with six stops.",
		location:     "Market Hall, North Gate",
		category:     "Food Tour",
		compensation: "€55 per tour and free tastings",
		requirements: []string{"Food hygiene certificate", "German and English"},
		day:          14, startHour: 12, duration: 3 * time.Hour,
		needed: 5, signedUp: 1,
	},
	{
		id:           "evt-5",
		title:        "Castle Hill Hike",
		description:  "Half day hike to the castle ruins with a stop at the viewpoint.",
		location:     "Castle Trailhead Parking",
		category:     "Outdoor",
		compensation: "€70 per hike",
		requirements: []string{"First aid training", "Hiking experience"},
		day:          17, startHour: 8, duration: 4 * time.Hour,
		needed: 3, signedUp: 3,
	},
	{
		id:           "evt-6",
		title:        "Gallery Opening",
		description:  "Short introductions to the new contemporary art exhibition.",
		location:     "Riverside Gallery",
		category:     "Art",
		compensation: "€40 per evening",
		requirements: []string{"Interest in contemporary art"},
		day:          21, startHour: 19, duration: 2 * time.Hour,
		needed: 2, signedUp: 1,
	},
	{
		id:           "evt-7",
		title:        "Weekend Music Festival",
		description:  "Visitor guidance across the festival grounds over two days.",
		location:     "City Park, Main Stage",
		category:     "Festival",
		compensation: "€150 for the weekend",
		requirements: []string{"Crowd management experience", "Available both days"},
		day:          24, startHour: 14, duration: 30 * time.Hour,
		needed: 6, signedUp: 2,
	},
	{
		id:           "evt-8",
		title:        "Cathedral Tower Tour",
		description:  "Small group climbs to the cathedral tower with a talk on its architecture.",
		location:     "Cathedral, South Portal",
		category:     "City Tour",
		compensation: "€50 per tour",
		requirements: []string{"No fear of heights", "Knowledge of gothic architecture"},
		day:          28, startHour: 11, duration: 90 * time.Minute,
		needed: 2, signedUp: 0,
	},
}

// MockEvents builds the seed list for the month containing base.
// The order and ids are stable; only the dates follow base.
func MockEvents(base time.Time) []*entity.Event {
	loc := base.Location()
	first := time.Date(base.Year(), base.Month(), 1, 0, 0, 0, 0, loc)

	events := make([]*entity.Event, 0, len(mockEvents))
	for _, m := range mockEvents {
		start := time.Date(first.Year(), first.Month(), m.day, m.startHour, m.startMinute, 0, 0, loc)
		events = append(events, &entity.Event{
			ID:             m.id,
			Title:          m.title,
			Description:    m.description,
			Start:          start,
			End:            start.Add(m.duration),
			Location:       m.location,
			GuidesNeeded:   m.needed,
			GuidesSignedUp: m.signedUp,
			Category:       m.category,
			Compensation:   m.compensation,
			Requirements:   append([]string(nil), m.requirements...),
		})
	}
	return events
}
