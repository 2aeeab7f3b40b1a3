package models

import "time"

// QueenStatus enumerates the observed state of a colony's queen.
type QueenStatus string

const (
	QueenRight   QueenStatus = "Queenright"
	QueenLess    QueenStatus = "Queenless"
	QueenVirgin  QueenStatus = "Virgin"
	QueenUnknown QueenStatus = "Unknown"
)

// WeatherSnapshot captures yard conditions at the time of a visit.
type WeatherSnapshot struct {
	Temperature float64 `json:"temperature"`
	Condition   string  `json:"condition"`
	Wind        string  `json:"wind"`
}

// TechnicalNotes holds the inspection-grade observations of a journal entry.
type TechnicalNotes struct {
	ClusterSize   string      `json:"clusterSize"`
	QueenStatus   QueenStatus `json:"queenStatus"`
	Interventions []string    `json:"interventions"`
	Diseases      []string    `json:"diseases"`
}

// MediaAttachment references a photo or video captured during the visit.
type MediaAttachment struct {
	Type    string `json:"type"`
	URL     string `json:"url"`
	Caption string `json:"caption"`
}

// JournalEntry is a dated field observation. Entries are replaced wholesale on
// edit; there is no partial patch path and no per-entry history.
type JournalEntry struct {
	ID             string            `json:"id"`
	Date           time.Time         `json:"date"`
	Author         string            `json:"author"`
	Weather        WeatherSnapshot   `json:"weather"`
	Phenology      string            `json:"phenology"`
	Narrative      string            `json:"narrative"`
	TechnicalNotes TechnicalNotes    `json:"technicalNotes"`
	Tags           []string          `json:"tags"`
	Media          []MediaAttachment `json:"media,omitempty"`
}
