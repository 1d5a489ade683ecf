package constants

import (
	"strings"
)

type DocumentType string

const (
	BasketballBoxScore DocumentType = "basketball_box_score"
	FootballBoxScore   DocumentType = "football_box_score"
	VolleyballBoxScore DocumentType = "volleyball_box_score"
	WrestlingResults   DocumentType = "wrestling_results"
	HonorRoll          DocumentType = "honor_roll"
	Standings          DocumentType = "standings"
	Generic            DocumentType = "generic"
)

var allDocumentTypes = []DocumentType{
	BasketballBoxScore,
	FootballBoxScore,
	VolleyballBoxScore,
	WrestlingResults,
	HonorRoll,
	Standings,
	Generic,
}

func DocumentTypes() []string {
	result := make([]string, len(allDocumentTypes))
	for i, dt := range allDocumentTypes {
		result[i] = string(dt)
	}
	return result
}

func CanonicalizeDocumentType(input string) (DocumentType, bool) {
	if input == "" {
		return Generic, false
	}

	normalized := strings.ToLower(strings.TrimSpace(input))
	normalized = strings.ReplaceAll(normalized, " ", "_")
	normalized = strings.ReplaceAll(normalized, "-", "_")

	// synonyms map
	synonyms := map[string]DocumentType{
		"basketball":     BasketballBoxScore,
		"bball":          BasketballBoxScore,
		"box_score":      BasketballBoxScore,
		"football":       FootballBoxScore,
		"volleyball":     VolleyballBoxScore,
		"wrestling":      WrestlingResults,
		"honor_roll":     HonorRoll,
		"honors":         HonorRoll,
		"league_table":   Standings,
		"league_results": Standings,
	}

	if dt, ok := synonyms[normalized]; ok {
		return dt, true
	}

	for _, dt := range allDocumentTypes {
		if normalized == string(dt) {
			return dt, true
		}
	}

	return Generic, false
}
