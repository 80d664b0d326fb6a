package scores

import "strings"

// Record is one sanitized scoreboard row.
type Record struct {
	TeamName     string `json:"teamName"`
	Idea         string `json:"idea"`
	AverageScore string `json:"averageScore"`
	Feedback     string `json:"feedback"`
}

// Column positions in the source sheet.
const (
	colTeamName = iota
	colIdea
	colAverageScore
	colFeedback
)

// Sanitize converts raw sheet rows into Records. The first row is always
// treated as a header and discarded, regardless of its content. Missing
// cells default to empty strings, every field is trimmed, and rows without
// a team name are filtered out rather than reported as errors. Order among
// retained rows is preserved.
func Sanitize(rows [][]string) []Record {
	records := []Record{}
	if len(rows) < 2 {
		return records
	}
	for _, row := range rows[1:] {
		rec := Record{
			TeamName:     cell(row, colTeamName),
			Idea:         cell(row, colIdea),
			AverageScore: cell(row, colAverageScore),
			Feedback:     cell(row, colFeedback),
		}
		if rec.TeamName == "" {
			continue
		}
		records = append(records, rec)
	}
	return records
}

func cell(row []string, i int) string {
	if i >= len(row) {
		return ""
	}
	return strings.TrimSpace(row[i])
}
