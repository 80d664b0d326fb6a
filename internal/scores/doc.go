// Package scores converts raw spreadsheet rows into validated scoreboard
// records.
//
// Sanitization is a pure, stable filter: the header row is dropped, cells
// are trimmed, and rows without a team name are excluded. Malformed input
// (short rows, empty sheets) degrades to an empty or partial result and
// never produces an error, since partial data is preferred over total
// failure.
package scores
