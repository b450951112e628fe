package quotes

import "sort"

// Record define one trading day's closing quote.
// Date is an ISO-8601 string and Close keeps the normalized textual form of
// the upstream price, so precision like "331.50" survives to the output.
type Record struct {
	Date  string
	Close string
}

// Normalize dedup records by date and sort ascending.
// The first occurrence of a date wins, later duplicates from overlapping
// month responses are discarded.
func Normalize(records []Record) []Record {
	seen := make(map[string]struct{}, len(records))
	result := make([]Record, 0, len(records))
	for _, record := range records {
		if _, found := seen[record.Date]; found {
			continue
		}

		seen[record.Date] = struct{}{}
		result = append(result, record)
	}

	// iso dates sort lexicographically
	sort.Slice(result, func(i, j int) bool {
		return result[i].Date < result[j].Date
	})

	return result
}
