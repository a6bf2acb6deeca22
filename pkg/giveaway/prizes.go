package giveaway

import (
	"strconv"
	"strings"
)

// ResolvePrizeIDs parses a prize-id specification against a catalog.
//
// The spec is a comma-separated list of tokens; each token is either a
// bare id or an inclusive numeric range "A-B". Range members are looked
// up by their decimal string form, in ascending order. A token with
// non-integer range bounds falls back to a bare-id lookup. Nothing
// fails: every id ends up either in resolved or in missing, missing
// following input token order.
func ResolvePrizeIDs(spec string, catalog map[string]string) (map[string]string, []string) {
	resolved := make(map[string]string)
	var missing []string

	lookup := func(id string) {
		if name, ok := catalog[id]; ok {
			resolved[id] = name
		} else {
			missing = append(missing, id)
		}
	}

	for _, part := range strings.Split(spec, ",") {
		part = strings.TrimSpace(part)
		if part == "" {
			continue
		}

		if bounds := strings.SplitN(part, "-", 2); len(bounds) == 2 {
			start, errA := strconv.Atoi(strings.TrimSpace(bounds[0]))
			end, errB := strconv.Atoi(strings.TrimSpace(bounds[1]))
			if errA == nil && errB == nil {
				for i := start; i <= end; i++ {
					lookup(strconv.Itoa(i))
				}
				continue
			}
		}

		lookup(part)
	}

	return resolved, missing
}

// InvalidLine records a prize-list body line that could not be parsed,
// kept for reporting back to the uploader.
type InvalidLine struct {
	Number int
	Text   string
}

// ParsePrizeList parses a newline-delimited "id:name" prize list body.
// Blank lines and lines starting with '#' are skipped. Lines without a
// usable id and name are collected as invalid rather than aborting the
// whole list.
func ParsePrizeList(content string) (map[string]string, []InvalidLine) {
	prizes := make(map[string]string)
	var invalid []InvalidLine

	for i, line := range strings.Split(strings.TrimSpace(content), "\n") {
		line = strings.TrimSpace(line)
		if line == "" || strings.HasPrefix(line, "#") {
			continue
		}

		if id, name, ok := strings.Cut(line, ":"); ok {
			id, name = strings.TrimSpace(id), strings.TrimSpace(name)
			if id != "" && name != "" {
				prizes[id] = name
				continue
			}
		}

		invalid = append(invalid, InvalidLine{Number: i + 1, Text: line})
	}

	return prizes, invalid
}
