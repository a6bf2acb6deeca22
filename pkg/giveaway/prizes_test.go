package giveaway

import (
	"testing"
)

func testCatalog() map[string]string {
	return map[string]string{
		"1":    "Gift Card",
		"2":    "T-Shirt",
		"3":    "Sticker Pack",
		"5":    "Mug",
		"6":    "Poster",
		"gold": "Gold Trophy",
	}
}

func TestResolvePrizeIDsRange(t *testing.T) {
	resolved, missing := ResolvePrizeIDs("1-3", testCatalog())

	if len(resolved) != 3 {
		t.Fatalf("resolved = %v, want 3 entries", resolved)
	}
	for _, id := range []string{"1", "2", "3"} {
		if _, ok := resolved[id]; !ok {
			t.Errorf("resolved is missing id %q", id)
		}
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestResolvePrizeIDsMixed(t *testing.T) {
	resolved, missing := ResolvePrizeIDs("1,5-6", testCatalog())

	for _, id := range []string{"1", "5", "6"} {
		if _, ok := resolved[id]; !ok {
			t.Errorf("resolved is missing id %q", id)
		}
	}
	if len(resolved) != 3 {
		t.Errorf("resolved = %v, want 3 entries", resolved)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestResolvePrizeIDsRangeWithGap(t *testing.T) {
	// 4 is not in the catalog, so it is reported missing
	resolved, missing := ResolvePrizeIDs("3-5", testCatalog())

	if len(resolved) != 2 {
		t.Errorf("resolved = %v, want 2 entries", resolved)
	}
	if len(missing) != 1 || missing[0] != "4" {
		t.Errorf("missing = %v, want [4]", missing)
	}
}

func TestResolvePrizeIDsMalformedRangeFallsBack(t *testing.T) {
	// "a-b" is not a numeric range, so it is looked up as a bare id
	resolved, missing := ResolvePrizeIDs("a-b,gold", testCatalog())

	if _, ok := resolved["gold"]; !ok {
		t.Error("resolved is missing id gold")
	}
	if len(missing) != 1 || missing[0] != "a-b" {
		t.Errorf("missing = %v, want [a-b]", missing)
	}
}

func TestResolvePrizeIDsEmptyTokens(t *testing.T) {
	resolved, missing := ResolvePrizeIDs(" 1 , , 2 ", testCatalog())

	if len(resolved) != 2 {
		t.Errorf("resolved = %v, want 2 entries", resolved)
	}
	if len(missing) != 0 {
		t.Errorf("missing = %v, want none", missing)
	}
}

func TestParsePrizeList(t *testing.T) {
	content := `# headline comment
1: Gift Card
2: T-Shirt

broken line
: no id
3: Sticker Pack`

	prizes, invalid := ParsePrizeList(content)

	if len(prizes) != 3 {
		t.Errorf("prizes = %v, want 3 entries", prizes)
	}
	if prizes["1"] != "Gift Card" {
		t.Errorf("prizes[1] = %q, want %q", prizes["1"], "Gift Card")
	}

	if len(invalid) != 2 {
		t.Fatalf("invalid = %v, want 2 entries", invalid)
	}
	if invalid[0].Text != "broken line" {
		t.Errorf("invalid[0].Text = %q, want %q", invalid[0].Text, "broken line")
	}
}

func TestParsePrizeListEmpty(t *testing.T) {
	prizes, invalid := ParsePrizeList("")

	if len(prizes) != 0 {
		t.Errorf("prizes = %v, want none", prizes)
	}
	if len(invalid) != 0 {
		t.Errorf("invalid = %v, want none", invalid)
	}
}
