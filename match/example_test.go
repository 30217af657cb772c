package match_test

import (
	"fmt"

	"github.com/hasbyte1/go-groupby/match"
)

func ExampleIsMatch() {
	order := map[string]any{
		"id":     17,
		"status": "paid",
		"ship":   map[string]any{"country": "NL", "city": "Utrecht"},
	}
	fmt.Println(match.IsMatch(order, map[string]any{"ship": map[string]any{"country": "NL"}}))
	fmt.Println(match.IsMatch(order, map[string]any{"status": "open"}))
	// Output:
	// true
	// false
}
