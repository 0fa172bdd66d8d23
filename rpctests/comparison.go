package rpctests

import (
	"encoding/json"
	"fmt"

	"github.com/rdkcentral/rpc-contract-tests/config"

	"gopkg.in/launchdarkly/go-sdk-common.v2/ldvalue"
)

// Comparison decides whether an actual response satisfies the expected one.
type Comparison func(expected, actual string) bool

// ExactComparison requires the response text to be character-for-character identical to the
// expectation, including key order, spacing and number formatting.
func ExactComparison(expected, actual string) bool {
	return expected == actual
}

// JSONComparison requires both texts to be valid JSON with equal structure. Object key order,
// whitespace and number formatting (100 vs 100.0) are ignored.
func JSONComparison(expected, actual string) bool {
	if !json.Valid([]byte(expected)) || !json.Valid([]byte(actual)) {
		return false
	}
	return ldvalue.Parse([]byte(expected)).Equal(ldvalue.Parse([]byte(actual)))
}

// ComparisonByName maps a configured comparison mode to its implementation. An empty name
// means exact comparison.
func ComparisonByName(name string) (Comparison, error) {
	switch name {
	case "", config.CompareExact:
		return ExactComparison, nil
	case config.CompareJSON:
		return JSONComparison, nil
	default:
		return nil, fmt.Errorf("unknown comparison mode %q", name)
	}
}
