// Package rpctests contains the JSON-RPC contract tests themselves and their supporting API.
//
// Test runner infrastructure that is not specific to JSON-RPC, such as test IDs, filtering and
// debug capture, is in the lower-level framework package.
package rpctests
