// Package framework contains the low-level test runner infrastructure that is not specific to
// any one service.
//
// The general model is:
//
// 1. There is a general notion of a test context which is similar to Go's *testing.T,
// allowing pieces of test logic to be associated with a test identifier and to accumulate
// success/failure results.
//
// 2. Each test can capture debug output, which the TestLogger decides whether to show
// depending on the outcome.
//
// 3. Tests can be selected or excluded by regex filters over their IDs.
//
// The domain-specific code that knows what is being tested is responsible for sending
// requests to the service and deciding whether the responses are correct.
package framework
