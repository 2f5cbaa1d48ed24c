// Package aggregate derives dashboard summaries from raw backend records.
// All functions are pure: they never mutate their input, tolerate empty
// input and return zero valued summaries instead of failing.
package aggregate
