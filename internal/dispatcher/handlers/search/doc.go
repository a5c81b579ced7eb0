// Package search provides handlers for finding and substituting words.
//
// Matching is plain, case-sensitive substring matching. search.find reports
// the first matching line; search.substitute rewrites every non-overlapping
// occurrence in every line and reports how many were replaced.
package search
