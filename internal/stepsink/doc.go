// Package stepsink implements the rate-limited emission discipline shared by
// every algorithm: a per-process "last emission time" gates how often
// relevant intermediate steps reach the transport responder, while
// non-relevant steps (e.g. a "still working" improvement snapshot) are
// always forwarded immediately.
//
// Grounded on the teacher's channel-fan-out Hub in
// github.com/leanlp-BTC-coinjoin's internal/api/websocket.go, adapted from
// broadcast-to-all-peers to a single mutex-protected pacing clock shared by
// every concurrently running algorithm, matching the source's deliberately
// global (not per-context) throttle.
package stepsink
