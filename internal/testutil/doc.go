// Package testutil contains fake council participants used across tests:
// scripted agents that answer from a fixed sequence, agents that delay, fail
// or panic, and call counting for asserting that no backend was contacted.
// They are not intended for production usage.
package testutil
