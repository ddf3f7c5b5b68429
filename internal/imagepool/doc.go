// Package imagepool shares large 2D scratch images across solvers and devices to avoid
// per-call reallocation (spec §4.5, component C8).
package imagepool
