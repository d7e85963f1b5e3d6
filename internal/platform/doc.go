package platform

// Package platform contains OS integration: filesystem helpers and the
// file manager open/reveal commands for each desktop OS.
