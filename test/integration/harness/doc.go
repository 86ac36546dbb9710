// Package harness provides utilities for integration testing the tmlsync CLI.
// It handles binary compilation, environment isolation, command execution,
// and an in-memory project repository server.
//
// Environment variables managed:
//   - TMLSYNC_HOME: Isolated per test (temp directory)
//   - TMLSYNC_DEBUG: Disabled to reduce noise
//   - TMLSYNC_EDITOR: Set to a no-op command
package harness
