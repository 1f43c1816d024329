// Package harness runs the appdeck binary end to end.
// The binary is built once with a fixed version stamp; each test gets its own
// APPDECK_HOME so state.db never leaks between tests, and the stored
// collections can be inspected or seeded directly through the SQLite store.
//
// Environment variables managed:
//   - APPDECK_HOME: Isolated per test (temp directory)
//   - APPDECK_DEBUG: Disabled to reduce noise
package harness
