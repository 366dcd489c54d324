// Package driven defines the interfaces that core calls OUT to infrastructure.
//
// These are the "driven" or "secondary" ports in hexagonal architecture.
// Core services depend on these interfaces, and infrastructure adapters
// implement them.
//
// # Required Interfaces
//
// These must be provided for the application to function:
//
//   - IndexLoader: Reads the OCR text index (JSON file)
//   - ResultWriter: Persists the latest match list (side-channel file)
//   - QueryReader: Reads interactive queries (terminal or pipe)
//   - ConfigStore: Application configuration (TOML)
//
// # Optional Interfaces
//
// These can be nil - the application degrades gracefully:
//
//   - HistoryStore: Search history (SQLite). Without it, history is not kept.
//   - FileWatcher: Index change notices (fsnotify). Without it, no notices.
//
// # Import Rules
//
//   - Can Import: domain package only
//   - Cannot Import: Any adapter package
package driven
