// Package services implements the driving port interfaces.
// Services contain the core business logic and orchestrate
// calls to driven ports (adapters).
//
// The ingest service walks a source tree sequentially, derives natural
// keys from path layout, and hands each new file to the extraction
// pipeline before registering it in the ledger.
package services
