// Package writers turns scan results into serialized outputs.
//
// Design:
//   - Writers own all presentation knowledge (TSV, rounded tables, JSON/JSONL).
//   - Commands stay orchestration-only; pkg/api owns the stable wire format.
package writers
