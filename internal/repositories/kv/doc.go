// Package kv implements the durable key-value backend that stands in for
// browser local storage. Values are opaque bytes; callers own the encoding.
//
// Implementations:
//   - SQLiteRepository: single "storage" table, created by goose migrations.
//   - RedisRepository:  plain string keys under a configurable prefix.
//   - MemoryRepository: process-local map, for tests and throwaway sessions.
//
// None of them coordinate concurrent writers beyond per-key atomicity of the
// underlying store; the last writer wins.
package kv
