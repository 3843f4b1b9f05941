// Package purefn wraps functions with state that outlives a single call.
//
// Once runs a function a single time and replays its result. Memoize
// remembers results by argument, which is only sound when the wrapped
// function is pure: not just deterministic, but referentially transparent.
// Wrapping a function that reads the clock or does I/O silently freezes
// its first answer.
//
// Features:
//   - Once, Once1, OnceErr: run-once wrappers; the wrapped function is released after its run.
//   - Memoize, MemoizeWith, MemoizeErr: single-argument caches, unbounded by default.
//   - Memoize2, Memoize3: multi-argument caches backed by a Trie.
//   - MemoConfig: shard count for unbounded caches, MaxSize for a two-generation bounded Trie.
//
// Every wrapper is safe for concurrent use. Their state is private to
// the returned closure and lives exactly as long as it does.
//
// See memoize_test.go and memoize_bench_test.go for usage and benchmarks.
package purefn
