// Package convert decides which files to convert, where results go, and when
// to skip work, delegating pixel data to rangemap and file I/O to the codec.
//
// The policy is idempotent: destinations that already exist are never
// overwritten, and base names already carrying a _full or _limited suffix are
// treated as converted output and skipped. The suffix heuristic can false
// positive on legitimately named sources (a vacation shot called
// beach_full.jpg will never be converted); this is a known limitation kept
// for compatibility with existing trees.
package convert
