// Package document implements lossless round-trip serialization between a
// live board and the flowboard interchange format.
//
// The interchange format is a UTF-8 JSON object with top-level "nodes" and
// "edges" arrays. Import fully replaces the prior graph (never a merge) and
// is all-or-nothing: [Unmarshal] and [Read] build a fresh board and fail
// with a single INVALID_DOCUMENT error on malformed input, so a half-imported
// graph is impossible.
//
// On import, parentId is the authoritative hierarchy; the children index is
// rebuilt and a document's own children arrays are ignored. Absent optional
// fields take creation defaults (isExpanded true, animated true, 150×80).
package document
