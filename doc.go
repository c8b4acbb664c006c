// Package jsongrid derives a grid from arbitrary, possibly malformed,
// JSON-like text:
//
// - A tolerant parser (lenient JSON5-style -> strict JSON -> line-delimited
//   recovery) turns raw text into an ordered document Value.
// - Discovery walks the document and yields every array candidate with its
//   structural path, container before nested, in deterministic pre-order.
// - Scoring ranks candidates by tabularity (object ratio, stable key breadth,
//   length) and the best one is normalized into rows and typed columns.
//
// Design policy:
// - Keep the public API in the root package; format front-ends live under
//   source/ and the CLI under cmd/jsongrid.
// - Errors are returned as data. Only parsing can fail; every later stage is
//   total and degrades to an empty result instead.
// - Paths are exact and reversible: Path.Resolve and Path.Set address the live
//   document, and EncodeJSON re-serializes it preserving key order, so a caller
//   can write an edited cell back into the original text.
// - Prefer black-box testing against public APIs.
//
// Typical usage:
//
//	res, err := jsongrid.Derive(text)
//	if err != nil { ... }   // parse failure
//	if res == nil { ... }   // nothing to display
//	fmt.Println(res.Path.String(), res.Note)
package jsongrid
