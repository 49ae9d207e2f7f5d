// Package match resolves free-text statistical labels to dimension value codes.
//
// Statistical datasets publish their measured concepts as one dimension whose
// values carry human-readable labels ("Väkiluku", "Työllisyysaste, %",
// "Työllisyysaste 15-64-vuotiaat, %"). The internal code behind a concept is
// not stable across dataset revisions, so callers describe the concept they
// want by keyword and the resolver picks the matching code at runtime.
//
// Matching happens on normalized text: diacritics stripped, lower-cased,
// punctuation collapsed to single spaces. Taxonomies reuse near-identical
// wording across many variants of the same concept, so resolution is
// two-phase:
//
//  1. Exact match against a list of preferred labels. This short-circuits
//     ambiguity when several labels share the keyword as a substring.
//  2. Substring match on the keyword, scored to prefer the aggregate,
//     percentage-formatted headline series over age-bucketed variants.
//
// The scoring is a heuristic, not semantic disambiguation. Ties break on
// first occurrence in candidate order, which keeps resolution deterministic
// and testable.
package match
