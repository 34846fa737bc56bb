// Package project implements the projection engine: per-conf-kind pure
// functions that turn a generic parsed stanza into a typed record plus a
// lossless kv remainder.
//
// A projector never fails. Missing or malformed typed fields degrade to
// absent values and the raw key stays available in the record's KV map, so
// the union of claimed fields and KV always equals the stanza's original
// key set. Projectors hold no state, which makes projecting independent
// stanzas in parallel safe.
package project
