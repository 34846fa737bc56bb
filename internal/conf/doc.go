// Package conf implements the Splunk-style .conf stanza parser: a
// single-pass state machine over normalized logical lines that produces an
// ordered, provenance-tagged stanza list with full per-key value history.
//
// The package is purely computational. Callers hand in text they already
// read from storage; nothing here touches the filesystem or network, so
// independent files can be parsed concurrently without coordination.
package conf
