// Package widget extracts live-sports match records from a third-party
// page the suite does not control.
//
// Extraction is opportunistic: an ordered list of selector strategies is
// tried until one yields elements, and every sub-field defaults to the
// empty string when its selectors miss. Nothing here guarantees a
// well-formed record; the validators classify what came back.
package widget
