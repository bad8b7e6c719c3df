// Package marking decodes individual security classification banner marking
// segments into structured control values, and renders them back to their
// canonical banner form.
//
// The package covers three kinds of segment:
//
//   - Named controls (dissemination and other-dissemination), resolved through
//     fixed-vocabulary registries that expose each control under two
//     independent alias spaces: the full banner name used in a document header
//     and the short portion marking used inline in running text.
//   - SCI controls: a control identifier followed by `-`-separated
//     compartments, each optionally carrying space-separated sub-compartments.
//   - SAP controls: up to a handful of `/`-separated program names, or the
//     HVSACO and "MULTIPLE PROGRAMS" sentinels.
//
// Splitting a full banner into its `//`-separated segments lives upstream in
// package banner; this package only parses and formats single segments.
// All parsers are pure functions over their input: no I/O, no shared mutable
// state, safe for unsynchronized concurrent use.
package marking
