// Package source provides roster sources: loaders that produce the
// student list handed to Roster.SetStudents.
//
// Two on-disk class file formats are supported:
//
//   - JSON: an array of {"name", "weight", "count"} objects, an array of
//     bare name strings, or an object keyed by arbitrary ids.
//   - CSV: a header row of name,weight,count with the weight and count
//     columns optional per row.
//
// In both formats the name is required (trimmed, empty records are
// skipped) while weight and count fall back to defaults when missing or
// unparseable. A file yielding no valid students is an error, never an
// empty roster, so callers keep their prior state on a bad load.
//
// Writers for both formats persist the current weights and counts back
// to disk.
package source
