// Package engine implements the row filter of sheetfilter.
//
// A run takes an immutable config.RunConfig and processes every qualifying
// spreadsheet of the input directory in name order. Each file goes through
// the same pipeline:
//
//  1. Rows with formula-looking text (a cell starting with "=") are dropped.
//  2. Exclusion: for every column with an exclusion list, rows whose value
//     matches any pattern are dropped.
//  3. Inclusion: for every column with an inclusion list, only rows whose
//     value matches at least one pattern are kept.
//  4. Surviving rows are written to <output>/filtered_<name> with auto-sized
//     columns and a named table region. Nothing is written when no row
//     survives.
//
// A failure on one file is recorded in its FileResult and the run continues.
// Only unusable directories abort the run.
package engine
