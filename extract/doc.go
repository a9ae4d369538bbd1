// Package extract converts raw document bytes into plain text.
//
// The Extractor interface is the boundary the search coordinator calls
// through; PDFExtractor is the production implementation built on
// github.com/ledongthuc/pdf. Malformed documents fail with an error per
// file and never take down the caller: every library call that can
// panic on hostile input runs behind a recover boundary.
//
// BatchExtractor implements bulk extraction of many documents into a
// single text file, reporting progress as it goes.
package extract
