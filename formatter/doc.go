// Package formatter renders assembled tables for the presentation boundary.
//
// The package is organized into:
//   - tooltip.go: per-row tooltip strings and map point extraction
//   - csv.go: CSV rendering
//   - xlsx.go: XLSX rendering (excelize)
//   - pdf.go: PDF rendering (gofpdf)
//
// Every renderer takes a converter.Table and returns bytes; none of them
// reach back to the upstream APIs.
package formatter
