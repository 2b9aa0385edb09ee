// Package file provides filesystem adapters: a CSV record writer producing
// one relationship file per target taxon, and a JSON table store.
package file
