// Package suggest proposes the closest known name for a misspelled one, used
// to enrich annotation and type lookup errors.
package suggest
