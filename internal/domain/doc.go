// Package domain models water-quality measurements and the synonym-expanded
// lookup that matches free-text questions against their safety label.
//
// # Data Source
//
// Measurements come from a laboratory export of water samples taken across
// Colombia: one semicolon-delimited CSV row per sample, with a column per
// contaminant (aluminium, ammonia, arsenic, ...) and a binary is_safe flag.
// The file is read once at startup by the csvsource adapter; nothing in this
// package touches the filesystem.
//
// # Conventions
//
// Identifiers:
//
//	The "id" column is opaque text. It is never coerced to a number, so
//	"007" and "7" are different measurements. Ids must be unique and non-empty.
//
// Safety label:
//
//	The source flag is recoded into one of two labels:
//	  1 (or 1.0)       → "Potable"
//	  anything else    → "No potable"   (0, blanks, "#NUM!", ...)
//
// Attributes:
//
//	Every other column is carried through untouched, in source order. Blank
//	cells become "". Values that read as JSON numbers are emitted as numbers
//	with their original text; everything else is emitted as a string.
//
// # Query Expansion
//
// A chatbot question is lower-cased, split on Unicode word boundaries (UAX #29)
// and each word is expanded through a [Lexicon]. The union of words and
// synonyms is the [TermSet]; a measurement matches when any term is a
// substring of its lower-cased safety label. Because "potable" is a substring
// of "no potable", a query that expands to "potable" matches every record.
//
// An empty question produces an empty term set and therefore no matches.
package domain
