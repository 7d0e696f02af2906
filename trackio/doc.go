// Package trackio reads and writes track sets in the interchange formats:
// a JSON document and a semicolon separated CSV table.
// Both round-trip object id, type, format, observations and attributes.
package trackio
