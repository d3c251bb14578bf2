// Package format renders arbitrary payload values to text for diagnostic
// messages, primarily the fault messages built by result extraction.
package format
