// Package parser turns present raw flag strings into typed values.
//
// Absence is handled by the caller; every parser here sees a string. A
// Parser rejects both malformed input and values outside its constraints,
// so a single Parse call decides whether an update is accepted.
package parser
