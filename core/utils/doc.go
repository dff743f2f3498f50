// Package utils provides loose-typed conversion helpers for values decoded
// from provider JSON payloads, where cell types vary between editions.
package utils
