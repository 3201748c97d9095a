// Package gocms converts testimonial blocks to and from the JSON snapshots
// go-cms emits for block versions and widget instances, without importing
// go-cms directly. Callers decode snapshots into the lightweight structs
// here and import them with ImportBlockSnapshot, or export document blocks
// with SnapshotFromBlock and WidgetFromBlock.
package gocms
