// Package filesystem provides portable access to filesystem entry metadata:
// stat family queries normalized behind a single record type and extended
// attribute reads that distinguish absence from failure. Raw platform stat
// structures never escape this package.
package filesystem
