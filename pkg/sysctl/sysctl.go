// Package sysctl provides named sysctl queries on platforms that support
// them. The interface is uniform across platforms: unsupported platforms
// report ENOSYS-backed errors instead of failing to compile.
package sysctl
