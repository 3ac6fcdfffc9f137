// Package core contains plumbing shared by the scope and catch packages.
// It is not intended for direct use by library consumers.
package core
