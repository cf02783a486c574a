//go:build !balanced_assert

package balanced

const assertUnchecked = false
