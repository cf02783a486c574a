//go:build balanced_assert

package balanced

// assertUnchecked makes NewUnchecked verify its precondition.
const assertUnchecked = true
