package balanced

import (
	"log/slog"
)

// LogValue implements slog.LogValuer, logging b as a plain integer.
func (b Int[T]) LogValue() slog.Value {
	return slog.Int64Value(int64(b.v))
}

// LogValue implements slog.LogValuer. A held value logs as an integer,
// none logs as an empty group so JSON handlers omit the key.
func (o Option[T]) LogValue() slog.Value {
	if b, ok := o.Get(); ok {
		return b.LogValue()
	}
	return slog.GroupValue()
}

// Attr returns an slog.Attr for b under key.
func Attr[T Signed](key string, b Int[T]) slog.Attr {
	return slog.Attr{Key: key, Value: b.LogValue()}
}
