package balanced

// Balanced integers and their optional forms for the four signed widths.
type (
	Int8  = Int[int8]
	Int16 = Int[int16]
	Int32 = Int[int32]
	Int64 = Int[int64]

	OptionInt8  = Option[int8]
	OptionInt16 = Option[int16]
	OptionInt32 = Option[int32]
	OptionInt64 = Option[int64]
)

// Boundary values per width. MinIntN == -MaxIntN for every N.
var (
	MinInt8  = Min[int8]()
	MaxInt8  = Max[int8]()
	MinInt16 = Min[int16]()
	MaxInt16 = Max[int16]()
	MinInt32 = Min[int32]()
	MaxInt32 = Max[int32]()
	MinInt64 = Min[int64]()
	MaxInt64 = Max[int64]()
)
