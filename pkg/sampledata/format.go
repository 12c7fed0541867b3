package sampledata

// Format identifies one of the supported output file formats.
type Format uint8

const (
	FormatCSV Format = iota
	FormatFeather
	FormatParquet
)

// AllowedFormats lists the formats Generate accepts, in the order they are
// reported to the user.
var AllowedFormats = []string{"csv", "feather", "parquet"}

// ParseFormat maps a format name to its Format. The second return value
// reports whether the name is one of the allowed formats.
func ParseFormat(s string) (Format, bool) {
	switch s {
	case "csv":
		return FormatCSV, true
	case "feather":
		return FormatFeather, true
	case "parquet":
		return FormatParquet, true
	}
	return 0, false
}

func (f Format) String() string {
	switch f {
	case FormatCSV:
		return "csv"
	case FormatFeather:
		return "feather"
	case FormatParquet:
		return "parquet"
	}
	return "unknown"
}
