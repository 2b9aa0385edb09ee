package domain

// Output constants shared by the sinks.
const (
	// CSVHeader is the first line of every per-taxon relationship file.
	CSVHeader = "taxon,relationship,extra_info"

	// DefaultSeparator is proposed when the user is prompted for a separator.
	DefaultSeparator = "_"
)
