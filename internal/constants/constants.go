package constants

const (
	// AppName is the canonical binary/program name.
	AppName = "goaltime"

	// DateFormat is the key format for day records (ISO date).
	DateFormat = "2006-01-02"

	// MonthFormat parses "YYYY-MM" month arguments.
	MonthFormat = "2006-01"

	// SignificancePreviewMax caps how many significance entries a calendar
	// cell shows inline; the remaining count communicates "more exist".
	SignificancePreviewMax = 3
)
