package punch

// RawRow is one spreadsheet line as the row reader produced it: an
// open-ended mapping from column label to cell value. Cell values are
// strings or numbers depending on the source — xlsx raw values arrive
// as strings, JSON row payloads carry float64 for numeric cells.
// A RawRow is never mutated after it is produced.
type RawRow map[string]any

// TimeSegment is one continuous presence interval on a single calendar
// date. Both ends are canonical zero-padded "HH:MM" tokens and End is
// strictly greater than Start; pairs violating that are discarded
// before a segment is ever built, so a midnight-crossing punch can not
// appear here.
type TimeSegment struct {
	Start string
	End   string
}

// NormalizedRecord is the canonical form of one raw row: identity
// fields, the six named punch slots, the two generic whole-day slots,
// and the segments discovered independently of any named column.
// Empty string means "no recognizable value".
type NormalizedRecord struct {
	EmployeeName string
	Date         string // YYYY-MM-DD

	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	NightIn      string
	NightOut     string
	GenericIn    string
	GenericOut   string

	Segments []TimeSegment
}

// Usable reports whether the record carries enough identity to take
// part in merging and computation.
func (r NormalizedRecord) Usable() bool {
	return r.EmployeeName != "" && r.Date != ""
}

// MergedDayRecord folds every normalized record sharing one
// (employee, date) key into a single day. In slots hold the earliest
// value seen for the key, Out slots the latest; Segments is the
// deduplicated union of all contributing segments.
type MergedDayRecord struct {
	EmployeeName string
	Date         string

	MorningIn    string
	MorningOut   string
	AfternoonIn  string
	AfternoonOut string
	NightIn      string
	NightOut     string
	GenericIn    string
	GenericOut   string

	Segments []TimeSegment
}
