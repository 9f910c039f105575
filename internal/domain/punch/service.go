package punch

// NormalizeService turns raw spreadsheet rows into canonical records
// and folds records sharing an (employee, date) key into day records.
// Every method is a pure function of its input; unrecognizable field
// values degrade to empty rather than erroring.
type NormalizeService interface {
	NormalizeRow(row RawRow) NormalizedRecord
	NormalizeRows(rows []RawRow) []NormalizedRecord
	Merge(records []NormalizedRecord) []MergedDayRecord
}
