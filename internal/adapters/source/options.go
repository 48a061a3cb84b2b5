package source

// DefaultTable is the sqlite table read when none is configured.
const DefaultTable = "applications"

// Option applies a configuration option to a load.
type Option func(*options)

type options struct {
	sheet string
	table string
}

// WithSheet selects a workbook sheet by name. The first sheet is used
// otherwise.
func WithSheet(name string) Option {
	return func(o *options) {
		o.sheet = name
	}
}

// WithTable selects the sqlite table.
func WithTable(name string) Option {
	return func(o *options) {
		if name != "" {
			o.table = name
		}
	}
}
