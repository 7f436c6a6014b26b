package gtminject

// Skip records a file left untouched on purpose.
type Skip struct {
	Path   string `yaml:"path"`
	Reason Reason `yaml:"reason"`
}

// Failure records a file that could not be read or written.
// Err wraps ErrReadHTML or ErrWriteHTML together with the underlying cause.
type Failure struct {
	Path    string `yaml:"path"`
	Message string `yaml:"message"`
	Err     error  `yaml:"-"`
}

// Report accumulates the outcome of a run, in traversal order.
// Entries are only ever appended.
type Report struct {
	Modified []string  `yaml:"modified"`
	Skipped  []Skip    `yaml:"skipped"`
	Errors   []Failure `yaml:"errors"`
}

// NewReport returns an empty report whose groups encode as empty lists.
func NewReport() *Report {
	return &Report{
		Modified: []string{},
		Skipped:  []Skip{},
		Errors:   []Failure{},
	}
}

// HasErrors reports whether any read or write failed.
// Skips and modifications never count as failures.
func (r *Report) HasErrors() bool {
	return len(r.Errors) > 0
}

// Total returns the number of candidate files the run decided on.
func (r *Report) Total() int {
	return len(r.Modified) + len(r.Skipped) + len(r.Errors)
}

func (r *Report) modified(path string) {
	r.Modified = append(r.Modified, path)
}

func (r *Report) skip(path string, reason Reason) {
	r.Skipped = append(r.Skipped, Skip{Path: path, Reason: reason})
}

func (r *Report) fail(path string, err error) {
	r.Errors = append(r.Errors, Failure{Path: path, Message: err.Error(), Err: err})
}
