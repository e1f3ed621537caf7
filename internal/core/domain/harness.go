package domain

// Expectation is one line of an expected-output file: an input file name
// relative to the input directory and the checksum every strategy must print.
type Expectation struct {
	File string `json:"file"`
	Sum  uint16 `json:"sum"`
	Line int    `json:"line"`
}

// Outcome is the verdict for a single (input, strategy) pair.
type Outcome struct {
	File     string       `json:"file"`
	Strategy StrategyName `json:"strategy"`
	Index    int          `json:"index"`
	Args     []string     `json:"args,omitempty"`
	Expected uint16       `json:"expected"`
	Actual   uint16       `json:"actual"`
	Passed   bool         `json:"passed"`
}

// Report aggregates all outcomes of a harness run in input order.
type Report struct {
	Outcomes []Outcome `json:"outcomes"`
	Passed   int       `json:"passed"`
	Failed   int       `json:"failed"`
}

// OK reports whether every outcome passed.
func (r *Report) OK() bool {
	return r.Failed == 0
}
