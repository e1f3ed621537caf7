package domain

import "time"

// StrategyName identifies a checksum strategy, e.g. "end-around".
type StrategyName string

// StrategyInfo describes a registered strategy. Index is the value passed to
// the checksum binary's -s flag.
type StrategyInfo struct {
	Index       int          `json:"index"`
	Name        StrategyName `json:"name"`
	Description string       `json:"description"`
}

// ChecksumResult is the outcome of running one strategy over one input.
type ChecksumResult struct {
	Strategy StrategyName  `json:"strategy"`
	Path     string        `json:"path"`
	Size     int           `json:"size"`
	Sum      uint16        `json:"sum"`
	Elapsed  time.Duration `json:"elapsed"`
}
