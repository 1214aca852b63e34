// Package heuristic scores a board position by detecting covered holes
// (empty cells blocked from above by filled cells) and estimating the
// number of additional pieces required to clear them. Lower is better.
package heuristic

// ScoreParams tunes the evaluator.
type ScoreParams struct {
	RowFactor           int64 `yaml:"row_factor"`
	PieceEstimateFactor int64 `yaml:"piece_estimate_factor"`
	PiecePenalty        int64 `yaml:"piece_penalty"`
}

// DefaultScoreParams returns the reference tuning.
func DefaultScoreParams() ScoreParams {
	return ScoreParams{
		RowFactor:           0,
		PieceEstimateFactor: 3,
		PiecePenalty:        4,
	}
}

// Penalty is the additive path cost the search assigns for having placed
// depth pieces so far.
func Penalty(params ScoreParams, depth int64) int64 {
	return depth * params.PiecePenalty
}
