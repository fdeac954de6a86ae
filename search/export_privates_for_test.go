package search

// Aliases exposing internals to the black-box tests.
var (
	MetropolisAccept = metropolisAccept
	RouletteSelect   = rouletteSelect
	UpdateWeights    = updateWeights
	UniformWeights   = uniformWeights
	RngForStream     = rngForStream
)

// Stream identifiers re-exported for deterministic test RNGs.
const (
	StreamAnnealer = streamAnnealer
	StreamALNS     = streamALNS
)
