// Package dataio is the external data layer: CSV node ingestion and row
// validation. It is a consumer of the core contracts, not part of the solver
// - the solver assumes its node list is already valid and this package is
// where that guarantee is produced.
//
// Expected CSV shape: a header row followed by `id,x,y` records. Validation
// enforces unique, contiguous, non-negative IDs and finite coordinates;
// anything else is a hard error wrapped with row context.
package dataio
