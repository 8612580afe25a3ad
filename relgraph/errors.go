// File: errors.go
// Role: sentinel errors for the relationship-graph compiler (spec §7).
//
// Error policy: every pipeline stage is fail-fast; errors abort the entire
// Construct call with no partial result, carrying the offending member name
// and a human-readable explanation via %w wrapping (mirrors the teacher's
// builder.builderErrorf convention). Callers branch with errors.Is.
package relgraph

import (
	"errors"

	"github.com/mutk-dev/mutk/model"
)

// ErrPedigreeInvalid indicates a structural contradiction in the pedigree:
// wrong parent count for a member's ploidy, a sex/role mismatch (e.g. a
// female father), or an unresolvable parent name reference.
var ErrPedigreeInvalid = errors.New("relgraph: pedigree is structurally invalid")

// ErrSomaticParseError indicates the Newick parser rejected a sample string.
var ErrSomaticParseError = errors.New("relgraph: failed to parse somatic sample tree")

// ErrInvalidSex indicates a sex-linked model requires a known sex on an
// individual that has descendants but whose sex is unresolved.
var ErrInvalidSex = errors.New("relgraph: sex-linked model requires known sex")

// ErrModelUnsupported indicates the requested inheritance model is not
// recognized. Re-exported so callers can errors.Is against either
// relgraph.ErrModelUnsupported or model.ErrModelUnsupported.
var ErrModelUnsupported = model.ErrModelUnsupported

// ErrBadMutationRate indicates WithMuGerm/WithMuSoma received a negative
// rate; a structurally invalid literal, panicked on rather than returned
// (mirrors dijkstra.WithMaxDistance's ErrBadMaxDistance panic).
var ErrBadMutationRate = errors.New("relgraph: mutation rate must be non-negative")
