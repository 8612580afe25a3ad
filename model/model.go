// Package model defines the inheritance models the relationship-graph
// compiler's pruner dispatches on, and the canonical name->model table an
// external front-end (CLI flag parsing, out of scope here) would use to
// resolve a user-provided string.
package model

import (
	"errors"
	"strings"
)

// InheritanceModel selects which parental transmissions contribute to a
// child's genotype, and how ploidy is adjusted after pruning.
type InheritanceModel int

const (
	// Autosomal retains all germline edges and ploidies unchanged.
	Autosomal InheritanceModel = iota
	// XLinked retains father->child only when the child is female.
	XLinked
	// YLinked retains father->son transmission only.
	YLinked
	// WLinked retains mother->daughter transmission only.
	WLinked
	// ZLinked retains mother->child only when the child is male.
	ZLinked
	// Maternal retains mother->child transmission only (includes
	// Mitochondrial as an alias).
	Maternal
	// Paternal retains father->child transmission only.
	Paternal
)

// Mitochondrial is an alias of Maternal (spec §4.4).
const Mitochondrial = Maternal

// String renders the canonical lowercase name of the model.
func (m InheritanceModel) String() string {
	switch m {
	case Autosomal:
		return "autosomal"
	case XLinked:
		return "x-linked"
	case YLinked:
		return "y-linked"
	case WLinked:
		return "w-linked"
	case ZLinked:
		return "z-linked"
	case Maternal:
		return "maternal"
	case Paternal:
		return "paternal"
	default:
		return "unknown"
	}
}

// ErrModelUnsupported indicates a name that does not resolve to any known
// InheritanceModel.
var ErrModelUnsupported = errors.New("model: inheritance model not recognized")

// chrModelMap mirrors the original CHR_MODEL_MAP table: several surface
// spellings resolve to the same InheritanceModel, and "mitochondrial" is an
// explicit alias of Maternal.
var chrModelMap = map[string]InheritanceModel{
	"autosomal":     Autosomal,
	"maternal":      Maternal,
	"paternal":      Paternal,
	"x-linked":      XLinked,
	"y-linked":      YLinked,
	"w-linked":      WLinked,
	"z-linked":      ZLinked,
	"mitochondrial": Maternal,
	"xlinked":       XLinked,
	"ylinked":       YLinked,
	"wlinked":       WLinked,
	"zlinked":       ZLinked,
}

// Parse resolves a user-facing model name (case-insensitive) to an
// InheritanceModel, or ErrModelUnsupported if unrecognized.
func Parse(name string) (InheritanceModel, error) {
	m, ok := chrModelMap[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return 0, ErrModelUnsupported
	}

	return m, nil
}
