// Package newick implements the Newick-subset parser collaborator described
// in spec §6: parse_newick(tree_text, graph, anchor_vertex, normalize) ->
// bool. Only the grammar somatic sample trees in this domain actually use is
// supported: nested parenthesized groups, optional leaf/internal labels, and
// optional ":"-prefixed branch lengths, terminated by ";".
//
// A full Newick grammar (NHX annotations, quoted labels, comments) is a
// front-end/parsing concern outside this module's scope (spec §1); this
// package exists to give the graph builder a real collaborator so
// Construct is exercisable end-to-end, per spec §6's schema.
package newick

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/mutk-dev/mutk/pedigree"
	"github.com/mutk-dev/mutk/pgraph"
)

// node is the parsed-tree intermediate representation, before it is
// materialized into pgraph vertices/edges.
type node struct {
	label    string
	length   float64
	hasLen   bool
	children []*node
}

// Parse parses text anchored at anchor (an existing germline vertex) and
// appends the resulting somatic vertices/edges to g. It returns false if
// text fails to parse as a Newick tree, matching the external interface's
// boolean failure signal (spec §6).
//
// When normalize is true, every edge added for this tree (including the
// anchor->root edge) is rescaled so that the longest anchor-to-leaf
// cumulative path length equals 1.
func Parse(text string, g *pgraph.Graph, anchor pgraph.VertexIndex, normalize bool) bool {
	root, err := parse(text)
	if err != nil {
		return false
	}
	attach(g, anchor, root, normalize)

	return true
}

// parse tokenizes and recursively descends text into a node tree.
func parse(text string) (*node, error) {
	text = strings.TrimSpace(text)
	if !strings.HasSuffix(text, ";") {
		return nil, fmt.Errorf("newick: missing terminating ';'")
	}
	text = text[:len(text)-1]

	p := &parser{s: text}
	n, err := p.subtree()
	if err != nil {
		return nil, err
	}
	p.skipSpace()
	if p.pos != len(p.s) {
		return nil, fmt.Errorf("newick: trailing input at %d", p.pos)
	}

	return n, nil
}

type parser struct {
	s   string
	pos int
}

func (p *parser) skipSpace() {
	for p.pos < len(p.s) && (p.s[p.pos] == ' ' || p.s[p.pos] == '\t' || p.s[p.pos] == '\n') {
		p.pos++
	}
}

func (p *parser) peek() byte {
	p.skipSpace()
	if p.pos >= len(p.s) {
		return 0
	}

	return p.s[p.pos]
}

// subtree := "(" subtree ("," subtree)* ")" label? (":" length)?
//          | label? (":" length)?
func (p *parser) subtree() (*node, error) {
	n := &node{}
	if p.peek() == '(' {
		p.pos++ // consume '('
		child, err := p.subtree()
		if err != nil {
			return nil, err
		}
		n.children = append(n.children, child)
		for p.peek() == ',' {
			p.pos++
			child, err = p.subtree()
			if err != nil {
				return nil, err
			}
			n.children = append(n.children, child)
		}
		if p.peek() != ')' {
			return nil, fmt.Errorf("newick: expected ')' at %d", p.pos)
		}
		p.pos++ // consume ')'
	}

	n.label = p.readLabel()
	if p.peek() == ':' {
		p.pos++
		length, err := p.readLength()
		if err != nil {
			return nil, err
		}
		n.length = length
		n.hasLen = true
	}

	return n, nil
}

func (p *parser) readLabel() string {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == '(' || c == ')' || c == ',' || c == ':' || c == ';' {
			break
		}
		p.pos++
	}

	return strings.TrimSpace(p.s[start:p.pos])
}

func (p *parser) readLength() (float64, error) {
	start := p.pos
	for p.pos < len(p.s) {
		c := p.s[p.pos]
		if c == '(' || c == ')' || c == ',' || c == ':' || c == ';' {
			break
		}
		p.pos++
	}
	raw := strings.TrimSpace(p.s[start:p.pos])
	v, err := strconv.ParseFloat(raw, 64)
	if err != nil {
		return 0, fmt.Errorf("newick: invalid branch length %q: %w", raw, err)
	}

	return v, nil
}

// attach materializes the parsed tree as pgraph vertices/edges anchored at
// anchor, with GermEdge-adjacent anchor->root transmission marked SomaEdge
// (somatic trees are entirely somatic transmission, including their first
// branch off the germline vertex).
func attach(g *pgraph.Graph, anchor pgraph.VertexIndex, root *node, normalize bool) {
	type pending struct {
		parent pgraph.VertexIndex
		n      *node
		depth  float64 // cumulative length from anchor to n's vertex, post-materialization
	}

	rootLen := 1.0
	if root.hasLen {
		rootLen = root.length
	}

	var maxDepth float64
	var edges []pgraph.EdgeIndex
	var lengths []float64
	anon := 0

	rootIdx := g.AddVertex(labelFor(root, "root", &anon), pedigree.Autosomal, 0, pgraph.Somatic)
	e := g.AddEdge(anchor, rootIdx, rootLen, pgraph.SomaEdge)
	edges = append(edges, e)
	lengths = append(lengths, rootLen)
	if rootLen > maxDepth {
		maxDepth = rootLen
	}

	queue := []pending{}
	for _, c := range root.children {
		queue = append(queue, pending{parent: rootIdx, n: c, depth: rootLen})
	}

	for len(queue) > 0 {
		cur := queue[0]
		queue = queue[1:]

		length := 1.0
		if cur.n.hasLen {
			length = cur.n.length
		}
		depth := cur.depth + length

		vidx := g.AddVertex(labelFor(cur.n, "", &anon), pedigree.Autosomal, 0, pgraph.Somatic)
		e = g.AddEdge(cur.parent, vidx, length, pgraph.SomaEdge)
		edges = append(edges, e)
		lengths = append(lengths, length)
		if depth > maxDepth {
			maxDepth = depth
		}

		for _, c := range cur.n.children {
			queue = append(queue, pending{parent: vidx, n: c, depth: depth})
		}
	}

	if normalize && maxDepth > 0 {
		for i, ei := range edges {
			edge := g.Edge(ei)
			edge.Length = lengths[i] / maxDepth
		}
	}
}

// labelFor returns n's explicit label, or a synthetic one derived from a
// per-call counter (anon), keeping unlabeled-node naming deterministic
// across repeated parses of the same tree text (spec §5 determinism).
func labelFor(n *node, fallback string, anon *int) string {
	if n.label != "" {
		return n.label
	}
	*anon++

	return fmt.Sprintf("%s%d", defaultLabel(fallback), *anon)
}

func defaultLabel(fallback string) string {
	if fallback != "" {
		return fallback
	}

	return "node"
}
