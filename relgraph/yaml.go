// File: yaml.go
// Role: PrintGraph (spec §6 diagnostic operation) — emits the finalized
// graph as YAML with four top-level keys founding/germline/somatic/sample,
// each mapping label -> {sex, ploidy, origin: [{label, length, sex}]}.
package relgraph

import (
	"io"

	"github.com/mutk-dev/mutk/pgraph"
	"gopkg.in/yaml.v3"
)

// origin is one incoming-edge record in a vertex's YAML representation: the
// source vertex's label and sex, plus the (scaled) edge length.
type origin struct {
	Label  string  `yaml:"label"`
	Length float64 `yaml:"length"`
	Sex    string  `yaml:"sex"`
}

// vertexDoc is one vertex's YAML representation.
type vertexDoc struct {
	Sex    string   `yaml:"sex"`
	Ploidy int      `yaml:"ploidy"`
	Origin []origin `yaml:"origin"`
}

// document is the full PrintGraph YAML shape: four top-level sections keyed
// by the vertex type's String() name, each a label->vertexDoc map.
type document struct {
	Founding map[string]vertexDoc `yaml:"founding"`
	Germline map[string]vertexDoc `yaml:"germline"`
	Somatic  map[string]vertexDoc `yaml:"somatic"`
	Sample   map[string]vertexDoc `yaml:"sample"`
}

// PrintGraph writes g as YAML to w, per spec §6.
func PrintGraph(w io.Writer, g *pgraph.Graph) error {
	doc := document{
		Founding: make(map[string]vertexDoc),
		Germline: make(map[string]vertexDoc),
		Somatic:  make(map[string]vertexDoc),
		Sample:   make(map[string]vertexDoc),
	}

	for _, v := range g.Vertices() {
		vert := g.Vertex(v)
		vd := vertexDoc{Sex: vert.Sex.String(), Ploidy: vert.Ploidy}
		for _, ei := range g.InEdges(v) {
			e := g.Edge(ei)
			from := g.Vertex(e.From)
			vd.Origin = append(vd.Origin, origin{Label: from.Label, Length: e.Length, Sex: from.Sex.String()})
		}

		switch vert.Type {
		case pgraph.Founder:
			doc.Founding[vert.Label] = vd
		case pgraph.Germline:
			doc.Germline[vert.Label] = vd
		case pgraph.Somatic:
			doc.Somatic[vert.Label] = vd
		case pgraph.Sample:
			doc.Sample[vert.Label] = vd
		}
	}

	if _, err := io.WriteString(w, "%YAML 1.2\n---\n"); err != nil {
		return err
	}

	enc := yaml.NewEncoder(w)
	defer enc.Close()

	return enc.Encode(doc)
}
