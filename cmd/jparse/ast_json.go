package main

import (
	"encoding/json"
	"io"

	"github.com/dhamidi/jparse/internal/arena"
	"github.com/dhamidi/jparse/internal/javaparser"
)

// astJSONEncoder dumps a Tree as JSON, grounded on dhamidi-sai's
// format.ASTJSONEncoder — same encoding/json + nested-struct shape, walked
// over our NodeIndex/NodeView tree instead of the teacher's *parser.Node.
type astJSONEncoder struct {
	w io.Writer
}

func newASTJSONEncoder(w io.Writer) *astJSONEncoder {
	return &astJSONEncoder{w: w}
}

func (e *astJSONEncoder) Encode(t *javaparser.Tree) error {
	text, err := json.MarshalIndent(treeNodeToJSON(t, t.Root()), "", "  ")
	if err != nil {
		return err
	}
	_, err = e.w.Write(text)
	if err != nil {
		return err
	}
	_, err = e.w.Write([]byte("\n"))
	return err
}

type astJSONNode struct {
	Kind      string         `json:"kind"`
	Start     uint32         `json:"start"`
	End       uint32         `json:"end"`
	Attribute any            `json:"attribute,omitempty"`
	Children  []*astJSONNode `json:"children,omitempty"`
}

func treeNodeToJSON(t *javaparser.Tree, i arena.NodeIndex) *astJSONNode {
	v := t.Node(i)
	jn := &astJSONNode{
		Kind:      v.Kind.String(),
		Start:     v.Start,
		End:       v.End,
		Attribute: v.Attribute,
	}
	for _, c := range v.Children {
		jn.Children = append(jn.Children, treeNodeToJSON(t, c))
	}
	return jn
}
