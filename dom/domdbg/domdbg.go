/*
Package domdbg implements helpers to debug a document tree.

Dump prints a tree as indented text, ToGraphViz creates a diagram in
GraphViz (DOT) format.

______________________________________________________________________

# License

Governed by a 3-Clause BSD license. License file may be found in the root
folder of this module.

Copyright © 2017–2022 Norbert Pillmayer <norbert@pillmayer.com>
*/
package domdbg

import (
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
	"testing"
	"text/template"

	"github.com/npillmayer/domtree/dom"
	"github.com/xlab/treeprint"
)

// Dump returns a textual tree of nodes. Elements are printed with their
// attributes, long text nodes are shortened.
func Dump(nodes ...dom.Node) string {
	tp := treeprint.New()
	tp.SetValue("nodes")
	dumpNodes(tp, nodes)
	return tp.String()
}

func dumpNodes(tp treeprint.Tree, nodes []dom.Node) {
	for _, n := range nodes {
		switch n := n.(type) {
		case *dom.Text:
			if n.Safe {
				tp.AddMetaNode("raw", shortText(n.Content, 24))
			} else {
				tp.AddNode(shortText(n.Content, 24))
			}
		case *dom.Element:
			if n.Len() == 0 {
				tp.AddNode(startTag(n))
				continue
			}
			dumpNodes(tp.AddBranch(startTag(n)), n.Children())
		}
	}
}

func startTag(e *dom.Element) string {
	var sb strings.Builder
	sb.WriteString("<" + e.Tag())
	for _, a := range e.Attrs() {
		sb.WriteString(fmt.Sprintf(" %s=%q", a.Key, a.Val))
	}
	sb.WriteString(">")
	return sb.String()
}

// --- GraphViz --------------------------------------------------------------

// Parameters for GraphViz drawing.
type graphParamsType struct {
	Fontname string
	NodeTmpl *template.Template
	EdgeTmpl *template.Template
}

// ToGraphViz outputs a diagram for a document tree. The diagram is in
// GraphViz (DOT) format. Every node given is the root of a sub-diagram.
func ToGraphViz(w io.Writer, nodes ...dom.Node) error {
	tmpl, err := template.New("dom").Parse(graphHeadTmpl)
	if err != nil {
		return err
	}
	gparams := graphParamsType{Fontname: "Helvetica"}
	gparams.NodeTmpl = template.Must(template.New("domnode").Funcs(
		template.FuncMap{
			"shortstring": func(s string) string { return dotString(shortText(s, 10)) },
		}).Parse(domNodeTmpl))
	gparams.EdgeTmpl = template.Must(template.New("domedge").Parse(domEdgeTmpl))
	if err = tmpl.Execute(w, gparams); err != nil {
		return err
	}
	dict := make(map[dom.Node]string, 256)
	for _, n := range nodes {
		if err = graphNodes(n, w, dict, &gparams); err != nil {
			return err
		}
	}
	_, err = w.Write([]byte("}\n"))
	return err
}

// Dotty is a helper for testing. Given a list of nodes and a testing.T, it
// will create a GraphViz image of the document tree and write it to a file
// in the current folder, choosing a unique file name.
// The image is in SVG format.
//
// If an error occurs, t.Error(…) will be set, causing the test to fail.
func Dotty(t *testing.T, nodes ...dom.Node) {
	tmpfile, err := os.CreateTemp(".", "dom.*.dot")
	if err != nil {
		t.Error(err)
		return
	}
	defer func() {
		tmpfile.Close()
		os.Remove(tmpfile.Name()) // clean up
	}()
	t.Logf("writing DOM digraph to %s\n", tmpfile.Name())
	if err = ToGraphViz(tmpfile, nodes...); err != nil {
		t.Error(err)
		return
	}
	outOption := fmt.Sprintf("-o%s.svg", tmpfile.Name())
	cmd := exec.Command("dot", "-Tsvg", outOption, tmpfile.Name())
	cmd.Stdout = os.Stdout
	cmd.Stderr = os.Stderr
	t.Logf("writing DOM tree image to %s.svg\n", tmpfile.Name())
	if err := cmd.Run(); err != nil {
		t.Error(err.Error())
	}
}

type node struct {
	Name   string
	Label  string
	IsText bool
	Text   string
}

type edge struct {
	From, To string
}

func graphNodes(n dom.Node, w io.Writer, dict map[dom.Node]string, gparams *graphParamsType) error {
	name := nodeName(n, dict)
	gn := node{Name: name}
	switch n := n.(type) {
	case *dom.Text:
		gn.IsText, gn.Text = true, n.Content
	case *dom.Element:
		gn.Label = n.Tag()
		if id, ok := n.Get("id"); ok {
			gn.Label += "#" + id
		}
	}
	if err := gparams.NodeTmpl.Execute(w, gn); err != nil {
		return err
	}
	e, ok := n.(*dom.Element)
	if !ok {
		return nil
	}
	for _, ch := range e.Children() {
		if err := graphNodes(ch, w, dict, gparams); err != nil {
			return err
		}
		if err := gparams.EdgeTmpl.Execute(w, edge{name, dict[ch]}); err != nil {
			return err
		}
	}
	return nil
}

func nodeName(n dom.Node, dict map[dom.Node]string) string {
	name := dict[n]
	if name == "" {
		name = fmt.Sprintf("node%05d", len(dict)+1)
		dict[n] = name
	}
	return name
}

func shortText(s string, n int) string {
	if r := []rune(s); len(r) > n {
		s = string(r[:n]) + "..."
	}
	return s
}

func dotString(s string) string {
	s = `"\"` + strings.ReplaceAll(s, `"`, `\"`) + `\""`
	s = strings.Replace(s, "\n", `\\n`, -1)
	s = strings.Replace(s, "\t", `\\t`, -1)
	s = strings.Replace(s, " ", "␣", -1)
	return s
}

// --- Templates --------------------------------------------------------

const graphHeadTmpl = `digraph g {
  graph [labelloc="t" label="" splines=true overlap=false rankdir = "LR"];
  graph [fontname = "{{ .Fontname }}" fontsize=14] ;
   node [fontname = "{{ .Fontname }}" fontsize=14] ;
   edge [fontname = "{{ .Fontname }}" fontsize=14] ;
`

const domNodeTmpl = `{{ if .IsText }}
{{ .Name }}	[ label={{ shortstring .Text }} shape=box style=filled fillcolor=grey95 fontname="Courier" fontsize=11.0 ] ;
{{ else }}
{{ .Name }}	[ label={{ printf "%q" .Label }} shape=ellipse style=filled fillcolor=lightblue3 ] ;
{{ end }}
`

const domEdgeTmpl = `{{ .From }} -> {{ .To }} [weight=1] ;
`
