/*
Package parser reads numeric literals and the parenthesized forms that
apply operators to them.

	expr    := '(' <expr>* ')' | <complex> | <atom> | <comment>
	complex := '#C(' <expr> <expr> ')'
	atom    := /[^\s()";]+/
	comment := ';' <text to end of line>

An atom with numeric syntax (see ReadNumber) is a number and any other
atom is a symbol.
*/
package parser

import (
	"bytes"
	"errors"
	"fmt"
	"io"

	parsec "github.com/prataprc/goparsec"

	"github.com/luthersystems/elpsnum/num"
)

const (
	nodeInvalid nodeType = iota
	nodeAtom
	nodeList
	nodeComplex
)

var nodeTypeStrings = []string{
	nodeInvalid: "INVALID",
	nodeAtom:    "ATOM",
	nodeList:    "LIST",
	nodeComplex: "COMPLEX",
}

type nodeType uint

func (t nodeType) String() string {
	if int(t) >= len(nodeTypeStrings) {
		return "INVALID"
	}
	return nodeTypeStrings[t]
}

// Errors returned by Read for malformed text.
var (
	// ErrUnbalanced is returned when text contains a closing parenthesis
	// without a matching open parenthesis.
	ErrUnbalanced = errors.New("unbalanced parenthesis")
	// ErrSyntax is returned when text contains a character that cannot
	// begin a form.
	ErrSyntax = errors.New("syntax error")
)

// Read parses all forms in text.  Forms read before an error are returned
// along with the error.  If text ends inside of an unterminated form the
// returned error wraps io.ErrUnexpectedEOF so that interactive callers may
// ask for more input.
func Read(text []byte) ([]*Form, error) {
	var forms []*Form
	s := parsec.NewScanner(text)
	parser := newParsecParser()
	root, s := parser(s)
	for root != nil {
		form := getForm(root)
		if form != nil {
			if err := form.firstError(); err != nil {
				return forms, err
			}
			forms = append(forms, form)
		}
		root, s = parser(s)
	}
	cursor := s.GetCursor()
	rest := bytes.TrimSpace(text[cursor:])
	switch {
	case len(rest) == 0:
		return forms, nil
	case rest[0] == ')':
		return forms, fmt.Errorf("offset %d: %w", cursor+bytes.IndexByte(text[cursor:], ')'), ErrUnbalanced)
	case bytes.Count(rest, []byte("(")) > bytes.Count(rest, []byte(")")):
		return forms, fmt.Errorf("offset %d: %w", cursor, io.ErrUnexpectedEOF)
	default:
		return forms, fmt.Errorf("offset %d: %w: unexpected %q", cursor, ErrSyntax, rest[0])
	}
}

// ReadString parses all forms in text.
func ReadString(text string) ([]*Form, error) {
	return Read([]byte(text))
}

func newParsecParser() parsec.Parser {
	openP := parsec.Atom("(", "OPENP")
	closeP := parsec.Atom(")", "CLOSEP")
	openC := parsec.Token(`#[cC]\(`, "OPENC")
	comment := parsec.Token(`;[^\n]*`, "COMMENT")
	atom := parsec.Token(`[^\s()";]+`, "ATOM")
	term := parsec.OrdChoice(astNode(nodeAtom), atom)
	var expr parsec.Parser // forward declaration allows for recursive parsing
	exprList := parsec.Kleene(nil, &expr)
	cexpr := parsec.And(astNode(nodeComplex), openC, &expr, &expr, closeP)
	sexpr := parsec.And(astNode(nodeList), openP, exprList, closeP)
	// complex literals come before atoms, which would swallow the "#C"
	expr = parsec.OrdChoice(nil, comment, cexpr, term, sexpr)
	return expr
}

func astNode(t nodeType) parsec.Nodify {
	return func(nodes []parsec.ParsecNode) parsec.ParsecNode {
		return newForm(t, nodes)
	}
}

func newForm(typ nodeType, nodes []parsec.ParsecNode) parsec.ParsecNode {
	nodes = cleanParsecNodeList(nodes)
	switch typ {
	case nodeAtom:
		term := nodes[0].(*parsec.Terminal)
		n, err := ReadNumber(term.Value)
		switch {
		case errors.Is(err, ErrNotNumber):
			form := Symbol(term.Value)
			form.Pos = term.Position
			return form
		case err != nil:
			return errorForm(term.Position, fmt.Errorf("offset %d: %w", term.Position, err))
		}
		form := Number(n)
		form.Pos = term.Position
		return form
	case nodeList:
		form := List()
		form.Pos = nodes[0].(*parsec.Terminal).Position
		// We don't want the terminal nodes '(' and ')' or comments
		for _, c := range nodes {
			if c, ok := c.(*Form); ok {
				form.Cells = append(form.Cells, c)
			}
		}
		return form
	case nodeComplex:
		pos := nodes[0].(*parsec.Terminal).Position
		var parts []*Form
		for _, c := range nodes {
			if c, ok := c.(*Form); ok {
				parts = append(parts, c)
			}
		}
		return complexForm(pos, parts)
	default:
		panic(fmt.Sprintf("unknown nodeType: %s (%d)", typ, typ))
	}
}

func complexForm(pos int, parts []*Form) *Form {
	if len(parts) != 2 {
		return errorForm(pos, fmt.Errorf("offset %d: complex literal requires two parts", pos))
	}
	for _, p := range parts {
		if p.Type == FormError {
			return p
		}
		if p.Type != FormNumber {
			return errorForm(pos, fmt.Errorf("offset %d: complex part is not a number: %v", pos, p))
		}
	}
	c, err := num.MakeComplex(parts[0].Number, parts[1].Number)
	if err != nil {
		return errorForm(pos, fmt.Errorf("offset %d: %w", pos, err))
	}
	form := Number(c)
	form.Pos = pos
	return form
}

func cleanParsecNodeList(lis []parsec.ParsecNode) []parsec.ParsecNode {
	var nodes []parsec.ParsecNode
	for _, n := range lis {
		switch node := n.(type) {
		case []parsec.ParsecNode:
			nodes = append(nodes, cleanParsecNodeList(node)...)
		default:
			nodes = append(nodes, node)
		}
	}
	return nodes
}

func getForm(root parsec.ParsecNode) *Form {
	nodes := cleanParsecNodeList([]parsec.ParsecNode{root})
	if len(nodes) == 0 {
		// we can be here if there is only whitespace on a line
		return nil
	}
	form, ok := nodes[0].(*Form)
	if !ok {
		// we can be here if there is only a comment on a line
		return nil
	}
	return form
}
