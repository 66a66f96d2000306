package cleaner

import (
	"regexp"
	"strconv"

	"github.com/beevik/etree"
	"golang.org/x/net/html/charset"
	"golang.org/x/xerrors"
)

// Document is a parsed SVG element tree. Attributes, namespace prefixes and
// unrelated elements round-trip through Marshal untouched.
type Document struct {
	doc *etree.Document
}

// Parse reads SVG markup. Non-UTF-8 encodings named in the XML declaration
// are decoded.
func Parse(data []byte) (*Document, error) {
	doc := etree.NewDocument()
	doc.ReadSettings.CharsetReader = charset.NewReaderLabel
	if err := doc.ReadFromBytes(data); err != nil {
		return nil, &ParseError{Err: err}
	}
	if doc.Root() == nil {
		return nil, &ParseError{Err: xerrors.New("no root element")}
	}
	return &Document{doc: doc}, nil
}

// Root returns the document's root element.
func (d *Document) Root() *etree.Element {
	return d.doc.Root()
}

// Marshal serializes the document as UTF-8 with an XML declaration.
func (d *Document) Marshal() ([]byte, error) {
	for i := len(d.doc.Child) - 1; i >= 0; i-- {
		if pi, ok := d.doc.Child[i].(*etree.ProcInst); ok && pi.Target == "xml" {
			d.doc.RemoveChildAt(i)
		}
	}
	d.doc.InsertChildAt(0, etree.NewProcInst("xml", `version="1.0" encoding="UTF-8"`))
	return d.doc.WriteToBytes()
}

// isPath reports whether el is a path element, ignoring any namespace prefix.
func isPath(el *etree.Element) bool {
	return el.Tag == "path"
}

// findPaths returns every path element below root, in document order.
// The tree is not modified, so callers may remove the results afterwards.
func findPaths(root *etree.Element) []*etree.Element {
	var paths []*etree.Element
	var descend func(node *etree.Element)
	descend = func(node *etree.Element) {
		for _, child := range node.ChildElements() {
			if isPath(child) {
				paths = append(paths, child)
			}
			descend(child)
		}
	}
	descend(root)
	return paths
}

func detach(el *etree.Element) {
	if parent := el.Parent(); parent != nil {
		parent.RemoveChild(el)
	}
}

var unitsRE = regexp.MustCompile(`^\s*([0-9.eE+-]+)\s*([a-zA-Z]*)\s*$`)

// PhysicalSize returns the root element's width and height in mm. Lengths
// without units are taken to be px.
func (d *Document) PhysicalSize() (widthMM, heightMM float64, err error) {
	root := d.Root()
	widthMM, err = parseLengthMM(root.SelectAttrValue("width", ""))
	if err != nil {
		return 0, 0, xerrors.Errorf("width: %w", err)
	}
	heightMM, err = parseLengthMM(root.SelectAttrValue("height", ""))
	if err != nil {
		return 0, 0, xerrors.Errorf("height: %w", err)
	}
	return widthMM, heightMM, nil
}

func parseLengthMM(length string) (float64, error) {
	match := unitsRE.FindStringSubmatch(length)
	if match == nil {
		return 0, xerrors.Errorf("unrecognized length %q", length)
	}
	value, err := strconv.ParseFloat(match[1], 64)
	if err != nil {
		return 0, xerrors.Errorf("unrecognized length %q: %w", length, err)
	}
	units := match[2]
	if units == "" {
		units = "px"
	}
	factor, ok := unitFactors[units]
	if !ok {
		return 0, xerrors.Errorf("unsupported units %q", units)
	}
	return value * factor, nil
}

// FormatNumber writes n in plain decimal notation with the fewest digits
// that round-trip.
func FormatNumber(n float64) string {
	return strconv.FormatFloat(n, 'f', -1, 64)
}
