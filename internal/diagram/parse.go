// Package diagram resolves 2D vector anatomy diagrams: it parses the
// diagram's embedded text labels, matches them to catalogue parts, and
// synthesizes invisible hit regions that behave like the 3D scene's
// meshes when the 3D view is unavailable.
package diagram

import (
	"bytes"
	"encoding/xml"
	"fmt"
	"io"
	"regexp"
	"strconv"
	"strings"

	"anatomy-mapper/pkg/geometry"
)

// Approximate glyph metrics for label bounding boxes. Vector diagrams
// carry no font metrics, so boxes are estimated from the font size.
const (
	defaultFontSize = 12.0
	glyphAspect     = 0.55 // average glyph width as a fraction of font size
	lineAspect      = 1.2
)

// Label is a text label extracted from the diagram markup.
type Label struct {
	Text   string
	Bounds geometry.Rect
}

// Document is a parsed vector diagram: its intrinsic viewbox and the
// text labels found in the markup.
type Document struct {
	Width  float64
	Height float64
	Labels []Label
}

type svgElement struct {
	name     string
	x, y     float64
	fontSize float64
}

// Parse extracts the viewbox and text labels from SVG markup. Both
// <text> content and nested <tspan> runs are collected; a tspan with
// its own anchor becomes its own label.
func Parse(data []byte) (*Document, error) {
	doc := &Document{}
	dec := xml.NewDecoder(bytes.NewReader(data))
	dec.Strict = false

	var stack []svgElement
	var textBuf strings.Builder

	flush := func() {
		text := strings.TrimSpace(textBuf.String())
		textBuf.Reset()
		if text == "" || len(stack) == 0 {
			return
		}
		el := stack[len(stack)-1]
		doc.Labels = append(doc.Labels, Label{
			Text:   text,
			Bounds: labelBounds(text, el),
		})
	}

	for {
		tok, err := dec.Token()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, fmt.Errorf("parse diagram: %w", err)
		}

		switch t := tok.(type) {
		case xml.StartElement:
			switch t.Name.Local {
			case "svg":
				doc.Width, doc.Height = parseViewBox(t)
			case "text", "tspan":
				el := svgElement{name: t.Name.Local, fontSize: defaultFontSize}
				if len(stack) > 0 {
					// tspans inherit the text element's anchor and size
					parent := stack[len(stack)-1]
					el.x, el.y, el.fontSize = parent.x, parent.y, parent.fontSize
				}
				for _, attr := range t.Attr {
					switch attr.Name.Local {
					case "x":
						el.x = parseLength(attr.Value, el.x)
					case "y":
						el.y = parseLength(attr.Value, el.y)
					case "font-size":
						el.fontSize = parseLength(attr.Value, el.fontSize)
					}
				}
				flush()
				stack = append(stack, el)
			}
		case xml.EndElement:
			if t.Name.Local == "text" || t.Name.Local == "tspan" {
				flush()
				if len(stack) > 0 {
					stack = stack[:len(stack)-1]
				}
			}
		case xml.CharData:
			if len(stack) > 0 {
				textBuf.Write(t)
			}
		}
	}

	if doc.Width <= 0 || doc.Height <= 0 {
		return nil, fmt.Errorf("parse diagram: no usable viewbox")
	}
	return doc, nil
}

// labelBounds estimates the label's bounding box from its anchor and
// font size. SVG text anchors at the baseline, so the box extends one
// line height upward.
func labelBounds(text string, el svgElement) geometry.Rect {
	w := float64(len(text)) * el.fontSize * glyphAspect
	h := el.fontSize * lineAspect
	return geometry.Rect{X: el.x, Y: el.y - el.fontSize, Width: w, Height: h}
}

func parseViewBox(el xml.StartElement) (w, h float64) {
	var viewBox string
	for _, attr := range el.Attr {
		switch attr.Name.Local {
		case "viewBox":
			viewBox = attr.Value
		case "width":
			w = parseLength(attr.Value, w)
		case "height":
			h = parseLength(attr.Value, h)
		}
	}
	if viewBox != "" {
		parts := strings.Fields(strings.ReplaceAll(viewBox, ",", " "))
		if len(parts) == 4 {
			w = parseLength(parts[2], w)
			h = parseLength(parts[3], h)
		}
	}
	return w, h
}

var unitSuffixRe = regexp.MustCompile(`[a-z%]+$`)

func parseLength(s string, fallback float64) float64 {
	s = unitSuffixRe.ReplaceAllString(strings.TrimSpace(s), "")
	v, err := strconv.ParseFloat(s, 64)
	if err != nil {
		return fallback
	}
	return v
}

var parentheticalRe = regexp.MustCompile(`\s*\([^)]*\)`)

// NormalizeLabel strips parenthetical qualifiers, trims and lowercases
// label text for table lookup: "Cochlea (inner ear)" -> "cochlea".
func NormalizeLabel(text string) string {
	text = parentheticalRe.ReplaceAllString(text, "")
	return strings.ToLower(strings.TrimSpace(text))
}
