package ocr

import (
	"fmt"
	"image"
	"io"
	"strconv"
	"strings"

	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/text"
)

// lineClasses are the hOCR classes of text lines
var lineClasses = []string{"ocr_line", "ocr_textfloat", "ocr_header", "ocr_caption"}

// ParseHOCR converts an hOCR document into raw recognized lines. Origin is
// added to every coordinate, for documents recognized from a cropped
// region.
func ParseHOCR(r io.Reader, origin image.Point) ([]*text.Line, error) {
	doc, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing hOCR: %w", err)
	}

	var lines []*text.Line
	var walk func(n *html.Node)
	walk = func(n *html.Node) {
		if n.Type == html.ElementNode && hasAnyClass(n, lineClasses...) {
			if l := parseLine(n); l != nil {
				l.Translate(float64(origin.X), float64(origin.Y))
				lines = append(lines, l)
			}
			return
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			walk(c)
		}
	}
	walk(doc)

	return lines, nil
}

// baseline is the hOCR line baseline: y = slope*(x-left) + offset, relative
// to the bottom left corner of the line box
type baseline struct {
	box    model.BBox
	slope  float64
	offset float64
	ok     bool
}

func (b baseline) segment(left, right float64) model.Segment {
	y := func(x float64) float64 {
		return b.box.Bottom() + b.offset + b.slope*(x-b.box.Left())
	}
	return model.NewSegment(model.Point{X: left, Y: y(left)}, model.Point{X: right, Y: y(right)})
}

func parseLine(n *html.Node) *text.Line {
	props := parseTitle(attr(n, "title"))
	box, _ := props.bbox("bbox")

	bl := baseline{box: box}
	if v := props["baseline"]; len(v) == 2 {
		slope, err1 := strconv.ParseFloat(v[0], 64)
		offset, err2 := strconv.ParseFloat(v[1], 64)
		bl = baseline{box: box, slope: slope, offset: offset, ok: err1 == nil && err2 == nil}
	}

	var words []*text.Word
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && hasAnyClass(c, "ocrx_word") {
			if w := parseWord(c, bl); w != nil {
				words = append(words, w)
			}
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)

	if len(words) == 0 {
		return nil
	}
	return text.NewLine(words...)
}

func parseWord(n *html.Node, bl baseline) *text.Word {
	value := norm.NFC.String(strings.TrimSpace(textContent(n)))
	if value == "" {
		return nil
	}

	props := parseTitle(attr(n, "title"))
	box, ok := props.bbox("bbox")
	if !ok {
		return nil
	}

	confidence := text.UnknownConfidence
	if v, ok := props.float("x_wconf"); ok {
		confidence = v / 100
	}

	f := text.Font{
		Bold:   hasElement(n, "strong", "b"),
		Italic: hasElement(n, "em", "i"),
	}
	if v, ok := props.float("x_fsize"); ok {
		f.PointSize = v
	}
	if v := props["x_font"]; len(v) > 0 {
		f.Name = strings.Join(v, " ")
		lower := strings.ToLower(f.Name)
		f.Monospace = strings.Contains(lower, "mono") || strings.Contains(lower, "courier")
		f.Serif = !strings.Contains(lower, "sans") &&
			(strings.Contains(lower, "serif") || strings.Contains(lower, "times"))
	}

	// Partial char boxes are ignored
	chars := parseChars(n)
	if len(chars) != len([]rune(value)) {
		chars = splitEvenly(value, box)
	}

	w := text.NewWord(value, confidence, f, chars)
	if bl.ok {
		w.SetBaseline(bl.segment(box.Left(), box.Right()))
	}
	return w
}

// parseChars returns the char boxes of a word, when reported
func parseChars(n *html.Node) []text.Char {
	var chars []text.Char
	var walk func(c *html.Node)
	walk = func(c *html.Node) {
		if c.Type == html.ElementNode && hasAnyClass(c, "ocrx_cinfo") {
			props := parseTitle(attr(c, "title"))
			box, ok := props.bbox("x_bboxes")
			if !ok {
				box, ok = props.bbox("bbox")
			}
			value := norm.NFC.String(strings.TrimSpace(textContent(c)))
			if ok && value != "" {
				chars = append(chars, text.NewChar(box, value))
			}
			return
		}
		for cc := c.FirstChild; cc != nil; cc = cc.NextSibling {
			walk(cc)
		}
	}
	walk(n)
	return chars
}

// splitEvenly divides the word box between the value runes
func splitEvenly(value string, box model.BBox) []text.Char {
	runes := []rune(value)
	width := box.Width / float64(len(runes))

	chars := make([]text.Char, 0, len(runes))
	for i, r := range runes {
		b := model.NewBBox(box.X+float64(i)*width, box.Y, width, box.Height)
		chars = append(chars, text.NewChar(b, string(r)))
	}
	return chars
}

// properties are the values of an hOCR title attribute, by property name
type properties map[string][]string

// parseTitle splits `bbox 1 2 3 4; x_wconf 95` into properties
func parseTitle(title string) properties {
	props := make(properties)
	for _, part := range strings.Split(title, ";") {
		fields := strings.Fields(part)
		if len(fields) == 0 {
			continue
		}
		props[fields[0]] = fields[1:]
	}
	return props
}

func (p properties) float(key string) (float64, bool) {
	v := p[key]
	if len(v) == 0 {
		return 0, false
	}
	f, err := strconv.ParseFloat(v[0], 64)
	return f, err == nil
}

// bbox parses `x0 y0 x1 y1` corners
func (p properties) bbox(key string) (model.BBox, bool) {
	v := p[key]
	if len(v) < 4 {
		return model.BBox{}, false
	}

	var c [4]float64
	for i := range c {
		f, err := strconv.ParseFloat(v[i], 64)
		if err != nil {
			return model.BBox{}, false
		}
		c[i] = f
	}
	return model.NewBBoxFromPoints(model.Point{X: c[0], Y: c[1]}, model.Point{X: c[2], Y: c[3]}), true
}

func attr(n *html.Node, key string) string {
	for _, a := range n.Attr {
		if a.Key == key {
			return a.Val
		}
	}
	return ""
}

func hasAnyClass(n *html.Node, classes ...string) bool {
	for _, c := range strings.Fields(attr(n, "class")) {
		for _, want := range classes {
			if c == want {
				return true
			}
		}
	}
	return false
}

// hasElement reports whether n has a descendant with one of the tag names
func hasElement(n *html.Node, tags ...string) bool {
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			for _, tag := range tags {
				if c.Data == tag {
					return true
				}
			}
		}
		if hasElement(c, tags...) {
			return true
		}
	}
	return false
}

func textContent(n *html.Node) string {
	if n.Type == html.TextNode {
		return n.Data
	}
	var sb strings.Builder
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		sb.WriteString(textContent(c))
	}
	return sb.String()
}
