package ocr

import (
	"image"
	"math"
	"reflect"
	"strings"
	"testing"

	"github.com/tsawler/scoretext/model"
	"github.com/tsawler/scoretext/text"
)

const sampleHOCR = `<?xml version="1.0" encoding="UTF-8"?>
<html xmlns="http://www.w3.org/1999/xhtml">
 <head><title></title></head>
 <body>
  <div class='ocr_page' id='page_1' title='image "score.png"; bbox 0 0 600 200; ppageno 0'>
   <div class='ocr_carea' id='block_1_1' title="bbox 10 10 300 40">
    <p class='ocr_par' id='par_1_1' title="bbox 10 10 300 40">
     <span class='ocr_line' id='line_1_1' title="bbox 10 10 300 40; baseline 0 -5; x_size 30">
      <span class='ocrx_word' id='word_1_1' title='bbox 10 10 40 40; x_wconf 92; x_fsize 14; x_font Times_New_Roman'><strong>Ky</strong></span>
      <span class='ocrx_word' id='word_1_2' title='bbox 60 10 100 40; x_wconf 81'><em>ri<span class='ocrx_cinfo' title='x_bboxes 60 10 70 40; x_conf 99'>e</span></em></span>
     </span>
    </p>
   </div>
   <div class='ocr_carea' id='block_1_2' title="bbox 10 100 300 130">
    <p class='ocr_par' id='par_1_2'>
     <span class='ocr_textfloat' id='line_1_2' title="bbox 10 100 300 130">
      <span class='ocrx_word' id='word_1_3' title='bbox 10 100 50 130'>
       <span class='ocrx_cinfo' title='x_bboxes 10 100 20 130; x_conf 98'>C</span><span class='ocrx_cinfo' title='x_bboxes 22 100 35 130; x_conf 97'>7</span>
      </span>
      <span class='ocrx_word' id='word_1_4' title='bbox 60 100 70 130; x_wconf 50'> </span>
     </span>
     <span class='ocr_line' id='line_1_3' title="bbox 10 150 300 160"></span>
    </p>
   </div>
  </div>
 </body>
</html>`

func TestParseHOCR(t *testing.T) {
	lines, err := ParseHOCR(strings.NewReader(sampleHOCR), image.Point{})
	if err != nil {
		t.Fatalf("ParseHOCR() error = %v", err)
	}
	if len(lines) != 2 {
		t.Fatalf("ParseHOCR() returned %d lines, want 2", len(lines))
	}

	var got []string
	for _, l := range lines {
		got = append(got, l.Value())
	}
	if want := []string{"Ky rie", "C7"}; !reflect.DeepEqual(got, want) {
		t.Errorf("values = %v, want %v", got, want)
	}

	words := lines[0].Words()
	ky, rie := words[0], words[1]

	if ky.Confidence() != 0.92 {
		t.Errorf("Confidence() = %v, want 0.92", ky.Confidence())
	}
	if rie.Confidence() != 0.81 {
		t.Errorf("Confidence() = %v, want 0.81", rie.Confidence())
	}
	if f := ky.Font(); !f.Bold || f.Italic || f.PointSize != 14 || f.Name != "Times_New_Roman" || !f.Serif {
		t.Errorf("Font() = %+v, want bold serif 14pt Times_New_Roman", f)
	}
	if f := rie.Font(); !f.Italic || f.Bold {
		t.Errorf("Font() = %+v, want italic", f)
	}

	// Ky has no char boxes: the word box is split evenly
	if want := model.NewBBox(25, 10, 15, 30); ky.Chars()[1].Bounds() != want {
		t.Errorf("second char = %+v, want %+v", ky.Chars()[1].Bounds(), want)
	}
	if ky.Bounds() != model.NewBBox(10, 10, 30, 30) {
		t.Errorf("Bounds() = %+v, want the word box", ky.Bounds())
	}

	// Baseline 5 pixels above the line bottom
	if bl := ky.Baseline(); bl.P1.Y != 35 || bl.P2.Y != 35 {
		t.Errorf("Baseline() = %+v, want y 35", bl)
	}

	chord := lines[1].Words()
	if len(chord) != 1 {
		t.Fatalf("chord line has %d words, want 1", len(chord))
	}
	if chord[0].Confidence() != text.UnknownConfidence {
		t.Errorf("Confidence() = %v, want unknown", chord[0].Confidence())
	}
	if n := len(chord[0].Chars()); n != 2 {
		t.Errorf("chord chars = %d, want 2", n)
	}
	if want := model.NewBBox(10, 100, 25, 30); chord[0].Bounds() != want {
		t.Errorf("Bounds() = %+v, want %+v", chord[0].Bounds(), want)
	}
}

func TestParseHOCROrigin(t *testing.T) {
	plain, _ := ParseHOCR(strings.NewReader(sampleHOCR), image.Point{})
	moved, err := ParseHOCR(strings.NewReader(sampleHOCR), image.Point{X: 100, Y: 1000})
	if err != nil {
		t.Fatalf("ParseHOCR() error = %v", err)
	}

	for i := range plain {
		a, b := plain[i].Bounds(), moved[i].Bounds()
		if math.Abs(b.X-a.X-100) > 1e-9 || math.Abs(b.Y-a.Y-1000) > 1e-9 {
			t.Errorf("line %d Bounds() = %+v, want %+v moved by (100, 1000)", i, b, a)
		}
	}
	if bl := moved[0].Words()[0].Baseline(); bl.P1.Y != 1035 {
		t.Errorf("Baseline() = %+v, want y 1035", bl)
	}
}

func TestParseHOCREmpty(t *testing.T) {
	lines, err := ParseHOCR(strings.NewReader("<html><body></body></html>"), image.Point{})
	if err != nil {
		t.Fatalf("ParseHOCR() error = %v", err)
	}
	if len(lines) != 0 {
		t.Errorf("ParseHOCR() = %v, want no lines", lines)
	}
}

func TestParseTitle(t *testing.T) {
	props := parseTitle(`bbox 1 2 30 40; x_wconf 95;; baseline 0.01 -3`)

	if box, ok := props.bbox("bbox"); !ok || box != model.NewBBox(1, 2, 29, 38) {
		t.Errorf("bbox = %+v, %v", box, ok)
	}
	if v, ok := props.float("x_wconf"); !ok || v != 95 {
		t.Errorf("x_wconf = %v, %v, want 95", v, ok)
	}
	if _, ok := props.float("x_fsize"); ok {
		t.Error("x_fsize found in title without it")
	}
	if _, ok := props.bbox("baseline"); ok {
		t.Error("baseline parsed as a box")
	}
}
