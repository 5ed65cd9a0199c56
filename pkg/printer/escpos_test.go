package printer

import (
	"bytes"
	"strings"
	"testing"
)

func TestKeyValueAlignsToWidth(t *testing.T) {
	d := NewDocument(32)
	d.Reset()
	d.buf.Reset() // drop the init bytes, inspect the text line only
	d.KeyValue("Subtotal", "Rs 1000")

	line := strings.TrimRight(d.buf.String(), "\n")
	if len(line) != 32 {
		t.Fatalf("expected 32-column line, got %d: %q", len(line), line)
	}
	if !strings.HasPrefix(line, "Subtotal") || !strings.HasSuffix(line, "Rs 1000") {
		t.Fatalf("unexpected line layout: %q", line)
	}
}

func TestItemLineNeverCollapsesGap(t *testing.T) {
	d := NewDocument(32)
	d.buf.Reset()
	d.ItemLine(2, "A very long product name that overflows", "Rs 99999")

	line := strings.TrimRight(d.buf.String(), "\n")
	if !strings.Contains(line, " Rs 99999") {
		t.Fatalf("expected at least one space before total: %q", line)
	}
}

func TestBarcodeEmitsCode39Command(t *testing.T) {
	d := NewDocument(48)
	before := len(d.Bytes())
	d.Barcode("DP10002345")

	tail := d.Bytes()[before:]
	if !bytes.Contains(tail, []byte{GS, 'k', 4}) {
		t.Fatalf("expected GS k 4 barcode command in %v", tail)
	}
	if tail[len(tail)-1] != 0 {
		t.Fatalf("barcode data must be NUL-terminated")
	}
}

func TestBarcodeSkipsEmptyData(t *testing.T) {
	d := NewDocument(48)
	before := len(d.Bytes())
	d.Barcode("")
	if len(d.Bytes()) != before {
		t.Fatalf("empty barcode must emit nothing")
	}
}

func TestDocumentBytesDeterministic(t *testing.T) {
	build := func() []byte {
		d := NewDocument(32)
		d.SetAlign(AlignCenter).SetBold(true).Text("DOCTOR PLANET").SetBold(false)
		d.Separator('-')
		d.ItemLine(1, "Lab Coat", "Rs 2500")
		d.KeyValue("TOTAL:", "Rs 2500")
		d.PartialCut()
		return d.Bytes()
	}
	if !bytes.Equal(build(), build()) {
		t.Fatalf("same input must produce byte-identical output")
	}
}
