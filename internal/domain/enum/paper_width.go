package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// PaperWidth represents the paper size a receipt is rendered for
type PaperWidth int

const (
	PaperWidth58mm PaperWidth = 0
	PaperWidth80mm PaperWidth = 1
	PaperWidthA4   PaperWidth = 2
)

func (w PaperWidth) String() string {
	names := [...]string{"58mm", "80mm", "A4"}
	if int(w) < 0 || int(w) >= len(names) {
		return "80mm"
	}
	return names[w]
}

// Columns returns the character width for thermal printing.
// A4 receipts are rendered as HTML only, so it returns 0.
func (w PaperWidth) Columns() int {
	switch w {
	case PaperWidth58mm:
		return 32
	case PaperWidth80mm:
		return 48
	default:
		return 0
	}
}

// Thermal reports whether the width maps to an ESC/POS thermal printer.
func (w PaperWidth) Thermal() bool {
	return w == PaperWidth58mm || w == PaperWidth80mm
}

func (w PaperWidth) MarshalJSON() ([]byte, error) {
	return json.Marshal(w.String())
}

func (w *PaperWidth) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*w = PaperWidth(i)
		return nil
	}
	switch str {
	case "58mm":
		*w = PaperWidth58mm
	case "80mm":
		*w = PaperWidth80mm
	case "A4":
		*w = PaperWidthA4
	}
	return nil
}

func (w PaperWidth) Value() (driver.Value, error) {
	return int64(w), nil
}

func (w *PaperWidth) Scan(value interface{}) error {
	if value == nil {
		*w = PaperWidth80mm
		return nil
	}
	switch v := value.(type) {
	case int64:
		*w = PaperWidth(v)
	case int:
		*w = PaperWidth(v)
	}
	return nil
}
