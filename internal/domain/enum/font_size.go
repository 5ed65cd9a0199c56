package enum

import (
	"database/sql/driver"
	"encoding/json"
)

// FontSize controls the receipt font scale
type FontSize int

const (
	FontSizeSmall  FontSize = 0
	FontSizeNormal FontSize = 1
	FontSizeLarge  FontSize = 2
)

func (f FontSize) String() string {
	names := [...]string{"small", "normal", "large"}
	if int(f) < 0 || int(f) >= len(names) {
		return "normal"
	}
	return names[f]
}

// Points returns the base font size in points for HTML rendering.
func (f FontSize) Points() int {
	switch f {
	case FontSizeSmall:
		return 10
	case FontSizeLarge:
		return 14
	default:
		return 12
	}
}

func (f FontSize) MarshalJSON() ([]byte, error) {
	return json.Marshal(f.String())
}

func (f *FontSize) UnmarshalJSON(data []byte) error {
	var str string
	if err := json.Unmarshal(data, &str); err != nil {
		var i int
		if err := json.Unmarshal(data, &i); err != nil {
			return err
		}
		*f = FontSize(i)
		return nil
	}
	switch str {
	case "small":
		*f = FontSizeSmall
	case "normal":
		*f = FontSizeNormal
	case "large":
		*f = FontSizeLarge
	}
	return nil
}

func (f FontSize) Value() (driver.Value, error) {
	return int64(f), nil
}

func (f *FontSize) Scan(value interface{}) error {
	if value == nil {
		*f = FontSizeNormal
		return nil
	}
	switch v := value.(type) {
	case int64:
		*f = FontSize(v)
	case int:
		*f = FontSize(v)
	}
	return nil
}
