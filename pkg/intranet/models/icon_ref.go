package models

import (
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
)

// IconKind discriminates the two shapes an icon field can take.
type IconKind string

const (
	IconNone  IconKind = ""
	IconEmoji IconKind = "emoji"
	IconImage IconKind = "image"
)

// IconRef is a tagged variant: either a short emoji/text glyph or the path of
// an uploaded image under the content root. The persisted and JSON form stays
// the original single string, where a leading "/" marks an image path; the
// sniffing happens once here, not at render time.
type IconRef struct {
	Kind  IconKind
	Glyph string // set when Kind == IconEmoji
	Path  string // set when Kind == IconImage
}

func ParseIconRef(s string) IconRef {
	switch {
	case s == "":
		return IconRef{}
	case strings.HasPrefix(s, "/"):
		return IconRef{Kind: IconImage, Path: s}
	default:
		return IconRef{Kind: IconEmoji, Glyph: s}
	}
}

func (i IconRef) IsZero() bool { return i.Kind == IconNone }

func (i IconRef) String() string {
	if i.Kind == IconImage {
		return i.Path
	}
	return i.Glyph
}

func (i IconRef) Value() (driver.Value, error) {
	return i.String(), nil
}

func (i *IconRef) Scan(value interface{}) error {
	switch v := value.(type) {
	case nil:
		*i = IconRef{}
	case string:
		*i = ParseIconRef(v)
	case []byte:
		*i = ParseIconRef(string(v))
	default:
		return fmt.Errorf("cannot scan %T into IconRef", value)
	}
	return nil
}

func (i IconRef) MarshalJSON() ([]byte, error) {
	return json.Marshal(i.String())
}

func (i *IconRef) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}
	*i = ParseIconRef(s)
	return nil
}
