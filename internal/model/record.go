package model

import (
	"bytes"
	"encoding/json"
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
	"gorm.io/gorm"
)

// Kind names one of the directory record types.
type Kind string

const (
	KindPerson    Kind = "person"
	KindCommunity Kind = "community"
	KindSchool    Kind = "school"
)

// Kinds lists every record kind in display order.
var Kinds = []Kind{KindPerson, KindCommunity, KindSchool}

// Record is implemented by every directory record. The slug is owned by the store.
type Record interface {
	Kind() Kind
	Base() *Slugged
	// FieldValue returns the text a filter matches against for the named field.
	FieldValue(field string) string
}

// Slugged holds the columns shared by all records.
type Slugged struct {
	ID        uuid.UUID `gorm:"type:uuid;primaryKey" json:"-"`
	Name      string    `gorm:"size:150;not null;uniqueIndex" json:"name"`
	Slug      string    `gorm:"size:160;not null;uniqueIndex" json:"slug"`
	CreatedAt time.Time `json:"created_at"`
	UpdatedAt time.Time `json:"updated_at"`
}

// BeforeCreate assigns the primary key.
func (s *Slugged) BeforeCreate(tx *gorm.DB) error {
	if s.ID == uuid.Nil {
		s.ID = uuid.New()
	}
	return nil
}

func (s *Slugged) Base() *Slugged { return s }

// Link is a labelled external link shown on detail pages.
type Link struct {
	Label string `json:"label"`
	URL   string `json:"url"`
	Icon  string `json:"icon"`
}

// StringList encodes values as a JSON list column.
func StringList(values ...string) datatypes.JSON {
	if values == nil {
		values = []string{}
	}
	return encode(values)
}

// StringMap encodes values as a JSON object column.
func StringMap(values map[string]string) datatypes.JSON {
	if values == nil {
		values = map[string]string{}
	}
	return encode(values)
}

// encode writes v without HTML escaping so that the stored text matches the filter terms.
func encode(v any) datatypes.JSON {
	var buf bytes.Buffer
	enc := json.NewEncoder(&buf)
	enc.SetEscapeHTML(false)
	_ = enc.Encode(v)
	return datatypes.JSON(bytes.TrimRight(buf.Bytes(), "\n"))
}

func decodeList(raw datatypes.JSON) []string {
	var out []string
	if len(raw) == 0 {
		return []string{}
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return []string{}
	}
	return out
}

func decodeMap(raw datatypes.JSON) map[string]string {
	var out map[string]string
	if len(raw) == 0 {
		return map[string]string{}
	}
	if err := json.Unmarshal(raw, &out); err != nil || out == nil {
		return map[string]string{}
	}
	return out
}
