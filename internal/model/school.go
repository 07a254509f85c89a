package model

import (
	"strings"

	"gorm.io/datatypes"
)

type School struct {
	Slugged
	City     string         `gorm:"size:120;not null;default:''" json:"city"`
	Programs datatypes.JSON `gorm:"not null" json:"programs"`
	Contact  string         `gorm:"size:150;not null;default:''" json:"contact"`
}

func (School) TableName() string { return "schools" }

func (*School) Kind() Kind { return KindSchool }

func (s *School) FieldValue(field string) string {
	switch field {
	case "name":
		return s.Name
	case "city":
		return s.City
	case "programs":
		return string(s.Programs)
	}
	return ""
}

// ProgramList decodes the programs column. Malformed data yields an empty list.
func (s *School) ProgramList() []string { return decodeList(s.Programs) }

func (s *School) ProgramsDisplay() string {
	programs := s.ProgramList()
	if len(programs) == 0 {
		return "No programs listed"
	}
	return strings.Join(programs, ", ")
}

func (s *School) URL() string { return "/schools/" + s.Slug + "/" }
