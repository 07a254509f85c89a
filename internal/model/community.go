package model

import "gorm.io/datatypes"

// Recognised keys of Community.Links.
const (
	LinkWebsite  = "website"
	LinkTwitter  = "twitter"
	LinkLinkedin = "linkedin"
)

type Community struct {
	Slugged
	Focus       string         `gorm:"type:text;not null;default:''" json:"focus"`
	Location    string         `gorm:"size:120;not null;default:''" json:"location"`
	Contact     string         `gorm:"size:150;not null;default:''" json:"contact"`
	Links       datatypes.JSON `gorm:"not null" json:"links"`
	LogoURL     string         `gorm:"not null;default:''" json:"logo_url" validate:"omitempty,absurl"`
	Description string         `gorm:"type:text;not null;default:''" json:"description"`
	FoundedYear *int           `json:"founded_year" validate:"omitempty,gte=1900,lte=2030"`
	MemberCount *int           `json:"member_count" validate:"omitempty,gte=0"`
}

func (Community) TableName() string { return "communities" }

func (*Community) Kind() Kind { return KindCommunity }

func (c *Community) FieldValue(field string) string {
	switch field {
	case "name":
		return c.Name
	case "focus":
		return c.Focus
	case "location":
		return c.Location
	case "description":
		return c.Description
	}
	return ""
}

// LinkMap decodes the links column. Malformed data yields an empty map.
func (c *Community) LinkMap() map[string]string { return decodeMap(c.Links) }

// LinksDisplay returns the populated links of the recognised platforms.
func (c *Community) LinksDisplay() []Link {
	return c.links(
		Link{Label: "Website", Icon: LinkWebsite},
		Link{Label: "Twitter", Icon: LinkTwitter},
		Link{Label: "LinkedIn", Icon: LinkLinkedin},
	)
}

// LinkItems is the shorter list shown on the detail page.
func (c *Community) LinkItems() []Link {
	return c.links(
		Link{Label: "Website", Icon: LinkWebsite},
		Link{Label: "Twitter", Icon: LinkTwitter},
	)
}

func (c *Community) links(wanted ...Link) []Link {
	m := c.LinkMap()
	out := make([]Link, 0, len(wanted))
	for _, l := range wanted {
		if u := m[l.Icon]; u != "" {
			l.URL = u
			out = append(out, l)
		}
	}
	return out
}

func (c *Community) URL() string { return "/communities/" + c.Slug + "/" }
