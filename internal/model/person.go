package model

import "gorm.io/datatypes"

type Person struct {
	Slugged
	Role         string         `gorm:"size:120;not null;default:''" json:"role"`
	Interests    datatypes.JSON `gorm:"not null" json:"interests"`
	Availability string         `gorm:"size:200;not null;default:''" json:"availability"`
	AvatarURL    string         `gorm:"not null;default:''" json:"avatar_url" validate:"omitempty,absurl"`
	Bio          string         `gorm:"type:text;not null;default:''" json:"bio"`

	GithubURL   string `gorm:"not null;default:''" json:"github_url" validate:"omitempty,absurl"`
	TwitterURL  string `gorm:"not null;default:''" json:"twitter_url" validate:"omitempty,absurl"`
	LinkedinURL string `gorm:"not null;default:''" json:"linkedin_url" validate:"omitempty,absurl"`
	WebsiteURL  string `gorm:"not null;default:''" json:"website_url" validate:"omitempty,absurl"`
}

func (Person) TableName() string { return "people" }

func (*Person) Kind() Kind { return KindPerson }

func (p *Person) FieldValue(field string) string {
	switch field {
	case "name":
		return p.Name
	case "role":
		return p.Role
	case "interests":
		return string(p.Interests)
	case "availability":
		return p.Availability
	case "bio":
		return p.Bio
	}
	return ""
}

// InterestList decodes the interests column. Malformed data yields an empty list.
func (p *Person) InterestList() []string { return decodeList(p.Interests) }

// SocialLinks returns the populated profile links.
func (p *Person) SocialLinks() []Link {
	var links []Link
	if p.GithubURL != "" {
		links = append(links, Link{Label: "GitHub", URL: p.GithubURL, Icon: "github"})
	}
	if p.TwitterURL != "" {
		links = append(links, Link{Label: "Twitter", URL: p.TwitterURL, Icon: "twitter"})
	}
	if p.LinkedinURL != "" {
		links = append(links, Link{Label: "LinkedIn", URL: p.LinkedinURL, Icon: "linkedin"})
	}
	if p.WebsiteURL != "" {
		links = append(links, Link{Label: "Website", URL: p.WebsiteURL, Icon: "website"})
	}
	return links
}

func (p *Person) URL() string { return "/people/" + p.Slug + "/" }
