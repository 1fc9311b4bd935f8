package models

import (
	"time"

	"gorm.io/datatypes"
)

// SiteContentID is the fixed primary key of the singleton content row.
const SiteContentID = 1

// SiteContent is the single editable content document for the public site.
// The server treats the document as an opaque JSON blob: writes replace the
// whole thing, last writer wins, and no field-level validation is applied.
type SiteContent struct {
	ID        int            `json:"id" gorm:"primaryKey"`
	Content   datatypes.JSON `json:"content" gorm:"not null"`
	UpdatedAt time.Time      `json:"updated_at"`
}

func (SiteContent) TableName() string {
	return "site_content"
}

// defaultSiteContent is served whenever no content row has been written yet,
// so the public site always has something to render.
const defaultSiteContent = `{
  "hero": {
    "greeting": "Hello, I'm",
    "name": "V NOHITH KUMAR",
    "title": "Full-Stack Developer",
    "bio": "I'm passionate about building elegant solutions and learning new technologies. Ready to contribute and grow.",
    "stats": [
      { "value": 0, "label": "Projects", "suffix": "+" },
      { "value": 0, "label": "Technologies", "suffix": "+" }
    ],
    "ctaPrimary": "View Projects",
    "ctaSecondary": "Get in Touch"
  },
  "journey": {
    "sectionTitle": "My Journey",
    "sectionDesc": "Milestones and experiences that shaped my path.",
    "items": []
  },
  "technicalSkills": {
    "sectionTitle": "Technical Skills",
    "sectionDesc": "Technologies and tools I'm proficient in.",
    "skills": {}
  },
  "contact": {
    "email": "nohithkumar01@gmail.com",
    "location": "Gandipet, Hyderabad",
    "availability": "Open to new opportunities and collaborations. Let's build something great together."
  },
  "footer": {
    "siteName": "Portfolio",
    "copyrightBy": "V Nohith Kumar",
    "socialLinks": [
      { "platform": "GitHub", "href": "https://github.com", "icon": "Github" },
      { "platform": "LinkedIn", "href": "https://linkedin.com/in", "icon": "Linkedin" }
    ]
  },
  "projects": {
    "sectionTitle": "Projects",
    "sectionDesc": "Things I've built and learned from."
  }
}`

// DefaultSiteContent returns the document served before any admin edit.
func DefaultSiteContent() datatypes.JSON {
	return datatypes.JSON(defaultSiteContent)
}
