// Package content defines the editable site content document and the store
// that gates access to it.
package content

// Hero is the landing section of the site.
type Hero struct {
	Badge           string   `json:"badge"`
	ScramblePhrases []string `json:"scramblePhrases"`
	Description     string   `json:"description"`
	Stats           []Stat   `json:"stats"`
}

// Stat is a headline figure shown in the hero section.
type Stat struct {
	Value string `json:"value"`
	Label string `json:"label"`
}

// About is the expertise section.
type About struct {
	SectionLabel string      `json:"sectionLabel"`
	Heading      string      `json:"heading"`
	Subheading   string      `json:"subheading"`
	Paragraphs   []string    `json:"paragraphs"`
	Cards        []AboutCard `json:"cards"`
}

// AboutCard is a highlight card in the about section.
type AboutCard struct {
	Title       string `json:"title"`
	Description string `json:"description"`
}

// ExperienceItem is one employment entry.
type ExperienceItem struct {
	Company string   `json:"company"`
	Role    string   `json:"role"`
	Period  string   `json:"period"`
	Desc    string   `json:"desc"`
	Tags    []string `json:"tags"`
}

// SkillGroup is a named group of skills with a lucide icon key.
type SkillGroup struct {
	Title  string   `json:"title"`
	Icon   string   `json:"icon"`
	Skills []string `json:"skills"`
}

// ProjectLinks holds optional external links for a project.
type ProjectLinks struct {
	Live   string `json:"live,omitempty"`
	GitHub string `json:"github,omitempty"`
}

// ProjectItem is one portfolio project entry.
type ProjectItem struct {
	Title           string        `json:"title"`
	Description     string        `json:"description"`
	LongDescription string        `json:"longDescription"`
	Tags            []string      `json:"tags"`
	Category        string        `json:"category"`
	Accent          string        `json:"accent"`
	Highlights      []string      `json:"highlights"`
	Links           *ProjectLinks `json:"links,omitempty"`
}

// EducationItem is one education entry.
type EducationItem struct {
	Institution string `json:"institution"`
	Degree      string `json:"degree"`
	Icon        string `json:"icon"`
}

// Contact is the contact section.
type Contact struct {
	Phone       string       `json:"phone"`
	Email       string       `json:"email"`
	SocialLinks []SocialLink `json:"socialLinks"`
	FormHeading string       `json:"formHeading"`
	FormQuote   string       `json:"formQuote"`
}

// SocialLink is a single social profile reference.
type SocialLink struct {
	Platform string `json:"platform"`
	URL      string `json:"url"`
}

// Visibility toggles each section of the public page.
type Visibility struct {
	Hero       bool `json:"hero"`
	About      bool `json:"about"`
	Experience bool `json:"experience"`
	Skills     bool `json:"skills"`
	Projects   bool `json:"projects"`
	Education  bool `json:"education"`
	Contact    bool `json:"contact"`
}

// SiteContent is the full editable content document.
type SiteContent struct {
	Hero       Hero             `json:"hero"`
	About      About            `json:"about"`
	Experience []ExperienceItem `json:"experience"`
	Skills     []SkillGroup     `json:"skills"`
	Projects   []ProjectItem    `json:"projects"`
	Education  []EducationItem  `json:"education"`
	Contact    Contact          `json:"contact"`
	Visibility Visibility       `json:"visibility"`
}
