package content

// Document is the displayable CV data for one language. It is immutable
// after loading; handlers and renderers only read it.
type Document struct {
	Lang     string      `yaml:"lang"`
	Headline string      `yaml:"headline"`
	Summary  string      `yaml:"summary"`
	Meta     Meta        `yaml:"meta"`
	Career   []Position  `yaml:"career"`
	Academic []Milestone `yaml:"academic"`
	Skills   []Group     `yaml:"skills"`
	Contact  Contact     `yaml:"contact"`
}

// Meta carries the localized SEO tags for the page head.
type Meta struct {
	Title       string `yaml:"title"`
	Description string `yaml:"description"`
	OGImage     string `yaml:"og_image"`
}

// Position is one entry of the career timeline. Entries are authored in
// display order, newest first; Start/End are display strings, not parsed
// dates.
type Position struct {
	ID      string   `yaml:"id"`
	Role    string   `yaml:"role"`
	Company string   `yaml:"company"`
	Start   string   `yaml:"start"`
	End     string   `yaml:"end"`
	Logo    string   `yaml:"logo"`
	Bullets []string `yaml:"bullets"`
}

// Milestone is one academic achievement: a degree, diploma, or
// certification.
type Milestone struct {
	ID          string   `yaml:"id"`
	Degree      string   `yaml:"degree"`
	Institution string   `yaml:"institution"`
	Start       string   `yaml:"start"`
	End         string   `yaml:"end"`
	Logo        string   `yaml:"logo"`
	Bullets     []string `yaml:"bullets"`
}

// Group is a named set of related skills.
type Group struct {
	Name   string   `yaml:"name"`
	Skills []string `yaml:"skills"`
}

// Contact is the contact block and the source for the vCard.
type Contact struct {
	Name     string `yaml:"name"`
	Title    string `yaml:"title"`
	Email    string `yaml:"email"`
	Phone    string `yaml:"phone"`
	Location string `yaml:"location"`
	Website  string `yaml:"website"`
	GitHub   string `yaml:"github"`
	LinkedIn string `yaml:"linkedin"`
}
