package domain

// Page identifies one of the portfolio screens
type Page int

const (
	PageHome Page = iota
	PageProjects
	PageAbout
	PageContact
)

// Pages returns every page in navigation order
func Pages() []Page {
	return []Page{PageHome, PageProjects, PageAbout, PageContact}
}

// String returns the display name of the page
func (p Page) String() string {
	switch p {
	case PageHome:
		return "Home"
	case PageProjects:
		return "Projects"
	case PageAbout:
		return "About"
	case PageContact:
		return "Contact"
	default:
		return "Unknown"
	}
}

// Label returns the upper-case name shown in the navigation bar
func (p Page) Label() string {
	switch p {
	case PageHome:
		return "HOME"
	case PageProjects:
		return "PROJECTS"
	case PageAbout:
		return "ABOUT"
	case PageContact:
		return "CONTACT"
	default:
		return "?"
	}
}

// Key returns the identifier used by the content catalog
func (p Page) Key() string {
	switch p {
	case PageHome:
		return "home"
	case PageProjects:
		return "projects"
	case PageAbout:
		return "about"
	case PageContact:
		return "contact"
	default:
		return ""
	}
}

// Valid reports whether p is one of the known pages
func (p Page) Valid() bool {
	return p >= PageHome && p <= PageContact
}
