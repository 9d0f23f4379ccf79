package verdant

// GalleryItem is one photo in the project gallery. Items are never edited in
// place; editors delete and re-upload instead.
type GalleryItem struct {
	ID          string
	Title       string
	Description string
	Category    string
	ImageURL    string
	CreatedAt   string
}

// ProductItem has the same shape as GalleryItem but lives in its own table
// and bucket so products and gallery photos can be managed independently.
type ProductItem struct {
	ID          string
	Title       string
	Description string
	Category    string
	ImageURL    string
	CreatedAt   string
}

// CatalogPage is a single scanned page of the printed catalog. Page numbers
// are 1-based and assigned at upload time; deleting a page leaves a gap.
type CatalogPage struct {
	ID         string
	PageNumber int
	ImageURL   string
}

// BlogPost is a marketing blog entry written from the admin panel.
type BlogPost struct {
	ID        string
	Title     string
	Content   string
	Category  string
	ImageURL  string
	CreatedAt string
}

// TeamMember is one entry of the about page's team section.
type TeamMember struct {
	Name     string `json:"name"`
	Role     string `json:"role"`
	Bio      string `json:"bio"`
	ImageURL string `json:"image_url,omitempty"`
}

// AboutStats holds the headline numbers shown on the about page.
type AboutStats struct {
	YearsExperience    int `json:"years_experience"`
	CompletedProjects  int `json:"completed_projects"`
	TeamSize           int `json:"team_size"`
	ClientSatisfaction int `json:"client_satisfaction"`
}

// AboutContent is the singleton "about us" record. Values, TeamMembers and
// Stats are stored as JSON text in the database and decoded on read.
type AboutContent struct {
	ID          string
	Title       string
	Content     string
	Mission     string
	Vision      string
	Values      []string
	History     string
	TeamMembers []TeamMember
	Stats       AboutStats
	ImageURL    string
	CreatedAt   string
}

// HeroContent is the singleton hero section of the home page.
type HeroContent struct {
	ID              string
	Title           string
	Description     string
	BackgroundImage string
	CreatedAt       string
}

// ContactInfo is the singleton contact record. Phone must be convertible to
// a digits-only dial string for WhatsApp links.
type ContactInfo struct {
	ID        string
	Phone     string
	Email     string
	Address   string
	CreatedAt string
}

// LogoSettings is the singleton pair of header/footer logo URLs.
type LogoSettings struct {
	ID         string
	HeaderLogo string
	FooterLogo string
	CreatedAt  string
}

// Categories is the fixed set editors can assign to gallery and product
// items. Items may also carry no category at all.
var Categories = []string{"Uygulama", "Üretim", "Çizim", "Tasarım"}

// CategoryAll is the filter token that selects every item.
const CategoryAll = "all"
