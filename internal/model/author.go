package model

// AuthorData mirrors one locale's author JSON file. Posts reference authors
// by slug via frontmatter.author, products via the Projects slug list.
type AuthorData struct {
	ID       string            `json:"id"`
	Slug     string            `json:"slug"`
	Name     string            `json:"name"`
	Avatar   string            `json:"avatar"`
	Bio      string            `json:"bio"`
	Role     string            `json:"role"`
	Skills   []string          `json:"skills"`
	Social   map[string]string `json:"social"`
	JoinedAt string            `json:"joinedAt"`
	IsActive bool              `json:"isActive"`
	Projects []string          `json:"projects"`
}
