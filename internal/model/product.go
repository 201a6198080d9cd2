package model

const (
	ProductStatusActive   = "active"
	ProductStatusArchived = "archived"
)

// ProductData mirrors one locale's product JSON file. Each locale's file is
// self-contained, no cross-locale merge is performed for products.
type ProductData struct {
	ID           string   `json:"id"`
	Slug         string   `json:"slug"`
	Name         string   `json:"name"`
	Description  string   `json:"description"`
	Features     []string `json:"features"`
	Technologies []string `json:"technologies"`
	Screenshots  []string `json:"screenshots"`
	DemoURL      string   `json:"demoUrl,omitempty"`
	GithubURL    string   `json:"githubUrl,omitempty"`
	Status       string   `json:"status"`
	CreatedAt    string   `json:"createdAt"`
	RelatedPosts []string `json:"relatedPosts,omitempty"`
}
