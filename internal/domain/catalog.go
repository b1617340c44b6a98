package domain

type Category struct {
	ID    int64  `json:"id"`
	Name  string `json:"name"`
	Image string `json:"image,omitempty"`
}

type Branch struct {
	ID      int64  `json:"id"`
	Name    string `json:"name"`
	Address string `json:"address,omitempty"`
	Phone   string `json:"phone,omitempty"`
	MapURL  string `json:"map_url,omitempty"`
}

type Slider struct {
	ID    int64  `json:"id"`
	Title string `json:"title,omitempty"`
	Image string `json:"image"`
	Link  string `json:"link,omitempty"`
}

// Settings carries the site settings payload as-is; the storefront injects it
// into the page without interpreting individual fields.
type Settings map[string]interface{}
