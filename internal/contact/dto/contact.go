package dto

type ContactRequest struct {
	FirstName   string   `json:"first_name" binding:"required"`
	LastName    string   `json:"last_name" binding:"required"`
	Email       string   `json:"email"`
	Phone       string   `json:"phone"`
	Company     string   `json:"company"`
	Position    string   `json:"position"`
	LinkedInURL string   `json:"linkedin_url"`
	TagIDs      []string `json:"tag_ids"`
}

type TagRequest struct {
	Name  string `json:"name" binding:"required"`
	Color string `json:"color"`
}
