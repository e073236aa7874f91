package models

// TeamMember is a read-only row shown on the about page.
// Rows are seeded by migrations or edited directly in the database.
type TeamMember struct {
	ID       string `json:"id" gorm:"primaryKey;type:varchar(36)"`
	Name     string `json:"name"`
	Title    string `json:"title"`
	PhotoURL string `json:"photo_url"`
}
