package repositories

import "panchmev/internal/models"

// TeamRepository defines the interface for team-member data access.
// The about page only ever reads; Create exists for seeding.
type TeamRepository interface {
	GetAll() ([]models.TeamMember, error)
	Create(member *models.TeamMember) error
}
