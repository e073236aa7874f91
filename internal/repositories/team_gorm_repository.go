package repositories

import (
	"fmt"

	"panchmev/internal/models"

	"github.com/google/uuid"
	"gorm.io/gorm"
)

// GORMTeamRepository is a GORM implementation of TeamRepository.
type GORMTeamRepository struct {
	db *gorm.DB
}

// NewGORMTeamRepository creates a new instance of GORMTeamRepository.
func NewGORMTeamRepository(db *gorm.DB) *GORMTeamRepository {
	return &GORMTeamRepository{db: db}
}

// GetAll retrieves every team member.
func (r *GORMTeamRepository) GetAll() ([]models.TeamMember, error) {
	var members []models.TeamMember
	if err := r.db.Find(&members).Error; err != nil {
		return nil, fmt.Errorf("failed to get team members: %w", err)
	}
	return members, nil
}

// Create stores a new team member.
func (r *GORMTeamRepository) Create(member *models.TeamMember) error {
	if member.ID == "" {
		member.ID = uuid.New().String()
	}
	if err := r.db.Create(member).Error; err != nil {
		return fmt.Errorf("failed to create team member: %w", err)
	}
	return nil
}
