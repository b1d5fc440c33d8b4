package clientRepo

import "wavehouse/models"

// ClientRepository defines methods for client data access.
type ClientRepository interface {
	GetByID(id string) (*models.Client, error)
	// GetByEmail matches the lowercased email.
	GetByEmail(email string) (*models.Client, error)
	Create(c *models.Client) error
	Update(c *models.Client) error
	// List returns all clients, most recently updated first.
	List() ([]models.Client, error)
}
