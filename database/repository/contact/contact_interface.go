package contactRepo

import "wavehouse/models"

// ContactRepository stores contact form messages.
type ContactRepository interface {
	Create(m *models.ContactMessage) error
	// List returns messages newest first.
	List() ([]models.ContactMessage, error)
}
