package projects_interfaces

import "github.com/google/uuid"

// ProjectDeletionListener lets dependent features clean up their rows
// when a project is deleted. Listeners run in registration order before
// the project row itself is removed.
type ProjectDeletionListener interface {
	OnProjectDeleted(projectID uuid.UUID) error
}
