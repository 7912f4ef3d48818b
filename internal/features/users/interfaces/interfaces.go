package users_interfaces

import "github.com/google/uuid"

// ActivityWriter breaks the import cycle between the users services and
// the activity feature; DI wires the concrete service in at startup.
type ActivityWriter interface {
	WriteActivity(message string, userID *uuid.UUID, projectID *uuid.UUID)
}
