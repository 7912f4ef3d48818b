package applications

import (
	"fmt"
	"strings"
	"time"

	"github.com/google/uuid"

	projects_services "cofoundry/internal/features/projects/services"
	users_dto "cofoundry/internal/features/users/dto"
	users_interfaces "cofoundry/internal/features/users/interfaces"
	users_models "cofoundry/internal/features/users/models"
	users_services "cofoundry/internal/features/users/services"
	"cofoundry/internal/util/apperrors"
	"cofoundry/internal/util/logger"
)

type ApplicationService struct {
	applicationRepository *ApplicationRepository
	projectService        *projects_services.ProjectService
	memberService         *projects_services.MemberService
	profileService        *users_services.ProfileService
	activityWriter        users_interfaces.ActivityWriter
}

func (s *ApplicationService) SetActivityWriter(writer users_interfaces.ActivityWriter) {
	s.activityWriter = writer
}

// Submit creates a pending application. A prior application from the
// same user to the same project does not block a new one.
func (s *ApplicationService) Submit(
	projectID uuid.UUID,
	request *SubmitApplicationRequestDTO,
	actor *users_models.User,
) (*ApplicationResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	introduction := strings.TrimSpace(request.Introduction)
	experience := strings.TrimSpace(request.Experience)
	motivation := strings.TrimSpace(request.Motivation)

	if introduction == "" || experience == "" || motivation == "" {
		return nil, fmt.Errorf("%w: all three answers are required", apperrors.ErrValidation)
	}

	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.CreatorID == actor.ID {
		return nil, fmt.Errorf("%w: the creator cannot apply to their own project", apperrors.ErrValidation)
	}

	application := &ProjectApplication{
		ID:           uuid.New(),
		ProjectID:    projectID,
		ApplicantID:  actor.ID,
		Status:       ApplicationStatusPending,
		Introduction: introduction,
		Experience:   experience,
		Motivation:   motivation,
		CreatedAt:    time.Now().UTC(),
		UpdatedAt:    time.Now().UTC(),
	}

	if err := s.applicationRepository.CreateApplication(application); err != nil {
		return nil, fmt.Errorf("failed to submit application: %w", err)
	}

	if s.activityWriter != nil {
		s.activityWriter.WriteActivity(
			fmt.Sprintf("Applied to project: %s", project.Title),
			&actor.ID,
			&projectID,
		)
	}

	response := s.toApplicationResponse(application, users_dto.IdentityDTO{})
	return &response, nil
}

// ListForProject returns the project's applications newest first, with
// applicant identities resolved in bulk. Only the creator may call it.
func (s *ApplicationService) ListForProject(
	projectID uuid.UUID,
	actor *users_models.User,
) ([]ApplicationResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	project, err := s.projectService.GetProject(projectID)
	if err != nil {
		return nil, err
	}

	if project.CreatorID != actor.ID {
		return nil, fmt.Errorf("%w: only the project creator can view applications", apperrors.ErrForbidden)
	}

	applications, err := s.applicationRepository.ListApplicationsByProject(projectID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	applicantIDs := make([]uuid.UUID, 0, len(applications))
	for _, application := range applications {
		applicantIDs = append(applicantIDs, application.ApplicantID)
	}

	// Identity resolution is best effort; a failed lookup degrades the
	// list to bare applications instead of failing it.
	identities, err := s.profileService.ResolveIdentities(applicantIDs)
	if err != nil {
		logger.GetLogger().Warn("applicant identity resolution failed", "projectId", projectID, "error", err)
		identities = map[uuid.UUID]users_dto.IdentityDTO{}
	}

	result := make([]ApplicationResponseDTO, 0, len(applications))
	for i := range applications {
		result = append(result, s.toApplicationResponse(&applications[i], identities[applications[i].ApplicantID]))
	}

	return result, nil
}

// ListForApplicant returns every application the actor has submitted,
// each carrying a summary of its target project.
func (s *ApplicationService) ListForApplicant(actor *users_models.User) ([]ApplicantApplicationDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	applications, err := s.applicationRepository.ListApplicationsByApplicant(actor.ID)
	if err != nil {
		return nil, fmt.Errorf("failed to list applications: %w", err)
	}

	projectIDs := make([]uuid.UUID, 0, len(applications))
	for _, application := range applications {
		projectIDs = append(projectIDs, application.ProjectID)
	}

	projects, err := s.projectService.GetProjectsByIDs(projectIDs)
	if err != nil {
		return nil, err
	}

	result := make([]ApplicantApplicationDTO, 0, len(applications))
	for _, application := range applications {
		row := ApplicantApplicationDTO{
			ID:        application.ID,
			ProjectID: application.ProjectID,
			Status:    application.Status,
			CreatedAt: application.CreatedAt,
			UpdatedAt: application.UpdatedAt,
		}
		if project, ok := projects[application.ProjectID]; ok {
			row.ProjectTitle = project.Title
			row.ProjectDescription = project.Description
			row.ProjectCategory = project.Category
			row.ProjectStage = project.Stage
		}
		result = append(result, row)
	}

	return result, nil
}

// Decide moves a pending application to approved or rejected. Approval
// additionally inserts the membership row as a second write; a failure
// there leaves the application approved without a membership, surfaced
// to the caller rather than rolled back.
func (s *ApplicationService) Decide(
	applicationID uuid.UUID,
	decision ApplicationStatus,
	actor *users_models.User,
) (*DecisionResponseDTO, error) {
	if actor == nil {
		return nil, apperrors.ErrUnauthenticated
	}

	if !decision.IsValidDecision() {
		return nil, fmt.Errorf("%w: decision must be approved or rejected", apperrors.ErrValidation)
	}

	application, err := s.applicationRepository.GetApplicationByID(applicationID)
	if err != nil {
		return nil, err
	}

	project, err := s.projectService.GetProject(application.ProjectID)
	if err != nil {
		return nil, err
	}

	if project.CreatorID != actor.ID {
		return nil, fmt.Errorf("%w: only the project creator can decide applications", apperrors.ErrForbidden)
	}

	if application.Status != ApplicationStatusPending {
		return nil, fmt.Errorf(
			"%w: application is already %s", apperrors.ErrInvalidState, application.Status,
		)
	}

	if err := s.applicationRepository.UpdateApplicationStatus(applicationID, decision); err != nil {
		return nil, fmt.Errorf("failed to update application: %w", err)
	}

	application.Status = decision
	application.UpdatedAt = time.Now().UTC()

	message := "application rejected"
	if decision == ApplicationStatusApproved {
		if err := s.memberService.AddApprovedApplicant(application.ProjectID, application.ApplicantID); err != nil {
			return nil, fmt.Errorf("application approved but membership creation failed: %w", err)
		}
		message = "approved and added to team"
	}

	if s.activityWriter != nil {
		s.activityWriter.WriteActivity(
			fmt.Sprintf("Application %s for project: %s", decision, project.Title),
			&actor.ID,
			&project.ID,
		)
	}

	identity, err := s.profileService.ResolveIdentity(application.ApplicantID)
	if err != nil {
		identity = users_dto.IdentityDTO{}
	}

	return &DecisionResponseDTO{
		Application: s.toApplicationResponse(application, identity),
		Message:     message,
	}, nil
}

// GetStatusesByApplicant builds the per-project status map used by the
// project listing join. With repeat applications the latest submission
// wins because rows arrive newest first.
func (s *ApplicationService) GetStatusesByApplicant(userID uuid.UUID) (map[uuid.UUID]string, error) {
	applications, err := s.applicationRepository.ListApplicationsByApplicant(userID)
	if err != nil {
		return nil, err
	}

	statuses := make(map[uuid.UUID]string, len(applications))
	for _, application := range applications {
		if _, seen := statuses[application.ProjectID]; !seen {
			statuses[application.ProjectID] = string(application.Status)
		}
	}

	return statuses, nil
}

// OnProjectDeleted removes the project's applications during cascade
// deletion.
func (s *ApplicationService) OnProjectDeleted(projectID uuid.UUID) error {
	return s.applicationRepository.DeleteApplicationsForProject(projectID)
}

func (s *ApplicationService) toApplicationResponse(
	application *ProjectApplication,
	identity users_dto.IdentityDTO,
) ApplicationResponseDTO {
	return ApplicationResponseDTO{
		ID:           application.ID,
		ProjectID:    application.ProjectID,
		ApplicantID:  application.ApplicantID,
		Status:       application.Status,
		Introduction: application.Introduction,
		Experience:   application.Experience,
		Motivation:   application.Motivation,
		CreatedAt:    application.CreatedAt,
		UpdatedAt:    application.UpdatedAt,
		FirstName:    identity.FirstName,
		LastName:     identity.LastName,
		AvatarURL:    identity.AvatarURL,
	}
}
