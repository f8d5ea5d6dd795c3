package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrCreateJobseekerProfileCommandIsNotConstructed = errors.New(
	"CreateJobseekerProfileCommand must be created via NewCreateJobseekerProfileCommand constructor",
)

// CreateJobseekerProfileCommand represents a request to create a jobseeker
// profile for an existing account.
type CreateJobseekerProfileCommand struct { //nolint:recvcheck //using for validation
	jobseekerID kernel.UUID
	appUserID   kernel.UUID
	profession  string
	experience  float64
	education   jobseeker.Degree
	location    string
	biography   jobseeker.Biography

	guard guard.ConstructorGuard
}

// NewCreateJobseekerProfileCommand creates a command to register a jobseeker profile.
func NewCreateJobseekerProfileCommand(
	jobseekerID kernel.UUID,
	appUserID kernel.UUID,
	profession string,
	experience float64,
	education jobseeker.Degree,
	location string,
	biography jobseeker.Biography,
) (CreateJobseekerProfileCommand, error) {
	cmd := CreateJobseekerProfileCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobseekerID(jobseekerID),
		cmd.setAppUserID(appUserID),
		cmd.setProfession(profession),
		cmd.setExperience(experience),
		cmd.setEducation(education),
		cmd.setLocation(location),
	); err != nil {
		return CreateJobseekerProfileCommand{}, err
	}

	cmd.biography = biography
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c CreateJobseekerProfileCommand) Validate() error {
	return c.guard.Validate(ErrCreateJobseekerProfileCommandIsNotConstructed)
}

// JobseekerID returns the identifier for the new profile.
func (c CreateJobseekerProfileCommand) JobseekerID() kernel.UUID {
	return c.jobseekerID
}

// AppUserID returns the identifier of the owning account.
func (c CreateJobseekerProfileCommand) AppUserID() kernel.UUID {
	return c.appUserID
}

// Profession returns the declared profession.
func (c CreateJobseekerProfileCommand) Profession() string {
	return c.profession
}

// Experience returns the declared years of experience.
func (c CreateJobseekerProfileCommand) Experience() float64 {
	return c.experience
}

// Education returns the declared education degree.
func (c CreateJobseekerProfileCommand) Education() jobseeker.Degree {
	return c.education
}

// Location returns the declared location.
func (c CreateJobseekerProfileCommand) Location() string {
	return c.location
}

// Biography returns the free-form descriptive fields.
func (c CreateJobseekerProfileCommand) Biography() jobseeker.Biography {
	return c.biography
}

func (c *CreateJobseekerProfileCommand) setJobseekerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobseekerID = id
	return nil
}

func (c *CreateJobseekerProfileCommand) setAppUserID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.appUserID = id
	return nil
}

func (c *CreateJobseekerProfileCommand) setProfession(profession string) error {
	if profession == "" {
		return jobseeker.ErrProfessionIsRequired
	}

	c.profession = profession
	return nil
}

func (c *CreateJobseekerProfileCommand) setExperience(experience float64) error {
	if experience < jobseeker.ExperienceMin || experience > jobseeker.ExperienceMax {
		return errs.NewValueIsOutOfRangeError(
			"experience", experience, jobseeker.ExperienceMin, jobseeker.ExperienceMax,
		)
	}

	c.experience = experience
	return nil
}

func (c *CreateJobseekerProfileCommand) setEducation(education jobseeker.Degree) error {
	if err := education.Validate(); err != nil {
		return err
	}

	c.education = education
	return nil
}

func (c *CreateJobseekerProfileCommand) setLocation(location string) error {
	if location == "" {
		return jobseeker.ErrLocationIsRequired
	}

	c.location = location
	return nil
}
