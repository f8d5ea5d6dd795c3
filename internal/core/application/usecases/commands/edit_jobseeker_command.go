package commands

import (
	"errors"

	"jobboard/internal/core/domain/model/jobseeker"
	"jobboard/internal/core/domain/model/kernel"
	"jobboard/internal/pkg/errs"
	"jobboard/internal/pkg/guard"
)

var ErrEditJobseekerCommandIsNotConstructed = errors.New(
	"EditJobseekerCommand must be created via NewEditJobseekerCommand constructor",
)

// EditJobseekerCommand represents a request to update a jobseeker profile.
type EditJobseekerCommand struct { //nolint:recvcheck //using for validation
	jobseekerID kernel.UUID
	profession  string
	experience  float64
	education   jobseeker.Degree
	location    string
	biography   jobseeker.Biography
	isEmployed  bool

	guard guard.ConstructorGuard
}

// NewEditJobseekerCommand creates a command to update a jobseeker profile.
func NewEditJobseekerCommand(
	jobseekerID kernel.UUID,
	profession string,
	experience float64,
	education jobseeker.Degree,
	location string,
	biography jobseeker.Biography,
	isEmployed bool,
) (EditJobseekerCommand, error) {
	cmd := EditJobseekerCommand{
		guard: guard.NewConstructorGuard(),
	}

	if err := errors.Join(
		cmd.setJobseekerID(jobseekerID),
		cmd.setProfession(profession),
		cmd.setExperience(experience),
		cmd.setEducation(education),
		cmd.setLocation(location),
	); err != nil {
		return EditJobseekerCommand{}, err
	}

	cmd.biography = biography
	cmd.isEmployed = isEmployed
	return cmd, nil
}

// Validate ensures the command was created through the constructor.
func (c EditJobseekerCommand) Validate() error {
	return c.guard.Validate(ErrEditJobseekerCommandIsNotConstructed)
}

// JobseekerID returns the identifier of the profile to update.
func (c EditJobseekerCommand) JobseekerID() kernel.UUID {
	return c.jobseekerID
}

// Profession returns the new profession.
func (c EditJobseekerCommand) Profession() string {
	return c.profession
}

// Experience returns the new years of experience.
func (c EditJobseekerCommand) Experience() float64 {
	return c.experience
}

// Education returns the new education degree.
func (c EditJobseekerCommand) Education() jobseeker.Degree {
	return c.education
}

// Location returns the new location.
func (c EditJobseekerCommand) Location() string {
	return c.location
}

// Biography returns the new free-form descriptive fields.
func (c EditJobseekerCommand) Biography() jobseeker.Biography {
	return c.biography
}

// IsEmployed returns the new employment flag.
func (c EditJobseekerCommand) IsEmployed() bool {
	return c.isEmployed
}

func (c *EditJobseekerCommand) setJobseekerID(id kernel.UUID) error {
	if err := id.Validate(); err != nil {
		return err
	}

	c.jobseekerID = id
	return nil
}

func (c *EditJobseekerCommand) setProfession(profession string) error {
	if profession == "" {
		return jobseeker.ErrProfessionIsRequired
	}

	c.profession = profession
	return nil
}

func (c *EditJobseekerCommand) setExperience(experience float64) error {
	if experience < jobseeker.ExperienceMin || experience > jobseeker.ExperienceMax {
		return errs.NewValueIsOutOfRangeError(
			"experience", experience, jobseeker.ExperienceMin, jobseeker.ExperienceMax,
		)
	}

	c.experience = experience
	return nil
}

func (c *EditJobseekerCommand) setEducation(education jobseeker.Degree) error {
	if err := education.Validate(); err != nil {
		return err
	}

	c.education = education
	return nil
}

func (c *EditJobseekerCommand) setLocation(location string) error {
	if location == "" {
		return jobseeker.ErrLocationIsRequired
	}

	c.location = location
	return nil
}
