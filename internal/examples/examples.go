// Package examples serves the bundled sample resumes shown on the landing
// page. Samples are compiled into the binary and immutable at runtime.
package examples

import (
	_ "embed"
	"fmt"

	"gopkg.in/yaml.v3"

	"resume-builder-backend/internal/resume"
)

//go:embed samples.yaml
var samplesYAML []byte

// Sample is one bundled example resume.
type Sample struct {
	ID       string
	Title    string
	Document resume.Document
}

type sampleYAML struct {
	ID           string `yaml:"id"`
	Title        string `yaml:"title"`
	Template     string `yaml:"template"`
	PersonalInfo struct {
		FullName string `yaml:"fullName"`
		Email    string `yaml:"email"`
		Phone    string `yaml:"phone"`
		Location string `yaml:"location"`
		Title    string `yaml:"title"`
		Summary  string `yaml:"summary"`
	} `yaml:"personalInfo"`
	Experiences []struct {
		Company     string `yaml:"company"`
		Position    string `yaml:"position"`
		StartDate   string `yaml:"startDate"`
		EndDate     string `yaml:"endDate"`
		Current     bool   `yaml:"current"`
		Description string `yaml:"description"`
	} `yaml:"experiences"`
	Education []struct {
		School    string `yaml:"school"`
		Degree    string `yaml:"degree"`
		Field     string `yaml:"field"`
		StartDate string `yaml:"startDate"`
		EndDate   string `yaml:"endDate"`
	} `yaml:"education"`
	Skills []string `yaml:"skills"`
}

// Load parses the embedded samples.
func Load() ([]Sample, error) {
	var raw []sampleYAML
	if err := yaml.Unmarshal(samplesYAML, &raw); err != nil {
		return nil, fmt.Errorf("parse embedded samples: %w", err)
	}

	out := make([]Sample, 0, len(raw))
	for _, s := range raw {
		doc := resume.NewDocument("example:"+s.ID, "")
		doc.Title = s.Title
		doc.Template = resume.ParseTemplateID(s.Template)
		doc.PersonalInfo = resume.PersonalInfo{
			FullName: s.PersonalInfo.FullName,
			Email:    s.PersonalInfo.Email,
			Phone:    s.PersonalInfo.Phone,
			Location: s.PersonalInfo.Location,
			Title:    s.PersonalInfo.Title,
			Summary:  s.PersonalInfo.Summary,
		}
		for _, exp := range s.Experiences {
			entryID := doc.AddExperience()
			doc.UpdateExperience(entryID, resume.ExperienceEntry{
				Company:     exp.Company,
				Position:    exp.Position,
				StartDate:   exp.StartDate,
				EndDate:     exp.EndDate,
				Current:     exp.Current,
				Description: exp.Description,
			})
		}
		for _, edu := range s.Education {
			entryID := doc.AddEducation()
			doc.UpdateEducation(entryID, resume.EducationEntry{
				School:    edu.School,
				Degree:    edu.Degree,
				Field:     edu.Field,
				StartDate: edu.StartDate,
				EndDate:   edu.EndDate,
			})
		}
		for _, skill := range s.Skills {
			doc.AddSkill(skill)
		}
		out = append(out, Sample{ID: s.ID, Title: s.Title, Document: doc})
	}
	return out, nil
}
