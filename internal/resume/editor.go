package resume

import "github.com/google/uuid"

// The editor operations below are the only mutation path for a Document.
// Lists are append-only plus deletion; insertion order is preserved. The
// renderers never mutate a Document.

// AddExperience appends a blank experience entry and returns its id.
func (d *Document) AddExperience() string {
	entry := ExperienceEntry{ID: uuid.NewString()}
	d.Experiences = append(d.Experiences, entry)
	return entry.ID
}

// UpdateExperience replaces the fields of the entry with the given id,
// keeping the id itself. Returns false if no entry matches.
func (d *Document) UpdateExperience(id string, update ExperienceEntry) bool {
	for i := range d.Experiences {
		if d.Experiences[i].ID == id {
			update.ID = id
			d.Experiences[i] = update
			return true
		}
	}
	return false
}

// RemoveExperience deletes the entry with the given id. Remaining entries
// keep their ids and relative order.
func (d *Document) RemoveExperience(id string) bool {
	for i := range d.Experiences {
		if d.Experiences[i].ID == id {
			d.Experiences = append(d.Experiences[:i], d.Experiences[i+1:]...)
			return true
		}
	}
	return false
}

// AddEducation appends a blank education entry and returns its id.
func (d *Document) AddEducation() string {
	entry := EducationEntry{ID: uuid.NewString()}
	d.Education = append(d.Education, entry)
	return entry.ID
}

// UpdateEducation replaces the fields of the entry with the given id.
func (d *Document) UpdateEducation(id string, update EducationEntry) bool {
	for i := range d.Education {
		if d.Education[i].ID == id {
			update.ID = id
			d.Education[i] = update
			return true
		}
	}
	return false
}

// RemoveEducation deletes the entry with the given id.
func (d *Document) RemoveEducation(id string) bool {
	for i := range d.Education {
		if d.Education[i].ID == id {
			d.Education = append(d.Education[:i], d.Education[i+1:]...)
			return true
		}
	}
	return false
}

// AddSkill appends a skill. Duplicates are rejected silently; uniqueness is
// case-sensitive, so "JavaScript" and "javascript" are distinct skills.
func (d *Document) AddSkill(skill string) bool {
	if skill == "" {
		return false
	}
	for _, existing := range d.Skills {
		if existing == skill {
			return false
		}
	}
	d.Skills = append(d.Skills, skill)
	return true
}

// RemoveSkill deletes a skill by exact value.
func (d *Document) RemoveSkill(skill string) bool {
	for i, existing := range d.Skills {
		if existing == skill {
			d.Skills = append(d.Skills[:i], d.Skills[i+1:]...)
			return true
		}
	}
	return false
}
