package catalog

import (
	"errors"
	"log"
	"os"

	"gopkg.in/yaml.v3"

	"placement-engine/internal/domain"
)

type file struct {
	Jobs []domain.Job `yaml:"jobs"`
}

// Load reads the read-only job catalog from a YAML file and normalizes each
// record. A missing file is not fatal: the engine serves an empty catalog.
// Records with blank or duplicate ids are dropped with a log line.
func Load(path string) ([]domain.Job, error) {
	b, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			log.Printf("[catalog] %s not found, starting with empty catalog", path)
			return []domain.Job{}, nil
		}
		return nil, err
	}

	var f file
	if err := yaml.Unmarshal(b, &f); err != nil {
		return nil, err
	}

	seen := make(map[string]bool, len(f.Jobs))
	out := make([]domain.Job, 0, len(f.Jobs))
	for _, j := range f.Jobs {
		if j.ID == "" {
			log.Printf("[catalog] dropping job with empty id (title=%q)", j.Title)
			continue
		}
		if seen[j.ID] {
			log.Printf("[catalog] dropping duplicate id %s", j.ID)
			continue
		}
		seen[j.ID] = true
		out = append(out, Normalize(j))
	}
	return out, nil
}

// Normalize cleans a raw catalog record: whitespace collapsed, HTML stripped
// from the description, work mode mapped onto Remote/Hybrid/Onsite.
func Normalize(j domain.Job) domain.Job {
	j.Title = CleanText(j.Title)
	j.Company = CleanText(j.Company)
	j.Location = CleanText(j.Location)
	j.Description = CleanText(StripHTML(j.Description))
	j.Mode = NormalizeMode(j.Mode)
	for i, s := range j.Skills {
		j.Skills[i] = CleanText(s)
	}
	return j
}
