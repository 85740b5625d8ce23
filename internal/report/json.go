package report

import (
	"encoding/json"
	"io"

	"github.com/rota-app/classcfg"
)

// JSONTargets is the export schema of the scan command
type JSONTargets struct {
	Version string             `json:"version"`
	Content []string           `json:"content"`
	Targets []string           `json:"targets"`
	Stats   classcfg.ScanStats `json:"stats"`
}

// JSONClasses is the export schema of the classes command
type JSONClasses struct {
	Version      string                `json:"version"`
	FilesScanned int                   `json:"files_scanned"`
	Classes      []classcfg.ClassUsage `json:"classes"`
	Warnings     []string              `json:"warnings"`
}

// JSONProblems is the export schema of the validate command
type JSONProblems struct {
	Version  string             `json:"version"`
	Config   string             `json:"config"`
	Valid    bool               `json:"valid"`
	Problems []classcfg.Problem `json:"problems"`
}

const schemaVersion = "1.0"

func writeJSON(w io.Writer, v any) error {
	encoder := json.NewEncoder(w)
	encoder.SetIndent("", "  ")
	return encoder.Encode(v)
}

func buildTargetsJSON(cfg classcfg.Config, targets []string, stats classcfg.ScanStats) JSONTargets {
	return JSONTargets{
		Version: schemaVersion,
		Content: nonNil(cfg.Content),
		Targets: nonNil(targets),
		Stats:   stats,
	}
}

func buildClassesJSON(set classcfg.ClassSet) JSONClasses {
	classes := set.Classes
	if classes == nil {
		classes = []classcfg.ClassUsage{}
	}
	return JSONClasses{
		Version:      schemaVersion,
		FilesScanned: set.FilesScanned,
		Classes:      classes,
		Warnings:     nonNil(set.Warnings),
	}
}

func buildProblemsJSON(path string, problems []classcfg.Problem) JSONProblems {
	if problems == nil {
		problems = []classcfg.Problem{}
	}
	return JSONProblems{
		Version:  schemaVersion,
		Config:   path,
		Valid:    len(problems) == 0,
		Problems: problems,
	}
}

// nonNil keeps empty lists as [] instead of null in exports.
func nonNil(s []string) []string {
	if s == nil {
		return []string{}
	}
	return s
}
