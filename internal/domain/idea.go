package domain

import (
	"fmt"
	"time"
)

// IdeaStatus is a step of the short-video production pipeline
type IdeaStatus string

const (
	IdeaStatusIdea      IdeaStatus = "Idea"
	IdeaStatusPlanning  IdeaStatus = "Planning"
	IdeaStatusScripting IdeaStatus = "Scripting"
	IdeaStatusFilming   IdeaStatus = "Filming"
	IdeaStatusEditing   IdeaStatus = "Editing"
	IdeaStatusUploaded  IdeaStatus = "Uploaded"
)

// IdeaPipeline is the ordered status pipeline. Any status may be set at any time.
var IdeaPipeline = []IdeaStatus{
	IdeaStatusIdea,
	IdeaStatusPlanning,
	IdeaStatusScripting,
	IdeaStatusFilming,
	IdeaStatusEditing,
	IdeaStatusUploaded,
}

// IsValid reports whether s is part of the pipeline
func (s IdeaStatus) IsValid() bool {
	for _, st := range IdeaPipeline {
		if st == s {
			return true
		}
	}
	return false
}

// Next returns the following pipeline status; Uploaded stays Uploaded
func (s IdeaStatus) Next() IdeaStatus {
	for i, st := range IdeaPipeline {
		if st == s && i+1 < len(IdeaPipeline) {
			return IdeaPipeline[i+1]
		}
	}
	return IdeaStatusUploaded
}

// ParseIdeaStatus converts user input (case-insensitive) to an IdeaStatus
func ParseIdeaStatus(s string) (IdeaStatus, error) {
	for _, st := range IdeaPipeline {
		if equalFold(string(st), s) {
			return st, nil
		}
	}
	return "", invalidValue(ErrInvalidIdeaStatus, s)
}

// ShortIdea is a short-form video idea
type ShortIdea struct {
	CreatedAt   time.Time             `json:"createdAt" yaml:"createdAt"`
	Description string                `json:"description" yaml:"description"`
	ID          string                `json:"id" yaml:"id"`
	Status      IdeaStatus            `json:"status" yaml:"status"`
	StatusNotes map[IdeaStatus]string `json:"statusNotes,omitempty" yaml:"statusNotes,omitempty"`
	Title       string                `json:"title" yaml:"title"`
}

// GetID implements Identifiable
func (i ShortIdea) GetID() string { return i.ID }

// Note returns the note recorded for status, if any
func (i ShortIdea) Note(status IdeaStatus) string {
	return i.StatusNotes[status]
}

// WithStatusNote returns a copy of the idea with the note for status replaced.
// Notes of every other status are preserved.
func (i ShortIdea) WithStatusNote(status IdeaStatus, text string) ShortIdea {
	notes := make(map[IdeaStatus]string, len(i.StatusNotes)+1)
	for k, v := range i.StatusNotes {
		notes[k] = v
	}
	notes[status] = text
	i.StatusNotes = notes
	return i
}

// Validate checks the invariants a persisted idea must satisfy
func (i ShortIdea) Validate() error {
	if i.ID == "" {
		return fmt.Errorf("idea %q has no id", i.Title)
	}
	if !i.Status.IsValid() {
		return invalidValue(ErrInvalidIdeaStatus, string(i.Status))
	}
	for status := range i.StatusNotes {
		if !status.IsValid() {
			return invalidValue(ErrInvalidIdeaStatus, string(status))
		}
	}
	return nil
}

// IdeaPatch is a partial update of an idea. Nil fields are left untouched.
type IdeaPatch struct {
	Description *string
	Status      *IdeaStatus
	Title       *string
}

// ApplyIdeaPatch returns a copy of idea with the patch shallow-merged in
func ApplyIdeaPatch(idea ShortIdea, p IdeaPatch) ShortIdea {
	if p.Description != nil {
		idea.Description = *p.Description
	}
	if p.Status != nil {
		idea.Status = *p.Status
	}
	if p.Title != nil {
		idea.Title = *p.Title
	}
	return idea
}

// CountByStatus tallies ideas per pipeline status
func CountByStatus(ideas []ShortIdea) map[IdeaStatus]int {
	counts := make(map[IdeaStatus]int, len(IdeaPipeline))
	for _, st := range IdeaPipeline {
		counts[st] = 0
	}
	for _, i := range ideas {
		counts[i.Status]++
	}
	return counts
}
