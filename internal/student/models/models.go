package models

import (
	"time"

	collegemodels "uniguide/internal/college/models"
	"uniguide/internal/storage/docmap"
)

// Canonical application statuses. Status stays a free-form label in the
// store; these are the values the progress mapping knows about.
const (
	StatusExploring = "Exploring"
	StatusApplying  = "Applying"
	StatusSubmitted = "Submitted"
	StatusAccepted  = "Accepted"
)

// Student is the typed form of a student document. The legacy
// applicationStatus alias and the assorted timestamp encodings are collapsed
// by Normalize at the store boundary; nothing downstream sees them.
type Student struct {
	ID              string     `json:"id" firestore:"-"`
	Name            string     `json:"name" firestore:"name"`
	Email           string     `json:"email" firestore:"email"`
	Phone           string     `json:"phone" firestore:"phone"`
	Status          string     `json:"status" firestore:"status"`
	SchoolYear      string     `json:"schoolYear,omitempty" firestore:"schoolYear,omitempty"`
	Grade           string     `json:"grade,omitempty" firestore:"grade,omitempty"`
	GPA             string     `json:"gpa,omitempty" firestore:"gpa,omitempty"`
	ACTScore        string     `json:"actScore,omitempty" firestore:"actScore,omitempty"`
	SATEnglish      string     `json:"satEnglish,omitempty" firestore:"satEnglish,omitempty"`
	SATMath         string     `json:"satMath,omitempty" firestore:"satMath,omitempty"`
	Country         string     `json:"country,omitempty" firestore:"country,omitempty"`
	ProfilePicURL   string     `json:"profilePicUrl,omitempty" firestore:"profilePicUrl,omitempty"`
	ResumeURL       string     `json:"resumeUrl,omitempty" firestore:"resumeUrl,omitempty"`
	PreferredMajors []string   `json:"preferredMajors,omitempty" firestore:"preferredMajors,omitempty"`
	PreferredStates []string   `json:"preferredStates,omitempty" firestore:"preferredStates,omitempty"`
	ClassSizePrefs  []string   `json:"classSizePrefs,omitempty" firestore:"classSizePrefs,omitempty"`
	TuitionBudget   string     `json:"tuitionBudget,omitempty" firestore:"tuitionBudget,omitempty"`
	Intent          string     `json:"intent,omitempty" firestore:"intent,omitempty"`
	HighIntent      bool       `json:"highIntent,omitempty" firestore:"highIntent,omitempty"`
	NeedsEssayHelp  bool       `json:"needsEssayHelp,omitempty" firestore:"needsEssayHelp,omitempty"`
	LastActive      *time.Time `json:"lastActive,omitempty" firestore:"lastActive,omitempty"`

	// LastContactAt is derived during stale-contact evaluation; it is never
	// written back to the store.
	LastContactAt *time.Time `json:"lastContactAt,omitempty" firestore:"-"`
}

// CollegeInterest is the denormalized copy of a college kept under a
// student, plus the back-reference to the source document. Copies may drift
// from the source; no referential integrity is enforced.
type CollegeInterest struct {
	collegemodels.College
	CollegeID string `json:"collegeId,omitempty" firestore:"collegeId,omitempty"`
}

// Essay tracks one application essay.
type Essay struct {
	ID          string     `json:"id" firestore:"-"`
	Prompt      string     `json:"prompt" firestore:"prompt"`
	Text        string     `json:"text" firestore:"text"`
	Status      string     `json:"status" firestore:"status"`
	LastUpdated *time.Time `json:"lastUpdated,omitempty" firestore:"lastUpdated,omitempty"`
}

// Activity is an extracurricular entry. Free-text fields use "-" as the
// unset sentinel, matching the data already in the store.
type Activity struct {
	ID             string `json:"id" firestore:"-"`
	Name           string `json:"name" firestore:"name"`
	Category       string `json:"category" firestore:"category"`
	Description    string `json:"description" firestore:"description"`
	LeadershipRole string `json:"leadershipRole" firestore:"leadershipRole"`
	TimeSpent      string `json:"timeSpent" firestore:"timeSpent"`
	Awards         string `json:"awards" firestore:"awards"`
}

// Interaction is one event in the append-only activity timeline.
type Interaction struct {
	ID     string     `json:"id" firestore:"-"`
	Type   string     `json:"type" firestore:"type"`
	Detail string     `json:"detail" firestore:"detail"`
	Date   *time.Time `json:"date,omitempty" firestore:"date,omitempty"`
}

// Communication is a logged outreach touchpoint.
type Communication struct {
	ID      string     `json:"id" firestore:"-"`
	Type    string     `json:"type" firestore:"type"`
	Content string     `json:"content" firestore:"content"`
	Date    *time.Time `json:"date,omitempty" firestore:"date,omitempty"`
}

// Note is an advisor note on a student.
type Note struct {
	ID      string     `json:"id" firestore:"-"`
	Author  string     `json:"author" firestore:"author"`
	Content string     `json:"content" firestore:"content"`
	Date    *time.Time `json:"date,omitempty" firestore:"date,omitempty"`
}

// Detail is a student plus every subcollection, as served by the detail
// endpoint.
type Detail struct {
	Student
	Colleges       []CollegeInterest `json:"colleges"`
	Essays         []Essay           `json:"essays"`
	Activities     []Activity        `json:"activities"`
	Interactions   []Interaction     `json:"interactions"`
	Communications []Communication   `json:"communications"`
	Notes          []Note            `json:"notes"`
}

// Normalize builds a typed Student from a raw store document, collapsing the
// status and intent aliases into their canonical fields.
func Normalize(id string, data map[string]any) Student {
	status := docmap.Str(data, "status")
	if status == "" {
		status = docmap.Str(data, "applicationStatus")
	}
	if status == "" {
		status = StatusExploring
	}
	intent := docmap.Str(data, "intent")
	if intent == "" {
		intent = docmap.Str(data, "intentLevel")
	}

	return Student{
		ID:              id,
		Name:            docmap.Str(data, "name"),
		Email:           docmap.Str(data, "email"),
		Phone:           docmap.Str(data, "phone"),
		Status:          status,
		SchoolYear:      docmap.Str(data, "schoolYear"),
		Grade:           docmap.Str(data, "grade"),
		GPA:             docmap.Str(data, "gpa"),
		ACTScore:        docmap.Str(data, "actScore"),
		SATEnglish:      docmap.Str(data, "satEnglish"),
		SATMath:         docmap.Str(data, "satMath"),
		Country:         docmap.Str(data, "country"),
		ProfilePicURL:   docmap.Str(data, "profilePicUrl"),
		ResumeURL:       docmap.Str(data, "resumeUrl"),
		PreferredMajors: docmap.StrSlice(data, "preferredMajors"),
		PreferredStates: docmap.StrSlice(data, "preferredStates"),
		ClassSizePrefs:  docmap.StrSlice(data, "classSizePrefs"),
		TuitionBudget:   docmap.Str(data, "tuitionBudget"),
		Intent:          intent,
		HighIntent:      docmap.Bool(data, "highIntent"),
		NeedsEssayHelp:  docmap.Bool(data, "needsEssayHelp"),
		LastActive:      docmap.TimeField(data, "lastActive"),
	}
}

// NormalizeEssay builds a typed Essay from a raw subcollection document.
func NormalizeEssay(id string, data map[string]any) Essay {
	return Essay{
		ID:          id,
		Prompt:      docmap.Str(data, "prompt"),
		Text:        docmap.Str(data, "text"),
		Status:      docmap.Str(data, "status"),
		LastUpdated: docmap.TimeField(data, "lastUpdated"),
	}
}

// NormalizeActivity builds a typed Activity from a raw subcollection document.
func NormalizeActivity(id string, data map[string]any) Activity {
	return Activity{
		ID:             id,
		Name:           docmap.Str(data, "name"),
		Category:       docmap.Str(data, "category"),
		Description:    docmap.Str(data, "description"),
		LeadershipRole: docmap.Str(data, "leadershipRole"),
		TimeSpent:      docmap.Str(data, "timeSpent"),
		Awards:         docmap.Str(data, "awards"),
	}
}

// NormalizeInteraction builds a typed Interaction from a raw document.
func NormalizeInteraction(id string, data map[string]any) Interaction {
	return Interaction{
		ID:     id,
		Type:   docmap.Str(data, "type"),
		Detail: docmap.Str(data, "detail"),
		Date:   docmap.TimeField(data, "date"),
	}
}

// NormalizeCommunication builds a typed Communication from a raw document.
func NormalizeCommunication(id string, data map[string]any) Communication {
	return Communication{
		ID:      id,
		Type:    docmap.Str(data, "type"),
		Content: docmap.Str(data, "content"),
		Date:    docmap.TimeField(data, "date"),
	}
}

// NormalizeNote builds a typed Note from a raw document.
func NormalizeNote(id string, data map[string]any) Note {
	return Note{
		ID:      id,
		Author:  docmap.Str(data, "author"),
		Content: docmap.Str(data, "content"),
		Date:    docmap.TimeField(data, "date"),
	}
}

// NormalizeCollegeInterest builds a typed CollegeInterest from a raw
// subcollection document.
func NormalizeCollegeInterest(id string, data map[string]any) CollegeInterest {
	return CollegeInterest{
		College:   collegemodels.Normalize(id, data),
		CollegeID: docmap.Str(data, "collegeId"),
	}
}
