package models

import (
	"uniguide/internal/storage/docmap"
)

// College is the typed form of a top-level college document. Tuition and
// acceptance rate default to 0 when absent or non-numeric; all arithmetic in
// the query and summary engines relies on that.
type College struct {
	ID                   string            `json:"id" firestore:"-"`
	Name                 string            `json:"name" firestore:"name"`
	City                 string            `json:"city" firestore:"city"`
	State                string            `json:"state" firestore:"state"`
	Overview             string            `json:"overview,omitempty" firestore:"overview,omitempty"`
	LogoURL              string            `json:"logoUrl,omitempty" firestore:"logoUrl,omitempty"`
	Tuition              int               `json:"tuition" firestore:"tuition"`
	AcceptanceRate       int               `json:"acceptanceRate" firestore:"acceptanceRate"`
	AppFee               int               `json:"appFee" firestore:"appFee"`
	ApplicationDeadlines map[string]string `json:"applicationDeadlines,omitempty" firestore:"applicationDeadlines,omitempty"`
	TotalEnrollment      int               `json:"totalEnrollment" firestore:"totalEnrollment"`
	MedianSalary6Yr      int               `json:"medianSalary6Yr" firestore:"medianSalary6Yr"`
	Type                 string            `json:"type" firestore:"type"`
	Majors               []string          `json:"majors,omitempty" firestore:"majors,omitempty"`
	Demographics         *Demographics     `json:"demographics,omitempty" firestore:"demographics,omitempty"`
	AfterCollege         *AfterCollege     `json:"afterCollege,omitempty" firestore:"afterCollege,omitempty"`
	Contact              *Contact          `json:"contact,omitempty" firestore:"contact,omitempty"`
}

// Demographics is the nested gender/ethnic percentage breakdown.
type Demographics struct {
	Gender map[string]float64 `json:"gender,omitempty" firestore:"gender,omitempty"`
	Ethnic map[string]float64 `json:"ethnic,omitempty" firestore:"ethnic,omitempty"`
}

// AfterCollege holds post-graduation outcomes.
type AfterCollege struct {
	GradRate4Yr float64 `json:"gradRate4yr" firestore:"gradRate4yr"`
	AvgDebt     float64 `json:"avgDebt" firestore:"avgDebt"`
}

// Contact holds admissions contact details.
type Contact struct {
	Website string `json:"website,omitempty" firestore:"website,omitempty"`
	Email   string `json:"email,omitempty" firestore:"email,omitempty"`
	Phone   string `json:"phone,omitempty" firestore:"phone,omitempty"`
}

// Normalize builds a typed College from a raw store document.
func Normalize(id string, data map[string]any) College {
	c := College{
		ID:                   id,
		Name:                 docmap.Str(data, "name"),
		City:                 docmap.Str(data, "city"),
		State:                docmap.Str(data, "state"),
		Overview:             docmap.Str(data, "overview"),
		LogoURL:              docmap.Str(data, "logoUrl"),
		Tuition:              docmap.Int(data, "tuition"),
		AcceptanceRate:       docmap.Int(data, "acceptanceRate"),
		AppFee:               docmap.Int(data, "appFee"),
		ApplicationDeadlines: docmap.StrMap(data, "applicationDeadlines"),
		TotalEnrollment:      docmap.Int(data, "totalEnrollment"),
		MedianSalary6Yr:      docmap.Int(data, "medianSalary6Yr"),
		Type:                 docmap.Str(data, "type"),
		Majors:               docmap.StrSlice(data, "majors"),
	}

	if demo := docmap.Sub(data, "demographics"); demo != nil {
		c.Demographics = &Demographics{
			Gender: docmap.FloatMap(demo, "gender"),
			Ethnic: docmap.FloatMap(demo, "ethnic"),
		}
	}
	if after := docmap.Sub(data, "afterCollege"); after != nil {
		c.AfterCollege = &AfterCollege{
			GradRate4Yr: docmap.Float(after, "gradRate4yr"),
			AvgDebt:     docmap.Float(after, "avgDebt"),
		}
	}
	if contact := docmap.Sub(data, "contact"); contact != nil {
		c.Contact = &Contact{
			Website: docmap.Str(contact, "website"),
			Email:   docmap.Str(contact, "email"),
			Phone:   docmap.Str(contact, "phone"),
		}
	}
	return c
}
