// Package billing decides which invoice recipient a registration should
// bill: it reuses structurally identical recipients instead of inserting
// duplicates, collapses near-duplicates for selection lists, and hides
// recipients that are really just a course's own participants.
package billing

import (
	"fmt"
	"sort"
	"strconv"
	"strings"

	"github.com/bildungswerk/kursbuero/internal/model"
)

// FieldError reports a missing or invalid recipient field. It is a
// validation failure, not a system error; nothing is written when one
// is returned.
type FieldError struct {
	Field   string
	Message string
}

func (e *FieldError) Error() string {
	return fmt.Sprintf("%s: %s", e.Field, e.Message)
}

// Validate checks the required recipient fields: the address block and
// email for every type, name+surname for PERSON, company name for
// COMPANY.
func Validate(r model.InvoiceRecipient) error {
	required := []struct {
		field string
		value string
	}{
		{"email", r.Email},
		{"street", r.Street},
		{"postal_code", r.PostalCode},
		{"city", r.City},
		{"country", r.Country},
	}
	for _, f := range required {
		if strings.TrimSpace(f.value) == "" {
			return &FieldError{Field: f.field, Message: "is required"}
		}
	}

	switch r.Type {
	case model.RecipientTypePerson:
		if r.Name == nil || strings.TrimSpace(*r.Name) == "" {
			return &FieldError{Field: "name", Message: "is required for a person"}
		}
		if r.Surname == nil || strings.TrimSpace(*r.Surname) == "" {
			return &FieldError{Field: "surname", Message: "is required for a person"}
		}
	case model.RecipientTypeCompany:
		if r.CompanyName == nil || strings.TrimSpace(*r.CompanyName) == "" {
			return &FieldError{Field: "company_name", Message: "is required for a company"}
		}
	default:
		return &FieldError{Field: "type", Message: "must be PERSON or COMPANY"}
	}
	return nil
}

// FindExactMatch returns the first recipient in pool whose fields all
// equal the candidate's, or nil. Equality is field-by-field and
// case-sensitive; callers pass a pool of non-deleted rows.
func FindExactMatch(pool []model.InvoiceRecipient, candidate model.InvoiceRecipient) *model.InvoiceRecipient {
	for i := range pool {
		if equalFields(pool[i], candidate) {
			return &pool[i]
		}
	}
	return nil
}

func equalFields(a, b model.InvoiceRecipient) bool {
	return a.Type == b.Type &&
		strPtrEqual(a.Salutation, b.Salutation) &&
		strPtrEqual(a.Name, b.Name) &&
		strPtrEqual(a.Surname, b.Surname) &&
		strPtrEqual(a.CompanyName, b.CompanyName) &&
		a.Email == b.Email &&
		a.Street == b.Street &&
		a.PostalCode == b.PostalCode &&
		a.City == b.City &&
		a.Country == b.Country
}

func strPtrEqual(a, b *string) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	return *a == *b
}

// DisplayKey is the normalized identity used to collapse recipients in
// selection lists: the lowercased/trimmed company name for companies,
// the lowercased/trimmed salutation+name+surname for persons, falling
// back to the row id when that concatenation is empty.
func DisplayKey(r model.InvoiceRecipient) string {
	var key string
	if r.Type == model.RecipientTypeCompany {
		key = deref(r.CompanyName)
	} else {
		key = strings.Join([]string{deref(r.Salutation), deref(r.Name), deref(r.Surname)}, " ")
	}
	key = strings.ToLower(strings.TrimSpace(key))
	if key == "" {
		return strconv.Itoa(r.ID)
	}
	return key
}

func deref(s *string) string {
	if s == nil {
		return ""
	}
	return *s
}

// DedupeForDisplay collapses recipients sharing a display key, keeping
// the most recently created row per key, and returns the survivors
// newest first.
func DedupeForDisplay(pool []model.InvoiceRecipient) []model.InvoiceRecipient {
	newest := make(map[string]model.InvoiceRecipient, len(pool))
	for _, r := range pool {
		key := DisplayKey(r)
		if existing, ok := newest[key]; ok && !r.CreatedAt.After(existing.CreatedAt) {
			continue
		}
		newest[key] = r
	}

	out := make([]model.InvoiceRecipient, 0, len(newest))
	for _, r := range newest {
		out = append(out, r)
	}
	sort.Slice(out, func(i, j int) bool {
		if out[i].CreatedAt.Equal(out[j].CreatedAt) {
			return out[i].ID > out[j].ID
		}
		return out[i].CreatedAt.After(out[j].CreatedAt)
	})
	return out
}

// ExcludeCourseParticipants drops PERSON recipients that are linked to
// one of the course's participants, or whose name+surname+email exactly
// match one. Those rows are "just the participant" and are not offered
// as separate billing targets. COMPANY recipients always pass.
func ExcludeCourseParticipants(pool []model.InvoiceRecipient, participants []model.Participant) []model.InvoiceRecipient {
	linked := make(map[int]struct{}, len(participants))
	identity := make(map[string]struct{}, len(participants))
	for _, p := range participants {
		linked[p.ID] = struct{}{}
		identity[p.Name+"\x00"+p.Surname+"\x00"+p.Email] = struct{}{}
	}

	out := make([]model.InvoiceRecipient, 0, len(pool))
	for _, r := range pool {
		if r.Type == model.RecipientTypePerson {
			if r.ParticipantID != nil {
				if _, ok := linked[*r.ParticipantID]; ok {
					continue
				}
			}
			if _, ok := identity[deref(r.Name)+"\x00"+deref(r.Surname)+"\x00"+r.Email]; ok {
				continue
			}
		}
		out = append(out, r)
	}
	return out
}
