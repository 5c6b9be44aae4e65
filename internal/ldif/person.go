package ldif

import (
	"context"

	"github.com/go-ldap/ldap/v3"
)

// PersonEntry is an inetOrgPerson entry under ou=People of a suffix, built up
// attribute by attribute.
type PersonEntry struct {
	suffix string
	entry  *ldap.AddRequest
}

// NewPersonEntry creates <rdn>,ou=People,<suffix> with the person object classes.
func NewPersonEntry(rdn, suffix string) *PersonEntry {
	entry := ldap.NewAddRequest(rdn+",ou=People,"+suffix, nil)
	entry.Attribute("objectclass", []string{"top", "organizationalperson", "inetorgperson", "person"})

	return &PersonEntry{
		suffix: suffix,
		entry:  entry,
	}
}

func (p *PersonEntry) DN() string {
	return p.entry.DN
}

func (p *PersonEntry) Suffix() string {
	return p.suffix
}

// AddAttr appends one attribute value. Values keep their insertion order.
func (p *PersonEntry) AddAttr(attrType, attrValue string) *PersonEntry {
	p.entry.Attribute(attrType, []string{attrValue})
	return p
}

// Entry returns the underlying add request.
func (p *PersonEntry) Entry() *ldap.AddRequest {
	return p.entry
}

// WritePersonEntries writes persons to path, separated by blank lines.
func WritePersonEntries(ctx context.Context, path string, persons ...*PersonEntry) error {
	fields := map[string]any{"path": path, "entries": len(persons)}

	return LogOperation(ctx, "write_person_entries", fields, func() error {
		entries := make([]*ldap.AddRequest, 0, len(persons))
		for _, p := range persons {
			entries = append(entries, p.entry)
		}
		return writeLines("write_person_entries", path, appendEntries(nil, entries, false))
	})
}
