package ldif

import (
	"context"

	"github.com/go-ldap/ldap/v3"
)

// ReplicationTestsRDN is the RDN of the organization holding the canned
// multi-entry fixture.
const ReplicationTestsRDN = "o=replication tests"

// RootSuffixEntry builds the entry creating suffixDN itself. The object class
// follows the RDN type of suffixDN (see ObjectClassForRDN).
func RootSuffixEntry(suffixDN string) (*ldap.AddRequest, error) {
	attrType, value, ok := LeadingRDN(suffixDN)
	if !ok {
		return nil, NewValidationError("root_suffix_entry", suffixDN, "suffix has no RDN attribute type")
	}

	entry := ldap.NewAddRequest(suffixDN, nil)
	entry.Attribute(attrType, []string{value})
	entry.Attribute("objectclass", []string{"top", ObjectClassForRDN(attrType)})
	return entry, nil
}

// scarterEntry builds the canned Sam Carter person entry under parentDN.
func scarterEntry(parentDN string) *ldap.AddRequest {
	entry := ldap.NewAddRequest("uid=scarter,"+parentDN, nil)
	entry.Attribute("cn", []string{"Sam Carter"})
	entry.Attribute("sn", []string{"Carter"})
	entry.Attribute("givenname", []string{"Sam"})
	entry.Attribute("objectclass", []string{"top", "person", "organizationalPerson", "inetOrgPerson"})
	entry.Attribute("ou", []string{"Accounting", "People"})
	entry.Attribute("l", []string{"Sunnyvale"})
	entry.Attribute("uid", []string{"scarter"})
	entry.Attribute("mail", []string{"scarter@example.com"})
	entry.Attribute("telephonenumber", []string{"+1 408 555 4798"})
	entry.Attribute("facsimiletelephonenumber", []string{"+1 408 555 9751"})
	entry.Attribute("roomnumber", []string{"4612"})
	entry.Attribute("userpassword", []string{"sprain"})
	return entry
}

// SingleEntry builds the canned uid=scarter entry directly under suffixDN.
func SingleEntry(suffixDN string) *ldap.AddRequest {
	return scarterEntry(suffixDN)
}

// MultipleEntries builds the canned hierarchy rooted at
// o=replication tests,<suffixDN>, parents first.
func MultipleEntries(suffixDN string) []*ldap.AddRequest {
	base := ReplicationTestsRDN + "," + suffixDN
	people := "ou=People," + base

	org := ldap.NewAddRequest(base, nil)
	org.Attribute("o", []string{"replication tests"})
	org.Attribute("objectclass", []string{"top", "organization"})

	peopleOU := ldap.NewAddRequest(people, nil)
	peopleOU.Attribute("ou", []string{"People"})
	peopleOU.Attribute("objectclass", []string{"top", "organizationalunit"})

	// The Groups DNs keep the ", " separators the fixture has always used.
	groupsOU := ldap.NewAddRequest("ou=Groups, "+base, nil)
	groupsOU.Attribute("objectclass", []string{"top", "organizationalunit"})
	groupsOU.Attribute("ou", []string{"Groups"})

	admins := ldap.NewAddRequest("cn=Directory Administrators, ou=Groups, "+base, nil)
	admins.Attribute("cn", []string{"Directory Administrators"})
	admins.Attribute("objectclass", []string{"top", "groupofuniquenames"})
	admins.Attribute("ou", []string{"Groups"})
	admins.Attribute("uniquemember", []string{
		"uid=kvaughan, ou=People, " + base,
		"uid=rdaugherty, ou=People, " + base,
		"uid=hmiller, ou=People, " + base,
	})

	special := ldap.NewAddRequest("ou=Special Users,"+base, nil)
	special.Attribute("objectclass", []string{"top", "organizationalUnit"})
	special.Attribute("ou", []string{"Special Users"})
	special.Attribute("description", []string{"Special Administrative Accounts"})

	return []*ldap.AddRequest{org, peopleOU, groupsOU, admins, special, scarterEntry(people)}
}

// WriteRootSuffixEntry writes the root entry of suffixDN to path.
func WriteRootSuffixEntry(ctx context.Context, path, suffixDN string) error {
	fields := map[string]any{"path": path, "suffix": suffixDN}

	return LogOperation(ctx, "write_root_suffix_entry", fields, func() error {
		entry, err := RootSuffixEntry(suffixDN)
		if err != nil {
			return err
		}
		return writeLines("write_root_suffix_entry", path, appendEntry(nil, entry))
	})
}

// WriteSingleEntry writes the canned uid=scarter entry under suffixDN to path.
func WriteSingleEntry(ctx context.Context, path, suffixDN string) error {
	fields := map[string]any{"path": path, "suffix": suffixDN}

	return LogOperation(ctx, "write_single_entry", fields, func() error {
		return writeLines("write_single_entry", path, appendEntry(nil, SingleEntry(suffixDN)))
	})
}

// WriteMultipleEntries writes the canned replication tests hierarchy under
// suffixDN to path, entries separated by blank lines.
func WriteMultipleEntries(ctx context.Context, path, suffixDN string) error {
	fields := map[string]any{"path": path, "suffix": suffixDN}

	return LogOperation(ctx, "write_multiple_entries", fields, func() error {
		return writeLines("write_multiple_entries", path, appendEntries(nil, MultipleEntries(suffixDN), false))
	})
}
