package ldif

import (
	"strings"
)

// Object classes used for root suffix entries.
const (
	ObjectClassOrganization       = "organization"
	ObjectClassOrganizationalUnit = "organizationalunit"
	ObjectClassDomain             = "domain"
	ObjectClassUnknown            = "unknown"
)

// LeadingRDN extracts the attribute type and value of the first RDN of dn.
// The type is the text before the first '=', the value the text between that
// '=' and the next ',' (or the end of dn), both trimmed. No unescaping is
// performed; "cn=Doe\, John,o=x" yields the value "Doe\".
// ok is false when dn contains no '='.
//
// Input:  "dc=example,dc=com"
// Output: "dc", "example", true
func LeadingRDN(dn string) (attrType, value string, ok bool) {
	attrType, rest, found := strings.Cut(dn, "=")
	if !found {
		return "", "", false
	}

	value, _, _ = strings.Cut(rest, ",")

	return strings.TrimSpace(attrType), strings.TrimSpace(value), true
}

// ObjectClassForRDN maps an RDN attribute type to the structural object class
// of a root suffix entry. Unrecognized types map to ObjectClassUnknown.
func ObjectClassForRDN(attrType string) string {
	switch attrType {
	case "o":
		return ObjectClassOrganization
	case "ou":
		return ObjectClassOrganizationalUnit
	case "dc":
		return ObjectClassDomain
	default:
		return ObjectClassUnknown
	}
}
