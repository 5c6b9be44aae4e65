package ldif

import (
	"fmt"
	"slices"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// Renderers turn go-ldap requests into LDIF lines. Attribute values are
// emitted as given: no folding, no escaping, no automatic base64.

// appendEntry renders an entry as "dn:" followed by one line per attribute
// value, in attribute and value order.
func appendEntry(lines []string, entry *ldap.AddRequest) []string {
	lines = append(lines, "dn: "+entry.DN)
	for _, attr := range entry.Attributes {
		for _, val := range attr.Vals {
			lines = append(lines, attr.Type+": "+val)
		}
	}
	return lines
}

// appendEntries renders entries separated by blank lines. With leadingBlank,
// every entry is preceded by a blank line, including the first.
func appendEntries(lines []string, entries []*ldap.AddRequest, leadingBlank bool) []string {
	for i, entry := range entries {
		if leadingBlank || i > 0 {
			lines = append(lines, "")
		}
		lines = appendEntry(lines, entry)
	}
	return lines
}

// appendModify renders a modify change record. Values of binaryAttrs are
// already base64 encoded and use the "::" marker.
func appendModify(lines []string, req *ldap.ModifyRequest, binaryAttrs ...string) []string {
	lines = append(lines, "dn: "+req.DN, "changetype: modify")
	for _, change := range req.Changes {
		attrType := change.Modification.Type
		lines = append(lines, modifyOperationName(change.Operation)+": "+attrType)

		separator := ": "
		if containsFold(binaryAttrs, attrType) {
			separator = ":: "
		}
		for _, val := range change.Modification.Vals {
			lines = append(lines, attrType+separator+val)
		}
	}
	return lines
}

// appendModifyDN renders a moddn change record.
func appendModifyDN(lines []string, req *ldap.ModifyDNRequest) []string {
	deleteOldRDN := "0"
	if req.DeleteOldRDN {
		deleteOldRDN = "1"
	}

	lines = append(lines,
		"dn: "+req.DN,
		"changetype: moddn",
		"newRDN: "+req.NewRDN,
		"deleteOldRDN: "+deleteOldRDN,
	)
	if req.NewSuperior != "" {
		lines = append(lines, "newSuperior: "+req.NewSuperior)
	}
	return lines
}

// modifyOperationName returns the LDIF keyword of a go-ldap change operation.
func modifyOperationName(op uint) string {
	switch op {
	case ldap.AddAttribute:
		return "add"
	case ldap.DeleteAttribute:
		return "delete"
	case ldap.ReplaceAttribute:
		return "replace"
	case ldap.IncrementAttribute:
		return "increment"
	default:
		return fmt.Sprintf("unknown-%d", op)
	}
}

func containsFold(values []string, value string) bool {
	return slices.ContainsFunc(values, func(v string) bool {
		return strings.EqualFold(v, value)
	})
}
