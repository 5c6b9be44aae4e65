package ldif

import (
	"context"
	"fmt"
	"os"
	"strings"

	"github.com/go-ldap/ldap/v3"
)

// Modify types accepted by ModifyRecord.
const (
	ModifyAdd       = "add"
	ModifyDelete    = "delete"
	ModifyReplace   = "replace"
	ModifyIncrement = "increment"
)

// ModifyRecord builds a single-attribute modify change. A nil attrValue
// produces a change without values, e.g. deleting every value of attrType.
func ModifyRecord(dn, modType, attrType string, attrValue *string) (*ldap.ModifyRequest, error) {
	var vals []string
	if attrValue != nil {
		vals = []string{*attrValue}
	}

	req := ldap.NewModifyRequest(dn, nil)

	switch strings.ToLower(modType) {
	case ModifyAdd:
		req.Add(attrType, vals)
	case ModifyDelete:
		req.Delete(attrType, vals)
	case ModifyReplace:
		req.Replace(attrType, vals)
	case ModifyIncrement:
		if attrValue == nil {
			return nil, NewValidationError("modify_record", dn, "increment requires a value")
		}
		req.Increment(attrType, *attrValue)
	default:
		return nil, NewValidationError("modify_record", dn, fmt.Sprintf("unsupported modify type %q", modType))
	}

	return req, nil
}

// RenameRecord builds a moddn change. An empty newSuperior keeps the entry
// under its current parent.
func RenameRecord(dn, newRDN, newSuperior string, deleteOldRDN bool) *ldap.ModifyDNRequest {
	return ldap.NewModifyDNRequest(dn, newRDN, deleteOldRDN, newSuperior)
}

// WriteModify writes a modify change record to path. The value line is
// omitted when attrValue is nil.
func WriteModify(ctx context.Context, path, dn, modType, attrType string, attrValue *string) error {
	fields := map[string]any{
		"path":      path,
		"dn":        dn,
		"mod_type":  modType,
		"attr_type": attrType,
		"has_value": attrValue != nil,
	}

	return LogOperation(ctx, "write_modify", fields, func() error {
		req, err := ModifyRecord(dn, modType, attrType, attrValue)
		if err != nil {
			return err
		}
		return writeLines("write_modify", path, appendModify(nil, req))
	})
}

// WriteModifyBinary writes a modify change record whose value is read,
// already base64 encoded, from binaryValuePath. Trailing line breaks of the
// value file are dropped.
func WriteModifyBinary(ctx context.Context, path, dn, modType, attrType, binaryValuePath string) error {
	fields := map[string]any{
		"path":       path,
		"dn":         dn,
		"mod_type":   modType,
		"attr_type":  attrType,
		"value_path": binaryValuePath,
	}

	return LogOperation(ctx, "write_modify_binary", fields, func() error {
		data, err := os.ReadFile(binaryValuePath)
		if err != nil {
			return NewFileAccessError("write_modify_binary", binaryValuePath, err)
		}

		value := strings.TrimRight(string(data), "\r\n")

		req, err := ModifyRecord(dn, modType, attrType, &value)
		if err != nil {
			return err
		}
		return writeLines("write_modify_binary", path, appendModify(nil, req, attrType))
	})
}

// WriteRename writes a moddn change record to path. The newSuperior line is
// omitted when newSuperior is empty.
func WriteRename(ctx context.Context, path, dn, newRDN, newSuperior string, deleteOldRDN bool) error {
	fields := map[string]any{
		"path":           path,
		"dn":             dn,
		"new_rdn":        newRDN,
		"new_superior":   newSuperior,
		"delete_old_rdn": deleteOldRDN,
	}

	return LogOperation(ctx, "write_rename", fields, func() error {
		return writeLines("write_rename", path, appendModifyDN(nil, RenameRecord(dn, newRDN, newSuperior, deleteOldRDN)))
	})
}
