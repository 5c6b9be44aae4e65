package ldif

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/go-ldap/ldap/v3"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func strPtr(s string) *string {
	return &s
}

func TestWriteModify(t *testing.T) {
	const dn = "uid=scarter,ou=People,o=replication tests,dc=example,dc=com"

	tests := []struct {
		name      string
		modType   string
		attrType  string
		attrValue *string
		expected  []string
	}{
		{
			name:      "replace with value",
			modType:   "replace",
			attrType:  "telephonenumber",
			attrValue: strPtr("+1 408 555 0000"),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"replace: telephonenumber",
				"telephonenumber: +1 408 555 0000",
			},
		},
		{
			name:      "add with value",
			modType:   "add",
			attrType:  "description",
			attrValue: strPtr("replicated"),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"add: description",
				"description: replicated",
			},
		},
		{
			name:     "delete without value",
			modType:  "delete",
			attrType: "description",
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"delete: description",
			},
		},
		{
			name:      "delete single value",
			modType:   "delete",
			attrType:  "ou",
			attrValue: strPtr("Accounting"),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"delete: ou",
				"ou: Accounting",
			},
		},
		{
			name:      "empty value is still a value",
			modType:   "replace",
			attrType:  "description",
			attrValue: strPtr(""),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"replace: description",
				"description: ",
			},
		},
		{
			name:      "increment",
			modType:   "increment",
			attrType:  "roomnumber",
			attrValue: strPtr("1"),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"increment: roomnumber",
				"roomnumber: 1",
			},
		},
		{
			name:      "mod type is case insensitive",
			modType:   "REPLACE",
			attrType:  "l",
			attrValue: strPtr("Grenoble"),
			expected: []string{
				"dn: " + dn,
				"changetype: modify",
				"replace: l",
				"l: Grenoble",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "modify.ldif")

			require.NoError(t, WriteModify(context.Background(), path, dn, tt.modType, tt.attrType, tt.attrValue))

			assert.Equal(t, strings.Join(tt.expected, "\n")+"\n", readFile(t, path))
		})
	}
}

func TestModifyRecord_Invalid(t *testing.T) {
	tests := []struct {
		name      string
		modType   string
		attrValue *string
	}{
		{name: "unknown modify type", modType: "append", attrValue: strPtr("x")},
		{name: "empty modify type", modType: ""},
		{name: "increment without value", modType: "increment"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			req, err := ModifyRecord("o=test", tt.modType, "description", tt.attrValue)

			require.Error(t, err)
			assert.Nil(t, req)
			assert.True(t, IsValidationError(err))
		})
	}
}

func TestModifyRecord_Model(t *testing.T) {
	req, err := ModifyRecord("o=test", "replace", "description", strPtr("x"))
	require.NoError(t, err)

	require.Len(t, req.Changes, 1)
	assert.Equal(t, "o=test", req.DN)
	assert.Equal(t, uint(ldap.ReplaceAttribute), req.Changes[0].Operation)
	assert.Equal(t, "description", req.Changes[0].Modification.Type)
	assert.Equal(t, []string{"x"}, req.Changes[0].Modification.Vals)
}

func TestWriteModifyBinary(t *testing.T) {
	dir := t.TempDir()
	const encoded = "/9j/4AAQSkZJRgABAQEASABIAAD/2wBDAP//////////////////////////////////////////////////////////////////////////////////////wgALCAABAAEBAREA/8QAFBABAAAAAAAAAAAAAAAAAAAAAP/aAAgBAQABPxA="

	tests := []struct {
		name      string
		fileValue string
	}{
		{name: "value without newline", fileValue: encoded},
		{name: "value with trailing newline", fileValue: encoded + "\n"},
		{name: "value with trailing CRLF", fileValue: encoded + "\r\n"},
	}

	for i, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			valuePath := filepath.Join(dir, "value.b64")
			require.NoError(t, os.WriteFile(valuePath, []byte(tt.fileValue), 0o600))

			path := filepath.Join(dir, "modify-binary-"+string(rune('a'+i))+".ldif")
			require.NoError(t, WriteModifyBinary(context.Background(), path, "uid=scarter,o=test", "replace", "jpegPhoto", valuePath))

			expected := strings.Join([]string{
				"dn: uid=scarter,o=test",
				"changetype: modify",
				"replace: jpegPhoto",
				"jpegPhoto:: " + encoded,
			}, "\n") + "\n"
			assert.Equal(t, expected, readFile(t, path))
		})
	}
}

func TestWriteModifyBinary_MissingValueFile(t *testing.T) {
	dir := t.TempDir()
	valuePath := filepath.Join(dir, "absent.b64")
	path := filepath.Join(dir, "modify.ldif")

	err := WriteModifyBinary(context.Background(), path, "o=test", "add", "jpegPhoto", valuePath)

	require.Error(t, err)
	assert.True(t, IsFileAccessError(err))
	assert.Contains(t, err.Error(), valuePath)
	assert.NoFileExists(t, path)
}

func TestWriteRename(t *testing.T) {
	tests := []struct {
		name         string
		newSuperior  string
		deleteOldRDN bool
		expected     []string
	}{
		{
			name:         "rename in place keeping old RDN",
			deleteOldRDN: false,
			expected: []string{
				"dn: uid=scarter,ou=People,o=test",
				"changetype: moddn",
				"newRDN: uid=scarter2",
				"deleteOldRDN: 0",
			},
		},
		{
			name:         "move under new superior",
			newSuperior:  "ou=Special Users,o=test",
			deleteOldRDN: true,
			expected: []string{
				"dn: uid=scarter,ou=People,o=test",
				"changetype: moddn",
				"newRDN: uid=scarter2",
				"deleteOldRDN: 1",
				"newSuperior: ou=Special Users,o=test",
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := filepath.Join(t.TempDir(), "rename.ldif")

			err := WriteRename(context.Background(), path, "uid=scarter,ou=People,o=test", "uid=scarter2", tt.newSuperior, tt.deleteOldRDN)
			require.NoError(t, err)

			assert.Equal(t, strings.Join(tt.expected, "\n")+"\n", readFile(t, path))
		})
	}
}

func TestRenameRecord_Model(t *testing.T) {
	req := RenameRecord("uid=a,o=test", "uid=b", "ou=x,o=test", true)

	assert.Equal(t, "uid=a,o=test", req.DN)
	assert.Equal(t, "uid=b", req.NewRDN)
	assert.Equal(t, "ou=x,o=test", req.NewSuperior)
	assert.True(t, req.DeleteOldRDN)
}
