package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
)

const fieldSeparator = "|"

// EncodeMultiFieldToken creates an opaque, query-string safe token from any number of string fields.
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, fieldSeparator)
	return base64.RawURLEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields.
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.RawURLEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}
	return strings.Split(string(decodedBytes), fieldSeparator), nil
}

// EncodeLedgerToken creates a token pointing at the last ledger row of a page.
func EncodeLedgerToken(accountID, lineItemID string) string {
	return EncodeMultiFieldToken(accountID, lineItemID)
}

// DecodeLedgerToken parses a token created by EncodeLedgerToken.
func DecodeLedgerToken(token string) (accountID string, lineItemID string, err error) {
	parts, err := DecodeMultiFieldToken(token)
	if err != nil {
		return "", "", err
	}
	if len(parts) != 2 || parts[0] == "" || parts[1] == "" {
		return "", "", fmt.Errorf("invalid pagination token format (split)")
	}
	return parts[0], parts[1], nil
}
