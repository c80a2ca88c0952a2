package pagination

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEncodeDecodeMultiFieldToken(t *testing.T) {
	token := EncodeMultiFieldToken("a", "b", "c")
	assert.NotEmpty(t, token)

	fields, err := DecodeMultiFieldToken(token)
	require.NoError(t, err)
	assert.Equal(t, []string{"a", "b", "c"}, fields)
}

func TestEncodeMultiFieldToken_QuerySafe(t *testing.T) {
	// Bytes that would produce '+' and '/' in standard base64.
	token := EncodeMultiFieldToken("\xfb\xff", "\xfe")
	assert.NotContains(t, token, "+")
	assert.NotContains(t, token, "/")
	assert.NotContains(t, token, "=")
}

func TestEncodeDecodeLedgerToken(t *testing.T) {
	token := EncodeLedgerToken("6f1c3d5e-account", "9a8b-line")

	accountID, lineItemID, err := DecodeLedgerToken(token)
	require.NoError(t, err)
	assert.Equal(t, "6f1c3d5e-account", accountID)
	assert.Equal(t, "9a8b-line", lineItemID)
}

func TestDecodeLedgerTokenError(t *testing.T) {
	_, _, err := DecodeLedgerToken("this is not base64!")
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "base64 decode")

	_, _, err = DecodeLedgerToken(EncodeMultiFieldToken("only-one"))
	assert.Error(t, err)
	assert.Contains(t, err.Error(), "split")

	_, _, err = DecodeLedgerToken(EncodeMultiFieldToken("a", "b", "c"))
	assert.Error(t, err)

	_, _, err = DecodeLedgerToken(EncodeMultiFieldToken("", "b"))
	assert.Error(t, err)
}
