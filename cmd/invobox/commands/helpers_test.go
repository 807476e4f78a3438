package commands

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invobox-io/invobox-client/pkg/invobox"
)

func TestParseEntityID(t *testing.T) {
	t.Parallel()

	id, err := parseEntityID("42")
	require.NoError(t, err)
	assert.Equal(t, int64(42), id)

	for _, arg := range []string{"0", "-1", "abc", ""} {
		_, err := parseEntityID(arg)
		require.ErrorIs(t, err, invobox.ErrIDOutOfRange)
	}
}

func TestParseInvoiceLine(t *testing.T) {
	t.Parallel()

	line, err := parseInvoiceLine("Consulting:8:120.00")
	require.NoError(t, err)
	assert.Equal(t, invobox.InvoiceLine{
		Name:      "Consulting",
		Quantity:  "8",
		UnitPrice: "120.00",
	}, line)

	for _, raw := range []string{"Consulting", "Consulting:8", ":8:120.00", "Consulting:8:", "a:b:c:d"} {
		_, err := parseInvoiceLine(raw)
		require.Error(t, err)
	}
}
