package client

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/invobox-io/invobox-client/pkg/invobox"
)

func TestBankAccountsClient_List(t *testing.T) {
	t.Parallel()

	var rawQueries []string

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/api/v2/accounts/acme/bank_accounts.json", request.URL.Path)
		assert.Equal(t, "GET", request.Method)

		rawQueries = append(rawQueries, request.URL.RawQuery)

		_, _ = writer.Write([]byte(`[
			{"id":1,"name":"Main","currency":"EUR","iban":"DE89370400440532013000","default":true},
			{"id":2,"name":"Reserve","currency":"CZK"}
		]`))
	}))
	defer server.Close()

	client := NewTestClient(server.URL)

	accounts, err := client.BankAccounts().List(context.Background(), nil)
	require.NoError(t, err)
	require.Len(t, accounts, 2)
	assert.Equal(t, "Main", accounts[0].Name)
	assert.Equal(t, "EUR", accounts[0].Currency)
	assert.True(t, accounts[0].Default)
	assert.False(t, accounts[1].Default)

	params := invobox.NewQueryParams().WithString("currency", "CZK")

	_, err = client.BankAccounts().List(context.Background(), params)
	require.NoError(t, err)

	// The unpaged endpoint never carries a page parameter.
	assert.Equal(t, []string{"", "currency=CZK"}, rawQueries)
}

func TestBankAccountsClient_ListError(t *testing.T) {
	t.Parallel()

	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writer.WriteHeader(http.StatusUnauthorized)
	}))
	defer server.Close()

	_, err := NewTestClient(server.URL).BankAccounts().List(context.Background(), nil)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "listing bank accounts")
	assert.True(t, invobox.IsUnauthorized(err))
}
