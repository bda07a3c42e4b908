// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package lawsuitapi

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/klauspost/compress/gzhttp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bureau-foundation/lawsuits/lib/lawsuit"
)

// newTestClient creates a Client backed by the given httptest.Server.
func newTestClient(t *testing.T, server *httptest.Server) *Client {
	t.Helper()
	client, err := NewClient(Config{
		BaseURL:    server.URL + "/v1",
		HTTPClient: server.Client(),
		UserAgent:  "lawsuits-test",
	})
	require.NoError(t, err)
	return client
}

func writeJSON(t *testing.T, writer http.ResponseWriter, status int, body any) {
	t.Helper()
	writer.Header().Set("Content-Type", "application/json")
	writer.WriteHeader(status)
	require.NoError(t, json.NewEncoder(writer).Encode(body))
}

func TestNewClientValidation(t *testing.T) {
	tests := []struct {
		name    string
		baseURL string
	}{
		{"empty", ""},
		{"no scheme", "api.example.com"},
		{"unsupported scheme", "ftp://api.example.com"},
		{"no host", "https://"},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			_, err := NewClient(Config{BaseURL: test.baseURL})
			assert.Error(t, err)
		})
	}

	client, err := NewClient(Config{BaseURL: "https://api.example.com/v1/"})
	require.NoError(t, err)
	assert.Equal(t, "https://api.example.com/v1", client.BaseURL())
}

func TestListSendsQueryParameters(t *testing.T) {
	var gotQuery string
	var gotRequestID, gotUserAgent string
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/lawsuits", request.URL.Path)
		gotQuery = request.URL.RawQuery
		gotRequestID = request.Header.Get(requestIDHeader)
		gotUserAgent = request.Header.Get("User-Agent")
		writeJSON(t, writer, http.StatusOK, map[string]any{
			"items": []map[string]any{{
				"numeroProcesso": "0001234-71.2024.8.26.0100",
				"siglaTribunal":  "TJSP",
				"grauAtual":      "G1",
			}},
			"nextCursor": "next-page",
		})
	}))
	defer server.Close()

	page, err := newTestClient(t, server).List(context.Background(), lawsuit.ListParams{
		Query:  "fraude",
		Court:  "TJSP",
		Degree: lawsuit.DegreeFirst,
		Limit:  50,
	})
	require.NoError(t, err)

	assert.Equal(t, "grau=G1&limit=50&q=fraude&tribunal=TJSP", gotQuery)
	assert.Len(t, gotRequestID, 36)
	assert.Equal(t, "lawsuits-test", gotUserAgent)

	require.Len(t, page.Items, 1)
	assert.Equal(t, "0001234-71.2024.8.26.0100-0", page.Items[0].ID)
	assert.Equal(t, lawsuit.DegreeFirst, page.Items[0].Degree)
	assert.True(t, page.HasMore)
	assert.Equal(t, "next-page", page.NextCursor)
}

func TestListDefaultsLimit(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "20", request.URL.Query().Get("limit"))
		assert.False(t, request.URL.Query().Has("grau"))
		writeJSON(t, writer, http.StatusOK, map[string]any{"items": []any{}})
	}))
	defer server.Close()

	page, err := newTestClient(t, server).List(context.Background(), lawsuit.ListParams{})
	require.NoError(t, err)
	assert.False(t, page.HasMore)
	assert.Empty(t, page.Items)
}

func TestGet(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		assert.Equal(t, "/v1/lawsuits/0001234-71.2024.8.26.0100", request.URL.Path)
		writeJSON(t, writer, http.StatusOK, map[string]any{
			"numeroProcesso": "0001234-71.2024.8.26.0100",
			"siglaTribunal":  "TJSP",
			"nivelSigilo":    0,
			"tramitacaoAtual": map[string]any{
				"grau":     "G2",
				"classes":  []string{"Apelação Cível"},
				"assuntos": []string{},
			},
			"partes": []map[string]any{
				{"nome": "Maria", "polo": "ativo", "representantes": []any{}},
			},
			"ultimoMovimento": nil,
		})
	}))
	defer server.Close()

	detail, err := newTestClient(t, server).Get(context.Background(), " 0001234-71.2024.8.26.0100 ")
	require.NoError(t, err)
	assert.Equal(t, lawsuit.DegreeSecond, detail.Degree)
	assert.Equal(t, "Apelação Cível", detail.PrimaryClass)
	assert.Equal(t, lawsuit.NoMovementsDescription, detail.LastMovement.Description)
	assert.Empty(t, detail.Movements)
	require.Len(t, detail.Parties, 1)
	assert.Equal(t, lawsuit.SidePlaintiff, detail.Parties[0].Side)
}

func TestGetLogsUnknownSideThroughClientLogger(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writeJSON(t, writer, http.StatusOK, map[string]any{
			"numeroProcesso":  "0001234-71.2024.8.26.0100",
			"siglaTribunal":   "TJSP",
			"tramitacaoAtual": map[string]any{"grau": "G1"},
			"partes": []map[string]any{
				{"nome": "Maria", "polo": "ativo"},
				{"nome": "Fulano", "polo": "terceiro"},
			},
		})
	}))
	defer server.Close()

	var logged bytes.Buffer
	client, err := NewClient(Config{
		BaseURL:    server.URL,
		HTTPClient: server.Client(),
		Logger:     slog.New(slog.NewTextHandler(&logged, &slog.HandlerOptions{Level: slog.LevelWarn})),
	})
	require.NoError(t, err)

	detail, err := client.Get(context.Background(), "0001234-71.2024.8.26.0100")
	require.NoError(t, err)
	require.Len(t, detail.Parties, 2)
	assert.Equal(t, lawsuit.SidePlaintiff, detail.Parties[1].Side)
	assert.Equal(t, "terceiro", detail.Parties[1].RawSide)

	output := logged.String()
	assert.Contains(t, output, "unrecognized party side")
	assert.Contains(t, output, "side=terceiro")
	assert.Contains(t, output, "party=Fulano")
	assert.NotContains(t, output, "party=Maria")
}

func TestGetEmptyNumber(t *testing.T) {
	client, err := NewClient(Config{BaseURL: "https://api.example.com"})
	require.NoError(t, err)
	_, err = client.Get(context.Background(), "  ")
	var apiError *APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, 0, apiError.StatusCode)
}

func TestErrorResponses(t *testing.T) {
	tests := []struct {
		name          string
		status        int
		body          string
		wantMessage   string
		wantNotFound  bool
		wantTransient bool
	}{
		{"not found with message", 404, `{"message":"Processo não encontrado"}`, "Processo não encontrado", true, false},
		{"not found without body", 404, "", "processo não encontrado", true, false},
		{"bad request", 400, `{"error":"limit must be <= 100"}`, "limit must be <= 100", false, false},
		{"server error", 502, "bad gateway", "bad gateway", false, true},
		{"rate limited", 429, "", "muitas requisições, tente novamente em instantes", false, true},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
				writer.WriteHeader(test.status)
				fmt.Fprint(writer, test.body)
			}))
			defer server.Close()

			_, err := newTestClient(t, server).List(context.Background(), lawsuit.ListParams{})
			var apiError *APIError
			require.ErrorAs(t, err, &apiError)
			assert.Equal(t, test.status, apiError.StatusCode)
			assert.Equal(t, test.wantMessage, apiError.Message)
			assert.NotEmpty(t, apiError.RequestID)
			assert.Equal(t, test.wantNotFound, IsNotFound(err))
			assert.Equal(t, test.wantTransient, IsTransient(err))
			assert.Contains(t, err.Error(), fmt.Sprintf("HTTP %d", test.status))
		})
	}
}

func TestMalformedBody(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		fmt.Fprint(writer, "<html>maintenance</html>")
	}))
	defer server.Close()

	_, err := newTestClient(t, server).List(context.Background(), lawsuit.ListParams{})
	var apiError *APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, "resposta inválida do servidor", apiError.Message)
	assert.Error(t, apiError.Unwrap())
}

func TestTransportFailure(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(http.ResponseWriter, *http.Request) {}))
	client := newTestClient(t, server)
	server.Close()

	_, err := client.List(context.Background(), lawsuit.ListParams{})
	var apiError *APIError
	require.ErrorAs(t, err, &apiError)
	assert.Equal(t, 0, apiError.StatusCode)
	assert.Equal(t, "falha de conexão com o servidor", apiError.Message)
	assert.True(t, IsTransient(err))
}

func TestCancelledContext(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusOK, map[string]any{"items": []any{}})
	}))
	defer server.Close()

	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := newTestClient(t, server).List(ctx, lawsuit.ListParams{})
	require.ErrorIs(t, err, context.Canceled)
	assert.False(t, IsTransient(err))
}

func TestCompressedResponse(t *testing.T) {
	items := make([]map[string]any, 100)
	for index := range items {
		items[index] = map[string]any{
			"numeroProcesso":   fmt.Sprintf("%07d-71.2024.8.26.0100", index),
			"siglaTribunal":    "TJSP",
			"grauAtual":        "G1",
			"classePrincipal":  strings.Repeat("Procedimento Comum Cível ", 4),
			"assuntoPrincipal": "Indenização por Dano Moral",
		}
	}
	var sawGzip bool
	handler := gzhttp.GzipHandler(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		writeJSON(t, writer, http.StatusOK, map[string]any{"items": items})
	}))
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, request *http.Request) {
		sawGzip = strings.Contains(request.Header.Get("Accept-Encoding"), "gzip")
		handler.ServeHTTP(writer, request)
	}))
	defer server.Close()

	client, err := NewClient(Config{
		BaseURL:    server.URL,
		HTTPClient: &http.Client{Transport: NewTransport(nil, false)},
	})
	require.NoError(t, err)

	page, err := client.List(context.Background(), lawsuit.ListParams{Limit: 100})
	require.NoError(t, err)
	assert.True(t, sawGzip)
	assert.Len(t, page.Items, 100)
}
