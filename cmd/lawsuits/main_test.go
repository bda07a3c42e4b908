// Copyright 2026 The Bureau Authors
// SPDX-License-Identifier: Apache-2.0

package main

import (
	"bytes"
	"context"
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"net/url"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/bureau-foundation/lawsuits/lib/config"
	"github.com/bureau-foundation/lawsuits/lib/version"
)

const (
	numberSP  = "0001234-71.2024.8.26.0100"
	numberTRF = "1000001-73.2023.4.03.6100"
)

// fakeAPI serves two list pages and one case, recording list queries.
type fakeAPI struct {
	mu      sync.Mutex
	queries []url.Values
}

func (api *fakeAPI) ServeHTTP(writer http.ResponseWriter, request *http.Request) {
	writer.Header().Set("Content-Type", "application/json")
	switch {
	case request.URL.Path == "/lawsuits":
		api.mu.Lock()
		api.queries = append(api.queries, request.URL.Query())
		api.mu.Unlock()

		if request.URL.Query().Get("cursor") == "c1" {
			json.NewEncoder(writer).Encode(map[string]any{
				"items": []map[string]any{
					{"numeroProcesso": numberTRF, "siglaTribunal": "TRF3", "grauAtual": "G2", "classePrincipal": "Execução Fiscal"},
				},
			})
			return
		}
		json.NewEncoder(writer).Encode(map[string]any{
			"items": []map[string]any{{
				"numeroProcesso":   numberSP,
				"siglaTribunal":    "TJSP",
				"grauAtual":        "G1",
				"classePrincipal":  "Procedimento Comum Cível",
				"assuntoPrincipal": "Indenização por Dano Moral",
				"ultimoMovimento":  map[string]any{"dataHora": "2024-03-12T10:00:00", "descricao": "Conclusos para decisão"},
			}},
			"nextCursor": "c1",
		})

	case request.URL.Path == "/lawsuits/"+numberSP:
		json.NewEncoder(writer).Encode(map[string]any{
			"numeroProcesso": numberSP,
			"siglaTribunal":  "TJSP",
			"nivelSigilo":    0,
			"tramitacaoAtual": map[string]any{
				"grau":             "G1",
				"orgaoJulgador":    "1ª Vara Cível",
				"classes":          []string{"Procedimento Comum Cível"},
				"assuntos":         []string{"Indenização por Dano Moral"},
				"dataAutuacao":     "2024-01-10",
				"dataDistribuicao": "2024-01-09",
			},
			"partes": []map[string]any{
				{"nome": "Maria Silva", "polo": "ativo", "tipoParte": "AUTOR"},
				{"nome": "Banco Exemplo S.A.", "polo": "passivo"},
			},
		})

	case strings.HasPrefix(request.URL.Path, "/lawsuits/"):
		writer.WriteHeader(http.StatusNotFound)
		json.NewEncoder(writer).Encode(map[string]string{"message": "Processo não encontrado"})

	default:
		writer.WriteHeader(http.StatusServiceUnavailable)
		json.NewEncoder(writer).Encode(map[string]string{"message": "indisponível"})
	}
}

func (api *fakeAPI) lastQuery(t *testing.T) url.Values {
	t.Helper()
	api.mu.Lock()
	defer api.mu.Unlock()
	require.NotEmpty(t, api.queries, "no list request was made")
	return api.queries[len(api.queries)-1]
}

type result struct {
	stdout string
	stderr string
	err    error
}

// runCommand runs the binary's entry point against api.
func runCommand(t *testing.T, baseURL string, args ...string) result {
	t.Helper()
	t.Setenv(config.EnvironmentVariable, "")
	t.Setenv("XDG_STATE_HOME", t.TempDir())

	var stdout, stderr bytes.Buffer
	fullArgs := append([]string{"--base-url", baseURL}, args...)
	err := run(context.Background(), fullArgs, &stdout, &stderr)
	return result{stdout: stdout.String(), stderr: stderr.String(), err: err}
}

func newServer(t *testing.T) (*fakeAPI, string) {
	t.Helper()
	api := &fakeAPI{}
	server := httptest.NewServer(api)
	t.Cleanup(server.Close)
	return api, server.URL
}

func TestVersion(t *testing.T) {
	var stdout bytes.Buffer
	require.NoError(t, run(context.Background(), []string{"--version"}, &stdout, &bytes.Buffer{}))
	assert.Contains(t, stdout.String(), version.Info())
}

func TestListPrintsTable(t *testing.T) {
	api, baseURL := newServer(t)
	out := runCommand(t, baseURL, "list", "--court", "tjsp", "--degree", "1", "--limit", "5", "dano", "moral")
	require.NoError(t, out.err)

	query := api.lastQuery(t)
	assert.Equal(t, "dano moral", query.Get("q"))
	assert.Equal(t, "TJSP", query.Get("tribunal"))
	assert.Equal(t, "G1", query.Get("grau"))
	assert.Equal(t, "5", query.Get("limit"))

	assert.Contains(t, out.stdout, "NÚMERO")
	assert.Contains(t, out.stdout, numberSP)
	assert.Contains(t, out.stdout, "12/03/2024 Conclusos para decisão")
	assert.NotContains(t, out.stdout, numberTRF)
	assert.Contains(t, out.stderr, "--cursor c1")
}

func TestListAllPagesAsJSON(t *testing.T) {
	_, baseURL := newServer(t)
	out := runCommand(t, baseURL, "list", "--pages", "0", "--json")
	require.NoError(t, out.err)

	var decoded listOutput
	require.NoError(t, json.Unmarshal([]byte(out.stdout), &decoded))
	require.Len(t, decoded.Items, 2)
	assert.Equal(t, numberSP, decoded.Items[0].Number)
	assert.Equal(t, "1º grau", decoded.Items[0].Degree)
	assert.Equal(t, numberTRF, decoded.Items[1].Number)
	assert.Equal(t, "2º grau", decoded.Items[1].Degree)
	assert.Empty(t, decoded.NextCursor)
}

func TestListValidation(t *testing.T) {
	_, baseURL := newServer(t)
	for _, args := range [][]string{
		{"list", "--degree", "third"},
		{"list", "--limit", "500"},
		{"list", "--pages", "-1"},
	} {
		out := runCommand(t, baseURL, args...)
		require.Error(t, out.err, "args %v", args)
		assert.Equal(t, 2, exitCode(out.err), "args %v", args)
	}
}

func TestShowRendersCase(t *testing.T) {
	_, baseURL := newServer(t)
	out := runCommand(t, baseURL, "show", "00012347120248260100")
	require.NoError(t, out.err)

	for _, want := range []string{numberSP, "Maria Silva", "Polo ativo", "Polo passivo", "Sem movimentos registrados", "1ª Vara Cível"} {
		assert.Contains(t, out.stdout, want)
	}
}

func TestShowErrors(t *testing.T) {
	_, baseURL := newServer(t)

	out := runCommand(t, baseURL, "show", "12345")
	require.Error(t, out.err)
	assert.Equal(t, 2, exitCode(out.err))

	out = runCommand(t, baseURL, "show", numberTRF)
	require.Error(t, out.err)
	assert.Equal(t, 3, exitCode(out.err))
	assert.Contains(t, out.err.Error(), "Processo não encontrado")

	out = runCommand(t, baseURL, "show")
	assert.Equal(t, 2, exitCode(out.err))
}

func TestTribunals(t *testing.T) {
	api, baseURL := newServer(t)
	out := runCommand(t, baseURL, "tribunals")
	require.NoError(t, out.err)
	assert.Equal(t, "TJSP\nTRF3\n", out.stdout)
	assert.Equal(t, "100", api.lastQuery(t).Get("limit"))
}

func TestTransientFailureExitCode(t *testing.T) {
	server := httptest.NewServer(http.HandlerFunc(func(writer http.ResponseWriter, _ *http.Request) {
		writer.WriteHeader(http.StatusBadGateway)
	}))
	t.Cleanup(server.Close)

	out := runCommand(t, server.URL, "list")
	require.Error(t, out.err)
	assert.Equal(t, 4, exitCode(out.err))
}

func TestUnknownCommand(t *testing.T) {
	_, baseURL := newServer(t)
	out := runCommand(t, baseURL, "frobnicate")
	require.Error(t, out.err)
	assert.Equal(t, 2, exitCode(out.err))
}

func TestFlagsOverrideConfigFile(t *testing.T) {
	api, baseURL := newServer(t)
	path := filepath.Join(t.TempDir(), "lawsuits.yaml")
	require.NoError(t, os.WriteFile(path, []byte("api:\n  base_url: http://unused.invalid\nsearch:\n  page_size: 30\n"), 0o600))

	var stdout, stderr bytes.Buffer
	t.Setenv(config.EnvironmentVariable, "")
	err := run(context.Background(), []string{"--config", path, "--base-url", baseURL, "list"}, &stdout, &stderr)
	require.NoError(t, err)
	assert.Equal(t, "30", api.lastQuery(t).Get("limit"))

	err = run(context.Background(), []string{"--config", path, "--page-size", "7", "list"}, &stdout, &stderr)
	require.Error(t, err)
	assert.Equal(t, 2, exitCode(err))
}

func TestParseDegree(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"", ""},
		{"1", "FIRST"},
		{"G2", "SECOND"},
		{"Superior", "SUPERIOR"},
	}
	for _, test := range tests {
		got, err := parseDegree(test.input)
		require.NoError(t, err, test.input)
		assert.Equal(t, test.want, string(got), test.input)
	}
}

func TestNormalizeNumber(t *testing.T) {
	assert.Equal(t, numberSP, normalizeNumber("00012347120248260100"))
	assert.Equal(t, numberSP, normalizeNumber(" "+numberSP+" "))
	assert.Equal(t, "12345", normalizeNumber("12345"))
}

func TestHighlightJSON(t *testing.T) {
	var output bytes.Buffer
	require.NoError(t, highlightJSON(&output, []byte(`{"number": "`+numberSP+`"}`), "dark"))
	assert.Contains(t, output.String(), "\x1b[")
	assert.Contains(t, output.String(), numberSP)
}
