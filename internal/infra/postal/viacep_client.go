// Package postal implements CEP resolution against the ViaCEP public API.
package postal

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"regexp"
	"time"

	"marzan/internal/domain/service"

	"github.com/pkg/errors"
)

const defaultBaseURL = "https://viacep.com.br"

var cepPattern = regexp.MustCompile(`^[0-9]{8}$`)

// viaCEPClient implements service.PostalLookup against the ViaCEP API.
type viaCEPClient struct {
	baseURL    string
	httpClient *http.Client
}

// viaCEPResponse mirrors the ViaCEP JSON payload. Unknown CEPs return
// {"erro": true} with HTTP 200, so the flag must be checked explicitly.
type viaCEPResponse struct {
	CEP        string `json:"cep"`
	Logradouro string `json:"logradouro"`
	Bairro     string `json:"bairro"`
	Localidade string `json:"localidade"`
	UF         string `json:"uf"`
	Erro       bool   `json:"erro"`
}

// NewViaCEPClient is the constructor for viaCEPClient.
func NewViaCEPClient() service.PostalLookup {
	return &viaCEPClient{
		baseURL: defaultBaseURL,
		httpClient: &http.Client{
			Timeout: 10 * time.Second,
		},
	}
}

// Lookup resolves an 8-digit CEP. Returns service.ErrCEPNotFound for unknown codes.
func (c *viaCEPClient) Lookup(ctx context.Context, cep string) (*service.PostalAddress, error) {
	if !cepPattern.MatchString(cep) {
		return nil, service.ErrCEPNotFound
	}

	url := fmt.Sprintf("%s/ws/%s/json/", c.baseURL, cep)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errors.WithStack(err)
	}

	resp, err := c.httpClient.Do(req)
	if err != nil {
		return nil, errors.Wrap(err, "viacep request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode == http.StatusBadRequest {
		return nil, service.ErrCEPNotFound
	}
	if resp.StatusCode != http.StatusOK {
		return nil, errors.Errorf("viacep returned status %d", resp.StatusCode)
	}

	var payload viaCEPResponse
	if err := json.NewDecoder(resp.Body).Decode(&payload); err != nil {
		return nil, errors.Wrap(err, "failed to decode viacep response")
	}

	if payload.Erro {
		return nil, service.ErrCEPNotFound
	}

	return &service.PostalAddress{
		CEP:          cep,
		Street:       payload.Logradouro,
		Neighborhood: payload.Bairro,
		City:         payload.Localidade,
		State:        payload.UF,
	}, nil
}
