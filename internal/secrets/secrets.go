package secrets

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
)

// Package secrets retrieves the Google service-account key used to build the
// document store client. The key lives as a JSON string in a secrets backend
// (AWS Secrets Manager in production); implementations must not cache it.

// ErrCredentialRetrieval wraps any failure to obtain or parse the
// service-account key: backend unreachable, secret missing, or malformed
// content. It is always fatal to the run.
var ErrCredentialRetrieval = errors.New("credential retrieval failed")

// ServiceAccountKey holds the ten standard Google service-account fields.
// The JSON tags match the canonical key file layout so the struct can be
// re-marshalled and handed to the Drive client as credentials JSON.
type ServiceAccountKey struct {
	Type                    string `json:"type"`
	ProjectID               string `json:"project_id"`
	PrivateKeyID            string `json:"private_key_id"`
	PrivateKey              string `json:"private_key"`
	ClientEmail             string `json:"client_email"`
	ClientID                string `json:"client_id"`
	AuthURI                 string `json:"auth_uri"`
	TokenURI                string `json:"token_uri"`
	AuthProviderX509CertURL string `json:"auth_provider_x509_cert_url"`
	ClientX509CertURL       string `json:"client_x509_cert_url"`
}

// JSON re-marshals the key into credentials JSON for the store client.
func (k *ServiceAccountKey) JSON() ([]byte, error) {
	return json.Marshal(k)
}

// Provider fetches service-account credentials from a secrets backend.
type Provider interface {
	// Fetch retrieves and parses the named secret. Any failure wraps
	// ErrCredentialRetrieval.
	Fetch(ctx context.Context, secretName string) (*ServiceAccountKey, error)
}

// parseKey decodes the secret payload and validates the fields the Drive
// client cannot work without.
func parseKey(payload string) (*ServiceAccountKey, error) {
	var key ServiceAccountKey
	if err := json.Unmarshal([]byte(payload), &key); err != nil {
		return nil, fmt.Errorf("%w: parse secret payload: %v", ErrCredentialRetrieval, err)
	}
	if key.Type == "" || key.PrivateKey == "" || key.ClientEmail == "" {
		return nil, fmt.Errorf("%w: secret payload is missing required service account fields", ErrCredentialRetrieval)
	}
	return &key, nil
}
