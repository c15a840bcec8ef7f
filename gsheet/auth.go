package gsheet

import (
	"context"
	"encoding/json"
	"fmt"
	"net/http"
	"os"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"

	"github.com/planningtools/planning-sheets/planning"
)

// OAuth2 scopes for the Google APIs used by the application.
const (
	ScopeSheets        = "https://www.googleapis.com/auth/spreadsheets"
	ScopeDriveMetadata = "https://www.googleapis.com/auth/drive.metadata.readonly"
)

// authorize builds an authenticated HTTP client from the credential file. A
// service account key is used directly, an OAuth client credential requires a
// previously cached token (see Authorise).
func authorize(ctx context.Context, credentials, tokens string, scopes ...string) (*http.Client, error) {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return nil, &planning.AuthenticationError{
			Err:  err,
			Hint: "check that the credentials file exists and is readable",
		}
	}

	if isServiceAccount(b) {
		config, err := google.JWTConfigFromJSON(b, scopes...)
		if err != nil {
			return nil, &planning.AuthenticationError{
				Err:  err,
				Hint: "check that the service account key file is valid",
			}
		}

		return config.Client(ctx), nil
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return nil, &planning.AuthenticationError{
			Err:  err,
			Hint: "check that the OAuth client credentials file is valid",
		}
	}

	token, err := tokenFromFile(tokens)
	if err != nil {
		return nil, &planning.AuthenticationError{
			Err:  err,
			Hint: "run 'planning-sheets authorise' to obtain an access token",
		}
	}

	return config.Client(ctx, token), nil
}

// Authorise runs the interactive OAuth flow for an OAuth client credential and
// caches the retrieved token. Service account keys do not need authorisation.
func Authorise(ctx context.Context, credentials, tokens string, scopes ...string) error {
	b, err := os.ReadFile(credentials)
	if err != nil {
		return &planning.AuthenticationError{
			Err:  err,
			Hint: "check that the credentials file exists and is readable",
		}
	}

	if isServiceAccount(b) {
		return fmt.Errorf("'%s' is a service account key and does not require authorisation", credentials)
	}

	config, err := google.ConfigFromJSON(b, scopes...)
	if err != nil {
		return &planning.AuthenticationError{
			Err:  err,
			Hint: "check that the OAuth client credentials file is valid",
		}
	}

	fmt.Printf("Go to the following link in your browser then type the authorization code:\n%v\n", config.AuthCodeURL("state-token", oauth2.AccessTypeOffline))

	var code string
	if _, err := fmt.Scan(&code); err != nil {
		return fmt.Errorf("unable to read authorization code (%v)", err)
	}

	token, err := config.Exchange(ctx, code)
	if err != nil {
		return fmt.Errorf("unable to retrieve token from web (%v)", err)
	}

	return saveToken(tokens, token)
}

// isServiceAccount probes the credential file for a service account key.
func isServiceAccount(credentials []byte) bool {
	var probe struct {
		Type string `json:"type"`
	}

	if err := json.Unmarshal(credentials, &probe); err != nil {
		return false
	}

	return probe.Type == "service_account"
}

func tokenFromFile(file string) (*oauth2.Token, error) {
	f, err := os.Open(file)
	if err != nil {
		return nil, err
	}

	defer f.Close()

	token := oauth2.Token{}
	if err := json.NewDecoder(f).Decode(&token); err != nil {
		return nil, err
	}

	return &token, nil
}

func saveToken(path string, token *oauth2.Token) error {
	f, err := os.OpenFile(path, os.O_RDWR|os.O_CREATE|os.O_TRUNC, 0600)
	if err != nil {
		return fmt.Errorf("unable to cache oauth token (%v)", err)
	}

	defer f.Close()

	return json.NewEncoder(f).Encode(token)
}
