package gcalendar

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"golang.org/x/oauth2"
)

func TestNewAuthConfig(t *testing.T) {
	tests := []struct {
		name    string
		creds   string
		wantErr bool
	}{
		{
			name:  "Desktop credentials",
			creds: `{"installed":{"client_id":"id-123","client_secret":"s","redirect_uris":["http://localhost"],"auth_uri":"https://accounts.google.com/o/oauth2/auth","token_uri":"https://oauth2.googleapis.com/token"}}`,
		},
		{name: "Not JSON", creds: `nope`, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			config, err := NewAuthConfig([]byte(tt.creds))
			if tt.wantErr {
				if err == nil {
					t.Fatal("expected an error")
				}
				return
			}
			if err != nil {
				t.Fatalf("NewAuthConfig: %v", err)
			}
			url := AuthCodeURL(config)
			if !strings.Contains(url, "client_id=id-123") || !strings.Contains(url, "access_type=offline") {
				t.Errorf("unexpected auth URL: %s", url)
			}
		})
	}
}

func TestSaveToken(t *testing.T) {
	path := filepath.Join(t.TempDir(), TokenFile)
	if err := SaveToken(path, &oauth2.Token{AccessToken: "abc", RefreshToken: "def"}); err != nil {
		t.Fatalf("SaveToken: %v", err)
	}

	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatalf("read token: %v", err)
	}
	var tok oauth2.Token
	if err := json.Unmarshal(data, &tok); err != nil {
		t.Fatalf("decode token: %v", err)
	}
	if tok.AccessToken != "abc" || tok.RefreshToken != "def" {
		t.Errorf("unexpected token: %+v", tok)
	}
}
