package google

import (
	"context"
	"fmt"
	"net/http"
	"net/url"
	"strings"
	"time"

	integrationdomain "github.com/joelcalkins28/JobTracker-CRM/internal/integration/domain"

	"golang.org/x/oauth2"
	"golang.org/x/oauth2/google"
	oauth2api "google.golang.org/api/oauth2/v2"
	"google.golang.org/api/option"
)

// TokenUpdateFunc is a callback function that handles token updates
type TokenUpdateFunc = integrationdomain.TokenUpdateFunc

const revokeEndpoint = "https://oauth2.googleapis.com/revoke"

var oauthScopes = []string{
	"https://www.googleapis.com/auth/userinfo.email",
	"https://www.googleapis.com/auth/userinfo.profile",
	"https://www.googleapis.com/auth/calendar",
	"https://www.googleapis.com/auth/gmail.readonly",
	"https://www.googleapis.com/auth/gmail.send",
}

// Service holds the OAuth client configuration. It is constructed once at
// startup and passed to whoever needs Google access; there is no process-wide
// client state.
type Service struct {
	clientID     string
	clientSecret string
	redirectURI  string
	httpClient   *http.Client
}

// NewService creates a Google gateway from explicit credentials.
func NewService(clientID, clientSecret, redirectURI string) *Service {
	return &Service{
		clientID:     clientID,
		clientSecret: clientSecret,
		redirectURI:  redirectURI,
		httpClient:   &http.Client{Timeout: 10 * time.Second},
	}
}

func (s *Service) oauthConfig() *oauth2.Config {
	return &oauth2.Config{
		ClientID:     s.clientID,
		ClientSecret: s.clientSecret,
		RedirectURL:  s.redirectURI,
		Endpoint:     google.Endpoint,
		Scopes:       oauthScopes,
	}
}

// AuthCodeURL returns the consent-screen URL. Offline access plus forced
// consent so Google returns a refresh token.
func (s *Service) AuthCodeURL(state string) string {
	return s.oauthConfig().AuthCodeURL(state,
		oauth2.AccessTypeOffline,
		oauth2.SetAuthURLParam("prompt", "consent"),
	)
}

// Exchange trades an authorization code for tokens.
func (s *Service) Exchange(ctx context.Context, code string) (*oauth2.Token, error) {
	token, err := s.oauthConfig().Exchange(ctx, code)
	if err != nil {
		return nil, fmt.Errorf("unable to exchange authorization code: %v", err)
	}
	return token, nil
}

// Userinfo fetches the authenticated user's profile.
func (s *Service) Userinfo(ctx context.Context, token *oauth2.Token) (email, name, picture string, err error) {
	client := oauth2.NewClient(ctx, oauth2.StaticTokenSource(token))
	svc, err := oauth2api.NewService(ctx, option.WithHTTPClient(client))
	if err != nil {
		return "", "", "", fmt.Errorf("unable to create userinfo service: %v", err)
	}

	info, err := svc.Userinfo.Get().Do()
	if err != nil {
		return "", "", "", fmt.Errorf("unable to fetch user info: %v", err)
	}
	if info.Email == "" {
		return "", "", "", fmt.Errorf("google account has no email")
	}

	name = info.Name
	if name == "" {
		name = strings.Split(info.Email, "@")[0]
	}
	return info.Email, name, info.Picture, nil
}

// RevokeToken revokes an access or refresh token with Google.
func (s *Service) RevokeToken(ctx context.Context, token string) error {
	form := url.Values{"token": {token}}
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, revokeEndpoint, strings.NewReader(form.Encode()))
	if err != nil {
		return err
	}
	req.Header.Set("Content-Type", "application/x-www-form-urlencoded")

	resp, err := s.httpClient.Do(req)
	if err != nil {
		return err
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("token revocation failed: status %d", resp.StatusCode)
	}
	return nil
}

type notifyTokenSource struct {
	src      oauth2.TokenSource
	current  *oauth2.Token
	callback TokenUpdateFunc
}

func (s *notifyTokenSource) Token() (*oauth2.Token, error) {
	t, err := s.src.Token()
	if err != nil {
		return nil, err
	}
	if s.callback != nil && s.current.AccessToken != t.AccessToken {
		s.current = t
		if err := s.callback(t); err != nil {
			fmt.Printf("Failed to update token: %v\n", err)
		}
	}
	return t, nil
}

// tokenClient builds an HTTP client whose token source refreshes expired
// access tokens and reports refreshes through onTokenRefresh.
func (s *Service) tokenClient(ctx context.Context, accessToken, refreshToken string, onTokenRefresh TokenUpdateFunc) *http.Client {
	token := &oauth2.Token{
		AccessToken:  accessToken,
		RefreshToken: refreshToken,
		TokenType:    "Bearer",
	}

	// Only force refresh if we have a refresh token
	if refreshToken != "" {
		token.Expiry = time.Now()
	}

	tokenSource := s.oauthConfig().TokenSource(ctx, token)

	wrappedSource := &notifyTokenSource{
		src:      tokenSource,
		current:  token,
		callback: onTokenRefresh,
	}

	return oauth2.NewClient(ctx, wrappedSource)
}
