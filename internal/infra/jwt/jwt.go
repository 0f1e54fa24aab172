package jwt

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const idTokenUse = "id"

var (
	singleton *Verifier

	ErrNotConfigured     = errors.New("identity provider not configured")
	ErrMissingKid        = errors.New("token header has no kid")
	ErrUnknownKid        = errors.New("no matching signing key for kid")
	ErrInvalidToken      = errors.New("invalid token")
	ErrInvalidIssuer     = errors.New("invalid token issuer")
	ErrWrongTokenUse     = errors.New("token is not an id token")
	ErrKeySetUnavailable = errors.New("signing key set unavailable")
)

// Config identifica o user pool do provedor. JWKSURL sobrescreve a URL
// derivada de Region e UserPoolID.
type Config struct {
	Region     string
	UserPoolID string
	ClientID   string
	JWKSURL    string
	Timeout    time.Duration
}

func (c Config) Configured() bool {
	return c.UserPoolID != "" && c.ClientID != ""
}

func (c Config) Issuer() string {
	return fmt.Sprintf("https://cognito-idp.%s.amazonaws.com/%s", c.Region, c.UserPoolID)
}

func (c Config) KeySetURL() string {
	if c.JWKSURL != "" {
		return c.JWKSURL
	}
	return c.Issuer() + "/.well-known/jwks.json"
}

// Claims são as claims do ID token usadas pela API.
type Claims struct {
	TokenUse string   `json:"token_use"`
	Email    string   `json:"email"`
	Name     string   `json:"name"`
	Groups   []string `json:"cognito:groups"`
	jwt.RegisteredClaims
}

type Verifier struct {
	cfg    Config
	keys   *KeySet
	parser *jwt.Parser
}

func NewVerifier(cfg Config) *Verifier {
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = 5 * time.Second
	}
	return &Verifier{
		cfg:  cfg,
		keys: NewKeySet(cfg.KeySetURL(), &http.Client{Timeout: timeout}),
		parser: jwt.NewParser(
			jwt.WithValidMethods([]string{jwt.SigningMethodRS256.Alg()}),
			jwt.WithAudience(cfg.ClientID),
			jwt.WithExpirationRequired(),
		),
	}
}

// Init registra o verificador global. Chame uma vez no startup.
func Init(cfg Config) *Verifier {
	singleton = NewVerifier(cfg)
	return singleton
}

func Use() *Verifier {
	if singleton == nil {
		panic("jwt package not initialized, call jwt.Init(cfg) at startup")
	}
	return singleton
}

func (v *Verifier) Configured() bool {
	return v.cfg.Configured()
}

// Verify valida um ID token e devolve suas claims. As chaves de assinatura
// são buscadas no primeiro uso e mantidas enquanto o processo viver.
func (v *Verifier) Verify(ctx context.Context, token string) (*Claims, error) {
	if !v.Configured() {
		return nil, ErrNotConfigured
	}

	unverified, _, err := v.parser.ParseUnverified(token, &Claims{})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}
	kid, _ := unverified.Header["kid"].(string)
	if kid == "" {
		return nil, ErrMissingKid
	}

	keys, err := v.keys.Keys(ctx)
	if err != nil {
		return nil, err
	}
	key, ok := keys[kid]
	if !ok {
		return nil, ErrUnknownKid
	}

	claims := &Claims{}
	_, err = v.parser.ParseWithClaims(token, claims, func(*jwt.Token) (interface{}, error) {
		return key, nil
	})
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrInvalidToken, err)
	}

	if claims.Issuer != v.cfg.Issuer() {
		return nil, ErrInvalidIssuer
	}
	if claims.TokenUse != idTokenUse {
		return nil, ErrWrongTokenUse
	}
	return claims, nil
}
