package auth

import (
	"context"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"github.com/pkg/errors"
)

const (
	RoleLibrarian = "BIBLIOTECARIO"
	RoleReader    = "LECTOR"

	// gym roles
	RoleAdmin       = "ADMIN"
	RoleParticipant = "PARTICIPANTE"
)

var (
	ErrNoProfile    = errors.New("no auth profile in context")
	ErrInvalidToken = errors.New("invalid token")
	ErrTokenExpired = errors.New("token expired")
)

type Config struct {
	Secret string        `yaml:"secret" envconfig:"JWT_SECRET" required:"true"`
	TTL    time.Duration `yaml:"ttl" envconfig:"JWT_TTL" default:"24h"`
	Issuer string        `yaml:"issuer" envconfig:"JWT_ISSUER" default:"biblioteca"`
}

type Profile struct {
	UserID int64  `json:"id"`
	Email  string `json:"email"`
	Role   string `json:"role"`
}

type Claims struct {
	Profile Profile `json:"profile"`
	jwt.RegisteredClaims
}

// TokenManager signs and verifies HS256 access tokens.
type TokenManager struct {
	key    []byte
	ttl    time.Duration
	issuer string
	now    func() time.Time
}

func NewTokenManager(cfg Config) *TokenManager {
	return &TokenManager{
		key:    []byte(cfg.Secret),
		ttl:    cfg.TTL,
		issuer: cfg.Issuer,
		now:    time.Now,
	}
}

func (m *TokenManager) Issue(p Profile) (string, *Claims, error) {
	now := m.now()
	claims := &Claims{
		Profile: p,
		RegisteredClaims: jwt.RegisteredClaims{
			ID:        uuid.NewString(),
			Issuer:    m.issuer,
			IssuedAt:  jwt.NewNumericDate(now),
			ExpiresAt: jwt.NewNumericDate(now.Add(m.ttl)),
		},
	}
	token, err := jwt.NewWithClaims(jwt.SigningMethodHS256, claims).SignedString(m.key)
	if err != nil {
		return "", nil, errors.Wrap(err, "sign token")
	}
	return token, claims, nil
}

func (m *TokenManager) Parse(tokenStr string) (*Claims, error) {
	claims := new(Claims)
	_, err := jwt.ParseWithClaims(tokenStr, claims, func(token *jwt.Token) (interface{}, error) {
		return m.key, nil
	},
		jwt.WithValidMethods([]string{jwt.SigningMethodHS256.Alg()}),
		jwt.WithIssuer(m.issuer),
		jwt.WithTimeFunc(m.now),
	)
	if err != nil {
		if errors.Is(err, jwt.ErrTokenExpired) {
			return nil, ErrTokenExpired
		}
		return nil, errors.Wrap(ErrInvalidToken, err.Error())
	}
	if claims.ID == "" {
		return nil, errors.Wrap(ErrInvalidToken, "missing jti")
	}
	return claims, nil
}

type ctxKey int

const (
	profileKey ctxKey = iota + 1
	claimsKey
)

func SetAuthContext(ctx context.Context, claims *Claims) context.Context {
	ctx = context.WithValue(ctx, claimsKey, claims)
	return context.WithValue(ctx, profileKey, claims.Profile)
}

func GetProfile(ctx context.Context) (Profile, error) {
	p, ok := ctx.Value(profileKey).(Profile)
	if !ok {
		return Profile{}, ErrNoProfile
	}
	return p, nil
}

func GetClaims(ctx context.Context) (*Claims, error) {
	c, ok := ctx.Value(claimsKey).(*Claims)
	if !ok {
		return nil, ErrNoProfile
	}
	return c, nil
}

func HasRole(ctx context.Context, roles ...string) bool {
	p, err := GetProfile(ctx)
	if err != nil {
		return false
	}
	for _, r := range roles {
		if p.Role == r {
			return true
		}
	}
	return false
}

func IsLibrarian(ctx context.Context) bool {
	return HasRole(ctx, RoleLibrarian)
}
