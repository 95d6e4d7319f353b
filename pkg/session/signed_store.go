package session

import (
	"context"
	"crypto/hmac"
	"crypto/sha256"
	"crypto/subtle"
	"encoding/base64"
	"encoding/json"
	"errors"
	"log/slog"
	"strings"
	"time"

	"github.com/dmitrymomot/sessionkit/pkg/logger"
)

// tokenSeparator joins the data and signature parts of a signed token.
const tokenSeparator = "."

// SignedStore keeps the whole session inside the token:
//
//	base64url(json(data)) + "." + base64url(HMAC-SHA256(secret, base64url(json(data))))
//
// Nothing is stored server-side. The MAC covers the base64 text, not the raw JSON,
// so verification works on the token exactly as received.
type SignedStore struct {
	secret []byte
	maxAge time.Duration
	logger *slog.Logger
}

var _ Store = (*SignedStore)(nil)

// NewSignedStore creates a stateless store. The secret is copied; rotating it
// invalidates every outstanding token. maxAge is recorded but not enforced.
func NewSignedStore(secret []byte, maxAge time.Duration, opts ...Option) (*SignedStore, error) {
	if len(secret) == 0 {
		return nil, ErrNoSecret
	}

	o := newOptions(opts)

	return &SignedStore{
		secret: append([]byte(nil), secret...),
		maxAge: maxAge,
		logger: o.logger.With(logger.Component("session"), logger.Backend(string(BackendSigned))),
	}, nil
}

// MaxAge returns the configured maximum token age.
func (s *SignedStore) MaxAge() time.Duration {
	return s.maxAge
}

// Load verifies the token and decodes its data.
// Malformed or tampered tokens return ErrInvalid; a correctly signed token whose
// body cannot be decoded returns ErrSerialization.
func (s *SignedStore) Load(ctx context.Context, token string) (*Data, error) {
	dataPart, sigPart, found := strings.Cut(token, tokenSeparator)
	if !found || dataPart == "" || sigPart == "" {
		s.logger.DebugContext(ctx, "malformed session token", logger.SessionID(token))
		return nil, ErrInvalid
	}

	if subtle.ConstantTimeCompare([]byte(sigPart), []byte(s.sign(dataPart))) != 1 {
		s.logger.DebugContext(ctx, "session token signature mismatch", logger.SessionID(token))
		return nil, ErrInvalid
	}

	payload, err := base64.URLEncoding.DecodeString(dataPart)
	if err != nil {
		s.logger.WarnContext(ctx, "signed session token has undecodable body",
			logger.SessionID(token), logger.Error(err))
		return nil, errors.Join(ErrSerialization, err)
	}

	data := NewData()
	if err := json.Unmarshal(payload, data); err != nil {
		s.logger.WarnContext(ctx, "signed session token has undecodable body",
			logger.SessionID(token), logger.Error(err))
		return nil, errors.Join(ErrSerialization, err)
	}

	return data, nil
}

// Save encodes data into a new token. The id argument is ignored: the token is
// derived from data alone, so equal data always yields the same token.
func (s *SignedStore) Save(ctx context.Context, _ string, data *Data) (string, error) {
	if data == nil {
		data = NewData()
	}

	payload, err := json.Marshal(data)
	if err != nil {
		return "", errors.Join(ErrSerialization, err)
	}

	dataPart := base64.URLEncoding.EncodeToString(payload)
	token := dataPart + tokenSeparator + s.sign(dataPart)

	s.logger.DebugContext(ctx, "session token issued", logger.Size(len(token)))
	return token, nil
}

// Delete is a no-op: there is no server-side record.
func (s *SignedStore) Delete(context.Context, string) error {
	return nil
}

// Cleanup is a no-op and always reports zero.
func (s *SignedStore) Cleanup(context.Context) (int, error) {
	return 0, nil
}

// sign returns the base64url HMAC-SHA256 of dataPart's bytes.
func (s *SignedStore) sign(dataPart string) string {
	mac := hmac.New(sha256.New, s.secret)
	mac.Write([]byte(dataPart))
	return base64.URLEncoding.EncodeToString(mac.Sum(nil))
}
