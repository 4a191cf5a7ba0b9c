package service

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/rs/zerolog"

	"goldengate/internal/core/domain"
	"goldengate/internal/core/ports"
	"goldengate/pkg/apperror"
)

// AuthConfig holds the fixed fields of the sign-in challenge.
type AuthConfig struct {
	Domain    string
	URI       string
	Statement string
	ChainID   int64
}

// AuthService drives the nonce-challenge sign-in protocol: connect the
// wallet, fetch a nonce, sign the challenge message, submit the signature,
// and transition the session to Signed.
//
// It is the engine's only stateful component. At most one challenge flow
// is in flight per session: a new Connect supersedes a pending flow, and
// the superseded flow's result is never applied to the session. Network
// calls that were already sent are not aborted — only their result
// delivery is cancelled.
type AuthService struct {
	backend ports.ExchangeBackend
	signer  ports.WalletSigner
	siwe    *SIWEService
	session *domain.AuthSession
	cfg     AuthConfig
	log     zerolog.Logger
	now     func() time.Time

	mu         sync.Mutex
	generation uint64
	cancel     context.CancelFunc
}

// NewAuthService creates a new AuthService managing the given session.
func NewAuthService(
	backend ports.ExchangeBackend,
	signer ports.WalletSigner,
	siwe *SIWEService,
	session *domain.AuthSession,
	cfg AuthConfig,
	log zerolog.Logger,
) *AuthService {
	return &AuthService{
		backend: backend,
		signer:  signer,
		siwe:    siwe,
		session: session,
		cfg:     cfg,
		log:     log,
		now:     time.Now,
	}
}

// Session returns the session this flow manages.
func (s *AuthService) Session() *domain.AuthSession {
	return s.session
}

// Connect establishes a wallet session. Any pending challenge flow is
// superseded first, so two competing nonces can never race.
func (s *AuthService) Connect(ctx context.Context) (string, error) {
	gen := s.supersede()

	address, err := s.signer.Connect(ctx)
	if err != nil {
		return "", s.guard(gen, signerErr(err))
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return "", apperror.ErrSuperseded()
	}
	s.session.SetConnected(address)
	s.log.Info().Str("address", address).Msg("wallet connected")
	return address, nil
}

// SignIn runs the challenge flow for the connected wallet: fetch nonce,
// build the message, obtain the signature, submit, transition to Signed.
// Any step's failure leaves the session state unchanged, so a retry from
// the same starting state is always safe.
func (s *AuthService) SignIn(ctx context.Context) error {
	s.mu.Lock()
	if s.session.Status() == domain.SessionOffline {
		s.mu.Unlock()
		return apperror.Precondition("wallet is not connected")
	}
	if s.cancel != nil {
		// One challenge per session; the older flow is dropped.
		s.cancel()
	}
	flowCtx, cancel := context.WithCancel(ctx)
	s.cancel = cancel
	gen := s.generation
	address := s.session.Address()
	s.mu.Unlock()

	nonce, err := s.backend.GetNonce(flowCtx)
	if err != nil {
		return s.guard(gen, err)
	}

	message := s.siwe.FormatMessage(ChallengeParams{
		Domain:    s.cfg.Domain,
		Address:   address,
		Statement: s.cfg.Statement,
		URI:       s.cfg.URI,
		ChainID:   s.cfg.ChainID,
		Nonce:     nonce,
		IssuedAt:  s.now().UTC().Format(time.RFC3339),
	})

	signature, err := s.signer.PersonalSign(flowCtx, message, address)
	if err != nil {
		return s.guard(gen, signerErr(err))
	}

	token, err := s.backend.SubmitAuth(flowCtx, ports.AuthSubmission{
		Message:   message,
		Signature: signature,
		Address:   address,
	})
	if err != nil {
		return s.guard(gen, err)
	}

	// The session remains authoritative on the server side; expiry here is
	// advisory and an opaque token simply has none.
	expiresAt, _ := TokenExpiry(token)

	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return apperror.ErrSuperseded()
	}
	s.session.SetNonce(nonce)
	s.session.SetSigned(token, expiresAt)
	s.cancel = nil
	s.log.Info().Str("address", address).Time("expires_at", expiresAt).Msg("session signed")
	return nil
}

// Disconnect cancels any pending flow, tears the wallet session down and
// resets to Offline.
func (s *AuthService) Disconnect(ctx context.Context) error {
	s.supersede()

	err := s.signer.Disconnect(ctx)
	s.session.Reset()
	s.log.Info().Msg("wallet disconnected")
	if err != nil {
		return signerErr(err)
	}
	return nil
}

// supersede cancels a pending flow and starts a new generation. Results
// carrying an older generation are discarded when they arrive.
func (s *AuthService) supersede() uint64 {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.cancel != nil {
		s.cancel()
		s.cancel = nil
	}
	s.generation++
	return s.generation
}

// guard maps errors from a superseded flow to ErrSuperseded so a stale
// failure never masquerades as a current one.
func (s *AuthService) guard(gen uint64, err error) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if gen != s.generation {
		return apperror.ErrSuperseded()
	}
	return err
}

// signerErr keeps typed errors intact and wraps foreign signer failures.
func signerErr(err error) error {
	var appErr *apperror.AppError
	if errors.As(err, &appErr) {
		return err
	}
	return apperror.ErrSigner(err)
}
