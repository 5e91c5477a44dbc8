package session

import (
	"errors"

	"golang.org/x/crypto/bcrypt"

	"github.com/campuslite/campuslite/core"
)

const storageKey = "user"

var (
	// errors
	ErrInvalidAdminCredentials = errors.New("invalid admin credentials")
	ErrCredentialsRequired     = errors.New("username and password required")
	ErrUnknownRole             = errors.New("unknown role")
	ErrNoSession               = errors.New("no active session")
)

type (
	// CredentialChecker is any capability that can verify an admin credential
	// pair. It exists so the fixed built-in account can be swapped for a real
	// verifier if this system ever gains a backend.
	CredentialChecker interface {
		Check(username, password string) error
	}

	// Service gates access behind a login and owns the persisted session.
	Service struct {
		store *core.Store
		admin CredentialChecker
	}
)

func NewService(store *core.Store, admin CredentialChecker) *Service {
	return &Service{store: store, admin: admin}
}

// Login validates the credential pair for the chosen role and persists the
// resulting session. Admin logins go through the credential checker; student
// logins accept any non-empty pair (there is no student registry to check
// against). Failure leaves any prior session untouched.
func (svc *Service) Login(username, password, role string) (Session, error) {
	username = core.CleanString(username)

	switch role {
	case RoleAdmin:
		if err := svc.admin.Check(username, password); err != nil {
			return Session{}, err
		}
	case RoleStudent:
		if username == "" || password == "" {
			return Session{}, ErrCredentialsRequired
		}
	default:
		return Session{}, ErrUnknownRole
	}

	sess := Session{Username: username, Role: role}
	if err := svc.store.Write(storageKey, sess); err != nil {
		return Session{}, err
	}
	return sess, nil
}

// Current restores the persisted session, if any. The session is trusted as
// is: no expiry, no revalidation.
func (svc *Service) Current() (Session, error) {
	var sess Session
	svc.store.Read(storageKey, &sess)
	if sess.Username == "" {
		return Session{}, ErrNoSession
	}
	return sess, nil
}

// Logout clears the persisted session. Logging out with no active session is
// a no-op.
func (svc *Service) Logout() error {
	return svc.store.Delete(storageKey)
}

// fixedAdminChecker verifies against the one built-in admin account. The
// password is kept as a bcrypt hash from construction on.
type fixedAdminChecker struct {
	username string
	hash     []byte
}

// NewFixedAdminChecker builds the credential checker for the configured
// admin account.
func NewFixedAdminChecker(conf *core.Config) (CredentialChecker, error) {
	hash, err := bcrypt.GenerateFromPassword([]byte(conf.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}
	return &fixedAdminChecker{username: conf.AdminUsername, hash: hash}, nil
}

func (c *fixedAdminChecker) Check(username, password string) error {
	if username != c.username {
		return ErrInvalidAdminCredentials
	}
	if err := bcrypt.CompareHashAndPassword(c.hash, []byte(password)); err != nil {
		return ErrInvalidAdminCredentials
	}
	return nil
}
