package repository

import (
	"context"
	"encoding/json"
	"errors"
	"time"

	"github.com/craftfolio/booking-engine/internal/httperr"
	"github.com/craftfolio/booking-engine/internal/models"
	"github.com/craftfolio/booking-engine/internal/store"
)

// SessionStoreRepository keeps issued sessions and tenant operator
// accounts. Sessions expire through the store TTL, nothing else.
type SessionStoreRepository struct {
	store store.Store
}

func NewSessionStoreRepository(s store.Store) *SessionStoreRepository {
	return &SessionStoreRepository{store: s}
}

func sessionKey(token string) string {
	return "session:" + token
}

func accountKey(tenantID string) string {
	return "tenant:" + tenantID + ":account"
}

func (r *SessionStoreRepository) GetSession(
	ctx context.Context,
	token string,
) (*models.Session, error) {

	b, err := r.store.Get(ctx, sessionKey(token))
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.Unauthenticated("invalid_session", "Session is unknown or expired.")
	}
	if err != nil {
		return nil, httperr.Unavailable("store_unreachable", "Could not verify session.")
	}

	var sess models.Session
	if err := json.Unmarshal(b, &sess); err != nil {
		return nil, httperr.Unauthenticated("invalid_session", "Session is unknown or expired.")
	}
	return &sess, nil
}

func (r *SessionStoreRepository) CreateSession(
	ctx context.Context,
	token string,
	sess *models.Session,
	ttl time.Duration,
) error {

	b, err := json.Marshal(sess)
	if err != nil {
		return err
	}

	if err := r.store.SetTTL(ctx, sessionKey(token), b, ttl); err != nil {
		return httperr.Unavailable("store_unreachable", "Could not create session.")
	}
	return nil
}

func (r *SessionStoreRepository) DeleteSession(ctx context.Context, token string) error {
	return r.store.Delete(ctx, sessionKey(token))
}

func (r *SessionStoreRepository) GetAccount(
	ctx context.Context,
	tenantID string,
) (*models.Account, error) {

	b, err := r.store.Get(ctx, accountKey(tenantID))
	if errors.Is(err, store.ErrNotFound) {
		return nil, httperr.Unauthenticated("invalid_credentials", "Invalid tenant or credentials.")
	}
	if err != nil {
		return nil, httperr.Unavailable("store_unreachable", "Could not verify credentials.")
	}

	var account models.Account
	if err := json.Unmarshal(b, &account); err != nil {
		return nil, httperr.Unauthenticated("invalid_credentials", "Invalid tenant or credentials.")
	}
	return &account, nil
}

func (r *SessionStoreRepository) SaveAccount(
	ctx context.Context,
	tenantID string,
	account *models.Account,
) error {

	b, err := json.Marshal(account)
	if err != nil {
		return err
	}

	if err := r.store.Set(ctx, accountKey(tenantID), b); err != nil {
		return httperr.Unavailable("store_unreachable", "Could not save account.")
	}
	return nil
}

func (r *SessionStoreRepository) HasAccount(ctx context.Context, tenantID string) (bool, error) {
	_, err := r.store.Get(ctx, accountKey(tenantID))
	if errors.Is(err, store.ErrNotFound) {
		return false, nil
	}
	if err != nil {
		return false, httperr.Unavailable("store_unreachable", "Could not check account.")
	}
	return true, nil
}
