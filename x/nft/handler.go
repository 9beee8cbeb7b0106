package nft

import (
	"regexp"

	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/gconf"
	"github.com/iov-one/weave/migration"
	"github.com/iov-one/weave/orm"
	"github.com/iov-one/weave/x"
)

func RegisterQuery(qr weave.QueryRouter) {
	NewTokenBucket().Register("tokens", qr)
	NewOperatorBucket().Register("operators", qr)
}

func RegisterRoutes(r weave.Registry, auth x.Authenticator) {
	r = migration.SchemaMigratingRegistry("nft", r)

	tokens := NewTokenBucket()
	operators := NewOperatorBucket()
	burned := NewBurnedBucket()
	counter := NewCounterBucket()

	r.Handle(&IssueTokenMsg{}, &issueTokenHandler{
		auth:    auth,
		tokens:  tokens,
		burned:  burned,
		counter: counter,
	})
	r.Handle(&TransferTokenMsg{}, &transferTokenHandler{
		auth:      auth,
		tokens:    tokens,
		operators: operators,
	})
	r.Handle(&BurnTokenMsg{}, &burnTokenHandler{
		auth:      auth,
		tokens:    tokens,
		operators: operators,
		burned:    burned,
		counter:   counter,
	})
	r.Handle(&ApproveTokenMsg{}, &approveTokenHandler{
		auth:   auth,
		tokens: tokens,
	})
	r.Handle(&RevokeTokenMsg{}, &revokeTokenHandler{
		auth:   auth,
		tokens: tokens,
	})
	r.Handle(&ApproveAllMsg{}, &approveAllHandler{
		auth:      auth,
		operators: operators,
	})
	r.Handle(&RevokeAllMsg{}, &revokeAllHandler{
		auth:      auth,
		operators: operators,
	})

	r.Handle(&UpdateConfigurationMsg{}, gconf.NewUpdateConfigurationHandler(
		"nft", &Configuration{}, auth, migration.CurrentAdmin))
}

// canSend returns nil if the transaction is authorized to transfer or burn
// the given token. The signer qualifies as the token owner, as the approved
// spender or as an active operator of the owner. Checked in that order.
func canSend(ctx weave.Context, auth x.Authenticator, db weave.KVStore, operators orm.ModelBucket, token *TokenInfo) error {
	if auth.HasAddress(ctx, token.Owner) {
		return nil
	}
	if len(token.Approved) != 0 && auth.HasAddress(ctx, token.Approved) {
		return nil
	}
	height, _ := weave.GetHeight(ctx)
	for _, c := range auth.GetConditions(ctx) {
		var grant OperatorGrant
		switch err := operators.One(db, grantKey(token.Owner, c.Address()), &grant); {
		case err == nil:
			if grant.Active(height) {
				return nil
			}
		case errors.ErrNotFound.Is(err):
			// Not an operator.
		default:
			return errors.Wrap(err, "cannot check operator grant")
		}
	}
	return errors.Wrap(errors.ErrUnauthorized, "neither owner, approved spender nor active operator")
}

type issueTokenHandler struct {
	auth    x.Authenticator
	tokens  orm.ModelBucket
	burned  orm.ModelBucket
	counter orm.ModelBucket
}

func (h *issueTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *issueTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	token := TokenInfo{
		Metadata: &weave.Metadata{Schema: 1},
		Owner:    msg.Owner,
	}
	if _, err := h.tokens.Put(db, []byte(msg.TokenId), &token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	if err := addTokenCount(db, h.counter, 1); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(msg.TokenId)}, nil
}

func (h *issueTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*IssueTokenMsg, error) {
	var msg IssueTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	conf, err := loadConf(db)
	if err != nil {
		return nil, errors.Wrap(err, "cannot load configuration")
	}
	if !h.auth.HasAddress(ctx, conf.Minter) {
		return nil, errors.Wrap(errors.ErrUnauthorized, "minter signature required")
	}

	validTokenID, err := regexp.Compile(conf.ValidTokenId)
	if err != nil {
		return nil, errors.Wrap(err, "cannot compile token ID validation rule")
	}
	if !validTokenID.MatchString(msg.TokenId) {
		return nil, errors.Wrapf(errors.ErrInput, "token ID does not match %q", conf.ValidTokenId)
	}

	switch err := h.tokens.Has(db, []byte(msg.TokenId)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrDuplicate, "token %q already issued", msg.TokenId)
	case errors.ErrNotFound.Is(err):
		// All good. Token ID is not taken yet.
	default:
		return nil, errors.Wrap(err, "cannot check if token ID is unique")
	}

	switch err := h.burned.Has(db, []byte(msg.TokenId)); {
	case err == nil:
		return nil, errors.Wrapf(errors.ErrState, "token %q was burned and cannot be issued again", msg.TokenId)
	case errors.ErrNotFound.Is(err):
		// All good. Token ID was never burned.
	default:
		return nil, errors.Wrap(err, "cannot check burn registry")
	}

	return &msg, nil
}

type transferTokenHandler struct {
	auth      x.Authenticator
	tokens    orm.ModelBucket
	operators orm.ModelBucket
}

func (h *transferTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *transferTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	token.Owner = msg.Recipient
	// A change of hands voids the spender approval, also when the owner
	// transfers to themselves.
	token.Approved = nil
	if _, err := h.tokens.Put(db, []byte(msg.TokenId), token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{Data: []byte(msg.TokenId)}, nil
}

func (h *transferTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*TransferTokenMsg, *TokenInfo, error) {
	var msg TransferTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var token TokenInfo
	if err := h.tokens.One(db, []byte(msg.TokenId), &token); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get token from database")
	}

	if err := canSend(ctx, h.auth, db, h.operators, &token); err != nil {
		return nil, nil, err
	}

	return &msg, &token, nil
}

type burnTokenHandler struct {
	auth      x.Authenticator
	tokens    orm.ModelBucket
	operators orm.ModelBucket
	burned    orm.ModelBucket
	counter   orm.ModelBucket
}

func (h *burnTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *burnTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	if err := h.tokens.Delete(db, []byte(msg.TokenId)); err != nil {
		return nil, errors.Wrap(err, "cannot delete token")
	}
	height, _ := weave.GetHeight(ctx)
	record := BurnRecord{
		Metadata: &weave.Metadata{Schema: 1},
		Height:   height,
	}
	if _, err := h.burned.Put(db, []byte(msg.TokenId), &record); err != nil {
		return nil, errors.Wrap(err, "cannot store burn record")
	}
	if err := addTokenCount(db, h.counter, -1); err != nil {
		return nil, err
	}
	return &weave.DeliverResult{Data: []byte(msg.TokenId)}, nil
}

func (h *burnTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*BurnTokenMsg, error) {
	var msg BurnTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, errors.Wrap(err, "load msg")
	}

	var token TokenInfo
	if err := h.tokens.One(db, []byte(msg.TokenId), &token); err != nil {
		return nil, errors.Wrap(err, "cannot get token from database")
	}

	if err := canSend(ctx, h.auth, db, h.operators, &token); err != nil {
		return nil, err
	}

	return &msg, nil
}

type approveTokenHandler struct {
	auth   x.Authenticator
	tokens orm.ModelBucket
}

func (h *approveTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *approveTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	token.Approved = msg.Spender
	if _, err := h.tokens.Put(db, []byte(msg.TokenId), token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{Data: []byte(msg.TokenId)}, nil
}

func (h *approveTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveTokenMsg, *TokenInfo, error) {
	var msg ApproveTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var token TokenInfo
	if err := h.tokens.One(db, []byte(msg.TokenId), &token); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get token from database")
	}

	// Operators cannot manage per token approvals.
	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the token owner can approve")
	}

	return &msg, &token, nil
}

type revokeTokenHandler struct {
	auth   x.Authenticator
	tokens orm.ModelBucket
}

func (h *revokeTokenHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *revokeTokenHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, token, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	token.Approved = nil
	if _, err := h.tokens.Put(db, []byte(msg.TokenId), token); err != nil {
		return nil, errors.Wrap(err, "cannot store token")
	}
	return &weave.DeliverResult{Data: []byte(msg.TokenId)}, nil
}

func (h *revokeTokenHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeTokenMsg, *TokenInfo, error) {
	var msg RevokeTokenMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	var token TokenInfo
	if err := h.tokens.One(db, []byte(msg.TokenId), &token); err != nil {
		return nil, nil, errors.Wrap(err, "cannot get token from database")
	}

	if !h.auth.HasAddress(ctx, token.Owner) {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "only the token owner can revoke")
	}

	return &msg, &token, nil
}

type approveAllHandler struct {
	auth      x.Authenticator
	operators orm.ModelBucket
}

func (h *approveAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *approveAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Overwrite any previous grant for this pair.
	grant := OperatorGrant{
		Metadata:  &weave.Metadata{Schema: 1},
		Owner:     owner,
		Operator:  msg.Operator,
		ExpiresAt: msg.ExpiresAt,
	}
	if _, err := h.operators.Put(db, grantKey(owner, msg.Operator), &grant); err != nil {
		return nil, errors.Wrap(err, "cannot store operator grant")
	}
	return &weave.DeliverResult{}, nil
}

func (h *approveAllHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*ApproveAllMsg, weave.Address, error) {
	var msg ApproveAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	owner := x.AnySigner(ctx, h.auth).Address()
	if len(owner) == 0 {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "message must be signed")
	}

	if msg.ExpiresAt != 0 {
		if height, _ := weave.GetHeight(ctx); msg.ExpiresAt <= height {
			return nil, nil, errors.Wrapf(errors.ErrExpired, "expiration height %d is not in the future", msg.ExpiresAt)
		}
	}

	return &msg, owner, nil
}

type revokeAllHandler struct {
	auth      x.Authenticator
	operators orm.ModelBucket
}

func (h *revokeAllHandler) Check(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.CheckResult, error) {
	if _, _, err := h.validate(ctx, db, tx); err != nil {
		return nil, err
	}
	return &weave.CheckResult{GasAllocated: 0}, nil
}

func (h *revokeAllHandler) Deliver(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*weave.DeliverResult, error) {
	msg, owner, err := h.validate(ctx, db, tx)
	if err != nil {
		return nil, err
	}

	// Removing a grant that does not exist is a noop.
	if err := h.operators.Delete(db, grantKey(owner, msg.Operator)); err != nil && !errors.ErrNotFound.Is(err) {
		return nil, errors.Wrap(err, "cannot delete operator grant")
	}
	return &weave.DeliverResult{}, nil
}

func (h *revokeAllHandler) validate(ctx weave.Context, db weave.KVStore, tx weave.Tx) (*RevokeAllMsg, weave.Address, error) {
	var msg RevokeAllMsg
	if err := weave.LoadMsg(tx, &msg); err != nil {
		return nil, nil, errors.Wrap(err, "load msg")
	}

	owner := x.AnySigner(ctx, h.auth).Address()
	if len(owner) == 0 {
		return nil, nil, errors.Wrap(errors.ErrUnauthorized, "message must be signed")
	}

	return &msg, owner, nil
}
