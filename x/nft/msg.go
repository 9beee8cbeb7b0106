package nft

import (
	"github.com/iov-one/weave"
	"github.com/iov-one/weave/errors"
	"github.com/iov-one/weave/migration"
)

func init() {
	migration.MustRegister(1, &IssueTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &TransferTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &BurnTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeTokenMsg{}, migration.NoModification)
	migration.MustRegister(1, &ApproveAllMsg{}, migration.NoModification)
	migration.MustRegister(1, &RevokeAllMsg{}, migration.NoModification)
	migration.MustRegister(1, &UpdateConfigurationMsg{}, migration.NoModification)
}

var _ weave.Msg = (*IssueTokenMsg)(nil)

func (IssueTokenMsg) Path() string {
	return "nft/issue_token"
}

func (m *IssueTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenId))
	errs = errors.AppendField(errs, "Owner", m.Owner.Validate())
	return errs
}

var _ weave.Msg = (*TransferTokenMsg)(nil)

func (TransferTokenMsg) Path() string {
	return "nft/transfer_token"
}

func (m *TransferTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenId))
	errs = errors.AppendField(errs, "Recipient", m.Recipient.Validate())
	return errs
}

var _ weave.Msg = (*BurnTokenMsg)(nil)

func (BurnTokenMsg) Path() string {
	return "nft/burn_token"
}

func (m *BurnTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenId))
	return errs
}

var _ weave.Msg = (*ApproveTokenMsg)(nil)

func (ApproveTokenMsg) Path() string {
	return "nft/approve_token"
}

func (m *ApproveTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenId))
	errs = errors.AppendField(errs, "Spender", m.Spender.Validate())
	return errs
}

var _ weave.Msg = (*RevokeTokenMsg)(nil)

func (RevokeTokenMsg) Path() string {
	return "nft/revoke_token"
}

func (m *RevokeTokenMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "TokenID", validateTokenID(m.TokenId))
	return errs
}

var _ weave.Msg = (*ApproveAllMsg)(nil)

func (ApproveAllMsg) Path() string {
	return "nft/approve_all"
}

func (m *ApproveAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	if m.ExpiresAt < 0 {
		errs = errors.AppendField(errs, "ExpiresAt", errors.Wrap(errors.ErrInput, "must be non negative"))
	}
	return errs
}

var _ weave.Msg = (*RevokeAllMsg)(nil)

func (RevokeAllMsg) Path() string {
	return "nft/revoke_all"
}

func (m *RevokeAllMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	errs = errors.AppendField(errs, "Operator", m.Operator.Validate())
	return errs
}

var _ weave.Msg = (*UpdateConfigurationMsg)(nil)

func (UpdateConfigurationMsg) Path() string {
	return "nft/update_configuration"
}

func (m *UpdateConfigurationMsg) Validate() error {
	var errs error
	errs = errors.AppendField(errs, "Metadata", m.Metadata.Validate())
	if m.Patch == nil {
		errs = errors.AppendField(errs, "Patch", errors.ErrEmpty)
	}
	return errs
}

// maxTokenIDLength bounds the size of a token identifier. The exact format
// is configured via the ValidTokenId configuration value and enforced when
// issuing.
const maxTokenIDLength = 256

// validateTokenID performs a stateless token ID validation. Configuration
// dependent rules are checked by the issue handler.
func validateTokenID(tokenID string) error {
	if tokenID == "" {
		return errors.Wrap(errors.ErrEmpty, "cannot be empty")
	}
	if len(tokenID) > maxTokenIDLength {
		return errors.Wrap(errors.ErrInput, "too long")
	}
	return nil
}
