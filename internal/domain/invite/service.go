package invite

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"

	"github.com/assethub/hub-api/internal/domain/coin"
)

const mintAttempts = 30

type Service struct {
	repo      *Repository
	coins     *coin.Service
	batchSize int
}

func NewService(repo *Repository, coins *coin.Service, batchSize int) *Service {
	if batchSize <= 0 {
		batchSize = 6
	}
	return &Service{repo: repo, coins: coins, batchSize: batchSize}
}

// ActivationResult describes a successful activation: the codes minted for
// the new member and who, if anyone, was rewarded for the invite.
type ActivationResult struct {
	Code            string   `json:"code"`
	MintedCodes     []string `json:"minted_codes"`
	InviterRewarded bool     `json:"inviter_rewarded"`
}

// Activate redeems a code for a user. The whole cascade is one transaction:
// either the use is consumed, the user is marked, the new codes exist and
// the inviter is paid, or none of it happened.
func (s *Service) Activate(ctx context.Context, userID uuid.UUID, codeStr string) (*ActivationResult, error) {
	tx, err := s.repo.BeginTx(ctx)
	if err != nil {
		return nil, err
	}
	defer tx.Rollback()

	activated, err := s.repo.LockUserInviteTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}
	if activated != nil {
		return nil, ErrAlreadyActivated
	}

	code, err := s.repo.LockCodeTx(ctx, tx, codeStr)
	if err != nil {
		return nil, err
	}
	if code.UseCount >= code.MaxUses {
		return nil, ErrCodeExhausted
	}
	if code.ExpiresAt != nil && time.Now().After(*code.ExpiresAt) {
		return nil, ErrCodeExpired
	}

	if err := s.repo.ConsumeTx(ctx, tx, code.Code); err != nil {
		return nil, err
	}
	if err := s.repo.SetUserCodeTx(ctx, tx, userID, code.Code); err != nil {
		return nil, err
	}

	minted, err := s.mintBatchTx(ctx, tx, userID)
	if err != nil {
		return nil, err
	}

	rewarded := false
	if inviter, ok := parseInviter(code.CreatedBy); ok && inviter != userID {
		switch err := s.coins.AwardTx(ctx, tx, inviter, coin.EventInviteUser, userID.String()); {
		case err == nil:
			rewarded = true
		case errors.Is(err, coin.ErrUserNotFound):
			// Seeded or imported codes can name a creator with no account.
			// The reward is dropped, the activation still commits.
			log.Warn().
				Str("code", code.Code).
				Str("created_by", code.CreatedBy).
				Msg("inviter reward dropped: creator missing")
		default:
			return nil, err
		}
	}

	if err := tx.Commit(); err != nil {
		return nil, err
	}

	return &ActivationResult{
		Code:            code.Code,
		MintedCodes:     minted,
		InviterRewarded: rewarded,
	}, nil
}

// mintBatchTx creates the new member's single-use codes, regenerating on
// the rare code collision.
func (s *Service) mintBatchTx(ctx context.Context, tx *sqlx.Tx, createdBy uuid.UUID) ([]string, error) {
	minted := make([]string, 0, s.batchSize)
	for len(minted) < s.batchSize {
		inserted := false
		for attempt := 0; attempt < mintAttempts; attempt++ {
			codeStr, err := newCode()
			if err != nil {
				return nil, err
			}
			ok, err := s.repo.InsertTx(ctx, tx, &Code{
				Code:      codeStr,
				CreatedBy: createdBy.String(),
				MaxUses:   1,
				Type:      TypeNormal,
			})
			if err != nil {
				return nil, err
			}
			if ok {
				minted = append(minted, codeStr)
				inserted = true
				break
			}
		}
		if !inserted {
			return nil, ErrCodegenExhausted
		}
	}
	return minted, nil
}

// parseInviter resolves created_by to a user ID. The system sentinel and
// anything that is not a UUID mean no inviter to pay.
func parseInviter(createdBy string) (uuid.UUID, bool) {
	if createdBy == SystemCreator {
		return uuid.Nil, false
	}
	id, err := uuid.Parse(createdBy)
	if err != nil {
		return uuid.Nil, false
	}
	return id, true
}

// ValidationStatus is the read-only view of a code's redeemability.
type ValidationStatus struct {
	Code     string `json:"code"`
	Valid    bool   `json:"valid"`
	Reason   string `json:"reason,omitempty"`
	UsesLeft int    `json:"uses_left"`
}

// Validate checks a code without consuming anything.
func (s *Service) Validate(ctx context.Context, codeStr string) (*ValidationStatus, error) {
	code, err := s.repo.GetByCode(ctx, codeStr)
	if err != nil {
		return nil, err
	}
	status := &ValidationStatus{Code: code.Code, UsesLeft: code.MaxUses - code.UseCount}
	if code.Usable(time.Now()) {
		status.Valid = true
		return status, nil
	}
	if code.UseCount >= code.MaxUses {
		status.Reason = "exhausted"
	} else {
		status.Reason = "expired"
	}
	return status, nil
}

// HasActivated reports whether the user already redeemed a code.
func (s *Service) HasActivated(ctx context.Context, userID uuid.UUID) (bool, error) {
	return s.repo.HasActivated(ctx, userID)
}

// CodesCreatedBy lists the codes a user minted.
func (s *Service) CodesCreatedBy(ctx context.Context, userID uuid.UUID) ([]Code, error) {
	return s.repo.ListByCreator(ctx, userID.String())
}
