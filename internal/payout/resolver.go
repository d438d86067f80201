package payout

import (
	"context"
	"encoding/json"
	"fmt"

	"github.com/luckstr/luckstr-go/internal/domain"
	"github.com/luckstr/luckstr-go/internal/logger"
	"github.com/luckstr/luckstr-go/internal/lottery"
)

// profileContent is the subset of a kind-0 metadata document the payout
// path cares about. The lud16 field is a lightning address in user@domain
// form, which is why the email format check applies.
type profileContent struct {
	Lud16 string `json:"lud16" validate:"required,email"`
}

// ResolveAddress looks up the winner's lightning address from their
// profile metadata. Anything short of a well-formed lud16 fails the
// resolution; there is no fallback destination to guess at.
func (s *Service) ResolveAddress(ctx context.Context, session lottery.RelaySession, pubkey string) (string, error) {
	if address, ok := s.addresses.Get(pubkey); ok {
		return address, nil
	}

	content, err := session.ProfileMetadata(ctx, pubkey)
	if err != nil {
		return "", fmt.Errorf("%w: %v", domain.ErrNoPayoutAddress, err)
	}

	var profile profileContent
	if err := json.Unmarshal([]byte(content), &profile); err != nil {
		return "", fmt.Errorf("%w: malformed profile metadata", domain.ErrNoPayoutAddress)
	}
	if err := s.validate.Struct(profile); err != nil {
		return "", fmt.Errorf("%w: pubkey %s has no usable lightning address", domain.ErrNoPayoutAddress, pubkey)
	}

	s.addresses.Add(pubkey, profile.Lud16)
	logger.FromContext(ctx).Info(LogMsgAddressResolved, "pubkey", pubkey, "address", profile.Lud16)
	return profile.Lud16, nil
}
