package queries

import (
	"github.com/pkg/errors"
	"gitlab.com/ainativeclub/portal_api/model"
)

// ErrMultipleMembers is returned when more than one member row exists
// for a single identity. Membership rows are managed by hand, so the
// lookup refuses to pick one arbitrarily instead of trusting the data.
var ErrMultipleMembers = errors.New("multiple member records for one identity")

// GetMemberByUserID looks up the membership record for an identity
// provider user id on the privileged connection. A missing row is the
// normal case for non-members and returns (nil, nil), not an error.
func (repo *Repo) GetMemberByUserID(userID string) (*model.Member, error) {
	var members []model.Member
	db := repo.ConnReaderAdmin.
		Where("user_id = ?", userID).
		Limit(2).
		Find(&members)
	if db.Error != nil {
		return nil, errors.Wrap(db.Error, "get member")
	}
	switch len(members) {
	case 0:
		return nil, nil
	case 1:
		return &members[0], nil
	default:
		return nil, ErrMultipleMembers
	}
}
