package model

import "time"

// MemberStatus defined the list of possible member statuses
type MemberStatus string

const (
	// MemberStatusPending when a member record was created but not yet approved
	MemberStatusPending MemberStatus = "pending"
	// MemberStatusActive when the member has full portal access
	MemberStatusActive MemberStatus = "active"
	// MemberStatusSuspended when the member was suspended by an operator
	MemberStatusSuspended MemberStatus = "suspended"
)

func (s MemberStatus) String() string {
	return string(s)
}

// MemberRole defined the list of possible member roles
type MemberRole string

const (
	MemberRoleMember  MemberRole = "member"
	MemberRoleFounder MemberRole = "founder"
	MemberRoleAdmin   MemberRole = "admin"
)

func (r MemberRole) String() string {
	return string(r)
}

// Member structure
// One record per identity provider user. Created by the out-of-band
// approval process, only ever read by this service.
type Member struct {
	ID        uint64       `gorm:"primary_key" json:"id"`
	UserID    string       `gorm:"column:user_id" json:"user_id"`
	Email     string       `json:"email"`
	Role      MemberRole   `json:"role"`
	Status    MemberStatus `sql:"not null;type:member_status_t" json:"status"`
	CreatedAt time.Time    `json:"created_at"`
	UpdatedAt time.Time    `json:"updated_at"`
}

func (member *Member) IsActive() bool {
	return member.Status == MemberStatusActive
}
