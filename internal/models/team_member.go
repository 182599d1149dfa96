package models

type MemberStatus string

const (
	MemberStatusActive  MemberStatus = "active"
	MemberStatusIdle    MemberStatus = "idle"
	MemberStatusWorking MemberStatus = "working"
)

func (s MemberStatus) Valid() bool {
	switch s {
	case MemberStatusActive, MemberStatusIdle, MemberStatusWorking:
		return true
	}
	return false
}

// RoleLeader is the role string the dashboard treats specially: the leader
// sorts first in team listings. The store does not enforce that only one
// member carries it.
const RoleLeader = "Leader"

type TeamMember struct {
	ID          uint64       `gorm:"primarykey" json:"id"`
	Name        string       `gorm:"not null" json:"name"`
	Role        string       `gorm:"not null;index" json:"role"`
	Status      MemberStatus `gorm:"type:varchar(20);not null;default:'idle'" json:"status"`
	Avatar      *string      `json:"avatar"`
	Description *string      `gorm:"type:text" json:"description"`
}

func (TeamMember) TableName() string {
	return "team"
}
