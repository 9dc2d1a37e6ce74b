package queries

import (
	"gitlab.com/ainativeclub/portal_api/model"
)

// InsertWaitlistEntry inserts a waitlist row. The table carries a
// uniqueness constraint on email; callers use IsUniqueViolation to
// recognize a duplicate signup.
func (repo *Repo) InsertWaitlistEntry(entry *model.WaitlistEntry) error {
	if db := repo.Conn.Create(entry); db.Error != nil {
		return db.Error
	}
	return nil
}
