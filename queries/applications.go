package queries

import (
	"github.com/pkg/errors"
	"gitlab.com/ainativeclub/portal_api/model"
	"gorm.io/gorm"
)

// InsertApplication appends a new application row. Applications are
// append-only; a resubmission creates a second row instead of updating
// the first one.
func (repo *Repo) InsertApplication(application *model.Application) error {
	if db := repo.Conn.Create(application); db.Error != nil {
		return errors.Wrap(db.Error, "insert application")
	}
	return nil
}

// GetLatestApplicationByEmail returns the most recent application for
// the given email, or nil when the applicant never submitted one.
func (repo *Repo) GetLatestApplicationByEmail(email string) (*model.Application, error) {
	application := model.Application{}
	db := repo.Conn.
		Where("email = ?", email).
		Order("created_at DESC").
		First(&application)
	if db.Error != nil {
		if errors.Is(db.Error, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, errors.Wrap(db.Error, "get latest application")
	}
	return &application, nil
}
