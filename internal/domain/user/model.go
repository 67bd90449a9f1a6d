package user

import "github.com/dawarpower/fitcoach-api/internal/domain/exercise"

// User is a stored member profile. There is no authentication layer; the
// password field is carried verbatim the way the legacy records hold it.
type User struct {
	UserID   int64              `json:"userId"`
	Name     string             `json:"name"`
	Email    string             `json:"email"`
	Password string             `json:"password"`
	Exercise *exercise.Exercise `json:"exercise"`
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	Name     *string            `json:"name"`
	Email    *string            `json:"email"`
	Password *string            `json:"password"`
	Exercise *exercise.Exercise `json:"exercise"`
}

func (u Update) apply(record User) User {
	if u.Name != nil {
		record.Name = *u.Name
	}
	if u.Email != nil {
		record.Email = *u.Email
	}
	if u.Password != nil {
		record.Password = *u.Password
	}
	if u.Exercise != nil {
		record.Exercise = u.Exercise
	}
	return record
}
