package models

import "github.com/dmitrijs2005/devshowcase/internal/timex"

// User is a registered developer profile.
type User struct {
	ID         string     `json:"id"`
	Username   string     `json:"username"`
	Email      string     `json:"email"`
	FullName   string     `json:"fullName"`
	Bio        string     `json:"bio,omitempty"`
	Avatar     string     `json:"avatar,omitempty"`
	Location   string     `json:"location,omitempty"`
	Website    string     `json:"website,omitempty"`
	Skills     []string   `json:"skills,omitempty"`
	JoinedDate timex.Time `json:"joinedDate"`
}

// Clone returns a copy that shares no slices with u.
func (u User) Clone() User {
	u.Skills = append([]string(nil), u.Skills...)
	return u
}

// AuthResult is returned by register and login.
type AuthResult struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// UserPage is one page of the users listing.
type UserPage struct {
	Users      []User      `json:"users"`
	Pagination *Pagination `json:"pagination"`
}
