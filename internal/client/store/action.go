package store

import (
	"fmt"
	"strings"
)

// Phase tags an Action with its place in a request lifecycle. Synchronous
// actions use PhaseNone.
type Phase int

const (
	PhaseNone Phase = iota
	PhasePending
	PhaseFulfilled
	PhaseRejected
)

func (p Phase) String() string {
	switch p {
	case PhaseNone:
		return "none"
	case PhasePending:
		return "pending"
	case PhaseFulfilled:
		return "fulfilled"
	case PhaseRejected:
		return "rejected"
	default:
		return fmt.Sprintf("Phase(%d)", int(p))
	}
}

// ActionType names an operation as "<slice>/<operation>".
type ActionType string

const (
	AuthRestore       ActionType = "auth/restore"
	AuthRegister      ActionType = "auth/register"
	AuthLogin         ActionType = "auth/login"
	AuthGetProfile    ActionType = "auth/getProfile"
	AuthUpdateProfile ActionType = "auth/updateProfile"
	AuthUpdateAvatar  ActionType = "auth/updateAvatar"
	AuthLogout        ActionType = "auth/logout"
	AuthClearError    ActionType = "auth/clearError"

	ProjectsFetch        ActionType = "projects/fetchProjects"
	ProjectsFetchByID    ActionType = "projects/fetchProjectById"
	ProjectsFetchByUser  ActionType = "projects/fetchUserProjects"
	ProjectsCreate       ActionType = "projects/createProject"
	ProjectsUpdate       ActionType = "projects/updateProject"
	ProjectsDelete       ActionType = "projects/deleteProject"
	ProjectsClearError   ActionType = "projects/clearError"
	ProjectsClearCurrent ActionType = "projects/clearCurrentProject"

	UsersFetch           ActionType = "users/fetchUsers"
	UsersFetchByID       ActionType = "users/fetchUserById"
	UsersFetchByUsername ActionType = "users/fetchUserByUsername"
	UsersClearError      ActionType = "users/clearError"
	UsersClearCurrent    ActionType = "users/clearCurrentUser"

	CommentsFetchByProject ActionType = "comments/fetchComments"
	CommentsCreate         ActionType = "comments/createComment"
	CommentsUpdate         ActionType = "comments/updateComment"
	CommentsDelete         ActionType = "comments/deleteComment"
	CommentsClearError     ActionType = "comments/clearError"
	CommentsClear          ActionType = "comments/clearComments"
)

// Slice returns the part of the type before the slash.
func (t ActionType) Slice() string {
	slice, _, _ := strings.Cut(string(t), "/")
	return slice
}

// Action is a single state transition request.
//
// Payload depends on Type and Phase: fulfilled auth/register and auth/login
// carry models.AuthResult, the other fulfilled auth operations carry
// models.User, list fetches carry a page, single fetches, creates and updates
// carry the entity, deletes carry the deleted id, and auth/restore carries a
// session.Snapshot. Rejected actions carry the derived message in Error.
type Action struct {
	Type      ActionType
	Phase     Phase
	RequestID string
	Payload   any
	Error     string
}

func (a Action) String() string {
	if a.Phase == PhaseNone {
		return string(a.Type)
	}
	return string(a.Type) + "/" + a.Phase.String()
}
