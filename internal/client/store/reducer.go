package store

import (
	"github.com/dmitrijs2005/devshowcase/internal/client/repositories/session"
	"github.com/dmitrijs2005/devshowcase/internal/models"
)

// Reduce returns the state that results from applying a to s. It is pure:
// s is never modified and unknown actions return s unchanged.
func Reduce(s State, a Action) State {
	switch a.Type.Slice() {
	case "auth":
		s.Auth = reduceAuth(s.Auth, a)
	case "projects":
		s.Projects = reduceProjects(s.Projects, a)
	case "users":
		s.Users = reduceUsers(s.Users, a)
	case "comments":
		s.Comments = reduceComments(s.Comments, a)
	}
	return s
}

func projectID(p models.Project) string { return p.ID }
func commentID(c models.Comment) string { return c.ID }

func reduceAuth(s AuthState, a Action) AuthState {
	switch a.Phase {
	case PhasePending:
		s.Status = pending()
	case PhaseRejected:
		s.Status = rejected(a.Error)
	case PhaseFulfilled:
		s.Status = fulfilled()
		switch p := a.Payload.(type) {
		case models.AuthResult:
			s.Token = p.Token
			s.User = ptr(p.User.Clone())
		case models.User:
			// a user without a session is never shown
			if s.Token != "" {
				s.User = ptr(p.Clone())
			}
		}
	case PhaseNone:
		switch a.Type {
		case AuthRestore:
			if snap, ok := a.Payload.(session.Snapshot); ok {
				s.Token = snap.Token
				s.User = nil
				if snap.Token != "" {
					s.User = snap.User
				}
			}
		case AuthLogout:
			s = AuthState{}
		case AuthClearError:
			s.Error = ""
		}
	}
	s.IsAuthenticated = s.Token != ""
	return s
}

func reduceProjects(s ProjectsState, a Action) ProjectsState {
	switch a.Phase {
	case PhasePending:
		s.Status = pending()
		return s
	case PhaseRejected:
		s.Status = rejected(a.Error)
		return s
	case PhaseNone:
		switch a.Type {
		case ProjectsClearError:
			s.Error = ""
		case ProjectsClearCurrent:
			s.Current = nil
		}
		return s
	}

	s.Status = fulfilled()
	switch a.Type {
	case ProjectsFetch, ProjectsFetchByUser:
		if page, ok := a.Payload.(models.ProjectPage); ok {
			s.Items = page.Projects
			s.Pagination = page.Pagination
		}
	case ProjectsFetchByID:
		if p, ok := a.Payload.(models.Project); ok {
			s.Current = &p
		}
	case ProjectsCreate:
		if p, ok := a.Payload.(models.Project); ok {
			s.Items = prepend(s.Items, p)
		}
	case ProjectsUpdate:
		if p, ok := a.Payload.(models.Project); ok {
			s.Items = replaceByID(s.Items, p, projectID)
			if s.Current != nil && s.Current.ID == p.ID {
				s.Current = &p
			}
		}
	case ProjectsDelete:
		if id, ok := a.Payload.(string); ok {
			s.Items = removeByID(s.Items, id, projectID)
			if s.Current != nil && s.Current.ID == id {
				s.Current = nil
			}
		}
	}
	return s
}

func reduceUsers(s UsersState, a Action) UsersState {
	switch a.Phase {
	case PhasePending:
		s.Status = pending()
		return s
	case PhaseRejected:
		s.Status = rejected(a.Error)
		return s
	case PhaseNone:
		switch a.Type {
		case UsersClearError:
			s.Error = ""
		case UsersClearCurrent:
			s.Current = nil
		}
		return s
	}

	s.Status = fulfilled()
	switch a.Type {
	case UsersFetch:
		if page, ok := a.Payload.(models.UserPage); ok {
			s.Items = page.Users
			s.Pagination = page.Pagination
		}
	case UsersFetchByID, UsersFetchByUsername:
		if u, ok := a.Payload.(models.User); ok {
			s.Current = &u
		}
	}
	return s
}

func reduceComments(s CommentsState, a Action) CommentsState {
	switch a.Phase {
	case PhasePending:
		s.Status = pending()
		return s
	case PhaseRejected:
		s.Status = rejected(a.Error)
		return s
	case PhaseNone:
		switch a.Type {
		case CommentsClearError:
			s.Error = ""
		case CommentsClear:
			s.Items = nil
			s.Pagination = nil
		}
		return s
	}

	s.Status = fulfilled()
	switch a.Type {
	case CommentsFetchByProject:
		if page, ok := a.Payload.(models.CommentPage); ok {
			s.Items = page.Comments
			s.Pagination = page.Pagination
		}
	case CommentsCreate:
		if c, ok := a.Payload.(models.Comment); ok {
			s.Items = prepend(s.Items, c)
		}
	case CommentsUpdate:
		if c, ok := a.Payload.(models.Comment); ok {
			s.Items = replaceByID(s.Items, c, commentID)
		}
	case CommentsDelete:
		if id, ok := a.Payload.(string); ok {
			s.Items = removeByID(s.Items, id, commentID)
		}
	}
	return s
}
