package store

import (
	"testing"

	"github.com/dmitrijs2005/devshowcase/internal/client/repositories/session"
	"github.com/dmitrijs2005/devshowcase/internal/models"
	"github.com/dmitrijs2005/devshowcase/internal/timex"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func project(id, title, created string) models.Project {
	return models.Project{
		ID:           id,
		Title:        title,
		Technologies: []string{"Go"},
		AuthorID:     "1",
		CreatedAt:    timex.MustParse(created),
	}
}

func comment(id, content string) models.Comment {
	return models.Comment{ID: id, Content: content, ProjectID: "p1", AuthorID: "1", Author: models.User{ID: "1"}}
}

func populated() State {
	p1 := project("p1", "One", "2024-01-01")
	u := models.User{ID: "1", Username: "johndoe"}
	return State{
		Auth: AuthState{Token: "tok", User: &u, IsAuthenticated: true, Status: Status{Error: "old"}},
		Projects: ProjectsState{
			Items:      []models.Project{p1, project("p2", "Two", "2024-02-01"), project("p3", "Three", "2024-03-01")},
			Current:    &p1,
			Pagination: &models.Pagination{CurrentPage: 1, TotalPages: 1, TotalItems: 3, ItemsPerPage: 10},
			Status:     Status{Error: "old"},
		},
		Users: UsersState{
			Items:   []models.User{u},
			Current: &u,
			Status:  Status{Error: "old"},
		},
		Comments: CommentsState{
			Items:  []models.Comment{comment("c1", "first"), comment("c2", "second")},
			Status: Status{Error: "old"},
		},
	}
}

var asyncTypes = []ActionType{
	AuthRegister, AuthLogin, AuthGetProfile, AuthUpdateProfile, AuthUpdateAvatar,
	ProjectsFetch, ProjectsFetchByID, ProjectsFetchByUser, ProjectsCreate, ProjectsUpdate, ProjectsDelete,
	UsersFetch, UsersFetchByID, UsersFetchByUsername,
	CommentsFetchByProject, CommentsCreate, CommentsUpdate, CommentsDelete,
}

func statusOf(s State, t ActionType) Status {
	switch t.Slice() {
	case "auth":
		return s.Auth.Status
	case "projects":
		return s.Projects.Status
	case "users":
		return s.Users.Status
	default:
		return s.Comments.Status
	}
}

func TestReduce_PendingSetsLoadingAndClearsError(t *testing.T) {
	for _, typ := range asyncTypes {
		t.Run(string(typ), func(t *testing.T) {
			next := Reduce(populated(), Action{Type: typ, Phase: PhasePending, RequestID: "r1"})
			assert.Equal(t, Status{IsLoading: true}, statusOf(next, typ))
		})
	}
}

func TestReduce_RejectedKeepsCollections(t *testing.T) {
	for _, typ := range asyncTypes {
		t.Run(string(typ), func(t *testing.T) {
			before := Reduce(populated(), Action{Type: typ, Phase: PhasePending})
			after := Reduce(before, Action{Type: typ, Phase: PhaseRejected, Error: "boom"})

			assert.Equal(t, Status{Error: "boom"}, statusOf(after, typ))

			ignoreStatus := cmp.FilterPath(func(p cmp.Path) bool {
				return p.Last().String() == ".Status"
			}, cmp.Ignore())
			if diff := cmp.Diff(before, after, ignoreStatus); diff != "" {
				t.Errorf("rejected action changed data (-before +after):\n%s", diff)
			}
		})
	}
}

func TestReduce_OtherSlicesUntouched(t *testing.T) {
	before := populated()
	after := Reduce(before, Action{Type: CommentsFetchByProject, Phase: PhaseRejected, Error: "boom"})

	assert.Equal(t, before.Projects.Error, after.Projects.Error)
	assert.Equal(t, before.Users.Error, after.Users.Error)
	assert.Equal(t, before.Auth.Error, after.Auth.Error)
}

func TestReduce_AuthenticatedFollowsToken(t *testing.T) {
	u := models.User{ID: "1"}
	steps := []Action{
		{Type: AuthRestore, Payload: session.Snapshot{Token: "stored", User: &u}},
		{Type: AuthGetProfile, Phase: PhasePending},
		{Type: AuthGetProfile, Phase: PhaseRejected, Error: "expired"},
		{Type: AuthLogout},
		{Type: AuthLogin, Phase: PhasePending},
		{Type: AuthLogin, Phase: PhaseRejected, Error: "Invalid credentials"},
		{Type: AuthLogin, Phase: PhasePending},
		{Type: AuthLogin, Phase: PhaseFulfilled, Payload: models.AuthResult{Token: "fresh", User: u}},
		{Type: AuthUpdateProfile, Phase: PhaseFulfilled, Payload: u},
		{Type: AuthClearError},
		{Type: AuthRestore, Payload: session.Snapshot{}},
		{Type: AuthLogout},
	}

	var s State
	for _, a := range steps {
		s = Reduce(s, a)
		assert.Equal(t, s.Auth.Token != "", s.Auth.IsAuthenticated, "after %s", a)
	}
	assert.Equal(t, AuthState{}, s.Auth)
}

func TestReduce_UserWithoutSessionIsIgnored(t *testing.T) {
	u := models.User{ID: "1", Username: "johndoe"}

	s := Reduce(State{}, Action{Type: AuthGetProfile, Phase: PhaseFulfilled, Payload: u})
	assert.Nil(t, s.Auth.User)
	assert.False(t, s.Auth.IsAuthenticated)

	s = Reduce(State{}, Action{Type: AuthRestore, Payload: session.Snapshot{User: &u}})
	assert.Nil(t, s.Auth.User)
}

func TestSelectOwnership_RequiresSession(t *testing.T) {
	u := models.User{ID: "1"}
	p := models.Project{ID: "p1", AuthorID: "1"}
	c := models.Comment{ID: "c1", AuthorID: "1"}

	signedIn := State{Auth: AuthState{Token: "tok", IsAuthenticated: true, User: &u}}
	assert.True(t, SelectIsOwner(signedIn, p))
	assert.True(t, SelectIsCommentAuthor(signedIn, c))

	stale := State{Auth: AuthState{User: &u}}
	assert.False(t, SelectIsOwner(stale, p))
	assert.False(t, SelectIsCommentAuthor(stale, c))
}

func TestReduce_ProfileFailureKeepsToken(t *testing.T) {
	s := populated()
	s = Reduce(s, Action{Type: AuthGetProfile, Phase: PhasePending})
	s = Reduce(s, Action{Type: AuthGetProfile, Phase: PhaseRejected, Error: "Failed to get profile"})

	assert.Equal(t, "tok", s.Auth.Token)
	assert.True(t, s.Auth.IsAuthenticated)
	assert.Equal(t, "Failed to get profile", s.Auth.Error)
}

func TestReduce_CreatePrepends(t *testing.T) {
	s := populated()
	np := project("p9", "New", "2024-05-01")
	s = Reduce(s, Action{Type: ProjectsCreate, Phase: PhaseFulfilled, Payload: np})

	require.Len(t, s.Projects.Items, 4)
	assert.Equal(t, "p9", s.Projects.Items[0].ID)

	nc := comment("c9", "new")
	s = Reduce(s, Action{Type: CommentsCreate, Phase: PhaseFulfilled, Payload: nc})
	require.Len(t, s.Comments.Items, 3)
	assert.Equal(t, "c9", s.Comments.Items[0].ID)
}

func TestReduce_UpdateReplacesInPlace(t *testing.T) {
	before := populated()
	updated := before.Projects.Items[0]
	updated.Title = "Renamed"

	after := Reduce(before, Action{Type: ProjectsUpdate, Phase: PhaseFulfilled, Payload: updated})

	require.Len(t, after.Projects.Items, len(before.Projects.Items))
	if diff := cmp.Diff(updated, after.Projects.Items[0]); diff != "" {
		t.Errorf("item mismatch (-want +got):\n%s", diff)
	}
	require.NotNil(t, after.Projects.Current)
	assert.Equal(t, "Renamed", after.Projects.Current.Title)

	// copy-on-write: the previous snapshot is untouched
	assert.Equal(t, "One", before.Projects.Items[0].Title)
	assert.Equal(t, "One", before.Projects.Current.Title)
}

func TestReduce_UpdateOfOtherItemKeepsCurrent(t *testing.T) {
	before := populated()
	updated := before.Projects.Items[2]
	updated.Title = "Renamed"

	after := Reduce(before, Action{Type: ProjectsUpdate, Phase: PhaseFulfilled, Payload: updated})
	assert.Equal(t, "Renamed", after.Projects.Items[2].Title)
	assert.Equal(t, "One", after.Projects.Current.Title)
}

func TestReduce_UpdateComment(t *testing.T) {
	before := populated()
	c := comment("c2", "edited")
	after := Reduce(before, Action{Type: CommentsUpdate, Phase: PhaseFulfilled, Payload: c})

	require.Len(t, after.Comments.Items, 2)
	assert.Equal(t, "edited", after.Comments.Items[1].Content)
	assert.Equal(t, "second", before.Comments.Items[1].Content)
}

func TestReduce_DeleteRemovesExactlyOne(t *testing.T) {
	before := populated()
	after := Reduce(before, Action{Type: ProjectsDelete, Phase: PhaseFulfilled, Payload: "p2"})

	require.Len(t, after.Projects.Items, 2)
	for _, p := range after.Projects.Items {
		assert.NotEqual(t, "p2", p.ID)
	}
	require.NotNil(t, after.Projects.Current, "current is p1 and must survive")
	assert.Len(t, before.Projects.Items, 3)
}

func TestReduce_DeleteCurrentClearsIt(t *testing.T) {
	after := Reduce(populated(), Action{Type: ProjectsDelete, Phase: PhaseFulfilled, Payload: "p1"})

	assert.Nil(t, after.Projects.Current)
	assert.Len(t, after.Projects.Items, 2)

	after = Reduce(after, Action{Type: CommentsDelete, Phase: PhaseFulfilled, Payload: "c1"})
	require.Len(t, after.Comments.Items, 1)
	assert.Equal(t, "c2", after.Comments.Items[0].ID)
}

func TestReduce_FetchReplacesListAndPagination(t *testing.T) {
	pg := models.NewPagination(2, 1, 2)
	page := models.ProjectPage{Projects: []models.Project{project("p7", "Seven", "2024-04-01")}, Pagination: &pg}

	for _, typ := range []ActionType{ProjectsFetch, ProjectsFetchByUser} {
		after := Reduce(populated(), Action{Type: typ, Phase: PhaseFulfilled, Payload: page})
		require.Len(t, after.Projects.Items, 1)
		assert.Equal(t, "p7", after.Projects.Items[0].ID)
		assert.Equal(t, &pg, after.Projects.Pagination)
		assert.Equal(t, Status{}, after.Projects.Status)
	}
}

func TestReduce_SyncClears(t *testing.T) {
	s := populated()
	s = Reduce(s, Action{Type: ProjectsClearCurrent})
	s = Reduce(s, Action{Type: ProjectsClearError})
	s = Reduce(s, Action{Type: UsersClearCurrent})
	s = Reduce(s, Action{Type: UsersClearError})
	s = Reduce(s, Action{Type: CommentsClear})
	s = Reduce(s, Action{Type: CommentsClearError})
	s = Reduce(s, Action{Type: AuthClearError})

	assert.Nil(t, s.Projects.Current)
	assert.Nil(t, s.Users.Current)
	assert.Empty(t, s.Comments.Items)
	assert.Nil(t, s.Comments.Pagination)
	assert.Empty(t, s.Projects.Error+s.Users.Error+s.Comments.Error+s.Auth.Error)
	assert.Len(t, s.Projects.Items, 3, "clearing current keeps the list")
}

func TestReduce_UnknownActionIsNoop(t *testing.T) {
	before := populated()
	after := Reduce(before, Action{Type: "widgets/explode", Phase: PhaseFulfilled})
	if diff := cmp.Diff(before, after); diff != "" {
		t.Errorf("unexpected change:\n%s", diff)
	}
}

func TestPhase_String(t *testing.T) {
	assert.Equal(t, "pending", PhasePending.String())
	assert.Equal(t, "Phase(9)", Phase(9).String())
	assert.Equal(t, "projects/deleteProject/fulfilled", Action{Type: ProjectsDelete, Phase: PhaseFulfilled}.String())
	assert.Equal(t, "auth/logout", Action{Type: AuthLogout}.String())
}
