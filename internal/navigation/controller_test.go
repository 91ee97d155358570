package navigation

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func resolverFor(existing ...string) StudentResolver {
	ids := make(map[string]struct{}, len(existing))
	for _, id := range existing {
		ids[id] = struct{}{}
	}
	return func(id string) bool {
		_, ok := ids[id]
		return ok
	}
}

func TestControllerStartsAtDashboard(t *testing.T) {
	c := New(resolverFor())
	assert.Equal(t, State{View: ViewDashboard}, c.State())
}

func TestViewClassStudentsCarriesFilter(t *testing.T) {
	c := New(resolverFor())

	state := c.ViewClassStudents("c1")
	assert.Equal(t, State{View: ViewStudentList, ClassFilter: "c1"}, state)
}

func TestMenuNavigationClearsCarriedFilter(t *testing.T) {
	c := New(resolverFor())
	c.ViewClassStudents("c1")

	// Menu navigation to StudentList keeps the filter.
	state := c.GoTo(ViewStudentList)
	assert.Equal(t, "c1", state.ClassFilter)

	// Menu navigation anywhere else clears it.
	c.GoTo(ViewClassList)
	state = c.GoTo(ViewStudentList)
	assert.Empty(t, state.ClassFilter)
}

func TestOpenStudentHistory(t *testing.T) {
	c := New(resolverFor("s1"))

	state := c.OpenStudentHistory("s1")
	assert.Equal(t, State{View: ViewStudentHistory, StudentID: "s1"}, state)
}

func TestOpenStudentHistoryFallsBackWhenStudentGone(t *testing.T) {
	c := New(resolverFor("s1"))
	c.ViewClassStudents("c1")

	state := c.OpenStudentHistory("deleted")
	assert.Equal(t, State{View: ViewDashboard}, state, "missing student falls back to Dashboard")

	state = c.OpenStudentHistory("")
	assert.Equal(t, State{View: ViewDashboard}, state)
}

func TestGoToUnknownViewFallsBackToDashboard(t *testing.T) {
	c := New(resolverFor())
	c.ViewClassStudents("c1")

	state := c.GoTo(View("settings"))
	assert.Equal(t, State{View: ViewDashboard}, state)
}

func TestNoTerminalState(t *testing.T) {
	c := New(resolverFor("s1"))

	for _, v := range []View{ViewClassList, ViewStudentList, ViewStudentHistory, ViewAssessmentForm} {
		c.GoTo(v)
		state := c.GoTo(ViewDashboard)
		assert.Equal(t, ViewDashboard, state.View, "Dashboard reachable from %s", v)
	}
}
