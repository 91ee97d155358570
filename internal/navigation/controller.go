// Package navigation models the client view states as an explicit state
// machine so the rules around the carried class filter and the deleted-
// student fallback live in one tested place instead of scattered UI glue.
package navigation

import "sync"

// View enumerates the navigable views.
type View string

const (
	ViewDashboard      View = "dashboard"
	ViewClassList      View = "class_list"
	ViewStudentList    View = "student_list"
	ViewStudentHistory View = "student_history"
	ViewAssessmentForm View = "assessment_form"
)

// Valid reports whether v names a known view.
func (v View) Valid() bool {
	switch v {
	case ViewDashboard, ViewClassList, ViewStudentList, ViewStudentHistory, ViewAssessmentForm:
		return true
	}
	return false
}

// State is the current navigation state. ClassFilter is only meaningful on
// StudentList; StudentID only on StudentHistory.
type State struct {
	View        View   `json:"view"`
	ClassFilter string `json:"class_filter,omitempty"`
	StudentID   string `json:"student_id,omitempty"`
}

// StudentResolver reports whether a student ID still resolves to an
// existing student.
type StudentResolver func(id string) bool

// Controller is the navigation state machine. There is no terminal state;
// every transition lands on a view from which Dashboard stays reachable.
type Controller struct {
	mu      sync.Mutex
	state   State
	resolve StudentResolver
}

// New creates a Controller starting at Dashboard.
func New(resolve StudentResolver) *Controller {
	return &Controller{state: State{View: ViewDashboard}, resolve: resolve}
}

// State returns the current navigation state.
func (c *Controller) State() State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// GoTo handles primary-menu navigation. Navigating anywhere except
// StudentList clears a carried class filter; navigating to StudentList
// through the menu keeps it. Unknown views fall back to Dashboard.
func (c *Controller) GoTo(view View) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if !view.Valid() {
		view = ViewDashboard
	}

	next := State{View: view}
	if view == ViewStudentList {
		next.ClassFilter = c.state.ClassFilter
	}
	c.state = next
	return c.state
}

// ViewClassStudents enters StudentList carrying a class filter, the
// "view students of this class" action.
func (c *Controller) ViewClassStudents(classID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	c.state = State{View: ViewStudentList, ClassFilter: classID}
	return c.state
}

// OpenStudentHistory enters StudentHistory for the given student. When the
// ID no longer resolves (the student was deleted underneath the client) the
// controller falls back to Dashboard instead of entering a view with
// dangling data.
func (c *Controller) OpenStudentHistory(studentID string) State {
	c.mu.Lock()
	defer c.mu.Unlock()

	if studentID == "" || c.resolve == nil || !c.resolve(studentID) {
		c.state = State{View: ViewDashboard}
		return c.state
	}
	c.state = State{View: ViewStudentHistory, StudentID: studentID}
	return c.state
}
