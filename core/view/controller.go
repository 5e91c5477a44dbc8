package view

import (
	"github.com/campuslite/campuslite/core/session"
)

// Page identifies the active page.
type Page string

const (
	PageHome       Page = "home"
	PageStudents   Page = "students"
	PageAttendance Page = "attendance"
	PageFees       Page = "fees"
)

// Action is a mutation-capable UI affordance. Actions are exposed to admins
// only; this gating is a presentation contract, not a security boundary.
type Action string

const (
	ActionAddStudent     Action = "add_student"
	ActionEditStudent    Action = "edit_student"
	ActionDeleteStudent  Action = "delete_student"
	ActionMarkAttendance Action = "mark_attendance"
	ActionAddFee         Action = "add_fee"
)

var allActions = []Action{
	ActionAddStudent,
	ActionEditStudent,
	ActionDeleteStudent,
	ActionMarkAttendance,
	ActionAddFee,
}

// Controller owns the view state for one interactive session: the active page
// and the identity the pages render for. It composes the repositories into
// page-level read snapshots; the snapshots are disposable and must be
// re-fetched after any mutation.
type Controller struct {
	sessions   *session.Service
	students   StudentDirectory
	attendance AttendanceLedger
	fees       FeeLedger

	activePage Page
	sess       session.Session
	loggedIn   bool
}

func NewController(sessions *session.Service, students StudentDirectory, attendance AttendanceLedger, fees FeeLedger) *Controller {
	ctl := &Controller{
		sessions:   sessions,
		students:   students,
		attendance: attendance,
		fees:       fees,
		activePage: PageHome,
	}
	// trust-on-reload: restore a persisted session without re-prompting
	if sess, err := sessions.Current(); err == nil {
		ctl.sess = sess
		ctl.loggedIn = true
	}
	return ctl
}

// Login delegates to the auth gate; success resets the view to home.
func (ctl *Controller) Login(username, password, role string) error {
	sess, err := ctl.sessions.Login(username, password, role)
	if err != nil {
		return err
	}
	ctl.sess = sess
	ctl.loggedIn = true
	ctl.activePage = PageHome
	return nil
}

// Logout clears the session and resets the view to home.
func (ctl *Controller) Logout() error {
	if err := ctl.sessions.Logout(); err != nil {
		return err
	}
	ctl.sess = session.Session{}
	ctl.loggedIn = false
	ctl.activePage = PageHome
	return nil
}

// Session returns the active session, if any.
func (ctl *Controller) Session() (session.Session, bool) {
	return ctl.sess, ctl.loggedIn
}

// ActivePage reports the page currently being rendered.
func (ctl *Controller) ActivePage() Page {
	return ctl.activePage
}

// Navigate switches the active page, falling back to home for unrecognized
// page ids.
func (ctl *Controller) Navigate(page Page) {
	switch page {
	case PageHome, PageStudents, PageAttendance, PageFees:
		ctl.activePage = page
	default:
		ctl.activePage = PageHome
	}
}

// Allowed reports whether the session may use the given mutation affordance.
// Every mutation affordance is admin-only.
func (ctl *Controller) Allowed(action Action) bool {
	return ctl.loggedIn && ctl.sess.IsAdmin()
}

// Actions lists the mutation affordances available to the session; empty for
// read-only (student) sessions.
func (ctl *Controller) Actions() []Action {
	if !ctl.loggedIn || !ctl.sess.IsAdmin() {
		return nil
	}
	return allActions
}
