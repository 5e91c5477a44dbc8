package view

import (
	"sort"
	"strings"

	"github.com/campuslite/campuslite/core"
	"github.com/campuslite/campuslite/core/attendance"
	"github.com/campuslite/campuslite/core/fee"
	"github.com/campuslite/campuslite/core/student"
)

// The controller reads through these capabilities; the concrete repository
// and ledger services satisfy them.
type (
	StudentDirectory interface {
		List() []student.Student
	}

	AttendanceLedger interface {
		StatusOf(studentID, date string) (attendance.Status, bool)
	}

	FeeLedger interface {
		ListAll() []fee.Record
		AggregatesFor(studentID string) fee.Aggregates
	}
)

// StudentQuery narrows the students page. Search matches name or studentId,
// case-insensitively; Course filters on an exact (case-insensitive) course.
type StudentQuery struct {
	Search string
	Course string
}

// StudentsView is the students page snapshot: the filtered list plus what the
// page chrome needs (total count, course dropdown values).
type StudentsView struct {
	Students []student.Student
	Total    int      // size of the unfiltered collection
	Courses  []string // sorted unique courses, for the filter dropdown
}

func (ctl *Controller) StudentsPage(q StudentQuery) StudentsView {
	students := ctl.students.List()
	v := StudentsView{Total: len(students), Courses: uniqueCourses(students)}

	search := core.CleanString(q.Search, true /* lower */)
	course := core.CleanString(q.Course, true /* lower */)
	for _, std := range students {
		if search != "" &&
			!strings.Contains(strings.ToLower(std.Name), search) &&
			!strings.Contains(strings.ToLower(std.StudentID), search) {
			continue
		}
		if course != "" && strings.ToLower(std.Course) != course {
			continue
		}
		v.Students = append(v.Students, std)
	}
	return v
}

// AttendanceRow is one student's line on the attendance page for the selected
// date. Marked is false when no status was ever recorded for that day.
type AttendanceRow struct {
	Student student.Student
	Status  attendance.Status
	Marked  bool
}

// AttendanceView is the attendance page snapshot for one date.
type AttendanceView struct {
	Date          string
	Rows          []AttendanceRow
	TotalStudents int
}

// AttendancePage builds the per-date attendance table, optionally narrowed to
// a single student id.
func (ctl *Controller) AttendancePage(date, studentID string) AttendanceView {
	students := ctl.students.List()
	v := AttendanceView{Date: date, TotalStudents: len(students)}
	for _, std := range students {
		if studentID != "" && std.ID != studentID {
			continue
		}
		status, marked := ctl.attendance.StatusOf(std.ID, date)
		v.Rows = append(v.Rows, AttendanceRow{Student: std, Status: status, Marked: marked})
	}
	return v
}

// FeeRow is one ledger entry joined to its student. Fee records soft-reference
// students: when the student no longer resolves the row is kept and flagged
// Unresolved instead of erroring.
type FeeRow struct {
	Record     fee.Record
	Student    student.Student
	Unresolved bool
}

// FeeSummary is one student's derived fee totals.
type FeeSummary struct {
	Student student.Student
	fee.Aggregates
}

// FeesView is the fees page snapshot: the full ledger newest first, plus the
// per-student summary cards.
type FeesView struct {
	Rows      []FeeRow
	Summaries []FeeSummary
}

func (ctl *Controller) FeesPage() FeesView {
	students := ctl.students.List()
	byID := make(map[string]student.Student, len(students))
	for _, std := range students {
		byID[std.ID] = std
	}

	var v FeesView
	for _, rec := range ctl.fees.ListAll() {
		std, ok := byID[rec.StudentID]
		v.Rows = append(v.Rows, FeeRow{Record: rec, Student: std, Unresolved: !ok})
	}
	for _, std := range students {
		v.Summaries = append(v.Summaries, FeeSummary{Student: std, Aggregates: ctl.fees.AggregatesFor(std.ID)})
	}
	return v
}

func uniqueCourses(students []student.Student) []string {
	seen := make(map[string]struct{}, len(students))
	courses := make([]string, 0, len(students))
	for _, std := range students {
		if _, ok := seen[std.Course]; !ok {
			seen[std.Course] = struct{}{}
			courses = append(courses, std.Course)
		}
	}
	sort.Strings(courses)
	return courses
}
