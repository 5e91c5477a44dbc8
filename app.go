// Package campuslite wires the student management core together: record
// store, repositories, ledgers, auth gate and view controller. The rendering
// layer owns an App and reads through its Controller; it never touches the
// storage layer directly.
package campuslite

import (
	"github.com/campuslite/campuslite/core"
	"github.com/campuslite/campuslite/core/attendance"
	"github.com/campuslite/campuslite/core/fee"
	"github.com/campuslite/campuslite/core/session"
	"github.com/campuslite/campuslite/core/student"
	"github.com/campuslite/campuslite/core/view"
	filekv "github.com/campuslite/campuslite/storage/kv/file"
	rediskv "github.com/campuslite/campuslite/storage/kv/redis"
)

type App struct {
	Conf *core.Config
	Log  core.Logger

	Students   *student.Service
	Attendance *attendance.Service
	Fees       *fee.Service
	Sessions   *session.Service
	Controller *view.Controller
}

// NewApp assembles the core onto the given storage backend.
func NewApp(conf *core.Config, log core.Logger, kv core.KeyValue) (*App, error) {
	admin, err := session.NewFixedAdminChecker(conf)
	if err != nil {
		return nil, err
	}

	store := core.NewStore(kv, log)
	app := &App{
		Conf:       conf,
		Log:        log,
		Students:   student.NewService(store),
		Attendance: attendance.NewService(store),
		Fees:       fee.NewService(store),
		Sessions:   session.NewService(store, admin),
	}
	app.Controller = view.NewController(app.Sessions, app.Students, app.Attendance, app.Fees)
	return app, nil
}

// OpenKV binds the configured key-value facility: redis when an address is
// configured, a directory of JSON files otherwise.
func OpenKV(conf *core.Config) (core.KeyValue, error) {
	if conf.RedisAddr != "" {
		return rediskv.New(conf.RedisAddr), nil
	}
	return filekv.Open(conf.DataDir)
}
