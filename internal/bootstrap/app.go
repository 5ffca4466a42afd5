// Package bootstrap wires together config, repositories, ambient stack, and
// the command/query use cases into a running Service.
package bootstrap

import (
	"fmt"
	"sync"

	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/console"
	"github.com/yuyonghai6/quiz-cms-backend-v2-sub003/pkg/mlog"
)

// App represents an application that will run as a deployable component.
// It's an entrypoint at main.go.
type App interface {
	Run(launcher *Launcher) error
}

// LauncherOption configures a Launcher.
type LauncherOption func(l *Launcher)

// WithLogger attaches a logger to the launcher.
func WithLogger(logger mlog.Logger) LauncherOption {
	return func(l *Launcher) {
		l.Logger = logger
	}
}

// RunApp registers app under name.
func RunApp(name string, app App) LauncherOption {
	return func(l *Launcher) {
		l.Add(name, app)
	}
}

// Launcher manages the set of Apps that make up one running process.
type Launcher struct {
	Logger mlog.Logger
	apps   map[string]App
	wg     *sync.WaitGroup
}

// Add registers an app under name.
func (l *Launcher) Add(name string, a App) *Launcher {
	l.apps[name] = a
	return l
}

// Run starts every registered app in its own goroutine and blocks until all finish.
func (l *Launcher) Run() {
	count := len(l.apps)
	l.wg.Add(count)

	fmt.Println(console.Title("Launcher Run"))
	l.Logger.Infof("starting %d app(s)", count)

	for name, app := range l.apps {
		go func(name string, app App) {
			defer l.wg.Done()

			l.Logger.Infof("launcher: app (%s) starting", name)

			if err := app.Run(l); err != nil {
				l.Logger.Errorf("launcher: app (%s) error: %v", name, err)
			}

			l.Logger.Infof("launcher: app (%s) finished", name)
		}(name, app)
	}

	l.wg.Wait()

	l.Logger.Info("launcher: terminated")
}

// NewLauncher builds a Launcher applying every opt in order.
func NewLauncher(opts ...LauncherOption) *Launcher {
	l := &Launcher{
		apps: make(map[string]App),
		wg:   new(sync.WaitGroup),
	}

	for _, opt := range opts {
		opt(l)
	}

	return l
}
