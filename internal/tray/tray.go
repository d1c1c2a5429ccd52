package tray

import (
	"context"
	_ "embed"

	"fyne.io/systray"
	"github.com/rs/zerolog"
)

//go:embed icon.png
var defaultIcon []byte

// Options configures the tray icon.
type Options struct {
	Title   string
	Tooltip string
	Icon    []byte // PNG; the built-in icon when nil
	Menu    []Item // DefaultMenu when nil
	Logger  zerolog.Logger
}

// Run shows the tray icon and forwards menu selections to d. It blocks
// until Quit is called or ctx is done, and must be called from the main
// goroutine.
func Run(ctx context.Context, opts Options, d *Dispatcher) {
	if opts.Icon == nil {
		opts.Icon = defaultIcon
	}
	if opts.Menu == nil {
		opts.Menu = DefaultMenu()
	}
	log := opts.Logger.With().Str("component", "tray").Logger()

	done := make(chan struct{})

	onReady := func() {
		systray.SetIcon(opts.Icon)
		systray.SetTitle(opts.Title)
		systray.SetTooltip(opts.Tooltip)

		for _, item := range opts.Menu {
			mi := systray.AddMenuItem(item.Title, item.tooltip())
			go forward(mi.ClickedCh, done, item.ID, d, log)
		}

		go func() {
			select {
			case <-ctx.Done():
				systray.Quit()
			case <-done:
			}
		}()
		log.Debug().Int("items", len(opts.Menu)).Msg("tray ready")
	}

	onExit := func() {
		close(done)
		log.Debug().Msg("tray exited")
	}

	systray.Run(onReady, onExit)
}

// Quit stops the tray loop started by Run.
func Quit() {
	systray.Quit()
}

// forward turns clicks on one menu item into MenuItemSelected events until
// done is closed.
func forward(clicked <-chan struct{}, done <-chan struct{}, id string, d *Dispatcher, log zerolog.Logger) {
	for {
		select {
		case <-clicked:
			if !d.Dispatch(Event{Kind: MenuItemSelected, ID: id}) {
				log.Debug().Str("item", id).Msg("no handler for menu item")
			}
		case <-done:
			return
		}
	}
}
