// Package tui is the terminal presentation collaborator: a channel
// menu, a schedule table, and program detail views. It carries no
// scheduling or caching logic; everything it shows is pushed to it by
// the coordinator, and everything the user does is forwarded as an
// intent.
package tui

import (
	"context"
	"errors"
	"fmt"
	"io"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/charmbracelet/lipgloss"

	"github.com/hinokzakir/RadioPlan/internal/domain"
)

// Intents are the user actions forwarded to the coordinator.
type Intents interface {
	SelectChannel(name string)
	ManualRefresh()
	SelectProgramRow(title string)
	RequestAbout()
}

var (
	sHeading = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#7D56F4"))
	sBucket  = lipgloss.NewStyle().Foreground(lipgloss.Color("#EB9B19"))
	sTime    = lipgloss.NewStyle().Foreground(lipgloss.Color("#797979"))
	sTitle   = lipgloss.NewStyle().Bold(true)
	sDim     = lipgloss.NewStyle().Faint(true)
	sError   = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color("#E7421D"))
)

type menuEntry struct {
	label string
	name  string
}

// UI implements service.Presenter. Presenter methods are called from
// the coordinator's loop goroutine while Run drives the forms on the
// main goroutine, so shared state sits behind a mutex.
type UI struct {
	out io.Writer

	mu             sync.Mutex
	entries        []menuEntry
	programs       []domain.Program
	refreshEnabled bool

	menuOnce  sync.Once
	menuReady chan struct{}
	updates   chan struct{}
}

func New(out io.Writer) *UI {
	return &UI{
		out:            out,
		refreshEnabled: true,
		menuReady:      make(chan struct{}),
		updates:        make(chan struct{}, 1),
	}
}

// RenderChannelMenu rebuilds the selectable channel entries, bucketed
// and sorted for a stable menu.
func (u *UI) RenderChannelMenu(grouped map[domain.ChannelType][]*domain.Channel) {
	var entries []menuEntry
	for _, t := range domain.ChannelTypes() {
		channels := grouped[t]
		names := make([]string, 0, len(channels))
		for _, ch := range channels {
			names = append(names, ch.Name)
		}
		sort.Strings(names)
		for _, name := range names {
			entries = append(entries, menuEntry{
				label: fmt.Sprintf("%s  %s", sBucket.Render(t.String()), name),
				name:  name,
			})
		}
	}

	u.mu.Lock()
	u.entries = entries
	u.mu.Unlock()

	u.menuOnce.Do(func() { close(u.menuReady) })
	u.notify()
}

func (u *UI) ShowChannelInfo(imageURL, about string) {
	u.mu.Lock()
	defer u.mu.Unlock()
	if about != "" {
		fmt.Fprintln(u.out, sDim.Render(about))
	}
	if imageURL != "" {
		fmt.Fprintln(u.out, sDim.Render(imageURL))
	}
}

func (u *UI) ShowSchedule(programs []domain.Program) {
	rows := make([]domain.Program, len(programs))
	copy(rows, programs)

	u.mu.Lock()
	u.programs = rows
	fmt.Fprintln(u.out, sHeading.Render(fmt.Sprintf("Schedule (%d programs)", len(rows))))
	for _, p := range rows {
		fmt.Fprintf(u.out, "%s  %s\n", sTime.Render(timeRange(p)), sTitle.Render(p.Title))
	}
	u.mu.Unlock()

	u.notify()
}

func (u *UI) ShowProgramDetail(program domain.Program) {
	u.mu.Lock()
	fmt.Fprintln(u.out, sHeading.Render(program.Title))
	fmt.Fprintln(u.out, sTime.Render(timeRange(program)))
	fmt.Fprintln(u.out, program.Description)
	if program.ImageURL != "" {
		fmt.Fprintln(u.out, sDim.Render(program.ImageURL))
	}
	u.mu.Unlock()

	u.notify()
}

func (u *UI) ShowMessage(message string) {
	u.mu.Lock()
	fmt.Fprintln(u.out, message)
	u.mu.Unlock()

	u.notify()
}

func (u *UI) ShowError(message string) {
	u.mu.Lock()
	fmt.Fprintln(u.out, sError.Render("ERROR: "+message))
	u.mu.Unlock()

	u.notify()
}

func (u *UI) SetRefreshEnabled(enabled bool) {
	u.mu.Lock()
	u.refreshEnabled = enabled
	u.mu.Unlock()
}

// notify wakes a Run waiting for pushed output; a pending wakeup is
// enough, extras are dropped.
func (u *UI) notify() {
	select {
	case u.updates <- struct{}{}:
	default:
	}
}

// Run drives the interactive menu until the user quits or ctx ends.
// It blocks until the channel menu has been rendered at least once.
func (u *UI) Run(ctx context.Context, intents Intents) error {
	select {
	case <-ctx.Done():
		return ctx.Err()
	case <-u.menuReady:
	}

	for {
		choice, err := u.pickFromMenu()
		if err != nil {
			if errors.Is(err, huh.ErrUserAborted) {
				return nil
			}
			return err
		}

		switch choice {
		case "!quit":
			return nil
		case "!refresh":
			intents.ManualRefresh()
			u.awaitUpdate(ctx)
		case "!about":
			intents.RequestAbout()
			u.awaitUpdate(ctx)
		default:
			intents.SelectChannel(strings.TrimPrefix(choice, "c:"))
			u.awaitUpdate(ctx)
			if err := u.pickProgram(ctx, intents); err != nil {
				return err
			}
		}

		if ctx.Err() != nil {
			return ctx.Err()
		}
	}
}

func (u *UI) pickFromMenu() (string, error) {
	u.mu.Lock()
	options := make([]huh.Option[string], 0, len(u.entries)+3)
	for _, e := range u.entries {
		options = append(options, huh.NewOption(e.label, "c:"+e.name))
	}
	if u.refreshEnabled {
		options = append(options, huh.NewOption("Refresh schedules", "!refresh"))
	}
	options = append(options,
		huh.NewOption("About", "!about"),
		huh.NewOption("Quit", "!quit"),
	)
	u.mu.Unlock()

	var choice string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("RadioPlan").
				Options(options...).
				Value(&choice),
		))
	if err := form.Run(); err != nil {
		return "", err
	}
	return choice, nil
}

func (u *UI) pickProgram(ctx context.Context, intents Intents) error {
	u.mu.Lock()
	rows := u.programs
	u.mu.Unlock()

	if len(rows) == 0 {
		fmt.Fprintln(u.out, sDim.Render("no programs in the current window"))
		return nil
	}

	options := make([]huh.Option[string], 0, len(rows)+1)
	for _, p := range rows {
		line := fmt.Sprintf("%s  %s", sTime.Render(timeRange(p)), p.Title)
		options = append(options, huh.NewOption(line, p.Title))
	}
	options = append(options, huh.NewOption("Back", ""))

	var selected string
	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Pick a program").
				Options(options...).
				Value(&selected),
		))
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return nil
		}
		return err
	}
	if selected != "" {
		intents.SelectProgramRow(selected)
		u.awaitUpdate(ctx)
	}
	return nil
}

// awaitUpdate gives the asynchronous pipeline a moment to push its
// result before the next form is drawn.
func (u *UI) awaitUpdate(ctx context.Context) {
	select {
	case <-u.updates:
	case <-ctx.Done():
	case <-time.After(10 * time.Second):
	}
}

// timeRange renders "15:04–15:30" from the stored UTC timestamps; the
// raw strings are shown as-is when they fail to parse.
func timeRange(p domain.Program) string {
	start, err1 := time.Parse(time.RFC3339, p.StartTime)
	end, err2 := time.Parse(time.RFC3339, p.EndTime)
	if err1 != nil || err2 != nil {
		return p.StartTime + "–" + p.EndTime
	}
	return start.Format("15:04") + "–" + end.Format("15:04")
}
