package app

import (
	"context"
	"fmt"
	"strconv"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	catalogdto "planwise/internal/modules/catalog/dto"
	navigationdto "planwise/internal/modules/navigation/dto"
	plugindto "planwise/internal/modules/plugin/dto"
	reportdto "planwise/internal/modules/report/dto"
	scheduledto "planwise/internal/modules/schedule/dto"
	sessiondto "planwise/internal/modules/session/dto"
	homeview "planwise/internal/ui/views/home"
)

// ─── async messages ───────────────────────────────────────────────────────────

type sessionLoadedMsg struct {
	state sessiondto.StateOutput
	home  homeview.Data
	err   error
}

type signedInMsg struct {
	out sessiondto.SignInOutput
	err error
}

// loadedMsg is the result of one page load. gen is the navigation generation
// the load was issued under.
type loadedMsg struct {
	gen    uint64
	loader string
	value  any
	err    error
}

// mutatedMsg reports a backend change; refetch names the regions it touched.
type mutatedMsg struct {
	toast      string
	err        error
	refetch    []string
	reloadHome bool
}

type searchedMsg struct {
	query string
	items []catalogdto.CourseOutput
	err   error
}

type conflictsMsg struct {
	items []scheduledto.ConflictOutput
	err   error
}

type auditedMsg struct {
	source string
	out    plugindto.ExecuteOutput
	err    error
}

type toastExpiredMsg struct{ id int }

// paletteHints must stay in sync with the switch in executePalette.
var paletteHints = []string{
	"goto <path>",
	"back",
	"forward",
	"refresh",
	"signin <login_id> [program_id]",
	"major <program_id>",
	"search <text> [subject=SUBJ] [level=N]",
	"add <course_id> [term_id]",
	"remove <pc_id>",
	"complete <course_id> [grade]",
	"grade <enroll_id> <grade>",
	"forget <enroll_id>",
	"enroll <section_id>",
	"drop <section_id>",
	"conflicts",
	"export [dir]",
	"audit <plugin> <command> [json]",
}

const signInFirst = "Sign in first"

// ─── palette execution ────────────────────────────────────────────────────────

func (m Model) executePalette(input string) (Model, tea.Cmd) {
	parts := strings.Fields(input)
	if len(parts) == 0 {
		return m, nil
	}
	args := parts[1:]
	stu, planID := m.state.StudentID, m.state.PlanID

	switch parts[0] {
	case "goto":
		path := "/"
		if len(args) > 0 {
			path = args[0]
		}
		return m, m.apply(m.ports.Navigation.Navigate(path, stu, planID))
	case "back":
		return m, m.back()
	case "forward":
		return m, m.forward()
	case "refresh":
		return m, m.apply(m.ports.Navigation.Refresh(stu, planID))

	case "signin":
		if len(args) == 0 {
			return m, m.notify("Enter login id")
		}
		var prog int64
		if len(args) > 1 {
			p, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return m, m.notify("Pick a major")
			}
			prog = p
		}
		return m, m.signInCmd(args[0], prog)

	case "search":
		text, subject, level := parseSearch(args)
		if text == "" && subject == "" && level == "" {
			return m, m.notify("Enter a query or choose a filter")
		}
		return m, m.searchCmd(text, subject, level)

	case "conflicts":
		if planID <= 0 {
			return m, m.notify(signInFirst)
		}
		return m, m.conflictsCmd(planID)

	case "export":
		dir := m.opts.ExportDir
		if len(args) > 0 {
			dir = args[0]
		}
		return m, m.exportCmd(dir)

	case "audit":
		if len(args) < 2 {
			return m, m.notify("usage: audit <plugin> <command> [json]")
		}
		inputJSON := strings.TrimSpace(strings.Join(args[2:], " "))
		return m, m.auditCmd(args[0], args[1], inputJSON)
	}

	if stu <= 0 {
		if _, known := mutationUsage[parts[0]]; known {
			return m, m.notify(signInFirst)
		}
	}
	return m.executeMutation(parts[0], args)
}

var mutationUsage = map[string]string{
	"major":    "usage: major <program_id>",
	"add":      "usage: add <course_id> [term_id]",
	"remove":   "usage: remove <pc_id>",
	"complete": "usage: complete <course_id> [grade]",
	"grade":    "usage: grade <enroll_id> <grade>",
	"forget":   "usage: forget <enroll_id>",
	"enroll":   "usage: enroll <section_id>",
	"drop":     "usage: drop <section_id>",
}

func (m Model) executeMutation(name string, args []string) (Model, tea.Cmd) {
	usage, known := mutationUsage[name]
	if !known {
		return m, m.notify("unknown command: " + name)
	}
	if len(args) == 0 {
		if name == "major" {
			return m, m.notify("Pick a major")
		}
		return m, m.notify(usage)
	}
	id, err := strconv.ParseInt(args[0], 10, 64)
	if err != nil || id <= 0 {
		return m, m.notify(usage)
	}
	stu, planID := m.state.StudentID, m.state.PlanID
	onHistory := m.view.Page == navigationdto.PageHistory

	const (
		planItems = navigationdto.LoaderPlanItems
		recs      = navigationdto.LoaderRecommendations
		summary   = navigationdto.LoaderSummary
		history   = navigationdto.LoaderHistory
		final     = navigationdto.LoaderFinalSchedule
	)

	switch name {
	case "major":
		save := m.mutate("Major saved", func(ctx context.Context) error {
			return m.ports.Catalog.SaveMajor(ctx, stu, id)
		}, recs)
		return m, func() tea.Msg {
			msg := save().(mutatedMsg)
			msg.reloadHome = msg.err == nil
			return msg
		}

	case "add":
		term := m.opts.DefaultTermID
		if len(args) > 1 {
			t, err := strconv.ParseInt(args[1], 10, 64)
			if err != nil {
				return m, m.notify(usage)
			}
			term = t
		}
		return m, m.mutate("Added", func(ctx context.Context) error {
			_, err := m.ports.Plan.AddCourse(ctx, planID, id, term)
			return err
		}, planItems, recs, summary)

	case "remove":
		loads := []string{planItems, recs, summary}
		if onHistory {
			loads = append(loads, history)
		}
		return m, m.mutate("Removed", func(ctx context.Context) error {
			return m.ports.Plan.Remove(ctx, id)
		}, loads...)

	case "complete":
		grade := ""
		if len(args) > 1 {
			grade = args[1]
		}
		loads := []string{recs, summary}
		if onHistory {
			loads = append(loads, history)
		}
		return m, m.mutate("Recorded as completed", func(ctx context.Context) error {
			return m.ports.History.AddCompleted(ctx, stu, id, grade)
		}, loads...)

	case "grade":
		if len(args) < 2 {
			return m, m.notify(usage)
		}
		return m, m.mutate("Grade updated", func(ctx context.Context) error {
			return m.ports.History.UpdateGrade(ctx, stu, id, args[1])
		}, history, recs, summary)

	case "forget":
		return m, m.mutate("Removed", func(ctx context.Context) error {
			return m.ports.History.Remove(ctx, stu, id)
		}, history, recs, summary)

	case "enroll":
		return m, m.mutate("Enrolled successfully!", func(ctx context.Context) error {
			_, err := m.ports.Schedule.Enroll(ctx, stu, id)
			return err
		}, final)

	case "drop":
		return m, m.mutate("Removed from schedule", func(ctx context.Context) error {
			return m.ports.Schedule.Drop(ctx, stu, id)
		}, final)
	}
	return m, nil
}

// parseSearch splits palette arguments into free text and key=value filters.
func parseSearch(args []string) (text, subject, level string) {
	var words []string
	for _, a := range args {
		switch {
		case strings.HasPrefix(a, "subject="):
			subject = strings.ToUpper(strings.TrimPrefix(a, "subject="))
		case strings.HasPrefix(a, "level="):
			level = strings.TrimPrefix(a, "level=")
		default:
			words = append(words, a)
		}
	}
	return strings.Join(words, " "), subject, level
}

// ─── async commands ───────────────────────────────────────────────────────────

func (m Model) mutate(toast string, call func(ctx context.Context) error, refetch ...string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		if err := call(ctx); err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{toast: toast, refetch: refetch}
	}
}

// load marks loader in flight and returns the command fetching it under gen.
func (m *Model) load(loader string, gen uint64) tea.Cmd {
	stu, planID := m.state.StudentID, m.state.PlanID
	ports := m.ports
	m.loading[loader] = true

	switch loader {
	case navigationdto.LoaderPlanItems:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.Plan.Get(ctx, planID) })
	case navigationdto.LoaderRecommendations:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.Plan.Recommendations(ctx, stu, planID) })
	case navigationdto.LoaderSummary:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.History.Summary(ctx, stu) })
	case navigationdto.LoaderAdvisors:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.Catalog.Advisors(ctx) })
	case navigationdto.LoaderHistory:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.History.List(ctx, stu) })
	case navigationdto.LoaderAvailable:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.Schedule.Available(ctx, planID) })
	case navigationdto.LoaderFinalSchedule:
		return fetch(gen, loader, func(ctx context.Context) (any, error) { return ports.Schedule.Final(ctx, stu) })
	}
	delete(m.loading, loader)
	m.log.Warn().Str("loader", loader).Msg("unknown loader")
	return nil
}

func fetch(gen uint64, loader string, call func(ctx context.Context) (any, error)) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		value, err := call(ctx)
		return loadedMsg{gen: gen, loader: loader, value: value, err: err}
	}
}

func (m Model) loadSessionCmd() tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		state, err := m.ports.Session.Current(ctx)
		if err != nil {
			return sessionLoadedMsg{err: err}
		}
		data := homeview.Data{}
		if programs, err := m.ports.Catalog.Programs(ctx); err == nil {
			data.Programs = programs
		}
		if state.StudentID <= 0 {
			return sessionLoadedMsg{state: state, home: data}
		}
		data.Profile, data.ProfileErr = m.ports.Session.Profile(ctx)
		if data.ProfileErr != nil {
			data.Profile.StudentID = state.StudentID
		}
		major, err := m.ports.Catalog.CurrentMajor(ctx, state.StudentID)
		if err == nil {
			data.Major = major
		}
		return sessionLoadedMsg{state: state, home: data}
	}
}

func (m Model) signInCmd(loginID string, programID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		out, err := m.ports.Session.SignIn(ctx, loginID, programID)
		return signedInMsg{out: out, err: err}
	}
}

func (m Model) searchCmd(text, subject, level string) tea.Cmd {
	query := strings.TrimSpace(strings.Join([]string{text, subject, level}, " "))
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		items, err := m.ports.Catalog.Search(ctx, text, subject, level)
		return searchedMsg{query: query, items: items, err: err}
	}
}

func (m Model) conflictsCmd(planID int64) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		items, err := m.ports.Schedule.Conflicts(ctx, planID)
		return conflictsMsg{items: items, err: err}
	}
}

func (m Model) exportCmd(dir string) tea.Cmd {
	input := reportdto.BuildInput{
		StudentID: m.state.StudentID,
		PlanID:    m.state.PlanID,
		LoginID:   m.home.Profile.LoginID,
		Name:      m.home.Profile.Name,
	}
	return func() tea.Msg {
		if m.ports.Report == nil {
			return mutatedMsg{err: fmt.Errorf("export is not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		out, err := m.ports.Report.Export(ctx, input, dir)
		if err != nil {
			return mutatedMsg{err: err}
		}
		return mutatedMsg{toast: "Exported to " + out.Path}
	}
}

func (m Model) auditCmd(pluginName, commandID, inputJSON string) tea.Cmd {
	input := plugindto.ExecuteInput{
		PluginName: pluginName,
		CommandID:  commandID,
		InputJSON:  inputJSON,
		DataDir:    m.opts.DataDir,
		StudentID:  m.state.StudentID,
		PlanID:     m.state.PlanID,
	}
	return func() tea.Msg {
		if m.ports.Plugin == nil {
			return auditedMsg{err: fmt.Errorf("plugins are not configured")}
		}
		ctx, cancel := context.WithTimeout(context.Background(), callTimeout)
		defer cancel()
		out, err := m.ports.Plugin.Audit(ctx, input)
		return auditedMsg{source: pluginName + " " + commandID, out: out, err: err}
	}
}
