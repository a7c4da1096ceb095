package app

import (
	"context"
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"
	"github.com/rs/zerolog"

	catalogdto "planwise/internal/modules/catalog/dto"
	historydto "planwise/internal/modules/history/dto"
	navigationdto "planwise/internal/modules/navigation/dto"
	plandto "planwise/internal/modules/plan/dto"
	plugindto "planwise/internal/modules/plugin/dto"
	reportdto "planwise/internal/modules/report/dto"
	scheduledto "planwise/internal/modules/schedule/dto"
	sessiondto "planwise/internal/modules/session/dto"
	"planwise/internal/ui/components"
	"planwise/internal/ui/theme"
	homeview "planwise/internal/ui/views/home"
)

// ─── ports ───────────────────────────────────────────────────────────────────
// Each port is the minimal interface this orchestration layer requires.

type sessionPort interface {
	SignIn(ctx context.Context, loginID string, programID int64) (sessiondto.SignInOutput, error)
	Current(ctx context.Context) (sessiondto.StateOutput, error)
	Profile(ctx context.Context) (sessiondto.ProfileOutput, error)
}

type catalogPort interface {
	Programs(ctx context.Context) ([]catalogdto.ProgramOutput, error)
	Advisors(ctx context.Context) ([]catalogdto.AdvisorOutput, error)
	Search(ctx context.Context, query, subject, level string) ([]catalogdto.CourseOutput, error)
	CurrentMajor(ctx context.Context, studentID int64) (catalogdto.MajorOutput, error)
	SaveMajor(ctx context.Context, studentID, programID int64) error
}

type planPort interface {
	Get(ctx context.Context, planID int64) (plandto.PlanOutput, error)
	AddCourse(ctx context.Context, planID, courseID, termID int64) (plandto.AddCourseOutput, error)
	Remove(ctx context.Context, pcID int64) error
	Recommendations(ctx context.Context, studentID, planID int64) ([]plandto.CourseOutput, error)
}

type historyPort interface {
	List(ctx context.Context, studentID int64) ([]historydto.CompletedCourseOutput, error)
	Summary(ctx context.Context, studentID int64) (historydto.SummaryOutput, error)
	UpdateGrade(ctx context.Context, studentID, enrollID int64, grade string) error
	Remove(ctx context.Context, studentID, enrollID int64) error
	AddCompleted(ctx context.Context, studentID, courseID int64, grade string) error
}

type schedulePort interface {
	Available(ctx context.Context, planID int64) (scheduledto.ScheduleOutput, error)
	Final(ctx context.Context, studentID int64) (scheduledto.ScheduleOutput, error)
	Enroll(ctx context.Context, studentID, sectionID int64) (scheduledto.EnrollOutput, error)
	Drop(ctx context.Context, studentID, sectionID int64) error
	Conflicts(ctx context.Context, planID int64) ([]scheduledto.ConflictOutput, error)
}

type navigationPort interface {
	Pages() []navigationdto.PageOutput
	Navigate(path string, studentID, planID int64) navigationdto.ViewOutput
	Back(studentID, planID int64) navigationdto.ViewOutput
	Forward(studentID, planID int64) navigationdto.ViewOutput
	Refresh(studentID, planID int64) navigationdto.ViewOutput
	IsCurrent(generation uint64) bool
}

type reportPort interface {
	Export(ctx context.Context, input reportdto.BuildInput, dir string) (reportdto.ExportOutput, error)
}

type pluginPort interface {
	Audit(ctx context.Context, input plugindto.ExecuteInput) (plugindto.ExecuteOutput, error)
}

// Ports groups the backends the TUI drives. Report and Plugin may be nil.
type Ports struct {
	Session    sessionPort
	Catalog    catalogPort
	Plan       planPort
	History    historyPort
	Schedule   schedulePort
	Navigation navigationPort
	Report     reportPort
	Plugin     pluginPort
}

// Options carries the settings palette commands fall back on.
type Options struct {
	DataDir       string
	ExportDir     string
	DefaultTermID int64
}

const (
	toastDuration = 1800 * time.Millisecond
	callTimeout   = 15 * time.Second
)

// ─── key bindings ─────────────────────────────────────────────────────────────

type keyMap struct {
	Tab     key.Binding
	Back    key.Binding
	Forward key.Binding
	Refresh key.Binding
	Jump    key.Binding
	Scroll  key.Binding
	Help    key.Binding
	Palette key.Binding
	Quit    key.Binding
}

func defaultKeys() keyMap {
	return keyMap{
		Tab:     key.NewBinding(key.WithKeys("tab", "shift+tab"), key.WithHelp("tab", "next page")),
		Back:    key.NewBinding(key.WithKeys("["), key.WithHelp("[", "back")),
		Forward: key.NewBinding(key.WithKeys("]"), key.WithHelp("]", "forward")),
		Refresh: key.NewBinding(key.WithKeys("r"), key.WithHelp("r", "refresh")),
		Jump:    key.NewBinding(key.WithKeys("1", "2", "3", "4", "5"), key.WithHelp("1-5", "jump to page")),
		Scroll:  key.NewBinding(key.WithKeys("j", "k"), key.WithHelp("j/k", "scroll")),
		Help:    key.NewBinding(key.WithKeys("?"), key.WithHelp("?", "help")),
		Palette: key.NewBinding(key.WithKeys(":"), key.WithHelp(":", "palette")),
		Quit:    key.NewBinding(key.WithKeys("ctrl+c", "q"), key.WithHelp("q", "quit")),
	}
}

func (k keyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Tab, k.Help, k.Palette, k.Quit}
}

func (k keyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Tab, k.Jump, k.Back, k.Forward},
		{k.Refresh, k.Scroll},
		{k.Help, k.Palette, k.Quit},
	}
}

// ─── model ───────────────────────────────────────────────────────────────────

type region[T any] struct {
	data T
	err  error
}

// Model is the root Bubble Tea model. Pages are tabs; what each page loads is
// decided by the navigation port, and every load result is tagged with the
// generation it was issued under so late results from a page the user has
// left are dropped.
type Model struct {
	ports Ports
	opts  Options
	log   zerolog.Logger

	state   sessiondto.StateOutput
	home    homeview.Data
	view    navigationdto.ViewOutput
	pages   []navigationdto.PageOutput
	loading map[string]bool

	plan      region[plandto.PlanOutput]
	recs      region[[]plandto.CourseOutput]
	summary   region[historydto.SummaryOutput]
	advisors  region[[]catalogdto.AdvisorOutput]
	history   region[[]historydto.CompletedCourseOutput]
	available region[scheduledto.ScheduleOutput]
	final     region[scheduledto.ScheduleOutput]
	conflicts region[[]scheduledto.ConflictOutput]

	searchQuery string
	results     region[[]catalogdto.CourseOutput]
	auditSource string
	findings    []plugindto.Finding

	keys     keyMap
	help     help.Model
	showHelp bool
	palette  components.Palette
	viewport viewport.Model
	spinner  spinner.Model
	md       *glamour.TermRenderer
	status   string
	toastID  int
	width    int
	height   int
}

func NewModel(ports Ports, opts Options, log zerolog.Logger) Model {
	sp := spinner.New()
	sp.Spinner = spinner.Dot
	sp.Style = theme.Hot

	m := Model{
		ports:    ports,
		opts:     opts,
		log:      log.With().Str("component", "tui").Logger(),
		view:     navigationdto.ViewOutput{Page: navigationdto.PageHome, Path: "/"},
		pages:    ports.Navigation.Pages(),
		loading:  map[string]bool{},
		keys:     defaultKeys(),
		help:     help.New(),
		palette:  components.NewPalette(paletteHints),
		viewport: viewport.New(80, 20),
		spinner:  sp,
	}
	m.refreshContent()
	return m
}

func (m Model) Init() tea.Cmd {
	return tea.Batch(m.spinner.Tick, m.loadSessionCmd())
}

// ─── update ───────────────────────────────────────────────────────────────────

func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	next, cmd := m.update(msg)
	next.refreshContent()
	return next, cmd
}

func (m Model) update(msg tea.Msg) (Model, tea.Cmd) {
	// The palette intercepts all input while open.
	if m.palette.Visible() {
		if _, ok := msg.(tea.KeyMsg); ok {
			var cmd tea.Cmd
			m.palette, cmd = m.palette.Update(msg)
			return m, cmd
		}
	}

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.resize(msg.Width, msg.Height)
		return m, nil

	case spinner.TickMsg:
		var cmd tea.Cmd
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case sessionLoadedMsg:
		m.state = msg.state
		m.home = msg.home
		var cmds []tea.Cmd
		if msg.err != nil {
			cmds = append(cmds, m.notify("session: "+msg.err.Error()))
		}
		cmds = append(cmds, m.apply(m.ports.Navigation.Refresh(m.state.StudentID, m.state.PlanID)))
		return m, tea.Batch(cmds...)

	case signedInMsg:
		if msg.err != nil && msg.out.StudentID <= 0 {
			return m, m.notify("Sign in failed: " + msg.err.Error())
		}
		// The session is stored before the major is posted, so a major
		// failure still switches to the new student.
		m.state = sessiondto.StateOutput{StudentID: msg.out.StudentID, PlanID: msg.out.PlanID}
		if msg.err != nil {
			return m, tea.Batch(m.notify("Signed in; major not saved: "+msg.err.Error()), m.loadSessionCmd())
		}
		text := "Signed in as " + msg.out.Name
		if msg.out.MajorSaved {
			text += " · Major saved"
		}
		return m, tea.Batch(m.notify(text), m.loadSessionCmd())

	case loadedMsg:
		if !m.ports.Navigation.IsCurrent(msg.gen) {
			m.log.Debug().Str("loader", msg.loader).Uint64("generation", msg.gen).Msg("dropped stale load")
			return m, nil
		}
		delete(m.loading, msg.loader)
		m.applyLoad(msg)
		if msg.err != nil {
			return m, m.notify(msg.loader + ": " + msg.err.Error())
		}
		return m, nil

	case mutatedMsg:
		if msg.err != nil {
			return m, m.notify(msg.err.Error())
		}
		cmds := []tea.Cmd{m.notify(msg.toast)}
		if msg.reloadHome {
			cmds = append(cmds, m.loadSessionCmd())
		}
		for _, loader := range msg.refetch {
			cmds = append(cmds, m.load(loader, m.view.Generation))
		}
		return m, tea.Batch(cmds...)

	case searchedMsg:
		m.searchQuery = msg.query
		m.results = region[[]catalogdto.CourseOutput]{data: msg.items, err: msg.err}
		if msg.err != nil {
			return m, m.notify(msg.err.Error())
		}
		return m, nil

	case conflictsMsg:
		m.conflicts = region[[]scheduledto.ConflictOutput]{data: msg.items, err: msg.err}
		if m.conflicts.data == nil && msg.err == nil {
			m.conflicts.data = []scheduledto.ConflictOutput{}
		}
		if msg.err != nil {
			return m, m.notify(msg.err.Error())
		}
		return m, m.notify(fmt.Sprintf("%d time conflict(s)", len(msg.items)))

	case auditedMsg:
		if msg.err != nil {
			return m, m.notify("audit: " + msg.err.Error())
		}
		m.auditSource = msg.source
		m.findings = msg.out.Findings
		if m.findings == nil {
			m.findings = []plugindto.Finding{}
		}
		return m, m.notify(fmt.Sprintf("%d finding(s)", len(m.findings)))

	case toastExpiredMsg:
		if msg.id == m.toastID {
			m.status = ""
		}
		return m, nil

	case components.PaletteSubmitMsg:
		return m.executePalette(msg.Input)

	case components.PaletteCancelMsg:
		return m, nil

	case tea.KeyMsg:
		if m.showHelp {
			if msg.String() == "?" || msg.String() == "esc" {
				m.showHelp = false
			}
			return m, nil
		}

		switch msg.String() {
		case "ctrl+c", "q":
			return m, tea.Quit
		case "?":
			m.showHelp = true
			return m, nil
		case ":":
			return m, m.palette.Open()
		case "tab":
			return m, m.gotoPage(m.pageIndex() + 1)
		case "shift+tab":
			return m, m.gotoPage(m.pageIndex() - 1)
		case "1", "2", "3", "4", "5":
			return m, m.gotoPage(int(msg.String()[0] - '1'))
		case "[":
			return m, m.back()
		case "]":
			return m, m.forward()
		case "r":
			return m, m.apply(m.ports.Navigation.Refresh(m.state.StudentID, m.state.PlanID))
		}
	}

	var cmd tea.Cmd
	if m.palette.Visible() {
		m.palette, cmd = m.palette.Update(msg)
		return m, cmd
	}
	m.viewport, cmd = m.viewport.Update(msg)
	return m, cmd
}

func (m *Model) applyLoad(msg loadedMsg) {
	switch msg.loader {
	case navigationdto.LoaderPlanItems:
		m.plan = regionOf[plandto.PlanOutput](msg)
	case navigationdto.LoaderRecommendations:
		m.recs = regionOf[[]plandto.CourseOutput](msg)
	case navigationdto.LoaderSummary:
		m.summary = regionOf[historydto.SummaryOutput](msg)
	case navigationdto.LoaderAdvisors:
		m.advisors = regionOf[[]catalogdto.AdvisorOutput](msg)
	case navigationdto.LoaderHistory:
		m.history = regionOf[[]historydto.CompletedCourseOutput](msg)
	case navigationdto.LoaderAvailable:
		m.available = regionOf[scheduledto.ScheduleOutput](msg)
	case navigationdto.LoaderFinalSchedule:
		m.final = regionOf[scheduledto.ScheduleOutput](msg)
	}
}

func regionOf[T any](msg loadedMsg) region[T] {
	v, _ := msg.value.(T)
	return region[T]{data: v, err: msg.err}
}

// apply makes view current and issues its loads.
func (m *Model) apply(view navigationdto.ViewOutput) tea.Cmd {
	m.view = view
	m.loading = map[string]bool{}
	m.viewport.GotoTop()
	var cmds []tea.Cmd
	for _, loader := range view.Loaders {
		switch loader {
		case navigationdto.LoaderHistory:
			// The summary follows the history list, as does the final
			// schedule after the available sections.
			cmds = append(cmds, tea.Sequence(m.load(loader, view.Generation), m.load(navigationdto.LoaderSummary, view.Generation)))
		case navigationdto.LoaderAvailable:
			cmds = append(cmds, tea.Sequence(m.load(loader, view.Generation), m.load(navigationdto.LoaderFinalSchedule, view.Generation)))
		default:
			cmds = append(cmds, m.load(loader, view.Generation))
		}
	}
	return tea.Batch(cmds...)
}

func (m *Model) gotoPage(i int) tea.Cmd {
	if len(m.pages) == 0 {
		return nil
	}
	i = (i%len(m.pages) + len(m.pages)) % len(m.pages)
	return m.apply(m.ports.Navigation.Navigate(m.pages[i].Path, m.state.StudentID, m.state.PlanID))
}

func (m *Model) back() tea.Cmd {
	view := m.ports.Navigation.Back(m.state.StudentID, m.state.PlanID)
	if !view.Moved {
		return m.notify("Nothing to go back to")
	}
	return m.apply(view)
}

func (m *Model) forward() tea.Cmd {
	view := m.ports.Navigation.Forward(m.state.StudentID, m.state.PlanID)
	if !view.Moved {
		return m.notify("Nothing to go forward to")
	}
	return m.apply(view)
}

func (m Model) pageIndex() int {
	for i, p := range m.pages {
		if p.ID == m.view.Page {
			return i
		}
	}
	return 0
}

// notify shows text in the status line until the toast expires or is
// replaced by a newer one.
func (m *Model) notify(text string) tea.Cmd {
	m.toastID++
	m.status = text
	id := m.toastID
	return tea.Tick(toastDuration, func(time.Time) tea.Msg { return toastExpiredMsg{id: id} })
}

func (m *Model) resize(width, height int) {
	m.width = width
	m.height = height
	m.palette.SetWidth(min(width-4, 80))
	m.help.Width = width
	m.viewport.Width = width
	m.viewport.Height = max(height-4, 1)
	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle("dark"),
		glamour.WithWordWrap(max(width-4, 20)),
	)
	if err != nil {
		m.log.Warn().Err(err).Msg("markdown renderer unavailable")
		m.md = nil
		return
	}
	m.md = r
}

// ─── view ────────────────────────────────────────────────────────────────────

func (m Model) View() string {
	tabBar := m.renderTabBar()
	statusBar := m.renderStatusBar()
	contentH := max(m.height-lipgloss.Height(tabBar)-lipgloss.Height(statusBar), 1)

	var content string
	switch {
	case m.showHelp:
		content = lipgloss.NewStyle().Width(m.width).Height(contentH).Render(m.help.View(m.keys))
	case m.palette.Visible():
		content = lipgloss.Place(m.width, contentH, lipgloss.Center, lipgloss.Center, m.palette.View())
	default:
		content = m.viewport.View()
	}
	return lipgloss.JoinVertical(lipgloss.Left, tabBar, content, statusBar)
}

func (m *Model) refreshContent() {
	m.viewport.SetContent(m.pageView())
}

func (m Model) renderTabBar() string {
	parts := make([]string, 0, len(m.pages))
	for i, p := range m.pages {
		label := fmt.Sprintf(" %d %s ", i+1, p.Title)
		if p.ID == m.view.Page {
			parts = append(parts, theme.Hot.Render(label))
		} else {
			parts = append(parts, theme.Muted.Render(label))
		}
	}
	bar := "planwise  " + strings.Join(parts, theme.Muted.Render(" │ "))
	return lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar) + "\n"
}

func (m Model) renderStatusBar() string {
	left := m.status
	if len(m.loading) > 0 {
		left = m.spinner.View() + " " + left
	}
	if m.state.StudentID > 0 {
		left = theme.Hot.Render(fmt.Sprintf("● student %d · plan %d", m.state.StudentID, m.state.PlanID)) + "  " + left
	}
	right := theme.Muted.Render("?:help  tab:page  :::palette  q:quit")
	gap := max(m.width-lipgloss.Width(left)-lipgloss.Width(right), 1)
	bar := left + strings.Repeat(" ", gap) + right
	return "\n" + lipgloss.NewStyle().Background(theme.Mantle).Width(m.width).Render(bar)
}
