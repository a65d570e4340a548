package console

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"livelink/internal/audit"
	"livelink/internal/collection"
	"livelink/internal/entities"
	"livelink/internal/services"
	"livelink/internal/shell"
	"livelink/internal/ui"
	"livelink/internal/utils"
	"livelink/internal/validators"
)

type modalKind int

const (
	modalNone modalKind = iota
	modalDetails
	modalParam
)

// Layout constants in terminal rows and columns.
const (
	headerHeight = 2 // title line + rule
	footerHeight = 1
	sidebarWidth = 20
	// Rows above the first table row inside the content pane: title,
	// counters, filters, blank, column header.
	listChrome = 5
)

type Options struct {
	Operator string
	Theme    *ui.Theme
	// Recorder, when set, feeds the last-action line in the footer.
	Recorder *audit.Recorder
	Currency string
}

// Model is the bubbletea model of the console. It is used through a
// pointer because the modal's OnClose callback refers back to it.
type Model struct {
	service  services.AdminService
	shell    *shell.Shell
	theme    ui.Theme
	keys     KeyMap
	host     *keyHost
	modal    *ui.Modal
	recorder *audit.Recorder
	operator string
	currency string

	width  int
	height int

	queries     map[entities.Kind]collection.Query
	cursors     map[entities.Kind]int
	offsets     map[entities.Kind]int
	filterFocus map[entities.Kind]int

	search    textinput.Model
	searching bool

	modalKind  modalKind
	targetKind entities.Kind
	target     entities.Row
	pending    entities.ActionDescriptor
	param      textinput.Model
	modalError string

	status string
}

func NewModel(service services.AdminService, opts Options) *Model {
	theme := ui.DefaultTheme
	if opts.Theme != nil {
		theme = *opts.Theme
	}
	operator := utils.CoalesceString(opts.Operator, utils.DefaultOperatorID)

	search := textinput.New()
	search.Prompt = "/ "
	search.Placeholder = "search"
	search.CharLimit = 64

	param := textinput.New()
	param.Prompt = "> "
	param.CharLimit = 256

	m := &Model{
		service:     service,
		shell:       shell.New(),
		theme:       theme,
		keys:        DefaultKeyMap,
		host:        newKeyHost(),
		recorder:    opts.Recorder,
		operator:    operator,
		currency:    utils.CoalesceString(opts.Currency, utils.DefaultCurrency),
		width:       100,
		height:      30,
		queries:     make(map[entities.Kind]collection.Query),
		cursors:     make(map[entities.Kind]int),
		offsets:     make(map[entities.Kind]int),
		filterFocus: make(map[entities.Kind]int),
		search:      search,
		param:       param,
	}
	m.modal = ui.NewModal(m.host, theme)
	for _, p := range service.Pages() {
		m.queries[p.Kind()] = p.DefaultQuery()
	}
	return m
}

func (m *Model) Init() tea.Cmd {
	return tea.SetWindowTitle(ui.LogoProps{}.AltText())
}

func (m *Model) Update(message tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch message := message.(type) {
	case tea.WindowSizeMsg:
		m.width, m.height = message.Width, message.Height
		m.ensureCursorVisible()
	case tea.KeyMsg:
		cmd = m.handleKey(message)
	case tea.MouseMsg:
		m.handleMouse(message)
	}
	m.syncModal()
	return m, cmd
}

// Current is the page being shown.
func (m *Model) Current() shell.PageName {
	return m.shell.Current()
}

// Status is the footer status message.
func (m *Model) Status() string {
	return m.status
}

// currentPage returns the entity page behind the current nav item, or
// nil on the dashboard and settings pages.
func (m *Model) currentPage() services.Page {
	kind := m.shell.CurrentItem().Entity
	if kind == "" {
		return nil
	}
	p, err := m.service.Page(kind)
	if err != nil {
		return nil
	}
	return p
}

func (m *Model) currentList() (services.Page, services.ListResult) {
	p := m.currentPage()
	if p == nil {
		return nil, services.ListResult{}
	}
	return p, p.List(m.queries[p.Kind()])
}

func (m *Model) handleKey(message tea.KeyMsg) tea.Cmd {
	if key.Matches(message, m.keys.ForceQuit) {
		return tea.Quit
	}

	// Listeners bound by an open modal see keys before anything else.
	if m.host.Dispatch(message.String()) {
		return nil
	}

	if m.modal.IsOpen() {
		return m.handleModalKey(message)
	}
	if m.searching {
		return m.handleSearchKey(message)
	}

	switch {
	case key.Matches(message, m.keys.Quit):
		return tea.Quit

	case key.Matches(message, m.keys.NextPage):
		m.shell.Step(1)
		m.status = ""

	case key.Matches(message, m.keys.PrevPage):
		m.shell.Step(-1)
		m.status = ""

	case key.Matches(message, m.keys.JumpPage):
		m.jumpTo(message.String())

	case key.Matches(message, m.keys.Up):
		m.moveCursor(-1)
	case key.Matches(message, m.keys.Down):
		m.moveCursor(1)
	case key.Matches(message, m.keys.PageUp):
		m.moveCursor(-m.visibleRows())
	case key.Matches(message, m.keys.PageDown):
		m.moveCursor(m.visibleRows())
	case key.Matches(message, m.keys.Home):
		m.moveCursor(-1 << 30)
	case key.Matches(message, m.keys.End):
		m.moveCursor(1 << 30)

	case key.Matches(message, m.keys.Search):
		if p := m.currentPage(); p != nil {
			m.searching = true
			m.search.SetValue(m.queries[p.Kind()].Search)
			m.search.CursorEnd()
			return m.search.Focus()
		}

	case key.Matches(message, m.keys.NextFilter):
		m.nextFilter()
	case key.Matches(message, m.keys.CycleOption):
		m.cycleOption()
	case key.Matches(message, m.keys.ClearFilters):
		if p := m.currentPage(); p != nil {
			m.queries[p.Kind()] = p.DefaultQuery()
			m.cursors[p.Kind()] = 0
			m.offsets[p.Kind()] = 0
		}

	case key.Matches(message, m.keys.Open):
		m.openDetails()
	}
	return nil
}

func (m *Model) jumpTo(digit string) {
	items := shell.NavItems()
	var index int
	if _, err := fmt.Sscanf(digit, "%d", &index); err != nil || index < 1 || index > len(items) {
		return
	}
	if err := m.shell.Navigate(items[index-1].Page); err == nil {
		m.status = ""
	}
}

func (m *Model) handleSearchKey(message tea.KeyMsg) tea.Cmd {
	p := m.currentPage()
	if p == nil {
		m.searching = false
		return nil
	}
	switch message.Type {
	case tea.KeyEnter, tea.KeyEsc:
		m.searching = false
		m.search.Blur()
		return nil
	}

	var cmd tea.Cmd
	m.search, cmd = m.search.Update(message)
	kind := p.Kind()
	q := m.queries[kind]
	q.Search = m.search.Value()
	m.queries[kind] = q
	m.cursors[kind] = 0
	m.offsets[kind] = 0
	return cmd
}

func (m *Model) nextFilter() {
	p := m.currentPage()
	if p == nil {
		return
	}
	filters := p.Descriptor().Filters
	if len(filters) == 0 {
		return
	}
	m.filterFocus[p.Kind()] = (m.filterFocus[p.Kind()] + 1) % len(filters)
}

// cycleOption advances the focused filter through "all" and its options.
func (m *Model) cycleOption() {
	p := m.currentPage()
	if p == nil {
		return
	}
	filters := p.Descriptor().Filters
	if len(filters) == 0 {
		return
	}
	kind := p.Kind()
	f := filters[m.filterFocus[kind]%len(filters)]
	choices := append([]string{collection.All}, f.Options...)

	current := m.queries[kind].Filters[f.Key]
	if current == "" {
		current = collection.All
	}
	next := choices[0]
	for i, c := range choices {
		if c == current {
			next = choices[(i+1)%len(choices)]
			break
		}
	}
	m.queries[kind] = m.queries[kind].With(f.Key, next)
	m.cursors[kind] = 0
	m.offsets[kind] = 0
}

func (m *Model) visibleRows() int {
	rows := m.height - headerHeight - footerHeight - listChrome
	if rows < 1 {
		rows = 1
	}
	return rows
}

// moveCursor scrolls the current list. It is a no-op while a modal holds
// the scroll lock.
func (m *Model) moveCursor(delta int) {
	if m.host.ScrollLocked() {
		return
	}
	p, list := m.currentList()
	if p == nil {
		return
	}
	kind := p.Kind()
	cursor := m.cursors[kind] + delta
	if cursor >= list.Count {
		cursor = list.Count - 1
	}
	if cursor < 0 {
		cursor = 0
	}
	m.cursors[kind] = cursor
	m.ensureCursorVisible()
}

func (m *Model) ensureCursorVisible() {
	p := m.currentPage()
	if p == nil {
		return
	}
	kind := p.Kind()
	cursor, offset, rows := m.cursors[kind], m.offsets[kind], m.visibleRows()
	if cursor < offset {
		offset = cursor
	}
	if cursor >= offset+rows {
		offset = cursor - rows + 1
	}
	m.offsets[kind] = offset
}

func (m *Model) selectedRow() (entities.Kind, entities.Row, bool) {
	p, list := m.currentList()
	if p == nil || list.Count == 0 {
		return "", entities.Row{}, false
	}
	cursor := m.cursors[p.Kind()]
	if cursor >= list.Count {
		cursor = list.Count - 1
	}
	return p.Kind(), list.Rows[cursor], true
}

func (m *Model) openDetails() {
	kind, row, ok := m.selectedRow()
	if !ok {
		return
	}
	m.targetKind, m.target = kind, row
	m.modalKind = modalDetails
	m.modalError = ""
}

func (m *Model) closeModal() {
	m.modalKind = modalNone
	m.modalError = ""
	m.pending = entities.ActionDescriptor{}
	m.param.Blur()
	m.param.Reset()
}

func (m *Model) handleModalKey(message tea.KeyMsg) tea.Cmd {
	switch m.modalKind {
	case modalDetails:
		m.chooseAction(message.String())
		return nil

	case modalParam:
		if key.Matches(message, m.keys.Submit) {
			m.submitParam()
			return nil
		}
		var cmd tea.Cmd
		m.param, cmd = m.param.Update(message)
		return cmd
	}
	return nil
}

// chooseAction picks the numbered action button in the details modal.
func (m *Model) chooseAction(k string) {
	p, err := m.service.Page(m.targetKind)
	if err != nil {
		return
	}
	actions := p.Descriptor().Actions
	var index int
	if _, err := fmt.Sscanf(k, "%d", &index); err != nil || index < 1 || index > len(actions) {
		return
	}
	action := actions[index-1]
	if !utils.Contains(m.target.Actions, action.Name) {
		m.modalError = action.Label + " is not available for this record"
		return
	}
	if len(action.Params) > 0 {
		m.pending = action
		m.modalKind = modalParam
		m.modalError = ""
		m.param.Reset()
		m.param.Placeholder = action.Params[0]
		m.param.Focus()
		return
	}
	m.perform(action, nil)
}

func (m *Model) submitParam() {
	params := entities.Params{}
	if len(m.pending.Params) > 0 {
		params[m.pending.Params[0]] = m.param.Value()
	}
	m.perform(m.pending, params)
}

func (m *Model) perform(action entities.ActionDescriptor, params entities.Params) {
	res, err := m.service.Perform(context.Background(), m.targetKind, services.ActionRequest{
		ID:       m.target.ID,
		Action:   action.Name,
		Params:   params,
		Operator: m.operator,
	})
	if err != nil {
		var verrs validators.ValidationErrors
		if errors.As(err, &verrs) {
			m.modalError = verrs.Error()
			return
		}
		m.status = "Error: " + err.Error()
		m.closeModal()
		return
	}

	switch {
	case !res.Found:
		m.status = fmt.Sprintf("%s no longer exists", m.target.ID)
	case res.Applied:
		m.status = fmt.Sprintf("%s %s: now %s", action.Label, m.target.ID, utils.Humanize(res.Row.Status))
	default:
		m.status = fmt.Sprintf("No change: %s is already %s", m.target.ID, utils.Humanize(res.Row.Status))
	}
	m.closeModal()
	m.clampCursor()
}

// clampCursor keeps the cursor on a row after the list shrank.
func (m *Model) clampCursor() {
	p, list := m.currentList()
	if p == nil {
		return
	}
	kind := p.Kind()
	if m.cursors[kind] >= list.Count {
		m.cursors[kind] = list.Count - 1
	}
	if m.cursors[kind] < 0 {
		m.cursors[kind] = 0
	}
	m.ensureCursorVisible()
}

// syncModal pushes the current modal state through the controlled modal.
func (m *Model) syncModal() {
	props := ui.DefaultModalProps()
	props.IsOpen = m.modalKind != modalNone
	props.OnClose = m.closeModal
	props.Width = 64

	switch m.modalKind {
	case modalDetails:
		if row, ok := m.refreshTarget(); ok {
			m.target = row
		}
		props.Title = fmt.Sprintf("%s %s", m.singular(), m.target.ID)
		props.Body = m.detailsBody()
	case modalParam:
		props.Title = fmt.Sprintf("%s %s", m.pending.Label, m.target.ID)
		props.Body = m.paramBody()
		// Backdrop clicks leave the form open.
		props.CloseOnBackdropClick = false
	}
	m.modal.Sync(props)
}

func (m *Model) refreshTarget() (entities.Row, bool) {
	p, err := m.service.Page(m.targetKind)
	if err != nil {
		return entities.Row{}, false
	}
	return p.Get(m.target.ID)
}

func (m *Model) singular() string {
	p, err := m.service.Page(m.targetKind)
	if err != nil {
		return ""
	}
	return p.Descriptor().Singular
}

func (m *Model) handleMouse(message tea.MouseMsg) {
	switch message.Button {
	case tea.MouseButtonWheelUp:
		m.moveCursor(-1)
		return
	case tea.MouseButtonWheelDown:
		m.moveCursor(1)
		return
	case tea.MouseButtonLeft:
		if message.Action != tea.MouseActionPress {
			return
		}
	default:
		return
	}

	if m.modal.Click(message.X, message.Y) {
		return
	}

	// Sidebar: one nav item per row.
	if message.X < sidebarWidth {
		index := message.Y - headerHeight
		items := shell.NavItems()
		if index >= 0 && index < len(items) {
			if err := m.shell.Navigate(items[index].Page); err == nil {
				m.status = ""
			}
		}
		return
	}

	// List rows select on click.
	p, list := m.currentList()
	if p == nil {
		return
	}
	row := message.Y - headerHeight - listChrome
	if row < 0 || row >= m.visibleRows() {
		return
	}
	index := m.offsets[p.Kind()] + row
	if index < list.Count {
		m.cursors[p.Kind()] = index
	}
}

func (m *Model) lastAction() string {
	if m.recorder == nil {
		return ""
	}
	e, ok := m.recorder.Last()
	if !ok {
		return ""
	}
	return strings.Join([]string{"last:", e.Action, e.Entity + "/" + e.EntityID, "by", e.Operator}, " ")
}
