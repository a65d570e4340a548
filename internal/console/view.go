package console

import (
	"fmt"
	"strconv"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"livelink/internal/collection"
	"livelink/internal/entities"
	"livelink/internal/shell"
	"livelink/internal/ui"
	"livelink/internal/utils"
)

func (m *Model) View() string {
	header := m.viewHeader()
	bodyHeight := m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	contentWidth := m.width - sidebarWidth - 1
	if contentWidth < 20 {
		contentWidth = 20
	}

	sidebar := lipgloss.NewStyle().
		Width(sidebarWidth).
		Height(bodyHeight).
		Render(m.viewSidebar())

	var content string
	switch m.shell.Current() {
	case shell.PageDashboard:
		content = m.viewDashboard(contentWidth)
	case shell.PageSettings:
		content = m.viewSettings()
	default:
		content = m.viewEntityPage(contentWidth)
	}
	content = lipgloss.NewStyle().
		MaxWidth(contentWidth).
		Height(bodyHeight).
		MaxHeight(bodyHeight).
		Render(content)

	body := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, " ", content)
	view := header + "\n" + body + "\n" + m.viewFooter()
	return m.modal.Overlay(view, m.width, m.height)
}

func (m *Model) viewHeader() string {
	logo := ui.Logo(ui.LogoProps{Size: ui.LogoMD}, m.theme)
	who := lipgloss.NewStyle().Foreground(m.theme.FaintText).
		Render(ui.Glyph(ui.IconUser) + " " + m.operator)
	gap := m.width - ansi.StringWidth(logo) - ansi.StringWidth(who)
	if gap < 1 {
		gap = 1
	}
	rule := lipgloss.NewStyle().Foreground(m.theme.BorderColor).
		Render(strings.Repeat("─", max(m.width, 1)))
	return logo + strings.Repeat(" ", gap) + who + "\n" + rule
}

func (m *Model) viewSidebar() string {
	current := m.shell.Current()
	normal := lipgloss.NewStyle().Foreground(m.theme.NormalText)
	active := lipgloss.NewStyle().
		Bold(true).
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground)

	lines := make([]string, 0, len(shell.NavItems()))
	for i, item := range shell.NavItems() {
		label := fmt.Sprintf("%d %s %s", i+1, ui.Glyph(item.Icon), item.Label)
		label = ansi.Truncate(label, sidebarWidth, "…")
		if item.Page == current {
			lines = append(lines, active.Width(sidebarWidth).Render(label))
			continue
		}
		lines = append(lines, normal.Render(label))
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewFooter() string {
	help := helpLine(m.keys.Up, m.keys.Down, m.keys.NextPage, m.keys.Search,
		m.keys.NextFilter, m.keys.CycleOption, m.keys.Open, m.keys.Quit)
	if m.modal.IsOpen() {
		help = "esc close"
		if m.modalKind == modalParam {
			help = "enter submit  esc cancel"
		} else {
			help = "1-9 action  " + help
		}
	}
	parts := []string{help}
	if m.status != "" {
		parts = append(parts, m.status)
	}
	if last := m.lastAction(); last != "" {
		parts = append(parts, last)
	}
	line := ansi.Truncate(strings.Join(parts, "  │  "), max(m.width, 1), "…")
	return lipgloss.NewStyle().Foreground(m.theme.HelpText).Render(line)
}

// viewEntityPage renders the generic list page. The line layout must
// match listChrome: title, counters, filters, blank, column header.
func (m *Model) viewEntityPage(width int) string {
	p, list := m.currentList()
	if p == nil {
		return ""
	}
	d := p.Descriptor()
	kind := p.Kind()

	lines := []string{
		firstLine(ui.Text(ui.TextProps{As: ui.ElementH2, Content: ui.Glyph(d.Icon) + " " + d.Title}, m.theme)),
		m.viewCounters(list.Counts),
		m.viewFilters(d, list.Query, m.filterFocus[kind]),
		"",
		m.viewColumnHeader(d),
	}

	if list.Count == 0 {
		empty := ui.Text(ui.TextProps{As: ui.ElementSpan, Color: ui.ColorSecondary,
			Content: fmt.Sprintf("No records match (%d total)", list.Total)}, m.theme)
		return strings.Join(append(lines, empty), "\n")
	}

	offset, rows := m.offsets[kind], m.visibleRows()
	cursor := m.cursors[kind]
	selected := lipgloss.NewStyle().
		Foreground(m.theme.SelectedForeground).
		Background(m.theme.SelectedBackground)
	for i := offset; i < list.Count && i < offset+rows; i++ {
		line := m.viewRow(d, list.Rows[i])
		if i == cursor {
			line = selected.Width(width).Render(ansi.Strip(line))
		}
		lines = append(lines, line)
	}
	return strings.Join(lines, "\n")
}

func (m *Model) viewCounters(counts entities.Counts) string {
	parts := make([]string, 0, len(counts.Counters)+len(counts.Totals))
	for _, c := range counts.Counters {
		parts = append(parts, ui.Badge(fmt.Sprintf("%s %d", c.Label, c.Value), c.Variant, m.theme))
	}
	for _, t := range counts.Totals {
		parts = append(parts, ui.Badge(t.Label+" "+utils.FormatCurrency(t.Value, m.currency), ui.BadgeInfo, m.theme))
	}
	return strings.Join(parts, " ")
}

func (m *Model) viewFilters(d entities.Descriptor, q collection.Query, focus int) string {
	faint := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	focused := lipgloss.NewStyle().Foreground(m.theme.Primary).Bold(true).Underline(true)

	search := faint.Render(ui.Glyph(ui.IconSearch) + " " + utils.CoalesceString(q.Search, "search"))
	if m.searching {
		search = m.search.View()
	}
	parts := []string{search}
	for i, f := range d.Filters {
		value := utils.Humanize(q.Selection(f.Key))
		label := f.Label + ": " + value
		if i == focus%max(len(d.Filters), 1) {
			parts = append(parts, focused.Render(label))
			continue
		}
		parts = append(parts, faint.Render(label))
	}
	return strings.Join(parts, "   ")
}

func (m *Model) viewColumnHeader(d entities.Descriptor) string {
	style := lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground)
	cells := make([]string, 0, len(d.Columns)+1)
	for _, c := range d.Columns {
		cells = append(cells, pad(c.Header, c.Width))
	}
	cells = append(cells, "Status")
	return style.Render(strings.Join(cells, " "))
}

func (m *Model) viewRow(d entities.Descriptor, row entities.Row) string {
	cells := make([]string, 0, len(row.Cells)+1)
	for i, value := range row.Cells {
		width := 12
		if i < len(d.Columns) {
			width = d.Columns[i].Width
		}
		cells = append(cells, pad(value, width))
	}
	cells = append(cells, ui.Badge(utils.Humanize(row.Status), row.Variant, m.theme))
	return strings.Join(cells, " ")
}

func (m *Model) viewDashboard(width int) string {
	metrics := m.service.Dashboard()
	title := firstLine(ui.Text(ui.TextProps{As: ui.ElementH2, Content: ui.Glyph(ui.IconDashboard) + " Dashboard"}, m.theme))

	card := func(icon ui.IconName, label, value string) string {
		return lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(m.theme.BorderColor).
			Padding(0, 1).
			Width(22).
			Render(ui.Glyph(icon) + " " + label + "\n" +
				lipgloss.NewStyle().Bold(true).Foreground(m.theme.HeaderForeground).Render(value))
	}

	cards := []string{
		card(ui.IconTaxi, "Total Rides", strconv.Itoa(metrics.TotalRides)),
		card(ui.IconMoney, "Total Earnings", utils.FormatCurrency(metrics.TotalEarnings, m.currency)),
		card(ui.IconCar, "Active Drivers", strconv.Itoa(metrics.ActiveDrivers)),
		card(ui.IconUsers, "Active Users", strconv.Itoa(metrics.ActiveUsers)),
		card(ui.IconVerification, "Pending Verifications", strconv.Itoa(metrics.PendingVerifications)),
		card(ui.IconSupport, "Open Tickets", strconv.Itoa(metrics.OpenTickets)),
		card(ui.IconEmergency, "Emergency Alerts", strconv.Itoa(metrics.EmergencyAlerts)),
		card(ui.IconArrow, "Today's Rides", strconv.Itoa(metrics.TodayRides)),
	}

	perRow := max(width/25, 1)
	var grid []string
	for i := 0; i < len(cards); i += perRow {
		end := min(i+perRow, len(cards))
		grid = append(grid, lipgloss.JoinHorizontal(lipgloss.Top, cards[i:end]...))
	}

	quick := []string{
		ui.Button(ui.ButtonProps{Label: "5 Review Verifications", Variant: ui.ButtonPrimary, Size: ui.ButtonSM}, m.theme),
		ui.Button(ui.ButtonProps{Label: "6 Emergency Alerts", Variant: ui.ButtonDanger, Size: ui.ButtonSM}, m.theme),
		ui.Button(ui.ButtonProps{Label: "7 Support Tickets", Variant: ui.ButtonOutline, Size: ui.ButtonSM}, m.theme),
	}

	return title + "\n\n" + strings.Join(grid, "\n") + "\n\n" +
		firstLine(ui.Text(ui.TextProps{As: ui.ElementH4, Content: "Quick Actions"}, m.theme)) + "\n" +
		strings.Join(quick, " ")
}

func (m *Model) viewSettings() string {
	s := m.service.Settings()
	money := func(v float64) string { return utils.FormatCurrency(v, m.currency) }
	percent := func(v float64) string { return strconv.FormatFloat(v, 'f', -1, 64) + "%" }
	flag := func(v bool) string {
		if v {
			return ui.Badge("Enabled", ui.BadgeSuccess, m.theme)
		}
		return ui.Badge("Disabled", ui.BadgeNeutral, m.theme)
	}

	section := func(title string, fields ...entities.Field) string {
		var b strings.Builder
		b.WriteString(firstLine(ui.Text(ui.TextProps{As: ui.ElementH4, Content: title}, m.theme)))
		for _, f := range fields {
			b.WriteString("\n  " + pad(f.Label, 24) + " " + f.Value)
		}
		return b.String()
	}

	docs := make([]string, len(s.Verification.RequiredDocuments))
	for i, d := range s.Verification.RequiredDocuments {
		docs[i] = utils.Humanize(string(d))
	}

	left := strings.Join([]string{
		section("Fare",
			entities.Field{Label: "Base fare", Value: money(s.Fare.BaseFare)},
			entities.Field{Label: "Per km", Value: money(s.Fare.PerKmRate)},
			entities.Field{Label: "Per minute", Value: money(s.Fare.PerMinuteRate)},
			entities.Field{Label: "Minimum fare", Value: money(s.Fare.MinimumFare)},
			entities.Field{Label: "Maximum fare", Value: money(s.Fare.MaximumFare)},
			entities.Field{Label: "Peak hour multiplier", Value: fmt.Sprintf("%.1fx", s.Fare.PeakHourMultiplier)},
			entities.Field{Label: "Surge multiplier", Value: fmt.Sprintf("%.1fx", s.Fare.SurgeMultiplier)},
			entities.Field{Label: "Cancellation fee", Value: money(s.Fare.CancellationFee)},
		),
		section("Commission",
			entities.Field{Label: "Driver commission", Value: percent(s.Commission.DriverCommission)},
			entities.Field{Label: "Platform commission", Value: percent(s.Commission.PlatformCommission)},
			entities.Field{Label: "Payment processing fee", Value: percent(s.Commission.PaymentProcessingFee)},
			entities.Field{Label: "Referral bonus", Value: money(s.Commission.ReferralBonus)},
		),
	}, "\n\n")
	right := strings.Join([]string{
		section("Safety",
			entities.Field{Label: "SOS", Value: flag(s.Safety.EnableSOS)},
			entities.Field{Label: "Emergency contacts", Value: strings.Join(s.Safety.EmergencyContacts, ", ")},
			entities.Field{Label: "Max ride distance", Value: fmt.Sprintf("%d km", s.Safety.MaxRideDistance)},
			entities.Field{Label: "Max ride duration", Value: fmt.Sprintf("%d min", s.Safety.MaxRideDuration)},
			entities.Field{Label: "Emergency response time", Value: fmt.Sprintf("%d min", s.Safety.EmergencyResponseTime)},
			entities.Field{Label: "Background check required", Value: flag(s.Safety.BackgroundCheckRequired)},
			entities.Field{Label: "Night ride restrictions", Value: flag(s.Safety.NightRideRestrictions)},
		),
		section("Verification",
			entities.Field{Label: "Auto approval", Value: flag(s.Verification.AutoApprovalEnabled)},
			entities.Field{Label: "Expiry warning", Value: fmt.Sprintf("%d days", s.Verification.DocumentExpiryWarningDays)},
			entities.Field{Label: "Required documents", Value: strings.Join(docs, ", ")},
		),
	}, "\n\n")

	title := firstLine(ui.Text(ui.TextProps{As: ui.ElementH2, Content: ui.Glyph(ui.IconSettings) + " Settings"}, m.theme))
	return title + "\n\n" + lipgloss.JoinHorizontal(lipgloss.Top, left, "    ", right)
}

func (m *Model) detailsBody() string {
	var b strings.Builder
	label := lipgloss.NewStyle().Foreground(m.theme.FaintText)
	for _, f := range m.target.Details {
		b.WriteString(label.Render(pad(f.Label, 16)) + " " + f.Value + "\n")
	}
	b.WriteString(label.Render(pad("Status", 16)) + " " +
		ui.Badge(utils.Humanize(m.target.Status), m.target.Variant, m.theme) + "\n\n")

	p, err := m.service.Page(m.targetKind)
	if err == nil {
		buttons := make([]string, 0, len(p.Descriptor().Actions))
		for i, a := range p.Descriptor().Actions {
			buttons = append(buttons, ui.Button(ui.ButtonProps{
				Label:    fmt.Sprintf("%d %s", i+1, a.Label),
				Variant:  a.Variant,
				Size:     ui.ButtonSM,
				Disabled: !utils.Contains(m.target.Actions, a.Name),
			}, m.theme))
		}
		b.WriteString(strings.Join(buttons, " "))
	}
	if m.modalError != "" {
		b.WriteString("\n\n" + ui.Text(ui.TextProps{As: ui.ElementSpan, Color: ui.ColorDanger, Content: m.modalError}, m.theme))
	}
	return b.String()
}

func (m *Model) paramBody() string {
	var b strings.Builder
	if len(m.pending.Params) > 0 {
		b.WriteString(utils.Humanize(m.pending.Params[0]) + "\n")
	}
	b.WriteString(m.param.View())
	if m.modalError != "" {
		b.WriteString("\n\n" + ui.Text(ui.TextProps{As: ui.ElementSpan, Color: ui.ColorDanger, Content: m.modalError}, m.theme))
	}
	return b.String()
}

// firstLine drops the trailing newline block elements carry.
func firstLine(s string) string {
	return strings.TrimRight(s, "\n")
}

// pad truncates or right-pads s to exactly width cells.
func pad(s string, width int) string {
	if width <= 0 {
		return s
	}
	s = ansi.Truncate(s, width, "…")
	if w := ansi.StringWidth(s); w < width {
		s += strings.Repeat(" ", width-w)
	}
	return s
}
