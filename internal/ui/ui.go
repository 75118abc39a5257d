package ui

import (
	"context"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/log"
	"github.com/ospreyhr/attriview/internal/charts"
	"github.com/ospreyhr/attriview/internal/dataset"
	"github.com/ospreyhr/attriview/internal/models"
	"github.com/ospreyhr/attriview/internal/services"
	"github.com/ospreyhr/attriview/internal/shared"
	"github.com/ospreyhr/attriview/internal/stats"
)

// ViewState represents the current view in the TUI.
type ViewState int

const (
	DataView ViewState = iota
	ChartsView
	RawDataView
)

// chart pages within [ChartsView], in display order.
const (
	agePage = iota
	unitPage
	cityPage
	servicePage
	ageScatterPage
	pageCount
)

var pageTitles = [pageCount]string{
	"Histogram by age",
	"Unit Frequency Chart",
	"City Attrition Rate",
	"Attrition rate vs Time service",
	"Attrition rate vs Age",
}

// focusArea tracks which sidebar control receives key input.
type focusArea int

const (
	focusIDInput focusArea = iota
	focusHometown
	focusUnit
	focusTable
)

const chartWidth = 40

// Model represents the TUI application state.
type Model struct {
	ctx    context.Context
	source services.Source
	cfg    *shared.Config
	logger *log.Logger

	view   ViewState
	focus  focusArea
	page   int
	width  int
	height int

	idInput  textinput.Model
	hometown *selector
	unit     *selector

	table    table.Model
	rawTable table.Model

	ds       *models.Dataset
	raw      *models.Dataset
	filtered []models.Employee

	sweep   *charts.Sweep
	animSeq int

	err  error
	help help.Model
	keys keyMap
}

type datasetLoadedMsg struct {
	limited *models.Dataset
	raw     *models.Dataset
	err     error
}

// frameMsg drives one repaint of the growing-bars animation. seq guards
// against ticks from an abandoned sweep.
type frameMsg struct {
	seq int
}

// NewModel creates a new TUI model with the provided dependencies.
func NewModel(ctx context.Context, source services.Source, cfg *shared.Config, logger *log.Logger) *Model {
	input := textinput.New()
	input.Placeholder = "substring, case-insensitive"
	input.CharLimit = 32
	input.Width = 24
	input.Focus()

	return &Model{
		ctx:      ctx,
		source:   source,
		cfg:      cfg,
		logger:   logger,
		view:     DataView,
		focus:    focusIDInput,
		idInput:  input,
		hometown: newSelector("Hometown", []string{dataset.All}),
		unit:     newSelector("Unit", []string{dataset.All}),
		help:     help.New(),
		keys:     newKeyMap(),
	}
}

// Init initializes the TUI by loading the dataset.
func (m *Model) Init() tea.Cmd {
	return m.loadDataset()
}

// Update handles incoming messages and updates the model state.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.table.SetHeight(max(msg.Height-12, 3))
		m.rawTable.SetHeight(max(msg.Height-10, 3))
		return m, nil

	case tea.KeyMsg:
		return m.handleKeys(msg)

	case datasetLoadedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, tea.Quit
		}
		m.ds = msg.limited
		m.raw = msg.raw
		m.hometown = newSelector("Hometown", dataset.Options(m.ds.Hometowns()))
		m.unit = newSelector("Unit", dataset.Options(m.ds.Units()))
		m.table = newEmployeeTable(m.ds.Rows, max(m.height-12, 10))
		m.rawTable = newEmployeeTable(m.raw.Rows, max(m.height-10, 10))
		m.applyFilters()
		return m, nil

	case frameMsg:
		return m.handleFrame(msg)
	}

	return m, nil
}

// View renders the UI based on the current view state.
func (m *Model) View() string {
	if m.err != nil {
		return styles.err.Render(fmt.Sprintf("Error: %v\n\nPress q to quit", m.err))
	}
	if m.ds == nil {
		return "Loading employee data...\n"
	}

	var main string
	switch m.view {
	case DataView:
		main = m.renderData()
	case ChartsView:
		main = m.renderCharts()
	case RawDataView:
		main = m.renderRaw()
	}

	body := lipgloss.JoinHorizontal(lipgloss.Top, styles.sidebar.Render(m.renderSidebar()), main)
	return fmt.Sprintf("%s\n%s", body, m.help.View(m.keys))
}

func (m *Model) handleKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	s := msg.String()
	if s == "ctrl+c" {
		return m, tea.Quit
	}

	// the text input swallows printable keys while focused
	if m.focus == focusIDInput && m.ds != nil {
		switch s {
		case "tab":
			m.focus = focusHometown
			m.idInput.Blur()
			return m, nil
		case "1", "2", "3":
			// view switches stay reachable while typing
		default:
			var cmd tea.Cmd
			m.idInput, cmd = m.idInput.Update(msg)
			m.applyFilters()
			return m, cmd
		}
	}

	switch s {
	case "q":
		return m, tea.Quit
	case "tab":
		m.advanceFocus()
		return m, nil
	case "left", "right":
		return m.handleHorizontal(s)
	case "1":
		m.view = DataView
		return m, nil
	case "2":
		m.view = ChartsView
		return m, nil
	case "3":
		m.view = RawDataView
		return m, nil
	case "a":
		if m.view == ChartsView && m.ds != nil && m.sweep == nil {
			return m, m.startAnimation()
		}
		return m, nil
	}

	return m.updateTables(msg)
}

func (m *Model) advanceFocus() {
	switch m.focus {
	case focusIDInput:
		m.focus = focusHometown
		m.idInput.Blur()
	case focusHometown:
		m.focus = focusUnit
	case focusUnit:
		m.focus = focusTable
		m.table.Focus()
	case focusTable:
		m.focus = focusIDInput
		m.table.Blur()
		m.idInput.Focus()
	}
}

func (m *Model) handleHorizontal(s string) (tea.Model, tea.Cmd) {
	switch m.focus {
	case focusHometown:
		if s == "left" {
			m.hometown.Prev()
		} else {
			m.hometown.Next()
		}
		m.applyFilters()
	case focusUnit:
		if s == "left" {
			m.unit.Prev()
		} else {
			m.unit.Next()
		}
		m.applyFilters()
	default:
		if m.view == ChartsView && m.sweep == nil {
			if s == "left" {
				m.page = (m.page + pageCount - 1) % pageCount
			} else {
				m.page = (m.page + 1) % pageCount
			}
		}
	}
	return m, nil
}

func (m *Model) updateTables(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd
	switch m.view {
	case DataView:
		m.table, cmd = m.table.Update(msg)
	case RawDataView:
		m.rawTable, cmd = m.rawTable.Update(msg)
	}
	return m, cmd
}

func (m *Model) loadDataset() tea.Cmd {
	return func() tea.Msg {
		limited, err := m.source.Load(m.ctx, m.cfg.Dataset.RowLimit)
		if err != nil {
			return datasetLoadedMsg{err: err}
		}
		raw, err := m.source.Load(m.ctx, 0)
		if err != nil {
			return datasetLoadedMsg{err: err}
		}
		return datasetLoadedMsg{limited: limited, raw: raw}
	}
}

// applyFilters recomputes every derived view from the current filter state.
// Nothing incremental survives between render passes.
func (m *Model) applyFilters() {
	if m.ds == nil {
		return
	}
	f := dataset.Filter{
		IDQuery:  m.idInput.Value(),
		Hometown: m.hometown.Value(),
		Unit:     m.unit.Value(),
	}
	m.filtered = f.Apply(m.ds.Rows)
	m.table.SetRows(employeeRows(m.filtered))
	m.logger.Debug("render pass",
		"id", shared.GenerateID(),
		"rows", len(m.filtered),
		"id_query", f.IDQuery,
		"hometown", f.Hometown,
		"unit", f.Unit,
	)
}

func (m *Model) startAnimation() tea.Cmd {
	m.animSeq++
	m.page = agePage
	return m.beginSweep(agePage)
}

// beginSweep builds the sweep for a bar-chart page and schedules its first
// frame. Returns nil when the page has nothing to animate.
func (m *Model) beginSweep(page int) tea.Cmd {
	labels, targets := m.barData(page)
	sweep, err := charts.NewSweep(labels, targets)
	if err != nil {
		m.logger.Warn("animation skipped", "page", pageTitles[page], "error", err)
		m.sweep = nil
		return nil
	}

	m.sweep = sweep
	m.page = page
	seq := m.animSeq
	return tea.Tick(sweep.Delay(), func(time.Time) tea.Msg { return frameMsg{seq: seq} })
}

func (m *Model) handleFrame(msg frameMsg) (tea.Model, tea.Cmd) {
	if msg.seq != m.animSeq || m.sweep == nil {
		return m, nil
	}

	if _, ok := m.sweep.Next(); ok {
		return m, tea.Tick(m.sweep.Delay(), func(time.Time) tea.Msg { return frameMsg{seq: msg.seq} })
	}

	// current chart fully grown; the unit chart animates after the age chart
	if m.page == agePage {
		return m, m.beginSweep(unitPage)
	}
	m.sweep = nil
	return m, nil
}

func (m *Model) barData(page int) ([]string, []float64) {
	var buckets []stats.Bucket
	if page == agePage {
		buckets = stats.AgeHistogram(m.filtered)
	} else {
		buckets = stats.UnitCounts(m.filtered)
	}

	labels := make([]string, len(buckets))
	targets := make([]float64, len(buckets))
	for i, b := range buckets {
		labels[i] = b.Label
		targets[i] = b.Value
	}
	return labels, targets
}

func (m *Model) renderSidebar() string {
	title := styles.title.Render("Employee analysis")
	id := "Employee ID: " + m.idInput.View()
	if m.focus == focusIDInput {
		id = styles.focused.Render("Employee ID: ") + m.idInput.View()
	}

	return fmt.Sprintf(
		"%s\n%s\n%s\n%s\n\n%s",
		title,
		id,
		m.hometown.View(m.focus == focusHometown),
		m.unit.View(m.focus == focusUnit),
		styles.help.Render(fmt.Sprintf("%d of %d rows", len(m.filtered), m.ds.Len())),
	)
}

func (m *Model) renderData() string {
	header := styles.header.Render("Data Frame")
	return fmt.Sprintf("%s\n%s", header, m.table.View())
}

func (m *Model) renderRaw() string {
	header := styles.header.Render("Raw Data Frame")
	return fmt.Sprintf("%s\n%s\n%s", header, m.rawTable.View(),
		styles.help.Render(fmt.Sprintf("%d rows, unfiltered", m.raw.Len())))
}

func (m *Model) renderCharts() string {
	theme := m.cfg.Theme

	var body string
	switch m.page {
	case agePage, unitPage:
		labels, targets := m.barData(m.page)
		color := theme.AgeChart
		if m.page == unitPage {
			color = theme.UnitChart
		}
		bar := charts.BarChart{
			Title:  pageTitles[m.page],
			Colors: []string{color},
			Width:  chartWidth,
		}
		values := targets
		if m.sweep != nil {
			values = m.sweep.Display()
			for _, t := range targets {
				if t > bar.Max {
					bar.Max = t
				}
			}
		}
		body = bar.Render(labels, values)

	case cityPage:
		buckets := stats.MeanAttritionByHometown(m.raw.Rows)
		labels := make([]string, len(buckets))
		values := make([]float64, len(buckets))
		for i, b := range buckets {
			labels[i] = b.Label
			values[i] = b.Value
		}
		line := charts.LineChart{Title: pageTitles[m.page], LineColor: theme.Line}
		body = line.RenderLabeled(labels, values)

	case servicePage, ageScatterPage:
		x := func(e models.Employee) float64 { return e.TimeOfService }
		if m.page == ageScatterPage {
			x = func(e models.Employee) float64 { return e.Age }
		}
		grouped := stats.GroupedMean(m.raw.Rows, x)
		points := make([]charts.Point, len(grouped))
		for i, g := range grouped {
			points[i] = charts.Point{X: g.X, Y: g.Mean, Weight: g.Count}
		}
		line := charts.LineChart{
			Title:     pageTitles[m.page],
			LineColor: theme.MeanLine,
			Gradient:  theme.ScatterGradient,
		}
		body = line.Render(points)
	}

	status := fmt.Sprintf("chart %d/%d  ←/→ to browse", m.page+1, pageCount)
	if m.sweep != nil {
		status = "animating..."
	}
	return fmt.Sprintf("%s\n%s", body, styles.help.Render(status))
}

func newEmployeeTable(rows []models.Employee, height int) table.Model {
	columns := []table.Column{
		{Title: models.ColEmployeeID, Width: 12},
		{Title: models.ColHometown, Width: 14},
		{Title: models.ColUnit, Width: 20},
		{Title: models.ColAge, Width: 5},
		{Title: models.ColAttritionRate, Width: 14},
		{Title: models.ColTimeOfService, Width: 15},
	}

	return table.New(
		table.WithColumns(columns),
		table.WithRows(employeeRows(rows)),
		table.WithHeight(height),
	)
}

func employeeRows(rows []models.Employee) []table.Row {
	out := make([]table.Row, len(rows))
	for i, e := range rows {
		out[i] = table.Row{
			e.ID,
			e.Hometown,
			e.Unit,
			shared.FormatFloat(e.Age),
			shared.FormatFloat(e.AttritionRate),
			shared.FormatFloat(e.TimeOfService),
		}
	}
	return out
}
