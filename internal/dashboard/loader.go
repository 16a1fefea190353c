package dashboard

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"

	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/calendar"
	"github.com/Hirosolo/traindiary-new-frontend-sub000/internal/period"
)

// ErrStaleResult is returned for a load that a newer load superseded while in flight.
var ErrStaleResult = errors.New("result superseded by a newer load")

// Loader hands out tickets; only the most recent ticket is current.
// Superseded loads are not cancelled, their results are dropped.
type Loader struct {
	generation atomic.Uint64
}

type Ticket struct {
	loader     *Loader
	generation uint64
}

func (l *Loader) Begin() Ticket {
	return Ticket{loader: l, generation: l.generation.Add(1)}
}

// Invalidate makes every ticket handed out so far stale.
func (l *Loader) Invalidate() {
	l.generation.Add(1)
}

func (t Ticket) Current() bool {
	return t.loader.generation.Load() == t.generation
}

// Page is the nutrition calendar page state: the selected period and the
// month view last loaded for it.
type Page struct {
	service *Service
	loader  Loader

	mu          sync.Mutex
	year        int
	month       int
	selectedDay int
	view        *NutritionMonth
}

func NewPage(service *Service, year, monthIndex int) *Page {
	return &Page{
		service: service,
		year:    year,
		month:   monthIndex,
	}
}

func (p *Page) Period() (year, monthIndex int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.year, p.month
}

// SetPeriod switches the page to another month. A load still in flight for
// the old period becomes stale.
func (p *Page) SetPeriod(year, monthIndex int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPeriodLocked(year, monthIndex)
}

// setPeriodLocked requires p.mu to be held.
func (p *Page) setPeriodLocked(year, monthIndex int) {
	p.year, p.month = year, monthIndex
	p.view = nil
	p.loader.Invalidate()
}

func (p *Page) SelectDay(day int) {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.selectedDay = day
}

func (p *Page) Prev() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPeriodLocked(calendar.PrevMonth(p.year, p.month))
}

func (p *Page) Next() {
	p.mu.Lock()
	defer p.mu.Unlock()
	p.setPeriodLocked(calendar.NextMonth(p.year, p.month))
}

// Selector returns a period selector that moves this page to the picked month.
func (p *Page) Selector() *period.Selector {
	year, _ := p.Period()
	return period.NewSelector(year, p.SetPeriod)
}

// View is the last loaded month, nil until a load succeeded.
func (p *Page) View() *NutritionMonth {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.view
}

// Load fetches the month view for the current period. When another load or a
// period change happens meanwhile, the result is discarded with ErrStaleResult.
func (p *Page) Load(ctx context.Context) (*NutritionMonth, error) {
	p.mu.Lock()
	ticket := p.loader.Begin()
	year, month, day := p.year, p.month, p.selectedDay
	p.mu.Unlock()

	view, err := p.service.NutritionMonth(ctx, year, month, day)

	p.mu.Lock()
	defer p.mu.Unlock()
	if !ticket.Current() {
		if p.service.metricsManager != nil {
			p.service.metricsManager.CounterStaleLoads.Inc()
		}
		return nil, ErrStaleResult
	}
	if err != nil {
		return nil, err
	}
	p.view = view
	return view, nil
}
