package services

import (
	"context"
	"fmt"
	"time"

	"livelink/internal/audit"
	"livelink/internal/entities"
	"livelink/internal/fixtures"
	"livelink/internal/models"
	"livelink/internal/utils"
	"livelink/pkg/logger"
)

type AdminService interface {
	Pages() []Page
	Page(kind entities.Kind) (Page, error)
	Perform(ctx context.Context, kind entities.Kind, req ActionRequest) (ActionResult, error)
	Dashboard() models.DashboardMetrics
	Settings() models.SystemSettings
}

type Options struct {
	Clock        func() time.Time
	Notifier     audit.Notifier
	Logger       *logger.Logger
	Settings     models.SystemSettings
	ExpiryWindow time.Duration
}

func (o Options) withDefaults() Options {
	if o.Clock == nil {
		o.Clock = time.Now
	}
	if o.Notifier == nil {
		o.Notifier = audit.Noop
	}
	if o.Logger == nil {
		o.Logger = logger.Discard()
	}
	if o.ExpiryWindow <= 0 {
		o.ExpiryWindow = utils.DocumentExpiryWarning
	}
	return o
}

// Seed is the initial record set of every page.
type Seed struct {
	Users     []models.User
	Drivers   []models.Driver
	Rides     []models.Ride
	Tickets   []models.SupportTicket
	Alerts    []models.EmergencyAlert
	Documents []models.Document
}

// FixtureSeed returns fresh fixture records.
func FixtureSeed() Seed {
	drivers := fixtures.Drivers()
	return Seed{
		Users:     fixtures.Users(),
		Drivers:   drivers,
		Rides:     fixtures.Rides(),
		Tickets:   fixtures.Tickets(),
		Alerts:    fixtures.Alerts(),
		Documents: fixtures.Documents(drivers),
	}
}

type adminService struct {
	drivers   *page[models.Driver]
	users     *page[models.User]
	rides     *page[models.Ride]
	tickets   *page[models.SupportTicket]
	alerts    *page[models.EmergencyAlert]
	documents *page[models.Document]

	pages    map[entities.Kind]Page
	clock    func() time.Time
	settings models.SystemSettings
}

func NewAdminService(seed Seed, opts Options) AdminService {
	opts = opts.withDefaults()

	s := &adminService{
		drivers:   newPage(entities.Drivers(), seed.Drivers, opts),
		users:     newPage(entities.Users(), seed.Users, opts),
		rides:     newPage(entities.Rides(), seed.Rides, opts),
		tickets:   newPage(entities.Tickets(), seed.Tickets, opts),
		alerts:    newPage(entities.Alerts(), seed.Alerts, opts),
		documents: newPage(entities.Documents(opts.Clock, opts.ExpiryWindow), seed.Documents, opts),
		clock:     opts.Clock,
		settings:  opts.Settings,
	}
	s.pages = map[entities.Kind]Page{
		entities.KindDrivers:   s.drivers,
		entities.KindUsers:     s.users,
		entities.KindRides:     s.rides,
		entities.KindTickets:   s.tickets,
		entities.KindAlerts:    s.alerts,
		entities.KindDocuments: s.documents,
	}
	return s
}

// Pages returns every page in navigation order.
func (s *adminService) Pages() []Page {
	out := make([]Page, 0, len(entities.AllKinds))
	for _, kind := range entities.AllKinds {
		out = append(out, s.pages[kind])
	}
	return out
}

func (s *adminService) Page(kind entities.Kind) (Page, error) {
	p, ok := s.pages[kind]
	if !ok {
		return nil, fmt.Errorf("%q: %w", kind, ErrUnknownEntity)
	}
	return p, nil
}

func (s *adminService) Perform(ctx context.Context, kind entities.Kind, req ActionRequest) (ActionResult, error) {
	p, err := s.Page(kind)
	if err != nil {
		return ActionResult{}, err
	}
	return p.Perform(ctx, req)
}

func (s *adminService) Dashboard() models.DashboardMetrics {
	rides := s.rides.Counts()
	now := s.clock()
	start, end := utils.StartOfDay(now), utils.EndOfDay(now)

	return models.DashboardMetrics{
		TotalRides:           rides.Value("total"),
		TotalEarnings:        utils.RoundCurrency(rides.Total("revenue")),
		ActiveDrivers:        s.drivers.Counts().Value("active"),
		ActiveUsers:          s.users.Counts().Value("active"),
		PendingVerifications: s.documents.Counts().Value("pending"),
		OpenTickets:          s.tickets.Counts().Value("open"),
		EmergencyAlerts:      s.alerts.Counts().Value("active"),
		TodayRides: s.rides.count(func(r *models.Ride) bool {
			return !r.RequestedAt.Before(start) && !r.RequestedAt.After(end)
		}),
	}
}

func (s *adminService) Settings() models.SystemSettings {
	return s.settings
}
