package calendar

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	ics "github.com/arran4/golang-ical"
	"github.com/google/uuid"

	"github.com/alexanderramin/scotty/internal/domain"
)

const (
	DefaultUIDDomain = "scotty.local"
	DefaultProdID    = "-//Scotty Scheduler//EN"

	localTimeFormat = "20060102T150405"
)

var clockPattern = regexp.MustCompile(`^(\d{1,2}):(\d{2})$`)

// Options configures a Generator. Zero values fall back to defaults.
type Options struct {
	Location  *time.Location
	UIDDomain string
	ProdID    string
}

// Generator turns course records into weekly recurring iCalendar events.
// It reads no state other than its clock.
type Generator struct {
	now       func() time.Time
	loc       *time.Location
	uidDomain string
	prodID    string
	newID     func() string
}

// NewGenerator returns a Generator reading the current time from now.
// A nil now uses time.Now.
func NewGenerator(now func() time.Time, opts Options) *Generator {
	if now == nil {
		now = time.Now
	}
	if opts.Location == nil {
		opts.Location = time.Local
	}
	if opts.UIDDomain == "" {
		opts.UIDDomain = DefaultUIDDomain
	}
	if opts.ProdID == "" {
		opts.ProdID = DefaultProdID
	}
	return &Generator{
		now:       now,
		loc:       opts.Location,
		uidDomain: opts.UIDDomain,
		prodID:    opts.ProdID,
		newID:     uuid.NewString,
	}
}

// DayOffset returns how many days after today the target weekday falls,
// in [0,6]. It is 0 when today is the target.
func DayOffset(today time.Weekday, target domain.Weekday) int {
	return (target.Index() - domain.MondayIndex(today) + 7) % 7
}

// NextOccurrence returns midnight of the next date (today included) that
// falls on target, in now's location.
func NextOccurrence(now time.Time, target domain.Weekday) time.Time {
	y, m, d := now.Date()
	return time.Date(y, m, d+DayOffset(now.Weekday(), target), 0, 0, 0, 0, now.Location())
}

// Build derives the event for rec. Empty id, location and description get
// their sentinel values. An unknown day or malformed time is an error for
// this record only.
func (g *Generator) Build(rec domain.CourseRecord) (*domain.CalendarEvent, error) {
	day, ok := domain.ParseWeekday(rec.Day)
	if !ok {
		return nil, fmt.Errorf("%w: %q", ErrInvalidDay, rec.Day)
	}
	startH, startM, err := parseClock(rec.StartTime)
	if err != nil {
		return nil, fmt.Errorf("start time: %w", err)
	}
	endH, endM, err := parseClock(rec.EndTime)
	if err != nil {
		return nil, fmt.Errorf("end time: %w", err)
	}

	rec = rec.WithDefaults()
	now := g.now()
	date := NextOccurrence(now.In(g.loc), day)
	y, m, d := date.Date()

	return &domain.CalendarEvent{
		UID:         g.newID() + "@" + g.uidDomain,
		Stamp:       now.UTC(),
		Start:       time.Date(y, m, d, startH, startM, 0, 0, g.loc),
		End:         time.Date(y, m, d, endH, endM, 0, 0, g.loc),
		Summary:     fmt.Sprintf("%s (%s)", rec.Title, rec.ID),
		Location:    rec.Location,
		Description: rec.Description,
		Recurrence: domain.Recurrence{
			Freq:  "WEEKLY",
			Count: domain.TermWeeks,
			ByDay: day.Code(),
		},
	}, nil
}

// Serialize renders ev as a VCALENDAR holding a single VEVENT. DTSTART and
// DTEND are floating local times; DTSTAMP is UTC.
func (g *Generator) Serialize(ev *domain.CalendarEvent) string {
	cal := ics.NewCalendar()
	cal.SetProductId(g.prodID)

	event := cal.AddEvent(ev.UID)
	event.SetDtStampTime(ev.Stamp)
	event.SetProperty(ics.ComponentPropertyDtStart, ev.Start.Format(localTimeFormat))
	event.SetProperty(ics.ComponentPropertyDtEnd, ev.End.Format(localTimeFormat))
	event.SetSummary(ev.Summary)
	event.SetLocation(ev.Location)
	event.SetDescription(ev.Description)
	event.SetProperty(ics.ComponentPropertyRrule, ev.Recurrence.String())

	return cal.Serialize()
}

// Generate builds and serializes the event for rec.
func (g *Generator) Generate(rec domain.CourseRecord) (string, error) {
	ev, err := g.Build(rec)
	if err != nil {
		return "", err
	}
	return g.Serialize(ev), nil
}

func parseClock(s string) (int, int, error) {
	m := clockPattern.FindStringSubmatch(s)
	if m == nil {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	h, _ := strconv.Atoi(m[1])
	mm, _ := strconv.Atoi(m[2])
	if h > 23 || mm > 59 {
		return 0, 0, fmt.Errorf("%w: %q", ErrInvalidTime, s)
	}
	return h, mm, nil
}
