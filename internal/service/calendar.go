package service

import (
	"fmt"
	"time"

	"github.com/SudyStefan/MSD-UX-Prototype/internal/entity"
)

const monthValueLayout = "2006-01"

type calendarState struct {
	view       entity.CalendarView
	date       time.Time
	pickerOpen bool
}

func newCalendarState(now time.Time) calendarState {
	return calendarState{view: entity.ViewMonth, date: startOfDay(now)}
}

func (c *calendarState) setView(v entity.CalendarView) {
	c.view = v
	c.pickerOpen = false
}

// navigate moves by one unit of the active view. Month moves land on the
// first of the month so short months never skip.
func (c *calendarState) navigate(dir entity.Direction, now time.Time) {
	c.pickerOpen = false
	switch dir {
	case entity.DirectionToday:
		c.date = startOfDay(now)
	case entity.DirectionPrev:
		c.date = c.step(-1)
	case entity.DirectionNext:
		c.date = c.step(1)
	}
}

func (c *calendarState) step(n int) time.Time {
	if c.view == entity.ViewWeek {
		return c.date.AddDate(0, 0, 7*n)
	}
	return shiftMonth(c.date, n)
}

func (c *calendarState) jumpTo(value string) error {
	t, err := time.ParseInLocation(monthValueLayout, value, c.date.Location())
	if err != nil {
		return fmt.Errorf("%w: month %q", entity.ErrInvalidInput, value)
	}
	c.date = t
	c.view = entity.ViewMonth
	c.pickerOpen = false
	return nil
}

func startOfDay(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, t.Location())
}

func startOfMonth(t time.Time) time.Time {
	y, m, _ := t.Date()
	return time.Date(y, m, 1, 0, 0, 0, 0, t.Location())
}

func shiftMonth(t time.Time, n int) time.Time {
	return startOfMonth(t).AddDate(0, n, 0)
}

// startOfWeek returns the Sunday on or before t.
func startOfWeek(t time.Time) time.Time {
	d := startOfDay(t)
	return d.AddDate(0, 0, -int(d.Weekday()))
}

// BuildCalendarGrid lays events out on whole weeks covering the anchor's
// month or week. An event shows on every day its interval touches.
func BuildCalendarGrid(view entity.CalendarView, anchor, today time.Time, events []*entity.EventView) entity.CalendarGrid {
	var from, to, rangeFrom, rangeTo time.Time
	var title string

	if view == entity.ViewWeek {
		from = startOfWeek(anchor)
		to = from.AddDate(0, 0, 7)
		rangeFrom, rangeTo = from, to
		title = weekTitle(from, to.AddDate(0, 0, -1))
	} else {
		rangeFrom = startOfMonth(anchor)
		rangeTo = rangeFrom.AddDate(0, 1, 0)
		from = startOfWeek(rangeFrom)
		to = startOfWeek(rangeTo.AddDate(0, 0, -1)).AddDate(0, 0, 7)
		title = rangeFrom.Format("January 2006")
	}

	today = startOfDay(today)
	grid := entity.CalendarGrid{View: view, Anchor: startOfDay(anchor), Title: title}

	var week entity.CalendarWeek
	for d := from; d.Before(to); d = d.AddDate(0, 0, 1) {
		next := d.AddDate(0, 0, 1)
		day := entity.CalendarDay{
			Date:    d,
			InRange: !d.Before(rangeFrom) && d.Before(rangeTo),
			Today:   d.Equal(today),
		}
		for _, e := range events {
			if !e.Overlaps(d, next) {
				continue
			}
			day.Entries = append(day.Entries, entity.CalendarEntry{
				EventID: e.ID,
				Title:   e.Title,
				Start:   e.Start,
				End:     e.End,
				Status:  e.Status,
				Color:   e.Color,
			})
		}
		week.Days = append(week.Days, day)
		if len(week.Days) == 7 {
			grid.Weeks = append(grid.Weeks, week)
			week = entity.CalendarWeek{}
		}
	}
	return grid
}

func weekTitle(first, last time.Time) string {
	if first.Year() != last.Year() {
		return first.Format("Jan 2, 2006") + " - " + last.Format("Jan 2, 2006")
	}
	return first.Format("Jan 2") + " - " + last.Format("Jan 2, 2006")
}

// MonthOptions lists the current month and the following ones for the picker.
func MonthOptions(now, selected time.Time, n int) []entity.MonthOption {
	first := startOfMonth(now)
	sel := startOfMonth(selected)

	opts := make([]entity.MonthOption, 0, n)
	for i := 0; i < n; i++ {
		m := first.AddDate(0, i, 0)
		opts = append(opts, entity.MonthOption{
			Value:    m.Format(monthValueLayout),
			Label:    m.Format("January 2006"),
			Selected: m.Equal(sel),
		})
	}
	return opts
}
