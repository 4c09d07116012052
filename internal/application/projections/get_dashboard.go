package projections

import (
	"context"
	"sort"
	"time"

	"gymverse/internal/domain/appointment"
)

// GetDashboardDeps holds dependencies for the dashboard projection.
type GetDashboardDeps struct {
	PlanStore        PlanReader
	TrainerStore     TrainerReader
	MemberStore      MemberReader
	AppointmentStore AppointmentReader
}

// JoinPoint is one day in the join-trend series.
type JoinPoint struct {
	Day   string // ISO date, local to the aggregation time
	Joins int
}

// PlanCount is one slice of the members-by-plan breakdown.
type PlanCount struct {
	Plan  string
	Count int
}

// DashboardResult carries the output of the dashboard projection.
type DashboardResult struct {
	TotalMembers  int
	NewLast7Days  int
	TotalPackages int
	TotalTrainers int

	TotalAppointments int
	StatusCounts      map[string]int

	// EstimatedRevenue sums each member's package newPrice, matched by plan
	// name. Members on a deleted or renamed package contribute nothing.
	EstimatedRevenue float64

	JoinTrend     []JoinPoint // last 14 days, oldest first
	MembersByPlan []PlanCount // sorted by count descending, then name

	Upcoming []appointment.Appointment // next 10 by date and time
}

// QueryGetDashboard aggregates the admin dashboard numbers at the given time.
// Statuses outside the known set count as Pending.
func QueryGetDashboard(ctx context.Context, deps GetDashboardDeps, now time.Time) (DashboardResult, error) {
	plans, err := deps.PlanStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	trainers, err := deps.TrainerStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	members, err := deps.MemberStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}
	appointments, err := deps.AppointmentStore.List(ctx)
	if err != nil {
		return DashboardResult{}, err
	}

	result := DashboardResult{
		TotalMembers:      len(members),
		TotalPackages:     len(plans),
		TotalTrainers:     len(trainers),
		TotalAppointments: len(appointments),
		StatusCounts: map[string]int{
			appointment.StatusPending:   0,
			appointment.StatusConfirmed: 0,
			appointment.StatusDone:      0,
			appointment.StatusCancelled: 0,
		},
	}

	cutoff := now.Add(-7 * 24 * time.Hour)
	for _, m := range members {
		if m.JoinedAfter(cutoff) {
			result.NewLast7Days++
		}
	}

	for _, a := range appointments {
		result.StatusCounts[a.EffectiveStatus()]++
	}

	priceByName := make(map[string]float64, len(plans))
	for _, p := range plans {
		priceByName[p.Name] = p.NewPrice
	}
	for _, m := range members {
		if price, ok := priceByName[m.Plan]; ok {
			result.EstimatedRevenue += price
		}
	}

	// Join trend over the last 14 calendar days, in now's location.
	today := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	for i := 13; i >= 0; i-- {
		day := today.AddDate(0, 0, -i)
		point := JoinPoint{Day: day.Format("2006-01-02")}
		for _, m := range members {
			if m.JoinedOn(day) {
				point.Joins++
			}
		}
		result.JoinTrend = append(result.JoinTrend, point)
	}

	byPlan := map[string]int{}
	for _, m := range members {
		name := m.Plan
		if name == "" {
			name = "(No plan)"
		}
		byPlan[name]++
	}
	for name, count := range byPlan {
		result.MembersByPlan = append(result.MembersByPlan, PlanCount{Plan: name, Count: count})
	}
	sort.Slice(result.MembersByPlan, func(i, j int) bool {
		a, b := result.MembersByPlan[i], result.MembersByPlan[j]
		if a.Count != b.Count {
			return a.Count > b.Count
		}
		return a.Plan < b.Plan
	})

	upcoming := make([]appointment.Appointment, 0, len(appointments))
	for _, a := range appointments {
		if a.Date != "" {
			upcoming = append(upcoming, a)
		}
	}
	sort.SliceStable(upcoming, func(i, j int) bool {
		return upcoming[i].SortKey() < upcoming[j].SortKey()
	})
	if len(upcoming) > 10 {
		upcoming = upcoming[:10]
	}
	result.Upcoming = upcoming

	return result, nil
}
