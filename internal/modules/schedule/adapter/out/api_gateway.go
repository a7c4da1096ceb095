package out

import (
	"context"
	"net/url"
	"strconv"

	"planwise/internal/modules/schedule/domain"
	scheduleout "planwise/internal/modules/schedule/port/out"
	"planwise/internal/platform/apiclient"
)

type meetingRow struct {
	SectionID  apiclient.Int  `json:"section_id"`
	CourseCode apiclient.Text `json:"course_code"`
	Title      apiclient.Text `json:"title"`
	DaysOfWeek apiclient.Int  `json:"days_of_week"`
	StartTime  apiclient.Text `json:"start_time"`
	EndTime    apiclient.Text `json:"end_time"`
	Location   apiclient.Text `json:"location"`
}

type conflictRow struct {
	SecA       apiclient.Int  `json:"sec_a"`
	SecB       apiclient.Int  `json:"sec_b"`
	DaysOfWeek apiclient.Int  `json:"days_of_week"`
	StartTime  apiclient.Text `json:"start_time"`
	EndTime    apiclient.Text `json:"end_time"`
	BStart     apiclient.Text `json:"b_start"`
	BEnd       apiclient.Text `json:"b_end"`
}

type APIGateway struct {
	client *apiclient.Client
}

func NewAPIGateway(client *apiclient.Client) scheduleout.Gateway {
	return &APIGateway{client: client}
}

func (g *APIGateway) Available(ctx context.Context, planID int64) ([]domain.MeetingRow, error) {
	return g.meetings(ctx, "/api/schedule", url.Values{"plan_id": {strconv.FormatInt(planID, 10)}})
}

func (g *APIGateway) Final(ctx context.Context, studentID int64) ([]domain.MeetingRow, error) {
	return g.meetings(ctx, "/api/final_schedule", url.Values{"stu_id": {strconv.FormatInt(studentID, 10)}})
}

func (g *APIGateway) meetings(ctx context.Context, path string, query url.Values) ([]domain.MeetingRow, error) {
	body := struct {
		Items []meetingRow `json:"items"`
	}{}
	if err := g.client.Get(ctx, path, query, &body); err != nil {
		return nil, err
	}
	out := make([]domain.MeetingRow, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.MeetingRow{
			SectionID:  int64(row.SectionID),
			CourseCode: row.CourseCode.String(),
			Title:      row.Title.String(),
			Location:   row.Location.String(),
			Start:      row.StartTime.String(),
			End:        row.EndTime.String(),
			Day:        int(row.DaysOfWeek),
		})
	}
	return out, nil
}

func (g *APIGateway) Enroll(ctx context.Context, studentID, sectionID int64) (int64, error) {
	body := struct {
		EnrollID apiclient.Int `json:"enroll_id"`
	}{}
	err := g.client.Post(ctx, "/api/enroll", map[string]any{
		"stu_id":     studentID,
		"section_id": sectionID,
	}, &body)
	if err != nil {
		return 0, err
	}
	return int64(body.EnrollID), nil
}

func (g *APIGateway) Drop(ctx context.Context, studentID, sectionID int64) error {
	return g.client.Post(ctx, "/api/final_schedule/remove", map[string]any{
		"stu_id":     studentID,
		"section_id": sectionID,
	}, nil)
}

func (g *APIGateway) Conflicts(ctx context.Context, planID int64) ([]domain.Conflict, error) {
	body := struct {
		Items []conflictRow `json:"items"`
	}{}
	query := url.Values{"plan_id": {strconv.FormatInt(planID, 10)}}
	if err := g.client.Get(ctx, "/api/time_conflicts", query, &body); err != nil {
		return nil, err
	}
	out := make([]domain.Conflict, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.Conflict{
			SectionA: int64(row.SecA),
			SectionB: int64(row.SecB),
			Day:      int(row.DaysOfWeek),
			AStart:   row.StartTime.String(),
			AEnd:     row.EndTime.String(),
			BStart:   row.BStart.String(),
			BEnd:     row.BEnd.String(),
		})
	}
	return out, nil
}
