package out

import (
	"context"
	"net/url"
	"strconv"

	"planwise/internal/modules/plan/domain"
	planout "planwise/internal/modules/plan/port/out"
	"planwise/internal/platform/apiclient"
)

type itemRow struct {
	PCID        apiclient.Int   `json:"pc_id"`
	CourseID    apiclient.Int   `json:"course_id"`
	TermID      apiclient.Int   `json:"term_id"`
	TermCode    apiclient.Text  `json:"term_code"`
	CourseCode  apiclient.Text  `json:"course_code"`
	Title       apiclient.Text  `json:"title"`
	Credits     apiclient.Float `json:"credits"`
	Recommended apiclient.Flag  `json:"recommended"`
}

type courseRow struct {
	CourseID apiclient.Int   `json:"course_id"`
	Subject  apiclient.Text  `json:"subject"`
	CataNum  apiclient.Text  `json:"cata_num"`
	Title    apiclient.Text  `json:"title"`
	Credits  apiclient.Float `json:"credits"`
}

type prereqRow struct {
	PrereqCourseID apiclient.Int  `json:"prereq_course_id"`
	Subject        apiclient.Text `json:"subject"`
	CataNum        apiclient.Text `json:"cata_num"`
	Title          apiclient.Text `json:"title"`
}

type APIGateway struct {
	client *apiclient.Client
}

func NewAPIGateway(client *apiclient.Client) planout.Gateway {
	return &APIGateway{client: client}
}

func (g *APIGateway) Get(ctx context.Context, planID int64) (domain.Plan, error) {
	body := struct {
		TotalCredits apiclient.Float `json:"total_credits"`
		Items        []itemRow       `json:"items"`
	}{}
	query := url.Values{"plan_id": {strconv.FormatInt(planID, 10)}}
	if err := g.client.Get(ctx, "/api/plan", query, &body); err != nil {
		return domain.Plan{}, err
	}
	plan := domain.Plan{ID: planID, TotalCredits: float64(body.TotalCredits), Items: make([]domain.Item, 0, len(body.Items))}
	for _, row := range body.Items {
		plan.Items = append(plan.Items, domain.Item{
			PCID:        int64(row.PCID),
			CourseID:    int64(row.CourseID),
			TermID:      int64(row.TermID),
			TermCode:    row.TermCode.String(),
			CourseCode:  row.CourseCode.String(),
			Title:       row.Title.String(),
			Credits:     float64(row.Credits),
			Recommended: bool(row.Recommended),
		})
	}
	return plan, nil
}

func (g *APIGateway) AddCourse(ctx context.Context, planID, termID, courseID int64) (int64, error) {
	body := struct {
		PCID apiclient.Int `json:"pc_id"`
	}{}
	err := g.client.Post(ctx, "/api/plan/add_course", map[string]any{
		"plan_id":   planID,
		"term_id":   termID,
		"course_id": courseID,
	}, &body)
	if err != nil {
		return 0, err
	}
	return int64(body.PCID), nil
}

func (g *APIGateway) Remove(ctx context.Context, pcID int64) error {
	return g.client.Post(ctx, "/api/plan/remove", map[string]any{"pc_id": pcID}, nil)
}

func (g *APIGateway) Recommendations(ctx context.Context, studentID, planID int64) ([]domain.Course, error) {
	body := struct {
		Items []courseRow `json:"items"`
	}{}
	query := url.Values{
		"stu_id":  {strconv.FormatInt(studentID, 10)},
		"plan_id": {strconv.FormatInt(planID, 10)},
	}
	if err := g.client.Get(ctx, "/api/recommendations", query, &body); err != nil {
		return nil, err
	}
	out := make([]domain.Course, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.Course{
			ID:      int64(row.CourseID),
			Subject: row.Subject.String(),
			CataNum: row.CataNum.String(),
			Title:   row.Title.String(),
			Credits: float64(row.Credits),
		})
	}
	return out, nil
}

func (g *APIGateway) MissingPrereqs(ctx context.Context, studentID, courseID int64) ([]domain.MissingPrereq, error) {
	body := struct {
		Items []prereqRow `json:"items"`
	}{}
	query := url.Values{
		"stu_id":    {strconv.FormatInt(studentID, 10)},
		"course_id": {strconv.FormatInt(courseID, 10)},
	}
	if err := g.client.Get(ctx, "/api/prereqs_missing", query, &body); err != nil {
		return nil, err
	}
	out := make([]domain.MissingPrereq, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.MissingPrereq{
			CourseID: int64(row.PrereqCourseID),
			Subject:  row.Subject.String(),
			CataNum:  row.CataNum.String(),
			Title:    row.Title.String(),
		})
	}
	return out, nil
}
