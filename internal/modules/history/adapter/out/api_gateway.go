package out

import (
	"context"
	"net/url"
	"strconv"
	"strings"

	"planwise/internal/modules/history/domain"
	historyout "planwise/internal/modules/history/port/out"
	"planwise/internal/platform/apiclient"
)

type historyRow struct {
	EnrollID apiclient.Int   `json:"enroll_id"`
	CourseID apiclient.Int   `json:"course_id"`
	Subject  apiclient.Text  `json:"subject"`
	CataNum  apiclient.Text  `json:"cata_num"`
	Title    apiclient.Text  `json:"title"`
	Credits  apiclient.Float `json:"credits"`
	Grade    apiclient.Text  `json:"grade"`
	TermCode apiclient.Text  `json:"term_code"`
	ClassNum apiclient.Text  `json:"class_num"`
}

type APIGateway struct {
	client *apiclient.Client
}

func NewAPIGateway(client *apiclient.Client) historyout.Gateway {
	return &APIGateway{client: client}
}

func (g *APIGateway) List(ctx context.Context, studentID int64) ([]domain.CompletedCourse, error) {
	body := struct {
		Items []historyRow `json:"items"`
	}{}
	query := url.Values{"stu_id": {strconv.FormatInt(studentID, 10)}}
	if err := g.client.Get(ctx, "/api/history", query, &body); err != nil {
		return nil, err
	}
	out := make([]domain.CompletedCourse, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.CompletedCourse{
			EnrollID: int64(row.EnrollID),
			CourseID: int64(row.CourseID),
			Subject:  row.Subject.String(),
			CataNum:  row.CataNum.String(),
			Title:    row.Title.String(),
			Credits:  float64(row.Credits),
			Grade:    strings.TrimSpace(row.Grade.String()),
			TermCode: row.TermCode.String(),
			ClassNum: row.ClassNum.String(),
		})
	}
	return out, nil
}

func (g *APIGateway) UpdateGrade(ctx context.Context, studentID, enrollID int64, grade string) error {
	return g.client.Post(ctx, "/api/history/update_grade", map[string]any{
		"stu_id":    studentID,
		"enroll_id": enrollID,
		"grade":     grade,
	}, nil)
}

func (g *APIGateway) Remove(ctx context.Context, studentID, enrollID int64) error {
	return g.client.Post(ctx, "/api/history/remove", map[string]any{
		"stu_id":    studentID,
		"enroll_id": enrollID,
	}, nil)
}

func (g *APIGateway) AddCompleted(ctx context.Context, studentID, courseID int64, grade string) error {
	return g.client.Post(ctx, "/api/history/add_course", map[string]any{
		"stu_id":    studentID,
		"course_id": courseID,
		"grade":     grade,
	}, nil)
}
