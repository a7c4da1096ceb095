package out

import (
	"context"
	"net/url"
	"strconv"

	"planwise/internal/modules/catalog/domain"
	catalogout "planwise/internal/modules/catalog/port/out"
	"planwise/internal/platform/apiclient"
)

type programRow struct {
	ProgID        apiclient.Int  `json:"prog_id"`
	Name          apiclient.Text `json:"name"`
	ProgramType   apiclient.Text `json:"program_type"`
	CatalogYearID apiclient.Int  `json:"catalog_year_id"`
}

func (r programRow) toDomain() domain.Program {
	return domain.Program{ID: int64(r.ProgID), Name: r.Name.String(), Type: r.ProgramType.String(), CatalogYearID: int64(r.CatalogYearID)}
}

type courseRow struct {
	CourseID apiclient.Int   `json:"course_id"`
	Subject  apiclient.Text  `json:"subject"`
	CataNum  apiclient.Text  `json:"cata_num"`
	Title    apiclient.Text  `json:"title"`
	Credits  apiclient.Float `json:"credits"`
}

type advisorRow struct {
	AdvID     apiclient.Int  `json:"adv_id"`
	FirstName apiclient.Text `json:"f_name"`
	LastName  apiclient.Text `json:"l_name"`
	Email     apiclient.Text `json:"email"`
}

type APIGateway struct {
	client *apiclient.Client
}

func NewAPIGateway(client *apiclient.Client) catalogout.Gateway {
	return &APIGateway{client: client}
}

func (g *APIGateway) Programs(ctx context.Context) ([]domain.Program, error) {
	body := struct {
		Items []programRow `json:"items"`
	}{}
	if err := g.client.Get(ctx, "/api/programs", nil, &body); err != nil {
		return nil, err
	}
	out := make([]domain.Program, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, row.toDomain())
	}
	return out, nil
}

func (g *APIGateway) Subjects(ctx context.Context) ([]string, error) {
	body := struct {
		Items []apiclient.Text `json:"items"`
	}{}
	if err := g.client.Get(ctx, "/api/subjects", nil, &body); err != nil {
		return nil, err
	}
	out := make([]string, 0, len(body.Items))
	for _, s := range body.Items {
		if s != "" {
			out = append(out, s.String())
		}
	}
	return out, nil
}

func (g *APIGateway) Advisors(ctx context.Context) ([]domain.Advisor, error) {
	body := struct {
		Items []advisorRow `json:"items"`
	}{}
	if err := g.client.Get(ctx, "/api/advisors", nil, &body); err != nil {
		return nil, err
	}
	out := make([]domain.Advisor, 0, len(body.Items))
	for _, row := range body.Items {
		out = append(out, domain.Advisor{
			ID:        int64(row.AdvID),
			FirstName: row.FirstName.String(),
			LastName:  row.LastName.String(),
			Email:     row.Email.String(),
		})
	}
	return out, nil
}

func (g *APIGateway) Search(ctx context.Context, query domain.SearchQuery) ([]domain.Course, error) {
	body := struct {
		Items []courseRow `json:"items"`
	}{}
	values := url.Values{"q": {query.Text}, "subject": {query.Subject}, "level": {query.Level}}
	if err := g.client.Get(ctx, "/api/courses/search", values, &body); err != nil {
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

func (g *APIGateway) CurrentMajor(ctx context.Context, studentID int64) (domain.Program, bool, error) {
	body := struct {
		Item *programRow `json:"item"`
	}{}
	query := url.Values{"stu_id": {strconv.FormatInt(studentID, 10)}}
	if err := g.client.Get(ctx, "/api/student/major", query, &body); err != nil {
		return domain.Program{}, false, err
	}
	if body.Item == nil || body.Item.ProgID == 0 {
		return domain.Program{}, false, nil
	}
	return body.Item.toDomain(), true, nil
}

func (g *APIGateway) SaveMajor(ctx context.Context, studentID, programID int64) error {
	return g.client.Post(ctx, "/api/student/major", map[string]any{
		"stu_id":  studentID,
		"prog_id": programID,
	}, nil)
}
