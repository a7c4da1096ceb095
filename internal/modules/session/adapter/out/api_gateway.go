package out

import (
	"context"
	"net/url"

	"planwise/internal/modules/session/domain"
	sessionout "planwise/internal/modules/session/port/out"
	"planwise/internal/platform/apiclient"
)

type studentRow struct {
	StuID            apiclient.Int  `json:"stu_id"`
	LoginID          apiclient.Text `json:"login_id"`
	FirstName        apiclient.Text `json:"f_name"`
	LastName         apiclient.Text `json:"l_name"`
	Email            apiclient.Text `json:"email"`
	ExpectedGradTerm apiclient.Int  `json:"expected_grad_term"`
	CatalogYearID    apiclient.Int  `json:"catalog_year_id"`
	AdvisorID        apiclient.Int  `json:"advisor_id"`
	AdvFirst         apiclient.Text `json:"adv_first"`
	AdvLast          apiclient.Text `json:"adv_last"`
}

type APIGateway struct {
	client *apiclient.Client
}

func NewAPIGateway(client *apiclient.Client) sessionout.Gateway {
	return &APIGateway{client: client}
}

func (g *APIGateway) SignIn(ctx context.Context, loginID string) (domain.Student, int64, error) {
	body := struct {
		Student studentRow    `json:"student"`
		PlanID  apiclient.Int `json:"plan_id"`
	}{}
	if err := g.client.Get(ctx, "/api/signin", url.Values{"login_id": {loginID}}, &body); err != nil {
		return domain.Student{}, 0, err
	}
	row := body.Student
	return domain.Student{
		ID:               int64(row.StuID),
		LoginID:          row.LoginID.String(),
		FirstName:        row.FirstName.String(),
		LastName:         row.LastName.String(),
		Email:            row.Email.String(),
		ExpectedGradTerm: int64(row.ExpectedGradTerm),
		CatalogYearID:    int64(row.CatalogYearID),
		AdvisorID:        int64(row.AdvisorID),
		AdvisorFirst:     row.AdvFirst.String(),
		AdvisorLast:      row.AdvLast.String(),
	}, int64(body.PlanID), nil
}
