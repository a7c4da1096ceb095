package out

import (
	"context"

	catalogin "planwise/internal/modules/catalog/port/in"
	historyout "planwise/internal/modules/history/port/out"
)

type CatalogCourseResolver struct {
	catalog catalogin.Usecase
}

func NewCatalogCourseResolver(catalog catalogin.Usecase) historyout.CourseResolver {
	return &CatalogCourseResolver{catalog: catalog}
}

func (r *CatalogCourseResolver) Resolve(ctx context.Context, subject, cataNum string) (int64, bool, error) {
	course, ok, err := r.catalog.FindCourse(ctx, subject, cataNum)
	if err != nil || !ok {
		return 0, false, err
	}
	return course.ID, true, nil
}
