package cli

import (
	"context"
	"fmt"
)

func (a *App) ListCourses(ctx context.Context, refresh bool) error {
	list, err := a.courses.Courses(ctx, refresh)
	if err != nil {
		return err
	}
	printCourses(a.out, list)
	return nil
}

func (a *App) ShowCourse(ctx context.Context, id int64) error {
	c, err := a.courses.Course(ctx, id)
	if err != nil {
		return err
	}
	printCourse(a.out, c)
	return nil
}

func (a *App) Roadmap(ctx context.Context, id int64) error {
	items, err := a.courses.Roadmap(ctx, id)
	if err != nil {
		return err
	}
	printRoadmap(a.out, items)
	return nil
}

func (a *App) ListEnrollments(ctx context.Context) error {
	list, err := a.courses.MyEnrollments(ctx)
	if err != nil {
		return err
	}
	if len(list) == 0 {
		fmt.Fprintln(a.out, "You are not enrolled in any course.")
		return nil
	}
	for _, e := range list {
		fmt.Fprintf(a.out, "enrollment %s: course %s\n", e.ID, e.Course)
	}
	return nil
}

func (a *App) Enroll(ctx context.Context, courseID int64) error {
	e, err := a.courses.Enroll(ctx, courseID)
	if err != nil {
		return err
	}
	fmt.Fprintf(a.out, "Enrolled in course %s (enrollment %s).\n", e.Course, e.ID)
	return nil
}
