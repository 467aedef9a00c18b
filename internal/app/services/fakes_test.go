package services

import (
	"context"

	"github.com/aylin/coursebook/internal/app/models"
)

// In-memory store fakes backing the service tests. They keep records in maps
// keyed by ID and count lookup calls so tests can assert which validations ran.

type fakeStudentStore struct {
	students     map[int64]*models.Student
	enrolled     map[int64]bool
	nextID       int64
	getByIDCalls int
}

func newFakeStudentStore() *fakeStudentStore {
	return &fakeStudentStore{
		students: make(map[int64]*models.Student),
		enrolled: make(map[int64]bool),
		nextID:   1,
	}
}

func (f *fakeStudentStore) add(name, email string) *models.Student {
	s := &models.Student{ID: f.nextID, Name: name, Email: email}
	f.students[s.ID] = s
	f.nextID++
	return s
}

func (f *fakeStudentStore) Create(_ context.Context, student *models.Student) error {
	student.ID = f.nextID
	f.nextID++
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) GetByID(_ context.Context, id int64) (*models.Student, error) {
	f.getByIDCalls++
	return f.students[id], nil
}

func (f *fakeStudentStore) GetByEmail(_ context.Context, email string) (*models.Student, error) {
	for _, s := range f.students {
		if s.Email == email {
			return s, nil
		}
	}
	return nil, nil
}

func (f *fakeStudentStore) GetAll(_ context.Context, skip, limit int) ([]*models.Student, error) {
	var out []*models.Student
	for id := int64(1); id < f.nextID; id++ {
		if s, ok := f.students[id]; ok {
			out = append(out, s)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeStudentStore) EmailExistsForOther(_ context.Context, email string, id int64) (bool, error) {
	for _, s := range f.students {
		if s.Email == email && s.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeStudentStore) Update(_ context.Context, student *models.Student) error {
	f.students[student.ID] = student
	return nil
}

func (f *fakeStudentStore) HasEnrollments(_ context.Context, id int64) (bool, error) {
	return f.enrolled[id], nil
}

func (f *fakeStudentStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.students[id]; !ok {
		return false, nil
	}
	delete(f.students, id)
	return true, nil
}

type fakeCourseStore struct {
	courses      map[int64]*models.Course
	enrolled     map[int64]bool
	nextID       int64
	getByIDCalls int
}

func newFakeCourseStore() *fakeCourseStore {
	return &fakeCourseStore{
		courses:  make(map[int64]*models.Course),
		enrolled: make(map[int64]bool),
		nextID:   1,
	}
}

func (f *fakeCourseStore) add(name, code string, credits int) *models.Course {
	c := &models.Course{ID: f.nextID, CourseName: name, CourseCode: code, Credits: credits}
	f.courses[c.ID] = c
	f.nextID++
	return c
}

func (f *fakeCourseStore) Create(_ context.Context, course *models.Course) error {
	course.ID = f.nextID
	f.nextID++
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) GetByID(_ context.Context, id int64) (*models.Course, error) {
	f.getByIDCalls++
	return f.courses[id], nil
}

func (f *fakeCourseStore) GetByCode(_ context.Context, code string) (*models.Course, error) {
	for _, c := range f.courses {
		if c.CourseCode == code {
			return c, nil
		}
	}
	return nil, nil
}

func (f *fakeCourseStore) GetAll(_ context.Context, skip, limit int) ([]*models.Course, error) {
	var out []*models.Course
	for id := int64(1); id < f.nextID; id++ {
		if c, ok := f.courses[id]; ok {
			out = append(out, c)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeCourseStore) CodeExistsForOther(_ context.Context, code string, id int64) (bool, error) {
	for _, c := range f.courses {
		if c.CourseCode == code && c.ID != id {
			return true, nil
		}
	}
	return false, nil
}

func (f *fakeCourseStore) Update(_ context.Context, course *models.Course) error {
	f.courses[course.ID] = course
	return nil
}

func (f *fakeCourseStore) HasEnrollments(_ context.Context, id int64) (bool, error) {
	return f.enrolled[id], nil
}

func (f *fakeCourseStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.courses[id]; !ok {
		return false, nil
	}
	delete(f.courses, id)
	return true, nil
}

type fakeEnrollmentStore struct {
	enrollments  map[int64]*models.Enrollment
	graded       map[int64]bool
	nextID       int64
	getByIDCalls int
	pairCalls    int
}

func newFakeEnrollmentStore() *fakeEnrollmentStore {
	return &fakeEnrollmentStore{
		enrollments: make(map[int64]*models.Enrollment),
		graded:      make(map[int64]bool),
		nextID:      1,
	}
}

func (f *fakeEnrollmentStore) add(studentID, courseID int64) *models.Enrollment {
	e := &models.Enrollment{ID: f.nextID, StudentID: studentID, CourseID: courseID}
	f.enrollments[e.ID] = e
	f.nextID++
	return e
}

func (f *fakeEnrollmentStore) Create(_ context.Context, enrollment *models.Enrollment) error {
	enrollment.ID = f.nextID
	f.nextID++
	f.enrollments[enrollment.ID] = enrollment
	return nil
}

func (f *fakeEnrollmentStore) GetByID(_ context.Context, id int64) (*models.Enrollment, error) {
	f.getByIDCalls++
	return f.enrollments[id], nil
}

func (f *fakeEnrollmentStore) GetByStudentAndCourse(_ context.Context, studentID, courseID int64) (*models.Enrollment, error) {
	f.pairCalls++
	for _, e := range f.enrollments {
		if e.StudentID == studentID && e.CourseID == courseID {
			return e, nil
		}
	}
	return nil, nil
}

func (f *fakeEnrollmentStore) GetAll(_ context.Context, skip, limit int) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.enrollments[id]; ok {
			out = append(out, e)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetByStudent(_ context.Context, studentID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.enrollments[id]; ok && e.StudentID == studentID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) GetByCourse(_ context.Context, courseID int64) ([]*models.Enrollment, error) {
	var out []*models.Enrollment
	for id := int64(1); id < f.nextID; id++ {
		if e, ok := f.enrollments[id]; ok && e.CourseID == courseID {
			out = append(out, e)
		}
	}
	return out, nil
}

func (f *fakeEnrollmentStore) HasGrade(_ context.Context, id int64) (bool, error) {
	return f.graded[id], nil
}

func (f *fakeEnrollmentStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.enrollments[id]; !ok {
		return false, nil
	}
	delete(f.enrollments, id)
	return true, nil
}

type fakeGradeStore struct {
	grades map[int64]*models.Grade
	nextID int64
}

func newFakeGradeStore() *fakeGradeStore {
	return &fakeGradeStore{grades: make(map[int64]*models.Grade), nextID: 1}
}

func (f *fakeGradeStore) add(enrollmentID int64, marks float64, letter string) *models.Grade {
	g := &models.Grade{ID: f.nextID, EnrollmentID: enrollmentID, Marks: marks, FinalGrade: letter}
	f.grades[g.ID] = g
	f.nextID++
	return g
}

func (f *fakeGradeStore) Create(_ context.Context, grade *models.Grade) error {
	grade.ID = f.nextID
	f.nextID++
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeStore) GetByID(_ context.Context, id int64) (*models.Grade, error) {
	return f.grades[id], nil
}

func (f *fakeGradeStore) GetByEnrollmentID(_ context.Context, enrollmentID int64) (*models.Grade, error) {
	for _, g := range f.grades {
		if g.EnrollmentID == enrollmentID {
			return g, nil
		}
	}
	return nil, nil
}

func (f *fakeGradeStore) GetAll(_ context.Context, skip, limit int) ([]*models.Grade, error) {
	var out []*models.Grade
	for id := int64(1); id < f.nextID; id++ {
		if g, ok := f.grades[id]; ok {
			out = append(out, g)
		}
	}
	if skip > len(out) {
		skip = len(out)
	}
	out = out[skip:]
	if limit < len(out) {
		out = out[:limit]
	}
	return out, nil
}

func (f *fakeGradeStore) Update(_ context.Context, grade *models.Grade) error {
	f.grades[grade.ID] = grade
	return nil
}

func (f *fakeGradeStore) Delete(_ context.Context, id int64) (bool, error) {
	if _, ok := f.grades[id]; !ok {
		return false, nil
	}
	delete(f.grades, id)
	return true, nil
}
