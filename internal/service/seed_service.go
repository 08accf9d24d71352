package service

import (
	"context"
	"fmt"
	"math/rand"
	"strings"
	"time"

	"eduhub_backend/internal/config"
	"eduhub_backend/internal/model"
	"eduhub_backend/internal/repository"
	"eduhub_backend/internal/util"
	"eduhub_backend/pkg/logger"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.uber.org/zap"
)

var (
	givenNames      = []string{"Alex", "Jordan", "Taylor", "Casey", "Morgan", "Riley", "Avery", "Blake", "Cameron", "Drew"}
	familyNames     = []string{"Parker", "Reed", "Brooks", "Hayes", "Cooper", "Bailey", "Ellis", "Gray", "Ward", "Stone"}
	emailDomains    = []string{"example.org", "test.com", "demo.edu", "sample.net"}
	technicalSkills = []string{"Python", "Java", "React", "Vue", "Angular", "Node.js", "MongoDB", "PostgreSQL", "Docker", "AWS"}

	courseTitles = []string{
		"Complete Python Programming",
		"Modern Web Development",
		"Data Science Fundamentals",
		"JavaScript for Beginners",
		"Database Management Systems",
		"React Application Development",
		"Backend Development with Node",
		"Introduction to Machine Learning",
	}
	courseCategories = []string{"Programming", "Web Development", "Data Science", "Software Engineering"}

	lessonTopics = []string{
		"Course Introduction",
		"Core Concepts",
		"Data Structures",
		"Algorithms",
		"Best Practices",
		"Error Handling",
		"Testing Strategies",
		"Performance Optimization",
		"Advanced Techniques",
		"Final Project",
	}
	assignmentTypes = []string{"Quiz", "Project", "Exercise", "Case Study", "Lab Work"}
)

// enrollmentPairAttempts bounds the search for an unused (student, course)
// pair. A slot that exhausts its attempts is skipped, not an error.
const enrollmentPairAttempts = 50

// SeedService populates the collections with internally consistent fixture
// data. The build functions are pure over their inputs and the Rand source;
// only Populate touches the store.
type SeedService struct {
	DB              *mongo.Database
	UserRepo        *repository.UserRepository
	CourseRepo      *repository.CourseRepository
	LessonRepo      *repository.LessonRepository
	AssignmentRepo  *repository.AssignmentRepository
	EnrollmentRepo  *repository.EnrollmentRepository
	SubmissionRepo  *repository.SubmissionRepository
	Counts          config.SeedConfig
}

func NewSeedService(
	db *mongo.Database,
	userRepo *repository.UserRepository,
	courseRepo *repository.CourseRepository,
	lessonRepo *repository.LessonRepository,
	assignmentRepo *repository.AssignmentRepository,
	enrollmentRepo *repository.EnrollmentRepository,
	submissionRepo *repository.SubmissionRepository,
	counts config.SeedConfig,
) *SeedService {
	return &SeedService{
		DB:             db,
		UserRepo:       userRepo,
		CourseRepo:     courseRepo,
		LessonRepo:     lessonRepo,
		AssignmentRepo: assignmentRepo,
		EnrollmentRepo: enrollmentRepo,
		SubmissionRepo: submissionRepo,
		Counts:         counts,
	}
}

// Populate clears all six collections and refills them in dependency order.
// Returns the number of inserted documents per collection.
func (s *SeedService) Populate(ctx context.Context) (map[string]int, error) {
	if err := s.clear(ctx); err != nil {
		return nil, err
	}

	rng := rand.New(rand.NewSource(time.Now().UnixNano()))

	users := buildUsers(s.Counts.Users, rng)
	if err := s.UserRepo.InsertMany(ctx, users); err != nil {
		return nil, err
	}

	var instructors, students []model.User
	for _, u := range users {
		if u.Role == model.RoleInstructor {
			instructors = append(instructors, u)
		} else {
			students = append(students, u)
		}
	}

	courses := buildCourses(s.Counts.Courses, instructors, rng)
	if err := s.CourseRepo.InsertMany(ctx, courses); err != nil {
		return nil, err
	}

	lessons := buildLessons(s.Counts.Lessons, courses, rng)
	if err := s.LessonRepo.InsertMany(ctx, lessons); err != nil {
		return nil, err
	}

	assignments := buildAssignments(s.Counts.Assignments, courses, rng)
	if err := s.AssignmentRepo.InsertMany(ctx, assignments); err != nil {
		return nil, err
	}

	enrollments := buildEnrollments(s.Counts.Enrollments, students, courses, rng)
	if err := s.EnrollmentRepo.InsertMany(ctx, enrollments); err != nil {
		return nil, err
	}

	submissions := buildSubmissions(s.Counts.Submissions, assignments, enrollments, rng)
	if err := s.SubmissionRepo.InsertMany(ctx, submissions); err != nil {
		return nil, err
	}

	counts := map[string]int{
		model.UsersCollection:       len(users),
		model.CoursesCollection:     len(courses),
		model.LessonsCollection:     len(lessons),
		model.AssignmentsCollection: len(assignments),
		model.EnrollmentsCollection: len(enrollments),
		model.SubmissionsCollection: len(submissions),
	}

	logger.Log.Info("Sample data populated",
		zap.Int("users", len(users)),
		zap.Int("courses", len(courses)),
		zap.Int("lessons", len(lessons)),
		zap.Int("assignments", len(assignments)),
		zap.Int("enrollments", len(enrollments)),
		zap.Int("submissions", len(submissions)),
	)

	return counts, nil
}

func (s *SeedService) clear(ctx context.Context) error {
	for _, name := range model.Collections {
		if _, err := s.DB.Collection(name).DeleteMany(ctx, bson.M{}); err != nil {
			return err
		}
	}
	return nil
}

// buildUsers generates n users; a quarter are instructors, the rest
// students. Student emails carry the index to stay unique.
func buildUsers(n int, rng *rand.Rand) []model.User {
	users := make([]model.User, 0, n)

	instructorCount := n / 4
	for i := 0; i < instructorCount; i++ {
		given := givenNames[rng.Intn(len(givenNames))]
		family := familyNames[rng.Intn(len(familyNames))]
		field := []string{"software development", "data analysis", "web technologies"}[rng.Intn(3)]

		users = append(users, model.User{
			UserID: util.FormatDisplayID(util.InstructorIDPrefix, i+1),
			// No index suffix, so two instructors drawing the same
			// name and domain collide on the unique email index and
			// abort the seed. Re-run with a different source.
			Email:      fmt.Sprintf("%s.%s@%s", strings.ToLower(given), strings.ToLower(family), emailDomains[rng.Intn(len(emailDomains))]),
			FirstName:  given,
			LastName:   family,
			Role:       model.RoleInstructor,
			DateJoined: time.Now().AddDate(0, 0, -(90 + rng.Intn(811))),
			Profile: model.Profile{
				Bio:    fmt.Sprintf("Professional instructor specializing in %s", field),
				Avatar: fmt.Sprintf("https://avatars.example.com/instructor_%d.png", i+1),
				Skills: sampleSkills(rng, 4, 7),
			},
			IsActive: true,
		})
	}

	studentCount := n - instructorCount
	for i := 0; i < studentCount; i++ {
		given := givenNames[rng.Intn(len(givenNames))]
		family := familyNames[rng.Intn(len(familyNames))]
		focus := []string{"programming", "technology", "software engineering"}[rng.Intn(3)]

		users = append(users, model.User{
			UserID:     util.FormatDisplayID(util.StudentIDPrefix, i+1),
			Email:      fmt.Sprintf("%s.%s%d@%s", strings.ToLower(given), strings.ToLower(family), i, emailDomains[rng.Intn(len(emailDomains))]),
			FirstName:  given,
			LastName:   family,
			Role:       model.RoleStudent,
			DateJoined: time.Now().AddDate(0, 0, -(10 + rng.Intn(441))),
			Profile: model.Profile{
				Bio:    fmt.Sprintf("Eager learner focusing on %s", focus),
				Avatar: fmt.Sprintf("https://avatars.example.com/student_%d.png", i+1),
				Skills: sampleSkills(rng, 2, 5),
			},
			IsActive: true,
		})
	}

	return users
}

// buildCourses generates up to n courses, each taught by one of the given
// instructors. Tags are derived from the longer title words.
func buildCourses(n int, instructors []model.User, rng *rand.Rand) []model.Course {
	if len(instructors) == 0 {
		return nil
	}
	if n > len(courseTitles) {
		n = len(courseTitles)
	}

	levels := []model.CourseLevel{model.LevelBeginner, model.LevelIntermediate, model.LevelAdvanced}

	courses := make([]model.Course, 0, n)
	for i := 0; i < n; i++ {
		title := courseTitles[i]
		instructor := instructors[rng.Intn(len(instructors))]

		var tags []string
		for _, word := range strings.Fields(title) {
			if len(word) > 3 {
				tags = append(tags, strings.ToLower(word))
			}
		}

		courses = append(courses, model.Course{
			CourseID:     util.FormatDisplayID(util.CourseIDPrefix, i+1),
			Title:        title,
			Description:  fmt.Sprintf("Comprehensive training in %s with practical applications and real-world projects.", strings.ToLower(title)),
			InstructorID: instructor.UserID,
			Category:     courseCategories[rng.Intn(len(courseCategories))],
			Level:        levels[rng.Intn(len(levels))],
			Duration:     30 + rng.Intn(61),
			Price:        float64(120 + rng.Intn(361)),
			Tags:         tags,
			CreatedAt:    time.Now().AddDate(0, 0, -(10 + rng.Intn(211))),
			UpdatedAt:    time.Now().AddDate(0, 0, -(1 + rng.Intn(50))),
			IsPublished:  rng.Intn(2) == 0,
		})
	}

	return courses
}

func buildLessons(n int, courses []model.Course, rng *rand.Rand) []model.Lesson {
	if len(courses) == 0 {
		return nil
	}

	lessons := make([]model.Lesson, 0, n)
	for i := 0; i < n; i++ {
		course := courses[rng.Intn(len(courses))]
		topic := lessonTopics[rng.Intn(len(lessonTopics))]

		lessons = append(lessons, model.Lesson{
			LessonID: util.FormatDisplayID(util.LessonIDPrefix, i+1),
			CourseID: course.CourseID,
			Title:    fmt.Sprintf("%s - %s", topic, course.Title),
			Content:  fmt.Sprintf("This lesson explores %s with detailed explanations and practical examples.", strings.ToLower(topic)),
			Duration: 25 + rng.Intn(31),
			Order:    (i % 10) + 1,
			VideoURL: fmt.Sprintf("https://videos.example.com/lesson_%d.mp4", i+1),
			Materials: []string{
				fmt.Sprintf("lesson_%d_notes.pdf", i+1),
				fmt.Sprintf("lesson_%d_code.zip", i+1),
			},
			CreatedAt: time.Now().AddDate(0, 0, -(5 + rng.Intn(116))),
		})
	}

	return lessons
}

func buildAssignments(n int, courses []model.Course, rng *rand.Rand) []model.Assignment {
	if len(courses) == 0 {
		return nil
	}

	maxPoints := []int{70, 85, 100}

	assignments := make([]model.Assignment, 0, n)
	for i := 0; i < n; i++ {
		course := courses[rng.Intn(len(courses))]
		kind := assignmentTypes[rng.Intn(len(assignmentTypes))]

		assignments = append(assignments, model.Assignment{
			AssignmentID: util.FormatDisplayID(util.AssignmentIDPrefix, i+1),
			CourseID:     course.CourseID,
			Title:        fmt.Sprintf("%s: %s", kind, course.Title),
			Description:  fmt.Sprintf("Complete this %s to demonstrate mastery of course concepts.", strings.ToLower(kind)),
			DueDate:      time.Now().AddDate(0, 0, 14+rng.Intn(32)),
			MaxPoints:    maxPoints[rng.Intn(len(maxPoints))],
			Instructions: fmt.Sprintf("Follow the guidelines to complete this %s. Submit all required components.", strings.ToLower(kind)),
			CreatedAt:    time.Now().AddDate(0, 0, -(7 + rng.Intn(84))),
		})
	}

	return assignments
}

// buildEnrollments generates up to n enrollments with pairwise-distinct
// (student, course) pairs. Each slot gets a bounded number of attempts to
// find an unused pair; on exhaustion the slot is skipped silently.
func buildEnrollments(n int, students []model.User, courses []model.Course, rng *rand.Rand) []model.Enrollment {
	if len(students) == 0 || len(courses) == 0 {
		return nil
	}

	statuses := []model.EnrollmentStatus{model.EnrollmentActive, model.EnrollmentCompleted, model.EnrollmentDropped}
	used := make(map[[2]string]bool)

	enrollments := make([]model.Enrollment, 0, n)
	for i := 0; i < n; i++ {
		var student model.User
		var course model.Course
		found := false
		for attempt := 0; attempt < enrollmentPairAttempts; attempt++ {
			student = students[rng.Intn(len(students))]
			course = courses[rng.Intn(len(courses))]
			key := [2]string{student.UserID, course.CourseID}
			if !used[key] {
				used[key] = true
				found = true
				break
			}
		}
		if !found {
			continue
		}

		var completion *time.Time
		if rng.Intn(2) == 0 {
			t := time.Now().AddDate(0, 0, -(1 + rng.Intn(50)))
			completion = &t
		}

		enrollments = append(enrollments, model.Enrollment{
			EnrollmentID:   util.FormatDisplayID(util.EnrollmentIDPrefix, i+1),
			StudentID:      student.UserID,
			CourseID:       course.CourseID,
			EnrollmentDate: time.Now().AddDate(0, 0, -(7 + rng.Intn(84))),
			Status:         statuses[rng.Intn(len(statuses))],
			Progress:       15 + rng.Intn(86),
			CompletionDate: completion,
		})
	}

	return enrollments
}

// buildSubmissions generates submissions only for assignments whose course
// has at least one enrollment; the submitting student always comes from an
// enrollment of the same course.
func buildSubmissions(n int, assignments []model.Assignment, enrollments []model.Enrollment, rng *rand.Rand) []model.Submission {
	if len(assignments) == 0 || len(enrollments) == 0 {
		return nil
	}

	byCourse := make(map[string][]model.Enrollment)
	for _, e := range enrollments {
		byCourse[e.CourseID] = append(byCourse[e.CourseID], e)
	}

	submissions := make([]model.Submission, 0, n)
	for i := 0; i < n; i++ {
		assignment := assignments[rng.Intn(len(assignments))]
		courseEnrollments := byCourse[assignment.CourseID]
		if len(courseEnrollments) == 0 {
			continue
		}
		enrollment := courseEnrollments[rng.Intn(len(courseEnrollments))]

		var grade *int
		var feedback *string
		var gradedDate *time.Time
		if rng.Intn(2) == 0 {
			g := 55 + rng.Intn(46)
			grade = &g
		}
		if rng.Intn(2) == 0 {
			f := "Well done! Good understanding demonstrated."
			feedback = &f
		}
		if rng.Intn(2) == 0 {
			t := time.Now().AddDate(0, 0, -(1 + rng.Intn(15)))
			gradedDate = &t
		}

		submissions = append(submissions, model.Submission{
			SubmissionID:   util.FormatDisplayID(util.SubmissionIDPrefix, i+1),
			AssignmentID:   assignment.AssignmentID,
			StudentID:      enrollment.StudentID,
			SubmissionDate: time.Now().AddDate(0, 0, -(1 + rng.Intn(30))),
			Content:        fmt.Sprintf("Submission for %s. All requirements have been met.", assignment.Title),
			Attachments: []string{
				fmt.Sprintf("submission_%d.pdf", i+1),
				fmt.Sprintf("source_code_%d.py", i+1),
			},
			Grade:      grade,
			Feedback:   feedback,
			GradedDate: gradedDate,
		})
	}

	return submissions
}

func sampleSkills(rng *rand.Rand, min, max int) []string {
	count := min + rng.Intn(max-min+1)
	perm := rng.Perm(len(technicalSkills))
	skills := make([]string, 0, count)
	for _, idx := range perm[:count] {
		skills = append(skills, technicalSkills[idx])
	}
	return skills
}
