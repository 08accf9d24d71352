package model

import "time"

// Aggregation result rows. The bson tags mirror the group-stage output keys,
// so these decode straight off the aggregation cursor. Averages are pointers:
// an average over an empty or all-null set is null, never zero.

// CourseStats is the per-course projection pushed into a category bucket.
type CourseStats struct {
	CourseID        string  `bson:"courseId" json:"courseId"`
	Title           string  `bson:"title" json:"title"`
	EnrollmentCount int     `bson:"enrollmentCount" json:"enrollmentCount"`
	Price           float64 `bson:"price" json:"price"`
}

// CategoryStats is one bucket of the course-enrollment-statistics report.
// Category is nil for courses that carry no category field.
type CategoryStats struct {
	Category         *string       `bson:"_id" json:"category"`
	TotalCourses     int           `bson:"totalCourses" json:"totalCourses"`
	TotalEnrollments int           `bson:"totalEnrollments" json:"totalEnrollments"`
	AveragePrice     *float64      `bson:"averagePrice" json:"averagePrice"`
	Courses          []CourseStats `bson:"courses" json:"courses"`
}

// StudentPerformance is one student's row of the performance report.
type StudentPerformance struct {
	StudentID           string   `bson:"_id" json:"studentId"`
	StudentName         string   `bson:"studentName" json:"studentName"`
	AverageGrade        *float64 `bson:"averageGrade" json:"averageGrade"`
	TotalSubmissions    int      `bson:"totalSubmissions" json:"totalSubmissions"`
	CoursesParticipated []string `bson:"coursesParticipated" json:"coursesParticipated"`
	CoursesCount        int      `bson:"coursesCount" json:"coursesCount"`
}

// InstructorCourseStats is the per-course projection inside an instructor row.
type InstructorCourseStats struct {
	Title       string  `bson:"title" json:"title"`
	Enrollments int     `bson:"enrollments" json:"enrollments"`
	Revenue     float64 `bson:"revenue" json:"revenue"`
}

// InstructorAnalytics aggregates student reach and revenue per instructor.
type InstructorAnalytics struct {
	InstructorID   string                  `bson:"_id" json:"instructorId"`
	InstructorName string                  `bson:"instructorName" json:"instructorName"`
	TotalCourses   int                     `bson:"totalCourses" json:"totalCourses"`
	TotalStudents  int                     `bson:"totalStudents" json:"totalStudents"`
	TotalRevenue   float64                 `bson:"totalRevenue" json:"totalRevenue"`
	Courses        []InstructorCourseStats `bson:"courses" json:"courses"`
}

// TrendPeriod is the (year, month) group key of the monthly trend.
type TrendPeriod struct {
	Year  int `bson:"year" json:"year"`
	Month int `bson:"month" json:"month"`
}

type MonthlyTrend struct {
	Period               TrendPeriod `bson:"_id" json:"period"`
	EnrollmentCount      int         `bson:"enrollmentCount" json:"enrollmentCount"`
	ActiveEnrollments    int         `bson:"activeEnrollments" json:"activeEnrollments"`
	CompletedEnrollments int         `bson:"completedEnrollments" json:"completedEnrollments"`
}

type CategoryPopularity struct {
	Category         *string `bson:"_id" json:"category"`
	TotalEnrollments int     `bson:"totalEnrollments" json:"totalEnrollments"`
	CourseCount      int     `bson:"courseCount" json:"courseCount"`
}

type EngagementMetrics struct {
	Status          EnrollmentStatus `bson:"_id" json:"status"`
	Count           int              `bson:"count" json:"count"`
	AverageProgress *float64         `bson:"averageProgress" json:"averageProgress"`
}

// AdvancedAnalytics bundles the three independent aggregates returned by the
// advanced-analytics report.
type AdvancedAnalytics struct {
	MonthlyTrends     []MonthlyTrend       `json:"monthlyTrends"`
	PopularCategories []CategoryPopularity `json:"popularCategories"`
	EngagementMetrics []EngagementMetrics  `json:"engagementMetrics"`
}

// InstructorInfo is the instructor's public profile projected into a course
// detail.
type InstructorInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
	Profile   struct {
		Bio string `bson:"bio" json:"bio"`
	} `bson:"profile" json:"profile"`
}

// CourseDetail is a single course enriched with its instructor.
type CourseDetail struct {
	CourseID    string         `bson:"courseId" json:"courseId"`
	Title       string         `bson:"title" json:"title"`
	Description string         `bson:"description" json:"description"`
	Category    string         `bson:"category" json:"category"`
	Level       CourseLevel    `bson:"level" json:"level"`
	Duration    int            `bson:"duration" json:"duration"`
	Price       float64        `bson:"price" json:"price"`
	Tags        []string       `bson:"tags" json:"tags"`
	Instructor  InstructorInfo `bson:"instructorInfo" json:"instructor"`
}

// StudentInfo is the student's public profile projected into an enrollment.
type StudentInfo struct {
	FirstName string `bson:"firstName" json:"firstName"`
	LastName  string `bson:"lastName" json:"lastName"`
	Email     string `bson:"email" json:"email"`
}

// EnrolledStudent is one enrollment of a course enriched with the student.
type EnrolledStudent struct {
	EnrollmentID   string           `bson:"enrollmentId" json:"enrollmentId"`
	EnrollmentDate time.Time        `bson:"enrollmentDate" json:"enrollmentDate"`
	Status         EnrollmentStatus `bson:"status" json:"status"`
	Progress       int              `bson:"progress" json:"progress"`
	Student        StudentInfo      `bson:"studentInfo" json:"student"`
}

// CollectionInfo is the per-collection slice of the database summary.
type CollectionInfo struct {
	Count      int64 `json:"count"`
	Size       int64 `json:"size"`
	AvgObjSize int64 `json:"avgObjSize"`
	Indexes    int32 `json:"indexes"`
}

// DatabaseInfo summarizes the database for console-style display.
type DatabaseInfo struct {
	DatabaseName string                    `json:"databaseName"`
	Collections  []string                  `json:"collections"`
	Stats        map[string]CollectionInfo `json:"stats"`
}
