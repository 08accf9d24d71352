package repository

import (
	"eduhub_backend/internal/model"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
)

// The aggregation pipelines are built by pure functions so each report's
// stage list can be inspected and tested without a live store.
//
// Group keys that are absent on a document (a course without a category)
// fall into the null bucket, which is returned like any other bucket.

// CourseEnrollmentStatsPipeline joins courses with their enrollments and
// buckets them by category: course count, total enrollments, average price
// and a per-course breakdown, sorted by total enrollments descending.
func CourseEnrollmentStatsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         model.EnrollmentsCollection,
			"localField":   "courseId",
			"foreignField": "courseId",
			"as":           "courseEnrollments",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":              "$category",
			"totalCourses":     bson.M{"$sum": 1},
			"totalEnrollments": bson.M{"$sum": bson.M{"$size": "$courseEnrollments"}},
			"averagePrice":     bson.M{"$avg": "$price"},
			"courses": bson.M{"$push": bson.M{
				"courseId":        "$courseId",
				"title":           "$title",
				"enrollmentCount": bson.M{"$size": "$courseEnrollments"},
				"price":           "$price",
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalEnrollments", Value: -1}}}},
	}
}

// StudentPerformancePipeline joins submissions with assignments (for the
// course) and users (for the name), then groups per student. $avg skips
// null grades, so ungraded submissions count toward totalSubmissions but
// neither the sum nor the denominator of averageGrade.
func StudentPerformancePipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         model.AssignmentsCollection,
			"localField":   "assignmentId",
			"foreignField": "assignmentId",
			"as":           "assignmentInfo",
		}}},
		{{Key: "$unwind", Value: "$assignmentInfo"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UsersCollection,
			"localField":   "studentId",
			"foreignField": "userId",
			"as":           "studentInfo",
		}}},
		{{Key: "$unwind", Value: "$studentInfo"}},
		{{Key: "$group", Value: bson.M{
			"_id": "$studentId",
			"studentName": bson.M{"$first": bson.M{
				"$concat": bson.A{"$studentInfo.firstName", " ", "$studentInfo.lastName"},
			}},
			"averageGrade":        bson.M{"$avg": "$grade"},
			"totalSubmissions":    bson.M{"$sum": 1},
			"coursesParticipated": bson.M{"$addToSet": "$assignmentInfo.courseId"},
		}}},
		{{Key: "$addFields", Value: bson.M{
			"coursesCount": bson.M{"$size": "$coursesParticipated"},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "averageGrade", Value: -1}}}},
	}
}

// InstructorAnalyticsPipeline joins courses with their instructor and
// enrollments and groups per instructor: courses taught, students reached,
// revenue (price x enrollment count) with a per-course breakdown, sorted by
// revenue descending.
func InstructorAnalyticsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UsersCollection,
			"localField":   "instructorId",
			"foreignField": "userId",
			"as":           "instructorInfo",
		}}},
		{{Key: "$unwind", Value: "$instructorInfo"}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.EnrollmentsCollection,
			"localField":   "courseId",
			"foreignField": "courseId",
			"as":           "courseEnrollments",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id": "$instructorId",
			"instructorName": bson.M{"$first": bson.M{
				"$concat": bson.A{"$instructorInfo.firstName", " ", "$instructorInfo.lastName"},
			}},
			"totalCourses":  bson.M{"$sum": 1},
			"totalStudents": bson.M{"$sum": bson.M{"$size": "$courseEnrollments"}},
			"totalRevenue": bson.M{"$sum": bson.M{
				"$multiply": bson.A{"$price", bson.M{"$size": "$courseEnrollments"}},
			}},
			"courses": bson.M{"$push": bson.M{
				"title":       "$title",
				"enrollments": bson.M{"$size": "$courseEnrollments"},
				"revenue": bson.M{
					"$multiply": bson.A{"$price", bson.M{"$size": "$courseEnrollments"}},
				},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalRevenue", Value: -1}}}},
	}
}

// MonthlyTrendsPipeline groups enrollments by (year, month) of the
// enrollment date and counts total/active/completed, chronologically
// ascending.
func MonthlyTrendsPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id": bson.M{
				"year":  bson.M{"$year": "$enrollmentDate"},
				"month": bson.M{"$month": "$enrollmentDate"},
			},
			"enrollmentCount": bson.M{"$sum": 1},
			"activeEnrollments": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", string(model.EnrollmentActive)}}, 1, 0},
			}},
			"completedEnrollments": bson.M{"$sum": bson.M{
				"$cond": bson.A{bson.M{"$eq": bson.A{"$status", string(model.EnrollmentCompleted)}}, 1, 0},
			}},
		}}},
		{{Key: "$sort", Value: bson.D{
			{Key: "_id.year", Value: 1},
			{Key: "_id.month", Value: 1},
		}}},
	}
}

// CategoryPopularityPipeline ranks categories by how many enrollments their
// courses gathered.
func CategoryPopularityPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$lookup", Value: bson.M{
			"from":         model.EnrollmentsCollection,
			"localField":   "courseId",
			"foreignField": "courseId",
			"as":           "courseEnrollments",
		}}},
		{{Key: "$group", Value: bson.M{
			"_id":              "$category",
			"totalEnrollments": bson.M{"$sum": bson.M{"$size": "$courseEnrollments"}},
			"courseCount":      bson.M{"$sum": 1},
		}}},
		{{Key: "$sort", Value: bson.D{{Key: "totalEnrollments", Value: -1}}}},
	}
}

// EngagementPipeline buckets enrollments by status with count and average
// progress.
func EngagementPipeline() mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$group", Value: bson.M{
			"_id":             "$status",
			"count":           bson.M{"$sum": 1},
			"averageProgress": bson.M{"$avg": "$progress"},
		}}},
	}
}

// CourseDetailPipeline enriches one course with its instructor's public
// profile fields. Projection only, no grouping.
func CourseDetailPipeline(courseID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"courseId": courseID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UsersCollection,
			"localField":   "instructorId",
			"foreignField": "userId",
			"as":           "instructorInfo",
		}}},
		{{Key: "$unwind", Value: "$instructorInfo"}},
		{{Key: "$project", Value: bson.M{
			"courseId":                     1,
			"title":                        1,
			"description":                  1,
			"category":                     1,
			"level":                        1,
			"duration":                     1,
			"price":                        1,
			"tags":                         1,
			"instructorInfo.firstName":     1,
			"instructorInfo.lastName":      1,
			"instructorInfo.email":         1,
			"instructorInfo.profile.bio":   1,
		}}},
	}
}

// EnrolledStudentsPipeline enriches one course's enrollments with each
// student's public profile fields.
func EnrolledStudentsPipeline(courseID string) mongo.Pipeline {
	return mongo.Pipeline{
		{{Key: "$match", Value: bson.M{"courseId": courseID}}},
		{{Key: "$lookup", Value: bson.M{
			"from":         model.UsersCollection,
			"localField":   "studentId",
			"foreignField": "userId",
			"as":           "studentInfo",
		}}},
		{{Key: "$unwind", Value: "$studentInfo"}},
		{{Key: "$project", Value: bson.M{
			"enrollmentId":          1,
			"enrollmentDate":        1,
			"status":                1,
			"progress":              1,
			"studentInfo.firstName": 1,
			"studentInfo.lastName":  1,
			"studentInfo.email":     1,
		}}},
	}
}
