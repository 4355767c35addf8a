// Code generated by ent, DO NOT EDIT.

package predicate

import (
	"entgo.io/ent/dialect/sql"
)

// AttemptEvent is the predicate function for attemptevent builders.
type AttemptEvent func(*sql.Selector)

// LLMRequestEvent is the predicate function for llmrequestevent builders.
type LLMRequestEvent func(*sql.Selector)

// PlanEvent is the predicate function for planevent builders.
type PlanEvent func(*sql.Selector)

// Question is the predicate function for question builders.
type Question func(*sql.Selector)

// StudyPlan is the predicate function for studyplan builders.
type StudyPlan func(*sql.Selector)
