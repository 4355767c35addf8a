// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abhisek/catprep/ent/attemptevent"
	"github.com/abhisek/catprep/ent/llmrequestevent"
	"github.com/abhisek/catprep/ent/planevent"
	"github.com/abhisek/catprep/ent/question"
	"github.com/abhisek/catprep/ent/schema"
	"github.com/abhisek/catprep/ent/studyplan"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	attempteventMixin := schema.AttemptEvent{}.Mixin()
	attempteventMixinFields0 := attempteventMixin[0].Fields()
	_ = attempteventMixinFields0
	attempteventFields := schema.AttemptEvent{}.Fields()
	_ = attempteventFields
	// attempteventDescTimestamp is the schema descriptor for timestamp field.
	attempteventDescTimestamp := attempteventMixinFields0[1].Descriptor()
	// attemptevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	attemptevent.DefaultTimestamp = attempteventDescTimestamp.Default.(func() time.Time)
	// attempteventDescUserID is the schema descriptor for user_id field.
	attempteventDescUserID := attempteventFields[0].Descriptor()
	// attemptevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	attemptevent.UserIDValidator = attempteventDescUserID.Validators[0].(func(string) error)
	// attempteventDescQuestionID is the schema descriptor for question_id field.
	attempteventDescQuestionID := attempteventFields[1].Descriptor()
	// attemptevent.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	attemptevent.QuestionIDValidator = attempteventDescQuestionID.Validators[0].(func(string) error)
	// attempteventDescDifficultyBand is the schema descriptor for difficulty_band field.
	attempteventDescDifficultyBand := attempteventFields[6].Descriptor()
	// attemptevent.DifficultyBandValidator is a validator for the "difficulty_band" field. It is called by the builders before save.
	attemptevent.DifficultyBandValidator = attempteventDescDifficultyBand.Validators[0].(func(string) error)
	// attempteventDescSubcategory is the schema descriptor for subcategory field.
	attempteventDescSubcategory := attempteventFields[7].Descriptor()
	// attemptevent.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	attemptevent.SubcategoryValidator = attempteventDescSubcategory.Validators[0].(func(string) error)
	// attempteventDescTypeOfQuestion is the schema descriptor for type_of_question field.
	attempteventDescTypeOfQuestion := attempteventFields[8].Descriptor()
	// attemptevent.TypeOfQuestionValidator is a validator for the "type_of_question" field. It is called by the builders before save.
	attemptevent.TypeOfQuestionValidator = attempteventDescTypeOfQuestion.Validators[0].(func(string) error)
	// attempteventDescPyqFrequencyScore is the schema descriptor for pyq_frequency_score field.
	attempteventDescPyqFrequencyScore := attempteventFields[10].Descriptor()
	// attemptevent.DefaultPyqFrequencyScore holds the default value on creation for the pyq_frequency_score field.
	attemptevent.DefaultPyqFrequencyScore = attempteventDescPyqFrequencyScore.Default.(float64)
	llmrequesteventMixin := schema.LLMRequestEvent{}.Mixin()
	llmrequesteventMixinFields0 := llmrequesteventMixin[0].Fields()
	_ = llmrequesteventMixinFields0
	llmrequesteventFields := schema.LLMRequestEvent{}.Fields()
	_ = llmrequesteventFields
	// llmrequesteventDescTimestamp is the schema descriptor for timestamp field.
	llmrequesteventDescTimestamp := llmrequesteventMixinFields0[1].Descriptor()
	// llmrequestevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	llmrequestevent.DefaultTimestamp = llmrequesteventDescTimestamp.Default.(func() time.Time)
	// llmrequesteventDescProvider is the schema descriptor for provider field.
	llmrequesteventDescProvider := llmrequesteventFields[0].Descriptor()
	// llmrequestevent.ProviderValidator is a validator for the "provider" field. It is called by the builders before save.
	llmrequestevent.ProviderValidator = llmrequesteventDescProvider.Validators[0].(func(string) error)
	// llmrequesteventDescModel is the schema descriptor for model field.
	llmrequesteventDescModel := llmrequesteventFields[1].Descriptor()
	// llmrequestevent.ModelValidator is a validator for the "model" field. It is called by the builders before save.
	llmrequestevent.ModelValidator = llmrequesteventDescModel.Validators[0].(func(string) error)
	// llmrequesteventDescPurpose is the schema descriptor for purpose field.
	llmrequesteventDescPurpose := llmrequesteventFields[2].Descriptor()
	// llmrequestevent.PurposeValidator is a validator for the "purpose" field. It is called by the builders before save.
	llmrequestevent.PurposeValidator = llmrequesteventDescPurpose.Validators[0].(func(string) error)
	// llmrequesteventDescInputTokens is the schema descriptor for input_tokens field.
	llmrequesteventDescInputTokens := llmrequesteventFields[5].Descriptor()
	// llmrequestevent.DefaultInputTokens holds the default value on creation for the input_tokens field.
	llmrequestevent.DefaultInputTokens = llmrequesteventDescInputTokens.Default.(int)
	// llmrequesteventDescOutputTokens is the schema descriptor for output_tokens field.
	llmrequesteventDescOutputTokens := llmrequesteventFields[6].Descriptor()
	// llmrequestevent.DefaultOutputTokens holds the default value on creation for the output_tokens field.
	llmrequestevent.DefaultOutputTokens = llmrequesteventDescOutputTokens.Default.(int)
	// llmrequesteventDescErrorMessage is the schema descriptor for error_message field.
	llmrequesteventDescErrorMessage := llmrequesteventFields[7].Descriptor()
	// llmrequestevent.DefaultErrorMessage holds the default value on creation for the error_message field.
	llmrequestevent.DefaultErrorMessage = llmrequesteventDescErrorMessage.Default.(string)
	// llmrequesteventDescRequestBody is the schema descriptor for request_body field.
	llmrequesteventDescRequestBody := llmrequesteventFields[8].Descriptor()
	// llmrequestevent.DefaultRequestBody holds the default value on creation for the request_body field.
	llmrequestevent.DefaultRequestBody = llmrequesteventDescRequestBody.Default.(string)
	// llmrequesteventDescResponseBody is the schema descriptor for response_body field.
	llmrequesteventDescResponseBody := llmrequesteventFields[9].Descriptor()
	// llmrequestevent.DefaultResponseBody holds the default value on creation for the response_body field.
	llmrequestevent.DefaultResponseBody = llmrequesteventDescResponseBody.Default.(string)
	planeventMixin := schema.PlanEvent{}.Mixin()
	planeventMixinFields0 := planeventMixin[0].Fields()
	_ = planeventMixinFields0
	planeventFields := schema.PlanEvent{}.Fields()
	_ = planeventFields
	// planeventDescTimestamp is the schema descriptor for timestamp field.
	planeventDescTimestamp := planeventMixinFields0[1].Descriptor()
	// planevent.DefaultTimestamp holds the default value on creation for the timestamp field.
	planevent.DefaultTimestamp = planeventDescTimestamp.Default.(func() time.Time)
	// planeventDescPlanID is the schema descriptor for plan_id field.
	planeventDescPlanID := planeventFields[0].Descriptor()
	// planevent.PlanIDValidator is a validator for the "plan_id" field. It is called by the builders before save.
	planevent.PlanIDValidator = planeventDescPlanID.Validators[0].(func(string) error)
	// planeventDescUserID is the schema descriptor for user_id field.
	planeventDescUserID := planeventFields[1].Descriptor()
	// planevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	planevent.UserIDValidator = planeventDescUserID.Validators[0].(func(string) error)
	// planeventDescRelaxed is the schema descriptor for relaxed field.
	planeventDescRelaxed := planeventFields[4].Descriptor()
	// planevent.DefaultRelaxed holds the default value on creation for the relaxed field.
	planevent.DefaultRelaxed = planeventDescRelaxed.Default.(string)
	// planeventDescReasoning is the schema descriptor for reasoning field.
	planeventDescReasoning := planeventFields[7].Descriptor()
	// planevent.DefaultReasoning holds the default value on creation for the reasoning field.
	planevent.DefaultReasoning = planeventDescReasoning.Default.(string)
	questionFields := schema.Question{}.Fields()
	_ = questionFields
	// questionDescQuestionID is the schema descriptor for question_id field.
	questionDescQuestionID := questionFields[0].Descriptor()
	// question.QuestionIDValidator is a validator for the "question_id" field. It is called by the builders before save.
	question.QuestionIDValidator = questionDescQuestionID.Validators[0].(func(string) error)
	// questionDescDifficultyBand is the schema descriptor for difficulty_band field.
	questionDescDifficultyBand := questionFields[1].Descriptor()
	// question.DifficultyBandValidator is a validator for the "difficulty_band" field. It is called by the builders before save.
	question.DifficultyBandValidator = questionDescDifficultyBand.Validators[0].(func(string) error)
	// questionDescSubcategory is the schema descriptor for subcategory field.
	questionDescSubcategory := questionFields[2].Descriptor()
	// question.SubcategoryValidator is a validator for the "subcategory" field. It is called by the builders before save.
	question.SubcategoryValidator = questionDescSubcategory.Validators[0].(func(string) error)
	// questionDescTypeOfQuestion is the schema descriptor for type_of_question field.
	questionDescTypeOfQuestion := questionFields[3].Descriptor()
	// question.TypeOfQuestionValidator is a validator for the "type_of_question" field. It is called by the builders before save.
	question.TypeOfQuestionValidator = questionDescTypeOfQuestion.Validators[0].(func(string) error)
	// questionDescPyqFrequencyScore is the schema descriptor for pyq_frequency_score field.
	questionDescPyqFrequencyScore := questionFields[5].Descriptor()
	// question.DefaultPyqFrequencyScore holds the default value on creation for the pyq_frequency_score field.
	question.DefaultPyqFrequencyScore = questionDescPyqFrequencyScore.Default.(float64)
	// questionDescTopic is the schema descriptor for topic field.
	questionDescTopic := questionFields[6].Descriptor()
	// question.DefaultTopic holds the default value on creation for the topic field.
	question.DefaultTopic = questionDescTopic.Default.(string)
	// questionDescActive is the schema descriptor for active field.
	questionDescActive := questionFields[7].Descriptor()
	// question.DefaultActive holds the default value on creation for the active field.
	question.DefaultActive = questionDescActive.Default.(bool)
	// questionDescExcluded is the schema descriptor for excluded field.
	questionDescExcluded := questionFields[8].Descriptor()
	// question.DefaultExcluded holds the default value on creation for the excluded field.
	question.DefaultExcluded = questionDescExcluded.Default.(bool)
	studyplanFields := schema.StudyPlan{}.Fields()
	_ = studyplanFields
	// studyplanDescUserID is the schema descriptor for user_id field.
	studyplanDescUserID := studyplanFields[0].Descriptor()
	// studyplan.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	studyplan.UserIDValidator = studyplanDescUserID.Validators[0].(func(string) error)
	// studyplanDescTrack is the schema descriptor for track field.
	studyplanDescTrack := studyplanFields[1].Descriptor()
	// studyplan.TrackValidator is a validator for the "track" field. It is called by the builders before save.
	studyplan.TrackValidator = studyplanDescTrack.Validators[0].(func(string) error)
	// studyplanDescCreatedAt is the schema descriptor for created_at field.
	studyplanDescCreatedAt := studyplanFields[4].Descriptor()
	// studyplan.DefaultCreatedAt holds the default value on creation for the created_at field.
	studyplan.DefaultCreatedAt = studyplanDescCreatedAt.Default.(func() time.Time)
}
