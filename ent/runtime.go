// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/arima/quizdeck/ent/attemptevent"
	"github.com/arima/quizdeck/ent/schema"
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
	// attempteventDescUser is the schema descriptor for user field.
	attempteventDescUser := attempteventFields[0].Descriptor()
	// attemptevent.UserValidator is a validator for the "user" field. It is called by the builders before save.
	attemptevent.UserValidator = attempteventDescUser.Validators[0].(func(string) error)
	// attempteventDescAttemptID is the schema descriptor for attempt_id field.
	attempteventDescAttemptID := attempteventFields[1].Descriptor()
	// attemptevent.AttemptIDValidator is a validator for the "attempt_id" field. It is called by the builders before save.
	attemptevent.AttemptIDValidator = attempteventDescAttemptID.Validators[0].(func(string) error)
	// attempteventDescScore is the schema descriptor for score field.
	attempteventDescScore := attempteventFields[2].Descriptor()
	// attemptevent.DefaultScore holds the default value on creation for the score field.
	attemptevent.DefaultScore = attempteventDescScore.Default.(int)
	// attempteventDescTotal is the schema descriptor for total field.
	attempteventDescTotal := attempteventFields[3].Descriptor()
	// attemptevent.DefaultTotal holds the default value on creation for the total field.
	attemptevent.DefaultTotal = attempteventDescTotal.Default.(int)
	// attempteventDescDurationSecs is the schema descriptor for duration_secs field.
	attempteventDescDurationSecs := attempteventFields[4].Descriptor()
	// attemptevent.DefaultDurationSecs holds the default value on creation for the duration_secs field.
	attemptevent.DefaultDurationSecs = attempteventDescDurationSecs.Default.(int)
}
