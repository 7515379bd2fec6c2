package domain

// DayActivity is one day's logged activity.
type DayActivity struct {
	Hours    float64 `bson:"hours,omitempty" json:"hours,omitempty"`
	Activity string  `bson:"activity,omitempty" json:"activity,omitempty"`
}

// Progress is the per-user activity log, keyed by "YYYY-MM-DD" date
// strings. Updates merge into ProgressData rather than replacing it.
type Progress struct {
	UID          string                 `bson:"uid" json:"uid"`
	ProgressData map[string]DayActivity `bson:"progress_data" json:"progressData"`
}
