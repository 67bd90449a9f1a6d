package exercise

// Exercise is a stored movement record.
type Exercise struct {
	ID           int64  `json:"id"`
	ExerciseName string `json:"exerciseName"`
	Category     string `json:"category"`
	Description  string `json:"description"`
	Sets         int    `json:"sets"`
	Reps         int    `json:"reps"`
	Image        string `json:"image"`
}

// Update carries a partial edit; nil fields are left untouched.
type Update struct {
	ExerciseName *string `json:"exerciseName"`
	Category     *string `json:"category"`
	Description  *string `json:"description"`
	Sets         *int    `json:"sets"`
	Reps         *int    `json:"reps"`
	Image        *string `json:"image"`
}

func (u Update) apply(record Exercise) Exercise {
	if u.ExerciseName != nil {
		record.ExerciseName = *u.ExerciseName
	}
	if u.Category != nil {
		record.Category = *u.Category
	}
	if u.Description != nil {
		record.Description = *u.Description
	}
	if u.Sets != nil {
		record.Sets = *u.Sets
	}
	if u.Reps != nil {
		record.Reps = *u.Reps
	}
	if u.Image != nil {
		record.Image = *u.Image
	}
	return record
}
