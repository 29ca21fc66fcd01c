package requests

// SendReminderRequest triggers a reminder for one payment. DunningLevel
// overrides the classifier's suggestion when set (e.g. escalating to level 3
// early); when nil the suggested level is used.
type SendReminderRequest struct {
	DunningLevel *int32 `json:"dunning_level" binding:"omitempty,min=1,max=3"`
}

// UpdateDunningSettingsRequest replaces the owner's escalation thresholds.
type UpdateDunningSettingsRequest struct {
	Level1Days int32 `json:"level1_days" binding:"required,min=1"`
	Level2Days int32 `json:"level2_days" binding:"required,min=2"`
	Level3Days int32 `json:"level3_days" binding:"required,min=3"`
}

// UpdateEmailTemplateRequest edits one template's copy.
type UpdateEmailTemplateRequest struct {
	Subject  string `json:"subject" binding:"required"`
	Message  string `json:"message" binding:"required"`
	IsActive *bool  `json:"is_active"`
}
